package version

import "fmt"

// Set with -ldflags "-X github.com/alienth/dbgctl/version.Commit=..." at
// build time.
var (
	Version = "0.1"
	// YYYYMMDD
	Date string
	// Short git commit ID
	Commit string
)

// FullVersion is Version, with the build date and commit appended when both
// were set by the linker.
func FullVersion() string {
	if Date == "" || Commit == "" {
		return Version
	}
	return fmt.Sprintf("%s~git%s.%s", Version, Date, Commit)
}
