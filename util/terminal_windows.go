package util

import (
	"syscall"

	"golang.org/x/crypto/ssh/terminal"
)

// IsInteractive reports whether stdout is a terminal.
func IsInteractive() bool {
	return terminal.IsTerminal(int(syscall.Stdout))
}
