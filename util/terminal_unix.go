//go:build !windows
// +build !windows

package util

import (
	"syscall"

	"golang.org/x/crypto/ssh/terminal"
)

// IsInteractive reports whether stdout is a terminal.
func IsInteractive() bool {
	return terminal.IsTerminal(syscall.Stdout)
}
