// Package log is dbgctl's own debug channel, separate from the values the
// user asks it to print.
package log

import (
	"fmt"

	"github.com/alienth/dbgctl/dbg"
)

var debug = newChannel()

func newChannel() *dbg.Toggle {
	t := dbg.New()
	t.Off()
	return t
}

func EnableDebug() {
	debug.On()
}

// Debug prints message as is when debugging is enabled. No newline is
// added.
func Debug(message string) {
	debug.LogWith(dbg.Options{NoNewline: true}, message)
}

func Debugf(format string, args ...interface{}) {
	if debug.Enabled {
		Debug(fmt.Sprintf(format, args...))
	}
}
