// Package dbg is a switchable print-debugging helper. A Toggle prints values
// and traces calls of wrapped functions while it is enabled, and can be
// switched off globally or for the extent of a scope.
//
// A Toggle is meant for single-goroutine debugging sessions. Nothing is
// locked: flipping a toggle from several goroutines races, and output from
// concurrent calls may interleave.
package dbg

import (
	"io"
	"os"
)

// Toggle holds the on/off state shared by every print and wrapped function
// that goes through it.
type Toggle struct {
	// Enabled gates Out, Log and functions wrapped with Wrap.
	Enabled bool

	// allowNow is cleared only by OffScope and silences Now and WrapNow.
	allowNow bool
	settings Settings

	// w is nil outside of tests, meaning os.Stdout at write time.
	w io.Writer
}

// Settings tune how values are rendered by the pretty printer.
type Settings struct {
	Compact           bool
	StripPackageNames bool
	HidePrivateFields bool
	HideZeroValues    bool

	// DiffArgs makes wrapped functions print a diff of their arguments
	// when the call mutated them.
	DiffArgs bool
}

// Std is the process-wide toggle behind the package-level functions.
var Std = New()

// New returns a toggle writing to standard output, enabled and with Now
// allowed.
func New() *Toggle {
	return &Toggle{Enabled: true, allowNow: true}
}

func (t *Toggle) writer() io.Writer {
	if t.w != nil {
		return t.w
	}
	return os.Stdout
}

// AllowNow reports whether Now and WrapNow are currently allowed. It is
// false only inside an OffScope.
func (t *Toggle) AllowNow() bool {
	return t.allowNow
}

// Configure replaces the toggle's settings.
func (t *Toggle) Configure(s Settings) {
	t.settings = s
}

// Settings returns the toggle's current settings.
func (t *Toggle) Settings() Settings {
	return t.settings
}

// On enables the toggle until something else changes it.
func (t *Toggle) On() {
	t.Enabled = true
}

// Off disables the toggle until something else changes it. Unlike OffScope
// it leaves Now working.
func (t *Toggle) Off() {
	t.Enabled = false
}

// Scope is the guard returned when a scope is entered. Exit leaves the
// scope; it is safe to call more than once and is usually deferred.
type Scope struct {
	exit func()
}

// Exit applies the scope's exit state. Only the first call has an effect.
func (s *Scope) Exit() {
	if s == nil || s.exit == nil {
		return
	}
	exit := s.exit
	s.exit = nil
	exit()
}

// OnScope enables the toggle. Exiting the scope disables it, whatever the
// state was before entry.
func (t *Toggle) OnScope() *Scope {
	t.Enabled = true
	return &Scope{exit: func() {
		t.Enabled = false
	}}
}

// OffScope disables the toggle and Now. Exiting the scope enables both,
// whatever the state was before entry.
func (t *Toggle) OffScope() *Scope {
	t.Enabled = false
	t.allowNow = false
	return &Scope{exit: func() {
		t.Enabled = true
		t.allowNow = true
	}}
}

// Enter uses the toggle itself as a scope: it is enabled on entry and
// disabled on exit.
func (t *Toggle) Enter() *Scope {
	t.Enabled = true
	return &Scope{exit: func() {
		t.Enabled = false
	}}
}

// WithOn runs fn inside an OnScope. The scope is exited even if fn panics.
func (t *Toggle) WithOn(fn func()) {
	defer t.OnScope().Exit()
	fn()
}

// WithOff runs fn inside an OffScope. The scope is exited even if fn panics.
func (t *Toggle) WithOff(fn func()) {
	defer t.OffScope().Exit()
	fn()
}

// With runs fn inside the toggle's own scope (see Enter).
func (t *Toggle) With(fn func()) {
	defer t.Enter().Exit()
	fn()
}
