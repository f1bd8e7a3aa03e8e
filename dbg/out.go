package dbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/sanity-io/litter"
)

// Options are forwarded to the printer selected by Pretty. The zero value
// prints like fmt.Println.
type Options struct {
	// Pretty selects the structure-aware printer.
	Pretty bool

	// Sep joins plain values. Defaults to a single space.
	Sep string
	// End terminates plain output. Defaults to a newline.
	End string
	// NoNewline drops the terminator altogether.
	NoNewline bool

	// Compact forces single-line pretty output for this call.
	Compact bool
}

type printer func(t *Toggle, opts Options, vals []interface{})

// Out prints v and args with the plain printer if the toggle is enabled.
func (t *Toggle) Out(v interface{}, args ...interface{}) {
	t.OutWith(Options{}, v, args...)
}

// OutWith prints v and args if the toggle is enabled, with the pretty printer
// when opts.Pretty is set and the plain one otherwise.
func (t *Toggle) OutWith(opts Options, v interface{}, args ...interface{}) {
	if !t.Enabled {
		return
	}

	var p printer = printPlain
	if opts.Pretty {
		p = printPretty
	}
	opts.Pretty = false

	p(t, opts, append([]interface{}{v}, args...))
}

// Log prints v and args if the toggle is enabled.
func (t *Toggle) Log(v interface{}, args ...interface{}) {
	t.LogWith(Options{}, v, args...)
}

func (t *Toggle) LogWith(opts Options, v interface{}, args ...interface{}) {
	if t.Enabled {
		t.OutWith(opts, v, args...)
	}
}

// Now prints v and args even if the toggle is disabled, unless it is inside
// an OffScope. Enabled is left as it was.
func (t *Toggle) Now(v interface{}, args ...interface{}) {
	t.NowWith(Options{}, v, args...)
}

func (t *Toggle) NowWith(opts Options, v interface{}, args ...interface{}) {
	if !t.allowNow {
		return
	}
	prev := t.Enabled
	t.Enabled = true
	defer func() { t.Enabled = prev }()
	t.OutWith(opts, v, args...)
}

func printPlain(t *Toggle, opts Options, vals []interface{}) {
	sep, end := " ", "\n"
	if opts.Sep != "" {
		sep = opts.Sep
	}
	if opts.End != "" {
		end = opts.End
	}
	if opts.NoNewline {
		end = ""
	}

	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, v)
	}
	b.WriteString(end)
	io.WriteString(t.writer(), b.String())
}

func printPretty(t *Toggle, opts Options, vals []interface{}) {
	d := t.dumper()
	if opts.Compact {
		d.Compact = true
	}

	var b strings.Builder
	for _, v := range vals {
		b.WriteString(d.Sdump(v))
		b.WriteString("\n")
	}
	io.WriteString(t.writer(), b.String())
}

func (t *Toggle) dumper() litter.Options {
	return litter.Options{
		Compact:           t.settings.Compact,
		StripPackageNames: t.settings.StripPackageNames,
		HidePrivateFields: t.settings.HidePrivateFields,
		HideZeroValues:    t.settings.HideZeroValues,
		Separator:         " ",
	}
}

// render is the pretty form of a single value, without a trailing newline.
func (t *Toggle) render(v interface{}) string {
	return t.dumper().Sdump(v)
}
