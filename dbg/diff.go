package dbg

import (
	"fmt"
	"io"

	"github.com/alienth/dbgctl/util"
	"github.com/pmezard/go-difflib/difflib"
)

// printMutation re-renders args after a call and prints a unified diff
// against the rendering taken before it, if the two differ.
func (t *Toggle) printMutation(w io.Writer, before string, args []interface{}) {
	after := t.render(args)
	if after == before {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "before",
		ToFile:   "after",
		Context:  1,
	})
	if err != nil {
		return
	}
	additions, removals := util.CountChanges(diff)
	fmt.Fprintf(w, "mutated (+%d/-%d):\n%s", additions, removals, diff)
}
