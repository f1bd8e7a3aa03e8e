package main

import (
	"sort"
	"strings"

	"github.com/alienth/dbgctl/dbg"
	"github.com/urfave/cli"
)

func normalize(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.Trim(w, ".,;:!?\"'"))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// sortWords sorts words in place and returns how many there are.
func sortWords(words []string) int {
	sort.Strings(words)
	return len(words)
}

func countWords(words ...string) map[string]int {
	counts := make(map[string]int)
	for _, w := range words {
		counts[w]++
	}
	return counts
}

// traced wraps f with the Std toggle, forcing the trace when now is set.
func traced[F any](now bool, name string, f F) F {
	if now {
		return dbg.WrapNowNamed(dbg.Std, name, f)
	}
	return dbg.WrapNamed(dbg.Std, name, f)
}

func traceWords(c *cli.Context) error {
	now := c.Bool("now")
	tNormalize := traced(now, "normalize", normalize)
	tSortWords := traced(now, "sortWords", sortWords)
	tCountWords := traced(now, "countWords", countWords)

	words := tNormalize(c.Args())
	tSortWords(words)
	counts := tCountWords(words...)

	dbg.Log(len(counts), "distinct words")
	return nil
}
