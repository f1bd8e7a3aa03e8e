package util

import (
	"strings"
)

// CountChanges counts the added and removed lines of a unified diff. The
// "+++" and "---" file headers are not counted.
func CountChanges(diff string) (int, int) {
	var additions, removals int
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			additions++
		case strings.HasPrefix(line, "-"):
			removals++
		}
	}
	return additions, removals
}

func StringInSlice(check string, slice []string) bool {
	for _, element := range slice {
		if element == check {
			return true
		}
	}
	return false
}
