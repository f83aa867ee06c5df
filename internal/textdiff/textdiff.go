// Package textdiff renders a line-oriented diff between two versions of a
// registry file, used for dry-run output.
package textdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Line is one diffed line with its disposition.
type Line struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

const (
	LineContext = "context"
	LineAdded   = "added"
	LineRemoved = "removed"
)

// Lines computes a line-level diff between before and after.
func Lines(before, after string) []Line {
	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(beforeChars, afterChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var out []Line
	for _, d := range diffs {
		chunk := strings.Split(d.Text, "\n")
		if len(chunk) > 0 && chunk[len(chunk)-1] == "" {
			chunk = chunk[:len(chunk)-1]
		}
		for _, text := range chunk {
			text = strings.TrimSuffix(text, "\r")
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				out = append(out, Line{Type: LineRemoved, Text: text})
			case diffmatchpatch.DiffInsert:
				out = append(out, Line{Type: LineAdded, Text: text})
			default:
				out = append(out, Line{Type: LineContext, Text: text})
			}
		}
	}
	return out
}

// Format renders a diff in the conventional +/- notation, context lines
// prefixed with two spaces. Returns "" when the versions are identical.
func Format(before, after string) string {
	if before == after {
		return ""
	}
	var b strings.Builder
	for _, l := range Lines(before, after) {
		switch l.Type {
		case LineAdded:
			b.WriteString("+ ")
		case LineRemoved:
			b.WriteString("- ")
		default:
			b.WriteString("  ")
		}
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
