package textdiff

import (
	"strings"
	"testing"
)

func TestFormatIdentical(t *testing.T) {
	if got := Format("[S]\r\n", "[S]\r\n"); got != "" {
		t.Errorf("Identical inputs: got %q, want empty", got)
	}
}

func TestFormatChange(t *testing.T) {
	before := "[S]\r\n\"A\"=\"1\"\r\n\"B\"=\"2\"\r\n"
	after := "[S]\r\n\"A\"=\"1\"\r\n\"B\"=\"3\"\r\n"

	out := Format(before, after)
	if !strings.Contains(out, "- \"B\"=\"2\"") {
		t.Errorf("Missing removed line:\n%s", out)
	}
	if !strings.Contains(out, "+ \"B\"=\"3\"") {
		t.Errorf("Missing added line:\n%s", out)
	}
	if !strings.Contains(out, "  [S]") {
		t.Errorf("Missing context line:\n%s", out)
	}
}

func TestLinesDisposition(t *testing.T) {
	lines := Lines("a\nb\n", "a\nc\n")
	var added, removed, context int
	for _, l := range lines {
		switch l.Type {
		case LineAdded:
			added++
		case LineRemoved:
			removed++
		case LineContext:
			context++
		}
	}
	if added != 1 || removed != 1 || context != 1 {
		t.Errorf("Disposition counts: added=%d removed=%d context=%d", added, removed, context)
	}
}
