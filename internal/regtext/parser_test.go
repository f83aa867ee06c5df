package regtext

import (
	"errors"
	"strings"
	"testing"
)

const sampleDoc = "Windows Registry Editor Version 5.00\r\n" +
	"\r\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\Vendor]\r\n" +
	"\"Version\"=\"1.0\"\r\n" +
	"\"Nodes\"=dword:00000001\r\n" +
	"@=\"Default\"\r\n" +
	"; binary blob below\r\n" +
	"\"Blob\"=hex(7):4d,00,53,00,49,00,\\\r\n" +
	"  52,00,65,00,67,00\r\n" +
	"\r\n" +
	"[HKEY_LOCAL_MACHINE\\SOFTWARE\\Vendor\\Sub]\r\n" +
	"\"Path\"=\"C:\\\\Temp\"\r\n"

func TestParseStructure(t *testing.T) {
	doc, err := Parse(sampleDoc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(doc.Preamble) != 2 {
		t.Errorf("Expected 2 preamble lines, got %d", len(doc.Preamble))
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(doc.Sections))
	}

	first := doc.Sections[0]
	if first.Path != `HKEY_LOCAL_MACHINE\SOFTWARE\Vendor` {
		t.Errorf("Unexpected section path %q", first.Path)
	}
	if len(first.Entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(first.Entries))
	}

	names := []string{"Version", "Nodes", "@", "Blob"}
	for i, want := range names {
		if first.Entries[i].Name != want {
			t.Errorf("Entry %d: expected name %q, got %q", i, want, first.Entries[i].Name)
		}
	}

	if got := first.Entries[0].Value; got != `"1.0"` {
		t.Errorf("String literal kept with quotes: got %q", got)
	}
	if got := first.Entries[1].Value; got != "dword:00000001" {
		t.Errorf("Dword literal: got %q", got)
	}

	second := doc.Sections[1]
	if got := second.Entries[0].Name; got != "Path" {
		t.Errorf("Second section entry name: got %q", got)
	}
	if got := second.Entries[0].Value; got != `"C:\\Temp"` {
		t.Errorf("Value literal is not unescaped: got %q", got)
	}
}

func TestParseContinuationJoin(t *testing.T) {
	doc, err := Parse(sampleDoc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	blob := doc.Sections[0].Entries[3]
	want := "hex(7):4d,00,53,00,49,00,\\\n52,00,65,00,67,00"
	if blob.Value != want {
		t.Errorf("Continuation literal:\n got %q\nwant %q", blob.Value, want)
	}
}

func TestParseEscapedNames(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantName string
	}{
		{
			name:     "name ending with backslash",
			line:     `"C:\\"=dword:00000001`,
			wantName: `C:\`,
		},
		{
			name:     "name with escaped quote",
			line:     `"Say \"Hi\""=dword:00000001`,
			wantName: `Say "Hi"`,
		},
		{
			name:     "name with backslash then escaped quote",
			line:     `"A\\\" B"=dword:00000001`,
			wantName: `A\" B`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse("[S]\n" + tt.line + "\n")
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := doc.Sections[0].Entries[0].Name; got != tt.wantName {
				t.Errorf("Name: got %q, want %q", got, tt.wantName)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
		line int
	}{
		{
			name: "unterminated section header",
			text: "[HKEY_LOCAL_MACHINE\\Broken\n",
			want: ErrUnterminatedHeader,
			line: 1,
		},
		{
			name: "unterminated entry name",
			text: "[S]\n\"NoClose=dword:00000001\n",
			want: ErrUnterminatedName,
			line: 2,
		},
		{
			name: "missing assignment",
			text: "[S]\n\"Key\" dword:00000001\n",
			want: ErrMissingAssignment,
			line: 2,
		},
		{
			name: "entry before any section",
			text: "\"Key\"=\"v\"\n[S]\n",
			want: ErrEntryOutsideSection,
			line: 1,
		},
		{
			name: "dangling continuation",
			text: "[S]\n52,00,65,00,\\\n",
			want: ErrDanglingContinuation,
			line: 2,
		},
		{
			name: "continuation past end of input",
			text: "[S]\n\"Blob\"=hex:4d,00,\\",
			want: ErrUnterminatedContinuation,
		},
		{
			name: "unrecognized line",
			text: "[S]\ngarbage here\n",
			want: ErrUnrecognizedLine,
			line: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if err == nil {
				t.Fatal("Expected parse error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected *ParseError, got %T", err)
			}
			if tt.line != 0 && perr.Line != tt.line {
				t.Errorf("Line: got %d, want %d", perr.Line, tt.line)
			}
		})
	}
}

func TestParsePreambleOnly(t *testing.T) {
	text := "Windows Registry Editor Version 5.00\r\n\r\n"
	doc, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(doc.Sections) != 0 {
		t.Errorf("Expected no sections, got %d", len(doc.Sections))
	}
	if doc.String() != text {
		t.Errorf("Preamble-only document did not round-trip")
	}
}

func TestParseEmpty(t *testing.T) {
	doc, err := Parse("")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.String() != "" {
		t.Errorf("Empty document did not round-trip")
	}
}

func TestParseDuplicateSections(t *testing.T) {
	text := "[Dup]\n\"A\"=\"1\"\n\n[Dup]\n\"B\"=\"2\"\n"
	doc, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// Pathological input keeps both; operations act on the first match.
	if len(doc.Sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(doc.Sections))
	}
	if doc.Sections[0].Entries[0].Name != "A" {
		t.Errorf("First section should hold entry A")
	}
}

func TestDetectEOL(t *testing.T) {
	if doc, _ := Parse("[S]\r\n"); doc.EOL() != CRLF {
		t.Errorf("Expected CRLF")
	}
	if doc, _ := Parse("[S]\n"); doc.EOL() != LF {
		t.Errorf("Expected LF")
	}
	// Unterminated single line defaults to the .reg convention.
	if doc, _ := Parse("[S]"); doc.EOL() != CRLF {
		t.Errorf("Expected CRLF default")
	}
}

func TestFindClosingQuote(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{`"abc"=x`, 4},
		{`"a\"b"=x`, 5},
		{`"a\\"=x`, 4},
		{`"never closes`, -1},
	}
	for _, tt := range tests {
		if got := findClosingQuote(tt.line); got != tt.want {
			t.Errorf("findClosingQuote(%q): got %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestParseIndentedEntry(t *testing.T) {
	doc, err := Parse("[S]\n  \"Key\"=\"v\"  \n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	e := doc.Sections[0].Entries[0]
	if e.Name != "Key" || e.Value != `"v"` {
		t.Errorf("Indented entry: got %q=%q", e.Name, e.Value)
	}
	if !strings.Contains(doc.String(), "  \"Key\"=\"v\"  \n") {
		t.Errorf("Indentation of untouched entry must survive")
	}
}
