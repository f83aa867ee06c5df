package regtext

import (
	"bytes"
	"strings"
)

// String renders the document back to text. Untouched lines are copied
// verbatim from the input; renamed, replaced and newly created nodes are
// rendered canonically using the document's newline sequence.
func (d *Document) String() string {
	var buf bytes.Buffer
	eol := d.EOL()

	for _, l := range d.Preamble {
		buf.WriteString(l)
	}
	for _, s := range d.Sections {
		if s.synthetic {
			ensureBlankSeparator(&buf, eol)
		}
		if s.rawHeader != "" {
			buf.WriteString(s.rawHeader)
		} else {
			buf.WriteString(KeyOpenBracket)
			buf.WriteString(s.Path)
			buf.WriteString(KeyCloseBracket)
			buf.WriteString(eol)
		}
		for _, e := range s.Entries {
			for _, l := range e.leading {
				buf.WriteString(l)
			}
			if e.raw != nil {
				for _, l := range e.raw {
					buf.WriteString(l)
				}
				continue
			}
			emitEntry(&buf, e, eol)
		}
		for _, l := range s.trailing {
			buf.WriteString(l)
		}
	}
	return buf.String()
}

// Bytes renders the document as a byte slice.
func (d *Document) Bytes() []byte {
	return []byte(d.String())
}

func emitEntry(buf *bytes.Buffer, e *Entry, eol string) {
	if e.Name == DefaultValueName {
		buf.WriteString(DefaultValuePrefix)
	} else {
		buf.WriteString(Quote)
		buf.WriteString(escapeName(e.Name))
		buf.WriteString(Quote)
		buf.WriteString(ValueAssignment)
	}
	// A freshly constructed multi-line literal keeps its embedded
	// continuation backslashes; only the physical line breaks are
	// re-rendered in the document's newline style.
	buf.WriteString(strings.ReplaceAll(e.Value, LF, eol))
	buf.WriteString(eol)
}

// ensureBlankSeparator terminates any unterminated last line and adds a
// blank line before a section appended to existing content.
func ensureBlankSeparator(buf *bytes.Buffer, eol string) {
	if buf.Len() == 0 {
		return
	}
	text := buf.String()
	if !strings.HasSuffix(text, LF) {
		buf.WriteString(eol)
		text += eol
	}
	if !strings.HasSuffix(text, LF+eol) && !strings.HasSuffix(text, eol+eol) {
		buf.WriteString(eol)
	}
}
