package regtext

// Document is the in-memory form of one registry text file: any preamble
// lines before the first section header, then an ordered list of sections.
// Raw line text (terminators included) is retained for every node that the
// current operation does not touch, so serialization of untouched regions is
// byte-identical to the input.
type Document struct {
	// Preamble holds the raw lines before the first section header,
	// verbatim, including the editor version banner and any comments.
	Preamble []string

	// Sections in file order. Order is significant and preserved.
	Sections []*Section

	eol string
}

// EOL returns the newline sequence detected in the source text. Canonical
// lines emitted for modified regions use the same sequence.
func (d *Document) EOL() string {
	if d.eol == "" {
		return CRLF
	}
	return d.eol
}

// AddSection appends a new, empty section at the end of the document and
// returns it.
func (d *Document) AddSection(path string) *Section {
	s := &Section{Path: path, synthetic: true}
	d.Sections = append(d.Sections, s)
	return s
}

// RemoveSection removes a section, its entries and its trailing lines.
// Removing a section not present in the document is a no-op.
func (d *Document) RemoveSection(target *Section) {
	for i, s := range d.Sections {
		if s == target {
			d.Sections = append(d.Sections[:i], d.Sections[i+1:]...)
			return
		}
	}
}

// Section is one bracketed path header plus its entries. Comment and blank
// lines between entries ride along as raw leading/trailing lines so they
// survive round trips in place.
type Section struct {
	// Path is the text between the brackets, unbracketed.
	Path string

	// Entries in file order.
	Entries []*Entry

	rawHeader string   // original header line, "" once renamed or synthesized
	trailing  []string // raw lines after the last entry, before the next header
	synthetic bool     // created by a mutation, not parsed from input
}

// Rename changes the section path. The header is re-rendered canonically on
// the next serialization.
func (s *Section) Rename(path string) {
	s.Path = path
	s.rawHeader = ""
}

// AddEntry appends a new entry at the end of the section and returns it.
func (s *Section) AddEntry(name, value string) *Entry {
	e := &Entry{Name: name, Value: value}
	s.Entries = append(s.Entries, e)
	return e
}

// RemoveEntry removes an entry from the section. Raw comment or blank lines
// that preceded the entry are reattached to the following entry (or to the
// section trailer) so they are not lost.
func (s *Section) RemoveEntry(target *Entry) {
	for i, e := range s.Entries {
		if e != target {
			continue
		}
		s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
		if len(e.leading) > 0 {
			if i < len(s.Entries) {
				s.Entries[i].leading = append(append([]string{}, e.leading...), s.Entries[i].leading...)
			} else {
				s.trailing = append(append([]string{}, e.leading...), s.trailing...)
			}
		}
		return
	}
}

// Entry is one name/value pair. Name is the text between the quotes with
// escapes resolved, or the "@" sentinel for the default value. Value is the
// full literal right of '=': quotes included for string values, continuation
// lines joined with '\n' (each continuation stripped of leading indentation).
type Entry struct {
	Name  string
	Value string

	raw     []string // original physical lines, nil once modified
	leading []string // raw blank/comment lines preceding the entry
}

// SetValue replaces the entry's value literal.
func (e *Entry) SetValue(value string) {
	e.Value = value
	e.raw = nil
}

// Rename changes the entry name, keeping its value literal.
func (e *Entry) Rename(name string) {
	e.Name = name
	e.raw = nil
}
