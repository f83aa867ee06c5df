package regtext

import "strings"

// Parse converts registry text into a Document. The grammar is strictly
// line-oriented and parsed in a single forward pass: section headers in
// brackets, quoted-name entry lines, the "@=" default entry, backslash line
// continuation for hex values, and comment or blank lines kept verbatim.
func Parse(text string) (*Document, error) {
	lines := splitLines(text)
	doc := &Document{eol: detectEOL(lines)}

	var (
		current *Section
		pending []string // raw blank/comment lines awaiting an owner
	)
	flushPending := func(e *Entry) {
		if len(pending) == 0 {
			return
		}
		if e != nil {
			e.leading = pending
		} else if current != nil {
			current.trailing = append(current.trailing, pending...)
		} else {
			doc.Preamble = append(doc.Preamble, pending...)
		}
		pending = nil
	}

	for i := 0; i < len(lines); i++ {
		raw := lines[i]
		content := trimEOL(raw)
		trimmed := strings.TrimSpace(content)

		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, CommentPrefix):
			pending = append(pending, raw)

		case strings.HasPrefix(trimmed, KeyOpenBracket):
			if !strings.HasSuffix(trimmed, KeyCloseBracket) {
				return nil, parseErr(i+1, content, ErrUnterminatedHeader)
			}
			flushPending(nil)
			path := strings.TrimSuffix(strings.TrimPrefix(trimmed, KeyOpenBracket), KeyCloseBracket)
			current = &Section{Path: path, rawHeader: raw}
			doc.Sections = append(doc.Sections, current)

		case strings.HasPrefix(trimmed, Quote) || strings.HasPrefix(trimmed, DefaultValuePrefix):
			if current == nil {
				return nil, parseErr(i+1, content, ErrEntryOutsideSection)
			}
			entry, consumed, err := parseEntry(lines, i)
			if err != nil {
				return nil, err
			}
			flushPending(entry)
			current.Entries = append(current.Entries, entry)
			i += consumed - 1

		case current == nil:
			// Anything before the first section header is preamble,
			// kept verbatim (version banner, stray text).
			pending = append(pending, raw)

		case continuesValue(content):
			return nil, parseErr(i+1, content, ErrDanglingContinuation)

		default:
			return nil, parseErr(i+1, content, ErrUnrecognizedLine)
		}
	}
	flushPending(nil)
	return doc, nil
}

// parseEntry parses one logical entry starting at lines[start], consuming
// continuation lines as needed. It returns the entry and the number of
// physical lines consumed.
func parseEntry(lines []string, start int) (*Entry, int, error) {
	content := trimEOL(lines[start])
	trimmed := strings.TrimSpace(content)

	var name, payload string
	if strings.HasPrefix(trimmed, DefaultValuePrefix) {
		name = DefaultValueName
		payload = trimmed[len(DefaultValuePrefix):]
	} else {
		end := findClosingQuote(trimmed)
		if end < 0 {
			return nil, 0, parseErr(start+1, content, ErrUnterminatedName)
		}
		rest := trimmed[end+1:]
		if !strings.HasPrefix(rest, ValueAssignment) {
			return nil, 0, parseErr(start+1, content, ErrMissingAssignment)
		}
		name = unescapeName(trimmed[1:end])
		payload = rest[1:]
	}

	entry := &Entry{Name: name, raw: []string{lines[start]}}
	segments := []string{strings.TrimRight(payload, " \t")}

	// A payload ending in a backslash continues on the following physical
	// lines until one does not. The logical literal joins the segments with
	// '\n', each continuation stripped of leading indentation.
	i := start
	for continuesValue(trimEOL(lines[i])) {
		i++
		if i >= len(lines) {
			return nil, 0, parseErr(len(lines), trimEOL(lines[len(lines)-1]), ErrUnterminatedContinuation)
		}
		entry.raw = append(entry.raw, lines[i])
		segments = append(segments, strings.TrimSpace(trimEOL(lines[i])))
	}
	entry.Value = strings.Join(segments, LF)
	return entry, i - start + 1, nil
}

// splitLines splits text into physical lines, each keeping its own
// terminator so untouched lines re-serialize byte-for-byte.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for len(text) > 0 {
		n := strings.IndexByte(text, '\n')
		if n < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:n+1])
		text = text[n+1:]
	}
	return lines
}

// trimEOL strips the line terminator, if any, from a raw line.
func trimEOL(raw string) string {
	raw = strings.TrimSuffix(raw, LF)
	return strings.TrimSuffix(raw, CR)
}

// detectEOL picks the newline sequence of the first terminated line.
func detectEOL(lines []string) string {
	for _, l := range lines {
		if strings.HasSuffix(l, CRLF) {
			return CRLF
		}
		if strings.HasSuffix(l, LF) {
			return LF
		}
	}
	return CRLF
}
