package regtext

import "strings"

// unescapeName resolves .reg escapes in an entry name: \\ becomes a
// backslash and \" becomes a quote.
func unescapeName(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s // no backslashes, no escapes
	}
	s = strings.ReplaceAll(s, EscapedBackslash, Backslash)
	s = strings.ReplaceAll(s, EscapedQuote, Quote)
	return s
}

// escapeName is the inverse of unescapeName, used when re-rendering a
// modified entry line.
func escapeName(s string) string {
	s = strings.ReplaceAll(s, Backslash, EscapedBackslash)
	s = strings.ReplaceAll(s, Quote, EscapedQuote)
	return s
}

// findClosingQuote returns the index of the quote closing an entry name,
// skipping quotes escaped by an odd number of backslashes. The opening quote
// is assumed at index 0. Returns -1 if the name never closes.
func findClosingQuote(line string) int {
	for i := 1; i < len(line); i++ {
		if line[i] != '"' {
			continue
		}
		backslashes := 0
		for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 1 {
			continue // escaped, keep looking
		}
		return i
	}
	return -1
}

// continuesValue reports whether a value payload line opens a continuation,
// i.e. ends with a single backslash after trailing whitespace is ignored.
func continuesValue(payload string) bool {
	trimmed := strings.TrimRight(payload, " \t")
	return strings.HasSuffix(trimmed, Backslash)
}
