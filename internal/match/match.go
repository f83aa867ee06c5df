// Package match provides the single text comparison policy used for section
// paths, entry names and value literals. One operation uses one policy for
// all three address components.
package match

import "golang.org/x/text/cases"

// Equal compares two strings. With ignoreCase set it applies a
// locale-independent Unicode case fold to both sides first.
func Equal(a, b string, ignoreCase bool) bool {
	if a == b {
		return true
	}
	if !ignoreCase {
		return false
	}
	return fold(a) == fold(b)
}

// FoldOnly reports whether two strings are equal only under case folding,
// not byte-for-byte. Used to decide when an outcome should carry the
// case-insensitive marker.
func FoldOnly(a, b string) bool {
	return a != b && fold(a) == fold(b)
}

// fold case-folds one string. A Caser is stateful, so each call gets its
// own.
func fold(s string) string {
	return cases.Fold().String(s)
}
