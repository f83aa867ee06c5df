package regedit

import (
	"github.com/mathworld/ansible-regedit/internal/match"
	"github.com/mathworld/ansible-regedit/internal/regtext"
)

// Apply runs one operation against registry text and returns the outcome.
// It is a pure function: parse, evaluate, serialize. Result.Text is the
// full text to persist and equals the input whenever Result.Changed is
// false. The returned error is non-nil only for an invalid request or
// unparseable input; in the latter case Result.Failed is set and no partial
// mutation is ever applied.
func Apply(text string, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{Failed: true, Message: err.Error(), Text: text}, err
	}
	doc, err := regtext.Parse(text)
	if err != nil {
		return Result{Failed: true, Message: err.Error(), Text: text}, err
	}

	switch req.Verb {
	case VerbChk:
		return chk(doc, req, text), nil
	case VerbGet:
		return get(doc, req, text), nil
	case VerbAdd:
		return add(doc, req, text), nil
	case VerbDel:
		return del(doc, req, text), nil
	default:
		return upd(doc, req, text), nil
	}
}

// findSection returns the first section matching path under the active
// policy, and whether case folding was the deciding factor for the match.
// First match wins, stable with parse order.
func findSection(doc *regtext.Document, path string, ignoreCase bool) (*regtext.Section, bool) {
	for _, s := range doc.Sections {
		if match.Equal(s.Path, path, ignoreCase) {
			return s, ignoreCase && match.FoldOnly(s.Path, path)
		}
	}
	return nil, false
}

// findEntry returns the first entry matching name under the active policy,
// and whether case folding was the deciding factor.
func findEntry(sec *regtext.Section, name string, ignoreCase bool) (*regtext.Entry, bool) {
	for _, e := range sec.Entries {
		if match.Equal(e.Name, name, ignoreCase) {
			return e, ignoreCase && match.FoldOnly(e.Name, name)
		}
	}
	return nil, false
}

// confirm builds a read-only confirmation result. The _ic code variant is
// used when folding decided at least one component match.
func confirm(code Msgcode, message string, folded bool, text string) Result {
	if folded {
		code = code.IC()
	}
	return Result{Msgcode: code, Message: message, Text: text}
}

// unchanged builds a no-op mutation result.
func unchanged(message, text string) Result {
	return Result{Msgcode: CodeOK, Message: message, Text: text}
}

// changed builds a mutation result, serializing the modified document.
func changed(message string, doc *regtext.Document) Result {
	return Result{Changed: true, Msgcode: CodeChanged, Message: message, Text: doc.String()}
}
