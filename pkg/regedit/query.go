package regedit

import (
	"github.com/mathworld/ansible-regedit/internal/match"
	"github.com/mathworld/ansible-regedit/internal/regtext"
)

// chk verifies existence at section, key or key-value granularity. All
// outcomes are read-only: absence is reported, never treated as failure.
func chk(doc *regtext.Document, req Request, text string) Result {
	sec, secFold := findSection(doc, req.HKey, req.IgnoreCase)
	if sec == nil {
		return Result{Msgcode: CodeHKeyMissing, Message: msgHKeyNotExists, Text: text}
	}
	if !req.Key.IsSet() {
		return confirm(CodeHKeyExists, msgHKeyExists, secFold, text)
	}

	entry, keyFold := findEntry(sec, req.Key.Value(), req.IgnoreCase)
	if entry == nil {
		message := msgKeyNotFound
		if req.Val.IsSet() {
			message = msgKVNotFound
		}
		return Result{Msgcode: CodeKeyMissing, Message: message, Text: text}
	}
	if !req.Val.IsSet() {
		return confirm(CodeKeyExists, msgKeyExists, secFold || keyFold, text)
	}

	if !match.Equal(entry.Value, req.Val.Value(), req.IgnoreCase) {
		return Result{Msgcode: CodeValueMismatch, Message: msgValueMismatch, Text: text}
	}
	valFold := req.IgnoreCase && match.FoldOnly(entry.Value, req.Val.Value())
	return confirm(CodeValueConfirmed, msgKVConfirmed, secFold || keyFold || valFold, text)
}

// get resolves section and entry like chk, returning the stored value
// literal on success.
func get(doc *regtext.Document, req Request, text string) Result {
	sec, secFold := findSection(doc, req.HKey, req.IgnoreCase)
	if sec == nil {
		return Result{Msgcode: CodeHKeyMissing, Message: msgHKeyNotExists, Text: text}
	}
	entry, keyFold := findEntry(sec, req.Key.Value(), req.IgnoreCase)
	if entry == nil {
		return Result{Msgcode: CodeKeyMissing, Message: msgKeyNotFound, Text: text}
	}
	res := confirm(CodeKeyExists, msgKeyExists, secFold || keyFold, text)
	res.Value = entry.Value
	return res
}
