package regedit

import (
	"strings"

	"github.com/mathworld/ansible-regedit/internal/match"
	"github.com/mathworld/ansible-regedit/internal/regtext"
)

// add creates a section and optionally an entry. Matching is always exact:
// existence must be judged precisely so differently-cased data is never
// silently duplicated. An entry that already exists is left alone even when
// its value differs; overwriting is upd's job.
func add(doc *regtext.Document, req Request, text string) Result {
	dirty := false
	message := msgHKeyAlreadyExists

	sec, _ := findSection(doc, req.HKey, false)
	if sec == nil {
		sec = doc.AddSection(req.HKey)
		dirty = true
		message = msgHKeyAdded
	}

	if req.Key.IsSet() {
		entry, _ := findEntry(sec, req.Key.Value(), false)
		if entry == nil {
			sec.AddEntry(req.Key.Value(), req.Val.Value())
			dirty = true
			message = msgKVAdded
		} else {
			message = msgKVAlreadyExists
		}
	}

	if !dirty {
		return unchanged(message, text)
	}
	return changed(message, doc)
}

// del removes a section, an entry, or a value-guarded entry. Deleting
// something absent is a no-op, not an error.
func del(doc *regtext.Document, req Request, text string) Result {
	sec, _ := findSection(doc, req.HKey, req.IgnoreCase)
	if sec == nil {
		return unchanged(msgHKeyNotRemoved, text)
	}

	if !req.Key.IsSet() {
		doc.RemoveSection(sec)
		return changed(msgHKeyRemoved, doc)
	}

	entry, _ := findEntry(sec, req.Key.Value(), req.IgnoreCase)
	if entry == nil {
		return unchanged(msgKeyNotFound, text)
	}

	if req.DelGuard() == GuardValue {
		if !match.Equal(entry.Value, req.Val.Value(), req.IgnoreCase) {
			return unchanged(msgDelGuardMismatch, text)
		}
		sec.RemoveEntry(entry)
		return changed(msgKVRemoved, doc)
	}

	sec.RemoveEntry(entry)
	return changed(msgKeyRemoved, doc)
}

// upd applies up to three sub-operations in order: rename the section,
// rename the entry, update the entry value. Later sub-operations act on the
// section and entry as renamed by earlier ones within the same request.
func upd(doc *regtext.Document, req Request, text string) Result {
	dirty := false
	var messages []string
	note := func(m string) { messages = append(messages, m) }

	sec, _ := findSection(doc, req.HKey, req.IgnoreCase)

	if req.NewHKey.IsSet() {
		switch {
		case sec == nil:
			// Renaming needs a source; nothing is created.
			note(msgHKeyNotFound)
		case match.Equal(sec.Path, req.NewHKey.Value(), req.IgnoreCase):
			note(msgHKeyNotUpdated)
		default:
			sec.Rename(req.NewHKey.Value())
			dirty = true
			note(msgHKeyRenamed)
		}
	}

	// Entry resolved once so a value update after a key rename targets the
	// renamed entry rather than looking up the old name again.
	var entry *regtext.Entry
	if sec != nil && req.Key.IsSet() {
		entry, _ = findEntry(sec, req.Key.Value(), req.IgnoreCase)
	}

	if req.NewKey.IsSet() {
		switch {
		case entry == nil:
			// No invention of a renamed key from nothing.
			note(msgKeyNotFound)
		case match.Equal(entry.Name, req.NewKey.Value(), req.IgnoreCase):
			note(msgKeyNotUpdated)
		default:
			entry.Rename(req.NewKey.Value())
			dirty = true
			note(msgKeyRenamed)
		}
	}

	if req.NewVal.IsSet() {
		switch {
		case entry == nil:
			// Upsert: the guard expresses an expectation about an existing
			// value and does not block creation of an absent one.
			if sec == nil {
				sec = doc.AddSection(req.HKey)
			}
			sec.AddEntry(req.Key.Value(), req.NewVal.Value())
			dirty = true
			note(msgValUpserted)
		case req.UpdGuard() == GuardValue && !match.Equal(entry.Value, req.Val.Value(), req.IgnoreCase):
			note(msgUpdGuardMismatch)
		case match.Equal(entry.Value, req.NewVal.Value(), req.IgnoreCase):
			note(msgValNotUpdated)
		default:
			entry.SetValue(req.NewVal.Value())
			dirty = true
			note(msgValUpdated)
		}
	}

	message := strings.Join(messages, " ")
	if !dirty {
		return unchanged(message, text)
	}
	return changed(message, doc)
}
