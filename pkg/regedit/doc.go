// Package regedit implements an idempotent editing engine for Windows
// .reg-format registry text files.
//
// # Overview
//
// The engine turns a text blob into an ordered document, applies one of
// five verbs, and renders the document back to text. Untouched sections and
// entries serialize byte-for-byte, including comments, blank lines and
// multi-line hex continuations, so repeated runs over the same file are
// stable.
//
// # Verbs
//
//   - chk: verify a section, entry or entry value exists as queried
//   - get: return the stored value literal of an entry
//   - add: create a section or entry; never overwrites existing data
//   - del: remove a section or entry, optionally guarded by the current value
//   - upd: rename a section, rename an entry, or update a value (upsert)
//
// # Safe and brute mutations
//
// del and upd accept a value guard: when supplied, the mutation applies
// only if the stored value matches the expectation. Without it the mutation
// is unconditional. Guard misses and absent targets are ordinary outcomes
// with changed=false, never failures, so automation can re-run operations
// freely.
//
// # Usage
//
//	res, err := regedit.Apply(text, regedit.Request{
//		Verb: regedit.VerbUpd,
//		HKey: `HKEY_LOCAL_MACHINE\SOFTWARE\Vendor`,
//		Key:  regedit.String("Version"),
//		NewVal: regedit.String(`"2.0"`),
//	})
//	if err != nil {
//		return err
//	}
//	if res.Changed {
//		// persist res.Text
//	}
//
// The engine performs no I/O and keeps no state between calls; each Apply
// is a one-shot parse, evaluate, serialize cycle over caller-supplied text.
package regedit
