package regedit

import (
	"errors"
	"fmt"
)

// Verb selects the operation to perform against the registry text.
type Verb string

const (
	VerbChk Verb = "chk"
	VerbGet Verb = "get"
	VerbAdd Verb = "add"
	VerbDel Verb = "del"
	VerbUpd Verb = "upd"
)

// Msgcode is a stable symbolic outcome code for programmatic handling.
type Msgcode string

const (
	// CodeOK reports an operation that left the text untouched, including
	// every "target absent" and "guard did not match" case. Absence is an
	// outcome, not a failure.
	CodeOK Msgcode = "ok"

	// CodeChanged reports a mutation that altered the persisted text.
	CodeChanged Msgcode = "changed"

	// CodeHKeyMissing reports a query against a section that does not exist.
	CodeHKeyMissing Msgcode = "hkey_missing"

	// CodeKeyMissing reports a query where the section exists but the entry
	// does not.
	CodeKeyMissing Msgcode = "key_missing"

	// CodeValueMismatch reports a query where section and entry exist but
	// the stored value literal differs from the queried one.
	CodeValueMismatch Msgcode = "value_mismatch"

	// CodeHKeyExists confirms a section-level query.
	CodeHKeyExists Msgcode = "hkey_exists"

	// CodeKeyExists confirms a key-level query.
	CodeKeyExists Msgcode = "hkey_k_key_exists"

	// CodeValueConfirmed confirms a full section/key/value query.
	CodeValueConfirmed Msgcode = "hkey_kv_value_confirmed"
)

// icSuffix marks outcomes where case folding was the deciding factor.
const icSuffix = "_ic"

// IC returns the case-insensitive variant of a confirmation code.
func (m Msgcode) IC() Msgcode { return m + icSuffix }

// Guard selects the mutation policy for del and upd.
type Guard int

const (
	// GuardNone applies the mutation unconditionally (brute).
	GuardNone Guard = iota

	// GuardValue applies the mutation only when the current stored value
	// matches the caller-supplied expectation (safe).
	GuardValue
)

// Arg is an optional request argument. The zero value is absent; use
// String to supply one. A set Arg holding "" is distinct from an absent one.
type Arg struct {
	set   bool
	value string
}

// String returns a set Arg holding s.
func String(s string) Arg { return Arg{set: true, value: s} }

// IsSet reports whether the argument was supplied.
func (a Arg) IsSet() bool { return a.set }

// Value returns the argument text, or "" when absent.
func (a Arg) Value() string { return a.value }

// Request describes one operation against a registry text blob.
type Request struct {
	Verb Verb

	// HKey is the section path, without brackets. Required for all verbs.
	HKey string

	// Key is the entry name; "@" addresses the default value.
	Key Arg

	// Val is the expected current value literal. For del and upd it turns
	// the mutation into a safe (guarded) one.
	Val Arg

	// NewHKey, NewKey and NewVal select the upd sub-operations.
	NewHKey Arg
	NewKey  Arg
	NewVal  Arg

	// IgnoreCase applies one case-folding policy to paths, entry names and
	// value literals alike. add ignores it: existence is always judged
	// exactly so differently-cased data is never silently duplicated.
	IgnoreCase bool
}

// DelGuard returns the guard mode of a del request. The literal "*" for Val
// is accepted as "any value", same as omitting it.
func (r Request) DelGuard() Guard {
	if r.Val.IsSet() && r.Val.Value() != "*" {
		return GuardValue
	}
	return GuardNone
}

// UpdGuard returns the guard mode of an upd value update.
func (r Request) UpdGuard() Guard {
	if r.Val.IsSet() {
		return GuardValue
	}
	return GuardNone
}

var errBadRequest = errors.New("regedit: invalid request")

// Validate checks that the request's argument combination is meaningful for
// its verb. It does not touch the registry text.
func (r Request) Validate() error {
	if r.HKey == "" {
		return fmt.Errorf("%w: hkey is required", errBadRequest)
	}
	switch r.Verb {
	case VerbChk:
		if r.hasRenames() {
			return fmt.Errorf("%w: new_hkey/new_key/new_val are upd-only", errBadRequest)
		}
		if r.Val.IsSet() && !r.Key.IsSet() {
			return fmt.Errorf("%w: val requires key", errBadRequest)
		}
	case VerbGet:
		if r.hasRenames() || r.Val.IsSet() {
			return fmt.Errorf("%w: get takes only hkey and key", errBadRequest)
		}
		if !r.Key.IsSet() {
			return fmt.Errorf("%w: get requires key", errBadRequest)
		}
	case VerbAdd:
		if r.hasRenames() {
			return fmt.Errorf("%w: new_hkey/new_key/new_val are upd-only", errBadRequest)
		}
		if r.Val.IsSet() && !r.Key.IsSet() {
			return fmt.Errorf("%w: val requires key", errBadRequest)
		}
	case VerbDel:
		if r.hasRenames() {
			return fmt.Errorf("%w: new_hkey/new_key/new_val are upd-only", errBadRequest)
		}
		if r.Val.IsSet() && !r.Key.IsSet() {
			return fmt.Errorf("%w: val requires key", errBadRequest)
		}
	case VerbUpd:
		if !r.NewHKey.IsSet() && !r.NewKey.IsSet() && !r.NewVal.IsSet() {
			return fmt.Errorf("%w: upd requires new_hkey, new_key or new_val", errBadRequest)
		}
		if (r.NewKey.IsSet() || r.NewVal.IsSet()) && !r.Key.IsSet() {
			return fmt.Errorf("%w: new_key/new_val require key", errBadRequest)
		}
		if r.Val.IsSet() && !r.NewVal.IsSet() {
			return fmt.Errorf("%w: val guard requires new_val", errBadRequest)
		}
	default:
		return fmt.Errorf("%w: unknown verb %q", errBadRequest, r.Verb)
	}
	return nil
}

func (r Request) hasRenames() bool {
	return r.NewHKey.IsSet() || r.NewKey.IsSet() || r.NewVal.IsSet()
}

// Result is the structured outcome of one operation.
type Result struct {
	// Changed is true iff the persisted text differs from the input.
	Changed bool `json:"changed"`

	// Failed is true only for structural failures (unparseable input),
	// never for "not found" or guard mismatches.
	Failed bool `json:"failed"`

	// Msgcode is the stable symbolic outcome code.
	Msgcode Msgcode `json:"msgcode"`

	// Message is the human-readable outcome description.
	Message string `json:"message"`

	// Value carries the resolved value literal for get.
	Value string `json:"value,omitempty"`

	// Text is the full document text to persist. Equal to the input unless
	// Changed is true.
	Text string `json:"-"`
}
