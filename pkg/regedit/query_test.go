package regedit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChkNotFoundTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		code    Msgcode
		message string
	}{
		{
			name: "absent hkey",
			req:  Request{Verb: VerbChk, HKey: missingPath},
			code: CodeHKeyMissing,
		},
		{
			name: "absent key under existing hkey",
			req:  Request{Verb: VerbChk, HKey: castorPath, Key: String("NoSuchKey")},
			code: CodeKeyMissing,
		},
		{
			name:    "absent key when value also queried",
			req:     Request{Verb: VerbChk, HKey: castorPath, Key: String("NoSuchKey"), Val: String(`"129"`)},
			code:    CodeKeyMissing,
			message: "HKEY kv-pair, as queried, was NOT found.",
		},
		{
			name: "value mismatch",
			req:  Request{Verb: VerbChk, HKey: castorPath, Key: String("MetaDataDatabaseVersion"), Val: String(`"130"`)},
			code: CodeValueMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustApply(t, sampleReg, tt.req)
			assert.Equal(t, tt.code, res.Msgcode)
			assert.False(t, res.Failed, "absence is reported, not failed")
			assert.False(t, res.Changed)
			if tt.message != "" {
				assert.Equal(t, tt.message, res.Message)
			}
		})
	}
}

func TestChkConfirmations(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		code Msgcode
	}{
		{
			name: "hkey exists",
			req:  Request{Verb: VerbChk, HKey: castorPath},
			code: CodeHKeyExists,
		},
		{
			name: "key exists",
			req:  Request{Verb: VerbChk, HKey: castorPath, Key: String("NumberOfNodesInCluster")},
			code: CodeKeyExists,
		},
		{
			name: "default entry exists",
			req:  Request{Verb: VerbChk, HKey: castorPath, Key: String("@")},
			code: CodeKeyExists,
		},
		{
			name: "value confirmed",
			req:  Request{Verb: VerbChk, HKey: castorPath, Key: String("NumberOfNodesInCluster"), Val: String("dword:00000001")},
			code: CodeValueConfirmed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustApply(t, sampleReg, tt.req)
			assert.Equal(t, tt.code, res.Msgcode)
			assert.False(t, res.Changed)
		})
	}
}

func TestChkIgnoreCase(t *testing.T) {
	upper := strings.ToUpper(castorPath)

	// Without folding the differently-cased path is simply absent.
	res := mustApply(t, sampleReg, Request{Verb: VerbChk, HKey: upper})
	assert.Equal(t, CodeHKeyMissing, res.Msgcode)

	// With folding it matches, and folding was the deciding factor.
	res = mustApply(t, sampleReg, Request{Verb: VerbChk, HKey: upper, IgnoreCase: true})
	assert.Equal(t, CodeHKeyExists.IC(), res.Msgcode)

	// An exact-case hit under ignore_case keeps the unsuffixed code.
	res = mustApply(t, sampleReg, Request{Verb: VerbChk, HKey: castorPath, IgnoreCase: true})
	assert.Equal(t, CodeHKeyExists, res.Msgcode)
}

func TestChkIgnoreCaseComponents(t *testing.T) {
	// Exact path, folded key name.
	res := mustApply(t, sampleReg, Request{
		Verb: VerbChk, HKey: castorPath,
		Key: String("numberofnodesincluster"), IgnoreCase: true,
	})
	assert.Equal(t, CodeKeyExists.IC(), res.Msgcode)

	// Exact path and key, folded value literal.
	res = mustApply(t, sampleReg, Request{
		Verb: VerbChk, HKey: castorPath,
		Key: String("NumberOfNodesInCluster"), Val: String("DWORD:00000001"), IgnoreCase: true,
	})
	assert.Equal(t, CodeValueConfirmed.IC(), res.Msgcode)

	// Everything exact: no suffix even though folding was requested.
	res = mustApply(t, sampleReg, Request{
		Verb: VerbChk, HKey: castorPath,
		Key: String("NumberOfNodesInCluster"), Val: String("dword:00000001"), IgnoreCase: true,
	})
	assert.Equal(t, CodeValueConfirmed, res.Msgcode)
}

func TestCaseFoldSymmetry(t *testing.T) {
	// Whatever the exact-case variant confirms, the folded variant confirms
	// too, for any case permutation of the same text.
	exact := Request{Verb: VerbChk, HKey: castorPath, Key: String("MetaDataDatabaseVersion"), Val: String(`"129"`)}
	res := mustApply(t, sampleReg, exact)
	assert.Equal(t, CodeValueConfirmed, res.Msgcode)

	folded := exact
	folded.IgnoreCase = true
	res = mustApply(t, sampleReg, folded)
	assert.Equal(t, CodeValueConfirmed, res.Msgcode)

	permuted := Request{
		Verb: VerbChk,
		HKey: strings.ToLower(castorPath),
		Key:  String("METADATADATABASEVERSION"),
		Val:  String(`"129"`),

		IgnoreCase: true,
	}
	res = mustApply(t, sampleReg, permuted)
	assert.Equal(t, CodeValueConfirmed.IC(), res.Msgcode)
}

func TestGet(t *testing.T) {
	res := mustApply(t, sampleReg, Request{Verb: VerbGet, HKey: castorPath, Key: String("MetaDataDatabaseVersion")})
	assert.Equal(t, CodeKeyExists, res.Msgcode)
	assert.Equal(t, `"129"`, res.Value, "value literal returned with quotes")

	res = mustApply(t, sampleReg, Request{Verb: VerbGet, HKey: castorPath, Key: String("@")})
	assert.Equal(t, `"Default"`, res.Value)
}

func TestGetNotFound(t *testing.T) {
	res := mustApply(t, sampleReg, Request{Verb: VerbGet, HKey: missingPath, Key: String("Any")})
	assert.Equal(t, CodeHKeyMissing, res.Msgcode)
	assert.Empty(t, res.Value)

	res = mustApply(t, sampleReg, Request{Verb: VerbGet, HKey: castorPath, Key: String("Absent")})
	assert.Equal(t, CodeKeyMissing, res.Msgcode)
	assert.Empty(t, res.Value)
}

func TestGetIgnoreCase(t *testing.T) {
	res := mustApply(t, sampleReg, Request{
		Verb: VerbGet, HKey: strings.ToUpper(updateMe), Key: String("thiskeyexists"), IgnoreCase: true,
	})
	assert.Equal(t, CodeKeyExists.IC(), res.Msgcode)
	assert.Equal(t, `"OldValue"`, res.Value)
}

func TestFirstMatchWinsOnDuplicatePaths(t *testing.T) {
	text := "[Dup]\r\n\"A\"=\"first\"\r\n\r\n[Dup]\r\n\"A\"=\"second\"\r\n"
	res := mustApply(t, text, Request{Verb: VerbGet, HKey: "Dup", Key: String("A")})
	assert.Equal(t, `"first"`, res.Value)
}
