// Package saslprep prepares Unicode strings for use as usernames and
// passwords, per the SASLprep profile (RFC 4013) of the stringprep
// framework (RFC 3454).
//
// Equivalent credentials can arrive in many representations; SASLprep
// canonicalizes them so that comparison becomes a byte comparison.
// Prepare maps and NFKC-normalizes its input, then rejects prohibited
// code points, unassigned code points, and malformed bidirectional text.
package saslprep

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Prepare canonicalizes s using the default SASLprep tables. See
// Tables.Prepare.
func Prepare(s string, opts ...Option) (string, error) {
	return defaultTables.Prepare(s, opts...)
}

// Equal reports whether a and b canonicalize to the same string. It
// reports false when either operand fails preparation.
func Equal(a, b string, opts ...Option) bool {
	pa, err := defaultTables.Prepare(a, opts...)
	if err != nil {
		return false
	}
	pb, err := defaultTables.Prepare(b, opts...)
	if err != nil {
		return false
	}
	return pa == pb
}

// Prepare canonicalizes s against t's classification tables, returning the
// prepared string or one of the error kinds in this package. The empty
// string prepares to itself. Prepare is a pure function of (t, s, opts) and
// is safe for concurrent use.
func (t *Tables) Prepare(s string, opts ...Option) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}
	if s == "" {
		return "", nil
	}
	return t.prepare([]rune(s), opts)
}

func (t *Tables) prepare(input []rune, opts []Option) (string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if len(input) == 0 {
		return "", nil
	}

	// https://www.rfc-editor.org/rfc/rfc4013#section-2.1
	// Substitute U+0020 for non-ASCII space, then drop the
	// commonly-mapped-to-nothing set. Substitution tests the original
	// code point, so it precedes the drop.
	mapped := make([]rune, 0, len(input))
	for _, r := range input {
		if t.NonASCIISpace.Contains(r) {
			r = ' '
		}
		if t.MapToNothing.Contains(r) {
			continue
		}
		mapped = append(mapped, r)
	}

	// https://www.rfc-editor.org/rfc/rfc4013#section-2.2
	// Normalize with NFKC, then re-read code points from the normalized
	// form; every check below runs on the normalized sequence.
	prepared := norm.NFKC.String(string(mapped))
	runes := []rune(prepared)

	// https://www.rfc-editor.org/rfc/rfc4013#section-2.3
	for _, r := range runes {
		if t.Prohibited.Contains(r) {
			return "", &Error{Kind: ErrProhibited, Rune: r}
		}
	}

	// https://www.rfc-editor.org/rfc/rfc4013#section-2.5
	if !o.allowUnassigned {
		for _, r := range runes {
			if t.Unassigned.Contains(r) {
				return "", &Error{Kind: ErrUnassigned, Rune: r}
			}
		}
	}

	// https://www.rfc-editor.org/rfc/rfc3454#section-6
	// A string containing RandALCat may not also contain LCat, and must
	// both start and end with a RandALCat code point.
	var hasRAL, hasL bool
	for _, r := range runes {
		hasRAL = hasRAL || t.BidiRAL.Contains(r)
		hasL = hasL || t.BidiL.Contains(r)
	}
	if hasRAL {
		if hasL {
			return "", ErrBidiMixed
		}
		if !t.BidiRAL.Contains(runes[0]) || !t.BidiRAL.Contains(runes[len(runes)-1]) {
			return "", ErrBidiEdge
		}
	}

	return prepared, nil
}
