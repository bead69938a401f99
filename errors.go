package saslprep

import (
	"errors"
	"fmt"
)

// Failure kinds returned by Prepare. Compare with errors.Is; prohibited
// and unassigned failures additionally carry the offending code point in
// an *Error.
var (
	ErrInvalidUTF8 = errors.New("saslprep: input is not valid UTF-8")
	ErrProhibited  = errors.New("saslprep: prohibited code point")
	ErrUnassigned  = errors.New("saslprep: unassigned code point")
	ErrBidiMixed   = errors.New("saslprep: RandALCat and LCat code points may not be mixed")
	ErrBidiEdge    = errors.New("saslprep: RandALCat text must start and end with RandALCat")
)

// An Error reports the code point that caused preparation to fail. Kind is
// one of the sentinel errors in this package.
type Error struct {
	Kind error
	Rune rune
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %U", e.Kind, e.Rune)
}

func (e *Error) Unwrap() error { return e.Kind }

// IsProhibited reports whether err is a prohibited code point failure.
func IsProhibited(err error) bool { return errors.Is(err, ErrProhibited) }

// IsUnassigned reports whether err is an unassigned code point failure.
func IsUnassigned(err error) bool { return errors.Is(err, ErrUnassigned) }

// IsBidi reports whether err is either bidirectional rule failure.
func IsBidi(err error) bool {
	return errors.Is(err, ErrBidiMixed) || errors.Is(err, ErrBidiEdge)
}
