package saslprep

import "github.com/xdg-go/stringprep"

// A RuneSet reports membership of a code point in one classification
// table. Implementations must be read-only and safe for concurrent use.
type RuneSet interface {
	Contains(r rune) bool
}

// Tables holds the six code point classes consulted by Prepare. The zero
// value is not usable; populate all six fields, or use DefaultTables.
// A Tables value must not be modified after first use.
type Tables struct {
	Unassigned    RuneSet // RFC 3454 appendix A.1
	MapToNothing  RuneSet // appendix B.1
	NonASCIISpace RuneSet // appendix C.1.2
	Prohibited    RuneSet // the profile's prohibition list
	BidiRAL       RuneSet // appendix D.1, RandALCat
	BidiL         RuneSet // appendix D.2, LCat
}

// DefaultTables returns the SASLprep profile's classification data, built
// from the RFC 3454 appendix tables. The returned value is shared and
// read-only.
func DefaultTables() *Tables {
	return defaultTables
}

// https://www.rfc-editor.org/rfc/rfc4013#section-2.3
var saslprepProhibited = unionSet{
	stringprep.TableC1_2,
	stringprep.TableC2_1,
	stringprep.TableC2_2,
	stringprep.TableC3,
	stringprep.TableC4,
	stringprep.TableC5,
	stringprep.TableC6,
	stringprep.TableC7,
	stringprep.TableC8,
	stringprep.TableC9,
}

var defaultTables = &Tables{
	Unassigned:    stringprep.TableA1,
	MapToNothing:  mappingSet(stringprep.TableB1),
	NonASCIISpace: stringprep.TableC1_2,
	Prohibited:    saslprepProhibited,
	BidiRAL:       stringprep.TableD1,
	BidiL:         stringprep.TableD2,
}

// unionSet is membership in any of its member sets.
type unionSet []RuneSet

func (u unionSet) Contains(r rune) bool {
	for _, s := range u {
		if s.Contains(r) {
			return true
		}
	}
	return false
}

// mappingSet adapts a stringprep mapping table to a membership test over
// its domain.
type mappingSet stringprep.Mapping

func (m mappingSet) Contains(r rune) bool {
	_, ok := m[r]
	return ok
}
