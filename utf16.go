package saslprep

const (
	surrHigh = 0xD800 // high (leading) surrogates, through 0xDBFF
	surrLow  = 0xDC00 // low (trailing) surrogates, through 0xDFFF
	surrEnd  = 0xE000
	surrSelf = 0x10000
)

// DecodeUTF16 converts UTF-16 code units into Unicode code points,
// combining surrogate pairs. An unpaired surrogate half is emitted
// unchanged rather than replaced, leaving it to Prepare's prohibition
// check; decoding itself never fails. Empty input yields an empty
// sequence.
func DecodeUTF16(units []uint16) []rune {
	out := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		if surrHigh <= r && r < surrLow && i+1 < len(units) {
			r2 := rune(units[i+1])
			if surrLow <= r2 && r2 < surrEnd {
				out = append(out, (r-surrHigh)<<10+(r2-surrLow)+surrSelf)
				i++
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// PrepareUTF16 canonicalizes a UTF-16 code unit sequence using the default
// SASLprep tables. See Tables.PrepareUTF16.
func PrepareUTF16(units []uint16, opts ...Option) (string, error) {
	return defaultTables.PrepareUTF16(units, opts...)
}

// PrepareUTF16 decodes units per DecodeUTF16 and applies the same pipeline
// as Prepare. An unpaired surrogate fails with ErrProhibited: surrogate
// codes are prohibited output (RFC 3454 table C.5), and one that reaches
// string assembly becomes U+FFFD, which is prohibited as well (table C.6).
func (t *Tables) PrepareUTF16(units []uint16, opts ...Option) (string, error) {
	if len(units) == 0 {
		return "", nil
	}
	return t.prepare(DecodeUTF16(units), opts)
}
