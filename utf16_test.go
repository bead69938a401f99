package saslprep

import (
	"errors"
	"testing"
)

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		name string
		in   []uint16
		want []rune
	}{
		{name: "empty", in: nil, want: nil},
		{name: "ascii", in: []uint16{0x75, 0x73, 0x65, 0x72}, want: []rune{'u', 's', 'e', 'r'}},
		{name: "bmp", in: []uint16{0x00E9}, want: []rune{0x00E9}},
		{name: "surrogate pair", in: []uint16{0xD83D, 0xDE00}, want: []rune{0x1F600}},
		{name: "lowest pair", in: []uint16{0xD800, 0xDC00}, want: []rune{0x10000}},
		{name: "highest pair", in: []uint16{0xDBFF, 0xDFFF}, want: []rune{0x10FFFF}},
		{name: "lone high surrogate", in: []uint16{0xD800}, want: []rune{0xD800}},
		{name: "lone low surrogate", in: []uint16{0xDC00}, want: []rune{0xDC00}},
		{name: "high surrogate before non-low", in: []uint16{0xD800, 0x0041}, want: []rune{0xD800, 0x0041}},
		{name: "low surrogate before pair", in: []uint16{0xDC00, 0xD800, 0xDC00}, want: []rune{0xDC00, 0x10000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeUTF16(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("DecodeUTF16(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("DecodeUTF16(%v)[%d] = %U, want %U", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPrepareUTF16(t *testing.T) {
	got, err := PrepareUTF16([]uint16{0x75, 0x73, 0x65, 0x72})
	if err != nil {
		t.Fatalf("PrepareUTF16(user) error: %v", err)
	}
	if got != "user" {
		t.Fatalf("PrepareUTF16(user) = %q, want %q", got, "user")
	}

	got, err = PrepareUTF16(nil)
	if err != nil {
		t.Fatalf("PrepareUTF16(nil) error: %v", err)
	}
	if got != "" {
		t.Fatalf("PrepareUTF16(nil) = %q, want empty", got)
	}
}

func TestPrepareUTF16_SupplementaryPlane(t *testing.T) {
	// U+1F600 is beyond the tables' repertoire, so it needs AllowUnassigned.
	units := []uint16{0xD83D, 0xDE00}

	if _, err := PrepareUTF16(units); !errors.Is(err, ErrUnassigned) {
		t.Fatalf("PrepareUTF16(%v) error = %v, want kind %v", units, err, ErrUnassigned)
	}

	got, err := PrepareUTF16(units, AllowUnassigned)
	if err != nil {
		t.Fatalf("PrepareUTF16(%v, AllowUnassigned) error: %v", units, err)
	}
	if want := string(rune(0x1F600)); got != want {
		t.Fatalf("PrepareUTF16(%v, AllowUnassigned) = %q, want %q", units, got, want)
	}
}

func TestPrepareUTF16_LoneSurrogate(t *testing.T) {
	_, err := PrepareUTF16([]uint16{0x0041, 0xD800})
	if !errors.Is(err, ErrProhibited) {
		t.Fatalf("PrepareUTF16(lone surrogate) error = %v, want kind %v", err, ErrProhibited)
	}
}
