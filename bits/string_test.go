package bits_test

import (
	"math/rand"
	"testing"

	"github.com/AaronKutch/awint/bits"
)

func TestParseRadix_SignedLiteral(t *testing.T) {
	// "-0x_ff_" at radix 16 signed into width 9 is -255 = 0x101, and
	// formats back as "-ff"
	x := mustExt(t, 9, 0)
	if err := x.Bits().ParseRadix("-0x_ff_", 16, true); err != nil {
		t.Fatalf("ParseRadix: %v", err)
	}
	if got := x.Bits().ToU64(); got != 0x101 {
		t.Errorf("parsed = %#x, want 0x101", got)
	}
	s, err := x.Bits().Format(16, true, false)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if s != "-ff" {
		t.Errorf("formatted = %q, want \"-ff\"", s)
	}
}

func TestParseRadix_Prefixes(t *testing.T) {
	tests := []struct {
		in    string
		radix int
		want  uint64
	}{
		{"0b1010", 0, 10},
		{"0o17", 0, 15},
		{"0x2a", 0, 42},
		{"42", 0, 42},
		{"0x2A", 16, 42},
		{"2a", 16, 42},
		{"zz", 36, 35*36 + 35},
		{"1_000_000", 10, 1000000},
		{"123_u32", 10, 123},
		{"7f_i8", 16, 127},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			x := mustExt(t, 64, 0)
			if err := x.Bits().ParseRadix(tt.in, tt.radix, false); err != nil {
				t.Fatalf("ParseRadix(%q, %d): %v", tt.in, tt.radix, err)
			}
			if got := x.Bits().ToU64(); got != tt.want {
				t.Errorf("ParseRadix(%q, %d) = %d, want %d", tt.in, tt.radix, got, tt.want)
			}
		})
	}
}

func TestParseRadix_Errors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		radix  int
		signed bool
		kind   bits.ErrorKind
	}{
		{"empty", "", 10, false, bits.ErrorParseEmpty},
		{"leading separator", "_1", 10, false, bits.ErrorParseInvalidChar},
		{"sign unsigned", "-1", 10, false, bits.ErrorParseInvalidChar},
		{"bad char", "12x", 10, false, bits.ErrorParseInvalidChar},
		{"char above radix", "19", 8, false, bits.ErrorParseInvalidChar},
		{"overflow", "100", 16, false, bits.ErrorParseOverflow},
		{"signed overflow", "ff", 16, true, bits.ErrorParseOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := mustExt(t, 8, 0)
			err := x.Bits().ParseRadix(tt.in, tt.radix, tt.signed)
			if kind, ok := bits.KindOf(err); !ok || kind != tt.kind {
				t.Errorf("ParseRadix(%q) = %v, want kind %v", tt.in, err, tt.kind)
			}
			if !x.Bits().IsZero() {
				t.Errorf("receiver not cleared after failed parse of %q", tt.in)
			}
		})
	}
}

func TestParseRadix_EmptyMantissa(t *testing.T) {
	x := mustExt(t, 8, 0xFF)
	if err := x.Bits().ParseRadix("0x", 0, false); err != nil {
		t.Fatalf("ParseRadix: %v", err)
	}
	if !x.Bits().IsZero() {
		t.Error("empty mantissa should parse as zero")
	}
}

func TestParseRadix_SignedBoundaries(t *testing.T) {
	// width 8 signed admits [-128, 127]
	x := mustExt(t, 8, 0)
	if err := x.Bits().ParseRadix("-80", 16, true); err != nil {
		t.Fatalf("-128 should fit: %v", err)
	}
	if got := x.Bits().ToU64(); got != 0x80 {
		t.Errorf("-128 = %#x, want 0x80", got)
	}
	if err := x.Bits().ParseRadix("7f", 16, true); err != nil {
		t.Fatalf("127 should fit: %v", err)
	}
	err := x.Bits().ParseRadix("-81", 16, true)
	if kind, ok := bits.KindOf(err); !ok || kind != bits.ErrorParseOverflow {
		t.Errorf("-129 at width 8: got %v, want parse overflow", err)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	for _, radix := range []int{2, 8, 10, 16, 36} {
		for i := 0; i < 50; i++ {
			bw := 1 + rng.Intn(300)
			x := randExt(t, rng, bw)

			for _, signed := range []bool{false, true} {
				s, err := x.Bits().Format(radix, signed, false)
				if err != nil {
					t.Fatalf("Format: %v", err)
				}
				y := mustExt(t, bw, 0)
				if err := y.Bits().ParseRadix(s, radix, signed); err != nil {
					t.Fatalf("reparse %q radix %d signed %v: %v", s, radix, signed, err)
				}
				if eq, _ := x.Bits().Eq(y.Bits()); !eq {
					t.Fatalf("bw %d radix %d signed %v: round trip via %q changed the value", bw, radix, signed, s)
				}
			}
		}
	}
}

func TestFormat_Zero(t *testing.T) {
	x := mustExt(t, 40, 0)
	s, err := x.Bits().Format(10, false, false)
	if err != nil || s != "0" {
		t.Errorf("Format(0) = %q, %v", s, err)
	}
}

func TestFormat_Uppercase(t *testing.T) {
	x := mustExt(t, 16, 0xBEEF)
	s, err := x.Bits().Format(16, false, true)
	if err != nil || s != "BEEF" {
		t.Errorf("Format upper = %q, %v", s, err)
	}
}

func TestCharsUpperBound(t *testing.T) {
	if got := bits.CharsUpperBound(8, 2); got < 9 {
		t.Errorf("bound %d too small for 8 binary digits and a sign", got)
	}
	if got := bits.CharsUpperBound(64, 16); got < 17 {
		t.Errorf("bound %d too small for 16 hex digits and a sign", got)
	}
	// the saturating arithmetic must not wrap on pathological widths
	huge := bits.CharsUpperBound(int(^uint(0)>>1), 2)
	if huge <= 0 {
		t.Errorf("bound overflowed to %d", huge)
	}
	if got := bits.CharsUpperBound(0, 10); got != 0 {
		t.Errorf("invalid width bound = %d, want 0", got)
	}
}
