// Package digit provides the configurable-width storage word underlying
// all multi-digit arithmetic, together with the widening and counting
// primitives the bits engine is built from.
//
// The digit width is a build-time choice: the default is the 64-bit
// platform word, and the awint_digit_8, awint_digit_16 and awint_digit_32
// build tags select narrower words. The public contract is identical for
// every selection.
package digit

import "math/bits"

// BytesPerDigit is the number of bytes a Digit occupies when serialized
const BytesPerDigit = Bits / 8

// Clz returns the number of leading zero bits in d
func Clz(d Digit) int {
	return bits.LeadingZeros64(uint64(d)) - (64 - Bits)
}

// Ctz returns the number of trailing zero bits in d
func Ctz(d Digit) int {
	if d == 0 {
		return Bits
	}
	return bits.TrailingZeros64(uint64(d))
}

// OnesCount returns the number of set bits in d
func OnesCount(d Digit) int {
	return bits.OnesCount64(uint64(d))
}

// FromBytes assembles a Digit from up to BytesPerDigit little-endian
// bytes. Missing bytes read as zero. The packing is digit-ordered and
// never reinterprets host memory, so it behaves identically on little-
// and big-endian hosts.
func FromBytes(b []byte) Digit {
	var d Digit
	n := len(b)
	if n > BytesPerDigit {
		n = BytesPerDigit
	}
	for i := 0; i < n; i++ {
		d |= Digit(b[i]) << (8 * i)
	}
	return d
}

// PutBytes writes d little-endian into up to BytesPerDigit bytes of b
func PutBytes(b []byte, d Digit) {
	n := len(b)
	if n > BytesPerDigit {
		n = BytesPerDigit
	}
	for i := 0; i < n; i++ {
		b[i] = byte(d >> (8 * i))
	}
}
