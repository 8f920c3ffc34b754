//go:build !awint_digit_8 && !awint_digit_16 && !awint_digit_32

package digit

import "math/bits"

// Digit is the storage word all multi-digit arithmetic is built from.
// The default selection is the 64-bit platform word; the awint_digit_8,
// awint_digit_16 and awint_digit_32 build tags select narrower words.
type Digit uint64

const (
	// Bits is the width of a Digit in bits
	Bits = 64

	// Max is the all-ones Digit value (always >= 255, for any selection)
	Max Digit = 1<<Bits - 1
)

// MulAdd computes a*b + c + d as a double-digit (lo, hi) pair.
// The result cannot overflow: (2^n-1)^2 + 2*(2^n-1) = 2^(2n)-1.
func MulAdd(a, b, c, d Digit) (lo, hi Digit) {
	h, l := bits.Mul64(uint64(a), uint64(b))
	var carry uint64
	l, carry = bits.Add64(l, uint64(c), 0)
	h += carry
	l, carry = bits.Add64(l, uint64(d), 0)
	h += carry
	return Digit(l), Digit(h)
}

// Div2by1 divides the double digit (hi, lo) by d, returning quotient and
// remainder. The caller must guarantee d != 0 and hi < d, so the quotient
// fits in a single digit.
func Div2by1(hi, lo, d Digit) (q, r Digit) {
	qq, rr := bits.Div64(uint64(hi), uint64(lo), uint64(d))
	return Digit(qq), Digit(rr)
}

// Add computes a + b + carry, where carry must be 0 or 1.
// The carry out is 0 or 1.
func Add(a, b, carry Digit) (sum, carryOut Digit) {
	s, c := bits.Add64(uint64(a), uint64(b), uint64(carry))
	return Digit(s), Digit(c)
}

// Sub computes a - b - borrow, where borrow must be 0 or 1.
// The borrow out is 0 or 1.
func Sub(a, b, borrow Digit) (diff, borrowOut Digit) {
	d, bo := bits.Sub64(uint64(a), uint64(b), uint64(borrow))
	return Digit(d), Digit(bo)
}
