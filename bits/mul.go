package bits

import "github.com/AaronKutch/awint/digit"

// mulCheck validates widths and aliasing for the multiply family: the
// receiver accumulates while the operands are read, so it may not share
// memory with either; the operands may be the identical view (squaring)
// but not partially overlapping
func (x *Bits) mulCheck(op string, lhs, rhs *Bits) error {
	if shareBacking(x, lhs) || shareBacking(x, rhs) {
		return newError(op, ErrorOverlap, "receiver shares backing memory with an operand")
	}
	if overlapDistinct(lhs, rhs) {
		return newError(op, ErrorOverlap, "operands share backing memory")
	}
	return nil
}

// MulAdd adds lhs * rhs to the receiver, truncated modulo 2^bw.
// Schoolbook multiplication over the widening digit primitive.
func (x *Bits) MulAdd(lhs, rhs *Bits) error {
	if x.bw != lhs.bw {
		return widthMismatch("MulAdd", x.bw, lhs.bw)
	}
	if x.bw != rhs.bw {
		return widthMismatch("MulAdd", x.bw, rhs.bw)
	}
	if err := x.mulCheck("MulAdd", lhs, rhs); err != nil {
		return err
	}
	n := len(x.dig)
	for i := 0; i < n; i++ {
		a := lhs.dig[i]
		if a == 0 {
			continue
		}
		var carry digit.Digit
		for j := 0; j < n-i; j++ {
			x.dig[i+j], carry = digit.MulAdd(a, rhs.dig[j], x.dig[i+j], carry)
		}
	}
	x.clearUnused()
	return nil
}

// Mul writes lhs * rhs into the receiver, truncated modulo 2^bw
func (x *Bits) Mul(lhs, rhs *Bits) error {
	if x.bw != lhs.bw {
		return widthMismatch("Mul", x.bw, lhs.bw)
	}
	if x.bw != rhs.bw {
		return widthMismatch("Mul", x.bw, rhs.bw)
	}
	if err := x.mulCheck("Mul", lhs, rhs); err != nil {
		return err
	}
	x.Zero()
	return x.MulAdd(lhs, rhs)
}

// extDigit returns digit i of b as if b were extended to arbitrary
// width: digits past the run are the fill pattern, and the partial last
// digit has its unused bits filled in
func extDigit(b *Bits, i int, neg bool) digit.Digit {
	last := len(b.dig) - 1
	switch {
	case i < last:
		return b.dig[i]
	case i == last:
		d := b.dig[i]
		if neg {
			d |= ^b.lastMask()
		}
		return d
	default:
		if neg {
			return digit.Max
		}
		return 0
	}
}

// arbMulAdd is the shared arbitrary-width accumulate: the receiver width
// is independent of the operand widths; operands are conceptually
// extended with their fill digits and the product truncated to the
// receiver
func (x *Bits) arbMulAdd(lhs, rhs *Bits, lneg, rneg bool) {
	n := len(x.dig)
	for i := 0; i < n; i++ {
		a := extDigit(lhs, i, lneg)
		if a == 0 {
			continue
		}
		var carry digit.Digit
		for j := 0; j < n-i; j++ {
			x.dig[i+j], carry = digit.MulAdd(a, extDigit(rhs, j, rneg), x.dig[i+j], carry)
		}
	}
	x.clearUnused()
}

// ArbUmulAdd adds lhs * rhs to the receiver with all three widths
// independent: the operands are zero-extended conceptually and the
// product truncated to the receiver width
func (x *Bits) ArbUmulAdd(lhs, rhs *Bits) error {
	if err := x.mulCheck("ArbUmulAdd", lhs, rhs); err != nil {
		return err
	}
	x.arbMulAdd(lhs, rhs, false, false)
	return nil
}

// ArbImulAdd adds lhs * rhs to the receiver with all three widths
// independent: the operands are sign-extended conceptually and the
// product truncated to the receiver width
func (x *Bits) ArbImulAdd(lhs, rhs *Bits) error {
	if err := x.mulCheck("ArbImulAdd", lhs, rhs); err != nil {
		return err
	}
	x.arbMulAdd(lhs, rhs, lhs.Msb(), rhs.Msb())
	return nil
}
