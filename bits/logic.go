package bits

import "github.com/AaronKutch/awint/digit"

// Not inverts every bit in place
func (x *Bits) Not() {
	for i := range x.dig {
		x.dig[i] = ^x.dig[i]
	}
	x.clearUnused()
}

// And bitwise-ANDs rhs into the receiver
func (x *Bits) And(rhs *Bits) error {
	if x.bw != rhs.bw {
		return widthMismatch("And", x.bw, rhs.bw)
	}
	for i := range x.dig {
		x.dig[i] &= rhs.dig[i]
	}
	return nil
}

// Or bitwise-ORs rhs into the receiver
func (x *Bits) Or(rhs *Bits) error {
	if x.bw != rhs.bw {
		return widthMismatch("Or", x.bw, rhs.bw)
	}
	for i := range x.dig {
		x.dig[i] |= rhs.dig[i]
	}
	return nil
}

// Xor bitwise-XORs rhs into the receiver
func (x *Bits) Xor(rhs *Bits) error {
	if x.bw != rhs.bw {
		return widthMismatch("Xor", x.bw, rhs.bw)
	}
	for i := range x.dig {
		x.dig[i] ^= rhs.dig[i]
	}
	x.clearUnused()
	return nil
}

// checkRange validates a [start, end) bit range against the width
func (x *Bits) checkRange(op string, start, end int) error {
	if start < 0 || end < start || end > x.bw {
		return newError(op, ErrorOutOfBounds, "range [%d, %d) in width %d", start, end, x.bw)
	}
	return nil
}

// rangeApply applies f(digit, mask-of-range-bits) to every digit the
// range [start, end) touches
func (x *Bits) rangeApply(start, end int, f func(d, mask digit.Digit) digit.Digit) {
	for i := range x.dig {
		lo, hi := i*digit.Bits, (i+1)*digit.Bits
		if hi <= start || lo >= end {
			continue
		}
		mask := digit.Max
		if start > lo {
			mask &= digit.Max << (start - lo)
		}
		if end < hi {
			mask &= digit.Digit(1)<<(end-lo) - 1
		}
		x.dig[i] = f(x.dig[i], mask)
	}
}

// RangeAnd clears every bit outside [start, end)
func (x *Bits) RangeAnd(start, end int) error {
	if err := x.checkRange("RangeAnd", start, end); err != nil {
		return err
	}
	for i := range x.dig {
		lo, hi := i*digit.Bits, (i+1)*digit.Bits
		if hi <= start || lo >= end {
			x.dig[i] = 0
		}
	}
	x.rangeApply(start, end, func(d, mask digit.Digit) digit.Digit { return d & mask })
	return nil
}

// RangeOr sets every bit in [start, end)
func (x *Bits) RangeOr(start, end int) error {
	if err := x.checkRange("RangeOr", start, end); err != nil {
		return err
	}
	x.rangeApply(start, end, func(d, mask digit.Digit) digit.Digit { return d | mask })
	return nil
}

// RangeXor flips every bit in [start, end)
func (x *Bits) RangeXor(start, end int) error {
	if err := x.checkRange("RangeXor", start, end); err != nil {
		return err
	}
	x.rangeApply(start, end, func(d, mask digit.Digit) digit.Digit { return d ^ mask })
	return nil
}

// Mux overwrites the receiver with other if cond, else leaves it
// unchanged. Both paths perform the same digit traffic so the selection
// does not leak through timing.
func (x *Bits) Mux(other *Bits, cond bool) error {
	if x.bw != other.bw {
		return widthMismatch("Mux", x.bw, other.bw)
	}
	var mask digit.Digit
	if cond {
		mask = digit.Max
	}
	for i := range x.dig {
		x.dig[i] = x.dig[i]&^mask | other.dig[i]&mask
	}
	return nil
}
