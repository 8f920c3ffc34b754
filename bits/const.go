package bits

import "github.com/AaronKutch/awint/digit"

// Zero writes the all-zeros value
func (x *Bits) Zero() {
	for i := range x.dig {
		x.dig[i] = 0
	}
}

// UMax writes the unsigned maximum, all ones
func (x *Bits) UMax() {
	for i := range x.dig {
		x.dig[i] = digit.Max
	}
	x.clearUnused()
}

// IMax writes the signed maximum: all ones except the sign bit
func (x *Bits) IMax() {
	x.UMax()
	// the invariant guarantees Set cannot fail at bw-1
	_ = x.Set(x.bw-1, false)
}

// IMin writes the signed minimum: only the sign bit set
func (x *Bits) IMin() {
	x.Zero()
	_ = x.Set(x.bw-1, true)
}

// UOne writes the value 1
func (x *Bits) UOne() {
	x.Zero()
	x.dig[0] = 1
}

// Copy copies src into the receiver bit for bit. The widths must match.
// Copying a view onto itself is a no-op; any other memory sharing between
// the two views is rejected.
func (x *Bits) Copy(src *Bits) error {
	if x.bw != src.bw {
		return widthMismatch("Copy", x.bw, src.bw)
	}
	if sameView(x, src) {
		return nil
	}
	if overlapDistinct(x, src) {
		return newError("Copy", ErrorOverlap, "arguments share backing memory")
	}
	copy(x.dig, src.dig)
	return nil
}
