// Package fp layers a fixed-point interpretation over any Bits-backed
// storage: a value, a signedness flag, and a fractional point position.
// The point may sit anywhere in [-bw, 2*bw], so purely integral,
// fully fractional and over-shifted representations are all admitted.
package fp

import (
	"math"
	mbits "math/bits"

	"github.com/AaronKutch/awint/bits"
)

// MaxUfp caps the number of fractional digits Format will emit, so a
// pathological point position cannot exhaust memory through formatting
const MaxUfp = 4096

// FP pairs a Bits-backed value with its fixed-point interpretation
type FP struct {
	v      bits.Storage
	signed bool
	fp     int
}

// New wraps storage with a signedness flag and fractional point
// position. The point must be in [-bw, 2*bw].
func New(v bits.Storage, signed bool, fp int) (*FP, error) {
	bw := v.Bits().Bw()
	if fp < -bw || fp > 2*bw {
		return nil, bits.NewError("fp.New", bits.ErrorNonRepresentable, "point %d, width %d", fp, bw)
	}
	return &FP{v: v, signed: signed, fp: fp}, nil
}

// Signed reports the signedness flag
func (x *FP) Signed() bool {
	return x.signed
}

// Fp returns the fractional point position
func (x *FP) Fp() int {
	return x.fp
}

// SetFp moves the fractional point, keeping it in [-bw, 2*bw]
func (x *FP) SetFp(fp int) error {
	bw := x.Bw()
	if fp < -bw || fp > 2*bw {
		return bits.NewError("fp.SetFp", bits.ErrorNonRepresentable, "point %d, width %d", fp, bw)
	}
	x.fp = fp
	return nil
}

// Bits returns the view over the wrapped value
func (x *FP) Bits() *bits.Bits {
	return x.v.Bits()
}

// Bw returns the wrapped value's width
func (x *FP) Bw() int {
	return x.v.Bits().Bw()
}

// Mul writes a * b into dst as the widening fixed-point product: dst's
// point must be the sum of the operand points, and its signedness the OR
// of theirs. The operand widths are independent; the product truncates
// to dst's width.
func Mul(dst, a, b *FP) error {
	if dst.fp != a.fp+b.fp {
		return bits.NewError("fp.Mul", bits.ErrorNonRepresentable,
			"destination point %d, operand points %d + %d", dst.fp, a.fp, b.fp)
	}
	if dst.signed != (a.signed || b.signed) {
		return bits.NewError("fp.Mul", bits.ErrorNonRepresentable, "signedness of destination does not cover operands")
	}
	d := dst.Bits()
	d.Zero()
	if dst.signed {
		return d.ArbImulAdd(a.Bits(), b.Bits())
	}
	return d.ArbUmulAdd(a.Bits(), b.Bits())
}

// negCheck applies the sign of a finite float to the freshly assigned
// magnitude
func (x *FP) negCheck(neg bool) error {
	b := x.Bits()
	if !neg {
		if x.signed && b.Msb() {
			b.Zero()
			return bits.NewError("fp.SetF64", bits.ErrorNonRepresentable, "magnitude exceeds signed width %d", x.Bw())
		}
		return nil
	}
	if !x.signed {
		if !b.IsZero() {
			b.Zero()
			return bits.NewError("fp.SetF64", bits.ErrorNonRepresentable, "negative value, unsigned target")
		}
		return nil
	}
	if b.Msb() && b.Tz() != x.Bw()-1 {
		b.Zero()
		return bits.NewError("fp.SetF64", bits.ErrorNonRepresentable, "magnitude exceeds signed width %d", x.Bw())
	}
	b.Neg(true)
	return nil
}

// SetF64 assigns a finite float, rounding to nearest-even at the
// fractional point. Infinities and NaN are rejected.
func (x *FP) SetF64(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return bits.NewError("fp.SetF64", bits.ErrorNonRepresentable, "non-finite input")
	}
	neg, exp, frac := F64Parts(f)
	b := x.Bits()
	b.Zero()
	var m uint64
	var e int
	if exp == 0 {
		m, e = frac, 1-1023-52 // subnormal
	} else {
		m, e = frac|1<<52, exp-1023-52
	}
	if m == 0 {
		return nil
	}
	sh := e + x.fp
	if sh < 0 {
		// round to nearest even at the point
		t := -sh
		if t > 54 {
			return nil
		}
		guard := m>>(t-1)&1 != 0
		sticky := t >= 2 && m&(1<<(t-1)-1) != 0
		m >>= t
		if guard && (sticky || m&1 != 0) {
			m++
		}
		if m == 0 {
			return nil
		}
		sh = 0
	}
	need := 64 - mathClz64(m) + sh
	if need > b.Bw() {
		return bits.NewError("fp.SetF64", bits.ErrorNonRepresentable, "value needs %d bits, width %d", need, b.Bw())
	}
	b.U64Assign(m)
	if sh > 0 {
		if err := b.Shl(sh); err != nil {
			return err
		}
	}
	return x.negCheck(neg)
}

// SetF32 assigns a finite binary32 value through the binary64 path,
// which is exact
func (x *FP) SetF32(f float32) error {
	return x.SetF64(float64(f))
}

// ToF64 converts to the nearest binary64 value, rounding to nearest
// even; magnitudes beyond the binary64 range become infinities
func (x *FP) ToF64() float64 {
	scratch, err := bits.ExtFromBits(x.Bits())
	if err != nil {
		return 0
	}
	b := scratch.Bits()
	neg := x.signed && b.Msb()
	b.Neg(neg)
	sig := b.Sig()
	if sig == 0 {
		return 0
	}
	var m uint64
	e := sig - 53 - x.fp
	if sig <= 53 {
		m = b.ToU64() << (53 - sig)
	} else {
		t := sig - 53
		guard, _ := b.Get(t - 1)
		sticky := b.Tz() < t-1
		if err := b.Lshr(t); err != nil {
			return 0
		}
		m = b.ToU64()
		if guard && (sticky || m&1 != 0) {
			m++
			if m == 1<<53 {
				m >>= 1
				e++
			}
		}
	}
	f := math.Ldexp(float64(m), e)
	if neg {
		f = -f
	}
	return f
}

func mathClz64(v uint64) int {
	return mbits.LeadingZeros64(v)
}
