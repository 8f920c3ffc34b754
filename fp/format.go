package fp

import (
	"strings"

	"github.com/AaronKutch/awint/bits"
)

// Format renders the fixed-point value at the given radix as
// "[-]integer[.fraction]". Fraction digits are emitted until the
// fraction is exhausted or MaxUfp digits have been produced, whichever
// comes first.
func (x *FP) Format(radix int) (string, error) {
	if radix < 2 || radix > 36 {
		return "", bits.NewError("fp.Format", bits.ErrorNonRepresentable, "radix %d", radix)
	}
	bw := x.Bw()
	mag, err := bits.ExtFromBits(x.Bits())
	if err != nil {
		return "", err
	}
	m := mag.Bits()
	neg := x.signed && m.Msb()
	m.Neg(neg)

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}

	if x.fp <= 0 {
		// the value is integral with -fp implied trailing zero bits
		wide, err := bits.NewExt(bw - x.fp)
		if err != nil {
			return "", err
		}
		w := wide.Bits()
		if err := bits.FieldTo(w, -x.fp, m, bw); err != nil {
			return "", err
		}
		s, err := w.Format(radix, false, false)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
		return sb.String(), nil
	}

	// integer part: the bits above the point
	if x.fp >= bw {
		sb.WriteByte('0')
	} else {
		ipart, err := bits.NewExt(bw - x.fp)
		if err != nil {
			return "", err
		}
		ip := ipart.Bits()
		if err := bits.FieldFrom(ip, m, x.fp, bw-x.fp); err != nil {
			return "", err
		}
		s, err := ip.Format(radix, false, false)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}

	// fraction part: numerator over 2^fp, multiplied up one radix digit
	// at a time; headroom above the point holds the emitted digit
	fracBits := x.fp
	if fracBits > bw {
		fracBits = bw
	}
	num, err := bits.NewExt(x.fp + 8)
	if err != nil {
		return "", err
	}
	n := num.Bits()
	if err := bits.FieldWidth(n, m, fracBits); err != nil {
		return "", err
	}
	if n.IsZero() {
		sb.WriteString(".0")
		return sb.String(), nil
	}
	rad, err := bits.ExtFromU64(n.Bw(), uint64(radix))
	if err != nil {
		return "", err
	}
	scratch, err := bits.NewExt(n.Bw())
	if err != nil {
		return "", err
	}
	hi, err := bits.NewExt(8)
	if err != nil {
		return "", err
	}
	sb.WriteByte('.')
	for i := 0; i < MaxUfp && !n.IsZero(); i++ {
		s := scratch.Bits()
		s.Zero()
		if err := s.ArbUmulAdd(n, rad.Bits()); err != nil {
			return "", err
		}
		// the emitted digit is the part of the product above the point
		var d int
		if x.fp <= 58 {
			d = int(s.ToU64() >> uint(x.fp) & 0x3f)
		} else {
			if err := bits.FieldFrom(hi.Bits(), s, x.fp, 8); err != nil {
				return "", err
			}
			d = int(hi.Bits().ToU64())
		}
		sb.WriteByte("0123456789abcdefghijklmnopqrstuvwxyz"[d])
		if err := s.RangeAnd(0, x.fp); err != nil {
			return "", err
		}
		if err := n.Copy(s); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}
