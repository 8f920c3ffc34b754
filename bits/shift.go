package bits

import "github.com/AaronKutch/awint/digit"

// checkShift validates a shift amount: the raw numerical amount must be
// in [0, bw), with no silent truncation of oversized amounts
func (x *Bits) checkShift(op string, s int) error {
	if s < 0 || s >= x.bw {
		return newError(op, ErrorNonRepresentable, "shift %d, width %d", s, x.bw)
	}
	return nil
}

// shlDigits shifts the digit run left by s bits, filling with zeros.
// The unused bits of the last digit are left dirty.
func (x *Bits) shlDigits(s int) {
	ds, bs := s/digit.Bits, s%digit.Bits
	for i := len(x.dig) - 1; i >= 0; i-- {
		var w digit.Digit
		if i-ds >= 0 {
			w = x.dig[i-ds] << bs
			if bs != 0 && i-ds-1 >= 0 {
				w |= x.dig[i-ds-1] >> (digit.Bits - bs)
			}
		}
		x.dig[i] = w
	}
}

// shrDigits shifts the digit run right by s bits, filling with fill bits
// from position bw upward. The caller provides fill as 0 or all-ones.
func (x *Bits) shrDigits(s int, fill digit.Digit) {
	// work on a conceptually bw-wide value: the unused bits of the last
	// digit are treated as fill before the shift
	e := x.extra()
	last := len(x.dig) - 1
	if e != 0 && fill != 0 {
		x.dig[last] |= digit.Max << e
	}
	ds, bs := s/digit.Bits, s%digit.Bits
	for i := 0; i < len(x.dig); i++ {
		w := fill
		if i+ds < len(x.dig) {
			w = x.dig[i+ds] >> bs
			if bs != 0 {
				hi := fill
				if i+ds+1 < len(x.dig) {
					hi = x.dig[i+ds+1]
				}
				w |= hi << (digit.Bits - bs)
			}
		}
		x.dig[i] = w
	}
	x.clearUnused()
}

// Shl shifts left by s in place, filling with zeros
func (x *Bits) Shl(s int) error {
	if err := x.checkShift("Shl", s); err != nil {
		return err
	}
	x.shlDigits(s)
	x.clearUnused()
	return nil
}

// Lshr logically shifts right by s in place, filling with zeros
func (x *Bits) Lshr(s int) error {
	if err := x.checkShift("Lshr", s); err != nil {
		return err
	}
	x.shrDigits(s, 0)
	return nil
}

// Ashr arithmetically shifts right by s in place, replicating bit bw-1
func (x *Bits) Ashr(s int) error {
	if err := x.checkShift("Ashr", s); err != nil {
		return err
	}
	var fill digit.Digit
	if x.Msb() {
		fill = digit.Max
	}
	x.shrDigits(s, fill)
	return nil
}

// Rotl rotates left by s in place
func (x *Bits) Rotl(s int) error {
	if err := x.checkShift("Rotl", s); err != nil {
		return err
	}
	x.rotate(s)
	return nil
}

// Rotr rotates right by s in place
func (x *Bits) Rotr(s int) error {
	if err := x.checkShift("Rotr", s); err != nil {
		return err
	}
	if s != 0 {
		x.rotate(x.bw - s)
	}
	return nil
}

// rotate rotates left by s in [0, bw) using a digit-at-a-time window
// walk over the source positions
func (x *Bits) rotate(s int) {
	if s == 0 {
		return
	}
	src := make([]digit.Digit, len(x.dig))
	copy(src, x.dig)
	tmp := Bits{dig: src, bw: x.bw}
	for i := range x.dig {
		pos := i * digit.Bits
		n := digit.Bits
		if x.bw-pos < n {
			n = x.bw - pos
		}
		// bit j of the result is bit (j - s) mod bw of the source; read
		// the window in two pieces split at the wrap point
		from := pos - s
		if from < 0 {
			from += x.bw
		}
		lowBits := x.bw - from
		if lowBits >= n {
			x.dig[i] = tmp.readWindow(from, n)
		} else {
			w := tmp.readWindow(from, lowBits)
			w |= tmp.readWindow(0, n-lowBits) << lowBits
			x.dig[i] = w
		}
	}
	x.clearUnused()
}

// Funnel is the barrel-shifter primitive: the receiver is filled with the
// bw-wide window of rhs starting at the bit position named by amt. The
// receiver width must be exactly half of rhs's, and amt's width must be
// exactly the number of bits needed to represent every window start in
// [0, bw].
func (x *Bits) Funnel(rhs, amt *Bits) error {
	if rhs.bw != 2*x.bw {
		return newError("Funnel", ErrorWidthMismatch, "source width %d, receiver width %d", rhs.bw, x.bw)
	}
	if amt.bw != log2Exact(x.bw) {
		return newError("Funnel", ErrorWidthMismatch, "amount width %d, need %d", amt.bw, log2Exact(x.bw))
	}
	s := int(amt.toU64())
	for i := range x.dig {
		pos := i * digit.Bits
		n := digit.Bits
		if x.bw-pos < n {
			n = x.bw - pos
		}
		x.dig[i] = rhs.readWindow(s+pos, n)
	}
	x.clearUnused()
	return nil
}
