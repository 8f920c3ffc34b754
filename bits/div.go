package bits

import "github.com/AaronKutch/awint/digit"

// Division runs a small deterministic state machine. A one-digit divisor
// takes the short path; otherwise the divisor is normalized so its top
// significant bit is set, each quotient digit is produced from a
// two-digit estimate refined against the third digit, the multiply-
// subtract step applies it, and an overshoot triggers the single add-back
// correction. Finalize denormalizes the remainder.

// divCheck validates the shared precondition of both division entry
// points: four equal widths, non-aliasing outputs, nonzero divisor
func divCheck(op string, q, r, n, d *Bits) error {
	for _, b := range []*Bits{r, n, d} {
		if q.bw != b.bw {
			return widthMismatch(op, q.bw, b.bw)
		}
	}
	// q and r are written while n and d are read; no output may share
	// memory with anything else
	if shareBacking(q, r) {
		return newError(op, ErrorOverlap, "quotient and remainder share backing memory")
	}
	for _, out := range []*Bits{q, r} {
		if shareBacking(out, n) || shareBacking(out, d) {
			return newError(op, ErrorOverlap, "output shares backing memory with an input")
		}
	}
	if d.IsZero() {
		return newError(op, ErrorDivision, "zero divisor")
	}
	return nil
}

// sigDigits returns the number of digits up to and including the highest
// nonzero one, at least 1
func sigDigits(x *Bits) int {
	for i := len(x.dig) - 1; i > 0; i-- {
		if x.dig[i] != 0 {
			return i + 1
		}
	}
	return 1
}

// UDivide computes the unsigned quotient and remainder of n / d. All
// four arguments share one width; q and r are overwritten.
func UDivide(q, r, n, d *Bits) error {
	if err := divCheck("UDivide", q, r, n, d); err != nil {
		return err
	}
	udivide(q, r, n, d)
	return nil
}

// udivide dispatches between the short and long paths after the
// boundary checks have passed. It returns the number of add-back
// corrections the long path performed, for the white-box property tests.
func udivide(q, r, n, d *Bits) int {
	dlen := sigDigits(d)
	if dlen == 1 {
		shortDivide(q, r, n, d.dig[0])
		return 0
	}
	return longDivide(q, r, n, d, dlen)
}

// shortDivide divides by a one-digit divisor with a chain of
// double-digit by digit steps from the top down
func shortDivide(q, r, n *Bits, d digit.Digit) {
	var rem digit.Digit
	for i := len(n.dig) - 1; i >= 0; i-- {
		q.dig[i], rem = digit.Div2by1(rem, n.dig[i], d)
	}
	r.Zero()
	r.dig[0] = rem
}

// longDivide is the normalizing schoolbook long division (Knuth's
// algorithm D) for multi-digit divisors. The normalized dividend lives
// in r's backing plus one local top digit, so no scratch is allocated;
// the normalized divisor digits are produced on the fly from d.
// Returns how many add-back corrections ran.
func longDivide(q, r, n, d *Bits, dlen int) int {
	m := sigDigits(n)
	q.Zero()
	if m < dlen || ucmp(n, d) < 0 {
		_ = r.Copy(n)
		return 0
	}

	// Normalize: shift so the divisor's top significant bit is set. The
	// shifted divisor digit j is computed on demand; the shifted dividend
	// occupies r.dig[0:m] plus the top local digit.
	s := digit.Clz(d.dig[dlen-1])
	vn := func(j int) digit.Digit {
		w := d.dig[j] << s
		if s != 0 && j > 0 {
			w |= d.dig[j-1] >> (digit.Bits - s)
		}
		return w
	}
	var top digit.Digit
	if s != 0 {
		top = n.dig[m-1] >> (digit.Bits - s)
	}
	for i := m - 1; i >= 0; i-- {
		w := n.dig[i] << s
		if s != 0 && i > 0 {
			w |= n.dig[i-1] >> (digit.Bits - s)
		}
		r.dig[i] = w
	}
	for i := m; i < len(r.dig); i++ {
		r.dig[i] = 0
	}
	un := func(i int) digit.Digit {
		if i == m {
			return top
		}
		return r.dig[i]
	}
	setUn := func(i int, v digit.Digit) {
		if i == m {
			top = v
		} else {
			r.dig[i] = v
		}
	}

	v1, v0 := vn(dlen-1), vn(dlen-2)
	corrections := 0
	for j := m - dlen; j >= 0; j-- {
		// EstimateDigit: two-digit estimate refined against the third
		// dividend digit so the estimate is at most one too large
		u2, u1 := un(j+dlen), un(j+dlen-1)
		var u0 digit.Digit
		if j+dlen >= 2 {
			u0 = un(j + dlen - 2)
		}
		var qhat, rhat digit.Digit
		if u2 >= v1 {
			qhat = digit.Max
			rhat = u1 + v1 // may wrap; the refinement loop guards on it
			if rhat < v1 {
				goto estimated
			}
		} else {
			qhat, rhat = digit.Div2by1(u2, u1, v1)
		}
		for {
			lo, hi := digit.MulAdd(qhat, v0, 0, 0)
			if hi > rhat || (hi == rhat && lo > u0) {
				qhat--
				rhat += v1
				if rhat < v1 {
					break // rhat overflowed a digit; qhat*v0 can no longer exceed
				}
				continue
			}
			break
		}
	estimated:
		// multiply-subtract qhat * divisor from the dividend window
		var mulCarry, borrow digit.Digit
		for i := 0; i < dlen; i++ {
			var lo digit.Digit
			lo, mulCarry = digit.MulAdd(qhat, vn(i), mulCarry, 0)
			var diff digit.Digit
			diff, borrow = digit.Sub(un(j+i), lo, borrow)
			setUn(j+i, diff)
		}
		var diff digit.Digit
		diff, borrow = digit.Sub(un(j+dlen), mulCarry, borrow)
		setUn(j+dlen, diff)

		if borrow != 0 {
			// Correct: the estimate overshot by one; add the divisor back
			corrections++
			qhat--
			var carry digit.Digit
			for i := 0; i < dlen; i++ {
				var sum digit.Digit
				sum, carry = digit.Add(un(j+i), vn(i), carry)
				setUn(j+i, sum)
			}
			setUn(j+dlen, un(j+dlen)+carry)
		}
		q.dig[j] = qhat
	}

	// Finalize: denormalize the remainder out of r's low dlen digits
	for i := 0; i < dlen; i++ {
		w := r.dig[i] >> s
		if s != 0 {
			var hi digit.Digit
			if i+1 < dlen {
				hi = r.dig[i+1]
			}
			w |= hi << (digit.Bits - s)
		}
		r.dig[i] = w
	}
	for i := dlen; i < len(r.dig); i++ {
		r.dig[i] = 0
	}
	return corrections
}

// IDivide computes the signed quotient and remainder of n / d with
// truncation toward zero: q*d + r == n and the remainder takes the sign
// of the dividend. The minimum signed value divided by -1 wraps back to
// the minimum with a zero remainder.
func IDivide(q, r, n, d *Bits) error {
	if err := divCheck("IDivide", q, r, n, d); err != nil {
		return err
	}
	nNeg, dNeg := n.Msb(), d.Msb()
	// magnitude scratch; the inputs are read-only and q/r are consumed
	// by the unsigned core
	tn, err := New(n.bw)
	if err != nil {
		return err
	}
	td, err := New(d.bw)
	if err != nil {
		return err
	}
	copy(tn.dig, n.dig)
	tn.Neg(nNeg)
	copy(td.dig, d.dig)
	td.Neg(dNeg)
	udivide(q, r, tn, td)
	q.Neg(nNeg != dNeg)
	r.Neg(nNeg)
	return nil
}
