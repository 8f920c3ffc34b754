package bits

import "github.com/AaronKutch/awint/digit"

// addChain adds rhs and a carry-in into the receiver's digits, returning
// the raw last digit before masking and the carry out of the digit chain.
// The unused bits are re-cleared before returning; the raw value lets
// CinSum recover the carry out of bit position bw-1.
func (x *Bits) addChain(rhs *Bits, cin digit.Digit) (rawLast, chainCarry digit.Digit) {
	carry := cin
	for i := range x.dig {
		x.dig[i], carry = digit.Add(x.dig[i], rhs.dig[i], carry)
	}
	rawLast = x.dig[len(x.dig)-1]
	x.clearUnused()
	return rawLast, carry
}

// Add adds rhs into the receiver modulo 2^bw
func (x *Bits) Add(rhs *Bits) error {
	if x.bw != rhs.bw {
		return widthMismatch("Add", x.bw, rhs.bw)
	}
	x.addChain(rhs, 0)
	return nil
}

// Sub subtracts rhs from the receiver modulo 2^bw
func (x *Bits) Sub(rhs *Bits) error {
	if x.bw != rhs.bw {
		return widthMismatch("Sub", x.bw, rhs.bw)
	}
	var borrow digit.Digit
	for i := range x.dig {
		x.dig[i], borrow = digit.Sub(x.dig[i], rhs.dig[i], borrow)
	}
	x.clearUnused()
	return nil
}

// Rsb reverse-subtracts: receiver = rhs - receiver modulo 2^bw
func (x *Bits) Rsb(rhs *Bits) error {
	if x.bw != rhs.bw {
		return widthMismatch("Rsb", x.bw, rhs.bw)
	}
	var borrow digit.Digit
	for i := range x.dig {
		x.dig[i], borrow = digit.Sub(rhs.dig[i], x.dig[i], borrow)
	}
	x.clearUnused()
	return nil
}

// Neg two's-complement negates the receiver in place if cond
func (x *Bits) Neg(cond bool) {
	if !cond {
		return
	}
	carry := digit.Digit(1)
	for i := range x.dig {
		x.dig[i], carry = digit.Add(^x.dig[i], 0, carry)
	}
	x.clearUnused()
}

// CinSum writes lhs + rhs + cin into the receiver and returns the
// unsigned and signed overflow indicators. Unsigned overflow is the
// carry out of bit position bw-1, recovered from the raw sum when the
// last digit is partial; signed overflow follows the
// same-signs-in, different-sign-out rule.
func (x *Bits) CinSum(cin bool, lhs, rhs *Bits) (uof, iof bool, err error) {
	if x.bw != lhs.bw {
		return false, false, widthMismatch("CinSum", x.bw, lhs.bw)
	}
	if x.bw != rhs.bw {
		return false, false, widthMismatch("CinSum", x.bw, rhs.bw)
	}
	lhsSign, rhsSign := lhs.Msb(), rhs.Msb()
	// the receiver may be one of the operands; add the other one in
	other := rhs
	switch {
	case sameView(x, lhs):
	case sameView(x, rhs):
		other = lhs
	default:
		if err := x.Copy(lhs); err != nil {
			return false, false, err
		}
	}
	var c digit.Digit
	if cin {
		c = 1
	}
	rawLast, chainCarry := x.addChain(other, c)
	if e := x.extra(); e != 0 {
		uof = rawLast>>e&1 != 0
	} else {
		uof = chainCarry != 0
	}
	iof = lhsSign == rhsSign && x.Msb() != lhsSign
	return uof, iof, nil
}
