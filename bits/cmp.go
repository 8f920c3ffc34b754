package bits

// ucmp compares two same-width digit runs as unsigned integers,
// returning -1, 0, or 1
func ucmp(x, y *Bits) int {
	for i := len(x.dig) - 1; i >= 0; i-- {
		switch {
		case x.dig[i] < y.dig[i]:
			return -1
		case x.dig[i] > y.dig[i]:
			return 1
		}
	}
	return 0
}

// icmp compares two same-width digit runs as signed integers
func icmp(x, y *Bits) int {
	xs, ys := x.Msb(), y.Msb()
	if xs != ys {
		if xs {
			return -1
		}
		return 1
	}
	// same sign: two's-complement ordering matches unsigned ordering
	return ucmp(x, y)
}

// cmpCheck validates the width match shared by every comparison
func (x *Bits) cmpCheck(op string, rhs *Bits) error {
	if x.bw != rhs.bw {
		return widthMismatch(op, x.bw, rhs.bw)
	}
	return nil
}

// Eq reports whether the receiver equals rhs
func (x *Bits) Eq(rhs *Bits) (bool, error) {
	if err := x.cmpCheck("Eq", rhs); err != nil {
		return false, err
	}
	return ucmp(x, rhs) == 0, nil
}

// ULt reports unsigned receiver < rhs
func (x *Bits) ULt(rhs *Bits) (bool, error) {
	if err := x.cmpCheck("ULt", rhs); err != nil {
		return false, err
	}
	return ucmp(x, rhs) < 0, nil
}

// ULe reports unsigned receiver <= rhs
func (x *Bits) ULe(rhs *Bits) (bool, error) {
	if err := x.cmpCheck("ULe", rhs); err != nil {
		return false, err
	}
	return ucmp(x, rhs) <= 0, nil
}

// UGt reports unsigned receiver > rhs
func (x *Bits) UGt(rhs *Bits) (bool, error) {
	if err := x.cmpCheck("UGt", rhs); err != nil {
		return false, err
	}
	return ucmp(x, rhs) > 0, nil
}

// UGe reports unsigned receiver >= rhs
func (x *Bits) UGe(rhs *Bits) (bool, error) {
	if err := x.cmpCheck("UGe", rhs); err != nil {
		return false, err
	}
	return ucmp(x, rhs) >= 0, nil
}

// ILt reports signed receiver < rhs
func (x *Bits) ILt(rhs *Bits) (bool, error) {
	if err := x.cmpCheck("ILt", rhs); err != nil {
		return false, err
	}
	return icmp(x, rhs) < 0, nil
}

// ILe reports signed receiver <= rhs
func (x *Bits) ILe(rhs *Bits) (bool, error) {
	if err := x.cmpCheck("ILe", rhs); err != nil {
		return false, err
	}
	return icmp(x, rhs) <= 0, nil
}

// IGt reports signed receiver > rhs
func (x *Bits) IGt(rhs *Bits) (bool, error) {
	if err := x.cmpCheck("IGt", rhs); err != nil {
		return false, err
	}
	return icmp(x, rhs) > 0, nil
}

// IGe reports signed receiver >= rhs
func (x *Bits) IGe(rhs *Bits) (bool, error) {
	if err := x.cmpCheck("IGe", rhs); err != nil {
		return false, err
	}
	return icmp(x, rhs) >= 0, nil
}

// TotalCmp is the signed lexicographic comparison, returning -1, 0, or 1
func (x *Bits) TotalCmp(rhs *Bits) (int, error) {
	if err := x.cmpCheck("TotalCmp", rhs); err != nil {
		return 0, err
	}
	return icmp(x, rhs), nil
}
