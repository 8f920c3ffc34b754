package bits

import "github.com/AaronKutch/awint/digit"

// Cap is the capacitive storage flavor: a heap digit run with reserved
// capacity beyond the current width, so width changes inside the
// capacity are cheap pointer-and-mask work instead of reallocation.
type Cap struct {
	buf     []digit.Digit // full reserved capacity
	b       Bits          // view over buf[:digits-for-bw]
	zeroize bool
}

// NewCap returns a zero-filled Cap of the given width with capacity for
// at least capBits bits
func NewCap(bw, capBits int) (*Cap, error) {
	nd, ok := DigitsFor(bw)
	if !ok {
		return nil, newError("NewCap", ErrorAllocation, "invalid width %d", bw)
	}
	cd := nd
	if capBits > bw {
		cdReq, ok := DigitsFor(capBits)
		if !ok {
			return nil, newError("NewCap", ErrorAllocation, "invalid capacity %d", capBits)
		}
		cd = cdReq
	}
	c := &Cap{buf: make([]digit.Digit, cd)}
	c.b = Bits{dig: c.buf[:nd], bw: bw}
	return c, nil
}

// CapFromBits returns a Cap holding a copy of src with no extra capacity
func CapFromBits(src *Bits) (*Cap, error) {
	c, err := NewCap(src.Bw(), src.Bw())
	if err != nil {
		return nil, err
	}
	copy(c.b.dig, src.dig)
	return c, nil
}

// Bw returns the current width
func (c *Cap) Bw() int {
	return c.b.bw
}

// CapBits returns the reserved capacity in bits
func (c *Cap) CapBits() int {
	return len(c.buf) * digit.Bits
}

// Bits returns the width-carrying view over the current digits
func (c *Cap) Bits() *Bits {
	return &c.b
}

// Resize changes the width. While the needed digit count stays within
// the reserved capacity this is in place: newly in-range digits are
// zeroed and the unused bits of the new last digit cleared. Growth
// beyond capacity reallocates with a doubling policy.
func (c *Cap) Resize(newBw int) error {
	nd, ok := DigitsFor(newBw)
	if !ok {
		return newError("Resize", ErrorAllocation, "invalid width %d", newBw)
	}
	old := len(c.b.dig)
	if nd > len(c.buf) {
		newCap := len(c.buf)
		for newCap < nd {
			if newCap > maxInt/2 {
				newCap = nd
				break
			}
			newCap *= 2
		}
		buf := make([]digit.Digit, newCap)
		copy(buf, c.b.dig)
		if c.zeroize {
			for i := range c.buf {
				c.buf[i] = 0
			}
		}
		c.buf = buf
	}
	// stale digits from an earlier larger width must not leak back in
	for i := old; i < nd; i++ {
		c.buf[i] = 0
	}
	c.b = Bits{dig: c.buf[:nd], bw: newBw}
	c.b.clearUnused()
	return nil
}

// SetZeroize arms the zeroization hook: reallocation and Zeroize clear
// the retired backing, reserved capacity included
func (c *Cap) SetZeroize(on bool) {
	c.zeroize = on
}

// Zeroize clears the entire reserved capacity, not just the digits in
// range of the current width
func (c *Cap) Zeroize() {
	for i := range c.buf {
		c.buf[i] = 0
	}
}

// Release is the pre-drop hook for the zeroize collaborator: when armed,
// the full reserved capacity is cleared before the storage is let go
func (c *Cap) Release() {
	if c.zeroize {
		c.Zeroize()
	}
}
