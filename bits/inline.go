package bits

import "github.com/AaronKutch/awint/digit"

// InlineBits is the backing capacity of an Inline in bits, the same for
// every digit selection
const InlineBits = 256

const inlineDigits = InlineBits / digit.Bits

// Inline is the stack-resident storage flavor: a fixed digit array with
// a width committed at construction. It never allocates and cannot be
// resized. The Bits view is built on demand so Inline values stay safe
// to copy.
type Inline struct {
	bw  int
	arr [inlineDigits]digit.Digit
}

// NewInline returns a zeroed Inline of the given width, which must be in
// [1, InlineBits]
func NewInline(bw int) (*Inline, error) {
	if bw < 1 || bw > InlineBits {
		return nil, newError("NewInline", ErrorNonRepresentable, "width %d, capacity %d", bw, InlineBits)
	}
	return &Inline{bw: bw}, nil
}

// InlineUMax returns an all-ones Inline of the given width
func InlineUMax(bw int) (*Inline, error) {
	n, err := NewInline(bw)
	if err != nil {
		return nil, err
	}
	n.Bits().UMax()
	return n, nil
}

// InlineFromU64 returns an Inline holding v zero-extended or truncated
// to the given width
func InlineFromU64(bw int, v uint64) (*Inline, error) {
	n, err := NewInline(bw)
	if err != nil {
		return nil, err
	}
	n.Bits().U64Assign(v)
	return n, nil
}

// InlineFromI64 returns an Inline holding v sign-extended or truncated
// to the given width
func InlineFromI64(bw int, v int64) (*Inline, error) {
	n, err := NewInline(bw)
	if err != nil {
		return nil, err
	}
	n.Bits().I64Assign(v)
	return n, nil
}

// InlineFromDigits returns an Inline of the given width initialized by
// copying the caller's digit run, masking the unused bits
func InlineFromDigits(bw int, dig []digit.Digit) (*Inline, error) {
	n, err := NewInline(bw)
	if err != nil {
		return nil, err
	}
	b := n.Bits()
	copy(b.dig, dig)
	b.clearUnused()
	return n, nil
}

// Bw returns the committed width
func (n *Inline) Bw() int {
	return n.bw
}

// Bits returns the width-carrying view over the inline digits
func (n *Inline) Bits() *Bits {
	nd := (n.bw + digit.Bits - 1) / digit.Bits
	return &Bits{dig: n.arr[:nd], bw: n.bw}
}
