// Package bits implements the fixed-width bit-slice engine: a
// width-carrying view over a run of digits, the arithmetic, logical,
// shift, multiplication, division, bitfield and conversion operations on
// it, and the three storage flavors (Inline, Ext, Cap) that back it.
//
// Every value has a declared bit width bw >= 1 that is not required to be
// a multiple of the digit width. The engine maintains one invariant at
// every public boundary: the bits of the last digit above bw are zero.
// Interior algorithms may dirty those bits but must mask them before
// returning; clearUnused is the single helper that re-establishes the
// invariant.
package bits

import (
	mbits "math/bits"

	"github.com/AaronKutch/awint/digit"
)

// Bits is a borrowed, width-carrying view over a contiguous digit run,
// little-digit-first. It does not own the digits; the storage types and
// the raw-construction collaborator surface provide the backing.
type Bits struct {
	dig []digit.Digit
	bw  int
}

// Storage is implemented by anything that can produce a Bits view of its
// backing digits. The lazy-evaluation collaborator substitutes its own
// recorder behind the same interface.
type Storage interface {
	Bits() *Bits
}

// DigitsFor returns the number of digits needed to hold bw bits.
// The second return is false if bw is out of range or the count would
// overflow an int.
func DigitsFor(bw int) (int, bool) {
	if bw < 1 || bw > maxInt-(digit.Bits-1) {
		return 0, false
	}
	return (bw + digit.Bits - 1) / digit.Bits, true
}

const maxInt = int(^uint(0) >> 1)

// New returns a Bits view over freshly allocated zeroed digits.
// It is the allocation path shared by the heap storages.
func New(bw int) (*Bits, error) {
	nd, ok := DigitsFor(bw)
	if !ok {
		return nil, newError("New", ErrorAllocation, "invalid width %d", bw)
	}
	return &Bits{dig: make([]digit.Digit, nd), bw: bw}, nil
}

// FromRaw adopts a caller-prepared digit run as a Bits view of width bw.
// This is the collaborator construction surface: the caller promises the
// unused bits of the last digit are already clear. The slice must hold
// exactly the digits the width needs.
func FromRaw(dig []digit.Digit, bw int) (*Bits, error) {
	nd, ok := DigitsFor(bw)
	if !ok || len(dig) != nd {
		return nil, newError("FromRaw", ErrorNonRepresentable, "width %d needs %d digits, got %d", bw, nd, len(dig))
	}
	return &Bits{dig: dig, bw: bw}, nil
}

// Raw exposes the (digits, width) pair backing this view, for the macro
// and DAG collaborators. Mutating the digits without preserving the
// unused-bits invariant is the caller's responsibility.
func (x *Bits) Raw() ([]digit.Digit, int) {
	return x.dig, x.bw
}

// Bw returns the declared bit width
func (x *Bits) Bw() int {
	return x.bw
}

// TotalDigits returns the number of digits backing the view
func (x *Bits) TotalDigits() int {
	return len(x.dig)
}

// Bits returns the view itself, satisfying Storage
func (x *Bits) Bits() *Bits {
	return x
}

// extra returns bw mod the digit width; 0 means the last digit is fully used
func (x *Bits) extra() int {
	return x.bw % digit.Bits
}

// lastMask returns the mask of used bits in the last digit
func (x *Bits) lastMask() digit.Digit {
	if e := x.extra(); e != 0 {
		return digit.Digit(1)<<e - 1
	}
	return digit.Max
}

// Unused returns the number of unused high bits in the last digit
func (x *Bits) Unused() int {
	if e := x.extra(); e != 0 {
		return digit.Bits - e
	}
	return 0
}

// clearUnused re-establishes the unused-bits-clear invariant on the last
// digit. Every interior algorithm that dirties the high bits funnels
// through here before returning.
func (x *Bits) clearUnused() {
	x.dig[len(x.dig)-1] &= x.lastMask()
}

// sameView reports whether x and y are the identical view: same first
// digit, same length, same width
func sameView(x, y *Bits) bool {
	return x.bw == y.bw && len(x.dig) == len(y.dig) && &x.dig[0] == &y.dig[0]
}

// shareBacking reports whether two views are carved from the same
// underlying array. The capacity-end pointer test is conservative
// (disjoint slices of one array still report true) but needs no unsafe
// pointer ordering.
func shareBacking(x, y *Bits) bool {
	a, b := x.dig, y.dig
	return cap(a) > 0 && cap(b) > 0 && &a[0:cap(a)][cap(a)-1] == &b[0:cap(b)][cap(b)-1]
}

// overlapDistinct reports forbidden aliasing: the views share memory but
// are not the identical view
func overlapDistinct(x, y *Bits) bool {
	return shareBacking(x, y) && !sameView(x, y)
}

// IsZero reports whether every bit is clear
func (x *Bits) IsZero() bool {
	for _, d := range x.dig {
		if d != 0 {
			return false
		}
	}
	return true
}

// Msb returns the most significant bit, the sign bit under signed
// interpretation
func (x *Bits) Msb() bool {
	e := x.extra()
	if e == 0 {
		e = digit.Bits
	}
	return x.dig[len(x.dig)-1]>>(e-1)&1 != 0
}

// Get returns bit i
func (x *Bits) Get(i int) (bool, error) {
	if i < 0 || i >= x.bw {
		return false, newError("Get", ErrorOutOfBounds, "index %d, width %d", i, x.bw)
	}
	return x.dig[i/digit.Bits]>>(i%digit.Bits)&1 != 0, nil
}

// Set sets bit i to b
func (x *Bits) Set(i int, b bool) error {
	if i < 0 || i >= x.bw {
		return newError("Set", ErrorOutOfBounds, "index %d, width %d", i, x.bw)
	}
	if b {
		x.dig[i/digit.Bits] |= 1 << (i % digit.Bits)
	} else {
		x.dig[i/digit.Bits] &^= 1 << (i % digit.Bits)
	}
	return nil
}

// Lz returns the number of leading zero bits
func (x *Bits) Lz() int {
	for i := len(x.dig) - 1; i >= 0; i-- {
		if x.dig[i] != 0 {
			lead := digit.Clz(x.dig[i]) - x.Unused()
			if i == len(x.dig)-1 {
				return lead
			}
			return x.bw - (i+1)*digit.Bits + digit.Clz(x.dig[i])
		}
	}
	return x.bw
}

// Tz returns the number of trailing zero bits
func (x *Bits) Tz() int {
	for i, d := range x.dig {
		if d != 0 {
			return i*digit.Bits + digit.Ctz(d)
		}
	}
	return x.bw
}

// CountOnes returns the number of set bits
func (x *Bits) CountOnes() int {
	n := 0
	for _, d := range x.dig {
		n += digit.OnesCount(d)
	}
	return n
}

// Sig returns the number of significant bits, bw - Lz()
func (x *Bits) Sig() int {
	return x.bw - x.Lz()
}

// readWindow reads up to nbits (1..Bits) starting at bit position pos.
// Positions at or beyond the digit run read as zero, so callers may
// window past the end.
func (x *Bits) readWindow(pos, nbits int) digit.Digit {
	idx, off := pos/digit.Bits, pos%digit.Bits
	var w digit.Digit
	if idx < len(x.dig) {
		w = x.dig[idx] >> off
		if off != 0 && idx+1 < len(x.dig) {
			w |= x.dig[idx+1] << (digit.Bits - off)
		}
	}
	if nbits < digit.Bits {
		w &= digit.Digit(1)<<nbits - 1
	}
	return w
}

// writeWindow writes the low nbits (1..Bits) of v at bit position pos,
// leaving all other bits untouched. The window must lie inside the digit
// run.
func (x *Bits) writeWindow(pos, nbits int, v digit.Digit) {
	idx, off := pos/digit.Bits, pos%digit.Bits
	mask := digit.Max
	if nbits < digit.Bits {
		mask = digit.Digit(1)<<nbits - 1
	}
	v &= mask
	x.dig[idx] = x.dig[idx]&^(mask<<off) | v<<off
	if off != 0 && off+nbits > digit.Bits {
		hi := idx + 1
		shift := digit.Bits - off
		x.dig[hi] = x.dig[hi]&^(mask>>shift) | v>>shift
	}
}

// log2Exact returns ceil(log2(n+1)): the number of bits needed to
// represent every value in [0, n]
func log2Exact(n int) int {
	return mbits.Len(uint(n))
}
