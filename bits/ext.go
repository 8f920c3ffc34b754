package bits

// Ext is the heap-resident storage flavor: a digit run sized exactly to
// the committed width. The width is immutable for the lifetime of the
// allocation; growing or shrinking means constructing a new Ext.
type Ext struct {
	b       Bits
	zeroize bool
}

// NewExt returns a zero-filled Ext of the given width
func NewExt(bw int) (*Ext, error) {
	b, err := New(bw)
	if err != nil {
		return nil, err
	}
	return &Ext{b: *b}, nil
}

// ExtFromBits returns an Ext holding a copy of src
func ExtFromBits(src *Bits) (*Ext, error) {
	e, err := NewExt(src.Bw())
	if err != nil {
		return nil, err
	}
	copy(e.b.dig, src.dig)
	return e, nil
}

// ExtFromU64 returns an Ext holding v zero-extended or truncated
func ExtFromU64(bw int, v uint64) (*Ext, error) {
	e, err := NewExt(bw)
	if err != nil {
		return nil, err
	}
	e.b.U64Assign(v)
	return e, nil
}

// ExtFromI64 returns an Ext holding v sign-extended or truncated
func ExtFromI64(bw int, v int64) (*Ext, error) {
	e, err := NewExt(bw)
	if err != nil {
		return nil, err
	}
	e.b.I64Assign(v)
	return e, nil
}

// ExtFromString returns an Ext parsed from s at the given radix
func ExtFromString(bw int, s string, radix int, signed bool) (*Ext, error) {
	e, err := NewExt(bw)
	if err != nil {
		return nil, err
	}
	if err := e.b.ParseRadix(s, radix, signed); err != nil {
		return nil, err
	}
	return e, nil
}

// ExtFromBytes returns an Ext loaded from a little-endian
// two's-complement byte slice
func ExtFromBytes(bw int, bytes []byte, signed bool) (*Ext, error) {
	e, err := NewExt(bw)
	if err != nil {
		return nil, err
	}
	e.b.U8SliceAssign(bytes, signed)
	return e, nil
}

// Bw returns the committed width
func (e *Ext) Bw() int {
	return e.b.bw
}

// Bits returns the width-carrying view over the heap digits
func (e *Ext) Bits() *Bits {
	return &e.b
}

// SetZeroize arms the zeroization hook: the collaborator promises to
// call Zeroize before releasing the storage
func (e *Ext) SetZeroize(on bool) {
	e.zeroize = on
}

// Zeroize clears every backing digit, unused bits included
func (e *Ext) Zeroize() {
	for i := range e.b.dig {
		e.b.dig[i] = 0
	}
}

// Release is the pre-drop hook for the zeroize collaborator: when armed,
// the backing digits are cleared before the storage is let go
func (e *Ext) Release() {
	if e.zeroize {
		e.Zeroize()
	}
}
