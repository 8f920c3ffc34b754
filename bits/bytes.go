package bits

import "github.com/AaronKutch/awint/digit"

// Byte conversion is the canonical wire format: little-endian
// two's-complement, assembled digit by digit so the host's byte order
// never leaks into the result.

// ToU8Slice writes the receiver little-endian into buf. Bytes past
// ceil(bw/8) are zero-filled; a short buffer truncates the high bytes.
func (x *Bits) ToU8Slice(buf []byte) {
	used := (x.bw + 7) / 8
	for i := range buf {
		if i < used {
			buf[i] = byte(x.dig[i/digit.BytesPerDigit] >> (8 * (i % digit.BytesPerDigit)))
		} else {
			buf[i] = 0
		}
	}
}

// U8SliceAssign reinterprets bytes as a little-endian two's-complement
// integer of width len(bytes)*8 and resizes it into the receiver:
// sign- or zero-extended when the receiver is wider, truncated when
// narrower.
func (x *Bits) U8SliceAssign(bytes []byte, signed bool) {
	var fill byte
	if signed && len(bytes) > 0 && bytes[len(bytes)-1]&0x80 != 0 {
		fill = 0xff
	}
	for i := range x.dig {
		var d digit.Digit
		for b := 0; b < digit.BytesPerDigit; b++ {
			idx := i*digit.BytesPerDigit + b
			by := fill
			if idx < len(bytes) {
				by = bytes[idx]
			}
			d |= digit.Digit(by) << (8 * b)
		}
		x.dig[i] = d
	}
	x.clearUnused()
}

// U64Assign writes v into the receiver, zero-extended or truncated
func (x *Bits) U64Assign(v uint64) {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	x.U8SliceAssign(buf[:], false)
}

// I64Assign writes v into the receiver, sign-extended or truncated
func (x *Bits) I64Assign(v int64) {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(uint64(v) >> (8 * i))
	}
	x.U8SliceAssign(buf[:], true)
}

// ToU64 returns the low 64 bits of the receiver
func (x *Bits) ToU64() uint64 {
	var buf [8]byte
	x.ToU8Slice(buf[:])
	var v uint64
	for i := range buf {
		v |= uint64(buf[i]) << (8 * i)
	}
	return v
}

// toU64 is the internal alias used where the width is already known to
// fit
func (x *Bits) toU64() uint64 {
	return x.ToU64()
}

// ToI64 returns the low 64 bits sign-extended from bit bw-1 when the
// width is under 64
func (x *Bits) ToI64() int64 {
	v := x.ToU64()
	if x.bw < 64 && x.Msb() {
		v |= ^uint64(0) << x.bw
	}
	return int64(v)
}
