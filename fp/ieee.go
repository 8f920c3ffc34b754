package fp

import "math"

// IEEE-754 field helpers for the binary32 and binary64 interchange
// formats. These move raw (sign, biased exponent, fraction) triples in
// and out of floats without interpreting them; the conversions in fp.go
// build on the same fields.

// F64Parts splits a binary64 value into its sign, biased exponent and
// fraction fields
func F64Parts(f float64) (neg bool, exp int, frac uint64) {
	u := math.Float64bits(f)
	return u>>63 != 0, int(u >> 52 & 0x7ff), u & (1<<52 - 1)
}

// F64FromParts assembles a binary64 value from raw fields. The exponent
// is masked to 11 bits and the fraction to 52.
func F64FromParts(neg bool, exp int, frac uint64) float64 {
	u := uint64(exp&0x7ff)<<52 | frac&(1<<52-1)
	if neg {
		u |= 1 << 63
	}
	return math.Float64frombits(u)
}

// F32Parts splits a binary32 value into its sign, biased exponent and
// fraction fields
func F32Parts(f float32) (neg bool, exp int, frac uint32) {
	u := math.Float32bits(f)
	return u>>31 != 0, int(u >> 23 & 0xff), u & (1<<23 - 1)
}

// F32FromParts assembles a binary32 value from raw fields. The exponent
// is masked to 8 bits and the fraction to 23.
func F32FromParts(neg bool, exp int, frac uint32) float32 {
	u := uint32(exp&0xff)<<23 | frac&(1<<23-1)
	if neg {
		u |= 1 << 31
	}
	return math.Float32frombits(u)
}
