package bits

import (
	mbits "math/bits"

	"github.com/AaronKutch/awint/digit"
)

// String conversion, radix 2 through 36. Parsing accepts the integer
// literal syntax the constructor macros feed through: an optional sign
// (signed form only), an optional 0b/0o/0x prefix, underscore
// separators, and an optional trailing type tag such as _u32 or _i12.
// Formatting is the inverse: lowercase digits, no prefix, a sign only
// for negative signed values.

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// satAdd adds ints, saturating at the int maximum
func satAdd(a, b int) int {
	if a > maxInt-b {
		return maxInt
	}
	return a + b
}

// CharsUpperBound returns an upper bound on the number of characters
// Format can emit for a value of width bw at the given radix, sign
// included. The arithmetic saturates instead of overflowing on
// pathological widths.
func CharsUpperBound(bw, radix int) int {
	if bw < 1 || radix < 2 || radix > 36 {
		return 0
	}
	// each character carries at least floor(log2(radix)) bits
	perChar := mbits.Len(uint(radix)) - 1
	return satAdd(bw/perChar, 2)
}

// charVal returns the value of a digit character, case-insensitive, or
// -1 if it is not a digit
func charVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// stripSuffix removes a trailing _uNN / _iNN type tag if present. The
// tag itself may not contain separators.
func stripSuffix(s string) string {
	i := len(s) - 1
	for i >= 0 && s[i] >= '0' && s[i] <= '9' {
		i--
	}
	if i < 1 || i == len(s)-1 {
		return s
	}
	if (s[i] == 'u' || s[i] == 'i') && s[i-1] == '_' {
		return s[:i-1]
	}
	return s
}

// stripPrefix resolves the radix prefix. With radix 0 the prefix decides
// the radix (default 10); with an explicit radix a matching prefix is
// accepted and consumed.
func stripPrefix(s string, radix int) (string, int) {
	var pr int
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'b', 'B':
			pr = 2
		case 'o', 'O':
			pr = 8
		case 'x', 'X':
			pr = 16
		}
	}
	switch {
	case radix == 0 && pr != 0:
		return s[2:], pr
	case radix == 0:
		return s, 10
	case pr == radix:
		return s[2:], radix
	default:
		return s, radix
	}
}

// ParseRadix parses s into the receiver. Radix 0 means detect from a
// 0b/0o/0x prefix, defaulting to 10. A leading '-' is accepted only in
// signed form. An empty mantissa denotes zero, but a completely empty
// input is ParseEmpty. Values that do not fit the receiver's width (and
// signedness) are ParseOverflow.
func (x *Bits) ParseRadix(s string, radix int, signed bool) error {
	if radix != 0 && (radix < 2 || radix > 36) {
		return newError("ParseRadix", ErrorNonRepresentable, "radix %d", radix)
	}
	if s == "" {
		return newError("ParseRadix", ErrorParseEmpty, "empty input")
	}
	neg := false
	if s[0] == '-' {
		if !signed {
			return newError("ParseRadix", ErrorParseInvalidChar, "sign in unsigned parse")
		}
		neg = true
		s = s[1:]
	}
	if s != "" && s[0] == '_' {
		return newError("ParseRadix", ErrorParseInvalidChar, "leading separator")
	}
	s = stripSuffix(s)
	s, radix = stripPrefix(s, radix)

	x.Zero()
	rd := digit.Digit(radix)
	mask := x.lastMask()
	last := len(x.dig) - 1
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			continue
		}
		v := charVal(s[i])
		if v < 0 || v >= radix {
			x.Zero()
			return newError("ParseRadix", ErrorParseInvalidChar, "character %q for radix %d", s[i], radix)
		}
		// multiply the accumulator by the radix and add the digit value
		carry := digit.Digit(v)
		for j := range x.dig {
			x.dig[j], carry = digit.MulAdd(x.dig[j], rd, carry, 0)
		}
		if carry != 0 || x.dig[last]&^mask != 0 {
			x.Zero()
			return newError("ParseRadix", ErrorParseOverflow, "value exceeds width %d", x.bw)
		}
	}
	if signed {
		// positive values need the sign bit clear; negative magnitudes
		// may reach exactly 2^(bw-1)
		if x.Msb() && !(neg && x.Tz() == x.bw-1) {
			x.Zero()
			return newError("ParseRadix", ErrorParseOverflow, "value exceeds signed width %d", x.bw)
		}
		x.Neg(neg)
	}
	return nil
}

// Format renders the receiver at the given radix: lowercase digits (or
// uppercase on request), no prefix, and a leading '-' only for negative
// signed values. Every emitted string parses back to the same value.
func (x *Bits) Format(radix int, signed, upper bool) (string, error) {
	if radix < 2 || radix > 36 {
		return "", newError("Format", ErrorNonRepresentable, "radix %d", radix)
	}
	scratch := make([]digit.Digit, len(x.dig))
	copy(scratch, x.dig)
	tmp := Bits{dig: scratch, bw: x.bw}
	neg := signed && tmp.Msb()
	tmp.Neg(neg)

	out := make([]byte, 0, CharsUpperBound(x.bw, radix))
	rd := digit.Digit(radix)
	for !tmp.IsZero() {
		// in-place short division by the radix, remainder is the next digit
		var rem digit.Digit
		for i := len(tmp.dig) - 1; i >= 0; i-- {
			tmp.dig[i], rem = digit.Div2by1(rem, tmp.dig[i], rd)
		}
		c := digitChars[rem]
		if upper && c >= 'a' {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		out = append(out, '0')
	}
	if neg {
		out = append(out, '-')
	}
	// digits were produced least significant first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}
