package bits

import "github.com/AaronKutch/awint/digit"

// Field copies width bits from `from` at fromOff into `to` at toOff,
// leaving every bit outside the destination window untouched. The copy
// walks destination digits with a rotating two-digit source window. The
// two views may not share backing memory, not even as the identical
// view: the window walk reads while it writes.
func Field(to *Bits, toOff int, from *Bits, fromOff, width int) error {
	if width < 0 || toOff < 0 || fromOff < 0 ||
		toOff > to.bw-width || fromOff > from.bw-width {
		return newError("Field", ErrorNonRepresentable,
			"window to[%d +%d) from[%d +%d) in widths %d, %d", toOff, width, fromOff, width, to.bw, from.bw)
	}
	if shareBacking(to, from) {
		return newError("Field", ErrorOverlap, "views share backing memory")
	}
	for done := 0; done < width; {
		pos := toOff + done
		n := digit.Bits - pos%digit.Bits
		if width-done < n {
			n = width - done
		}
		to.writeWindow(pos, n, from.readWindow(fromOff+done, n))
		done += n
	}
	return nil
}

// FieldTo copies the low width bits of `from` to offset toOff of `to`
func FieldTo(to *Bits, toOff int, from *Bits, width int) error {
	return Field(to, toOff, from, 0, width)
}

// FieldFrom copies width bits at fromOff of `from` to the low bits of `to`
func FieldFrom(to, from *Bits, fromOff, width int) error {
	return Field(to, 0, from, fromOff, width)
}

// FieldWidth copies the low width bits of `from` to the low bits of `to`
func FieldWidth(to, from *Bits, width int) error {
	return Field(to, 0, from, 0, width)
}

// FieldBit copies the single bit at fromOff of `from` to toOff of `to`
func FieldBit(to *Bits, toOff int, from *Bits, fromOff int) error {
	return Field(to, toOff, from, fromOff, 1)
}
