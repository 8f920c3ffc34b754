package bits

import "github.com/AaronKutch/awint/digit"

// lutCheck validates the exact width relation table.bw == entry.bw <<
// inx.bw without overflowing int arithmetic
func lutCheck(op string, table, entry, inx *Bits) error {
	if inx.bw >= 64 || entry.bw > maxInt>>inx.bw || entry.bw<<inx.bw != table.bw {
		return newError(op, ErrorWidthMismatch,
			"table width %d, entry width %d, index width %d", table.bw, entry.bw, inx.bw)
	}
	return nil
}

// Lut fills the receiver from the table entry selected by inx. The table
// is partitioned into 1<<inx.bw entries of the receiver's width; the
// width relation is checked exactly.
func (x *Bits) Lut(table, inx *Bits) error {
	if err := lutCheck("Lut", table, x, inx); err != nil {
		return err
	}
	off := int(inx.toU64()) * x.bw
	for i := range x.dig {
		pos := i * digit.Bits
		n := digit.Bits
		if x.bw-pos < n {
			n = x.bw - pos
		}
		x.dig[i] = table.readWindow(off+pos, n)
	}
	x.clearUnused()
	return nil
}

// LutSet writes entry into the receiver (the table) at the entry slot
// selected by inx, the inverse of Lut
func (x *Bits) LutSet(entry, inx *Bits) error {
	if err := lutCheck("LutSet", x, entry, inx); err != nil {
		return err
	}
	off := int(inx.toU64()) * entry.bw
	for done := 0; done < entry.bw; {
		pos := off + done
		n := digit.Bits - pos%digit.Bits
		if entry.bw-done < n {
			n = entry.bw - done
		}
		x.writeWindow(pos, n, entry.readWindow(done, n))
		done += n
	}
	return nil
}
