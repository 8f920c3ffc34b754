package digit_test

import (
	"testing"

	"github.com/AaronKutch/awint/digit"
)

func TestMulAdd_MaxOperands(t *testing.T) {
	// (Max)^2 + Max + Max saturates the double digit exactly
	lo, hi := digit.MulAdd(digit.Max, digit.Max, digit.Max, digit.Max)
	if lo != digit.Max || hi != digit.Max {
		t.Errorf("MulAdd(Max, Max, Max, Max) = (%#x, %#x), want (Max, Max)", lo, hi)
	}
}

func TestMulAdd_Small(t *testing.T) {
	lo, hi := digit.MulAdd(7, 6, 2, 1)
	if lo != 45 || hi != 0 {
		t.Errorf("7*6+2+1 = (%d, %d), want (45, 0)", lo, hi)
	}
}

func TestDiv2by1(t *testing.T) {
	// (1 << Bits | 5) / 2
	q, r := digit.Div2by1(1, 5, 2)
	want := digit.Digit(1) << (digit.Bits - 1)
	if q != want+2 || r != 1 {
		t.Errorf("Div2by1(1, 5, 2) = (%#x, %d), want (%#x, 1)", q, r, want+2)
	}
}

func TestAddSub_CarryChain(t *testing.T) {
	sum, c := digit.Add(digit.Max, 0, 1)
	if sum != 0 || c != 1 {
		t.Errorf("Max + 0 + 1 = (%#x, %d), want (0, 1)", sum, c)
	}
	diff, b := digit.Sub(0, 0, 1)
	if diff != digit.Max || b != 1 {
		t.Errorf("0 - 0 - 1 = (%#x, %d), want (Max, 1)", diff, b)
	}
	sum, c = digit.Add(1, 2, 0)
	if sum != 3 || c != 0 {
		t.Errorf("1 + 2 = (%d, %d)", sum, c)
	}
}

func TestCounting(t *testing.T) {
	if got := digit.Clz(0); got != digit.Bits {
		t.Errorf("Clz(0) = %d, want %d", got, digit.Bits)
	}
	if got := digit.Clz(1); got != digit.Bits-1 {
		t.Errorf("Clz(1) = %d, want %d", got, digit.Bits-1)
	}
	if got := digit.Ctz(0); got != digit.Bits {
		t.Errorf("Ctz(0) = %d, want %d", got, digit.Bits)
	}
	if got := digit.Ctz(digit.Digit(1) << (digit.Bits - 1)); got != digit.Bits-1 {
		t.Errorf("Ctz(top bit) = %d, want %d", got, digit.Bits-1)
	}
	if got := digit.OnesCount(digit.Max); got != digit.Bits {
		t.Errorf("OnesCount(Max) = %d, want %d", got, digit.Bits)
	}
}

func TestDigitMax_AtLeast255(t *testing.T) {
	if digit.Max < 255 {
		t.Errorf("Max = %d, must be at least 255 for every digit selection", digit.Max)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	buf := make([]byte, digit.BytesPerDigit)
	d := digit.Max - 0x3C
	digit.PutBytes(buf, d)
	if got := digit.FromBytes(buf); got != d {
		t.Errorf("byte round trip = %#x, want %#x", got, d)
	}
	if buf[0] != byte(d) {
		t.Errorf("serialization is not little-endian: first byte %#x", buf[0])
	}
}
