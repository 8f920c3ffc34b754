package bits_test

import (
	"math/rand"
	"testing"

	"github.com/AaronKutch/awint/bits"
)

func TestNot_Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, bw := range []int{1, 9, 64, 77, 256} {
		x := randExt(t, rng, bw)
		orig, err := bits.ExtFromBits(x.Bits())
		if err != nil {
			t.Fatalf("ExtFromBits: %v", err)
		}
		x.Bits().Not()
		checkInvariant(t, x.Bits())
		x.Bits().Not()
		if eq, _ := x.Bits().Eq(orig.Bits()); !eq {
			t.Errorf("bw %d: double negation changed the value", bw)
		}
	}
}

func TestConstants(t *testing.T) {
	x := mustExt(t, 12, 0)

	x.Bits().UMax()
	if got := x.Bits().ToU64(); got != 0xFFF {
		t.Errorf("UMax = %#x, want 0xFFF", got)
	}
	checkInvariant(t, x.Bits())

	x.Bits().IMax()
	if got := x.Bits().ToU64(); got != 0x7FF {
		t.Errorf("IMax = %#x, want 0x7FF", got)
	}

	x.Bits().IMin()
	if got := x.Bits().ToU64(); got != 0x800 {
		t.Errorf("IMin = %#x, want 0x800", got)
	}

	x.Bits().UOne()
	if got := x.Bits().ToU64(); got != 1 {
		t.Errorf("UOne = %#x, want 1", got)
	}

	x.Bits().Zero()
	if !x.Bits().IsZero() {
		t.Error("Zero left bits set")
	}
}

func TestBitwiseOps(t *testing.T) {
	x := mustExt(t, 16, 0xF0F0)
	y := mustExt(t, 16, 0xFF00)

	if err := x.Bits().And(y.Bits()); err != nil {
		t.Fatalf("And: %v", err)
	}
	if got := x.Bits().ToU64(); got != 0xF000 {
		t.Errorf("And = %#x, want 0xF000", got)
	}

	x = mustExt(t, 16, 0xF0F0)
	if err := x.Bits().Or(y.Bits()); err != nil {
		t.Fatalf("Or: %v", err)
	}
	if got := x.Bits().ToU64(); got != 0xFFF0 {
		t.Errorf("Or = %#x, want 0xFFF0", got)
	}

	x = mustExt(t, 16, 0xF0F0)
	if err := x.Bits().Xor(y.Bits()); err != nil {
		t.Fatalf("Xor: %v", err)
	}
	if got := x.Bits().ToU64(); got != 0x0FF0 {
		t.Errorf("Xor = %#x, want 0x0FF0", got)
	}
}

func TestRangeOps(t *testing.T) {
	x := mustExt(t, 80, 0)
	x.Bits().UMax()
	if err := x.Bits().RangeAnd(8, 72); err != nil {
		t.Fatalf("RangeAnd: %v", err)
	}
	if got := x.Bits().CountOnes(); got != 64 {
		t.Errorf("RangeAnd kept %d ones, want 64", got)
	}
	if got, _ := x.Bits().Get(7); got {
		t.Error("bit 7 survived RangeAnd(8, 72)")
	}
	if got, _ := x.Bits().Get(72); got {
		t.Error("bit 72 survived RangeAnd(8, 72)")
	}

	x.Bits().Zero()
	if err := x.Bits().RangeOr(79, 80); err != nil {
		t.Fatalf("RangeOr: %v", err)
	}
	if got, _ := x.Bits().Get(79); !got {
		t.Error("RangeOr(79, 80) did not set bit 79")
	}

	if err := x.Bits().RangeXor(0, 80); err != nil {
		t.Fatalf("RangeXor: %v", err)
	}
	if got := x.Bits().CountOnes(); got != 79 {
		t.Errorf("RangeXor flip count = %d, want 79", got)
	}

	err := x.Bits().RangeAnd(0, 81)
	if kind, ok := bits.KindOf(err); !ok || kind != bits.ErrorOutOfBounds {
		t.Errorf("range past width: got %v, want out of bounds", err)
	}
}

func TestMux(t *testing.T) {
	x := mustExt(t, 20, 0x11111)
	y := mustExt(t, 20, 0x22222)

	if err := x.Bits().Mux(y.Bits(), false); err != nil {
		t.Fatalf("Mux: %v", err)
	}
	if got := x.Bits().ToU64(); got != 0x11111 {
		t.Errorf("Mux(false) = %#x, want receiver unchanged", got)
	}

	if err := x.Bits().Mux(y.Bits(), true); err != nil {
		t.Fatalf("Mux: %v", err)
	}
	if got := x.Bits().ToU64(); got != 0x22222 {
		t.Errorf("Mux(true) = %#x, want 0x22222", got)
	}
}

func TestLut(t *testing.T) {
	// 4 entries of width 8 selected by a 2-bit index
	table := mustExt(t, 32, 0xDDCCBBAA)
	x := mustExt(t, 8, 0)

	for i, want := range []uint64{0xAA, 0xBB, 0xCC, 0xDD} {
		inx := mustExt(t, 2, uint64(i))
		if err := x.Bits().Lut(table.Bits(), inx.Bits()); err != nil {
			t.Fatalf("Lut(%d): %v", i, err)
		}
		if got := x.Bits().ToU64(); got != want {
			t.Errorf("Lut(%d) = %#x, want %#x", i, got, want)
		}
	}

	// mismatched table width
	bad := mustExt(t, 33, 0)
	inx := mustExt(t, 2, 0)
	err := x.Bits().Lut(bad.Bits(), inx.Bits())
	if kind, ok := bits.KindOf(err); !ok || kind != bits.ErrorWidthMismatch {
		t.Errorf("bad table width: got %v, want width mismatch", err)
	}
}

func TestLutSet(t *testing.T) {
	table := mustExt(t, 32, 0)
	entry := mustExt(t, 8, 0xEE)
	inx := mustExt(t, 2, 2)

	if err := table.Bits().LutSet(entry.Bits(), inx.Bits()); err != nil {
		t.Fatalf("LutSet: %v", err)
	}
	if got := table.Bits().ToU64(); got != 0x00EE0000 {
		t.Errorf("LutSet slot 2 = %#x, want 0x00EE0000", got)
	}
}

func TestGetSet_Bounds(t *testing.T) {
	x := mustExt(t, 12, 0)
	if err := x.Bits().Set(11, true); err != nil {
		t.Fatalf("Set(11): %v", err)
	}
	if got, err := x.Bits().Get(11); err != nil || !got {
		t.Errorf("Get(11) = %v, %v", got, err)
	}
	err := x.Bits().Set(12, true)
	if kind, ok := bits.KindOf(err); !ok || kind != bits.ErrorOutOfBounds {
		t.Errorf("Set(12) at width 12: got %v, want out of bounds", err)
	}
	_, err = x.Bits().Get(-1)
	if kind, ok := bits.KindOf(err); !ok || kind != bits.ErrorOutOfBounds {
		t.Errorf("Get(-1): got %v, want out of bounds", err)
	}
}

func TestCounts(t *testing.T) {
	x := mustExt(t, 100, 0)
	if x.Bits().Lz() != 100 || x.Bits().Tz() != 100 || x.Bits().Sig() != 0 {
		t.Errorf("zero value counts wrong: lz %d tz %d sig %d", x.Bits().Lz(), x.Bits().Tz(), x.Bits().Sig())
	}

	if err := x.Bits().Set(70, true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := x.Bits().Lz(); got != 29 {
		t.Errorf("Lz = %d, want 29", got)
	}
	if got := x.Bits().Tz(); got != 70 {
		t.Errorf("Tz = %d, want 70", got)
	}
	if got := x.Bits().Sig(); got != 71 {
		t.Errorf("Sig = %d, want 71", got)
	}
	if got := x.Bits().CountOnes(); got != 1 {
		t.Errorf("CountOnes = %d, want 1", got)
	}
}
