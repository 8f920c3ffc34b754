package bits_test

import (
	"math/rand"
	"testing"

	"github.com/AaronKutch/awint/bits"
)

func TestLshr_Width65(t *testing.T) {
	// width 65: 1<<64 shifted right once is 1<<63
	x := mustExt(t, 65, 0)
	if err := x.Bits().Set(64, true); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := x.Bits().Lshr(1); err != nil {
		t.Fatalf("Lshr: %v", err)
	}
	for i := 0; i < 65; i++ {
		got, _ := x.Bits().Get(i)
		if got != (i == 63) {
			t.Errorf("bit %d = %v after 1<<64 >> 1", i, got)
		}
	}
	checkInvariant(t, x.Bits())
}

func TestLshr_AmountAtWidth(t *testing.T) {
	x := mustExt(t, 65, 1)
	err := x.Bits().Lshr(65)
	if kind, ok := bits.KindOf(err); !ok || kind != bits.ErrorNonRepresentable {
		t.Errorf("Lshr(65) at width 65: got %v, want non-representable", err)
	}
}

func TestShlLshr_ClearsTop(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, bw := range []int{1, 12, 64, 65, 130} {
		for _, k := range []int{0, 1, bw / 2, bw - 1} {
			if k >= bw {
				continue
			}
			x := randExt(t, rng, bw)
			orig, err := bits.ExtFromBits(x.Bits())
			if err != nil {
				t.Fatalf("ExtFromBits: %v", err)
			}

			if err := x.Bits().Shl(k); err != nil {
				t.Fatalf("Shl(%d): %v", k, err)
			}
			if err := x.Bits().Lshr(k); err != nil {
				t.Fatalf("Lshr(%d): %v", k, err)
			}
			// the top k bits are cleared, the rest preserved
			for i := 0; i < bw; i++ {
				got, _ := x.Bits().Get(i)
				if i >= bw-k {
					if got {
						t.Fatalf("bw %d k %d: top bit %d not cleared", bw, k, i)
					}
				} else if want, _ := orig.Bits().Get(i); got != want {
					t.Fatalf("bw %d k %d: bit %d changed", bw, k, i)
				}
			}
			checkInvariant(t, x.Bits())
		}
	}
}

func TestAshr_ReplicatesSign(t *testing.T) {
	x := mustExt(t, 12, 0x800)
	if err := x.Bits().Ashr(4); err != nil {
		t.Fatalf("Ashr: %v", err)
	}
	if got := x.Bits().ToU64(); got != 0xF80 {
		t.Errorf("0x800 asr 4 at width 12 = %#x, want 0xF80", got)
	}
	checkInvariant(t, x.Bits())

	y := mustExt(t, 12, 0x400)
	if err := y.Bits().Ashr(4); err != nil {
		t.Fatalf("Ashr: %v", err)
	}
	if got := y.Bits().ToU64(); got != 0x040 {
		t.Errorf("0x400 asr 4 at width 12 = %#x, want 0x040", got)
	}
}

func TestRotlRotr_Inverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, bw := range []int{1, 13, 64, 65, 200} {
		for _, k := range []int{0, 1, bw - 1} {
			if k >= bw {
				continue
			}
			x := randExt(t, rng, bw)
			orig, err := bits.ExtFromBits(x.Bits())
			if err != nil {
				t.Fatalf("ExtFromBits: %v", err)
			}
			if err := x.Bits().Rotl(k); err != nil {
				t.Fatalf("Rotl(%d): %v", k, err)
			}
			if err := x.Bits().Rotr(k); err != nil {
				t.Fatalf("Rotr(%d): %v", k, err)
			}
			if eq, _ := x.Bits().Eq(orig.Bits()); !eq {
				t.Errorf("bw %d k %d: rotl then rotr changed the value", bw, k)
			}
			checkInvariant(t, x.Bits())
		}
	}
}

func TestRotl_KnownPattern(t *testing.T) {
	x := mustExt(t, 12, 0x801)
	if err := x.Bits().Rotl(1); err != nil {
		t.Fatalf("Rotl: %v", err)
	}
	if got := x.Bits().ToU64(); got != 0x003 {
		t.Errorf("0x801 rotl 1 at width 12 = %#x, want 0x003", got)
	}
}

func TestFunnel(t *testing.T) {
	// receiver width 8, source width 16, amount width Len(8) = 4
	x := mustExt(t, 8, 0)
	src := mustExt(t, 16, 0xABCD)

	for _, tt := range []struct {
		amt  uint64
		want uint64
	}{
		{0, 0xCD},
		{4, 0xBC},
		{8, 0xAB},
	} {
		amt := mustExt(t, 4, tt.amt)
		if err := x.Bits().Funnel(src.Bits(), amt.Bits()); err != nil {
			t.Fatalf("Funnel(%d): %v", tt.amt, err)
		}
		if got := x.Bits().ToU64(); got != tt.want {
			t.Errorf("funnel by %d = %#x, want %#x", tt.amt, got, tt.want)
		}
	}
}

func TestFunnel_WidthChecks(t *testing.T) {
	x := mustExt(t, 8, 0)
	src := mustExt(t, 16, 0)
	badAmt := mustExt(t, 5, 0)

	err := x.Bits().Funnel(src.Bits(), badAmt.Bits())
	if kind, ok := bits.KindOf(err); !ok || kind != bits.ErrorWidthMismatch {
		t.Errorf("oversized amount width: got %v, want width mismatch", err)
	}

	badSrc := mustExt(t, 17, 0)
	amt := mustExt(t, 4, 0)
	err = x.Bits().Funnel(badSrc.Bits(), amt.Bits())
	if kind, ok := bits.KindOf(err); !ok || kind != bits.ErrorWidthMismatch {
		t.Errorf("bad source width: got %v, want width mismatch", err)
	}
}
