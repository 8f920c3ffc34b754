package bits_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/AaronKutch/awint/bits"
	"github.com/AaronKutch/awint/digit"
)

// Shared helpers for the bits suites: conversions between Bits values
// and math/big (the arbitrary-precision reference for the differential
// tests), and deterministic random value generation.

// toBig returns the unsigned value of x as a big.Int
func toBig(x *bits.Bits) *big.Int {
	buf := make([]byte, (x.Bw()+7)/8)
	x.ToU8Slice(buf)
	// big.Int wants big-endian
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return new(big.Int).SetBytes(buf)
}

// toBigSigned returns the two's-complement signed value of x
func toBigSigned(x *bits.Bits) *big.Int {
	v := toBig(x)
	if x.Msb() {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(x.Bw())))
	}
	return v
}

// bigMask masks v to bw bits, two's-complement style for negatives
func bigMask(v *big.Int, bw int) *big.Int {
	mod := new(big.Int).Lsh(big.NewInt(1), uint(bw))
	return new(big.Int).Mod(v, mod)
}

// mustExt builds an Ext of width bw from a uint64, failing the test on
// any error
func mustExt(t *testing.T, bw int, v uint64) *bits.Ext {
	t.Helper()
	e, err := bits.ExtFromU64(bw, v)
	if err != nil {
		t.Fatalf("ExtFromU64(%d, %#x): %v", bw, v, err)
	}
	return e
}

// randExt builds an Ext of width bw filled with random bits
func randExt(t *testing.T, rng *rand.Rand, bw int) *bits.Ext {
	t.Helper()
	buf := make([]byte, (bw+7)/8)
	rng.Read(buf)
	e, err := bits.ExtFromBytes(bw, buf, false)
	if err != nil {
		t.Fatalf("ExtFromBytes(%d): %v", bw, err)
	}
	return e
}

// checkInvariant verifies the unused bits of the last digit are clear
func checkInvariant(t *testing.T, x *bits.Bits) {
	t.Helper()
	dig, bw := x.Raw()
	if extra := bw % digit.Bits; extra != 0 {
		if last := dig[len(dig)-1]; last>>extra != 0 {
			t.Errorf("unused bits set in last digit: %#x (bw %d)", last, bw)
		}
	}
}
