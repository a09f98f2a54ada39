package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		intBits, fracBits uint
		signed            bool
		res               Traits
	}{
		{4, 12, true, Traits{IntBits: 4, FracBits: 12, Signed: true, RawBits: 16, WideBits: 32, IFrac: 20, PolyBits: 64, SinCosShift: 19, MaxOverflow: 1<<15 - 1}},
		{8, 8, false, Traits{IntBits: 8, FracBits: 8, RawBits: 16, WideBits: 32, IFrac: 16, PolyBits: 32, SinCosShift: 23, MaxOverflow: 1<<16 - 1}},
		{12, 4, true, Traits{IntBits: 12, FracBits: 4, Signed: true, RawBits: 16, WideBits: 32, IFrac: 12, PolyBits: 32, SinCosShift: 27, MaxOverflow: 1<<15 - 1}},
		{16, 16, true, Traits{IntBits: 16, FracBits: 16, Signed: true, RawBits: 32, WideBits: 64, IFrac: 24, PolyBits: 64, SinCosShift: 15, Sqrt64: true, MaxOverflow: 1<<31 - 1}},
		{8, 24, false, Traits{IntBits: 8, FracBits: 24, RawBits: 32, WideBits: 64, IFrac: 24, PolyBits: 64, SinCosShift: 7, Sqrt64: true, MaxOverflow: 1<<32 - 1}},
		{24, 8, true, Traits{IntBits: 24, FracBits: 8, Signed: true, RawBits: 32, WideBits: 64, IFrac: 16, PolyBits: 32, SinCosShift: 23, Sqrt64: true, MaxOverflow: 1<<31 - 1}},
		{2, 6, true, Traits{IntBits: 2, FracBits: 6, Signed: true, RawBits: 16, WideBits: 32, IFrac: 12, PolyBits: 32, SinCosShift: 25, MaxOverflow: 1<<7 - 1}},
		{10, 10, false, Traits{IntBits: 10, FracBits: 10, RawBits: 32, WideBits: 64, IFrac: 16, PolyBits: 32, SinCosShift: 21, Sqrt64: true, MaxOverflow: 1<<20 - 1}},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d.%d", test.intBits, test.fracBits), func(t *testing.T) {
			res, err := Resolve(test.intBits, test.fracBits, test.signed)
			if a.NoError(err) {
				a.Equal(test.res, res)
				a.LessOrEqual(res.PolyBitsNeeded(), res.PolyBits)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		intBits, fracBits uint
		err               string
	}{
		{0, 16, "layout 0.16 has no integer bits"},
		{16, 0, "layout 16.0: fractional bits must be in [1, 24]"},
		{4, 28, "layout 4.28: fractional bits must be in [1, 24]"},
		{16, 17, "layout 16.17 does not fit 32 bits"},
		{32, 8, "layout 32.8 does not fit 32 bits"},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d.%d", test.intBits, test.fracBits), func(t *testing.T) {
			_, err := Resolve(test.intBits, test.fracBits, true)
			a.EqualError(err, test.err)
		})
	}
}

func TestIFrac(t *testing.T) {
	a := assert.New(t)
	for frac, want := range map[uint]uint{1: 12, 7: 12, 8: 16, 11: 16, 12: 20, 15: 20, 16: 24, 23: 24, 24: 24} {
		a.Equal(want, ifrac(frac), "frac %d", frac)
	}
}

func TestPolyBits(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint(20), polyBitsFor(12, 32))
	a.Equal(uint(26), polyBitsFor(16, 32))
	a.Equal(uint(50), polyBitsFor(24, 64))
	// the direct 64-bit product of a 24-bit evaluation would not fit 32 bits.
	a.Greater(polyBitsFor(24, 64), uint(32))
}

func TestName(t *testing.T) {
	a := assert.New(t)
	a.Equal("S16x16", Traits{IntBits: 16, FracBits: 16, Signed: true}.Name())
	a.Equal("U8x8", Traits{IntBits: 8, FracBits: 8}.Name())
	a.Equal("S0x32", Traits{IntBits: 1, FracBits: 31, Signed: true}.Name())
	a.Equal("U0x32", Traits{FracBits: 32}.Name())
}
