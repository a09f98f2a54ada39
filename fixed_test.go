// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"
	"math"
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// fromFloat is a generic version of the generated float constructors.
func fromFloat[T Number[T]](f float64) T {
	return T(int64(f * float64(One[T]())))
}

func ulpOf[T Number[T]]() float64 {
	return 1 / float64(One[T]())
}

func TestTraits(t *testing.T) {
	a := assert.New(t)
	all := []Traits{
		S4x12(0).Traits(), S8x8(0).Traits(), S12x4(0).Traits(),
		S16x16(0).Traits(), S8x24(0).Traits(), S24x8(0).Traits(),
		U4x12(0).Traits(), U8x8(0).Traits(), U12x4(0).Traits(),
		U16x16(0).Traits(), U8x24(0).Traits(), U24x8(0).Traits(),
	}
	for _, tr := range all {
		t.Run(tr.Name(), func(t *testing.T) {
			res, err := Resolve(tr.IntBits, tr.FracBits, tr.Signed)
			if a.NoError(err) {
				a.Equal(res, tr)
			}
		})
	}
	a.Equal("S0x32", S0x32(0).Traits().Name())
	a.Equal("U0x32", U0x32(0).Traits().Name())
}

func TestTraitsValues(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		tr       Traits
		ifrac    uint
		poly     uint
		sqrt64   bool
		shift    uint
		overflow int64
	}{
		{S4x12(0).Traits(), 20, 64, false, 19, 1<<15 - 1},
		{S8x8(0).Traits(), 16, 32, false, 23, 1<<15 - 1},
		{S12x4(0).Traits(), 12, 32, false, 27, 1<<15 - 1},
		{S16x16(0).Traits(), 24, 64, true, 15, 1<<31 - 1},
		{S8x24(0).Traits(), 24, 64, true, 7, 1<<31 - 1},
		{S24x8(0).Traits(), 16, 32, true, 23, 1<<31 - 1},
		{U8x8(0).Traits(), 16, 32, false, 23, 1<<16 - 1},
		{U16x16(0).Traits(), 24, 64, true, 15, 1<<32 - 1},
	}
	for _, test := range tests {
		t.Run(test.tr.Name(), func(t *testing.T) {
			a.Equal(test.ifrac, test.tr.IFrac)
			a.Equal(test.poly, test.tr.PolyBits)
			a.Equal(test.sqrt64, test.tr.Sqrt64)
			a.Equal(test.shift, test.tr.SinCosShift)
			a.Equal(test.overflow, test.tr.MaxOverflow)
			a.Equal(2*test.tr.RawBits, test.tr.WideBits)
		})
	}
}

func TestConstants(t *testing.T) {
	a := assert.New(t)
	a.Equal(S16x16(65536), S16x16One)
	a.Equal(S16x16(math.MaxInt32), S16x16Max)
	a.Equal(S16x16(math.MinInt32), S16x16Min)
	a.Equal(S16x16(1), S16x16Eps)
	a.Equal(S16x16(205887), S16x16Pi)
	a.Equal(S4x12(12868), S4x12Pi)
	a.Equal(S12x4(50), S12x4Pi)
	a.Equal(S8x24(52707179), S8x24Pi)
	a.Equal(U8x8(0), U8x8Min)
	a.Equal(U8x8(math.MaxUint16), U8x8Max)
	a.InDelta(math.Pi, S8x24Pi.Float64(), 1e-7)
}

func TestConstructors(t *testing.T) {
	a := assert.New(t)
	a.Equal(S16x16(3<<16), S16x16I(3))
	a.Equal(S16x16(-3<<16), S16x16I(-3))
	a.Equal(S16x16(98304), S16x16F(1.5))
	a.Equal(S16x16(-98304), S16x16F(-1.5))
	// truncation toward zero
	a.Equal(S16x16(0), S16x16F(1e-6))
	a.Equal(S16x16(0), S16x16F(-1e-6))
	a.Equal(S8x8(-1), S8x8F(-1.0/256-1e-9))
	a.Equal(U8x8(0x180), U8x8F(1.5))
	// wrapping
	a.Equal(S4x12(-8<<12), S4x12I(8))
	a.Equal(U4x12(0), U4x12I(16))
	a.Equal(int32(98304), S16x16F(1.5).Raw())
	a.Equal(uint16(0x180), U8x8F(1.5).Raw())
}

func TestS16x16(t *testing.T) {
	a := assert.New(t)
	two, three := S16x16I(2), S16x16I(3)
	a.Equal(S16x16(6<<16), two.Mul(three))
	a.Equal(S16x16(21845), S16x16One.Div(three))
	a.Equal(S16x16(0), S16x16One.Div(0))
	a.Equal(S16x16(0), S16x16(0).Div(0))
	a.Equal(S16x16(-3<<15), three.Neg().Div(two))
	a.Equal(S16x16(92681), two.Sqrt())
	a.Equal(S16x16(0), two.Neg().Sqrt())
	a.Equal(S16x16(32768), S16x16I(4).Rsqrt())
	a.Equal(S16x16(0), S16x16(0).Rsqrt())
	a.Equal(S16x16(92681), two.Pow(S16x16F(0.5)))
	a.Equal(S16x16I(1024), two.Pow(S16x16I(10)))
	a.Equal(S16x16Max, two.Pow(S16x16I(20)))
	a.Equal(S16x16(0), S16x16(0).Pow(0))
	a.Equal(S16x16(0), S16x16(0).Pow(two))
	a.Equal(S16x16(0), two.Neg().Pow(two))
	a.Equal(S16x16One, three.Pow(0))
	a.Equal(S16x16(-1<<16), S16x16F(0.5).Log2())
	a.Equal(S16x16I(3), S16x16I(8).Log2())
	a.Equal(S16x16(0), S16x16I(-8).Log2())
	a.Equal(S16x16I(8), three.Exp2())
	a.Equal(S16x16F(0.5), S16x16One.Neg().Exp2())
	a.Equal(S16x16(92681), S16x16F(0.5).Exp2())
	a.Equal(S16x16Max, S16x16I(20).Exp2())
	a.Equal(S16x16(0), S16x16I(-20).Exp2())
	a.Equal(S16x16(5), S16x16(10).Shr(1))
	a.Equal(S16x16(-5), S16x16(-10).Shr(1))
	a.Equal(S16x16(20), S16x16(10).Shl(1))
	a.Equal(-1, three.Neg().Sign())
	a.Equal(0, S16x16(0).Sign())
	a.Equal(1, three.Sign())
	a.Equal(three, three.Neg().Abs())
	a.Equal(S16x16Min, S16x16Min.Abs())
}

func TestRounding(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x            S16x16
		floor, ceil  S16x16
		fract        S16x16
		integer      int
		intFromFloat int
	}{
		{S16x16F(1.5), S16x16I(1), S16x16I(2), S16x16F(0.5), 1, 1},
		{S16x16F(-1.5), S16x16I(-2), S16x16I(-1), S16x16F(0.5), -2, -1},
		{S16x16I(2), S16x16I(2), S16x16I(2), 0, 2, 2},
		{S16x16I(-2), S16x16I(-2), S16x16I(-2), 0, -2, -2},
		{S16x16Eps, 0, S16x16One, S16x16Eps, 0, 0},
		{-S16x16Eps, S16x16I(-1), 0, S16x16One - S16x16Eps, -1, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.floor, test.x.Floor())
			a.Equal(test.ceil, test.x.Ceil())
			a.Equal(test.fract, test.x.Fract())
			a.Equal(test.integer, test.x.Int())
			a.Equal(test.intFromFloat, int(test.x.Float64()))
			a.Equal(test.x, test.x.Floor().Add(test.x.Fract()))
		})
	}
}

func testBasics[T Number[T]](t *testing.T) {
	a := assert.New(t)
	tr := T(0).Traits()
	one := One[T]()
	half := one / 2
	two := one.Add(one)
	three := two.Add(one)
	onePointFive := one.Add(half)

	a.Equal(T(int64(6)<<tr.FracBits), two.Mul(three))
	a.Equal(two, two.Mul(three).Div(three))
	a.Equal(one, three.Div(three))
	a.Equal(T(0), one.Div(0))
	a.Equal(T(0), T(0).Div(0))
	a.Equal(one, half.Add(half))
	a.Equal(half, one.Sub(half))
	a.Equal(half, one.Mul(half))
	a.Equal(two, one.Div(half))

	a.Equal(one, onePointFive.Floor())
	a.Equal(two, onePointFive.Ceil())
	a.Equal(half, onePointFive.Fract())
	a.Equal(1, onePointFive.Int())
	a.Equal(1.5, onePointFive.Float64())

	a.Equal(0, one.Cmp(one))
	a.Equal(-1, one.Cmp(two))
	a.Equal(1, two.Cmp(one))

	a.Equal(two, two.Mul(two).Sqrt())
	a.Equal(T(0), T(0).Sqrt())
	a.Equal(two, two.Mul(two).Pow(half))
	a.Equal(one, three.Pow(0))

	a.Equal("1.5", onePointFive.String())
	a.Equal("0", T(0).String())
	x, err := Parse[T]("1.5")
	if a.NoError(err) {
		a.Equal(onePointFive, x)
	}
	a.Equal(three, MustParse[T]("3"))
	a.Equal(tr.FracBits, uint(math.Log2(float64(one))))
}

func TestBasics(t *testing.T) {
	t.Run("S4x12", testBasics[S4x12])
	t.Run("S8x8", testBasics[S8x8])
	t.Run("S12x4", testBasics[S12x4])
	t.Run("S16x16", testBasics[S16x16])
	t.Run("S8x24", testBasics[S8x24])
	t.Run("S24x8", testBasics[S24x8])
	t.Run("U4x12", testBasics[U4x12])
	t.Run("U8x8", testBasics[U8x8])
	t.Run("U12x4", testBasics[U12x4])
	t.Run("U16x16", testBasics[U16x16])
	t.Run("U8x24", testBasics[U8x24])
	t.Run("U24x8", testBasics[U24x8])
}

// testSqrt checks that r = Sqrt(x) is the truncated root: r*r <= x < (r+1)*(r+1).
func testSqrt[T Number[T]](t *testing.T) {
	a := assert.New(t)
	tr := T(0).Traits()
	step := tr.MaxOverflow/4099 + 1
	for raw := int64(1); raw <= tr.MaxOverflow; raw += step {
		r := uint64(T(raw).Sqrt())
		v := uint64(raw) << tr.FracBits
		if !a.LessOrEqual(r*r, v, "raw %d", raw) || !a.Greater((r+1)*(r+1), v, "raw %d", raw) {
			return
		}
	}
	r := uint64(T(tr.MaxOverflow).Sqrt())
	v := uint64(tr.MaxOverflow) << tr.FracBits
	a.LessOrEqual(r*r, v)
	a.Greater((r+1)*(r+1), v)
}

func TestSqrt(t *testing.T) {
	t.Run("S4x12", testSqrt[S4x12])
	t.Run("S8x8", testSqrt[S8x8])
	t.Run("S12x4", testSqrt[S12x4])
	t.Run("S16x16", testSqrt[S16x16])
	t.Run("S8x24", testSqrt[S8x24])
	t.Run("S24x8", testSqrt[S24x8])
	t.Run("U4x12", testSqrt[U4x12])
	t.Run("U8x8", testSqrt[U8x8])
	t.Run("U12x4", testSqrt[U12x4])
	t.Run("U16x16", testSqrt[U16x16])
	t.Run("U8x24", testSqrt[U8x24])
	t.Run("U24x8", testSqrt[U24x8])
}

func testPow[T Number[T]](t *testing.T) {
	a := assert.New(t)
	tr := T(0).Traits()
	ulp := ulpOf[T]()
	for b := 0.25; b <= 3.9; b += 0.125 {
		base := fromFloat[T](b)
		for _, e := range []float64{0, 0.5, 1, 1.5, 2} {
			exp := fromFloat[T](e)
			want := math.Pow(base.Float64(), exp.Float64())
			if want >= float64(tr.MaxOverflow)*ulp {
				continue
			}
			a.InDelta(want, base.Pow(exp).Float64(), want*3e-4+2*ulp, "%v**%v", base, exp)
		}
	}
}

func TestPow(t *testing.T) {
	t.Run("S4x12", testPow[S4x12])
	t.Run("S8x8", testPow[S8x8])
	t.Run("S12x4", testPow[S12x4])
	t.Run("S16x16", testPow[S16x16])
	t.Run("S8x24", testPow[S8x24])
	t.Run("S24x8", testPow[S24x8])
	t.Run("U4x12", testPow[U4x12])
	t.Run("U8x8", testPow[U8x8])
	t.Run("U12x4", testPow[U12x4])
	t.Run("U16x16", testPow[U16x16])
	t.Run("U8x24", testPow[U8x24])
	t.Run("U24x8", testPow[U24x8])
}

func TestPromotion(t *testing.T) {
	a := assert.New(t)
	for raw := math.MinInt16; raw <= math.MaxInt16; raw++ {
		s4, s8, s12 := S4x12(raw), S8x8(raw), S12x4(raw)
		a.Equal(s4.Float64(), s4.ToS16x16().Float64())
		a.Equal(s4.Float64(), s4.ToS8x24().Float64())
		a.Equal(s8.Float64(), s8.ToS16x16().Float64())
		a.Equal(s8.Float64(), s8.ToS8x24().Float64())
		a.Equal(s8.Float64(), s8.ToS24x8().Float64())
		a.Equal(s12.Float64(), s12.ToS16x16().Float64())
		a.Equal(s12.Float64(), s12.ToS24x8().Float64())

		u4, u8, u12 := U4x12(uint16(raw)), U8x8(uint16(raw)), U12x4(uint16(raw))
		a.Equal(u4.Float64(), u4.ToU16x16().Float64())
		a.Equal(u4.Float64(), u4.ToU8x24().Float64())
		a.Equal(u8.Float64(), u8.ToU16x16().Float64())
		a.Equal(u8.Float64(), u8.ToU8x24().Float64())
		a.Equal(u8.Float64(), u8.ToU24x8().Float64())
		a.Equal(u12.Float64(), u12.ToU16x16().Float64())
		a.Equal(u12.Float64(), u12.ToU24x8().Float64())
	}
	a.Equal(S16x16F(-1.5), S8x8F(-1.5).ToS16x16())
}

func TestLerp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, t, res U8x8
	}{
		{U8x8I(100), U8x8I(200), U8x8F(0.5), U8x8I(150)},
		{U8x8I(200), U8x8I(100), U8x8F(0.5), U8x8I(150)},
		{U8x8I(200), U8x8I(100), 0, U8x8I(200)},
		{U8x8I(200), U8x8I(100), U8x8One, U8x8I(100)},
		{U8x8I(7), U8x8I(7), U8x8F(0.3), U8x8I(7)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Lerp(test.a, test.b, test.t))
		})
	}
	a.Equal(S16x16F(-0.5), Lerp(S16x16I(-2), S16x16I(1), S16x16F(0.5)))
	a.Equal(S16x16F(-0.5), Lerp(S16x16I(1), S16x16I(-2), S16x16F(0.5)))
}

func TestClampStep(t *testing.T) {
	a := assert.New(t)
	lo, hi := S16x16I(-1), S16x16I(1)
	a.Equal(lo, Clamp(S16x16I(-5), lo, hi))
	a.Equal(hi, Clamp(S16x16I(5), lo, hi))
	a.Equal(S16x16F(0.25), Clamp(S16x16F(0.25), lo, hi))
	a.Equal(S16x16(0), Step(S16x16F(0.5), S16x16F(0.25)))
	a.Equal(S16x16One, Step(S16x16F(0.5), S16x16F(0.5)))
	a.Equal(U8x8One, Step(U8x8(0), U8x8(0)))
}

func TestSmoothstep(t *testing.T) {
	a := assert.New(t)
	e0, e1 := S16x16(0), S16x16One
	a.Equal(S16x16(0), Smoothstep(e0, e1, S16x16F(-0.5)))
	a.Equal(S16x16(0), Smoothstep(e0, e1, 0))
	a.Equal(S16x16One, Smoothstep(e0, e1, S16x16One))
	a.Equal(S16x16One, Smoothstep(e0, e1, S16x16I(2)))
	a.Equal(S16x16F(0.5), Smoothstep(e0, e1, S16x16F(0.5)))
	prev := S16x16(0)
	for x := S16x16(0); x <= e1; x += 1 << 10 {
		v := Smoothstep(e0, e1, x)
		a.GreaterOrEqual(v, prev)
		a.InDelta(3*x.Float64()*x.Float64()-2*x.Float64()*x.Float64()*x.Float64(), v.Float64(), 1e-4)
		prev = v
	}
	a.Equal(U8x8F(0.5), Smoothstep(U8x8I(2), U8x8I(4), U8x8I(3)))
}

func BenchmarkMulOtherFixed(b *testing.B) {
	f0 := of.NewF(12345.9)
	f1 := of.NewF(1.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulS16x16(b *testing.B) {
	f0 := S16x16F(12345.9)
	f1 := S16x16F(1.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(12345.9)
	f1 := decimal.NewFromFloat(1.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkDivS16x16(b *testing.B) {
	f0 := S16x16F(12345.9)
	f1 := S16x16F(1.9)

	for i := 0; i < b.N; i++ {
		f0.Div(f1)
	}
}

func BenchmarkSqrtS16x16(b *testing.B) {
	f0 := S16x16F(12345.9)

	for i := 0; i < b.N; i++ {
		f0.Sqrt()
	}
}
