// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type signedNumber[T any] interface {
	Number[T]

	Neg() T
	Log2() T
	Exp2() T
	Sin() T
	Cos() T
	SinCos() (T, T)
	Atan() T
	Atan2(T) T
	Asin() T
	Acos() T
}

// Tolerances are an algorithmic error bound plus a few units in the last place
// of the layout, so that the same checks serve 4 and 24 fractional bits.
func testTranscendental[T signedNumber[T]](t *testing.T) {
	a := assert.New(t)
	ulp := ulpOf[T]()
	one := One[T]()

	a.Equal(T(0), T(0).Sin())
	a.Equal(one, T(0).Cos())

	for f := -4.0; f <= 4; f += 1.0 / 64 {
		x := fromFloat[T](f)
		xf := x.Float64()
		a.InDelta(math.Sin(xf), x.Sin().Float64(), 1e-4+ulp, "sin(%v)", x)
		a.InDelta(math.Cos(xf), x.Cos().Float64(), 1e-4+ulp, "cos(%v)", x)
		s, c := x.SinCos()
		a.Equal(x.Sin(), s)
		a.Equal(x.Cos(), c)
	}
	for f := -7.9; f <= 7.9; f += 1.0 / 16 {
		x := fromFloat[T](f)
		a.InDelta(math.Atan(x.Float64()), x.Atan().Float64(), 3e-5+2*ulp, "atan(%v)", x)
	}
	for fy := -4.0; fy <= 4; fy += 0.25 {
		for fx := -4.0; fx <= 4; fx += 0.25 {
			y, x := fromFloat[T](fy), fromFloat[T](fx)
			if x == 0 && y == 0 {
				a.Equal(T(0), y.Atan2(x))
				continue
			}
			a.InDelta(math.Atan2(y.Float64(), x.Float64()), y.Atan2(x).Float64(), 3e-5+2*ulp, "atan2(%v, %v)", y, x)
		}
	}
	for f := -1.0; f <= 1; f += 1.0 / 64 {
		x := fromFloat[T](f)
		xf := x.Float64()
		a.InDelta(math.Asin(xf), x.Asin().Float64(), 1e-4+4*ulp, "asin(%v)", x)
		a.InDelta(math.Acos(xf), x.Acos().Float64(), 1e-4+4*ulp, "acos(%v)", x)
	}
	a.Equal(T(0), one.Add(one).Asin())
	a.Equal(T(0), one.Add(one).Neg().Acos())

	for f := 1.0 / 16; f <= 7.9; f += 1.0 / 64 {
		x := fromFloat[T](f)
		if x <= 0 {
			continue
		}
		a.InDelta(math.Log2(x.Float64()), x.Log2().Float64(), 1.5e-4+2*ulp, "log2(%v)", x)
	}
	a.Equal(T(0), T(0).Log2())
	a.Equal(T(0), one.Neg().Log2())

	for f := -4.0; f <= 2.9; f += 1.0 / 64 {
		x := fromFloat[T](f)
		want := math.Exp2(x.Float64())
		a.InDelta(want, x.Exp2().Float64(), want*5e-5+2*ulp, "exp2(%v)", x)
	}
}

func TestTranscendental(t *testing.T) {
	t.Run("S4x12", testTranscendental[S4x12])
	t.Run("S8x8", testTranscendental[S8x8])
	t.Run("S12x4", testTranscendental[S12x4])
	t.Run("S16x16", testTranscendental[S16x16])
	t.Run("S8x24", testTranscendental[S8x24])
	t.Run("S24x8", testTranscendental[S24x8])
}

// sin²+cos² stays near one for every layout; each product adds a truncation.
func testPythagorean[T signedNumber[T]](t *testing.T) {
	a := assert.New(t)
	ulp := ulpOf[T]()
	for f := -4.0; f <= 4; f += 1.0 / 64 {
		x := fromFloat[T](f)
		s, c := x.SinCos()
		sum := s.Mul(s).Add(c.Mul(c))
		a.InDelta(1, sum.Float64(), 3e-4+6*ulp, "sin²+cos²(%v)", x)
	}
}

func TestPythagorean(t *testing.T) {
	t.Run("S4x12", testPythagorean[S4x12])
	t.Run("S8x8", testPythagorean[S8x8])
	t.Run("S12x4", testPythagorean[S12x4])
	t.Run("S16x16", testPythagorean[S16x16])
	t.Run("S8x24", testPythagorean[S8x24])
	t.Run("S24x8", testPythagorean[S24x8])
}

func TestTrigExact(t *testing.T) {
	a := assert.New(t)
	halfPi := S16x16Pi.Div(S16x16I(2))
	a.Equal(S16x16(0), S16x16(0).Sin())
	a.Equal(S16x16One, S16x16(0).Cos())
	a.InDelta(1, halfPi.Sin().Float64(), 7e-5)
	a.Equal(S16x16One, halfPi.Sin())
	a.Equal(S8x8One, S8x8(0).Cos())
	a.Equal(S4x12One, S4x12(0).Cos())
	a.Equal(S8x24One, S8x24(0).Cos())
	a.Equal(S16x16(51471), S16x16One.Atan())
	a.Equal(S16x16Pi, S16x16(0).Atan2(S16x16One.Neg()))
	a.Equal(-halfPi, S16x16One.Neg().Atan2(0))
	a.Equal(halfPi, S16x16One.Asin())
	a.Equal(S16x16(0), S16x16One.Acos())
	a.Equal(S16x16Pi, S16x16One.Neg().Acos())
}

func TestTrigPeriodic(t *testing.T) {
	a := assert.New(t)
	for f := -3.0; f <= 3; f += 0.125 {
		x := S16x16F(f)
		twoPi := S16x16Pi.Shl(1)
		a.InDelta(x.Sin().Float64(), x.Add(twoPi).Sin().Float64(), 2e-4)
		a.InDelta(x.Sin().Float64(), -x.Neg().Sin().Float64(), 2e-4)
		a.InDelta(x.Cos().Float64(), x.Neg().Cos().Float64(), 2e-4)
	}
}

func BenchmarkSinS16x16(b *testing.B) {
	f0 := S16x16F(1.2345)

	for i := 0; i < b.N; i++ {
		f0.Sin()
	}
}

func BenchmarkAtan2S16x16(b *testing.B) {
	y, x := S16x16F(1.2345), S16x16F(-0.5)

	for i := 0; i < b.N; i++ {
		y.Atan2(x)
	}
}

func BenchmarkPowS16x16(b *testing.B) {
	f0, f1 := S16x16F(1.2345), S16x16F(2.5)

	for i := 0; i < b.N; i++ {
		f0.Pow(f1)
	}
}
