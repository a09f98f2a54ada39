// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"github.com/avdva/fixedpoint/internal/mathutil"
	"github.com/avdva/fixedpoint/trig"
)

// The functions below operate on raw values widened to int64. Generated
// methods call them with constant layout parameters and pick the Q32 or Q64
// variant per layout, so no layout decision is made at run time.

// radiansToAngle is round(2^24 / 2Pi): radians to the trig angle domain.
const radiansToAngle = 2670177

// trigAngle converts a raw angle in radians with frac fractional bits
// to the angle domain of the trig package. Negative angles wrap.
func trigAngle(raw int64, frac uint) uint32 {
	return uint32(raw * radiansToAngle >> frac)
}

// fromTrig re-quantizes trig output to 31-shift fractional bits.
// trig.Max is 32767<<16, so s>>15 is added back to reach 1<<31 at the peak,
// which keeps sin(Pi/2) and cos(0) exact.
func fromTrig(s int32, shift uint) int64 {
	v := int64(s)
	v += v >> 15
	return (v + 1<<(shift-1)) >> shift
}

func sinRaw(raw int64, frac, shift uint) int64 {
	return fromTrig(trig.Sin32(trigAngle(raw, frac)), shift)
}

func cosRaw(raw int64, frac, shift uint) int64 {
	return fromTrig(trig.Cos32(trigAngle(raw, frac)), shift)
}

func sinCosRaw(raw int64, frac, shift uint) (sin, cos int64) {
	s, c := trig.SinCos32(trigAngle(raw, frac))
	return fromTrig(s, shift), fromTrig(c, shift)
}

// log2Split splits a positive raw value into an integer exponent and
// a mantissa t in [0, 1<<ifrac), so that raw/2^frac = 2^e * (1 + t/2^ifrac).
func log2Split(raw int64, frac, ifrac uint) (e int64, t int64) {
	msb := mathutil.BinaryDigits(uint64(raw)) - 1
	if msb >= int(ifrac) {
		t = raw >> (msb - int(ifrac))
	} else {
		t = raw << (int(ifrac) - msb)
	}
	return int64(msb) - int64(frac), t - 1<<ifrac
}

// log2Q32 returns log2(raw/2^frac) with ifrac fractional bits. raw must be positive.
func log2Q32(raw int64, frac, ifrac uint) int64 {
	e, t := log2Split(raw, frac, ifrac)
	return e<<ifrac + int64(hornerQ32(int32(t), ifrac, log2C1, log2C2, log2C3, log2C4))
}

// log2Q64 is log2Q32 with a 64-bit polynomial intermediate.
func log2Q64(raw int64, frac, ifrac uint) int64 {
	e, t := log2Split(raw, frac, ifrac)
	return e<<ifrac + hornerQ64(t, ifrac, log2C1, log2C2, log2C3, log2C4)
}

// exp2Scale turns the mantissa m = 2^t (ifrac fractional bits) and the
// integer exponent ip into a raw value with frac fractional bits,
// saturating at max.
func exp2Scale(m, ip int64, frac, ifrac uint, max int64) int64 {
	sh := ip + int64(frac) - int64(ifrac)
	var r int64
	if sh >= 0 {
		r = m << sh
	} else {
		r = m >> -sh
	}
	if r > max {
		return max
	}
	return r
}

// exp2Q32 returns 2^(x/2^ifrac) as a raw value with frac fractional bits.
func exp2Q32(x int64, frac, ifrac uint, max int64) int64 {
	ip := x >> ifrac
	switch {
	case ip+int64(frac) < 0:
		return 0
	case ip+int64(frac) > 61:
		return max
	}
	t := int32(x & (1<<ifrac - 1))
	m := 1<<ifrac + int64(hornerQ32(t, ifrac, exp2C1, exp2C2, exp2C3, exp2C4))
	return exp2Scale(m, ip, frac, ifrac, max)
}

// exp2Q64 is exp2Q32 with a 64-bit polynomial intermediate.
func exp2Q64(x int64, frac, ifrac uint, max int64) int64 {
	ip := x >> ifrac
	switch {
	case ip+int64(frac) < 0:
		return 0
	case ip+int64(frac) > 61:
		return max
	}
	m := 1<<ifrac + hornerQ64(x&(1<<ifrac-1), ifrac, exp2C1, exp2C2, exp2C3, exp2C4)
	return exp2Scale(m, ip, frac, ifrac, max)
}

// powQ32 returns base^exp = 2^(exp*log2(base)). Non-positive bases give 0,
// a zero exponent gives 1.
func powQ32(base, exp int64, frac, ifrac uint, max int64) int64 {
	switch {
	case base <= 0:
		return 0
	case exp == 0:
		return 1 << frac
	}
	return exp2Q32(log2Q32(base, frac, ifrac)*exp>>frac, frac, ifrac, max)
}

// powQ64 is powQ32 with a 64-bit polynomial intermediate.
func powQ64(base, exp int64, frac, ifrac uint, max int64) int64 {
	switch {
	case base <= 0:
		return 0
	case exp == 0:
		return 1 << frac
	}
	return exp2Q64(log2Q64(base, frac, ifrac)*exp>>frac, frac, ifrac, max)
}

// atanQ32 returns atan(x) for a raw x with frac fractional bits.
func atanQ32(x int64, frac, ifrac uint) int64 {
	ax := mathutil.AbsInt64(x)
	var r int64
	if ax <= 1<<frac {
		r = int64(atanUnitQ32(int32(ax<<(ifrac-frac)), ifrac))
	} else {
		r = q30(halfPiQ30, ifrac) - int64(atanUnitQ32(int32(1<<(ifrac+frac)/ax), ifrac))
	}
	r >>= ifrac - frac
	if x < 0 {
		return -r
	}
	return r
}

// atanQ64 is atanQ32 with a 64-bit polynomial intermediate.
func atanQ64(x int64, frac, ifrac uint) int64 {
	ax := mathutil.AbsInt64(x)
	var r int64
	if ax <= 1<<frac {
		r = atanUnitQ64(ax<<(ifrac-frac), ifrac)
	} else {
		r = q30(halfPiQ30, ifrac) - atanUnitQ64(1<<(ifrac+frac)/ax, ifrac)
	}
	r >>= ifrac - frac
	if x < 0 {
		return -r
	}
	return r
}

// atan2Q32 returns the angle of the point (x, y) in [-Pi, Pi],
// with frac fractional bits. atan2(0, 0) is 0.
func atan2Q32(y, x int64, frac, ifrac uint) int64 {
	if x == 0 && y == 0 {
		return 0
	}
	ax, ay := mathutil.AbsInt64(x), mathutil.AbsInt64(y)
	var r int64
	if ax >= ay {
		r = int64(atanUnitQ32(int32(ay<<ifrac/ax), ifrac))
	} else {
		r = q30(halfPiQ30, ifrac) - int64(atanUnitQ32(int32(ax<<ifrac/ay), ifrac))
	}
	return atan2Quadrant(r, x, y, frac, ifrac)
}

// atan2Q64 is atan2Q32 with a 64-bit polynomial intermediate.
func atan2Q64(y, x int64, frac, ifrac uint) int64 {
	if x == 0 && y == 0 {
		return 0
	}
	ax, ay := mathutil.AbsInt64(x), mathutil.AbsInt64(y)
	var r int64
	if ax >= ay {
		r = atanUnitQ64(ay<<ifrac/ax, ifrac)
	} else {
		r = q30(halfPiQ30, ifrac) - atanUnitQ64(ax<<ifrac/ay, ifrac)
	}
	return atan2Quadrant(r, x, y, frac, ifrac)
}

// atan2Quadrant maps a first-quadrant angle r (ifrac bits) to the quadrant of (x, y).
func atan2Quadrant(r, x, y int64, frac, ifrac uint) int64 {
	if x < 0 {
		r = q30(piQ30, ifrac) - r
	}
	r >>= ifrac - frac
	if y < 0 {
		return -r
	}
	return r
}
