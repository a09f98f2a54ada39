// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"math"

	"github.com/avdva/fixedpoint/internal/mathutil"
	"github.com/avdva/fixedpoint/trig"
)

// S0x32 is a signed normalized number in [-1, 1), the value is raw/2^31.
// Unlike the other types, it saturates instead of wrapping.
type S0x32 int32

// U0x32 is an unsigned normalized number in [0, 1), the value is raw/2^32.
// Unlike the other types, it saturates instead of wrapping.
type U0x32 uint32

// Normalized constants.
const (
	S0x32Max S0x32 = math.MaxInt32
	S0x32Min S0x32 = math.MinInt32
	U0x32Max U0x32 = math.MaxUint32
)

// Normalized layouts have no polynomial or square root traits.
var (
	s0x32Traits = Traits{
		IntBits:     1,
		FracBits:    31,
		Signed:      true,
		RawBits:     32,
		WideBits:    64,
		MaxOverflow: math.MaxInt32,
	}
	u0x32Traits = Traits{
		FracBits:    32,
		RawBits:     32,
		WideBits:    64,
		MaxOverflow: math.MaxUint32,
	}
)

// S0x32F returns f as S0x32, truncated toward zero.
// Values outside of [-1, 1) saturate, NaN gives 0.
func S0x32F(f float64) S0x32 {
	switch {
	case f >= 1:
		return S0x32Max
	case f <= -1:
		return S0x32Min
	case math.IsNaN(f):
		return 0
	}
	return S0x32(f * (1 << 31))
}

// SinS0x32 returns the sine of angle, where a full turn is trig.FullTurn.
func SinS0x32(angle uint32) S0x32 {
	return fromTrig32(trig.Sin32(angle))
}

// CosS0x32 returns the cosine of angle, where a full turn is trig.FullTurn.
func CosS0x32(angle uint32) S0x32 {
	return fromTrig32(trig.Cos32(angle))
}

// fromTrig32 stretches trig output, which peaks at trig.Max, to the S0x32 range.
func fromTrig32(s int32) S0x32 {
	return S0x32(s + s>>15)
}

func saturateS0x32(v int64) S0x32 {
	return S0x32(mathutil.Clamp(v, math.MinInt32, math.MaxInt32))
}

// Raw returns the underlying integer of x.
func (x S0x32) Raw() int32 {
	return int32(x)
}

// Traits returns the traits of the S0x32 layout.
func (S0x32) Traits() Traits {
	return s0x32Traits
}

// Float64 returns x as float64.
func (x S0x32) Float64() float64 {
	return float64(x) / (1 << 31)
}

// Add returns x+y, saturated.
func (x S0x32) Add(y S0x32) S0x32 {
	return saturateS0x32(int64(x) + int64(y))
}

// Sub returns x-y, saturated.
func (x S0x32) Sub(y S0x32) S0x32 {
	return saturateS0x32(int64(x) - int64(y))
}

// Neg returns -x. The negation of S0x32Min is S0x32Max.
func (x S0x32) Neg() S0x32 {
	return saturateS0x32(-int64(x))
}

// Mul returns x*y. The only product that saturates is S0x32Min*S0x32Min.
func (x S0x32) Mul(y S0x32) S0x32 {
	return saturateS0x32(int64(x) * int64(y) >> 31)
}

// MulScalar returns x*n, saturated.
func (x S0x32) MulScalar(n int) S0x32 {
	// any |n| > 1<<31 saturates a non-zero x anyway.
	return saturateS0x32(int64(x) * mathutil.Clamp(int64(n), -1<<31, 1<<31))
}

// Scale returns v*x, rounded toward negative infinity.
// The result only saturates for v == math.MinInt32 and x == S0x32Min.
func (x S0x32) Scale(v int32) int32 {
	return int32(mathutil.Clamp(int64(v)*int64(x)>>31, math.MinInt32, math.MaxInt32))
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x S0x32) Cmp(y S0x32) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// String returns the exact decimal representation of x.
func (x S0x32) String() string {
	return formatRaw(int64(x), 31)
}

// MarshalText implements encoding.TextMarshaler.
func (x S0x32) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Out of range values saturate.
func (x *S0x32) UnmarshalText(text []byte) error {
	raw, err := parseSaturated(string(text), s0x32Traits)
	if err != nil {
		return err
	}
	*x = S0x32(raw)
	return nil
}

// MarshalJSON implements json.Marshaler. The output depends on JSONMode.
func (x S0x32) MarshalJSON() ([]byte, error) {
	return marshalJSON(int64(x), 31), nil
}

// UnmarshalJSON implements json.Unmarshaler. Out of range values saturate.
func (x *S0x32) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalJSON(data, s0x32Traits, true)
	if err != nil {
		return err
	}
	*x = S0x32(raw)
	return nil
}

// U0x32F returns f as U0x32, truncated toward zero.
// Values outside of [0, 1) saturate, NaN gives 0.
func U0x32F(f float64) U0x32 {
	switch {
	case f >= 1:
		return U0x32Max
	case f > 0:
		return U0x32(f * (1 << 32))
	}
	return 0
}

func saturateU0x32(v uint64) U0x32 {
	if v > math.MaxUint32 {
		return U0x32Max
	}
	return U0x32(v)
}

// Raw returns the underlying integer of x.
func (x U0x32) Raw() uint32 {
	return uint32(x)
}

// Traits returns the traits of the U0x32 layout.
func (U0x32) Traits() Traits {
	return u0x32Traits
}

// Float64 returns x as float64.
func (x U0x32) Float64() float64 {
	return float64(x) / (1 << 32)
}

// Add returns x+y, saturated.
func (x U0x32) Add(y U0x32) U0x32 {
	return saturateU0x32(uint64(x) + uint64(y))
}

// Sub returns x-y, or 0 if y > x.
func (x U0x32) Sub(y U0x32) U0x32 {
	if y > x {
		return 0
	}
	return x - y
}

// Mul returns x*y, truncated.
func (x U0x32) Mul(y U0x32) U0x32 {
	return U0x32(uint64(x) * uint64(y) >> 32)
}

// MulScalar returns x*n, saturated.
func (x U0x32) MulScalar(n uint) U0x32 {
	// any n > 1<<32 saturates a non-zero x anyway.
	return saturateU0x32(uint64(x) * min(uint64(n), 1<<32))
}

// Scale returns v*x, truncated.
func (x U0x32) Scale(v uint32) uint32 {
	return uint32(uint64(v) * uint64(x) >> 32)
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x U0x32) Cmp(y U0x32) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// String returns the exact decimal representation of x.
func (x U0x32) String() string {
	return formatRaw(int64(x), 32)
}

// MarshalText implements encoding.TextMarshaler.
func (x U0x32) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Out of range values saturate.
func (x *U0x32) UnmarshalText(text []byte) error {
	raw, err := parseSaturated(string(text), u0x32Traits)
	if err != nil {
		return err
	}
	*x = U0x32(raw)
	return nil
}

// MarshalJSON implements json.Marshaler. The output depends on JSONMode.
func (x U0x32) MarshalJSON() ([]byte, error) {
	return marshalJSON(int64(x), 32), nil
}

// UnmarshalJSON implements json.Unmarshaler. Out of range values saturate.
func (x *U0x32) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalJSON(data, u0x32Traits, true)
	if err != nil {
		return err
	}
	*x = U0x32(raw)
	return nil
}
