// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixed implements binary fixed-point numbers for targets without
// a floating-point unit.
//
// Every type stores a single integer: the real value is raw / 2^FracBits.
// Types are named after their layout, S for signed and U for unsigned,
// followed by integer and fractional bits, so S16x16 is a signed number with
// 16 integer bits (sign included) and 16 fractional bits stored in an int32.
// Since the types are plain integers, a value can be built from its raw bits
// with a conversion, S16x16(raw), and compared and added with the usual
// operators. Multiplication and division must go through Mul and Div.
//
// All operations are total: division by zero, square roots and logarithms
// of non-positive numbers and asin/acos outside [-1, 1] return zero.
// Float constructors truncate toward zero and wrap on overflow, except for
// the normalized S0x32 and U0x32 which saturate.
//
// Wider layouts can be reached from narrower ones with generated To methods,
// which only exist for exact widenings.
package fixed

//go:generate go run mkfixed.go S4x12 int16

// S4x12 is a signed number with 4 integer and 12 fractional bits, range [-8, 8).
type S4x12 int16

//go:generate go run mkfixed.go S8x8 int16

// S8x8 is a signed number with 8 integer and 8 fractional bits, range [-128, 128).
type S8x8 int16

//go:generate go run mkfixed.go S12x4 int16

// S12x4 is a signed number with 12 integer and 4 fractional bits, range [-2048, 2048).
type S12x4 int16

//go:generate go run mkfixed.go S16x16 int32

// S16x16 is a signed number with 16 integer and 16 fractional bits, range [-32768, 32768).
type S16x16 int32

//go:generate go run mkfixed.go S8x24 int32

// S8x24 is a signed number with 8 integer and 24 fractional bits, range [-128, 128).
type S8x24 int32

//go:generate go run mkfixed.go S24x8 int32

// S24x8 is a signed number with 24 integer and 8 fractional bits, range [-8388608, 8388608).
type S24x8 int32

//go:generate go run mkfixed.go U4x12 uint16

// U4x12 is an unsigned number with 4 integer and 12 fractional bits, range [0, 16).
type U4x12 uint16

//go:generate go run mkfixed.go U8x8 uint16

// U8x8 is an unsigned number with 8 integer and 8 fractional bits, range [0, 256).
type U8x8 uint16

//go:generate go run mkfixed.go U12x4 uint16

// U12x4 is an unsigned number with 12 integer and 4 fractional bits, range [0, 4096).
type U12x4 uint16

//go:generate go run mkfixed.go U16x16 uint32

// U16x16 is an unsigned number with 16 integer and 16 fractional bits, range [0, 65536).
type U16x16 uint32

//go:generate go run mkfixed.go U8x24 uint32

// U8x24 is an unsigned number with 8 integer and 24 fractional bits, range [0, 256).
type U8x24 uint32

//go:generate go run mkfixed.go U24x8 uint32

// U24x8 is an unsigned number with 24 integer and 8 fractional bits, range [0, 16777216).
type U24x8 uint32

// Number is the method set shared by the fixed-point types of this package,
// except for the normalized S0x32 and U0x32.
type Number[T any] interface {
	~int16 | ~int32 | ~uint16 | ~uint32

	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Cmp(T) int
	Floor() T
	Ceil() T
	Fract() T
	Sqrt() T
	Pow(T) T
	Int() int
	Float64() float64
	Traits() Traits
	String() string
}

// One returns 1 as T.
func One[T Number[T]]() T {
	var x T
	return T(int64(1) << x.Traits().FracBits)
}

// Lerp interpolates between a and b: a + (b-a)*t.
// It does not go through negative intermediates, so unsigned types
// interpolate in both directions.
func Lerp[T Number[T]](a, b, t T) T {
	if b >= a {
		return a.Add(b.Sub(a).Mul(t))
	}
	return a.Sub(a.Sub(b).Mul(t))
}

// Clamp limits x to [lo, hi].
func Clamp[T Number[T]](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Step returns 0 if x < edge, and 1 otherwise.
func Step[T Number[T]](edge, x T) T {
	if x < edge {
		return 0
	}
	return One[T]()
}

// Smoothstep performs Hermite interpolation between 0 and 1 for x in [edge0, edge1].
func Smoothstep[T Number[T]](edge0, edge1, x T) T {
	one := One[T]()
	if x <= edge0 {
		return 0
	}
	if x >= edge1 {
		return one
	}
	t := x.Sub(edge0).Div(edge1.Sub(edge0))
	three := one.Add(one).Add(one)
	return t.Mul(t).Mul(three.Sub(t.Add(t)))
}

// Parse converts a decimal string, like "-12.375" or "1e-3", into T.
// The value is truncated toward zero to the precision of T.
// An error is returned for malformed input and values out of the range of T.
func Parse[T Number[T]](s string) (T, error) {
	var x T
	raw, err := parseRaw(s, x.Traits())
	if err != nil {
		return 0, err
	}
	return T(raw), nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
func MustParse[T Number[T]](s string) T {
	x, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return x
}
