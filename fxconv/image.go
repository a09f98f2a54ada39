// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxconv

import (
	ifixed "golang.org/x/image/math/fixed"

	fixed "github.com/avdva/fixedpoint"
)

// ToInt26_6 returns x as a 26.6 number, rounded toward negative infinity.
// Every type of the fixed package fits.
func ToInt26_6[T fixed.Number[T]](x T) ifixed.Int26_6 {
	raw, _ := rescale(int64(x), x.Traits().FracBits, 6)
	return ifixed.Int26_6(raw)
}

// FromInt26_6 converts v into T. It returns false if v does not fit T.
func FromInt26_6[T fixed.Number[T]](v ifixed.Int26_6) (T, bool) {
	var x T
	raw, ok := rescale(int64(v), 6, x.Traits().FracBits)
	if !ok {
		return 0, false
	}
	return fromRaw[T](raw)
}

// ToInt52_12 returns x as a 52.12 number, rounded toward negative infinity.
func ToInt52_12[T fixed.Number[T]](x T) ifixed.Int52_12 {
	raw, _ := rescale(int64(x), x.Traits().FracBits, 12)
	return ifixed.Int52_12(raw)
}

// FromInt52_12 converts v into T. It returns false if v does not fit T.
func FromInt52_12[T fixed.Number[T]](v ifixed.Int52_12) (T, bool) {
	var x T
	raw, ok := rescale(int64(v), 12, x.Traits().FracBits)
	if !ok {
		return 0, false
	}
	return fromRaw[T](raw)
}
