// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxconv

import (
	of "github.com/robaho/fixed"

	fixed "github.com/avdva/fixedpoint"
)

// robahoPlaces is the number of decimal places of github.com/robaho/fixed.
const robahoPlaces = 7

// ToRobaho returns x as a 7-place decimal fixed-point number,
// truncated toward zero.
func ToRobaho[T fixed.Number[T]](x T) of.Fixed {
	frac := x.Traits().FracBits
	return of.NewI(int64(x)*1e7/(1<<frac), robahoPlaces)
}

// FromRobaho converts f into T, truncating toward zero.
// An error is returned if f is NaN or out of the range of T.
func FromRobaho[T fixed.Number[T]](f of.Fixed) (T, error) {
	return fixed.Parse[T](f.String())
}
