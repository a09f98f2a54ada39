// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fxconv converts fixed-point values to and from other numeric
// packages: arbitrary precision decimals, decimal fixed-point numbers and the
// 26.6 and 52.12 formats of golang.org/x/image.
package fxconv

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	fixed "github.com/avdva/fixedpoint"
)

// ErrRange is returned when a value does not fit the target type.
var ErrRange = errors.New("value out of range")

// Decimal returns x as a decimal. The conversion is exact.
func Decimal[T fixed.Number[T]](x T) decimal.Decimal {
	frac := x.Traits().FracBits
	// raw/2^frac == raw*5^frac/10^frac.
	v := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(frac)), nil)
	v.Mul(v, big.NewInt(int64(x)))
	return decimal.NewFromBigInt(v, -int32(frac))
}

// FromDecimal converts d into T, truncating toward zero.
// ErrRange is returned if d does not fit T.
func FromDecimal[T fixed.Number[T]](d decimal.Decimal) (T, error) {
	var x T
	tr := x.Traits()
	raw := d.Mul(decimal.New(1<<tr.FracBits, 0)).BigInt()
	if !raw.IsInt64() {
		return 0, fmt.Errorf("%s: %s: %w", tr.Name(), d, ErrRange)
	}
	res, ok := fromRaw[T](raw.Int64())
	if !ok {
		return 0, fmt.Errorf("%s: %s: %w", tr.Name(), d, ErrRange)
	}
	return res, nil
}

// fromRaw returns raw as T if it is within the range of T.
func fromRaw[T fixed.Number[T]](raw int64) (T, bool) {
	var x T
	tr := x.Traits()
	lo := int64(0)
	if tr.Signed {
		lo = -tr.MaxOverflow - 1
	}
	if raw < lo || raw > tr.MaxOverflow {
		return 0, false
	}
	return T(raw), true
}

// rescale changes the fractional bits of raw from one precision to another.
// Narrowing rounds toward negative infinity, widening reports overflow.
func rescale(raw int64, from, to uint) (int64, bool) {
	if from >= to {
		return raw >> (from - to), true
	}
	sh := to - from
	res := raw << sh
	return res, res>>sh == raw
}
