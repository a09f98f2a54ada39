// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import "github.com/avdva/fixedpoint/internal/layout"

// Traits describes how values of one fixed-point layout are computed with.
type Traits = layout.Traits

// Resolve derives the traits of a layout with intBits integer bits
// (the sign bit included for signed layouts) and fracBits fractional bits.
// It returns an error for layouts that no intermediate type can serve.
//
// The generated types carry the result of Resolve for their layout as a
// literal, and Traits of any value returns it.
func Resolve(intBits, fracBits uint, signed bool) (Traits, error) {
	return layout.Resolve(intBits, fracBits, signed)
}
