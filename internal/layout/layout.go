// Package layout resolves the computational traits of fixed-point layouts:
// the widths of intermediates and the precision of polynomial evaluation.
// It is shared by the fixed package and its code generator.
package layout

import "fmt"

// Traits describes how values of one fixed-point layout are computed with.
// It is derived from the layout alone, see Resolve.
type Traits struct {
	IntBits  uint // integer bits, including the sign bit of signed layouts
	FracBits uint
	Signed   bool

	// RawBits is the width of the stored integer, 16 or 32.
	RawBits uint
	// WideBits is the width of the multiply and divide intermediate.
	WideBits uint
	// IFrac is the fractional precision used while evaluating polynomials.
	IFrac uint
	// PolyBits is the width of the polynomial intermediate, 32 or 64.
	PolyBits uint
	// SinCosShift re-quantizes trig primitive output to FracBits.
	SinCosShift uint
	// Sqrt64 selects the 64-bit integer square root.
	Sqrt64 bool
	// MaxOverflow is the raw value returned by saturating operations.
	MaxOverflow int64
}

// Bits returns the total number of bits of the layout.
func (t Traits) Bits() uint {
	return t.IntBits + t.FracBits
}

// Name returns the type name of the layout, like S16x16 or U8x8.
// Normalized layouts are named after their storage, S0x32 and U0x32.
func (t Traits) Name() string {
	if t.FracBits >= 31 {
		if t.Signed {
			return "S0x32"
		}
		return "U0x32"
	}
	if t.Signed {
		return fmt.Sprintf("S%dx%d", t.IntBits, t.FracBits)
	}
	return fmt.Sprintf("U%dx%d", t.IntBits, t.FracBits)
}

// PolyBitsNeeded returns the width a Horner step at IFrac needs on the selected path.
func (t Traits) PolyBitsNeeded() uint {
	return polyBitsFor(t.IFrac, t.PolyBits)
}

// Resolve derives the traits of a layout with intBits integer bits
// (the sign bit included for signed layouts) and fracBits fractional bits.
// It returns an error for layouts that no intermediate type can serve.
func Resolve(intBits, fracBits uint, signed bool) (Traits, error) {
	t := Traits{IntBits: intBits, FracBits: fracBits, Signed: signed}
	total := t.Bits()
	switch {
	case intBits == 0:
		return t, fmt.Errorf("layout %d.%d has no integer bits", intBits, fracBits)
	case fracBits == 0 || fracBits > maxFracBits:
		return t, fmt.Errorf("layout %d.%d: fractional bits must be in [1, %d]", intBits, fracBits, maxFracBits)
	case total > 32:
		return t, fmt.Errorf("layout %d.%d does not fit 32 bits", intBits, fracBits)
	}

	t.RawBits = 32
	if total <= 16 {
		t.RawBits = 16
	}
	t.WideBits = 2 * t.RawBits
	t.IFrac = ifrac(fracBits)
	t.PolyBits = 64
	if t.IFrac <= 16 {
		t.PolyBits = 32
	}
	t.SinCosShift = 31 - fracBits
	t.Sqrt64 = t.RawBits+fracBits > 32
	if signed {
		t.MaxOverflow = 1<<(total-1) - 1
	} else {
		t.MaxOverflow = 1<<total - 1
	}

	if t.WideBits < 2*total {
		return t, fmt.Errorf("layout %d.%d: %d-bit intermediate is too narrow for multiplication", intBits, fracBits, t.WideBits)
	}
	if t.WideBits < t.RawBits+fracBits {
		return t, fmt.Errorf("layout %d.%d: %d-bit intermediate is too narrow for division", intBits, fracBits, t.WideBits)
	}
	if t.PolyBits < t.PolyBitsNeeded() {
		return t, fmt.Errorf("layout %d.%d: %d-bit polynomial intermediate is too narrow for %d bits", intBits, fracBits, t.PolyBits, t.IFrac)
	}
	return t, nil
}

const maxFracBits = 24

// ifrac is a step function of the fractional bits: narrow layouts evaluate
// polynomials with extra guard bits.
func ifrac(fracBits uint) uint {
	switch {
	case fracBits >= 24:
		return fracBits
	case fracBits >= 16:
		return 24
	case fracBits >= 12:
		return 20
	case fracBits >= 8:
		return 16
	default:
		return 12
	}
}

// polyBitsFor returns the width a Horner step at ifrac needs on the given path.
// Coefficients and accumulators stay below 2, so the direct 64-bit product needs
// 2*ifrac+2 bits; the 32-bit path splits the multiplier in two halves.
func polyBitsFor(ifrac, path uint) uint {
	if path == 32 {
		return ifrac + 1 + (ifrac - ifrac/2) + 1
	}
	return 2*ifrac + 2
}
