// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ease implements integer easing curves for animation and fades.
//
// A curve maps progress t in [0, 1] to [0, 1], both stored as full-range
// unsigned integers: 255 is 1 for Ease8 and 65535 is 1 for Ease16.
// Every curve maps 0 to 0 and 1 to 1.
package ease

import (
	"fmt"

	fixed "github.com/avdva/fixedpoint"
	"github.com/avdva/fixedpoint/trig"
)

// Kind selects an easing curve.
type Kind int

// Easing curves.
const (
	Linear Kind = iota
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InSine
	OutSine
	InOutSine
	// Smooth is the Hermite smoothstep curve, t*t*(3-2t).
	Smooth
	numKinds
)

var kindNames = [numKinds]string{
	Linear:     "linear",
	InQuad:     "in-quad",
	OutQuad:    "out-quad",
	InOutQuad:  "in-out-quad",
	InCubic:    "in-cubic",
	OutCubic:   "out-cubic",
	InOutCubic: "in-out-cubic",
	InSine:     "in-sine",
	OutSine:    "out-sine",
	InOutSine:  "in-out-sine",
	Smooth:     "smooth",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || k >= numKinds {
		return nil, fmt.Errorf("unknown easing kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind returns the curve named s, like "in-out-cubic".
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown easing kind %q", s)
}

const (
	one16 = 1<<16 - 1
	half  = 1 << 15
)

// Ease8 evaluates the curve k at t, where 255 is 1.
func Ease8(k Kind, t uint8) uint8 {
	return uint8(Ease16(k, uint16(t)*257) >> 8)
}

// Ease16 evaluates the curve k at t, where 65535 is 1.
// Unknown kinds are linear.
func Ease16(k Kind, t uint16) uint16 {
	x := uint64(t)
	switch k {
	case InQuad:
		return uint16(quad(x))
	case OutQuad:
		return uint16(one16 - quad(one16-x))
	case InOutQuad:
		if x < half {
			return uint16(2 * x * x / one16)
		}
		return uint16(one16 - 2*(one16-x)*(one16-x)/one16)
	case InCubic:
		return uint16(cubic(x))
	case OutCubic:
		return uint16(one16 - cubic(one16-x))
	case InOutCubic:
		if x < half {
			return uint16(4 * x * x * x / (one16 * one16))
		}
		y := one16 - x
		return uint16(one16 - 4*y*y*y/(one16*one16))
	case InSine:
		return uint16(one16 - unit(trig.Cos32(uint32(x*trig.QuarterTurn/one16))))
	case OutSine:
		return uint16(unit(trig.Sin32(uint32(x * trig.QuarterTurn / one16))))
	case InOutSine:
		return uint16((one16 - unit(trig.Cos32(uint32(x*trig.HalfTurn/one16)))) / 2)
	case Smooth:
		return smooth(t)
	}
	return t
}

func quad(x uint64) uint64 {
	return x * x / one16
}

func cubic(x uint64) uint64 {
	return x * x * x / (one16 * one16)
}

// unit rescales the output of the trig primitives to [-65535, 65535].
func unit(s int32) int64 {
	return int64(s) * one16 / trig.Max
}

// smooth maps t onto [0, 1] as U16x16 and evaluates fixed.Smoothstep.
// Rounding may step the result down by one near 1.
func smooth(t uint16) uint16 {
	v := fixed.Smoothstep(0, fixed.U16x16(one16), fixed.U16x16(t))
	return uint16(min(v.Raw(), one16))
}
