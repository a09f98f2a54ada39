// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		res S16x16
		err string
	}{
		{"0", 0, ""},
		{"-0", 0, ""},
		{"000.000", 0, ""},
		{"1.5", 98304, ""},
		{"-1.5", -98304, ""},
		{"0.1", 6553, ""},
		{"-0.1", -6553, ""},
		{"1e-3", 65, ""},
		{"1E-3", 65, ""},
		{"12.5e1", 125 << 16, ""},
		{"  +2 ", 2 << 16, ""},
		{`"3.25"`, 212992, ""},
		{"0.0000152587890625", 1, ""},
		{"0.0000152587890624", 0, ""},
		{"32767.9999847412109375", S16x16Max, ""},
		{"-32768", S16x16Min, ""},
		{"1e-50", 0, ""},
		{"123456789012345678901234567890e-25", 809086412, ""},

		{"-32768.00001", S16x16Min, ""},
		{"-32767.9999847412109375", S16x16Min + 1, ""},

		{"32768", 0, "S16x16: \"32768\": value out of range"},
		{"-32768.0000153", 0, "S16x16: \"-32768.0000153\": value out of range"},
		{"1e5", 0, "S16x16: \"1e5\": value out of range"},
		{"1e30", 0, "S16x16: \"1e30\": value out of range"},
		{"", 0, "S16x16: empty input"},
		{`""`, 0, "S16x16: empty input"},
		{"1.2.3", 0, "S16x16: parsing failed: unexpected '.' at pos 4"},
		{"-", 0, "S16x16: parsing failed: no digits at pos 2"},
		{".e1", 0, "S16x16: parsing failed: no digits at pos 2"},
		{"12a", 0, "S16x16: parsing failed: unexpected symbol 'a' at pos 3"},
		{" -x", 0, "S16x16: parsing failed: unexpected symbol 'x' at pos 3"},
		{"1e", 0, "S16x16: parsing failed: invalid exponent \"\" at pos 3"},
		{"1e1x", 0, "S16x16: parsing failed: invalid exponent \"1x\" at pos 3"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := Parse[S16x16](test.s)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.res, v)
				}
			} else {
				a.EqualError(err, test.err)
			}
		})
	}
}

func TestParseRange(t *testing.T) {
	a := assert.New(t)
	v, err := Parse[U8x8]("255.99609375")
	if a.NoError(err) {
		a.Equal(U8x8Max, v)
	}
	_, err = Parse[U8x8]("256")
	a.True(errors.Is(err, errRange))
	_, err = Parse[U8x8]("-1")
	a.True(errors.Is(err, errNegative))
	v, err = Parse[U8x8]("-0.001")
	if a.NoError(err) {
		a.Equal(U8x8(0), v)
	}
	s, err := Parse[S4x12]("-8")
	if a.NoError(err) {
		a.Equal(S4x12Min, s)
	}
	_, err = Parse[S4x12]("8")
	a.True(errors.Is(err, errRange))
	p, err := Parse[S8x24]("3.14159")
	if a.NoError(err) {
		a.Equal(S8x24(52707134), p)
	}
	// exact decimal expansions longer than 19 digits.
	p, err = Parse[S8x24]("3.141592681407928466796875")
	if a.NoError(err) {
		a.Equal(S8x24Pi, p)
	}
	u, err := Parse[U8x24]("255.999999940395355224609375")
	if a.NoError(err) {
		a.Equal(U8x24Max, u)
	}
	a.Panics(func() {
		MustParse[S8x8]("nan")
	})
}

func TestString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   fmt.Stringer
		res string
	}{
		{S16x16(0), "0"},
		{S16x16F(1.5), "1.5"},
		{S16x16F(-0.25), "-0.25"},
		{S16x16I(-7), "-7"},
		{S16x16Eps, "0.0000152587890625"},
		{S16x16Min, "-32768"},
		{S16x16Max, "32767.9999847412109375"},
		{U16x16Max, "65535.9999847412109375"},
		{S4x12Eps, "0.000244140625"},
		{S12x4(-1), "-0.0625"},
		{U8x24(1), "0.000000059604644775390625"},
		{S0x32Min, "-1"},
		{S0x32Max, "0.9999999995343387126922607421875"},
		{U0x32Max, "0.99999999976716935634613037109375"},
		{U0x32(1 << 31), "0.5"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.v.String())
			a.Equal(test.res, fmt.Sprint(test.v))
		})
	}
}

// testTextRoundTrip checks that the decimal representation of every sampled value parses back exactly.
func testTextRoundTrip[T Number[T]](t *testing.T) {
	a := assert.New(t)
	tr := T(0).Traits()
	lo := int64(0)
	if tr.Signed {
		lo = -tr.MaxOverflow - 1
	}
	step := (tr.MaxOverflow-lo)/1021 + 1
	raws := []int64{lo, lo + 1, -1, 1, tr.MaxOverflow - 1, tr.MaxOverflow}
	for raw := lo; raw <= tr.MaxOverflow; raw += step {
		raws = append(raws, raw)
	}
	for _, raw := range raws {
		if raw < lo {
			continue
		}
		x := T(raw)
		s := x.String()
		v, err := Parse[T](s)
		if a.NoError(err, s) {
			a.Equal(x, v, s)
		}
		f, err := parseFloat(s)
		if a.NoError(err) {
			a.Equal(x.Float64(), f, s)
		}
	}
}

func parseFloat(s string) (float64, error) {
	var f float64
	_, err := fmt.Sscan(s, &f)
	return f, err
}

func TestTextRoundTrip(t *testing.T) {
	t.Run("S4x12", testTextRoundTrip[S4x12])
	t.Run("S8x8", testTextRoundTrip[S8x8])
	t.Run("S12x4", testTextRoundTrip[S12x4])
	t.Run("S16x16", testTextRoundTrip[S16x16])
	t.Run("S8x24", testTextRoundTrip[S8x24])
	t.Run("S24x8", testTextRoundTrip[S24x8])
	t.Run("U4x12", testTextRoundTrip[U4x12])
	t.Run("U8x8", testTextRoundTrip[U8x8])
	t.Run("U12x4", testTextRoundTrip[U12x4])
	t.Run("U16x16", testTextRoundTrip[U16x16])
	t.Run("U8x24", testTextRoundTrip[U8x24])
	t.Run("U24x8", testTextRoundTrip[U24x8])
}

func TestNormTextRoundTrip(t *testing.T) {
	a := assert.New(t)
	for _, raw := range []int32{math.MinInt32, math.MinInt32 + 1, -1, 0, 1, 123456789, math.MaxInt32} {
		x := S0x32(raw)
		var v S0x32
		if a.NoError(v.UnmarshalText([]byte(x.String())), x.String()) {
			a.Equal(x, v)
		}
	}
	for _, raw := range []uint32{0, 1, 3000000000, math.MaxUint32 - 1, math.MaxUint32} {
		x := U0x32(raw)
		var v U0x32
		if a.NoError(v.UnmarshalText([]byte(x.String())), x.String()) {
			a.Equal(x, v)
		}
	}
}

func TestTextMarshaler(t *testing.T) {
	a := assert.New(t)
	text, err := S8x8F(-2.5).MarshalText()
	if a.NoError(err) {
		a.Equal("-2.5", string(text))
	}
	var x S8x8
	if a.NoError(x.UnmarshalText([]byte("-2.5"))) {
		a.Equal(S8x8F(-2.5), x)
	}
	a.Error(x.UnmarshalText([]byte("128")))
	a.Equal(S8x8F(-2.5), x)

	var u U0x32
	if a.NoError(u.UnmarshalText([]byte("2"))) {
		a.Equal(U0x32Max, u)
	}
	if a.NoError(u.UnmarshalText([]byte("-2"))) {
		a.Equal(U0x32(0), u)
	}
	var s S0x32
	if a.NoError(s.UnmarshalText([]byte("-2"))) {
		a.Equal(S0x32Min, s)
	}
	if a.NoError(s.UnmarshalText([]byte("1e100"))) {
		a.Equal(S0x32Max, s)
	}
	if a.NoError(s.UnmarshalText([]byte("-0.5"))) {
		a.Equal(S0x32(math.MinInt32/2), s)
	}
	a.EqualError(s.UnmarshalText([]byte("0.5.")), "S0x32: parsing failed: unexpected '.' at pos 4")
}

func BenchmarkString(b *testing.B) {
	x := S16x16F(-12345.6789)

	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse[S16x16]("-12345.6789")
	}
}
