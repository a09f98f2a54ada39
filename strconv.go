// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

const (
	delim = '.'
)

var (
	errEmpty    = errors.New("empty input")
	errRange    = errors.New("value out of range")
	errNegative = errors.New("negative value")
)

// syntaxError reports a malformed number and the 1-based position of the
// offending character in the input.
type syntaxError struct {
	pos int
	msg string
}

func (e *syntaxError) Error() string {
	return fmt.Sprintf("%s at pos %d", e.msg, e.pos)
}

// number is a scanned decimal, (-1)^neg * coef * 10^exp.
// coef has no leading or trailing zeros and is empty for zero.
type number struct {
	neg  bool
	coef string
	exp  int64
}

// scanNumber parses a decimal with an optional sign, fraction and exponent,
// like "-12.5e-3". Surrounding spaces and double quotes are ignored.
func scanNumber(s string) (n number, err error) {
	i, end := 0, len(s)
	if i < end && s[i] == '"' {
		i++
	}
	if end > i && s[end-1] == '"' {
		end--
	}
	for i < end && unicode.IsSpace(rune(s[i])) {
		i++
	}
	for end > i && unicode.IsSpace(rune(s[end-1])) {
		end--
	}
	if i == end {
		return n, errEmpty
	}
	switch s[i] {
	case '-':
		n.neg = true
		i++
	case '+':
		i++
	}

	var coef []byte
	var fracDigits int64
	digits, dot := 0, false
loop:
	for ; i < end; i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			digits++
			if dot {
				fracDigits++
			}
			if len(coef) > 0 || c != '0' {
				coef = append(coef, c)
			}
		case c == delim:
			if dot {
				return n, &syntaxError{pos: i + 1, msg: "unexpected '.'"}
			}
			dot = true
		case c == 'e' || c == 'E':
			break loop
		default:
			return n, &syntaxError{pos: i + 1, msg: fmt.Sprintf("unexpected symbol %q", c)}
		}
	}
	if digits == 0 {
		return n, &syntaxError{pos: i + 1, msg: "no digits"}
	}
	if i < end {
		e, err := strconv.ParseInt(s[i+1:end], 10, 32)
		if err != nil {
			return n, &syntaxError{pos: i + 2, msg: fmt.Sprintf("invalid exponent %q", s[i+1:end])}
		}
		n.exp = e
	}
	n.exp -= fracDigits
	for len(coef) > 0 && coef[len(coef)-1] == '0' {
		coef = coef[:len(coef)-1]
		n.exp++
	}
	n.coef = string(coef)
	return n, nil
}

// scaled returns |n|*2^frac truncated toward zero.
// ok is false if the result does not fit 64 bits.
func (n number) scaled(frac uint) (raw uint64, ok bool) {
	if len(n.coef) == 0 {
		return 0, true
	}
	// the leading digit is not zero, so the value is in [10^(mag-1), 10^mag).
	switch mag := int64(len(n.coef)) + n.exp; {
	case mag > 20:
		return 0, false
	case mag < -40:
		return 0, true
	}
	coef, _ := new(big.Int).SetString(n.coef, 10)
	v := decimal.NewFromBigInt(coef, int32(n.exp)).Mul(decimal.New(1<<frac, 0)).BigInt()
	if !v.IsUint64() {
		return 0, false
	}
	return v.Uint64(), true
}

func scan(s string, t Traits) (n number, u uint64, ok bool, err error) {
	n, err = scanNumber(s)
	var se *syntaxError
	switch {
	case errors.As(err, &se):
		return n, 0, false, fmt.Errorf("%s: parsing failed: %w", t.Name(), err)
	case err != nil:
		return n, 0, false, fmt.Errorf("%s: %w", t.Name(), err)
	}
	u, ok = n.scaled(t.FracBits)
	return n, u, ok, nil
}

// parseRaw converts a decimal string into a raw value of the layout t,
// truncating toward zero. Out of range values are an error.
func parseRaw(s string, t Traits) (int64, error) {
	n, u, ok, err := scan(s, t)
	if err != nil {
		return 0, err
	}
	limit := uint64(t.MaxOverflow)
	switch {
	case n.neg && u != 0 && !t.Signed:
		return 0, fmt.Errorf("%s: %w", t.Name(), errNegative)
	case !ok, n.neg && u > limit+1, !n.neg && u > limit:
		return 0, fmt.Errorf("%s: %q: %w", t.Name(), s, errRange)
	case n.neg:
		return -int64(u), nil
	}
	return int64(u), nil
}

// parseSaturated is like parseRaw, but clamps out of range values
// to the limits of t.
func parseSaturated(s string, t Traits) (int64, error) {
	n, u, ok, err := scan(s, t)
	if err != nil {
		return 0, err
	}
	limit := uint64(t.MaxOverflow)
	switch {
	case n.neg && !t.Signed:
		return 0, nil
	case n.neg && (!ok || u > limit+1):
		return -int64(limit) - 1, nil
	case !n.neg && (!ok || u > limit):
		return int64(limit), nil
	case n.neg:
		return -int64(u), nil
	}
	return int64(u), nil
}

// formatRaw returns the exact decimal representation of raw/2^frac.
// Every binary fraction has a finite decimal expansion with at most frac digits.
func formatRaw(raw int64, frac uint) string {
	var b strings.Builder
	writeRaw(&b, raw, frac)
	return b.String()
}

func writeRaw(b *strings.Builder, raw int64, frac uint) {
	u := uint64(raw)
	if raw < 0 {
		b.WriteByte('-')
		u = uint64(-raw)
	}
	b.WriteString(strconv.FormatUint(u>>frac, 10))
	f := u & (1<<frac - 1)
	if f == 0 {
		return
	}
	b.WriteByte(delim)
	for f != 0 {
		f *= 10
		b.WriteByte('0' + byte(f>>frac))
		f &= 1<<frac - 1
	}
}
