// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as strings, like `"1234.5678"`.
	JSONModeString = iota
	// JSONModeNumber marshals values as json numbers, like `1234.5678`.
	// The decimal representation is exact, but decoders may round it to a float.
	JSONModeNumber
	// JSONModeRaw marshals the raw integer with the number of fractional bits, like `{"raw":98304,"frac":16}`.
	JSONModeRaw
)

var (
	jsonParts = []string{`{"raw":`, `,"frac":`, `}`}
)

func marshalJSON(raw int64, frac uint) []byte {
	var builder strings.Builder
	switch JSONMode {
	case JSONModeNumber:
		writeRaw(&builder, raw, frac)
	case JSONModeRaw:
		builder.WriteString(jsonParts[0])
		builder.WriteString(strconv.FormatInt(raw, 10))
		builder.WriteString(jsonParts[1])
		builder.WriteString(strconv.FormatUint(uint64(frac), 10))
		builder.WriteString(jsonParts[2])
	default: // marshal as a string
		builder.WriteByte('"')
		writeRaw(&builder, raw, frac)
		builder.WriteByte('"')
	}
	return []byte(builder.String())
}

// unmarshalJSON decodes a string, a number, or a raw object into a raw value of the layout t.
// Raw objects with a different number of fractional bits are rescaled, truncating toward zero.
// If saturate is set, out of range values are clamped instead of being an error.
func unmarshalJSON(data []byte, t Traits, saturate bool) (int64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("empty json")
	}
	if data[0] != '{' {
		if saturate {
			return parseSaturated(string(data), t)
		}
		return parseRaw(string(data), t)
	}
	d := struct {
		Raw  int64
		Frac uint
	}{}
	if err := json.Unmarshal(data, &d); err != nil {
		return 0, err
	}
	if d.Frac > 62 {
		return 0, fmt.Errorf("%s: invalid number of fractional bits %d", t.Name(), d.Frac)
	}
	raw, ok := rescale(d.Raw, d.Frac, t.FracBits)
	lo, hi := int64(0), t.MaxOverflow
	if t.Signed {
		lo = -hi - 1
	}
	switch {
	case ok && raw >= lo && raw <= hi:
		return raw, nil
	case !saturate:
		return 0, fmt.Errorf("%s: %s: %w", t.Name(), data, errRange)
	case d.Raw < 0:
		return lo, nil
	}
	return hi, nil
}

// rescale converts raw from one number of fractional bits to another.
// ok is false if the result does not fit int64.
func rescale(raw int64, from, to uint) (res int64, ok bool) {
	switch {
	case from > to:
		// division truncates toward zero, unlike an arithmetic shift.
		return raw / (1 << (from - to)), true
	case from < to:
		sh := to - from
		if sh >= 63 || raw<<sh>>sh != raw {
			return 0, raw == 0
		}
		return raw << sh, true
	}
	return raw, true
}
