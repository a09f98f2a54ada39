// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build ignore

// mkfixed generates the methods of a fixed-point type declared in fixed.go.
//
// Usage: go run mkfixed.go <typename> <basetype>
//
// The layout is taken from the type name, S16x16 is signed with 16 integer
// and 16 fractional bits, and resolved with layout.Resolve.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"math"
	"os"
	"strings"
	"text/template"

	"github.com/avdva/fixedpoint/internal/layout"
)

var fixedTemplate = `// Code generated by "go run mkfixed.go {{.Name}} {{.Base}}"; DO NOT EDIT.

package fixed

import "github.com/avdva/fixedpoint/internal/mathutil"

const (
	{{.Lower}}Frac = {{.T.FracBits}}
	{{.Lower}}IFrac = {{.T.IFrac}}
	{{.Lower}}Mask = 1<<{{.Lower}}Frac - 1
	{{.Lower}}Max = {{.T.MaxOverflow}}
{{- if .Signed}}
	{{.Lower}}Trig = {{.T.SinCosShift}}
{{- end}}
)

// Each expression underflows if an intermediate is too narrow for the layout.
const (
	_ = uint({{.T.WideBits}} - 2*{{.T.Bits}})
	_ = uint({{.T.WideBits}} - ({{.T.RawBits}} + {{.T.FracBits}}))
	_ = uint({{.T.PolyBits}} - {{.T.PolyBitsNeeded}})
	_ = uint({{.SqrtBits}} - ({{.T.RawBits}} + {{.T.FracBits}}))
)

var {{.Lower}}Traits = Traits{
	IntBits: {{.T.IntBits}},
	FracBits: {{.T.FracBits}},
	Signed: {{.T.Signed}},
	RawBits: {{.T.RawBits}},
	WideBits: {{.T.WideBits}},
	IFrac: {{.T.IFrac}},
	PolyBits: {{.T.PolyBits}},
	SinCosShift: {{.T.SinCosShift}},
	Sqrt64: {{.T.Sqrt64}},
	MaxOverflow: {{.T.MaxOverflow}},
}

// {{.Name}} constants.
const (
	{{.Name}}One {{.Name}} = 1 << {{.Lower}}Frac
	{{.Name}}Max {{.Name}} = {{.Lower}}Max
{{- if .Signed}}
	{{.Name}}Min {{.Name}} = -{{.Lower}}Max - 1
{{- else}}
	{{.Name}}Min {{.Name}} = 0
{{- end}}
	{{.Name}}Eps {{.Name}} = 1
	{{.Name}}Pi {{.Name}} = {{.Pi}}
)

// {{.Name}}I returns i as {{.Name}}. It wraps if i is out of range.
func {{.Name}}I(i int) {{.Name}} {
	return {{.Name}}(i << {{.Lower}}Frac)
}

// {{.Name}}F returns f as {{.Name}}, truncated toward zero. It wraps if f is out of range.
func {{.Name}}F(f float64) {{.Name}} {
	return {{.Name}}(int64(f * (1 << {{.Lower}}Frac)))
}

// Raw returns the underlying integer of x.
func (x {{.Name}}) Raw() {{.Base}} {
	return {{.Base}}(x)
}

// Traits returns the traits of the {{.Name}} layout.
func ({{.Name}}) Traits() Traits {
	return {{.Lower}}Traits
}
{{if .Signed}}
// Int returns the integer part of x, rounded toward negative infinity.
{{- else}}
// Int returns the integer part of x.
{{- end}}
func (x {{.Name}}) Int() int {
	return int(x >> {{.Lower}}Frac)
}

// Float64 returns x as float64.
func (x {{.Name}}) Float64() float64 {
	return float64(x) / (1 << {{.Lower}}Frac)
}

// Float32 returns x as float32.
func (x {{.Name}}) Float32() float32 {
	return float32(x) / (1 << {{.Lower}}Frac)
}

// Add returns x+y. It wraps on overflow.
func (x {{.Name}}) Add(y {{.Name}}) {{.Name}} {
	return x + y
}

// Sub returns x-y. It wraps on overflow.
func (x {{.Name}}) Sub(y {{.Name}}) {{.Name}} {
	return x - y
}
{{if .Signed}}
// Neg returns -x.
func (x {{.Name}}) Neg() {{.Name}} {
	return -x
}

// Abs returns the absolute value of x. The absolute value of {{.Name}}Min is {{.Name}}Min.
func (x {{.Name}}) Abs() {{.Name}} {
	return mathutil.Abs(x)
}
{{end}}
// Mul returns x*y, rounded toward negative infinity.
func (x {{.Name}}) Mul(y {{.Name}}) {{.Name}} {
	return {{.Name}}({{.Wide}}(x) * {{.Wide}}(y) >> {{.Lower}}Frac)
}

// Div returns x/y, truncated toward zero. Division by zero returns 0.
func (x {{.Name}}) Div(y {{.Name}}) {{.Name}} {
	if y == 0 {
		return 0
	}
	return {{.Name}}({{.Wide}}(x) << {{.Lower}}Frac / {{.Wide}}(y))
}

// Shl returns x << n.
func (x {{.Name}}) Shl(n uint) {{.Name}} {
	return x << n
}

// Shr returns x >> n.
func (x {{.Name}}) Shr(n uint) {{.Name}} {
	return x >> n
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x {{.Name}}) Cmp(y {{.Name}}) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x {{.Name}}) Sign() int {
{{- if .Signed}}
	return mathutil.Int64Sign(int64(x))
{{- else}}
	if x == 0 {
		return 0
	}
	return 1
{{- end}}
}

// Floor returns the greatest integer value less than or equal to x.
func (x {{.Name}}) Floor() {{.Name}} {
	return x &^ {{.Lower}}Mask
}

// Ceil returns the least integer value greater than or equal to x. It wraps on overflow.
func (x {{.Name}}) Ceil() {{.Name}} {
	return (x + {{.Lower}}Mask) &^ {{.Lower}}Mask
}

// Fract returns the fractional part of x, x-x.Floor().
func (x {{.Name}}) Fract() {{.Name}} {
	return x & {{.Lower}}Mask
}

// Sqrt returns the square root of x, truncated.
{{- if .Signed}} It returns 0 for x <= 0.{{end}}
func (x {{.Name}}) Sqrt() {{.Name}} {
{{- if .Signed}}
	if x <= 0 {
		return 0
	}
{{- end}}
	return {{.Name}}(mathutil.{{.Isqrt}}({{.SqrtType}}(x) << {{.Lower}}Frac))
}

// Rsqrt returns 1/sqrt(x). It returns 0 for {{if .Signed}}x <= 0{{else}}x == 0{{end}}.
func (x {{.Name}}) Rsqrt() {{.Name}} {
	return {{.Name}}One.Div(x.Sqrt())
}

// Pow returns x**y. It returns 0 for {{if .Signed}}x <= 0{{else}}x == 0{{end}}, 1 for y == 0, and saturates at {{.Name}}Max.
func (x {{.Name}}) Pow(y {{.Name}}) {{.Name}} {
	return {{.Name}}(pow{{.Poly}}(int64(x), int64(y), {{.Lower}}Frac, {{.Lower}}IFrac, {{.Lower}}Max))
}
{{if .Signed}}
// Log2 returns the binary logarithm of x. It returns 0 for x <= 0.
func (x {{.Name}}) Log2() {{.Name}} {
	if x <= 0 {
		return 0
	}
	return {{.Name}}(log2{{.Poly}}(int64(x), {{.Lower}}Frac, {{.Lower}}IFrac) >> ({{.Lower}}IFrac - {{.Lower}}Frac))
}

// Exp2 returns 2**x, saturating at {{.Name}}Max.
func (x {{.Name}}) Exp2() {{.Name}} {
	return {{.Name}}(exp2{{.Poly}}(int64(x)<<({{.Lower}}IFrac-{{.Lower}}Frac), {{.Lower}}Frac, {{.Lower}}IFrac, {{.Lower}}Max))
}

// Sin returns the sine of the radian argument x.
func (x {{.Name}}) Sin() {{.Name}} {
	return {{.Name}}(sinRaw(int64(x), {{.Lower}}Frac, {{.Lower}}Trig))
}

// Cos returns the cosine of the radian argument x.
func (x {{.Name}}) Cos() {{.Name}} {
	return {{.Name}}(cosRaw(int64(x), {{.Lower}}Frac, {{.Lower}}Trig))
}

// SinCos returns Sin(x), Cos(x).
func (x {{.Name}}) SinCos() (sin, cos {{.Name}}) {
	s, c := sinCosRaw(int64(x), {{.Lower}}Frac, {{.Lower}}Trig)
	return {{.Name}}(s), {{.Name}}(c)
}

// Atan returns the arctangent, in radians, of x.
func (x {{.Name}}) Atan() {{.Name}} {
	return {{.Name}}(atan{{.Poly}}(int64(x), {{.Lower}}Frac, {{.Lower}}IFrac))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value. Atan2(0, 0) is 0.
func (y {{.Name}}) Atan2(x {{.Name}}) {{.Name}} {
	return {{.Name}}(atan2{{.Poly}}(int64(y), int64(x), {{.Lower}}Frac, {{.Lower}}IFrac))
}

// Asin returns the arcsine, in radians, of x. It returns 0 if |x| > 1.
func (x {{.Name}}) Asin() {{.Name}} {
	if x > {{.Name}}One || x < -{{.Name}}One {
		return 0
	}
	return x.Atan2(({{.Name}}One - x.Mul(x)).Sqrt())
}

// Acos returns the arccosine, in radians, of x. It returns 0 if |x| > 1.
func (x {{.Name}}) Acos() {{.Name}} {
	if x > {{.Name}}One || x < -{{.Name}}One {
		return 0
	}
	return ({{.Name}}One - x.Mul(x)).Sqrt().Atan2(x)
}

// MulS0x32 returns x*n.
func (x {{.Name}}) MulS0x32(n S0x32) {{.Name}} {
	return {{.Name}}(int64(x) * int64(n) >> 31)
}
{{end}}
// MulU0x32 returns x*n.
func (x {{.Name}}) MulU0x32(n U0x32) {{.Name}} {
	return {{.Name}}({{if .Signed}}int64{{else}}uint64{{end}}(x) * {{if .Signed}}int64{{else}}uint64{{end}}(n) >> 32)
}
{{range .Promote}}
// To{{.Name}} returns x as {{.Name}}. The conversion is exact.
func (x {{$.Name}}) To{{.Name}}() {{.Name}} {
	return {{.Name}}({{if $.Signed}}int64{{else}}uint64{{end}}(x) << ({{.Lower}}Frac - {{$.Lower}}Frac))
}
{{end}}
// String returns the exact decimal representation of x.
func (x {{.Name}}) String() string {
	return formatRaw(int64(x), {{.Lower}}Frac)
}

// MarshalText implements encoding.TextMarshaler.
func (x {{.Name}}) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *{{.Name}}) UnmarshalText(text []byte) error {
	raw, err := parseRaw(string(text), {{.Lower}}Traits)
	if err != nil {
		return err
	}
	*x = {{.Name}}(raw)
	return nil
}

// MarshalJSON implements json.Marshaler. The output depends on JSONMode.
func (x {{.Name}}) MarshalJSON() ([]byte, error) {
	return marshalJSON(int64(x), {{.Lower}}Frac), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (x *{{.Name}}) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalJSON(data, {{.Lower}}Traits, false)
	if err != nil {
		return err
	}
	*x = {{.Name}}(raw)
	return nil
}
`

// promotions lists the exact widenings, by layout without the sign prefix.
var promotions = map[string][]string{
	"4x12": {"16x16", "8x24"},
	"8x8":  {"16x16", "8x24", "24x8"},
	"12x4": {"16x16", "24x8"},
}

type promotion struct {
	Name, Lower string
}

type fixedType struct {
	Name, Lower, Base, Wide string
	Isqrt, SqrtType, Poly   string
	Signed                  bool
	SqrtBits                uint
	Pi                      int64
	T                       layout.Traits
	Promote                 []promotion
}

func fromDecl(name, base string) (f fixedType) {
	f.Name, f.Lower, f.Base = name, strings.ToLower(name), base

	var intBits, fracBits uint
	switch name[0] {
	case 'S':
		f.Signed = true
	case 'U':
	default:
		log.Fatalln("invalid name:", name)
	}
	if _, err := fmt.Sscanf(name[1:], "%dx%d", &intBits, &fracBits); err != nil {
		log.Fatalln("invalid name:", name, err)
	}
	t, err := layout.Resolve(intBits, fracBits, f.Signed)
	if err != nil {
		log.Fatalln(err)
	}
	f.T = t

	prefix := "uint"
	if f.Signed {
		prefix = "int"
	}
	if want := fmt.Sprintf("%s%d", prefix, t.RawBits); base != want {
		log.Fatalf("%s must be stored in %s, not %s", name, want, base)
	}
	f.Wide = fmt.Sprintf("%s%d", prefix, t.WideBits)
	f.SqrtBits, f.Isqrt, f.SqrtType = 32, "Isqrt32", "uint32"
	if t.Sqrt64 {
		f.SqrtBits, f.Isqrt, f.SqrtType = 64, "Isqrt64", "uint64"
	}
	f.Poly = fmt.Sprintf("Q%d", t.PolyBits)
	f.Pi = int64(math.Round(math.Pi * float64(int64(1)<<fracBits)))
	for _, p := range promotions[name[1:]] {
		to := name[:1] + p
		f.Promote = append(f.Promote, promotion{Name: to, Lower: strings.ToLower(to)})
	}
	return f
}

func usage() {
	fmt.Printf("Usage: %v <typename> <basetype>\n", os.Args[0])
}

func main() {
	log.Default().SetFlags(log.Lshortfile)
	if len(os.Args) != 3 {
		usage()
		os.Exit(1)
	}

	tmpl, err := template.New("fixedTemplate").Parse(fixedTemplate)
	if err != nil {
		log.Fatalln(err)
	}
	source := bytes.NewBuffer(nil)
	if err = tmpl.Execute(source, fromDecl(os.Args[1], os.Args[2])); err != nil {
		log.Fatalln(err)
	}
	formattedSource, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	err = os.WriteFile(strings.ToLower(os.Args[1])+"_fixed.go", formattedSource, 0644)
	if err != nil {
		log.Fatalln(err)
	}
}
