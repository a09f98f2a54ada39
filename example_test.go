// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"encoding/json"
	"fmt"
)

func ExampleS16x16() {
	x := S16x16F(1.5)
	y := S16x16I(3)
	fmt.Printf("%s * %s = %s, %s / %s = %s\n", x, y, x.Mul(y), x, y, x.Div(y))
	fmt.Printf("sqrt(2) = %s\n", S16x16I(2).Sqrt())
	fmt.Printf("1/0 = %s\n", S16x16One.Div(0))

	angle := S16x16Pi.Div(S16x16I(4))
	sin, cos := angle.SinCos()
	fmt.Printf("sin(pi/4) = %.4f, cos(pi/4) = %.4f, atan2(1, 1) = %.4f\n", sin.Float64(), cos.Float64(), S16x16One.Atan2(S16x16One).Float64())
	fmt.Printf("3**2.5 = %.3f, log2(10) = %.3f\n", y.Pow(S16x16F(2.5)).Float64(), S16x16I(10).Log2().Float64())

	// Output:
	// 1.5 * 3 = 4.5, 1.5 / 3 = 0.5
	// sqrt(2) = 1.4141998291015625
	// 1/0 = 0
	// sin(pi/4) = 0.7071, cos(pi/4) = 0.7071, atan2(1, 1) = 0.7854
	// 3**2.5 = 15.588, log2(10) = 3.322
}

func ExampleLerp() {
	from, to := U8x8I(200), U8x8I(100)
	fmt.Println(Lerp(from, to, U8x8F(0.25)))
	fmt.Println(Smoothstep(S16x16(0), S16x16One, S16x16F(0.25)))

	// Output:
	// 175
	// 0.15625
}

func ExampleParse() {
	v, err := Parse[S8x24]("-1.25")
	if err != nil {
		panic(err)
	}
	fmt.Println(v, v.Raw())

	_, err = Parse[S8x8]("128")
	fmt.Println(err)

	// Output:
	// -1.25 -20971520
	// S8x8: "128": value out of range
}

func ExampleS8x8_ToS16x16() {
	x := S8x8F(-2.5)
	fmt.Println(x.ToS16x16(), x.Raw(), x.ToS16x16().Raw())

	// Output:
	// -2.5 -640 -163840
}

func ExampleJSONMode() {
	defer func(mode int) {
		JSONMode = mode
	}(JSONMode)

	v := struct {
		Gain U8x8 `json:"gain"`
	}{U8x8F(1.5)}

	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json for value: %s\n", string(data))

	JSONMode = JSONModeRaw
	data, err = json.Marshal(v)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json for value and JSONModeRaw: %s\n", string(data))

	// Output:
	// json for value: {"gain":"1.5"}
	// json for value and JSONModeRaw: {"gain":{"raw":384,"frac":8}}
}
