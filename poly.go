// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

// Polynomial coefficients in Q30. Each set is a minimax fit constrained to be
// exact at both ends of its interval, and is rescaled to the evaluation
// precision with q30.
const (
	// log2(1+t) ~ t*(c1 + t*(c2 + t*(c3 + t*c4))), t in [0, 1).
	log2C1 = 1544819362 // 1.4387251453
	log2C2 = -727761288 // -0.6777805168
	log2C3 = 344867850  // 0.3211832142
	log2C4 = -88184100  // -0.0821278428

	// 2^t-1 ~ t*(c1 + t*(c2 + t*(c3 + t*c4))), t in [0, 1).
	exp2C1 = 744107140 // 0.6930037770
	exp2C2 = 259363015 // 0.2415506310
	exp2C3 = 55558570  // 0.0517429508
	exp2C4 = 14713099  // 0.0137026412

	// atan(x) ~ x*(c1 + u*(c3 + u*(c5 + u*(c7 + u*c9)))), u = x*x, x in [0, 1].
	atanC1 = 1073587320 // 0.9998561066
	atanC3 = -354477541 // -0.3301329364
	atanC5 = 192645876  // 0.1794154533
	atanC7 = -90195835  // -0.0840014171
	atanC9 = 21755037   // 0.0202609571

	piQ30     = 3373259426
	halfPiQ30 = 1686629713
)

// q30 rounds a Q30 constant to q fractional bits, q <= 30.
func q30(c int64, q uint) int64 {
	if q == 30 {
		return c
	}
	return (c + 1<<(29-q)) >> (30 - q)
}

// mulQ32 returns a*b>>q using 32-bit products only: b is split in two halves
// so that neither partial product exceeds 32 bits.
// |a| must be below 1<<(q+1), b must be in [0, 1<<q].
func mulQ32(a, b int32, q uint) int32 {
	h := q / 2
	return (a*(b>>h))>>(q-h) + (a*(b&(1<<h-1)))>>q
}

func hornerQ32(t int32, q uint, c1, c2, c3, c4 int64) int32 {
	acc := int32(q30(c4, q))
	acc = int32(q30(c3, q)) + mulQ32(acc, t, q)
	acc = int32(q30(c2, q)) + mulQ32(acc, t, q)
	acc = int32(q30(c1, q)) + mulQ32(acc, t, q)
	return mulQ32(acc, t, q)
}

func hornerQ64(t int64, q uint, c1, c2, c3, c4 int64) int64 {
	acc := q30(c4, q)
	acc = q30(c3, q) + acc*t>>q
	acc = q30(c2, q) + acc*t>>q
	acc = q30(c1, q) + acc*t>>q
	return acc * t >> q
}

// atanUnitQ32 returns atan(x) for x in [0, 1<<q], at q fractional bits.
func atanUnitQ32(x int32, q uint) int32 {
	u := mulQ32(x, x, q)
	acc := int32(q30(atanC9, q))
	acc = int32(q30(atanC7, q)) + mulQ32(acc, u, q)
	acc = int32(q30(atanC5, q)) + mulQ32(acc, u, q)
	acc = int32(q30(atanC3, q)) + mulQ32(acc, u, q)
	acc = int32(q30(atanC1, q)) + mulQ32(acc, u, q)
	return mulQ32(acc, x, q)
}

func atanUnitQ64(x int64, q uint) int64 {
	u := x * x >> q
	acc := q30(atanC9, q)
	acc = q30(atanC7, q) + acc*u>>q
	acc = q30(atanC5, q) + acc*u>>q
	acc = q30(atanC3, q) + acc*u>>q
	acc = q30(atanC1, q) + acc*u>>q
	return acc * x >> q
}
