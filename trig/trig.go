// Package trig implements table-based integer sine and cosine.
//
// Angles use a 24-bit domain: a full turn is 1<<24 and higher bits are ignored.
// Results are scaled so that 1.0 is close to 1<<31, but the largest magnitude
// returned is Max (32767<<16), not 1<<31. Rescale outputs with Max.
package trig

//go:generate go run mktables.go

const (
	// Max is the largest magnitude returned by Sin32 and Cos32.
	Max = 2147418112

	// AngleBits is the width of the angle domain of Sin32 and Cos32.
	AngleBits = 24
	// FullTurn is 2*Pi in the angle domain.
	FullTurn = 1 << AngleBits
	// HalfTurn is Pi in the angle domain.
	HalfTurn = FullTurn / 2
	// QuarterTurn is Pi/2 in the angle domain.
	QuarterTurn = FullTurn / 4

	// Max16 is the largest magnitude returned by Sin16 and Cos16.
	Max16 = 32767
)

// Sin32 returns sin(angle) in [-Max, Max], interpolating linearly
// between 256 table entries.
func Sin32(angle uint32) int32 {
	i := int(uint8(angle >> 16))
	sub := int32(angle & 0xFFFF)
	return int32(sinTable[i])*(1<<16-sub) + int32(sinTable[i+1])*sub
}

// Cos32 returns cos(angle) in [-Max, Max].
func Cos32(angle uint32) int32 {
	return Sin32(angle + QuarterTurn)
}

// SinCos32 returns both Sin32(angle) and Cos32(angle).
func SinCos32(angle uint32) (sin, cos int32) {
	return Sin32(angle), Sin32(angle + QuarterTurn)
}

// Sin16 returns sin(angle) in [-Max16, Max16] for a 16-bit angle,
// where a full turn is 1<<16.
func Sin16(angle uint16) int16 {
	return int16(Sin32(uint32(angle)<<8) >> 16)
}

// Cos16 is the 16-bit counterpart of Cos32.
func Cos16(angle uint16) int16 {
	return Sin16(angle + 1<<14)
}
