package mathutil

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// BinaryDigits returns the number of bits needed to represent 'value'.
func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// Isqrt32 returns floor(sqrt(x)).
// The root is built bit by bit, two bits of x per step, without division.
func Isqrt32(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	var res uint32
	// start at the highest even bit position not above the leading one.
	bit := uint32(1) << ((bits.Len32(x) - 1) &^ 1)
	for bit != 0 {
		if x >= res+bit {
			x -= res + bit
			res = res>>1 + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}

// Isqrt64 returns floor(sqrt(x)). See Isqrt32.
func Isqrt64(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	var res uint64
	bit := uint64(1) << ((bits.Len64(x) - 1) &^ 1)
	for bit != 0 {
		if x >= res+bit {
			x -= res + bit
			res = res>>1 + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}

func AbsInt64(val int64) int64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return (val + mask) ^ mask
}

// Abs returns |val|. The minimum value of T is returned unchanged.
func Abs[T constraints.Signed](val T) T {
	if val < 0 {
		return -val
	}
	return val
}

func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
