// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package checked provides overflow-checked integer arithmetic shared by the
// layout and drm packages.
//
// Every function reports ok=false instead of wrapping around. Callers route
// that into their own absence or error channel.
package checked

import (
	"math"
	"math/bits"
)

// MulInt returns a*b for non-negative a and b.
func MulInt(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

// AddInt returns a+b for non-negative a and b.
func AddInt(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 || sum > math.MaxInt {
		return 0, false
	}
	return int(sum), true
}

// MulU32 returns a*b if it fits in 32 bits.
func MulU32(a, b uint32) (uint32, bool) {
	hi, lo := bits.Mul32(a, b)
	return lo, hi == 0
}

// AddU32 returns a+b if it fits in 32 bits.
func AddU32(a, b uint32) (uint32, bool) {
	sum, carry := bits.Add32(a, b, 0)
	return sum, carry == 0
}

// U32ToInt converts v to the platform int, failing on 32-bit platforms when v
// exceeds math.MaxInt32.
func U32ToInt(v uint32) (int, bool) {
	if uint64(v) > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

// RoundUpDiv divides n by d, rounding up. d must be nonzero.
func RoundUpDiv(n, d uint32) uint32 {
	q := n / d
	if n%d != 0 {
		q++
	}
	return q
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}
