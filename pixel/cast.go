// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixel

import (
	"math"
	"unsafe"
)

// CastSlice reinterprets buf as a slice of P.
//
// If the size of P does not divide buf.Len() the view is shortened to the
// largest whole number of pixels; the trailing bytes stay in buf but are not
// part of the view. For zero-sized P the view has length math.MaxInt and is
// backed by no memory.
func (p Pixel[P]) CastSlice(buf Buf) []P {
	p.mustBeIssued()
	size := p.Size()
	if size == 0 {
		var zero P
		return unsafe.Slice(&zero, math.MaxInt)
	}
	n := len(buf.b) / size
	if n == 0 {
		return nil
	}
	// buf starts at MaxAlign and Align() <= MaxAlign divides it.
	return unsafe.Slice((*P)(unsafe.Pointer(unsafe.SliceData(buf.b))), n)
}

// CastBytes reinterprets a slice of P as its exact Size()*len(s) bytes.
func (p Pixel[P]) CastBytes(s []P) []byte {
	p.mustBeIssued()
	size := p.Size()
	if len(s) == 0 || size == 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*size)
}

// CastBuf reinterprets a slice of P as a Buf. It reports false if s is not
// anchored at MaxAlign, which can only happen for slices not obtained from
// CastSlice.
func (p Pixel[P]) CastBuf(s []P) (Buf, bool) {
	return FromBytes(p.CastBytes(s))
}

// CastMaxAligned reinterprets s as a slice of P, shortened like CastSlice.
//
// No Go type is aligned above MaxAligned, so the view never depends on where
// s was allocated.
func (p Pixel[P]) CastMaxAligned(s []MaxAligned) []P {
	p.mustBeIssued()
	size := p.Size()
	if size == 0 {
		var zero P
		return unsafe.Slice(&zero, math.MaxInt)
	}
	n := len(s) * int(unsafe.Sizeof(MaxAligned{})) / size
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*P)(unsafe.Pointer(unsafe.SliceData(s))), n)
}
