// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layout describes the byte geometry of image buffers.
//
// A layout has no color space and no pixel values, only the mapping from an
// image description to the number of bytes it needs. Layouts form a partial
// order by how much they describe: [Bytes] knows only a length, [Matrix]
// knows an element and two dimensions, [TMatrix] additionally knows the Go
// pixel type. Moving down that order is a decay and never fails; moving up is
// a mend and may fail.
//
//	m, _ := layout.NewMatrix(layout.ElementOf(pixel.RGBA), 640, 480)
//	t, err := layout.WithPixel(pixel.RGBA).TryMend(m) // TMatrix[[4]uint8]
//	b := layout.BytesOf(t)                             // 1228800 bytes
package layout

import "errors"

// ErrMismatchedPixel is returned when mending fails because the pixel type
// does not match the element of the untyped layout.
var ErrMismatchedPixel = errors.New("layout: mismatched pixel")

// Layout is implemented by every layout descriptor.
type Layout interface {
	// ByteLen returns the number of bytes a buffer with this layout needs.
	ByteLen() int
}

// Decayer is a layout that can be converted into the less descriptive T.
//
// The relation is not reflexive and never round-trips: the result forgets
// information. Every layout decays to [Bytes] through [BytesOf].
type Decayer[T Layout] interface {
	Layout
	Decay() T
}

// TryMender attaches information to a less descriptive layout.
type TryMender[From, Into Layout] interface {
	TryMend(from From) (Into, error)
}

// Mender is the infallible form of [TryMender]. Implementations panic when
// the caller broke the documented precondition.
type Mender[From, Into Layout] interface {
	Mend(from From) Into
}

// Taker is a layout that can be emptied in place.
//
// Take returns the previous value and leaves a layout with ByteLen() == 0
// behind. Unlike resetting to the zero value, the remaining layout keeps its
// element or pixel type, so a buffer can be moved out of a typed container
// without losing what it was.
type Taker[L Layout] interface {
	Layout
	Take() L
}

// Coord is an image coordinate.
type Coord struct {
	X, Y uint32
}

// XY returns the coordinate as (x, y).
func (c Coord) XY() (uint32, uint32) {
	return c.X, c.Y
}

// YX returns the coordinate as (y, x).
func (c Coord) YX() (uint32, uint32) {
	return c.Y, c.X
}

// Bytes is the least descriptive layout: a plain byte count.
type Bytes int

// BytesOf forgets everything about l except its byte length.
func BytesOf(l Layout) Bytes {
	return Bytes(l.ByteLen())
}

// ByteLen implements Layout.
func (b Bytes) ByteLen() int {
	return int(b)
}

// Take implements Taker.
func (b *Bytes) Take() Bytes {
	old := *b
	*b = 0
	return old
}
