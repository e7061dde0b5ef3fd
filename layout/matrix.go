// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/gogpu/canvas/internal/checked"
	"github.com/gogpu/canvas/pixel"
)

// Matrix is a packed grid of firstDim·secondDim homogeneous elements.
//
// Matrix does not prescribe row or column order; the elements could be row
// major, column major or follow a space filling curve.
type Matrix struct {
	element   Element
	firstDim  int
	secondDim int
}

// EmptyMatrix returns a matrix of element with no entries.
func EmptyMatrix(element Element) Matrix {
	return Matrix{element: element}
}

// NewMatrix returns a matrix of firstDim·secondDim elements. It reports false
// if a dimension is negative or the entry count or byte length overflows.
func NewMatrix(element Element, firstDim, secondDim int) (Matrix, bool) {
	count, ok := checked.MulInt(firstDim, secondDim)
	if !ok {
		return Matrix{}, false
	}
	if _, ok := checked.MulInt(count, element.size); !ok {
		return Matrix{}, false
	}
	return Matrix{element: element, firstDim: firstDim, secondDim: secondDim}, true
}

// Element returns the element type of m.
func (m Matrix) Element() Element {
	return m.element
}

// Width returns the first dimension.
func (m Matrix) Width() int {
	return m.firstDim
}

// Height returns the second dimension.
func (m Matrix) Height() int {
	return m.secondDim
}

// Len returns the number of elements.
func (m Matrix) Len() int {
	return m.firstDim * m.secondDim
}

// ByteLen implements Layout.
func (m Matrix) ByteLen() int {
	// Checked by NewMatrix.
	return m.element.size * m.Len()
}

// Take implements Taker.
func (m *Matrix) Take() Matrix {
	old := *m
	*m = EmptyMatrix(m.element)
	return old
}

// String returns a debug representation.
func (m Matrix) String() string {
	return fmt.Sprintf("Matrix{%v, %dx%d}", m.element, m.firstDim, m.secondDim)
}

// TMatrix is the statically typed counterpart of [Matrix].
type TMatrix[P any] struct {
	pixel     pixel.Pixel[P]
	firstDim  int
	secondDim int
}

// EmptyTMatrix returns a typed matrix with no entries.
func EmptyTMatrix[P any](p pixel.Pixel[P]) TMatrix[P] {
	return TMatrix[P]{pixel: p}
}

// NewTMatrix returns a typed matrix of firstDim·secondDim pixels, with the
// same failure conditions as NewMatrix. It reports false for a zero witness.
func NewTMatrix[P any](p pixel.Pixel[P], firstDim, secondDim int) (TMatrix[P], bool) {
	if !p.Valid() {
		return TMatrix[P]{}, false
	}
	m, ok := NewMatrix(ElementOf(p), firstDim, secondDim)
	if !ok {
		return TMatrix[P]{}, false
	}
	return TMatrix[P]{pixel: p, firstDim: m.firstDim, secondDim: m.secondDim}, true
}

// TMatrixWith types m with p. It reports false if the size of P differs
// from the size of m's element, or if p is a zero witness.
func TMatrixWith[P any](p pixel.Pixel[P], m Matrix) (TMatrix[P], bool) {
	if !p.Valid() || p.Size() != m.element.size {
		return TMatrix[P]{}, false
	}
	return TMatrix[P]{pixel: p, firstDim: m.firstDim, secondDim: m.secondDim}, true
}

// Matrix removes the static pixel type.
func (t TMatrix[P]) Matrix() Matrix {
	return Matrix{element: ElementOf(t.pixel), firstDim: t.firstDim, secondDim: t.secondDim}
}

// Decay implements Decayer[Matrix].
func (t TMatrix[P]) Decay() Matrix {
	return t.Matrix()
}

// Sample returns the pixel witness of t.
func (t TMatrix[P]) Sample() pixel.Pixel[P] {
	return t.pixel
}

// Width returns the first dimension.
func (t TMatrix[P]) Width() int {
	return t.firstDim
}

// Height returns the second dimension.
func (t TMatrix[P]) Height() int {
	return t.secondDim
}

// Len returns the number of pixels.
func (t TMatrix[P]) Len() int {
	return t.firstDim * t.secondDim
}

// ByteLen implements Layout.
func (t TMatrix[P]) ByteLen() int {
	return t.Matrix().ByteLen()
}

// Take implements Taker.
func (t *TMatrix[P]) Take() TMatrix[P] {
	old := *t
	*t = EmptyTMatrix(t.pixel)
	return old
}

// SampleSlice is a layout made of a single type of independently
// addressable samples.
type SampleSlice[P any] interface {
	Layout
	Sample() pixel.Pixel[P]
	// Len returns the number of samples; Len()*Sample().Size() == ByteLen().
	Len() int
}

// Typed mends untyped layouts with the pixel type P.
type Typed[P any] struct {
	pixel pixel.Pixel[P]
}

// WithPixel returns the mender for p.
func WithPixel[P any](p pixel.Pixel[P]) Typed[P] {
	return Typed[P]{pixel: p}
}

// TryMend types m, failing with ErrMismatchedPixel if the element size of m
// is not the size of P or the witness of t is the zero value.
func (t Typed[P]) TryMend(m Matrix) (TMatrix[P], error) {
	tm, ok := TMatrixWith(t.pixel, m)
	if !ok {
		return TMatrix[P]{}, ErrMismatchedPixel
	}
	return tm, nil
}

// Mend is TryMend for callers that already know the sizes agree.
// It panics with ErrMismatchedPixel otherwise.
func (t Typed[P]) Mend(m Matrix) TMatrix[P] {
	tm, err := t.TryMend(m)
	if err != nil {
		panic(err)
	}
	return tm
}

var (
	_ Taker[Matrix]                     = (*Matrix)(nil)
	_ Taker[TMatrix[uint8]]             = (*TMatrix[uint8])(nil)
	_ Decayer[Matrix]                   = TMatrix[uint8]{}
	_ SampleSlice[uint8]                = TMatrix[uint8]{}
	_ TryMender[Matrix, TMatrix[uint8]] = Typed[uint8]{}
	_ Mender[Matrix, TMatrix[uint8]]    = Typed[uint8]{}
	_ Taker[Bytes]                      = (*Bytes)(nil)
)
