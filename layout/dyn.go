// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import "fmt"

// Kind tags the variant held by a DynLayout.
type Kind uint8

const (
	// KindMatrix is a packed Matrix.
	KindMatrix Kind = iota

	// KindYuv420p is a planar 4:2:0 image.
	KindYuv420p
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMatrix:
		return "Matrix"
	case KindYuv420p:
		return "Yuv420p"
	default:
		return "Unknown"
	}
}

// DynLayout is a layout whose kind is chosen at run time.
//
// The set of kinds is closed, so a switch over Kind is exhaustive. The zero
// value is an empty Matrix with a zero element.
type DynLayout struct {
	kind    Kind
	matrix  Matrix
	yuv420p Yuv420p
}

// DynMatrix wraps m.
func DynMatrix(m Matrix) DynLayout {
	return DynLayout{kind: KindMatrix, matrix: m}
}

// DynYuv420p wraps y.
func DynYuv420p(y Yuv420p) DynLayout {
	return DynLayout{kind: KindYuv420p, yuv420p: y}
}

// Kind returns the active variant.
func (d DynLayout) Kind() Kind {
	return d.kind
}

// Matrix returns the matrix variant.
func (d DynLayout) Matrix() (Matrix, bool) {
	return d.matrix, d.kind == KindMatrix
}

// Yuv420p returns the planar 4:2:0 variant.
func (d DynLayout) Yuv420p() (Yuv420p, bool) {
	return d.yuv420p, d.kind == KindYuv420p
}

// ByteLen implements Layout.
func (d DynLayout) ByteLen() int {
	switch d.kind {
	case KindMatrix:
		return d.matrix.ByteLen()
	case KindYuv420p:
		return d.yuv420p.ByteLen()
	default:
		panic(fmt.Sprintf("layout: invalid DynLayout kind %d", d.kind))
	}
}

// Take implements Taker. The variant and its element survive.
func (d *DynLayout) Take() DynLayout {
	old := *d
	switch d.kind {
	case KindMatrix:
		d.matrix.Take()
	case KindYuv420p:
		d.yuv420p.Take()
	}
	return old
}

// String returns a debug representation.
func (d DynLayout) String() string {
	switch d.kind {
	case KindMatrix:
		return fmt.Sprintf("DynLayout(%v)", d.matrix)
	case KindYuv420p:
		return fmt.Sprintf("DynLayout(%v)", d.yuv420p)
	default:
		return "DynLayout(invalid)"
	}
}

var (
	_ Taker[DynLayout] = (*DynLayout)(nil)
	_ Taker[Yuv420p]   = (*Yuv420p)(nil)
)
