// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"math"

	"github.com/gogpu/canvas/internal/checked"
	"github.com/gogpu/canvas/pixel"
)

// Element is the untyped size and alignment of one unit of a layout.
//
// The alignment is a power of two no larger than pixel.MaxAlign and divides
// the size. Elements form a meet-semilattice: [Element.Infimum] of any two
// elements is again a valid element.
type Element struct {
	size  int
	align int
}

// MaxSize is an element with maximal size and no alignment requirement.
// Its infimum with another element only lowers that element's alignment.
var MaxSize = Element{size: math.MaxInt, align: 1}

// ElementOf returns the element of a certified pixel type.
func ElementOf[P any](p pixel.Pixel[P]) Element {
	return Element{size: p.Size(), align: p.Align()}
}

// ElementFor returns the element of a builtin pixel type.
func ElementFor[P pixel.Builtin]() Element {
	return ElementOf(pixel.Of[P]())
}

// NewElement describes a fictional type with the given size and alignment.
//
// It is up to the caller to use a type with that layout later; no check for
// padding is possible. It reports false if align is not a power of two, is
// larger than pixel.MaxAlign, or does not divide size.
func NewElement(size, align int) (Element, bool) {
	if size < 0 || align <= 0 || align > pixel.MaxAlign {
		return Element{}, false
	}
	if !checked.IsPowerOfTwo(uint64(align)) || size%align != 0 {
		return Element{}, false
	}
	return Element{size: size, align: align}, true
}

// Size returns the size of the element in bytes.
func (e Element) Size() int {
	return e.size
}

// Align returns the required alignment of the element in bytes.
func (e Element) Align() int {
	return e.align
}

// Packed lowers the alignment to at most align, as a packed representation
// of the element's type would. It panics if align is not a power of two.
func (e Element) Packed(align int) Element {
	if align <= 0 || !checked.IsPowerOfTwo(uint64(align)) {
		panic(fmt.Sprintf("layout: packed alignment %d is not a power of two", align))
	}
	return Element{size: e.size, align: min(e.align, align)}
}

// Infimum returns the element with the smaller size and the smaller
// alignment of e and other.
func (e Element) Infimum(other Element) Element {
	// The smaller size is divisible by its own alignment and therefore also
	// by the smaller of both alignments.
	return Element{
		size:  min(e.size, other.size),
		align: min(e.align, other.align),
	}
}

// PartialCompare compares two elements by size and alignment.
//
// It returns -1, 0 or +1 with ok=true when both coordinates agree on the
// order, and ok=false when one element is larger in one coordinate and
// smaller in the other.
func (e Element) PartialCompare(other Element) (cmp int, ok bool) {
	switch {
	case e == other:
		return 0, true
	case e.size <= other.size && e.align <= other.align:
		return -1, true
	case e.size >= other.size && e.align >= other.align:
		return 1, true
	default:
		return 0, false
	}
}

// Less reports whether e is strictly below other in the partial order.
func (e Element) Less(other Element) bool {
	c, ok := e.PartialCompare(other)
	return ok && c < 0
}

// LessEq reports whether e is below or equal to other in the partial order.
func (e Element) LessEq(other Element) bool {
	c, ok := e.PartialCompare(other)
	return ok && c <= 0
}

// String returns a debug representation.
func (e Element) String() string {
	return fmt.Sprintf("Element{size: %d, align: %d}", e.size, e.align)
}
