// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pixel certifies types as plain old data and reinterprets aligned
// byte buffers as typed pixel slices.
//
// This package is the only place in the module that performs pointer
// arithmetic. A [Pixel] witness is issued once for a type P, either by the
// checked [ForType] constructor, by [Of] for the builtin table, or by
// [NewUnchecked] for externally defined types whose properties the caller
// has audited. Every cast is then total: it takes a [Buf], whose first byte is
// aligned to [MaxAlign], and returns a view that aliases the caller's memory.
//
// # Ownership
//
// Casts never allocate and never copy. The returned slices share memory with
// their input; exclusivity of writers is the caller's responsibility.
//
//	buf := pixel.NewBuf(64)
//	px := pixel.RGBA.CastSlice(buf) // 16 pixels
//	px[0] = [4]uint8{0xff, 0, 0, 0xff}
//	raw := pixel.RGBA.CastBytes(px) // the same 64 bytes
package pixel

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// MaxAlign is the largest alignment a pixel type may require, and the
// alignment of the first byte of every [Buf].
const MaxAlign = 16

// Pixel is a witness that P may be freely reinterpreted as bytes and back.
//
// A witness certifies that P has no padding, no validity invariants (every
// bit pattern is a valid value), no safety invariants (in Go terms: no
// references the garbage collector must see), and an alignment of at most
// MaxAlign.
//
// The zero value is not a witness; every operation on it panics. All issued
// witnesses of one type are indistinguishable and compare equal.
type Pixel[P any] struct {
	issued bool
}

// ForType tries to issue a witness for P.
//
// The check rejects types aligned above MaxAlign, types containing pointers,
// slices, strings, maps, channels, functions, interfaces or unsafe pointers,
// bool (only two of its 256 bit patterns are valid), and structs whose field
// sizes do not add up to the struct size.
func ForType[P any]() (Pixel[P], bool) {
	var zero P
	if unsafe.Alignof(zero) > MaxAlign {
		return Pixel[P]{}, false
	}
	if !plain(reflect.TypeFor[P]()) {
		return Pixel[P]{}, false
	}
	return Pixel[P]{issued: true}, true
}

// plainTypes caches isPlain results by reflect.Type.
var plainTypes sync.Map

func plain(t reflect.Type) bool {
	if v, ok := plainTypes.Load(t); ok {
		return v.(bool)
	}
	ok := isPlain(t)
	plainTypes.Store(t, ok)
	return ok
}

// NewUnchecked issues a witness for P without any checks.
//
// The caller must guarantee that P
//   - contains no padding and accepts every bit pattern,
//   - holds no pointers or other references, so copying its bytes is a copy of the value,
//   - has an alignment of at most MaxAlign.
//
// Violating any of these makes later casts unsound.
func NewUnchecked[P any]() Pixel[P] {
	return Pixel[P]{issued: true}
}

// Valid reports whether p was issued by one of the constructors.
func (p Pixel[P]) Valid() bool {
	return p.issued
}

// Size returns the size of P in bytes.
func (p Pixel[P]) Size() int {
	var zero P
	return int(unsafe.Sizeof(zero))
}

// Align returns the alignment of P in bytes.
func (p Pixel[P]) Align() int {
	var zero P
	return int(unsafe.Alignof(zero))
}

// Compare orders witnesses of the same type. It always returns 0.
func (p Pixel[P]) Compare(Pixel[P]) int {
	return 0
}

// CopyVal copies a pixel byte by byte.
func (p Pixel[P]) CopyVal(v *P) P {
	p.mustBeIssued()
	return *v
}

// String returns a debug representation with the size and alignment of P.
func (p Pixel[P]) String() string {
	return fmt.Sprintf("Pixel{size: %d, align: %d}", p.Size(), p.Align())
}

func (p Pixel[P]) mustBeIssued() {
	if !p.issued {
		panic(fmt.Sprintf("pixel: use of zero Pixel[%v] witness", reflect.TypeFor[P]()))
	}
}

// Array0 derives a witness for the empty array of P.
func Array0[P any](p Pixel[P]) Pixel[[0]P] {
	p.mustBeIssued()
	// No invariants and the alignment of P.
	return NewUnchecked[[0]P]()
}

// Array1 derives a witness for [1]P.
func Array1[P any](p Pixel[P]) Pixel[[1]P] {
	p.mustBeIssued()
	return NewUnchecked[[1]P]()
}

// Array2 derives a witness for [2]P.
func Array2[P any](p Pixel[P]) Pixel[[2]P] {
	p.mustBeIssued()
	return NewUnchecked[[2]P]()
}

// Array3 derives a witness for [3]P.
func Array3[P any](p Pixel[P]) Pixel[[3]P] {
	p.mustBeIssued()
	return NewUnchecked[[3]P]()
}

// Array4 derives a witness for [4]P.
func Array4[P any](p Pixel[P]) Pixel[[4]P] {
	p.mustBeIssued()
	return NewUnchecked[[4]P]()
}

// isPlain reports whether values of t are plain bytes.
func isPlain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || isPlain(t.Elem())
	case reflect.Struct:
		var sum uintptr
		for i := range t.NumField() {
			f := t.Field(i)
			if !isPlain(f.Type) {
				return false
			}
			sum += f.Type.Size()
		}
		// Any difference is padding, including the byte Go appends after a
		// trailing zero-sized field.
		return sum == t.Size()
	default:
		return false
	}
}
