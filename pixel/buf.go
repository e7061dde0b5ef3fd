// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixel

import "unsafe"

// MaxAligned is a 16-byte carrier without padding.
//
// Go caps the alignment of any type at the word size, so MaxAligned itself is
// only 8-byte aligned; the 16-byte anchor is enforced on [Buf] addresses.
type MaxAligned struct {
	_     [0]uint64
	Bytes [16]byte
}

// Buf is a byte slice whose first byte is aligned to MaxAlign.
//
// The zero Buf is empty and valid.
type Buf struct {
	b []byte
}

// FromBytes wraps b. It reports false if b does not start at an address
// divisible by MaxAlign.
func FromBytes(b []byte) (Buf, bool) {
	if !aligned(unsafe.Pointer(unsafe.SliceData(b))) {
		return Buf{}, false
	}
	return Buf{b: b}, true
}

// FromMaxAligned wraps the bytes of s. It reports false if s is not anchored
// at MaxAlign.
func FromMaxAligned(s []MaxAligned) (Buf, bool) {
	if len(s) == 0 {
		return Buf{}, true
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(MaxAligned{})))
	return FromBytes(b)
}

// NewBuf allocates a zeroed, aligned buffer of n bytes.
// It panics if n is negative.
func NewBuf(n int) Buf {
	if n < 0 {
		panic("pixel: negative buffer length")
	}
	if n == 0 {
		return Buf{}
	}
	raw := make([]byte, n+MaxAlign-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	off := int((MaxAlign - addr%MaxAlign) % MaxAlign)
	return Buf{b: raw[off : off+n : off+n]}
}

// Bytes returns the wrapped bytes.
func (b Buf) Bytes() []byte {
	return b.b
}

// Len returns the number of bytes in b.
func (b Buf) Len() int {
	return len(b.b)
}

// Truncate returns the first n bytes of b. Shrinking keeps the anchor.
// It panics if n is out of range.
func (b Buf) Truncate(n int) Buf {
	return Buf{b: b.b[:n]}
}

// MaxAligned views the whole 16-byte chunks of b as carriers.
func (b Buf) MaxAligned() []MaxAligned {
	n := len(b.b) / int(unsafe.Sizeof(MaxAligned{}))
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*MaxAligned)(unsafe.Pointer(unsafe.SliceData(b.b))), n)
}

func aligned(p unsafe.Pointer) bool {
	return uintptr(p)%MaxAlign == 0
}
