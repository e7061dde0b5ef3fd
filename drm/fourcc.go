// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drm

import (
	"fmt"

	"github.com/gogpu/canvas/layout"
)

// FourCC is a four character format code, packed little endian.
type FourCC uint32

// MakeFourCC packs four characters, the first one in the low byte.
func MakeFourCC(a, b, c, d byte) FourCC {
	return FourCC(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

// Format codes from the kernel header uapi/drm/drm_fourcc.h.
const (
	// Invalid denotes a missing format.
	Invalid FourCC = 0

	// C8 is a single 8 bpp grey channel.
	C8 = FourCC('C' | '8'<<8 | ' '<<16 | ' '<<24)

	// RGB332 is 8 bpp rgb with 3 bits red, 3 bits green, 2 bits blue.
	RGB332 = FourCC('R' | 'G'<<8 | 'B'<<16 | '8'<<24)
	// BGR332 is 8 bpp rgb with 2 bits blue, 3 bits green, 3 bits red.
	BGR332 = FourCC('B' | 'G'<<8 | 'R'<<16 | '8'<<24)

	// XRGB4444 and its permutations are 16 bpp with 4 bits per channel.
	XRGB4444 = FourCC('X' | 'R'<<8 | '1'<<16 | '2'<<24)
	XBGR4444 = FourCC('X' | 'B'<<8 | '1'<<16 | '2'<<24)
	RGBX4444 = FourCC('R' | 'X'<<8 | '1'<<16 | '2'<<24)
	BGRX4444 = FourCC('B' | 'X'<<8 | '1'<<16 | '2'<<24)

	// RGB565 is 16 bpp with 5 bits red, 6 bits green, 5 bits blue.
	RGB565 = FourCC('R' | 'G'<<8 | '1'<<16 | '6'<<24)
	// RGB888 is 24 bpp packed rgb.
	RGB888 = FourCC('R' | 'G'<<8 | '2'<<16 | '4'<<24)

	XRGB8888 = FourCC('X' | 'R'<<8 | '2'<<16 | '4'<<24)
	XBGR8888 = FourCC('X' | 'B'<<8 | '2'<<16 | '4'<<24)
	ARGB8888 = FourCC('A' | 'R'<<8 | '2'<<16 | '4'<<24)
	ABGR8888 = FourCC('A' | 'B'<<8 | '2'<<16 | '4'<<24)

	// NV12 is a luma plane followed by an interleaved 2x2 subsampled CbCr plane.
	NV12 = FourCC('N' | 'V'<<8 | '1'<<16 | '2'<<24)
	// NV16 is NV12 with 2x1 subsampling.
	NV16 = FourCC('N' | 'V'<<8 | '1'<<16 | '6'<<24)

	// YUV420 is three planes, Y then 2x2 subsampled Cb and Cr.
	YUV420 = FourCC('Y' | 'U'<<8 | '1'<<16 | '2'<<24)
	// YUV422 is three planes with 2x1 subsampled chroma.
	YUV422 = FourCC('Y' | 'U'<<8 | '1'<<16 | '6'<<24)
	// YUV444 is three full resolution planes.
	YUV444 = FourCC('Y' | 'U'<<8 | '2'<<16 | '4'<<24)
)

// Bytes returns the four characters of f.
func (f FourCC) Bytes() [4]byte {
	return [4]byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)}
}

// String returns the characters of f, or its hex value if any of them is
// not printable.
func (f FourCC) String() string {
	b := f.Bytes()
	for _, c := range b {
		if c < ' ' || c > '~' {
			return fmt.Sprintf("0x%08x", uint32(f))
		}
	}
	return string(b[:])
}

// Info returns the entry of f in the default format table.
func (f FourCC) Info() (FormatInfo, error) {
	return DefaultFormats().Lookup(f)
}

// BlockElement returns the element describing one block of f in the default
// format table.
func (f FourCC) BlockElement() (layout.Element, bool) {
	return DefaultFormats().BlockElement(f)
}
