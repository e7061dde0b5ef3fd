// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drm

import (
	"maps"
	"slices"

	"github.com/gogpu/canvas/internal/checked"
	"github.com/gogpu/canvas/layout"
	"github.com/gogpu/canvas/pixel"
)

// FormatInfo describes the byte layout of one DRM format.
//
// It follows the kernel's drm_format_info with deprecated members removed.
// An info is not a layout: it has no dimensions and need not be internally
// consistent. Validation happens in New.
type FormatInfo struct {
	// Format is the code this info describes.
	Format FourCC

	// NumPlanes is the number of color planes, 1 to 3.
	NumPlanes uint8

	// CharPerBlock is the number of bytes per block, per plane. Blocks are
	// rectangles of pixels stored next to each other in a byte aligned region.
	CharPerBlock [4]uint8

	// BlockW is the width of a block in pixels, per plane.
	BlockW [4]uint8

	// BlockH is the height of a block in pixels, per plane.
	BlockH [4]uint8

	// Hsub is the horizontal chroma subsampling factor.
	Hsub uint8

	// Vsub is the vertical chroma subsampling factor.
	Vsub uint8

	// HasAlpha reports whether the format embeds an alpha component.
	HasAlpha bool

	// IsYUV reports whether the format is YUV.
	IsYUV bool
}

// pixel1 is the info of a format with 1x1 blocks, to be completed.
var pixel1 = FormatInfo{
	BlockW: [4]uint8{1, 1, 1, 1},
	BlockH: [4]uint8{1, 1, 1, 1},
	Hsub:   1,
	Vsub:   1,
}

func packed(cpb uint8) FormatInfo {
	info := pixel1
	info.NumPlanes = 1
	info.CharPerBlock = [4]uint8{cpb, 0, 0, 0}
	return info
}

func planar(planes uint8, cpb [4]uint8, hsub, vsub uint8) FormatInfo {
	info := pixel1
	info.NumPlanes = planes
	info.CharPerBlock = cpb
	info.Hsub = hsub
	info.Vsub = vsub
	info.IsYUV = true
	return info
}

// plane width in blocks, after subsampling. Hsub and the block width of
// the plane must be nonzero.
//
// Hsub divides the width and Vsub the height, following the kernel's
// drm_format_info_plane_width and drm_format_info_plane_height.
func (f FormatInfo) planeWidth(width uint32, idx PlaneIdx) uint32 {
	if f.IsYUV && idx != First {
		width = checked.RoundUpDiv(width, uint32(f.Hsub))
	}
	return checked.RoundUpDiv(width, uint32(f.BlockW[idx.Index()]))
}

// plane height in blocks, after subsampling. Vsub and the block height of
// the plane must be nonzero.
func (f FormatInfo) planeHeight(height uint32, idx PlaneIdx) uint32 {
	if f.IsYUV && idx != First {
		height = checked.RoundUpDiv(height, uint32(f.Vsub))
	}
	return checked.RoundUpDiv(height, uint32(f.BlockH[idx.Index()]))
}

// IntoLayout returns the tightly packed dynamic layout of a width×height
// image in this format.
//
// Only single-plane formats with 1x1 blocks (a Matrix) and three-plane 4:2:0
// formats with equal sample sizes (a Yuv420p) have such a layout; everything
// else reports false. The element alignment is the largest power of two, up
// to pixel.MaxAlign, dividing the block size.
func (f FormatInfo) IntoLayout(width, height uint32) (layout.DynLayout, bool) {
	return f.tightLayout(pixel.MaxAlign, width, height)
}

func (f FormatInfo) tightLayout(maxAlign int, width, height uint32) (layout.DynLayout, bool) {
	switch {
	case f.NumPlanes == 1 && !f.IsYUV && f.CharPerBlock[0] != 0 &&
		f.BlockW[0] == 1 && f.BlockH[0] == 1:
		w, ok := checked.U32ToInt(width)
		if !ok {
			return layout.DynLayout{}, false
		}
		h, ok := checked.U32ToInt(height)
		if !ok {
			return layout.DynLayout{}, false
		}
		m, ok := layout.NewMatrix(blockElement(maxAlign, f.CharPerBlock[0]), w, h)
		if !ok {
			return layout.DynLayout{}, false
		}
		return layout.DynMatrix(m), true

	case f.NumPlanes == 3 && f.IsYUV && f.Hsub == 2 && f.Vsub == 2 && f.CharPerBlock[0] != 0 &&
		f.CharPerBlock[0] == f.CharPerBlock[1] && f.CharPerBlock[1] == f.CharPerBlock[2] &&
		f.BlockW == pixel1.BlockW && f.BlockH == pixel1.BlockH:
		y, ok := layout.NewYuv420p(blockElement(maxAlign, f.CharPerBlock[0]), width, height)
		if !ok {
			return layout.DynLayout{}, false
		}
		return layout.DynYuv420p(y), true
	}
	return layout.DynLayout{}, false
}

// blockElement returns the element of cpb bytes aligned to the largest power
// of two not above maxAlign that divides cpb.
func blockElement(maxAlign int, cpb uint8) layout.Element {
	size := int(cpb)
	align := maxAlign
	for align > 1 && size%align != 0 {
		align /= 2
	}
	e, _ := layout.NewElement(size, align)
	return e
}

// Entry registers a format with the element its blocks are cast to.
type Entry struct {
	Info FormatInfo

	// Element is the casting element. The zero Element means no element
	// fits, and New rejects the format.
	Element layout.Element
}

// FormatTable is an immutable registry of formats.
//
// A table is safe for concurrent use. With returns a modified copy.
type FormatTable struct {
	entries map[FourCC]Entry
}

// NewFormatTable returns a table holding entries, keyed by Info.Format.
func NewFormatTable(entries ...Entry) *FormatTable {
	t := &FormatTable{entries: make(map[FourCC]Entry, len(entries))}
	for _, e := range entries {
		t.entries[e.Info.Format] = e
	}
	return t
}

// With returns a copy of t with entries added or replaced. A nil t is an
// empty table.
func (t *FormatTable) With(entries ...Entry) *FormatTable {
	if t == nil {
		return NewFormatTable(entries...)
	}
	c := &FormatTable{entries: maps.Clone(t.entries)}
	if c.entries == nil {
		c.entries = make(map[FourCC]Entry, len(entries))
	}
	for _, e := range entries {
		c.entries[e.Info.Format] = e
	}
	return c
}

// Lookup returns the info registered for code, or ErrBadDrm.
func (t *FormatTable) Lookup(code FourCC) (FormatInfo, error) {
	e, ok := t.entry(code)
	if !ok || code == Invalid {
		return FormatInfo{}, ErrBadDrm
	}
	info := e.Info
	info.Format = code
	return info, nil
}

// BlockElement returns the casting element registered for code.
func (t *FormatTable) BlockElement(code FourCC) (layout.Element, bool) {
	e, ok := t.entry(code)
	if !ok || e.Element.Align() == 0 {
		return layout.Element{}, false
	}
	return e.Element, true
}

// Formats returns the registered codes in ascending order.
func (t *FormatTable) Formats() []FourCC {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.entries))
}

func (t *FormatTable) entry(code FourCC) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := t.entries[code]
	return e, ok
}

func entry(code FourCC, info FormatInfo, element layout.Element) Entry {
	info.Format = code
	return Entry{Info: info, Element: element}
}

func withAlpha(info FormatInfo) FormatInfo {
	info.HasAlpha = true
	return info
}

var defaultFormats = func() *FormatTable {
	u8 := layout.ElementOf(pixel.U8)
	u16 := layout.ElementOf(pixel.U16)
	u32 := layout.ElementOf(pixel.U32)

	return NewFormatTable(
		entry(C8, packed(1), u8),
		entry(RGB332, packed(1), u8),
		entry(BGR332, packed(1), u8),
		entry(XRGB4444, packed(2), u16),
		entry(XBGR4444, packed(2), u16),
		entry(RGBX4444, packed(2), u16),
		entry(BGRX4444, packed(2), u16),
		entry(RGB565, packed(2), u16),
		entry(RGB888, packed(3), u8),
		entry(XRGB8888, packed(4), u32),
		entry(XBGR8888, packed(4), u32),
		entry(ARGB8888, withAlpha(packed(4)), u32),
		entry(ABGR8888, withAlpha(packed(4)), u32),
		entry(NV12, planar(2, [4]uint8{1, 2, 0, 0}, 2, 2), u8),
		entry(NV16, planar(2, [4]uint8{1, 2, 0, 0}, 2, 1), u8),
		entry(YUV420, planar(3, [4]uint8{1, 1, 1, 0}, 2, 2), u8),
		entry(YUV422, planar(3, [4]uint8{1, 1, 1, 0}, 2, 1), u8),
		entry(YUV444, planar(3, [4]uint8{1, 1, 1, 0}, 1, 1), u8),
	)
}()

// DefaultFormats returns the builtin format table.
func DefaultFormats() *FormatTable {
	return defaultFormats
}
