// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drm

import (
	"errors"
	"log/slog"

	"github.com/gogpu/canvas/internal/checked"
	"github.com/gogpu/canvas/layout"
)

// ErrBadDrm is returned when a frame buffer descriptor can not be turned
// into a supported layout.
var ErrBadDrm = errors.New("drm: unsupported frame buffer")

// FramebufferCmd is a request for a frame buffer, as in drm_mode_fb_cmd2.
//
// It is raw input. Flags are carried for completeness and ignored.
type FramebufferCmd struct {
	Width    uint32
	Height   uint32
	Format   FourCC
	Flags    int32
	Pitches  [4]uint32
	Offsets  [4]uint32
	Modifier [4]uint64
}

// PlaneIdx names one of the up to three planes of a frame buffer.
type PlaneIdx uint8

// Planes in buffer order.
const (
	First PlaneIdx = iota + 1
	Second
	Third
)

var planeIdxs = [3]PlaneIdx{First, Second, Third}

// Index returns the zero based array index of p.
func (p PlaneIdx) Index() int {
	return int(p) - 1
}

func (p PlaneIdx) valid() bool {
	return p >= First && p <= Third
}

// Layout is a validated frame buffer layout.
//
// It can not be edited in place, so the derived values never go stale.
// Build a new one from a modified FramebufferCmd instead.
type Layout struct {
	format   FormatInfo
	pitches  [4]uint32
	offsets  [4]uint32
	modifier uint64
	width    uint32
	height   uint32
	element  layout.Element
	totalLen int
}

// New validates cmd and returns its layout.
//
// The checks run in order and the first failure returns ErrBadDrm:
//   - the format is registered and has a casting element,
//   - width and height fit an int, the format has 1 to 3 planes,
//   - all four modifiers are equal, and zero for every plane in use,
//   - subsampling is used only by YUV formats and is 1, 2 or 4,
//   - every plane has nonzero block sizes, starts at or after the end of the
//     previous plane, and has a pitch of at least its row size,
//   - no plane end overflows 32 bits.
//
// The reason for a rejection is logged at debug level.
func New(cmd *FramebufferCmd, opts ...Option) (*Layout, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	reject := func(reason string, attrs ...any) (*Layout, error) {
		attrs = append(attrs,
			slog.String("reason", reason),
			slog.String("fourcc", cmd.Format.String()),
			slog.Uint64("width", uint64(cmd.Width)),
			slog.Uint64("height", uint64(cmd.Height)),
		)
		o.logger.Debug("drm: frame buffer rejected", attrs...)
		return nil, ErrBadDrm
	}

	info, err := o.formats.Lookup(cmd.Format)
	if err != nil {
		return reject("unknown format")
	}
	if _, ok := checked.U32ToInt(cmd.Width); !ok {
		return reject("width exceeds int")
	}
	if _, ok := checked.U32ToInt(cmd.Height); !ok {
		return reject("height exceeds int")
	}
	if info.NumPlanes < 1 || info.NumPlanes > 3 {
		return reject("bad plane count", slog.Int("planes", int(info.NumPlanes)))
	}
	element, ok := o.formats.BlockElement(cmd.Format)
	if !ok {
		return reject("no block element")
	}

	modifier := cmd.Modifier[0]
	for _, m := range cmd.Modifier {
		if m != modifier {
			return reject("mixed modifiers")
		}
	}

	// Checked before any plane geometry is derived, so the divisions below
	// never see a zero factor.
	if !info.IsYUV && (info.Hsub != 1 || info.Vsub != 1) {
		return reject("subsampled non-YUV format")
	}
	if info.Hsub > 4 || !checked.IsPowerOfTwo(uint64(info.Hsub)) {
		return reject("bad horizontal subsampling", slog.Int("hsub", int(info.Hsub)))
	}
	if info.Vsub > 4 || !checked.IsPowerOfTwo(uint64(info.Vsub)) {
		return reject("bad vertical subsampling", slog.Int("vsub", int(info.Vsub)))
	}

	var lastPlaneEnd uint32
	for _, plane := range planeIdxs[:info.NumPlanes] {
		idx := plane.Index()
		at := slog.Int("plane", idx)

		if cmd.Modifier[idx] != 0 {
			return reject("vendor modifier", at)
		}
		if info.CharPerBlock[idx] == 0 || info.BlockW[idx] == 0 || info.BlockH[idx] == 0 {
			return reject("empty plane", at)
		}
		if cmd.Offsets[idx] < lastPlaneEnd {
			return reject("plane out of order", at)
		}

		width := info.planeWidth(cmd.Width, plane)
		height := info.planeHeight(cmd.Height, plane)

		rowLen, ok := checked.MulU32(uint32(info.CharPerBlock[idx]), width)
		if !ok {
			return reject("row overflow", at)
		}
		if cmd.Pitches[idx] < rowLen {
			return reject("pitch too small", at, slog.Uint64("pitch", uint64(cmd.Pitches[idx])))
		}
		planeLen, ok := checked.MulU32(cmd.Pitches[idx], height)
		if !ok {
			return reject("plane overflow", at)
		}
		lastPlaneEnd, ok = checked.AddU32(cmd.Offsets[idx], planeLen)
		if !ok {
			return reject("plane end overflow", at)
		}
	}

	// Planes are ordered, so the last end covers every plane.
	totalLen, ok := checked.U32ToInt(lastPlaneEnd)
	if !ok {
		return reject("length exceeds int")
	}

	return &Layout{
		format:   info,
		pitches:  cmd.Pitches,
		offsets:  cmd.Offsets,
		modifier: modifier,
		width:    cmd.Width,
		height:   cmd.Height,
		element:  element,
		totalLen: totalLen,
	}, nil
}

// ByteLen implements layout.Layout.
func (l *Layout) ByteLen() int {
	return l.totalLen
}

// FourCC returns the format code of l.
func (l *Layout) FourCC() FourCC {
	return l.format.Format
}

// Format returns the format info l was validated against.
func (l *Layout) Format() FormatInfo {
	return l.format
}

// Element returns the casting element of the format's blocks.
func (l *Layout) Element() layout.Element {
	return l.element
}

// Width returns the image width in pixels.
func (l *Layout) Width() uint32 {
	return l.width
}

// Height returns the image height in pixels.
func (l *Layout) Height() uint32 {
	return l.height
}

// Modifier returns the modifier shared by all planes.
func (l *Layout) Modifier() uint64 {
	return l.modifier
}

// Plane returns the layout of one plane. It reports false for planes the
// format does not populate.
func (l *Layout) Plane(p PlaneIdx) (PlaneLayout, bool) {
	if !p.valid() {
		return PlaneLayout{}, false
	}
	idx := p.Index()
	f := l.format
	if idx >= int(f.NumPlanes) {
		// Slots past NumPlanes were never validated, whatever the format
		// table says about them.
		return PlaneLayout{}, false
	}

	return PlaneLayout{
		format:       f.Format,
		charPerBlock: f.CharPerBlock[idx],
		blockW:       f.BlockW[idx],
		blockH:       f.BlockH[idx],
		hsub:         f.Hsub,
		vsub:         f.Vsub,
		hasAlpha:     f.HasAlpha,
		isYUV:        f.IsYUV,
		element:      blockElement(l.element.Align(), f.CharPerBlock[idx]),
		pitch:        l.pitches[idx],
		offset:       l.offsets[idx],
		modifier:     l.modifier,
		width:        f.planeWidth(l.width, p),
		height:       f.planeHeight(l.height, p),
	}, true
}

// Planes returns the layouts of all populated planes in index order.
func (l *Layout) Planes() []PlaneLayout {
	planes := make([]PlaneLayout, 0, l.format.NumPlanes)
	for _, p := range planeIdxs[:l.format.NumPlanes] {
		if pl, ok := l.Plane(p); ok {
			planes = append(planes, pl)
		}
	}
	return planes
}

// DynLayout converts l into the generic layout family.
//
// It succeeds only when l is tightly packed: the first plane at offset 0,
// every pitch equal to its row size and every plane starting where the
// previous one ends. See FormatInfo.IntoLayout for the supported formats.
func (l *Layout) DynLayout() (layout.DynLayout, bool) {
	var end uint32
	for _, pl := range l.Planes() {
		if pl.offset != end || pl.pitch != uint32(pl.charPerBlock)*pl.width {
			return layout.DynLayout{}, false
		}
		end = pl.offset + pl.pitch*pl.height
	}
	d, ok := l.format.tightLayout(l.element.Align(), l.width, l.height)
	if !ok || d.ByteLen() != l.totalLen {
		return layout.DynLayout{}, false
	}
	return d, true
}

// PlaneLayout is the geometry of one plane of a validated Layout.
type PlaneLayout struct {
	format       FourCC
	charPerBlock uint8
	blockW       uint8
	blockH       uint8
	hsub         uint8
	vsub         uint8
	hasAlpha     bool
	isYUV        bool
	element      layout.Element
	pitch        uint32
	offset       uint32
	modifier     uint64
	width        uint32
	height       uint32
}

// FourCC returns the format code of the whole frame buffer.
func (p PlaneLayout) FourCC() FourCC {
	return p.format
}

// CharPerBlock returns the bytes per block of this plane.
func (p PlaneLayout) CharPerBlock() uint8 {
	return p.charPerBlock
}

// BlockSize returns the block width and height in pixels.
func (p PlaneLayout) BlockSize() (w, h uint8) {
	return p.blockW, p.blockH
}

// Subsampling returns the format's horizontal and vertical chroma
// subsampling factors.
func (p PlaneLayout) Subsampling() (hsub, vsub uint8) {
	return p.hsub, p.vsub
}

// HasAlpha reports whether the format embeds alpha.
func (p PlaneLayout) HasAlpha() bool { return p.hasAlpha }

// IsYUV reports whether the format is YUV.
func (p PlaneLayout) IsYUV() bool { return p.isYUV }

// Pitch returns the bytes per row.
func (p PlaneLayout) Pitch() uint32 { return p.pitch }

// Offset returns the byte offset of the plane in the buffer.
func (p PlaneLayout) Offset() uint32 { return p.offset }

// Modifier returns the plane's format modifier.
func (p PlaneLayout) Modifier() uint64 { return p.modifier }

// Width returns the plane width in blocks, after subsampling.
func (p PlaneLayout) Width() uint32 { return p.width }

// Height returns the plane height in blocks, after subsampling.
func (p PlaneLayout) Height() uint32 { return p.height }

// Element returns the element of one block of this plane.
func (p PlaneLayout) Element() layout.Element {
	return p.element
}

// ByteRange returns the half-open byte range the plane occupies.
func (p PlaneLayout) ByteRange() (start, end int) {
	start = int(p.offset)
	// Bounded by the plane end New validated, a uint32 that fits an int.
	return start, start + int(p.pitch)*int(p.height)
}

// ByteLen implements layout.Layout: the bytes needed up to the plane's end.
func (p PlaneLayout) ByteLen() int {
	_, end := p.ByteRange()
	return end
}

// Matrix returns the plane's blocks as a matrix, ignoring row padding.
func (p PlaneLayout) Matrix() (layout.Matrix, bool) {
	return layout.NewMatrix(p.element, int(p.width), int(p.height))
}

var (
	_ layout.Layout = (*Layout)(nil)
	_ layout.Layout = PlaneLayout{}
)
