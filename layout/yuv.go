// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/gogpu/canvas/internal/checked"
)

// Yuv420p is a planar image with 2×2 block-wise chroma subsampling: a full
// resolution luma plane followed by two quarter resolution chroma planes.
type Yuv420p struct {
	channel Element
	width   uint32
	height  uint32
}

// NewYuv420p returns the layout of a width×height 4:2:0 image. It reports
// false if a dimension is odd or the byte length overflows.
func NewYuv420p(channel Element, width, height uint32) (Yuv420p, bool) {
	if width%2 != 0 || height%2 != 0 {
		return Yuv420p{}, false
	}
	w, ok := checked.U32ToInt(width)
	if !ok {
		return Yuv420p{}, false
	}
	h, ok := checked.U32ToInt(height)
	if !ok {
		return Yuv420p{}, false
	}
	luma, ok := checked.MulInt(w, h)
	if !ok {
		return Yuv420p{}, false
	}
	count, ok := checked.AddInt(luma, luma/2)
	if !ok {
		return Yuv420p{}, false
	}
	if _, ok := checked.MulInt(count, channel.size); !ok {
		return Yuv420p{}, false
	}
	return Yuv420p{channel: channel, width: width, height: height}, true
}

// Channel returns the element of a single sample.
func (y Yuv420p) Channel() Element {
	return y.channel
}

// Width returns the luma width.
func (y Yuv420p) Width() uint32 {
	return y.width
}

// Height returns the luma height.
func (y Yuv420p) Height() uint32 {
	return y.height
}

// LumaLen returns the byte length of the luma plane.
func (y Yuv420p) LumaLen() int {
	return int(y.width) * int(y.height) * y.channel.size
}

// ByteLen implements Layout.
func (y Yuv420p) ByteLen() int {
	luma := y.LumaLen()
	return luma + luma/2
}

// Take implements Taker.
func (y *Yuv420p) Take() Yuv420p {
	old := *y
	*y = Yuv420p{channel: y.channel}
	return old
}

// String returns a debug representation.
func (y Yuv420p) String() string {
	return fmt.Sprintf("Yuv420p{%v, %dx%d}", y.channel, y.width, y.height)
}
