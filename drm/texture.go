// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drm

import "github.com/gogpu/gputypes"

// TextureFormat returns the WebGPU texture format with the same byte layout
// as a single plane of f, or TextureFormatUndefined if there is none.
//
// DRM codes name channels from the most significant bit of a little endian
// word, so XRGB8888 is stored as B, G, R, X bytes.
func (f FourCC) TextureFormat() gputypes.TextureFormat {
	switch f {
	case C8:
		return gputypes.TextureFormatR8Unorm
	case XRGB8888, ARGB8888:
		return gputypes.TextureFormatBGRA8Unorm
	case XBGR8888, ABGR8888:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// TextureFormat returns the texture format a GPU upload of l would use.
// Multi-plane layouts report TextureFormatUndefined.
func (l *Layout) TextureFormat() gputypes.TextureFormat {
	if l.format.NumPlanes != 1 {
		return gputypes.TextureFormatUndefined
	}
	return l.format.Format.TextureFormat()
}
