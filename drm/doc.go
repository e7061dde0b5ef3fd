// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package drm validates kernel DRM frame buffer descriptors.
//
// A [FramebufferCmd] mirrors the kernel's drm_mode_fb_cmd2 request: the
// image size, a [FourCC] format code and per-plane pitches, offsets and
// modifiers. [New] checks it against a [FormatTable] and returns an
// immutable [Layout] whose byte length and per-plane geometry are safe to
// allocate and index against.
//
//	cmd := drm.FramebufferCmd{
//		Width:   640,
//		Height:  480,
//		Format:  drm.XRGB8888,
//		Pitches: [4]uint32{640 * 4},
//	}
//	fb, err := drm.New(&cmd)
//	if err != nil {
//		return err // errors.Is(err, drm.ErrBadDrm)
//	}
//	buf := pixel.NewBuf(fb.ByteLen())
//
// Validation is narrower than the kernel's: all modifiers must
// be zero (linear), only YUV formats may be subsampled, and planes must be
// laid out in order of increasing offset without overlap.
package drm
