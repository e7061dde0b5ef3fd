// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas is the representation layer of an image buffer library.
//
// It does not store or draw pixels. It defines the byte geometry of pixel
// data and when raw memory may be reinterpreted as typed pixels:
//
//   - package pixel certifies plain-old-data types with a [pixel.Pixel]
//     witness and casts aligned byte buffers to typed slices and back;
//   - package layout describes buffers by byte geometry (Bytes, Matrix,
//     TMatrix, Yuv420p, DynLayout) and converts between those descriptions;
//   - package drm validates kernel DRM frame buffer descriptors into
//     immutable multi-plane layouts.
//
// A buffer owner sizes its storage with ByteLen, casts it with a witness and
// swaps descriptors with decay and mend conversions:
//
//	m, _ := layout.NewTMatrix(pixel.RGBA, 400, 400)
//	buf := pixel.NewBuf(m.ByteLen())
//	px := m.Sample().CastSlice(buf) // 160000 [4]uint8 pixels
//
// # Logging
//
// The module is silent by default. [SetLogger] installs a slog logger that
// sub-packages share.
package canvas

// Version information
const (
	// Version is the current version of the module.
	Version = "0.1.0"

	// VersionMajor is the major version.
	VersionMajor = 0

	// VersionMinor is the minor version.
	VersionMinor = 1

	// VersionPatch is the patch version.
	VersionPatch = 0
)
