// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drm_test

import (
	"errors"
	"fmt"

	"github.com/gogpu/canvas/drm"
	"github.com/gogpu/canvas/pixel"
)

// ExampleNew validates a linear XRGB8888 frame buffer and views its memory
// as 32-bit pixels.
func ExampleNew() {
	cmd := drm.FramebufferCmd{
		Width:   640,
		Height:  480,
		Format:  drm.XRGB8888,
		Pitches: [4]uint32{640 * 4},
	}
	fb, err := drm.New(&cmd)
	if err != nil {
		fmt.Println("rejected:", err)
		return
	}

	buf := pixel.NewBuf(fb.ByteLen())
	pixels := pixel.U32.CastSlice(buf)
	fmt.Println(cmd.Format, fb.ByteLen(), len(pixels))

	// A pitch shorter than a row is rejected.
	cmd.Pitches[0] = 640
	_, err = drm.New(&cmd)
	fmt.Println(errors.Is(err, drm.ErrBadDrm))
	// Output:
	// XR24 1228800 307200
	// true
}

// ExampleLayout_Planes lists the planes of an NV12 image.
func ExampleLayout_Planes() {
	fb, err := drm.New(&drm.FramebufferCmd{
		Width:   8,
		Height:  4,
		Format:  drm.NV12,
		Pitches: [4]uint32{8, 8},
		Offsets: [4]uint32{0, 32},
	})
	if err != nil {
		fmt.Println("rejected:", err)
		return
	}

	for _, p := range fb.Planes() {
		start, end := p.ByteRange()
		fmt.Printf("%dx%d blocks of %d bytes at [%d, %d)\n", p.Width(), p.Height(), p.CharPerBlock(), start, end)
	}
	// Output:
	// 8x4 blocks of 1 bytes at [0, 32)
	// 4x2 blocks of 2 bytes at [32, 48)
}
