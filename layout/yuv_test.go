// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"math"
	"testing"
)

func TestNewYuv420p(t *testing.T) {
	u8 := ElementFor[uint8]()
	u16 := ElementFor[uint16]()
	tests := []struct {
		name    string
		channel Element
		w, h    uint32
		ok      bool
		byteLen int
	}{
		{"vga", u8, 640, 480, true, 640*480 + 640*480/2},
		{"16-bit", u16, 4, 2, true, 16 + 8},
		{"tiny", u8, 2, 2, true, 6},
		{"empty", u8, 0, 0, true, 0},
		{"odd width", u8, 3, 2, false, 0},
		{"odd height", u8, 2, 5, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, ok := NewYuv420p(tt.channel, tt.w, tt.h)
			if ok != tt.ok {
				t.Fatalf("NewYuv420p ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if y.ByteLen() != tt.byteLen {
				t.Errorf("ByteLen() = %d, want %d", y.ByteLen(), tt.byteLen)
			}
			luma := int(tt.w) * int(tt.h) * tt.channel.Size()
			if y.ByteLen() != luma+luma/2 {
				t.Errorf("ByteLen() = %d, want luma+luma/2 = %d", y.ByteLen(), luma+luma/2)
			}
		})
	}
}

func TestNewYuv420p_Overflow(t *testing.T) {
	huge, ok := NewElement(math.MaxInt/32*16, 16)
	if !ok {
		t.Fatal("NewElement failed")
	}
	if _, ok := NewYuv420p(huge, math.MaxUint32-1, math.MaxUint32-1); ok {
		t.Error("NewYuv420p accepted an overflowing layout")
	}
}

func TestYuv420p_Take(t *testing.T) {
	y, _ := NewYuv420p(ElementFor[uint16](), 8, 8)
	old := y.Take()
	if old.Width() != 8 || old.Height() != 8 {
		t.Errorf("taken = %v", old)
	}
	if y.ByteLen() != 0 || y.Channel() != ElementFor[uint16]() {
		t.Errorf("after Take = %v", y)
	}
}
