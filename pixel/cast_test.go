// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixel

import (
	"math"
	"testing"
	"unsafe"
)

func TestFromBytes_Alignment(t *testing.T) {
	buf := NewBuf(64)
	raw := buf.Bytes()

	if _, ok := FromBytes(raw); !ok {
		t.Fatal("FromBytes on aligned bytes failed")
	}
	if _, ok := FromBytes(raw[1:]); ok {
		t.Error("FromBytes accepted bytes offset by 1")
	}
	if _, ok := FromBytes(raw[8:]); ok {
		t.Error("FromBytes accepted bytes offset by 8")
	}
	if _, ok := FromBytes(raw[16:]); !ok {
		t.Error("FromBytes rejected bytes offset by 16")
	}
	if _, ok := FromBytes(nil); !ok {
		t.Error("FromBytes rejected nil")
	}
}

func TestNewBuf(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 1000} {
		buf := NewBuf(n)
		if buf.Len() != n {
			t.Errorf("NewBuf(%d).Len() = %d", n, buf.Len())
		}
		if n > 0 && uintptr(unsafe.Pointer(&buf.Bytes()[0]))%MaxAlign != 0 {
			t.Errorf("NewBuf(%d) is not aligned", n)
		}
	}
}

func TestCastSlice_Shortens(t *testing.T) {
	tests := []struct {
		name  string
		bytes int
		want  int
	}{
		{"exact", 12, 3},
		{"one extra", 13, 3},
		{"three extra", 15, 3},
		{"less than one", 3, 0},
		{"empty", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := U32.CastSlice(NewBuf(tt.bytes))
			if len(got) != tt.want {
				t.Errorf("len(CastSlice) = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestCastSlice_Aliases(t *testing.T) {
	buf := NewBuf(8)
	words := U16.CastSlice(buf)
	words[1] = 0xffff

	raw := buf.Bytes()
	if raw[2] != 0xff || raw[3] != 0xff {
		t.Errorf("bytes = %v, write through typed view not visible", raw)
	}

	back := U16.CastBytes(words)
	if len(back) != 8 || &back[0] != &raw[0] {
		t.Error("CastBytes must return the same 8 bytes")
	}
}

func TestCastBytes_Exact(t *testing.T) {
	px := make([][3]uint8, 5)
	if got := len(RGB.CastBytes(px)); got != 15 {
		t.Errorf("len(CastBytes) = %d, want 15", got)
	}
	if got := len(F64.CastBytes(nil)); got != 0 {
		t.Errorf("len(CastBytes(nil)) = %d, want 0", got)
	}
}

func TestCastSlice_ZeroSized(t *testing.T) {
	got := Empty.CastSlice(NewBuf(3))
	if len(got) != math.MaxInt {
		t.Errorf("len(CastSlice) = %d, want MaxInt", len(got))
	}
	if n := len(Empty.CastBytes(got)); n != 0 {
		t.Errorf("len(CastBytes) = %d, want 0", n)
	}
}

func TestCastBuf_RoundTrip(t *testing.T) {
	buf := NewBuf(32)
	px := RGBA.CastSlice(buf)
	back, ok := RGBA.CastBuf(px)
	if !ok {
		t.Fatal("CastBuf rejected a cast view")
	}
	if back.Len() != 32 {
		t.Errorf("Len() = %d, want 32", back.Len())
	}
}

func TestBuf_MaxAligned(t *testing.T) {
	buf := NewBuf(40)
	chunks := buf.MaxAligned()
	if len(chunks) != 2 {
		t.Fatalf("len(MaxAligned()) = %d, want 2", len(chunks))
	}
	chunks[1].Bytes[0] = 7
	if buf.Bytes()[16] != 7 {
		t.Error("MaxAligned view does not alias the buffer")
	}

	again, ok := FromMaxAligned(chunks)
	if !ok || again.Len() != 32 {
		t.Errorf("FromMaxAligned = (%d, %v), want (32, true)", again.Len(), ok)
	}
	if got := buf.Truncate(20).Len(); got != 20 {
		t.Errorf("Truncate(20).Len() = %d", got)
	}
}

func TestCastMaxAligned(t *testing.T) {
	chunks := make([]MaxAligned, 2)
	chunks[1].Bytes[0] = 9

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"u8", len(U8.CastMaxAligned(chunks)), 32},
		{"u64", len(U64.CastMaxAligned(chunks)), 4},
		{"rgb", len(RGB.CastMaxAligned(chunks)), 10},
		{"empty input", len(U32.CastMaxAligned(nil)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("len = %d, want %d", tt.got, tt.want)
			}
		})
	}

	if got := U8.CastMaxAligned(chunks)[16]; got != 9 {
		t.Errorf("CastMaxAligned()[16] = %d, want 9", got)
	}
}
