// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package checked

import (
	"math"
	"testing"
)

func TestMulInt(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int
		want   int
		wantOK bool
	}{
		{"small", 3, 4, 12, true},
		{"zero", 0, math.MaxInt, 0, true},
		{"max times one", math.MaxInt, 1, math.MaxInt, true},
		{"overflow", math.MaxInt, 2, 0, false},
		{"half overflow", math.MaxInt/2 + 1, 2, 0, false},
		{"negative", -1, 2, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MulInt(tt.a, tt.b)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("MulInt(%d, %d) = (%d, %v), want (%d, %v)", tt.a, tt.b, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAddInt(t *testing.T) {
	if got, ok := AddInt(2, 3); !ok || got != 5 {
		t.Errorf("AddInt(2, 3) = (%d, %v), want (5, true)", got, ok)
	}
	if _, ok := AddInt(math.MaxInt, 1); ok {
		t.Error("AddInt(MaxInt, 1) should overflow")
	}
	if _, ok := AddInt(-1, 1); ok {
		t.Error("AddInt(-1, 1) should fail")
	}
}

func TestU32(t *testing.T) {
	if got, ok := MulU32(1<<16, 1<<15); !ok || got != 1<<31 {
		t.Errorf("MulU32 = (%d, %v), want (%d, true)", got, ok, uint32(1<<31))
	}
	if _, ok := MulU32(1<<16, 1<<16); ok {
		t.Error("MulU32(1<<16, 1<<16) should overflow")
	}
	if got, ok := AddU32(math.MaxUint32-1, 1); !ok || got != math.MaxUint32 {
		t.Errorf("AddU32 = (%d, %v), want (MaxUint32, true)", got, ok)
	}
	if _, ok := AddU32(math.MaxUint32, 1); ok {
		t.Error("AddU32(MaxUint32, 1) should overflow")
	}
}

func TestRoundUpDiv(t *testing.T) {
	tests := []struct {
		n, d, want uint32
	}{
		{0, 2, 0},
		{4, 2, 2},
		{5, 2, 3},
		{1, 4, 1},
		{7, 1, 7},
		{math.MaxUint32, 2, 1 << 31},
	}
	for _, tt := range tests {
		if got := RoundUpDiv(tt.n, tt.d); got != tt.want {
			t.Errorf("RoundUpDiv(%d, %d) = %d, want %d", tt.n, tt.d, got, tt.want)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []uint64{1, 2, 4, 16, 1 << 63} {
		if !IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = false, want true", n)
		}
	}
	for _, n := range []uint64{0, 3, 6, 12, math.MaxUint64} {
		if IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = true, want false", n)
		}
	}
}
