// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixel

// Builtin is the closed set of types with a statically known witness.
type Builtin interface {
	struct{} | int8 | uint8 | int16 | uint16 | int32 | uint32 | float32 |
		int64 | uint64 | float64 | [3]uint8 | [4]uint8 | MaxAligned
}

// Of returns the witness of a builtin pixel type.
func Of[P Builtin]() Pixel[P] {
	return Pixel[P]{issued: true}
}

// Predefined witnesses.
var (
	Empty = Of[struct{}]()
	I8    = Of[int8]()
	U8    = Of[uint8]()
	I16   = Of[int16]()
	U16   = Of[uint16]()
	I32   = Of[int32]()
	U32   = Of[uint32]()
	F32   = Of[float32]()
	I64   = Of[int64]()
	U64   = Of[uint64]()
	F64   = Of[float64]()
	RGB   = Of[[3]uint8]()
	RGBA  = Of[[4]uint8]()
	Max   = Of[MaxAligned]()
)

// Descriptor names one entry of the builtin table.
type Descriptor struct {
	Name  string
	Size  int
	Align int
}

func describe[P any](name string, p Pixel[P]) Descriptor {
	return Descriptor{Name: name, Size: p.Size(), Align: p.Align()}
}

// Builtins lists the predefined witnesses in declaration order.
func Builtins() []Descriptor {
	return []Descriptor{
		describe("Empty", Empty),
		describe("I8", I8),
		describe("U8", U8),
		describe("I16", I16),
		describe("U16", U16),
		describe("I32", I32),
		describe("U32", U32),
		describe("F32", F32),
		describe("I64", I64),
		describe("U64", U64),
		describe("F64", F64),
		describe("RGB", RGB),
		describe("RGBA", RGBA),
		describe("Max", Max),
	}
}
