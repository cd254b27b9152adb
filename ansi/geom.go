package ansi

import (
	"fmt"
	"image"
)

// Point represents an ANSI screen point, relative to a 1,1 column,row origin.
//
// This naturally aligns with the requirements of parsing and building ANSI
// control sequences (e.g. for cursor positioning and mouse events), while
// allowing the 1,1-origin semantic to be type checked.
type Point struct{ image.Point }

// ZP is the zero point value; it is not a valid point, but useful only for
// signalling an undefined point.
var ZP Point

// Pt constructs an ANSI screen point; panics if either of the x or y
// components is not a counting number (> 0).
func Pt(x, y int) Point {
	if x < 1 || y < 1 {
		panic("invalid ansi.Point value")
	}
	return Point{image.Pt(x, y)}
}

// PtFromImage creates an ANSI screen point from an image point, converting from
// 0,0 origin to 1,1 origin.
// Panics if the return value would have been not Point.Valid().
func PtFromImage(p image.Point) Point {
	if p.X < 0 || p.Y < 0 {
		panic("out of bounds image.Point value")
	}
	return Point{p.Add(image.Pt(1, 1))}
}

// Valid returns true only if both X and Y components are >= 1.
func (p Point) Valid() bool {
	return p.X >= 1 && p.Y >= 1
}

// ToImage converts to a normal 0,0 origin image point.
// Panics if the point is not Valid().
func (p Point) ToImage() image.Point {
	if !p.Valid() {
		panic("invalid ansi.Point value")
	}
	return p.Point.Sub(image.Pt(1, 1))
}

// Add the given relative image point to a copy of the receiver screen point,
// returning the copy.
func (p Point) Add(q image.Point) Point {
	return Point{p.Point.Add(q)}
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
