// Package geom provides the axis-aligned box overlap test used by the tile
// grid and by object-vs-object collision.
package geom

import (
	"math"
	"strings"
)

// Flags is a set of collision sides. Sides combine with bitwise OR.
type Flags uint8

const (
	Left   Flags = 1 << 0 // 1
	Right  Flags = 1 << 1 // 2
	Top    Flags = 1 << 2 // 4
	Bottom Flags = 1 << 3 // 8
)

// Has reports whether every side in f2 is set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2 && f2 != 0
}

// String returns the set sides joined by "|", or "None".
func (f Flags) String() string {
	if f == 0 {
		return "None"
	}
	var parts []string
	if f&Left != 0 {
		parts = append(parts, "Left")
	}
	if f&Right != 0 {
		parts = append(parts, "Right")
	}
	if f&Top != 0 {
		parts = append(parts, "Top")
	}
	if f&Bottom != 0 {
		parts = append(parts, "Bottom")
	}
	return strings.Join(parts, "|")
}

// Box is an axis-aligned box given by its center and size.
type Box struct {
	X, Y float64 // center
	W, H float64
}

// UnitBox returns a 1x1 box centered at (x, y).
func UnitBox(x, y float64) Box {
	return Box{X: x, Y: y, W: 1, H: 1}
}

// Overlap tests a against b and reports which side of a is touching b.
//
// Any overlap sets exactly one horizontal and one vertical flag, whatever
// the penetration depth on each axis: Left when a's center is right of b's,
// Right otherwise; Bottom when a's center is above b's, Top otherwise.
// Boxes that only touch edges do not overlap.
func Overlap(a, b Box) Flags {
	dx := a.X - b.X
	dy := a.Y - b.Y

	halfW := a.W/2 + b.W/2
	halfH := a.H/2 + b.H/2

	if math.Abs(dx) >= halfW || math.Abs(dy) >= halfH {
		return 0
	}

	var f Flags
	if dx > 0 {
		f |= Left
	} else {
		f |= Right
	}
	if dy > 0 {
		f |= Bottom
	} else {
		f |= Top
	}
	return f
}

// SnapToCell moves v to the middle of the cell it was truncated into
// (4.32 -> 4.5, 4.89 -> 4.5).
func SnapToCell(v float64) float64 {
	return math.Trunc(v) + 0.5
}
