package entity

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/platformer/internal/domain/geom"
)

// Vec2 is a map-space vector. One unit is one tile.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Mul returns v scaled by s
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Body is the physical state shared by every object kind.
// Position is in map space, y grows upward.
type Body struct {
	Pos, Vel    Vec2
	Scale       Vec2    // sign of Scale.X is the facing
	Orientation float64 // radians, 0 is 3 o'clock
	Airborne    bool

	// Transform maps model space [-0.5,0.5] to map space.
	// Recomputed once per tick by UpdateTransform.
	Transform ebiten.GeoM
}

// FacingRight reports whether the body faces +x.
func (b *Body) FacingRight() bool {
	return b.Scale.X >= 0
}

// Box returns the body's collision box (size taken from |Scale|).
func (b *Body) Box() geom.Box {
	return geom.Box{X: b.Pos.X, Y: b.Pos.Y, W: math.Abs(b.Scale.X), H: math.Abs(b.Scale.Y)}
}

// UnitBox returns a 1x1 box at the body's position.
func (b *Body) UnitBox() geom.Box {
	return geom.UnitBox(b.Pos.X, b.Pos.Y)
}

// Integrate advances position by velocity over dt. Gravity is applied
// first when the body is airborne.
func (b *Body) Integrate(dt, gravity float64) {
	if b.Airborne {
		b.Vel.Y += gravity * dt
	}
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
}

// UpdateTransform recomputes Transform as translate * scale * rotate.
func (b *Body) UpdateTransform() {
	var m ebiten.GeoM
	m.Rotate(b.Orientation)
	m.Scale(b.Scale.X, b.Scale.Y)
	m.Translate(b.Pos.X, b.Pos.Y)
	b.Transform = m
}
