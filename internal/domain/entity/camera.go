package entity

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Zoom limits
const (
	MinZoom = 0.5
	MaxZoom = 2.0
)

// Region is an inclusive range of grid cells
type Region struct {
	MinCol, MaxCol int
	MinRow, MaxRow int
}

// Contains reports whether (col, row) lies inside r
func (r Region) Contains(col, row int) bool {
	return col >= r.MinCol && col <= r.MaxCol && row >= r.MinRow && row <= r.MaxRow
}

// Camera frames the view around the player in map space.
type Camera struct {
	Pos          Vec2
	ViewW, ViewH float64 // view size in map units at zoom 1
	Zoom         float64
}

// NewCamera creates a camera with the given view size at zoom 1
func NewCamera(viewW, viewH float64) *Camera {
	return &Camera{ViewW: viewW, ViewH: viewH, Zoom: 1}
}

// Reset returns the camera to the origin at zoom 1
func (c *Camera) Reset() {
	c.Pos = Vec2{}
	c.Zoom = 1
}

// Follow centers the camera on p, snapped to whole cells, keeping the
// half-view inside the map on every side the map is large enough for.
func (c *Camera) Follow(p Vec2, mapW, mapH int) {
	c.Pos.X = follow(p.X, c.ViewW, float64(mapW))
	c.Pos.Y = follow(p.Y, c.ViewH, float64(mapH))
}

func follow(p, view, size float64) float64 {
	half := math.Floor(view / 2)
	v := math.Max(math.Floor(p), half)
	if size >= view {
		v = math.Min(v, size-half)
	}
	return v
}

// ZoomBy changes the zoom by delta, clamped to [MinZoom, MaxZoom]
func (c *Camera) ZoomBy(delta float64) {
	c.Zoom = math.Min(MaxZoom, math.Max(MinZoom, c.Zoom+delta))
}

// Bounds returns the cells in and just around the view. Rows are counted
// from the top of the map, as in the tile data.
func (c *Camera) Bounds(mapH int) Region {
	z := math.Min(c.zoom(), 1)
	hw := math.Ceil(c.ViewW/2) / z
	hh := math.Ceil(c.ViewH/2) / z
	top := float64(mapH) - c.Pos.Y

	return Region{
		MinCol: int(math.Floor(c.Pos.X - hw)),
		MaxCol: int(math.Ceil(c.Pos.X + hw)),
		MinRow: int(math.Floor(top-hh)) - 1,
		MaxRow: int(math.Ceil(top + hh)),
	}
}

// Visible reports whether the cell containing p is inside Bounds
func (c *Camera) Visible(p Vec2, mapH int) bool {
	col := int(math.Floor(p.X))
	row := int(math.Floor(float64(mapH) - p.Y))
	return c.Bounds(mapH).Contains(col, row)
}

// View returns the map-space to screen-space transform. Map y grows
// upward, screen y downward.
func (c *Camera) View(screenW, screenH int) ebiten.GeoM {
	z := c.zoom()
	sx := float64(screenW) / c.ViewW * z
	sy := float64(screenH) / c.ViewH * z

	var m ebiten.GeoM
	m.Translate(-c.Pos.X, -c.Pos.Y)
	m.Scale(sx, -sy)
	m.Translate(float64(screenW)/2, float64(screenH)/2)
	return m
}

func (c *Camera) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}
