package entity

import (
	"errors"
	"fmt"
	"math"

	"github.com/younwookim/platformer/internal/domain/geom"
)

// ErrInvalidGrid is returned by NewGrid for empty or ragged tile data.
var ErrInvalidGrid = errors.New("entity: invalid tile grid")

// Tile ids as they appear in map files.
// 1-4 are background variants and block movement; 5-7 are spawn markers.
const (
	TileEmpty      = 0
	TileBlockFirst = 1
	TileBlockLast  = 4
	TilePlayer     = 5
	TileEnemy      = 6
	TileItem       = 7
)

// IsBlockingTile reports whether tile id blocks movement
func IsBlockingTile(id int) bool {
	return id >= TileBlockFirst && id <= TileBlockLast
}

// Grid is the level's tile map plus the derived collision map.
// Row 0 is the top row of the map file; map-space y grows upward, so
// row r spans y in [Height-r-1, Height-r).
// Both arrays are immutable after NewGrid.
type Grid struct {
	width, height int
	tiles         [][]int
	blocking      [][]bool
}

// NewGrid builds a grid from row-major tile ids, top row first.
func NewGrid(tiles [][]int) (*Grid, error) {
	height := len(tiles)
	if height == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}
	width := len(tiles[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidGrid)
	}

	g := &Grid{
		width:    width,
		height:   height,
		tiles:    make([][]int, height),
		blocking: make([][]bool, height),
	}
	for r, row := range tiles {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidGrid, r, len(row), width)
		}
		g.tiles[r] = append([]int(nil), row...)
		g.blocking[r] = make([]bool, width)
		for c, id := range row {
			g.blocking[r][c] = IsBlockingTile(id)
		}
	}
	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (col, row) is inside the grid
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// Tile returns the tile id at (col, row), or TileEmpty outside the grid
func (g *Grid) Tile(col, row int) int {
	if !g.InBounds(col, row) {
		return TileEmpty
	}
	return g.tiles[row][col]
}

// Blocking reports whether (col, row) blocks movement.
// Cells outside the grid never block.
func (g *Grid) Blocking(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	return g.blocking[row][col]
}

// CellCenter returns the map-space center of (col, row)
func (g *Grid) CellCenter(col, row int) Vec2 {
	return Vec2{X: float64(col) + 0.5, Y: float64(g.height-row) - 0.5}
}

// CellAt returns the cell containing map-space point (x, y)
func (g *Grid) CellAt(x, y float64) (col, row int) {
	return int(math.Floor(x)), int(math.Floor(float64(g.height) - y))
}

// Query tests a unit box centered at (x, y) against the blocking cells of
// the plus-shaped neighbourhood around it (center, left, right, above,
// below). The cell below can only report Bottom and the cell above only
// Top; cells on the same row report Left or Right.
//
// airborne is true iff the cell directly below exists and does not block.
func (g *Grid) Query(x, y float64) (flags geom.Flags, airborne bool) {
	col, row := g.CellAt(x, y)
	self := geom.UnitBox(x, y)

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr != 0 && dc != 0 {
				continue
			}
			r, c := row+dr, col+dc
			if !g.Blocking(c, r) {
				continue
			}

			center := g.CellCenter(c, r)
			hit := geom.Overlap(self, geom.UnitBox(center.X, center.Y))

			switch {
			case dr == 1:
				flags |= hit & geom.Bottom
			case dr == -1:
				flags |= hit & geom.Top
			case hit&geom.Right != 0:
				flags |= geom.Right
			case hit&geom.Left != 0:
				flags |= geom.Left
			}
		}
	}

	airborne = g.InBounds(col, row+1) && !g.blocking[row+1][col]
	return flags, airborne
}
