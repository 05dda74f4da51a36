package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want Flags
	}{
		{"disjoint horizontally", UnitBox(0, 0), UnitBox(2, 0), 0},
		{"disjoint vertically", UnitBox(0, 0), UnitBox(0, 3), 0},
		{"edges touching", UnitBox(0, 0), UnitBox(1, 0), 0},
		{"a right of and above b", UnitBox(1.5, 1.5), UnitBox(1, 1), Left | Bottom},
		{"a left of and below b", UnitBox(0.5, 0.5), UnitBox(1, 1), Right | Top},
		{"same center", UnitBox(1, 1), UnitBox(1, 1), Right | Top},
		{"a directly above b", UnitBox(1, 1.9), UnitBox(1, 1), Right | Bottom},
		{"shallow corner graze still sets both axes", UnitBox(1.99, 1.01), UnitBox(1, 1), Left | Bottom},
		{"sizes add up", Box{X: 0, Y: 0, W: 0.5, H: 0.5}, Box{X: 0.7, Y: 0, W: 1, H: 1}, Right | Top},
		{"small boxes miss", Box{X: 0, Y: 0, W: 0.5, H: 0.5}, Box{X: 0.8, Y: 0, W: 1, H: 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlap(tt.a, tt.b))
		})
	}
}

func TestOverlap_SwapInvertsDirection(t *testing.T) {
	boxes := []Box{
		UnitBox(0, 0),
		UnitBox(0.4, 0.3),
		UnitBox(-0.6, 0.2),
		{X: 3, Y: 3, W: 0.5, H: 0.5},
		{X: 0.2, Y: -0.9, W: 2, H: 1},
	}

	for i, a := range boxes {
		for j, b := range boxes {
			ab := Overlap(a, b)
			ba := Overlap(b, a)
			assert.Equal(t, ab != 0, ba != 0, "detection must be symmetric (%d,%d)", i, j)

			if ab == 0 || a.X == b.X || a.Y == b.Y {
				continue
			}
			if ab&Left != 0 {
				assert.NotZero(t, ba&Right)
			} else {
				assert.NotZero(t, ba&Left)
			}
			if ab&Bottom != 0 {
				assert.NotZero(t, ba&Top)
			} else {
				assert.NotZero(t, ba&Bottom)
			}
		}
	}
}

func TestFlags_Has(t *testing.T) {
	f := Left | Bottom
	assert.True(t, f.Has(Left))
	assert.True(t, f.Has(Bottom))
	assert.True(t, f.Has(Left|Bottom))
	assert.False(t, f.Has(Right))
	assert.False(t, f.Has(Left|Top))
	assert.False(t, f.Has(0))
}

func TestFlags_String(t *testing.T) {
	assert.Equal(t, "None", Flags(0).String())
	assert.Equal(t, "Left|Bottom", (Left | Bottom).String())
	assert.Equal(t, "Left|Right|Top|Bottom", (Left | Right | Top | Bottom).String())
}

func TestFlagValues(t *testing.T) {
	assert.Equal(t, Flags(1), Left)
	assert.Equal(t, Flags(2), Right)
	assert.Equal(t, Flags(4), Top)
	assert.Equal(t, Flags(8), Bottom)
}

func TestSnapToCell(t *testing.T) {
	assert.InDelta(t, 4.5, SnapToCell(4.32), 1e-9)
	assert.InDelta(t, 4.5, SnapToCell(4.89), 1e-9)
	assert.InDelta(t, 0.5, SnapToCell(0), 1e-9)
}
