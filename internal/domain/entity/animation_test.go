package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimation_Advance(t *testing.T) {
	t.Run("wraps to zero after Frames+1 advances", func(t *testing.T) {
		a := Animation{Enabled: true, Frames: 3, Step: 0.25}
		for range 4 {
			a.Advance()
		}
		assert.Equal(t, 0, a.Current)
		assert.InDelta(t, 0.0, a.OffsetX, 1e-9)
	})

	t.Run("cycle length is Frames+1 from any start", func(t *testing.T) {
		for start := 0; start <= 5; start++ {
			a := Animation{Enabled: true, Frames: 5, Current: start, Step: 0.125}
			for range 6 {
				a.Advance()
			}
			assert.Equal(t, start, a.Current, "start=%d", start)
		}
	})

	t.Run("offset follows base and step", func(t *testing.T) {
		a := Animation{Enabled: true, Frames: 7, Step: 0.125}
		a.Play(Clip{BeginX: 2, BeginY: 6, EndFrame: 6})
		a.Advance()

		assert.Equal(t, 1, a.Current)
		assert.InDelta(t, 0.25+0.125, a.OffsetX, 1e-9)
		assert.InDelta(t, 0.75, a.OffsetY, 1e-9)
	})

	t.Run("disabled animation stays put", func(t *testing.T) {
		a := Animation{Frames: 3, Current: 1, Step: 0.5}
		a.Advance()
		assert.Equal(t, 1, a.Current)
		assert.Zero(t, a.OffsetX)
	})

	t.Run("single frame clip stays on frame zero", func(t *testing.T) {
		a := Animation{Enabled: true, Frames: 0, Step: 0.125}
		a.Advance()
		a.Advance()
		assert.Equal(t, 0, a.Current)
	})
}
