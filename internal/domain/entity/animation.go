package entity

// Clip selects a row/column range on a single-row-per-clip sprite sheet.
type Clip struct {
	BeginX   int // first column
	BeginY   int // row
	EndFrame int // index of the last frame in the clip
}

// Animation holds sprite-sheet playback state.
// Offsets are in texture units (fraction of the sheet).
type Animation struct {
	Enabled bool
	Frames  int // index of the last frame, so Frames+1 frames in the cycle
	Current int
	Step    float64 // offset between two frames

	BaseX   float64
	OffsetX float64
	OffsetY float64
}

// Advance moves to the next frame, wrapping to 0 after Frames.
func (a *Animation) Advance() {
	if !a.Enabled {
		return
	}
	a.Current++
	if a.Current > a.Frames {
		a.Current = 0
	}
	a.OffsetX = a.BaseX + float64(a.Current)*a.Step
}

// Play switches to clip c. The current frame index is kept; it wraps on the
// next Advance if it is past the new clip's end.
func (a *Animation) Play(c Clip) {
	a.BaseX = float64(c.BeginX) * a.Step
	a.OffsetY = float64(c.BeginY) * a.Step
	a.Frames = c.EndFrame
}
