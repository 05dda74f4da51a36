package replay

import (
	"fmt"
	"os"
	"time"

	"github.com/younwookim/platformer/internal/domain/entity"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file. The encoding follows the file
// extension (see FormatFor).
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := Decode(file, FormatFor(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (entity.Input, bool) {
	if r.frame >= len(r.data.Frames) {
		return entity.Input{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Map returns the name of the recorded map
func (r *Replayer) Map() string {
	return r.data.Map
}

// DT returns the recorded tick length
func (r *Replayer) DT() float64 {
	return r.data.DT
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, mapName string) ReplayData {
	data := ReplayData{
		Version:   Version,
		Map:       mapName,
		DT:        1.0 / 60,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := range frames {
		data.Frames[i] = FrameInput{N: i}
	}

	return data
}
