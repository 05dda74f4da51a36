package playing

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/younwookim/platformer/internal/application/replay"
)

// startRecording begins a new recording of the current level
func (p *Playing) startRecording() {
	p.recorder = replay.NewRecorder(p.cfg.Level.Map, p.dt)
	log.Printf("Recording enabled: %s (map: %s)", p.recordFilename(), p.cfg.Level.Map)
}

// recordFilename is the configured path, or a timestamped name in the
// same format.
func (p *Playing) recordFilename() string {
	if p.opts.RecordPath != "" {
		return p.opts.RecordPath
	}
	return replay.GenerateFilename(".json")
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename()
	err := p.recorder.Save(filename)
	switch {
	case errors.Is(err, replay.ErrNoFrames):
		return
	case err != nil:
		log.Printf("Failed to save recording: %v", err)
	default:
		log.Printf("Recording saved: %s (%d frames, %s)", filename, p.recorder.FrameCount(), filepath.Ext(filename))
	}
}

// Recorder returns the active recorder, nil when not recording
func (p *Playing) Recorder() *replay.Recorder {
	return p.recorder
}
