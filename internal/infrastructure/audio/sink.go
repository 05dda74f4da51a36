package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the rate of the shared audio context
const SampleRate = 44100

var (
	errNoContext   = errors.New("audio: no context")
	errUnsupported = errors.New("audio: unsupported clip format")
)

type playerKey struct {
	clip string
	loop bool
}

// Sink plays clips from an asset filesystem. Players are created on first
// use and cached; a clip that fails to load is reported once and then
// ignored.
type Sink struct {
	ctx     *audio.Context
	fsys    fs.FS
	volume  float64
	players map[playerKey]*audio.Player
	failed  map[string]bool
}

// NewSink creates a sink. ctx may be nil, in which case nothing plays.
func NewSink(ctx *audio.Context, fsys fs.FS, volume float64) *Sink {
	return &Sink{
		ctx:     ctx,
		fsys:    fsys,
		volume:  volume,
		players: make(map[playerKey]*audio.Player),
		failed:  make(map[string]bool),
	}
}

// Play starts clip from the beginning. Looped clips repeat until StopAll.
func (s *Sink) Play(clip string, loop bool) {
	if clip == "" || s.failed[clip] {
		return
	}

	key := playerKey{clip: clip, loop: loop}
	p, ok := s.players[key]
	if !ok {
		var err error
		p, err = s.newPlayer(clip, loop)
		if err != nil {
			s.failed[clip] = true
			if !errors.Is(err, errNoContext) {
				log.Printf("audio: %v", err)
			}
			return
		}
		s.players[key] = p
	}

	if err := p.Rewind(); err != nil {
		log.Printf("audio: rewind %s: %v", clip, err)
		return
	}
	p.Play()
}

// StopAll pauses every player
func (s *Sink) StopAll() {
	for _, p := range s.players {
		p.Pause()
	}
}

// Close releases every player
func (s *Sink) Close() error {
	var errs []error
	for key, p := range s.players {
		if err := p.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", key.clip, err))
		}
		delete(s.players, key)
	}
	return errors.Join(errs...)
}

// Failed reports whether clip could not be loaded
func (s *Sink) Failed(clip string) bool {
	return s.failed[clip]
}

func (s *Sink) newPlayer(clip string, loop bool) (*audio.Player, error) {
	b, err := fs.ReadFile(s.fsys, clip)
	if err != nil {
		return nil, fmt.Errorf("failed to read clip %s: %w", clip, err)
	}
	if s.ctx == nil {
		return nil, errNoContext
	}

	stream, length, err := decode(clip, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, length)
	}

	p, err := s.ctx.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create player for %s: %w", clip, err)
	}
	p.SetVolume(s.volume)
	return p, nil
}

func decode(clip string, r io.ReadSeeker) (io.ReadSeeker, int64, error) {
	switch strings.ToLower(path.Ext(clip)) {
	case ".wav":
		st, err := wav.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, 0, fmt.Errorf("decode wav %q: %w", clip, err)
		}
		return st, st.Length(), nil
	case ".ogg":
		st, err := vorbis.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, 0, fmt.Errorf("decode ogg %q: %w", clip, err)
		}
		return st, st.Length(), nil
	default:
		return nil, 0, fmt.Errorf("%w: %s", errUnsupported, clip)
	}
}
