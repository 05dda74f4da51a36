package main

import (
	"fmt"
	"log"
	"math"

	"github.com/younwookim/platformer/internal/application/level"
	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// replayResult is the level state after the last recorded frame
type replayResult struct {
	Map     string
	Frames  int
	Score   int
	Lives   int
	Objects int
}

// runReplay plays the recording at path through a headless level built from
// cfg and maps. The recorded map and tick length override cfg.
func runReplay(cfg *config.LevelConfig, maps level.MapSource, path string) (replayResult, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replayResult{}, err
	}
	if data.Version != replay.Version {
		log.Printf("Replay version %q, expected %q", data.Version, replay.Version)
	}

	c := *cfg
	if data.Map != "" {
		c.Level.Map = data.Map
	}
	if data.DT > 0 {
		c.Display.Framerate = int(math.Round(1 / data.DT))
	}

	p, err := playing.New(&c, playing.Options{Deps: level.Headless(maps)})
	if err != nil {
		return replayResult{}, err
	}
	defer p.OnExit()

	r := replay.NewReplayer(*data)
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		p.Step(in)
	}

	s := p.Level().Session()
	return replayResult{
		Map:     c.Level.Map,
		Frames:  r.TotalFrames(),
		Score:   s.Score,
		Lives:   s.Lives,
		Objects: p.Level().Pool().Len(),
	}, nil
}

func printReplayResult(res replayResult) {
	fmt.Printf("map=%s frames=%d score=%d lives=%d objects=%d\n",
		res.Map, res.Frames, res.Score, res.Lives, res.Objects)
}
