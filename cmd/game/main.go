package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/younwookim/platformer/internal/application/game"
	"github.com/younwookim/platformer/internal/application/level"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/infrastructure/audio"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/render"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json or replay.msgpack)")
	replayFlag := flag.String("replay", "", "Run a recorded replay headlessly and print the result")
	configFlag := flag.String("config", "", "Load configs from this directory instead of the embedded ones")
	watchFlag := flag.Bool("watch", false, "Reload level.yaml and maps when they change (requires -config)")
	flag.Parse()

	loader, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}

	cfg, err := loader.LoadLevel()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		res, err := runReplay(cfg, loader, *replayFlag)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		printReplayResult(res)
		return
	}

	var watcher *config.Watcher
	if *watchFlag {
		if *configFlag == "" {
			log.Fatalf("-watch needs -config DIR")
		}
		watcher, err = config.WatchLoader(loader)
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		defer func() { _ = watcher.Close() }()
		log.Printf("Watching %s for changes", loader.BasePath())
	}

	assets := render.NewAssets(loader.Assets())
	sink := audio.NewSink(ebitenaudio.NewContext(audio.SampleRate), loader.Assets(), cfg.Audio.Volume)
	defer func() {
		if err := sink.Close(); err != nil {
			log.Printf("Failed to close audio: %v", err)
		}
	}()

	scene, err := playing.New(cfg, playing.Options{
		Deps: level.Deps{
			Assets: assets,
			Audio:  sink,
			Maps:   loader,
		},
		Target:     render.NewRenderer(assets),
		Loader:     loader,
		Watcher:    watcher,
		RecordPath: *recordFlag,
	})
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	display := cfg.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate)
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Printf("Game stopped: %v", err)
	}
}

// newLoader opens dir, or the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
