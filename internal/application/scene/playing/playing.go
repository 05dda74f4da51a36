// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/platformer/internal/application/level"
	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Colors for overlays
var (
	colorPauseOverlay   = color.RGBA{0, 0, 0, 128}
	colorRespawnOverlay = color.RGBA{100, 0, 0, 120}
)

const controlsText = "A/D: Move | Space: Jump | J: Fire | W/S: Aim | U/I: Zoom | ESC: Pause | F5: Save replay"

// Target is the renderer the level draws through. It is bound to each
// frame's screen before drawing.
type Target interface {
	level.Renderer
	Bind(dst *ebiten.Image)
}

// Options configures a Playing scene. Only Deps is required.
type Options struct {
	Deps   level.Deps
	Target Target // nil skips drawing the level

	// Loader and Watcher enable hot reload of level.yaml and maps
	Loader  *config.Loader
	Watcher *config.Watcher

	// RecordPath enables input recording; the extension picks the format
	RecordPath string

	// Input polls the input for one tick. Defaults to the keyboard.
	Input func() entity.Input
}

// Playing is the main gameplay scene
type Playing struct {
	cfg     *config.LevelConfig
	opts    Options
	level   *level.Level
	state   state.GameState
	screenW int
	screenH int
	dt      float64
	frame   int64

	// Input recording
	recorder *replay.Recorder
}

// New loads and initializes the configured level and creates the scene.
func New(cfg *config.LevelConfig, opts Options) (*Playing, error) {
	if opts.Input == nil {
		opts.Input = system.GetInput
	}

	p := &Playing{
		cfg:     cfg,
		opts:    opts,
		state:   state.StateLoading,
		screenW: cfg.Display.ScreenWidth,
		screenH: cfg.Display.ScreenHeight,
		dt:      tickLength(cfg),
	}

	lvl, err := loadLevel(cfg, opts.Deps)
	if err != nil {
		return nil, err
	}
	if err := lvl.Init(); err != nil {
		lvl.Unload()
		return nil, err
	}
	p.level = lvl
	p.state = state.StatePlaying

	if opts.RecordPath != "" {
		p.startRecording()
	}

	return p, nil
}

func tickLength(cfg *config.LevelConfig) float64 {
	if cfg.Display.Framerate <= 0 {
		return 1.0 / float64(ebiten.DefaultTPS)
	}
	return 1.0 / float64(cfg.Display.Framerate)
}

func loadLevel(cfg *config.LevelConfig, deps level.Deps) (*level.Level, error) {
	lvl := level.New(cfg, deps)
	if err := lvl.Load(); err != nil {
		return nil, err
	}
	return lvl, nil
}

// Update proceeds the game state (implements scene.Scene). The level is
// stepped with the configured fixed tick, not dt.
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.checkReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.TogglePause()
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	if !p.state.Simulating() {
		return nil, nil
	}

	p.Step(p.opts.Input())
	return nil, nil // nil = stay on this scene
}

// Step records in and advances the level one tick. When the respawn
// countdown runs out the level is restarted.
func (p *Playing) Step(in entity.Input) {
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	p.frame++
	if p.level.Update(p.dt, p.frame, in) == level.SignalExit {
		p.restart()
		return
	}

	if p.level.Session().Respawning() {
		p.state = state.StateRespawning
	} else {
		p.state = state.StatePlaying
	}
}

// TogglePause switches between playing and paused. Other states are left
// alone.
func (p *Playing) TogglePause() {
	switch p.state {
	case state.StatePaused:
		p.state = state.StatePlaying
		if p.level.Session().Respawning() {
			p.state = state.StateRespawning
		}
	case state.StatePlaying, state.StateRespawning:
		p.state = state.StatePaused
	}
}

func (p *Playing) restart() {
	p.level.Free()
	if err := p.level.Init(); err != nil {
		log.Printf("Failed to restart level: %v", err)
		return
	}
	p.frame = 0
	p.state = state.StatePlaying
	log.Printf("Level restarted")
}

func (p *Playing) checkReload() {
	w := p.opts.Watcher
	if w == nil {
		return
	}

	select {
	case err := <-w.Errors:
		log.Printf("Config watcher error: %v", err)
	default:
	}

	if changed := w.Drain(); len(changed) > 0 {
		log.Printf("Config changed: %v", changed)
		p.Reload()
	}
}

// Reload reads the configuration again and replaces the running level.
// On any error the current level keeps running.
func (p *Playing) Reload() {
	if p.opts.Loader == nil {
		return
	}

	cfg, err := p.opts.Loader.LoadLevel()
	if err != nil {
		log.Printf("Reload failed: %v", err)
		return
	}
	lvl, err := loadLevel(cfg, p.opts.Deps)
	if err != nil {
		log.Printf("Reload failed: %v", err)
		return
	}

	p.level.Free()
	p.level.Unload()

	p.cfg = cfg
	p.level = lvl
	if err := lvl.Init(); err != nil {
		log.Printf("Reload failed: %v", err)
		return
	}
	p.dt = tickLength(cfg)
	p.frame = 0
	if p.state != state.StatePaused {
		p.state = state.StatePlaying
	}

	// the old inputs no longer replay against the new level
	if p.recorder != nil {
		p.startRecording()
	}

	log.Printf("Level reloaded (map=%s)", cfg.Level.Map)
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	if p.opts.Target != nil {
		p.opts.Target.Bind(screen)
		p.level.Draw(p.opts.Target)
	}

	p.drawHUD(screen)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateRespawning:
		p.drawRespawnOverlay(screen)
	}
}

func (p *Playing) hudText() string {
	s := p.level.Session()
	return fmt.Sprintf("Lives: %d  Score: %d  Objects: %d", max(s.Lives, 0), s.Score, p.level.Pool().Len())
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, p.hudText(), 10, 10)
	ebitenutil.DebugPrintAt(screen, controlsText, 10, p.screenH-20)
	if p.recorder != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REC %d", p.recorder.FrameCount()), p.screenW-80, 10)
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorPauseOverlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawRespawnOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorRespawnOverlay)

	text := fmt.Sprintf("YOU DIED\n\nScore: %d\n\nRestarting in %.1f", p.level.Session().Score, p.level.Session().RespawnCountdown)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit saves the recording and releases the level
func (p *Playing) OnExit() {
	p.saveRecording()
	p.level.Free()
	p.level.Unload()
}

// Level returns the running level
func (p *Playing) Level() *level.Level {
	return p.level
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Frame returns the number of ticks since the level was last initialized
func (p *Playing) Frame() int64 {
	return p.frame
}
