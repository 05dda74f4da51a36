// Package level runs a single playable level: it owns the tile grid, the
// object pool, the player session and the camera, and steps them through
// the per-frame pipeline.
package level

import (
	"errors"
	"fmt"
	"log"

	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/render"
)

// ErrNotLoaded is returned when a level is used before Load
var ErrNotLoaded = errors.New("level: not loaded")

// Signal is the result of one Update
type Signal int

const (
	SignalNone Signal = iota
	// SignalExit asks the host to leave the level. It fires on the tick the
	// respawn countdown runs out.
	SignalExit
)

// String returns the string representation of the signal
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "None"
	case SignalExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

const zoomStep = 0.1

// sprite is a loaded mesh/texture pair
type sprite struct {
	mesh render.MeshHandle
	tex  render.TextureHandle
}

// Level is the context object for one level. All state lives here and is
// mutated only by Update, Init and Free.
type Level struct {
	cfg  *config.LevelConfig
	deps Deps

	grid    *entity.Grid
	pool    *entity.Pool
	session entity.Session
	camera  *entity.Camera

	behavior  *system.BehaviorSystem
	physics   *system.PhysicsSystem
	animation *system.AnimationSystem
	combat    *system.CombatSystem
	input     *system.InputSystem

	tiles   sprite
	sprites [4]sprite // indexed by entity.Kind
}

// New creates an unloaded level
func New(cfg *config.LevelConfig, deps Deps) *Level {
	if deps.Audio == nil {
		deps.Audio = nopAudio{}
	}
	if deps.Assets == nil {
		deps.Assets = &nopAssets{}
	}
	return &Level{cfg: cfg, deps: deps}
}

// Load reads the map and creates the level's static assets
func (l *Level) Load() error {
	if l.deps.Maps == nil {
		return fmt.Errorf("level: load: no map source")
	}

	md, err := l.deps.Maps.LoadMap(l.cfg.Level.Map)
	if err != nil {
		return fmt.Errorf("level: load: %w", err)
	}
	grid, err := entity.NewGrid(md.Tiles)
	if err != nil {
		return fmt.Errorf("level: load %s: %w", l.cfg.Level.Map, err)
	}

	l.grid = grid
	l.pool = entity.NewPool(l.cfg.Level.PoolCapacity)
	l.camera = entity.NewCamera(l.cfg.Level.ViewWidth, l.cfg.Level.ViewHeight)

	l.behavior = system.NewBehaviorSystem(&l.cfg.Physics, grid)
	l.physics = system.NewPhysicsSystem(&l.cfg.Physics)
	l.animation = system.NewAnimationSystem(l.cfg.Level.AnimationDivisor)
	l.combat = system.NewCombatSystem(l.cfg, l.pool, &l.session, l.deps.Audio)
	l.input = system.NewInputSystem(l.cfg, l.pool, &l.session, l.deps.Audio)

	sp := &l.cfg.Sprites
	l.tiles = l.loadSprite(sp.Tiles.Texture, sp.Tiles.UV)
	l.sprites[entity.KindPlayer] = l.loadSprite(sp.Player.Texture, sp.Player.UV)
	l.sprites[entity.KindEnemy] = l.loadSprite(sp.Enemy.Texture, sp.Enemy.UV)
	l.sprites[entity.KindItem] = l.loadSprite(sp.Item.Texture, sp.Item.UV)
	l.sprites[entity.KindShot] = l.loadSprite(sp.Shot.Texture, sp.Shot.UV)

	log.Printf("level: load (map=%s %dx%d)", l.cfg.Level.Map, grid.Width(), grid.Height())
	return nil
}

func (l *Level) loadSprite(texture string, uv [4]float64) sprite {
	return sprite{
		mesh: l.deps.Assets.CreateMesh(render.Quad(uv)),
		tex:  l.deps.Assets.LoadTexture(texture),
	}
}

// Init populates the pool from the map's spawn markers and resets the
// session and camera.
func (l *Level) Init() error {
	if l.grid == nil {
		return ErrNotLoaded
	}

	l.pool.Reset()
	l.session.Reset(l.cfg.Player.Lives)
	l.camera.Reset()

	res := system.SpawnObjects(l.cfg, l.grid, l.pool)
	l.session.Player = res.Player
	l.session.Start = res.Start
	if res.Skipped > 0 {
		log.Printf("level: pool full, skipped %d spawns", res.Skipped)
	}
	if res.Player.IsZero() {
		log.Printf("level: map %s has no player spawn", l.cfg.Level.Map)
	}

	l.camera.Follow(res.Start, l.grid.Width(), l.grid.Height())
	l.updateTransforms()

	l.deps.Audio.Play(l.cfg.Audio.Music, true)

	log.Printf("level: init (objects=%d)", l.pool.Len())
	return nil
}

// Update runs one tick of the pipeline. The stage order is fixed.
func (l *Level) Update(dt float64, frame int64, in entity.Input) Signal {
	if l.grid == nil {
		return SignalNone
	}
	sig := SignalNone
	mapW, mapH := l.grid.Width(), l.grid.Height()

	// input, or the respawn countdown while the player is dead
	if !l.session.Respawning() {
		l.input.ApplyPlayer(in, dt)
	} else {
		l.session.RespawnCountdown -= dt
		if l.session.RespawnCountdown <= 0 {
			sig = SignalExit
		}
	}
	if in.ZoomIn {
		l.camera.ZoomBy(zoomStep)
	}
	if in.ZoomOut {
		l.camera.ZoomBy(-zoomStep)
	}

	// enemy and shot behavior
	for obj := range l.pool.All() {
		switch obj.Kind {
		case entity.KindEnemy:
			l.behavior.Patrol(obj)
		case entity.KindShot:
			l.combat.ResolveShot(obj)
		}
	}

	l.physics.Update(l.pool, dt)

	player := l.Player()
	if player != nil {
		l.camera.Follow(player.Pos, mapW, mapH)
	}

	l.combat.ExpireShots(l.camera, mapH, dt)

	l.animation.Tick(l.pool, frame)

	if player != nil {
		l.behavior.ResolveTiles(player)
	}

	l.combat.Touch()

	l.combat.TickMortality(dt)

	l.updateTransforms()

	return sig
}

func (l *Level) updateTransforms() {
	for obj := range l.pool.All() {
		obj.UpdateTransform()
	}
}

// Free deactivates every object and stops the level's sounds
func (l *Level) Free() {
	if l.pool != nil {
		l.pool.Reset()
	}
	if l.camera != nil {
		l.camera.Reset()
	}
	l.session.Player = entity.Handle{}
	l.deps.Audio.StopAll()
	log.Printf("level: free")
}

// Unload releases the assets and the map
func (l *Level) Unload() {
	release := func(s sprite) {
		l.deps.Assets.ReleaseMesh(s.mesh)
		l.deps.Assets.ReleaseTexture(s.tex)
	}
	if l.grid != nil {
		release(l.tiles)
		for _, s := range l.sprites {
			release(s)
		}
	}

	l.grid = nil
	l.pool = nil
	l.camera = nil
	l.tiles = sprite{}
	l.sprites = [4]sprite{}
	log.Printf("level: unload")
}

// Config returns the level's configuration
func (l *Level) Config() *config.LevelConfig { return l.cfg }

// Grid returns the tile grid, nil before Load
func (l *Level) Grid() *entity.Grid { return l.grid }

// Pool returns the object pool, nil before Load
func (l *Level) Pool() *entity.Pool { return l.pool }

// Session returns the player session
func (l *Level) Session() *entity.Session { return &l.session }

// Camera returns the camera, nil before Load
func (l *Level) Camera() *entity.Camera { return l.camera }

// Player returns the player object, or nil while the player is dead
func (l *Level) Player() *entity.Object {
	if l.pool == nil {
		return nil
	}
	return l.pool.Get(l.session.Player)
}
