package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// SpawnResult summarizes SpawnObjects
type SpawnResult struct {
	Player  entity.Handle // zero if the map has no player marker
	Start   entity.Vec2
	Spawned int
	Skipped int // markers dropped because the pool was full
}

// SpawnObjects allocates one object per spawn marker in the grid, scanning
// rows top to bottom. Only the first player marker is used.
func SpawnObjects(cfg *config.LevelConfig, grid *entity.Grid, pool *entity.Pool) SpawnResult {
	var res SpawnResult

	for row := range grid.Height() {
		for col := range grid.Width() {
			var spawn entity.Spawn
			pos := grid.CellCenter(col, row)

			switch grid.Tile(col, row) {
			case entity.TilePlayer:
				if !res.Player.IsZero() {
					continue
				}
				spawn = newSpawn(entity.KindPlayer, pos, cfg.Sprites.Player)
			case entity.TileEnemy:
				spawn = newSpawn(entity.KindEnemy, pos, cfg.Sprites.Enemy)
				spawn.Patrol = entity.PatrolGoingLeft
			case entity.TileItem:
				spawn = newSpawn(entity.KindItem, pos, cfg.Sprites.Item)
			default:
				continue
			}

			h, err := pool.Allocate(spawn)
			if err != nil {
				res.Skipped++
				continue
			}
			res.Spawned++

			if spawn.Kind == entity.KindPlayer {
				res.Player = h
				res.Start = pos
				if len(cfg.Player.Clips) > 0 {
					c := cfg.Player.Clips[0]
					pool.Get(h).Anim.Play(entity.Clip{BeginX: c.BeginX, BeginY: c.BeginY, EndFrame: c.EndFrame})
				}
			}
		}
	}

	return res
}

func newSpawn(kind entity.Kind, pos entity.Vec2, sprite config.SpriteConfig) entity.Spawn {
	return entity.Spawn{
		Kind:  kind,
		Pos:   pos,
		Scale: entity.Vec2{X: 1, Y: 1},
		Anim: entity.AnimSpec{
			Enabled: sprite.Animated(),
			Frames:  sprite.Frames,
			Step:    sprite.Step,
		},
	}
}
