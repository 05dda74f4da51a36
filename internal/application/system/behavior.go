package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// BehaviorSystem resolves objects against the tile grid and runs the
// enemy patrol state machine.
type BehaviorSystem struct {
	config *config.PhysicsConfig
	grid   *entity.Grid
}

// NewBehaviorSystem creates a new behavior system
func NewBehaviorSystem(cfg *config.PhysicsConfig, grid *entity.Grid) *BehaviorSystem {
	return &BehaviorSystem{
		config: cfg,
		grid:   grid,
	}
}

// ResolveTiles queries the grid at obj's position and applies the
// response: side hits snap x to the cell center, a ceiling hit snaps y and
// turns vy into a small downward nudge, a floor hit lands the object.
// The object becomes airborne when the cell below is open.
func (s *BehaviorSystem) ResolveTiles(obj *entity.Object) geom.Flags {
	flags, airborne := s.grid.Query(obj.Pos.X, obj.Pos.Y)

	if flags&(geom.Left|geom.Right) != 0 {
		obj.Pos.X = geom.SnapToCell(obj.Pos.X)
	}

	if flags&geom.Top != 0 {
		obj.Vel.Y = s.config.CeilingNudge
		obj.Pos.Y = geom.SnapToCell(obj.Pos.Y)
	}

	if flags&geom.Bottom != 0 {
		obj.Airborne = false
		obj.Vel.Y = 0
		obj.Pos.Y = geom.SnapToCell(obj.Pos.Y)
	}

	if airborne {
		obj.Airborne = true
	}

	return flags
}

// Patrol runs one tick of the enemy state machine. A wall on the left
// turns the enemy right and vice versa; horizontal velocity then follows
// the (possibly new) state.
func (s *BehaviorSystem) Patrol(obj *entity.Object) {
	if obj.Patrol == nil {
		return
	}

	flags := s.ResolveTiles(obj)
	if flags&geom.Left != 0 {
		obj.Patrol.State = entity.PatrolGoingRight
	}
	if flags&geom.Right != 0 {
		obj.Patrol.State = entity.PatrolGoingLeft
	}

	if vx, ok := obj.Patrol.Velocity(s.config.EnemySpeed); ok {
		obj.Vel.X = vx
	}
}
