package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// PhysicsSystem integrates object motion
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Integrate moves obj by its velocity over dt. Players and enemies fall
// while airborne; shots fly straight; items never move.
func (s *PhysicsSystem) Integrate(obj *entity.Object, dt float64) {
	switch obj.Kind {
	case entity.KindPlayer, entity.KindEnemy:
		obj.Body.Integrate(dt, s.config.Gravity)
	case entity.KindShot:
		obj.Pos = obj.Pos.Add(obj.Vel.Mul(dt))
	}
}

// Update integrates every active object
func (s *PhysicsSystem) Update(pool *entity.Pool, dt float64) {
	for obj := range pool.All() {
		s.Integrate(obj, dt)
	}
}
