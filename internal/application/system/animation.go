package system

import "github.com/younwookim/platformer/internal/domain/entity"

// AnimationSystem advances sprite animations every Nth frame
type AnimationSystem struct {
	divisor int64
}

// NewAnimationSystem creates an animation system. A divisor below 1
// advances every frame.
func NewAnimationSystem(divisor int) *AnimationSystem {
	if divisor < 1 {
		divisor = 1
	}
	return &AnimationSystem{divisor: int64(divisor)}
}

// Tick advances every enabled animation if frame is on the divisor and
// reports whether it was.
func (s *AnimationSystem) Tick(pool *entity.Pool, frame int64) bool {
	if frame%s.divisor != 0 {
		return false
	}
	for obj := range pool.All() {
		obj.Anim.Advance()
	}
	return true
}
