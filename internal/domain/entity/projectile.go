package entity

// ShotData is the shot-only part of an object
type ShotData struct {
	Lifespan    float64 // seconds alive
	PlayerOwned bool    // true if fired by the player, false if by an enemy
}

// Age adds dt to the lifespan and reports whether it now exceeds max.
func (s *ShotData) Age(dt, max float64) (expired bool) {
	s.Lifespan += dt
	return s.Lifespan > max
}

// HeroData is the player-only part of an object
type HeroData struct {
	// Mortal is false while the player is invulnerable after a hit.
	Mortal bool
}
