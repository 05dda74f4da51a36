package entity

// Session is the player singleton: the player's handle plus the counters
// that outlive a single player object.
type Session struct {
	Player Handle
	Start  Vec2

	Lives int
	Score int

	// RespawnCountdown is positive between the player's death and the
	// level-exit signal. Input is ignored while it runs.
	RespawnCountdown float64
	// MortalCountdown is the remaining invulnerability after a hit.
	MortalCountdown float64
	// FireCooldown is the time left before the player may fire again.
	FireCooldown float64
}

// Reset clears score and countdowns and restores lives
func (s *Session) Reset(lives int) {
	*s = Session{Lives: lives}
}

// Respawning reports whether the respawn countdown is running
func (s *Session) Respawning() bool {
	return s.RespawnCountdown > 0
}
