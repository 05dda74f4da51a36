package state

// GameState represents what the playing scene is doing this frame
type GameState int

const (
	StateLoading GameState = iota
	StatePlaying
	StatePaused
	// StateRespawning is the countdown between losing the last life and
	// the level restarting.
	StateRespawning
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateRespawning:
		return "Respawning"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the level is stepped in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying || s == StateRespawning
}
