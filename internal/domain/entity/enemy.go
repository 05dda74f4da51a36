package entity

// PatrolState is the enemy's horizontal patrol state
type PatrolState int

const (
	PatrolNone PatrolState = iota
	PatrolGoingLeft
	PatrolGoingRight
)

// String returns the string representation of the patrol state
func (s PatrolState) String() string {
	switch s {
	case PatrolNone:
		return "None"
	case PatrolGoingLeft:
		return "GoingLeft"
	case PatrolGoingRight:
		return "GoingRight"
	default:
		return "Unknown"
	}
}

// PatrolData is the enemy-only part of an object
type PatrolData struct {
	State PatrolState
}

// Velocity returns the horizontal velocity for the current state.
// ok is false for PatrolNone, which leaves velocity untouched.
func (p *PatrolData) Velocity(speed float64) (vx float64, ok bool) {
	switch p.State {
	case PatrolGoingLeft:
		return -speed, true
	case PatrolGoingRight:
		return speed, true
	default:
		return 0, false
	}
}
