package entity

// Kind is the category of a game object. It is fixed at allocation.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindItem
	KindShot
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindItem:
		return "Item"
	case KindShot:
		return "Shot"
	default:
		return "Unknown"
	}
}

// Input is the per-tick key snapshot the simulation consumes.
// It is produced by the host (keyboard, replay file, tests).
type Input struct {
	Left, Right bool
	Up, Down    bool
	Jump        bool
	Fire        bool
	ZoomIn      bool
	ZoomOut     bool
}
