package entity

import (
	"errors"
	"iter"
)

// ErrPoolFull is returned by Allocate when every slot is active.
// Callers skip the spawn; it is never fatal.
var ErrPoolFull = errors.New("entity: object pool is full")

// Handle refers to one allocation of a pool slot. A handle goes stale when
// its slot is deactivated, and stays stale after the slot is reused.
// The zero Handle never refers to an object.
type Handle struct {
	index int32
	gen   uint32
}

// Index returns the slot index
func (h Handle) Index() int {
	return int(h.index)
}

// IsZero reports whether h is the zero Handle
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// Object is one game object. The shared core (Body, Anim) is used by every
// kind; exactly one of Patrol, Shot, Hero is set, matching Kind.
type Object struct {
	Handle Handle
	Kind   Kind
	Body
	Anim Animation

	Patrol *PatrolData // KindEnemy
	Shot   *ShotData   // KindShot
	Hero   *HeroData   // KindPlayer
}

// AnimSpec is the animation part of a Spawn
type AnimSpec struct {
	Enabled bool
	Frames  int
	Current int
	Step    float64
}

// Spawn describes an object to allocate
type Spawn struct {
	Kind        Kind
	Pos, Vel    Vec2
	Scale       Vec2
	Orientation float64
	Anim        AnimSpec

	Patrol      PatrolState // KindEnemy only
	PlayerOwned bool        // KindShot only
}

type slot struct {
	obj    Object
	active bool
	gen    uint32
}

// Pool is a fixed-capacity slot array of objects. Allocation is first-fit
// over slot order; there is no compaction.
type Pool struct {
	slots []slot
	live  int
}

// NewPool creates a pool with the given number of slots
func NewPool(capacity int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool{slots: make([]slot, capacity)}
}

// Allocate activates the first free slot and initializes it from s.
func (p *Pool) Allocate(s Spawn) (Handle, error) {
	for i := range p.slots {
		sl := &p.slots[i]
		if sl.active {
			continue
		}

		sl.gen++
		if sl.gen == 0 {
			sl.gen = 1
		}
		h := Handle{index: int32(i), gen: sl.gen}

		sl.obj = Object{
			Handle: h,
			Kind:   s.Kind,
			Body: Body{
				Pos:         s.Pos,
				Vel:         s.Vel,
				Scale:       s.Scale,
				Orientation: s.Orientation,
			},
			Anim: Animation{
				Enabled: s.Anim.Enabled,
				Frames:  s.Anim.Frames,
				Current: s.Anim.Current,
				Step:    s.Anim.Step,
			},
		}
		switch s.Kind {
		case KindEnemy:
			sl.obj.Patrol = &PatrolData{State: s.Patrol}
		case KindShot:
			sl.obj.Shot = &ShotData{PlayerOwned: s.PlayerOwned}
		case KindPlayer:
			sl.obj.Hero = &HeroData{}
		}

		sl.active = true
		p.live++
		return h, nil
	}

	return Handle{}, ErrPoolFull
}

// Get returns the object for h, or nil if h is stale
func (p *Pool) Get(h Handle) *Object {
	if !p.Alive(h) {
		return nil
	}
	return &p.slots[h.index].obj
}

// Alive reports whether h refers to an active object
func (p *Pool) Alive(h Handle) bool {
	if h.gen == 0 || h.index < 0 || int(h.index) >= len(p.slots) {
		return false
	}
	sl := &p.slots[h.index]
	return sl.active && sl.gen == h.gen
}

// Deactivate frees the slot of h. It is a no-op for stale handles and
// reports whether anything was deactivated.
func (p *Pool) Deactivate(h Handle) bool {
	if !p.Alive(h) {
		return false
	}
	p.slots[h.index].active = false
	p.live--
	return true
}

// All yields every active object in slot order. Objects deactivated during
// iteration are not yielded afterwards.
func (p *Pool) All() iter.Seq[*Object] {
	return func(yield func(*Object) bool) {
		for i := range p.slots {
			if !p.slots[i].active {
				continue
			}
			if !yield(&p.slots[i].obj) {
				return
			}
		}
	}
}

// Len returns the number of active objects
func (p *Pool) Len() int {
	return p.live
}

// Cap returns the number of slots
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Reset deactivates every object. Outstanding handles go stale.
func (p *Pool) Reset() {
	for i := range p.slots {
		p.slots[i].active = false
	}
	p.live = 0
}

// Count returns the number of active objects of kind k
func (p *Pool) Count(k Kind) int {
	n := 0
	for obj := range p.All() {
		if obj.Kind == k {
			n++
		}
	}
	return n
}
