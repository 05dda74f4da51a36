package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// CombatSystem handles object-vs-object interactions: stomps, damage,
// pickups, shots, and the player's mortality window.
type CombatSystem struct {
	config  *config.LevelConfig
	pool    *entity.Pool
	session *entity.Session
	audio   AudioSink
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.LevelConfig, pool *entity.Pool, session *entity.Session, audio AudioSink) *CombatSystem {
	if audio == nil {
		audio = NopAudio()
	}
	return &CombatSystem{
		config:  cfg,
		pool:    pool,
		session: session,
		audio:   audio,
	}
}

// Touch tests the player against every active object. Enemies are only
// tested while the player is mortal: landing on one kills it, any other
// contact hurts the player. Items are collected on any contact.
func (s *CombatSystem) Touch() {
	for obj := range s.pool.All() {
		player := s.pool.Get(s.session.Player)
		if player == nil {
			return
		}

		switch obj.Kind {
		case entity.KindEnemy:
			if !player.Hero.Mortal {
				continue
			}
			hit := geom.Overlap(player.UnitBox(), obj.UnitBox())
			if hit == 0 {
				continue
			}
			if hit&geom.Bottom != 0 {
				s.pool.Deactivate(obj.Handle)
			} else {
				s.Damage()
			}

		case entity.KindItem:
			s.Collect(player, obj)

		case entity.KindShot:
			s.ResolveShot(obj)
		}
	}
}

// Collect picks up item if the player overlaps it. Inactive items are
// ignored, so an item scores at most once.
func (s *CombatSystem) Collect(player, item *entity.Object) bool {
	if !s.pool.Alive(item.Handle) || item.Kind != entity.KindItem {
		return false
	}
	if geom.Overlap(player.UnitBox(), item.UnitBox()) == 0 {
		return false
	}

	s.session.Score++
	s.audio.Play(s.config.Audio.Pickup, false)
	s.pool.Deactivate(item.Handle)
	return true
}

// ResolveShot checks a shot against its targets and reports a hit.
// An enemy shot is destroyed on touching the player and hurts only a
// mortal player. A player shot destroys itself and the first enemy it
// overlaps, in slot order.
func (s *CombatSystem) ResolveShot(shot *entity.Object) bool {
	if shot.Shot == nil || !s.pool.Alive(shot.Handle) {
		return false
	}

	if !shot.Shot.PlayerOwned {
		player := s.pool.Get(s.session.Player)
		if player == nil {
			return false
		}
		if geom.Overlap(player.UnitBox(), shot.Box()) == 0 {
			return false
		}
		s.pool.Deactivate(shot.Handle)
		if player.Hero.Mortal {
			s.Damage()
		}
		return true
	}

	for obj := range s.pool.All() {
		if obj.Kind != entity.KindEnemy {
			continue
		}
		if geom.Overlap(shot.Box(), obj.Box()) != 0 {
			s.pool.Deactivate(obj.Handle)
			s.pool.Deactivate(shot.Handle)
			return true
		}
	}
	return false
}

// Damage takes one life from the player. The last life starts the respawn
// countdown and removes the player; otherwise the player becomes
// invulnerable for the mortality cooldown.
func (s *CombatSystem) Damage() {
	player := s.pool.Get(s.session.Player)
	if player == nil {
		return
	}

	s.session.Lives--
	if s.session.Lives <= 0 {
		s.session.RespawnCountdown = s.config.Player.RespawnDelay
		s.pool.Deactivate(player.Handle)
		return
	}

	player.Hero.Mortal = false
	s.session.MortalCountdown = s.config.Player.MortalCooldown
}

// ExpireShots ages every shot by dt and removes those past their lifespan
// or outside the camera's active region. It returns the number removed.
func (s *CombatSystem) ExpireShots(cam *entity.Camera, mapH int, dt float64) int {
	n := 0
	for obj := range s.pool.All() {
		if obj.Shot == nil {
			continue
		}
		expired := obj.Shot.Age(dt, s.config.Shot.Lifespan)
		if expired || (cam != nil && !cam.Visible(obj.Pos, mapH)) {
			s.pool.Deactivate(obj.Handle)
			n++
		}
	}
	return n
}

// TickMortality runs the invulnerability countdown and restores
// mortality when it runs out.
func (s *CombatSystem) TickMortality(dt float64) {
	player := s.pool.Get(s.session.Player)
	if player == nil {
		return
	}

	if !player.Hero.Mortal && s.session.MortalCountdown > 0 {
		s.session.MortalCountdown -= dt
		if s.session.MortalCountdown > 0 {
			return
		}
	}
	s.session.MortalCountdown = 0
	player.Hero.Mortal = true
}
