package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Player animation table layout: the clip index is
// (ClipShooting if firing) + motion, where motion is one of the Motion
// values plus 1 for aiming up or 2 for aiming down while airborne.
const (
	MotionIdle    = 0
	MotionWalking = 2
	MotionJumping = 4
	ClipShooting  = 7
)

// InputSystem turns input snapshots into player motion, animation and shots
type InputSystem struct {
	config  *config.LevelConfig
	pool    *entity.Pool
	session *entity.Session
	audio   AudioSink
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.LevelConfig, pool *entity.Pool, session *entity.Session, audio AudioSink) *InputSystem {
	if audio == nil {
		audio = NopAudio()
	}
	return &InputSystem{
		config:  cfg,
		pool:    pool,
		session: session,
		audio:   audio,
	}
}

// GetInput reads the current keyboard state
func GetInput() entity.Input {
	return entity.Input{
		Left:    ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD),
		Up:      ebiten.IsKeyPressed(ebiten.KeyW),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS),
		Jump:    ebiten.IsKeyPressed(ebiten.KeySpace),
		Fire:    ebiten.IsKeyPressed(ebiten.KeyJ),
		ZoomIn:  ebiten.IsKeyPressed(ebiten.KeyU),
		ZoomOut: ebiten.IsKeyPressed(ebiten.KeyI),
	}
}

// ApplyPlayer applies one tick of input to the player
func (s *InputSystem) ApplyPlayer(in entity.Input, dt float64) {
	player := s.pool.Get(s.session.Player)
	if player == nil {
		return
	}

	if s.session.FireCooldown > 0 {
		s.session.FireCooldown -= dt
	}

	phys := &s.config.Physics

	if in.Jump && !player.Airborne {
		player.Airborne = true
		player.Vel.Y = phys.JumpVelocity
		s.audio.Play(s.config.Audio.Jump, false)
	}

	motion := MotionIdle
	switch {
	case in.Left:
		player.Scale.X = -math.Abs(player.Scale.X)
		player.Vel.X = -phys.PlayerSpeed
		motion = MotionWalking
	case in.Right:
		player.Scale.X = math.Abs(player.Scale.X)
		player.Vel.X = phys.PlayerSpeed
		motion = MotionWalking
	default:
		player.Vel.X *= 1 - phys.Friction
	}

	if player.Airborne {
		motion = MotionJumping
	}

	aimY := 0.0
	if in.Up {
		motion++
		aimY = 1
	} else if player.Airborne && in.Down {
		motion += 2
		aimY = -1
	}

	clip := motion
	if in.Fire {
		clip += ClipShooting
		if s.session.FireCooldown <= 0 {
			s.fire(player, aimY)
			s.session.FireCooldown = s.config.Player.FireCooldown
		}
	}

	if clip < len(s.config.Player.Clips) {
		c := s.config.Player.Clips[clip]
		player.Anim.Play(entity.Clip{BeginX: c.BeginX, BeginY: c.BeginY, EndFrame: c.EndFrame})
	}
}

// fire spawns a player shot. Shots go the way the player faces, or
// straight up/down when aiming. A full pool drops the shot.
func (s *InputSystem) fire(player *entity.Object, aimY float64) bool {
	speed := s.config.Shot.Speed
	vel := entity.Vec2{X: speed, Y: 0}
	if !player.FacingRight() {
		vel.X = -speed
	}
	if aimY != 0 {
		vel = entity.Vec2{X: 0, Y: speed * aimY}
	}

	size := s.config.Shot.Size
	_, err := s.pool.Allocate(entity.Spawn{
		Kind:        entity.KindShot,
		Pos:         player.Pos,
		Vel:         vel,
		Scale:       entity.Vec2{X: size, Y: size},
		Orientation: player.Orientation,
		PlayerOwned: true,
	})
	return err == nil
}
