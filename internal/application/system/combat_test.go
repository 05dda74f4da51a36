package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

type combatFixture struct {
	cfg     *config.LevelConfig
	pool    *entity.Pool
	session *entity.Session
	audio   *fakeAudio
	combat  *CombatSystem
	player  entity.Handle
}

func newCombatFixture(t *testing.T, playerX, playerY float64) *combatFixture {
	t.Helper()
	f := &combatFixture{
		cfg:     config.Default(),
		pool:    entity.NewPool(16),
		session: &entity.Session{},
		audio:   &fakeAudio{},
	}
	f.session.Reset(f.cfg.Player.Lives)

	h, err := f.pool.Allocate(entity.Spawn{
		Kind:  entity.KindPlayer,
		Pos:   entity.Vec2{X: playerX, Y: playerY},
		Scale: entity.Vec2{X: 1, Y: 1},
	})
	require.NoError(t, err)
	f.pool.Get(h).Hero.Mortal = true
	f.session.Player = h
	f.player = h

	f.combat = NewCombatSystem(f.cfg, f.pool, f.session, f.audio)
	return f
}

func (f *combatFixture) add(t *testing.T, kind entity.Kind, x, y float64) entity.Handle {
	t.Helper()
	s := entity.Spawn{Kind: kind, Pos: entity.Vec2{X: x, Y: y}, Scale: entity.Vec2{X: 1, Y: 1}}
	if kind == entity.KindEnemy {
		s.Patrol = entity.PatrolGoingLeft
	}
	h, err := f.pool.Allocate(s)
	require.NoError(t, err)
	return h
}

func (f *combatFixture) shot(t *testing.T, x, y float64, playerOwned bool) entity.Handle {
	t.Helper()
	h, err := f.pool.Allocate(entity.Spawn{
		Kind:        entity.KindShot,
		Pos:         entity.Vec2{X: x, Y: y},
		Scale:       entity.Vec2{X: 0.5, Y: 0.5},
		PlayerOwned: playerOwned,
	})
	require.NoError(t, err)
	return h
}

func (f *combatFixture) hero() *entity.HeroData {
	return f.pool.Get(f.player).Hero
}

func TestCombatSystem_Stomp(t *testing.T) {
	f := newCombatFixture(t, 5, 5.6)
	enemy := f.add(t, entity.KindEnemy, 5, 5)

	f.combat.Touch()

	assert.False(t, f.pool.Alive(enemy))
	assert.Equal(t, 3, f.session.Lives)
	assert.True(t, f.hero().Mortal)
}

func TestCombatSystem_EnemyContact(t *testing.T) {
	t.Run("side contact hurts", func(t *testing.T) {
		f := newCombatFixture(t, 5.5, 5)
		enemy := f.add(t, entity.KindEnemy, 5, 5)

		f.combat.Touch()

		assert.True(t, f.pool.Alive(enemy))
		assert.Equal(t, 2, f.session.Lives)
		assert.False(t, f.hero().Mortal)
		assert.Equal(t, f.cfg.Player.MortalCooldown, f.session.MortalCountdown)
	})

	t.Run("one hit per tick", func(t *testing.T) {
		f := newCombatFixture(t, 5.5, 5)
		f.add(t, entity.KindEnemy, 5, 5)
		f.add(t, entity.KindEnemy, 6, 5)

		f.combat.Touch()
		assert.Equal(t, 2, f.session.Lives)
	})

	t.Run("invulnerable player ignores enemies", func(t *testing.T) {
		f := newCombatFixture(t, 5, 5.6)
		enemy := f.add(t, entity.KindEnemy, 5, 5)
		f.hero().Mortal = false

		f.combat.Touch()
		assert.True(t, f.pool.Alive(enemy), "no stomp while invulnerable")
		assert.Equal(t, 3, f.session.Lives)
	})

	t.Run("no contact", func(t *testing.T) {
		f := newCombatFixture(t, 1, 1)
		f.add(t, entity.KindEnemy, 5, 5)

		f.combat.Touch()
		assert.Equal(t, 3, f.session.Lives)
	})
}

func TestCombatSystem_MortalityWindow(t *testing.T) {
	const dt = 0.25
	f := newCombatFixture(t, 5.5, 5)
	f.add(t, entity.KindEnemy, 5, 5)

	tick := func() {
		f.combat.Touch()
		f.combat.TickMortality(dt)
	}

	tick()
	assert.Equal(t, 2, f.session.Lives)
	assert.False(t, f.hero().Mortal)

	// still inside the window: no further damage
	tick()
	tick()
	assert.Equal(t, 2, f.session.Lives)
	assert.False(t, f.hero().Mortal)

	// fourth tick spends the last of the 1.0s cooldown
	tick()
	assert.Equal(t, 2, f.session.Lives)
	assert.True(t, f.hero().Mortal)

	tick()
	assert.Equal(t, 1, f.session.Lives)

	for range 4 {
		tick()
	}
	assert.Equal(t, 0, f.session.Lives)
	assert.False(t, f.pool.Alive(f.player))
	assert.True(t, f.session.Respawning())
	assert.Equal(t, f.cfg.Player.RespawnDelay, f.session.RespawnCountdown)

	// a dead player takes no more damage
	tick()
	assert.Equal(t, 0, f.session.Lives)
}

func TestCombatSystem_Pickup(t *testing.T) {
	f := newCombatFixture(t, 3, 3)
	item := f.add(t, entity.KindItem, 3.4, 3.2)
	f.hero().Mortal = false

	f.combat.Touch()

	assert.Equal(t, 1, f.session.Score)
	assert.Equal(t, []string{"coin.wav"}, f.audio.played)
	assert.Equal(t, []bool{false}, f.audio.loops)
	assert.False(t, f.pool.Alive(item))

	// already collected: no score, no sound
	f.combat.Touch()
	ghost := &entity.Object{Handle: item, Kind: entity.KindItem, Body: entity.Body{Pos: entity.Vec2{X: 3, Y: 3}}}
	assert.False(t, f.combat.Collect(f.pool.Get(f.player), ghost))
	assert.Equal(t, 1, f.session.Score)
	assert.Len(t, f.audio.played, 1)
}

func TestCombatSystem_ResolveShot(t *testing.T) {
	t.Run("player shot kills the first enemy only", func(t *testing.T) {
		f := newCombatFixture(t, 1, 1)
		item := f.add(t, entity.KindItem, 10, 10)
		first := f.add(t, entity.KindEnemy, 10.2, 10)
		second := f.add(t, entity.KindEnemy, 9.8, 10)
		shot := f.shot(t, 10, 10, true)

		assert.True(t, f.combat.ResolveShot(f.pool.Get(shot)))
		assert.False(t, f.pool.Alive(shot))
		assert.False(t, f.pool.Alive(first))
		assert.True(t, f.pool.Alive(second))
		assert.True(t, f.pool.Alive(item))
	})

	t.Run("player shot miss", func(t *testing.T) {
		f := newCombatFixture(t, 1, 1)
		enemy := f.add(t, entity.KindEnemy, 20, 10)
		shot := f.shot(t, 10, 10, true)

		assert.False(t, f.combat.ResolveShot(f.pool.Get(shot)))
		assert.True(t, f.pool.Alive(shot))
		assert.True(t, f.pool.Alive(enemy))
	})

	t.Run("player shot passes through the player", func(t *testing.T) {
		f := newCombatFixture(t, 10, 10)
		shot := f.shot(t, 10, 10, true)

		assert.False(t, f.combat.ResolveShot(f.pool.Get(shot)))
		assert.Equal(t, 3, f.session.Lives)
	})

	t.Run("enemy shot hurts a mortal player", func(t *testing.T) {
		f := newCombatFixture(t, 10, 10)
		shot := f.shot(t, 10.3, 10, false)

		assert.True(t, f.combat.ResolveShot(f.pool.Get(shot)))
		assert.False(t, f.pool.Alive(shot))
		assert.Equal(t, 2, f.session.Lives)
	})

	t.Run("enemy shot is spent on an invulnerable player", func(t *testing.T) {
		f := newCombatFixture(t, 10, 10)
		f.hero().Mortal = false
		shot := f.shot(t, 10.3, 10, false)

		assert.True(t, f.combat.ResolveShot(f.pool.Get(shot)))
		assert.False(t, f.pool.Alive(shot))
		assert.Equal(t, 3, f.session.Lives)
	})

	t.Run("non-shot objects are ignored", func(t *testing.T) {
		f := newCombatFixture(t, 10, 10)
		enemy := f.add(t, entity.KindEnemy, 10, 10)
		assert.False(t, f.combat.ResolveShot(f.pool.Get(enemy)))
	})
}

func TestCombatSystem_ExpireShots(t *testing.T) {
	t.Run("lifespan", func(t *testing.T) {
		const dt = 0.5
		f := newCombatFixture(t, 1, 1)
		shot := f.shot(t, 1, 1, true)

		ticks := int(f.cfg.Shot.Lifespan / dt)
		for i := range ticks {
			require.Zero(t, f.combat.ExpireShots(nil, 30, dt), "tick %d", i+1)
			require.True(t, f.pool.Alive(shot))
		}

		assert.Equal(t, 1, f.combat.ExpireShots(nil, 30, dt))
		assert.False(t, f.pool.Alive(shot))
	})

	t.Run("off camera", func(t *testing.T) {
		f := newCombatFixture(t, 10, 10)
		cam := entity.NewCamera(20, 20)
		cam.Pos = entity.Vec2{X: 10, Y: 10}

		near := f.shot(t, 12, 10, true)
		far := f.shot(t, 50, 10, true)
		enemy := f.add(t, entity.KindEnemy, 60, 10)

		assert.Equal(t, 1, f.combat.ExpireShots(cam, 30, 1.0/60))
		assert.True(t, f.pool.Alive(near))
		assert.False(t, f.pool.Alive(far))
		assert.True(t, f.pool.Alive(enemy))
	})
}

func TestCombatSystem_NoPlayer(t *testing.T) {
	f := newCombatFixture(t, 1, 1)
	f.pool.Deactivate(f.player)
	f.add(t, entity.KindItem, 1, 1)

	assert.NotPanics(t, func() {
		f.combat.Damage()
		f.combat.Touch()
		f.combat.TickMortality(0.1)
	})
	assert.Equal(t, 3, f.session.Lives)
	assert.Zero(t, f.session.Score)
}
