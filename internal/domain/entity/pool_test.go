package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemAt(x, y float64) Spawn {
	return Spawn{Kind: KindItem, Pos: Vec2{x, y}, Scale: Vec2{1, 1}}
}

func TestPool_Capacity(t *testing.T) {
	p := NewPool(3)

	handles := make([]Handle, 0, 3)
	for i := range 3 {
		h, err := p.Allocate(itemAt(float64(i), 0))
		require.NoError(t, err)
		handles = append(handles, h)
	}
	assert.Equal(t, 3, p.Len())

	_, err := p.Allocate(itemAt(9, 9))
	assert.ErrorIs(t, err, ErrPoolFull)
	assert.Equal(t, 3, p.Len())

	require.True(t, p.Deactivate(handles[1]))
	assert.Equal(t, 2, p.Len())

	h, err := p.Allocate(itemAt(7, 7))
	require.NoError(t, err)
	assert.Equal(t, 1, h.Index(), "first-fit reuses the freed slot")

	_, err = p.Allocate(itemAt(8, 8))
	assert.ErrorIs(t, err, ErrPoolFull)
}

func TestPool_StaleHandles(t *testing.T) {
	p := NewPool(2)

	a, err := p.Allocate(itemAt(1, 1))
	require.NoError(t, err)
	b, err := p.Allocate(itemAt(2, 2))
	require.NoError(t, err)

	require.True(t, p.Deactivate(a))
	assert.False(t, p.Deactivate(a), "second deactivate is a no-op")
	assert.Equal(t, 1, p.Len())
	assert.Nil(t, p.Get(a))

	c, err := p.Allocate(itemAt(3, 3))
	require.NoError(t, err)
	assert.Equal(t, a.Index(), c.Index())
	assert.NotEqual(t, a, c)

	// the old handle must not reach the new occupant
	assert.False(t, p.Alive(a))
	assert.Nil(t, p.Get(a))
	assert.False(t, p.Deactivate(a))
	assert.True(t, p.Alive(c))

	// unrelated handles survive
	require.NotNil(t, p.Get(b))
	assert.Equal(t, 2.0, p.Get(b).Pos.X)
}

func TestPool_ZeroHandle(t *testing.T) {
	p := NewPool(1)
	_, err := p.Allocate(itemAt(0, 0))
	require.NoError(t, err)

	var zero Handle
	assert.True(t, zero.IsZero())
	assert.False(t, p.Alive(zero))
	assert.Nil(t, p.Get(zero))
	assert.False(t, p.Deactivate(zero))
	assert.Equal(t, 1, p.Len())
}

func TestPool_AllocateVariants(t *testing.T) {
	p := NewPool(4)

	tests := []struct {
		name  string
		spawn Spawn
		check func(t *testing.T, o *Object)
	}{
		{
			name:  "player",
			spawn: Spawn{Kind: KindPlayer},
			check: func(t *testing.T, o *Object) {
				assert.NotNil(t, o.Hero)
				assert.Nil(t, o.Patrol)
				assert.Nil(t, o.Shot)
			},
		},
		{
			name:  "enemy",
			spawn: Spawn{Kind: KindEnemy, Patrol: PatrolGoingLeft},
			check: func(t *testing.T, o *Object) {
				require.NotNil(t, o.Patrol)
				assert.Equal(t, PatrolGoingLeft, o.Patrol.State)
				assert.Nil(t, o.Hero)
			},
		},
		{
			name:  "shot",
			spawn: Spawn{Kind: KindShot, PlayerOwned: true},
			check: func(t *testing.T, o *Object) {
				require.NotNil(t, o.Shot)
				assert.True(t, o.Shot.PlayerOwned)
				assert.Zero(t, o.Shot.Lifespan)
			},
		},
		{
			name:  "item",
			spawn: Spawn{Kind: KindItem, Anim: AnimSpec{Enabled: true, Frames: 3, Step: 0.25}},
			check: func(t *testing.T, o *Object) {
				assert.Nil(t, o.Hero)
				assert.Nil(t, o.Patrol)
				assert.Nil(t, o.Shot)
				assert.True(t, o.Anim.Enabled)
				assert.Equal(t, 3, o.Anim.Frames)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := p.Allocate(tt.spawn)
			require.NoError(t, err)
			o := p.Get(h)
			require.NotNil(t, o)
			assert.Equal(t, tt.spawn.Kind, o.Kind)
			assert.Equal(t, h, o.Handle)
			tt.check(t, o)
		})
	}
}

func TestPool_All(t *testing.T) {
	p := NewPool(4)
	var hs []Handle
	for i := range 4 {
		h, err := p.Allocate(itemAt(float64(i), 0))
		require.NoError(t, err)
		hs = append(hs, h)
	}
	p.Deactivate(hs[1])

	t.Run("slot order, skipping inactive", func(t *testing.T) {
		var xs []float64
		for o := range p.All() {
			xs = append(xs, o.Pos.X)
		}
		assert.Equal(t, []float64{0, 2, 3}, xs)
	})

	t.Run("objects deactivated mid-loop are skipped", func(t *testing.T) {
		var xs []float64
		for o := range p.All() {
			if o.Pos.X == 0 {
				p.Deactivate(hs[2])
			}
			xs = append(xs, o.Pos.X)
		}
		assert.Equal(t, []float64{0, 3}, xs)
	})

	t.Run("Count and Reset", func(t *testing.T) {
		assert.Equal(t, 2, p.Count(KindItem))
		assert.Equal(t, 0, p.Count(KindEnemy))

		p.Reset()
		assert.Equal(t, 0, p.Len())
		assert.Equal(t, 4, p.Cap())
		assert.False(t, p.Alive(hs[0]))
	})
}
