package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatrolData_Velocity(t *testing.T) {
	tests := []struct {
		state  PatrolState
		wantVX float64
		wantOK bool
	}{
		{PatrolNone, 0, false},
		{PatrolGoingLeft, -2, true},
		{PatrolGoingRight, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			p := PatrolData{State: tt.state}
			vx, ok := p.Velocity(2)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantVX, vx)
		})
	}
}

func TestPatrolState_String(t *testing.T) {
	assert.Equal(t, "None", PatrolNone.String())
	assert.Equal(t, "GoingLeft", PatrolGoingLeft.String())
	assert.Equal(t, "GoingRight", PatrolGoingRight.String())
	assert.Equal(t, "Unknown", PatrolState(9).String())
}

func TestShotData_Age(t *testing.T) {
	const (
		lifespan = 5.0
		dt       = 0.5
	)
	s := ShotData{}

	ticks := 0
	for !s.Age(dt, lifespan) {
		ticks++
		if ticks > 100 {
			t.Fatal("shot never expired")
		}
	}

	// 10 ticks reach exactly 5.0, the 11th exceeds it
	assert.Equal(t, 10, ticks)
	assert.InDelta(t, 5.5, s.Lifespan, 1e-9)
}
