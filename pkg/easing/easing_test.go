package easing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundaries(t *testing.T) {
	funcs := map[string]func(a, b, t float64) float64{
		"In":    In,
		"Out":   Out,
		"InOut": InOut,
	}
	pairs := [][2]float64{{0, 1}, {-3, 7}, {100, -40}, {2.5, 2.5}}

	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			for _, p := range pairs {
				assert.InDelta(t, p[0], fn(p[0], p[1], 0), 1e-9, "t=0 must return a")
				assert.InDelta(t, p[1], fn(p[0], p[1], 1), 1e-9, "t=1 must return b")
			}
		})
	}
}

func TestShapes(t *testing.T) {
	// ease-in lags the straight line, ease-out leads it, in-out crosses at the midpoint
	assert.InDelta(t, 0.25, In(0, 1, 0.5), 1e-9)
	assert.InDelta(t, 0.75, Out(0, 1, 0.5), 1e-9)
	assert.InDelta(t, 0.5, InOut(0, 1, 0.5), 1e-9)
	assert.Less(t, InOut(0, 1, 0.25), 0.25)
	assert.Greater(t, InOut(0, 1, 0.75), 0.75)
}

func TestMonotonic(t *testing.T) {
	prevIn, prevOut, prevInOut := In(0, 10, 0), Out(0, 10, 0), InOut(0, 10, 0)
	for i := 1; i <= 100; i++ {
		p := float64(i) / 100
		assert.GreaterOrEqual(t, In(0, 10, p), prevIn)
		assert.GreaterOrEqual(t, Out(0, 10, p), prevOut)
		assert.GreaterOrEqual(t, InOut(0, 10, p), prevInOut)
		prevIn, prevOut, prevInOut = In(0, 10, p), Out(0, 10, p), InOut(0, 10, p)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(3, 0))
	assert.Equal(t, 0.5, Percent(2, 4))
	assert.Equal(t, 1.0, Percent(4, 4))
}
