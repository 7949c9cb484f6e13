package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaugeColor(t *testing.T) {
	assert.Equal(t, color.RGBA{102, 255, 102, 255}, GaugeColor(0))
	assert.Equal(t, color.RGBA{255, 51, 51, 255}, GaugeColor(1))
	assert.Equal(t, GaugeColor(1), GaugeColor(3))
	assert.Equal(t, GaugeColor(0), GaugeColor(-1))
}

func TestHealthColor(t *testing.T) {
	assert.Equal(t, GaugeColor(0), HealthColor(100))
	assert.Equal(t, GaugeColor(1), HealthColor(0))
	assert.Equal(t, GaugeColor(1), HealthColor(-20))
	assert.Equal(t, GaugeColor(0.5), HealthColor(50))
}

func TestBlink(t *testing.T) {
	assert.True(t, Blink(0))
	assert.True(t, Blink(0.49))
	assert.False(t, Blink(0.5))
	assert.True(t, Blink(1.2))
}
