package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.InDelta(t, 1.0/60, c.Step(), 1e-12)

	rc := c.Render()
	assert.Equal(t, 1024, rc.Width)
	assert.Equal(t, 768, rc.Height)
	assert.Equal(t, 2000.0, rc.RoadWidth)
	assert.Equal(t, 300, rc.DrawDistance)
	assert.True(t, rc.Fog)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"draw distance", func(c *Config) { c.DrawDistance = 0 }},
		{"fov zero", func(c *Config) { c.FieldOfView = 0 }},
		{"fov straight", func(c *Config) { c.FieldOfView = 180 }},
		{"camera height", func(c *Config) { c.CameraHeight = -1 }},
		{"lanes", func(c *Config) { c.Lanes = 0 }},
		{"fps", func(c *Config) { c.FPS = 0 }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"log format", func(c *Config) { c.LogFormat = "xml" }},
		{"fog colour", func(c *Config) { c.FogColor = "fog" }},
		{"sky colour", func(c *Config) { c.SkyColor = "#12" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	c := Default()
	c.FPS = 0
	c.Lanes = 0
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fps")
	assert.Contains(t, err.Error(), "lanes")
}

func TestPalette(t *testing.T) {
	c := Default()
	c.SkyColor = "#000080"
	p, err := c.Palette()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0x80, 0xFF}, p.Sky)
	assert.Equal(t, color.RGBA{0, 0x51, 0x08, 0xFF}, p.Fog)
}
