package config

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/roadrash/pkg/log"
	"github.com/golangdaddy/roadrash/pkg/render"
)

// Screen size of the render target.
const (
	ScreenWidth  = 1024
	ScreenHeight = 768
)

// Track geometry.
const (
	RoadWidth = 2000.0 // half-width of the road in world units
)

// Config holds the resolved command line, environment and file settings.
type Config struct {
	Seed         int64  // 0 picks a time based seed
	AssetDir     string // directory holding background, bike and obstacles images
	DrawDistance int    // segments rendered per frame
	FieldOfView  float64
	CameraHeight float64
	Lanes        int
	FPS          int
	Fullscreen   bool
	Mute         bool
	Fog          bool
	LogLevel     string
	LogFormat    string // text vs json
	FogColor     string
	SkyColor     string
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		AssetDir:     "assets",
		DrawDistance: 300,
		FieldOfView:  100,
		CameraHeight: 1000,
		Lanes:        3,
		FPS:          60,
		Fog:          true,
		LogLevel:     "info",
		LogFormat:    "text",
		FogColor:     "#005108",
		SkyColor:     "#72D7EE",
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.DrawDistance < 1 {
		errs = append(errs, fmt.Errorf("draw distance must be at least 1, got %d", c.DrawDistance))
	}
	if c.FieldOfView <= 0 || c.FieldOfView >= 180 {
		errs = append(errs, fmt.Errorf("field of view must be in (0, 180), got %v", c.FieldOfView))
	}
	if c.CameraHeight <= 0 {
		errs = append(errs, fmt.Errorf("camera height must be positive, got %v", c.CameraHeight))
	}
	if c.Lanes < 1 {
		errs = append(errs, fmt.Errorf("lanes must be at least 1, got %d", c.Lanes))
	}
	if c.FPS < 1 {
		errs = append(errs, fmt.Errorf("fps must be at least 1, got %d", c.FPS))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", c.LogFormat))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Palette is the default palette with the configured sky and fog colours.
func (c Config) Palette() (render.Palette, error) {
	p := render.DefaultPalette()
	sky, err := render.ParseHex(c.SkyColor)
	if err != nil {
		return p, fmt.Errorf("sky colour: %w", err)
	}
	fog, err := render.ParseHex(c.FogColor)
	if err != nil {
		return p, fmt.Errorf("fog colour: %w", err)
	}
	p.Sky, p.Fog = sky, fog
	return p, nil
}

// Render converts the settings into a renderer configuration.
func (c Config) Render() render.Config {
	return render.Config{
		Width:        ScreenWidth,
		Height:       ScreenHeight,
		RoadWidth:    RoadWidth,
		Lanes:        c.Lanes,
		FieldOfView:  c.FieldOfView,
		CameraHeight: c.CameraHeight,
		DrawDistance: c.DrawDistance,
		Fog:          c.Fog,
	}
}

// Step is the fixed simulation tick in seconds.
func (c Config) Step() float64 {
	return 1 / float64(c.FPS)
}
