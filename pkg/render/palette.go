package render

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"

	"github.com/golangdaddy/roadrash/pkg/road"
)

// Colors is the paint set for one banding.
type Colors struct {
	Road, Grass, Rumble, Lane color.RGBA
}

// Palette holds every colour the scene uses.
type Palette struct {
	Sky, Fog                   color.RGBA
	Light, Dark, Start, Finish Colors
}

// ParseHex parses a "#RRGGBB" string into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func mustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultPalette is the stock green-verge, grey-road look.
func DefaultPalette() Palette {
	white := mustHex("#FFFFFF")
	black := mustHex("#000000")
	return Palette{
		Sky: mustHex("#72D7EE"),
		Fog: mustHex("#005108"),
		Light: Colors{
			Road:   mustHex("#6B6B6B"),
			Grass:  mustHex("#10AA10"),
			Rumble: mustHex("#555555"),
			Lane:   mustHex("#CCCCCC"),
		},
		Dark: Colors{
			Road:   mustHex("#696969"),
			Grass:  mustHex("#009A00"),
			Rumble: mustHex("#BBBBBB"),
		},
		Start:  Colors{Road: white, Grass: white, Rumble: white},
		Finish: Colors{Road: black, Grass: black, Rumble: black},
	}
}

// For returns the paint set for banding b.
func (p Palette) For(b road.Banding) Colors {
	switch b {
	case road.BandingDark:
		return p.Dark
	case road.BandingStart:
		return p.Start
	case road.BandingFinish:
		return p.Finish
	}
	return p.Light
}

// FogAt returns the fog colour at the given density as a straight-alpha
// colour.
func (p Palette) FogAt(density float64) color.NRGBA {
	return color.NRGBA{R: p.Fog.R, G: p.Fog.G, B: p.Fog.B, A: uint8(lo.Clamp(density, 0, 1)*255 + 0.5)}
}
