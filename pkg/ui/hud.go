// Package ui draws the heads-up display and the start and game-over
// overlays on top of the road.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"

	"github.com/golangdaddy/roadrash/pkg/sim"
)

var (
	gaugeLow  = colorful.Color{R: 0.4, G: 1, B: 0.4}
	gaugeHigh = colorful.Color{R: 1, G: 0.2, B: 0.2}
	labelGrey = color.RGBA{200, 200, 200, 255}
)

// GaugeColor blends from green at 0 to red at 1.
func GaugeColor(pct float64) color.RGBA {
	c := gaugeLow.BlendLab(gaugeHigh, lo.Clamp(pct, 0, 1)).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// HealthColor runs the other way: full health is green.
func HealthColor(health int) color.RGBA {
	return GaugeColor(1 - float64(lo.Clamp(health, 0, sim.StartHealth))/sim.StartHealth)
}

// DrawHUD shows speed, health, score and trash count.
func DrawHUD(screen *ebiten.Image, r sim.Readout, speedPercent float64) {
	width := float64(screen.Bounds().Dx())

	// speed panel, top left
	x, y, w, h := 20.0, 20.0, 180.0, 120.0
	drawPanel(screen, x, y, w, h)
	drawCentered(screen, fmt.Sprintf("%d", r.Speed), x+w/2, y+20, 3, GaugeColor(speedPercent))
	drawCentered(screen, "SPEED", x+w/2, y+70, 1.5, labelGrey)
	drawGauge(screen, x+10, y+h-25, w-20, 15, speedPercent, GaugeColor(speedPercent))

	// health, score and trash, top right
	x = width - 20 - w
	drawPanel(screen, x, y, w, h)
	drawText(screen, "HEALTH", x+10, y+10, 1, labelGrey)
	drawGauge(screen, x+10, y+30, w-20, 15, float64(r.Health)/sim.StartHealth, HealthColor(r.Health))
	drawText(screen, "SCORE", x+10, y+55, 1, labelGrey)
	drawRight(screen, fmt.Sprintf("%d", r.Score), x+w-10, y+55, 1, color.White)
	drawText(screen, "TRASH", x+10, y+80, 1, labelGrey)
	drawRight(screen, fmt.Sprintf("%d", r.Trash), x+w-10, y+80, 1, color.White)
}

// drawGauge draws a bordered horizontal bar filled to pct.
func drawGauge(screen *ebiten.Image, x, y, w, h, pct float64, c color.Color) {
	fillRect(screen, x, y, w, h, color.RGBA{150, 150, 150, 255})
	fillRect(screen, x+1, y+1, w-2, h-2, color.RGBA{40, 40, 40, 255})
	fillRect(screen, x+1, y+1, (w-2)*lo.Clamp(pct, 0, 1), h-2, c)
}
