package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const Title = "ROAD RASH"

// DrawStart shows the pulsing title and the start prompt. elapsed is in
// seconds since the overlay appeared.
func DrawStart(screen *ebiten.Image, elapsed float64) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	fillRect(screen, 0, 0, width, height, color.RGBA{15, 20, 35, 160})

	cx, cy := width/2, height/3
	pulse := 1 + 0.1*math.Sin(elapsed*2)
	brightness := math.Min(1, 1+0.2*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	drawCentered(screen, Title, cx, cy-8, 8*pulse, titleColor)
	drawCentered(screen, "Smash trash bags, dodge everything else", cx, cy+120, 2, color.RGBA{180, 180, 200, 255})

	if Blink(elapsed) {
		drawCentered(screen, "Press ENTER to start", cx, height-140, 1.5, color.RGBA{150, 200, 255, 255})
	}
	drawCentered(screen, "arrows to ride", cx, height-100, 1, labelGrey)
}

// DrawGameOver shows the session summary and the restart prompt.
func DrawGameOver(screen *ebiten.Image, summary string, elapsed float64) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	fillRect(screen, 0, 0, width, height, color.RGBA{30, 0, 0, 170})

	cx := width / 2
	drawCentered(screen, "GAME OVER", cx, height/3, 6, color.RGBA{255, 80, 60, 255})
	drawCentered(screen, summary, cx, height/3+120, 1.5, color.White)
	if Blink(elapsed) {
		drawCentered(screen, "Press ENTER to ride again", cx, height-140, 1.5, color.RGBA{150, 200, 255, 255})
	}
}

// Blink toggles every half second.
func Blink(elapsed float64) bool {
	return int(elapsed*2)%2 == 0
}
