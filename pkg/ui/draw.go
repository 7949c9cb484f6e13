package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	face     = text.NewGoXFace(bitmapfont.Face)
	whiteImg = newWhite()
)

func newWhite() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}

// fillRect stretches a white pixel over the rectangle.
func fillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(whiteImg, op)
}

// drawPanel draws a translucent box with a 2px border.
func drawPanel(screen *ebiten.Image, x, y, w, h float64) {
	border := color.RGBA{100, 100, 120, 255}
	fillRect(screen, x, y, w, h, border)
	fillRect(screen, x+2, y+2, w-4, h-4, color.RGBA{20, 20, 30, 200})
}

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// drawCentered draws s horizontally centred on cx.
func drawCentered(screen *ebiten.Image, s string, cx, y, scale float64, c color.Color) {
	w := text.Advance(s, face) * scale
	drawText(screen, s, cx-w/2, y, scale, c)
}

// drawRight draws s with its right edge at x.
func drawRight(screen *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	w := text.Advance(s, face) * scale
	drawText(screen, s, x-w, y, scale, c)
}
