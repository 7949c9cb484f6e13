package render

import (
	"image"
	"math"

	"github.com/golangdaddy/roadrash/pkg/road"
	"github.com/golangdaddy/roadrash/pkg/sim"
)

// drawSprite blits src scaled by the projection scale with its anchor at
// (x, y). offsetX and offsetY shift the sprite by multiples of its own size.
// Rows below clipY are cropped; clipY <= 0 disables cropping. It reports
// whether anything was drawn.
func (r *Renderer) drawSprite(c Canvas, src road.SpriteSource, scale, x, y, offsetX, offsetY, clipY float64) bool {
	half := r.vp.Width / 2
	dw := float64(src.W()) * scale * half
	dh := float64(src.H()) * scale * half
	dx := x + dw*offsetX
	dy := y + dh*offsetY

	clipH := 0.0
	if clipY > 0 {
		clipH = math.Max(0, dy+dh-clipY)
	}
	if dw <= 0 || clipH >= dh {
		return false
	}
	rect := src.Rect
	if clipH > 0 {
		keep := int(math.Round(float64(src.H()) * (1 - clipH/dh)))
		if keep <= 0 {
			return false
		}
		rect = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+keep)
	}
	c.Blit(src.Sheet, rect, Rect{X: dx, Y: dy, W: dw, H: dh - clipH})
	return true
}

// BikeSprite picks the bike variant for the steering input and lateral
// offset: past the hard-turn offset the bike leans harder.
func BikeSprite(in sim.Input, x float64) road.SpriteSource {
	switch {
	case in.Left && x < -sim.HardTurnOffset:
		return road.SpriteBikeHardLeft
	case in.Left:
		return road.SpriteBikeLeft
	case in.Right && x > sim.HardTurnOffset:
		return road.SpriteBikeHardRight
	case in.Right:
		return road.SpriteBikeRight
	}
	return road.SpriteBikeStraight
}

func (r *Renderer) drawPlayer(c Canvas, player sim.PlayerState, in sim.Input) {
	scale := r.depth / r.cfg.CameraHeight
	r.drawSprite(c, BikeSprite(in, player.X), scale, r.vp.Width/2, r.vp.Height, -0.5, -1, 0)
}
