package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/golangdaddy/roadrash/pkg/log"
	"github.com/golangdaddy/roadrash/pkg/sim"
	"github.com/golangdaddy/roadrash/pkg/ui"
)

// step runs one simulation tick and reacts to what happened.
func (g *Game) step() {
	ev := g.world.Step(g.cfg.Step(), g.input)
	if g.sound != nil {
		g.sound.React(ev)
	}
	if ev.GameOver {
		g.ticks = 0
		p := g.world.Player
		log.Info("game over",
			zap.Stringer("session", g.session),
			zap.Int("trash", p.Trash),
			zap.Int("score", p.Score),
		)
	}
}

// drawRoad renders the track and the bike.
func (g *Game) drawRoad() {
	g.renderer.Render(g.canvas, g.world.Track, g.world.Player, g.input)
}

// drawOverlay draws the HUD and whichever state screen is active.
func (g *Game) drawOverlay(dst *ebiten.Image) {
	elapsed := float64(g.ticks) / float64(g.cfg.FPS)
	p := g.world.Player
	switch p.State {
	case sim.StateStart:
		ui.DrawStart(dst, elapsed)
	case sim.StatePlaying:
		ui.DrawHUD(dst, p.Readout(), g.world.SpeedPercent())
	case sim.StateGameOver:
		ui.DrawHUD(dst, p.Readout(), g.world.SpeedPercent())
		ui.DrawGameOver(dst, p.Summary(), elapsed)
	}
}
