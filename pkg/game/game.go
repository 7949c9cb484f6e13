package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/golangdaddy/roadrash/pkg/assets"
	"github.com/golangdaddy/roadrash/pkg/config"
	"github.com/golangdaddy/roadrash/pkg/log"
	"github.com/golangdaddy/roadrash/pkg/render"
	"github.com/golangdaddy/roadrash/pkg/road"
	"github.com/golangdaddy/roadrash/pkg/screen"
	"github.com/golangdaddy/roadrash/pkg/sfx"
	"github.com/golangdaddy/roadrash/pkg/sim"
)

// Game implements the ebiten.Game interface: one simulation step per Update,
// one rendered frame per Draw.
type Game struct {
	cfg      config.Config
	controls Controls
	world    *sim.World
	renderer *render.Renderer
	canvas   *screen.Canvas
	sound    *sfx.Board

	seed    int64
	rides   int       // tracks built so far, each with its own seed
	session uuid.UUID // current ride
	input   sim.Input // snapshot of the last tick
	ticks   int       // ticks since the last state change
}

// New builds the first track and parks the player on the start line.
func New(cfg config.Config, sheets assets.Sheets, controls Controls, sound *sfx.Board) (*Game, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg:      cfg,
		controls: controls,
		renderer: render.NewRenderer(cfg.Render(), palette),
		canvas:   screen.NewCanvas(sheets),
		sound:    sound,
		seed:     seed,
	}
	track, err := g.buildTrack()
	if err != nil {
		return nil, err
	}
	g.world = sim.NewWorld(track, sim.DefaultTuning(cfg.Step(), cfg.CameraHeight))
	return g, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		cfg.Seed = seed
	}
	sheets, err := assets.Load(cfg.AssetDir, seed)
	if err != nil {
		return err
	}
	g, err := New(cfg, sheets, Keyboard{}, sfx.NewBoard(cfg.Mute))
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Road Rash")
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Error("game loop stopped", zap.Stringer("session", g.session), zap.Error(err))
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// buildTrack generates the next ride's track.
func (g *Game) buildTrack() (*road.Track, error) {
	seed := g.seed + int64(g.rides)
	g.rides++
	track, err := road.NewGenerator(road.NewRandomSource(seed)).Build(road.DefaultRoute(), g.cfg.DrawDistance)
	if err != nil {
		return nil, fmt.Errorf("build track: %w", err)
	}
	counts := track.SpriteCounts()
	log.Info("track built",
		zap.Int64("seed", seed),
		zap.Int("segments", track.Len()),
		zap.Float64("length", track.Length()),
		zap.Int("trash", counts[road.KindCollectible]),
		zap.Int("cars", counts[road.KindStaticObstacle]),
		zap.Int("pedestrians", counts[road.KindWalkingObstacle]),
	)
	return track, nil
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	g.ticks++
	g.input = g.controls.Input()

	switch g.world.Player.State {
	case sim.StateStart:
		if g.controls.StartPressed() {
			g.start()
		}
	case sim.StateGameOver:
		if g.controls.StartPressed() {
			if err := g.restart(); err != nil {
				return err
			}
		}
	case sim.StatePlaying:
		g.step()
	}
	return nil
}

// Draw renders the current frame
func (g *Game) Draw(dst *ebiten.Image) {
	g.canvas.Target(dst)
	g.drawRoad()
	g.drawOverlay(dst)
}

// Layout returns the fixed render target size
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return config.ScreenWidth, config.ScreenHeight
}

// start begins a ride on the current track.
func (g *Game) start() {
	g.session = uuid.New()
	g.ticks = 0
	g.world.Start()
	log.Info("ride started", zap.Stringer("session", g.session))
}

// restart swaps in a fresh track between ticks and starts riding it.
func (g *Game) restart() error {
	track, err := g.buildTrack()
	if err != nil {
		return err
	}
	prev := g.session
	g.world.Reset(track)
	g.start()
	log.Info("ride restarted", zap.Stringer("previous", prev), zap.Stringer("session", g.session))
	return nil
}
