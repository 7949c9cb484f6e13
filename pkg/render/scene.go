// Package render draws the track as perspective-scaled road bands, with a
// parallax background, distance fog, roadside sprites and the player's bike.
// It reads the simulation and never writes to it.
package render

import (
	"image"
	"math"

	"github.com/golangdaddy/roadrash/pkg/easing"
	"github.com/golangdaddy/roadrash/pkg/road"
	"github.com/golangdaddy/roadrash/pkg/sim"
)

// Config describes the camera and the surface the scene is drawn on.
type Config struct {
	Width, Height int
	RoadWidth     float64
	Lanes         int
	FieldOfView   float64 // degrees
	CameraHeight  float64
	DrawDistance  int // segments
	Fog           bool
}

// FrameStats summarises one rendered frame.
type FrameStats struct {
	Candidates int // segments in the draw window
	Drawn      int // segments that survived culling
	Sprites    int // roadside sprites blitted
}

// slot is the per-frame projection of one window segment.
type slot struct {
	seg    *road.Segment
	p1, p2 Projection
	fog    float64
	looped bool
	clip   float64
}

// Renderer projects and draws a track. Its scratch buffer is reused across
// frames so a frame allocates nothing.
type Renderer struct {
	cfg     Config
	palette Palette
	depth   float64
	vp      Viewport
	scratch []slot
}

// NewRenderer returns a renderer for cfg.
func NewRenderer(cfg Config, palette Palette) *Renderer {
	return &Renderer{
		cfg:     cfg,
		palette: palette,
		depth:   CameraDepth(cfg.FieldOfView),
		vp: Viewport{
			Width:     float64(cfg.Width),
			Height:    float64(cfg.Height),
			RoadWidth: cfg.RoadWidth,
		},
		scratch: make([]slot, 0, cfg.DrawDistance),
	}
}

// Depth is the camera depth derived from the field of view.
func (r *Renderer) Depth() float64 {
	return r.depth
}

// Render draws one frame of track as seen from player.
func (r *Renderer) Render(c Canvas, track *road.Track, player sim.PlayerState, in sim.Input) FrameStats {
	var stats FrameStats
	w, h := r.vp.Width, r.vp.Height

	c.FillRect(Rect{W: w, H: h}, r.palette.Sky)
	r.drawBackground(c, player.SkyOffset)

	base := track.FindSegment(player.Position)
	basePercent := math.Mod(player.Position, road.SegmentLength) / road.SegmentLength
	lookahead := player.Position + r.cfg.CameraHeight
	ahead := track.FindSegment(lookahead)
	aheadPercent := math.Mod(track.Wrap(lookahead), road.SegmentLength) / road.SegmentLength
	playerY := easing.InOut(ahead.P1.Y, ahead.P2.Y, aheadPercent)

	window := min(r.cfg.DrawDistance, track.Len())
	stats.Candidates = window

	maxy := h
	x := 0.0
	dx := -(base.Curve * basePercent)

	r.scratch = r.scratch[:0]
	for n := 0; n < window; n++ {
		seg := track.At(base.Index + n)
		s := slot{seg: seg, looped: seg.Index < base.Index, clip: maxy}
		if r.cfg.Fog {
			s.fog = float64(n) / float64(window)
		}
		camZ := player.Position
		if s.looped {
			camZ -= track.Length()
		}
		camY := r.cfg.CameraHeight + playerY
		camX := player.X * r.cfg.RoadWidth
		s.p1 = Project(seg.P1, Camera{X: camX - x, Y: camY, Z: camZ, Depth: r.depth}, r.vp)
		s.p2 = Project(seg.P2, Camera{X: camX - x - dx, Y: camY, Z: camZ, Depth: r.depth}, r.vp)
		x += dx
		dx += seg.Curve
		r.scratch = append(r.scratch, s)

		if s.p1.Camera.Z <= r.depth || s.p2.Y >= s.p1.Y || s.p2.Y >= maxy {
			continue
		}
		r.drawSegment(c, s)
		stats.Drawn++
		maxy = s.p2.Y
	}

	for n := len(r.scratch) - 1; n > 0; n-- {
		s := &r.scratch[n]
		if s.p1.Camera.Z <= r.depth {
			continue
		}
		for _, sp := range s.seg.Sprites {
			spriteX := s.p1.X + s.p1.W*sp.Offset
			offsetX := 0.0
			if sp.Offset < 0 {
				offsetX = -1
			}
			if r.drawSprite(c, sp.Source, s.p1.Scale, spriteX, s.p1.Y, offsetX, -1, s.clip) {
				stats.Sprites++
			}
		}
	}

	r.drawPlayer(c, player, in)
	return stats
}

func (r *Renderer) drawBackground(c Canvas, offset float64) {
	sw, sh := c.SheetSize(road.SheetBackground)
	if sw == 0 || sh == 0 {
		return
	}
	w, h := r.vp.Width, r.vp.Height
	src := image.Rect(0, 0, sw/4, sh)
	shift := math.Mod(offset*w, w)
	if shift < 0 {
		shift += w
	}
	c.Blit(road.SheetBackground, src, Rect{X: -shift, W: w, H: h})
	c.Blit(road.SheetBackground, src, Rect{X: w - shift, W: w, H: h})
}

func (r *Renderer) drawSegment(c Canvas, s slot) {
	colors := r.palette.For(s.seg.Banding)
	x1, y1, w1 := s.p1.X, s.p1.Y, s.p1.W
	x2, y2, w2 := s.p2.X, s.p2.Y, s.p2.W

	c.FillRect(Rect{Y: y2, W: r.vp.Width, H: y1 - y2}, colors.Grass)

	lanes := max(1, r.cfg.Lanes)
	r1 := w1 / float64(max(6, 2*lanes))
	r2 := w2 / float64(max(6, 2*lanes))
	c.FillQuad(trapezoid(x1-w1-r1, y1, x1-w1, x2-w2-r2, y2, x2-w2), colors.Rumble)
	c.FillQuad(trapezoid(x1+w1, y1, x1+w1+r1, x2+w2, y2, x2+w2+r2), colors.Rumble)
	c.FillQuad(trapezoid(x1-w1, y1, x1+w1, x2-w2, y2, x2+w2), colors.Road)

	if s.seg.HasLanes() {
		l1 := w1 / float64(max(32, 8*lanes))
		l2 := w2 / float64(max(32, 8*lanes))
		lw1, lw2 := 2*w1/float64(lanes), 2*w2/float64(lanes)
		lx1, lx2 := x1-w1+lw1, x2-w2+lw2
		for lane := 1; lane < lanes; lane++ {
			c.FillQuad(trapezoid(lx1-l1/2, y1, lx1+l1/2, lx2-l2/2, y2, lx2+l2/2), colors.Lane)
			lx1 += lw1
			lx2 += lw2
		}
	}

	if s.fog > 0 {
		c.FillRect(Rect{Y: y2, W: r.vp.Width, H: y1 - y2}, r.palette.FogAt(s.fog))
	}
}

// trapezoid builds a quad from a near edge (y1) and a far edge (y2).
func trapezoid(nearL, y1, nearR, farL, y2, farR float64) Quad {
	return Quad{{nearL, y1}, {nearR, y1}, {farR, y2}, {farL, y2}}
}
