// Package sim advances the player along the track once per fixed tick:
// speed, steering, curve drift, off-road drag, sprite collisions and score.
package sim

import (
	"math"

	"github.com/samber/lo"

	"github.com/golangdaddy/roadrash/pkg/road"
)

// Events reports what happened during a single tick.
type Events struct {
	Collected bool
	Crashed   bool
	GameOver  bool
}

// World is the simulation context for one session: the track plus the
// player driving on it. Only the tick goroutine may touch it.
type World struct {
	Track  *road.Track
	Player PlayerState
	Tuning Tuning
}

// NewWorld returns a world in the START state on track.
func NewWorld(track *road.Track, tuning Tuning) *World {
	return &World{
		Track:  track,
		Player: NewPlayerState(),
		Tuning: tuning,
	}
}

// Reset swaps in a freshly generated track and puts the player back on the
// start line. Call it between ticks.
func (w *World) Reset(track *road.Track) {
	w.Track = track
	w.Player = NewPlayerState()
}

// Start moves the session into PLAYING.
func (w *World) Start() {
	w.Player.State = StatePlaying
}

// Playing reports whether ticks currently advance the simulation.
func (w *World) Playing() bool {
	return w.Player.State == StatePlaying
}

// PlayerSegment is the segment under the camera-forward lookahead point.
// Its curve drives drift and its sprites are the only collision candidates.
func (w *World) PlayerSegment() *road.Segment {
	return w.Track.FindSegment(w.Player.Position + w.Tuning.CameraHeight)
}

// SpeedPercent is the current speed as a fraction of top speed.
func (w *World) SpeedPercent() float64 {
	return w.Player.Speed / w.Tuning.MaxSpeed
}

// Step advances the world by dt seconds. It is a no-op unless PLAYING.
func (w *World) Step(dt float64, in Input) Events {
	var ev Events
	if !w.Playing() {
		return ev
	}
	p := &w.Player
	t := w.Tuning

	playerSegment := w.PlayerSegment()
	speedPercent := w.SpeedPercent()

	p.Position = w.Track.Wrap(p.Position + p.Speed*dt)

	switch {
	case in.Up:
		p.Speed = p.Speed + t.Accel*dt
	case in.Down:
		p.Speed = p.Speed + t.Breaking*dt
	default:
		p.Speed = p.Speed + t.Decel*dt
	}
	p.Speed = lo.Clamp(p.Speed, 0, t.MaxSpeed)

	if in.Left {
		p.X -= dt * TurnRate * speedPercent
	} else if in.Right {
		p.X += dt * TurnRate * speedPercent
	}

	p.X -= dt * TurnRate * speedPercent * playerSegment.Curve

	if math.Abs(p.X) > 1 && p.Speed > t.OffRoadLimit {
		p.Speed = math.Max(p.Speed+t.OffRoadDecel*dt, t.OffRoadLimit)
	}

	w.animateSprites()
	w.collide(playerSegment, &ev)

	p.Score += int(math.Round(p.Speed / SpeedScorePer))
	p.SkyOffset -= playerSegment.Curve * speedPercent * SkyDriftFactor
	p.X = lo.Clamp(p.X, -MaxOffset, MaxOffset)

	return ev
}

func (w *World) animateSprites() {
	sway := math.Sin(w.Player.Position/WalkPeriod) * WalkAmplitude
	for i := range w.Track.Segments {
		sprites := w.Track.Segments[i].Sprites
		for j := range sprites {
			if sprites[j].Walking() {
				sprites[j].Offset = sprites[j].Base + sway
			}
		}
	}
}

// collide resolves at most one hit against the player segment's sprites.
func (w *World) collide(seg *road.Segment, ev *Events) {
	p := &w.Player
	for i, sprite := range seg.Sprites {
		if math.Abs(p.X-sprite.Offset) >= sprite.Source.CollisionRadius() {
			continue
		}
		if sprite.Collectible() {
			seg.RemoveSprite(i)
			p.Trash++
			p.Score += TrashBonus
			ev.Collected = true
		} else {
			p.Speed = CrashSpeed
			p.Health -= CrashDamage
			p.Position = w.Track.Wrap(p.Position - BumpDistance)
			ev.Crashed = true
			if p.Health <= 0 {
				p.State = StateGameOver
				ev.GameOver = true
			}
		}
		return
	}
}
