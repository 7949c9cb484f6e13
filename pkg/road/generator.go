package road

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/golangdaddy/roadrash/pkg/easing"
)

// RandomSource supplies uniform values in [0, 1) for sprite placement.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded math/rand source.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// Primitive is one road building block. It expands into Enter+Hold+Leave
// segments; curvature ramps in and out over Enter and Leave while elevation
// eases across the whole span.
type Primitive struct {
	Enter, Hold, Leave int
	Curve              float64
	Hill               float64 // elevation change in segment lengths
	ToGround           bool    // ignore Hill and end at elevation 0
}

// Len returns the number of segments the primitive produces.
func (p Primitive) Len() int {
	return p.Enter + p.Hold + p.Leave
}

// Straight is a flat, straight stretch of 3n segments.
func Straight(n int) Primitive {
	return Primitive{Enter: n, Hold: n, Leave: n}
}

// Curve bends the road by curve over 3n segments.
func Curve(n int, curve float64) Primitive {
	return Primitive{Enter: n, Hold: n, Leave: n, Curve: curve}
}

// Hill raises (or with a negative height lowers) the road over 3n segments.
func Hill(n int, height float64) Primitive {
	return Primitive{Enter: n, Hold: n, Leave: n, Hill: height}
}

// Descend brings the road back to elevation 0 over 3n segments.
func Descend(n int) Primitive {
	return Primitive{Enter: n, Hold: n, Leave: n, ToGround: true}
}

// Route is an ordered list of primitives.
type Route []Primitive

// Len returns the number of segments the route produces.
func (r Route) Len() int {
	total := 0
	for _, p := range r {
		total += p.Len()
	}
	return total
}

// DefaultRoute is the composite course driven every session.
func DefaultRoute() Route {
	return Route{
		Straight(25),
		Curve(100, 2),
		Hill(50, 20),
		Curve(100, -2),
		Hill(50, -20),
		Curve(100, 3),
		Straight(25),
		Curve(100, -3),
		Hill(100, 40),
		Descend(100),
		Straight(100),
	}
}

// Generator expands a route into a track and scatters sprites over it.
type Generator struct {
	rnd      RandomSource
	segments []Segment
}

// NewGenerator returns a generator drawing sprite placement from rnd.
func NewGenerator(rnd RandomSource) *Generator {
	return &Generator{rnd: rnd}
}

// Build generates a fresh track from route. minSegments guards against
// tracks shorter than the renderer's draw distance.
func (g *Generator) Build(route Route, minSegments int) (*Track, error) {
	g.segments = make([]Segment, 0, route.Len())
	for _, p := range route {
		g.addRoad(p)
	}
	if len(g.segments) == 0 || len(g.segments) < minSegments {
		return nil, fmt.Errorf("%w: %d segments, need %d", ErrTrackTooShort, len(g.segments), minSegments)
	}

	g.scatterSprites()

	track, err := NewTrack(g.segments)
	if err != nil {
		return nil, err
	}
	g.markStartAndFinish(track)
	g.segments = nil
	return track, nil
}

func (g *Generator) lastY() float64 {
	if len(g.segments) == 0 {
		return 0
	}
	return g.segments[len(g.segments)-1].P2.Y
}

func (g *Generator) addSegment(curve, y float64) {
	n := len(g.segments)
	g.segments = append(g.segments, Segment{
		Index:   n,
		P1:      Point{Y: g.lastY(), Z: float64(n) * SegmentLength},
		P2:      Point{Y: y, Z: float64(n+1) * SegmentLength},
		Curve:   curve,
		Banding: bandingFor(n),
	})
}

func (g *Generator) addRoad(p Primitive) {
	startY := g.lastY()
	endY := startY + math.Floor(p.Hill)*SegmentLength
	if p.ToGround {
		endY = 0
	}
	total := p.Len()

	// far edges ease towards endY so the last segment lands on it exactly
	for n := 0; n < p.Enter; n++ {
		g.addSegment(easing.In(0, p.Curve, easing.Percent(n, p.Enter)),
			easing.InOut(startY, endY, easing.Percent(n+1, total)))
	}
	for n := 0; n < p.Hold; n++ {
		g.addSegment(p.Curve,
			easing.InOut(startY, endY, easing.Percent(p.Enter+n+1, total)))
	}
	for n := 0; n < p.Leave; n++ {
		g.addSegment(easing.In(p.Curve, 0, easing.Percent(n, p.Leave)),
			easing.InOut(startY, endY, easing.Percent(p.Enter+p.Hold+n+1, total)))
	}
}

func (g *Generator) scatterSprites() {
	for n := ScatterStart; n < len(g.segments)-ScatterMargin; n += ScatterStride {
		roll := g.rnd.Float64()
		switch {
		case roll < 0.4:
			g.addSprite(n, NewTrash(g.rnd.Float64()*2-1))
		case roll < 0.7:
			g.addSprite(n, NewParkedCar(g.side(0.6)))
		case roll < 0.9:
			g.addSprite(n, NewPedestrian(g.side(1.1)))
		}
	}
}

// side picks +offset or -offset with equal odds.
func (g *Generator) side(offset float64) float64 {
	if g.rnd.Float64() < 0.5 {
		return offset
	}
	return -offset
}

func (g *Generator) addSprite(n int, s Sprite) {
	g.segments[n].Sprites = append(g.segments[n].Sprites, s)
}

func (g *Generator) markStartAndFinish(t *Track) {
	start := t.FindSegment(0).Index + StartLineOffset
	t.At(start).Banding = BandingStart
	t.At(start + 1).Banding = BandingStart

	for n := 0; n < RumbleLength && n < t.Len(); n++ {
		t.Segments[t.Len()-1-n].Banding = BandingFinish
	}
}
