package road

// Point is a world-space track coordinate. Z runs along the track.
type Point struct {
	X, Y, Z float64
}

// Segment is one longitudinal slice of road. Everything but Sprites is fixed
// once the generator has produced it.
type Segment struct {
	Index   int
	P1      Point // near edge
	P2      Point // far edge
	Curve   float64
	Banding Banding
	Sprites []Sprite
}

// HasLanes reports whether lane dividers are painted on the segment.
func (s *Segment) HasLanes() bool {
	return s.Banding == BandingLight
}

// RemoveSprite drops the i-th sprite and keeps the order of the rest.
func (s *Segment) RemoveSprite(i int) {
	if i < 0 || i >= len(s.Sprites) {
		return
	}
	s.Sprites = append(s.Sprites[:i], s.Sprites[i+1:]...)
}

func bandingFor(index int) Banding {
	if (index/RumbleLength)%2 == 1 {
		return BandingDark
	}
	return BandingLight
}
