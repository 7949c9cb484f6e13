package road

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
)

// ErrTrackTooShort is returned when a track has fewer segments than required.
var ErrTrackTooShort = errors.New("track too short")

// Track is the circular, append-once sequence of segments for one session.
type Track struct {
	Segments []Segment
	length   float64
}

// NewTrack wraps segments into a track. Segment n must span
// [n*SegmentLength, (n+1)*SegmentLength] along z.
func NewTrack(segments []Segment) (*Track, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: no segments", ErrTrackTooShort)
	}
	for i := range segments {
		if segments[i].Index != i {
			return nil, fmt.Errorf("segment %d carries index %d", i, segments[i].Index)
		}
	}
	return &Track{
		Segments: segments,
		length:   float64(len(segments)) * SegmentLength,
	}, nil
}

// Len returns the number of segments.
func (t *Track) Len() int {
	return len(t.Segments)
}

// Length returns the total track length in world units.
func (t *Track) Length() float64 {
	return t.length
}

// At returns the segment at index i, wrapping in both directions.
func (t *Track) At(i int) *Segment {
	n := len(t.Segments)
	i %= n
	if i < 0 {
		i += n
	}
	return &t.Segments[i]
}

// FindSegment returns the segment containing world distance z, wrapping
// around the track.
func (t *Track) FindSegment(z float64) *Segment {
	return t.At(int(math.Floor(z / SegmentLength)))
}

// Wrap reduces z into [0, Length()).
func (t *Track) Wrap(z float64) float64 {
	z = math.Mod(z, t.length)
	if z < 0 {
		z += t.length
	}
	// math.Mod of a tiny negative value can round back up to the length
	if z >= t.length {
		z = 0
	}
	return z
}

// SpriteCounts tallies the placed sprites by kind.
func (t *Track) SpriteCounts() map[SpriteKind]int {
	all := lo.FlatMap(t.Segments, func(s Segment, _ int) []Sprite { return s.Sprites })
	return lo.CountValuesBy(all, func(s Sprite) SpriteKind { return s.Kind })
}
