package road

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays a fixed sequence of values, cycling when exhausted.
type scriptedRand struct {
	values []float64
	calls  int
}

func (s *scriptedRand) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

// noSprites always rolls the "nothing placed" branch.
func noSprites() RandomSource { return &scriptedRand{values: []float64{0.95}} }

func buildDefault(t *testing.T) *Track {
	t.Helper()
	track, err := NewGenerator(NewRandomSource(42)).Build(DefaultRoute(), 300)
	require.NoError(t, err)
	return track
}

func TestTrackLength(t *testing.T) {
	routes := map[string]Route{
		"default":  DefaultRoute(),
		"straight": {Straight(1)},
		"mixed":    {Curve(7, 1.5), Hill(3, -2), Straight(4)},
		"uneven":   {{Enter: 2, Hold: 5, Leave: 1, Curve: 3}},
	}
	for name, route := range routes {
		t.Run(name, func(t *testing.T) {
			track, err := NewGenerator(noSprites()).Build(route, 1)
			require.NoError(t, err)
			assert.Equal(t, route.Len(), track.Len())
			assert.Equal(t, float64(track.Len())*SegmentLength, track.Length())
		})
	}
}

func TestSegmentZAndIndex(t *testing.T) {
	track := buildDefault(t)
	for n, seg := range track.Segments {
		require.Equal(t, n, seg.Index)
		require.Equal(t, float64(n)*SegmentLength, seg.P1.Z)
		require.Equal(t, float64(n+1)*SegmentLength, seg.P2.Z)
	}
}

func TestElevationContinuity(t *testing.T) {
	track := buildDefault(t)
	n := track.Len()
	for i := 0; i < n; i++ {
		cur, next := track.At(i), track.At(i+1)
		require.InDelta(t, cur.P2.Y, next.P1.Y, 1e-9, "segment %d far edge vs %d near edge", i, (i+1)%n)
	}
	assert.Equal(t, 0.0, track.Segments[0].P1.Y)
	assert.InDelta(t, 0.0, track.Segments[n-1].P2.Y, 1e-9)
}

func TestHillReachesTarget(t *testing.T) {
	track, err := NewGenerator(noSprites()).Build(Route{Hill(10, 4), Straight(2)}, 1)
	require.NoError(t, err)

	top := track.Segments[29]
	assert.InDelta(t, 4*SegmentLength, top.P2.Y, 1e-9)
	// the straight that follows holds the summit height
	assert.InDelta(t, 4*SegmentLength, track.Segments[35].P2.Y, 1e-9)
	for i := 0; i < 29; i++ {
		assert.LessOrEqual(t, track.Segments[i].P2.Y, track.Segments[i+1].P2.Y)
	}
}

func TestCurveRamp(t *testing.T) {
	track, err := NewGenerator(noSprites()).Build(Route{Curve(4, 2)}, 1)
	require.NoError(t, err)

	curves := make([]float64, track.Len())
	for i, s := range track.Segments {
		curves[i] = s.Curve
	}
	want := []float64{
		0, 2 * 0.0625, 2 * 0.25, 2 * 0.5625, // ease in
		2, 2, 2, 2, // hold
		2, 2 - 2*0.0625, 2 - 2*0.25, 2 - 2*0.5625, // ease back out
	}
	assert.InDeltaSlice(t, want, curves, 1e-9)
	for _, s := range track.Segments {
		assert.Equal(t, 0.0, s.P2.Y, "curves stay flat")
	}
}

func TestBanding(t *testing.T) {
	track := buildDefault(t)
	n := track.Len()

	assert.Equal(t, BandingStart, track.Segments[StartLineOffset].Banding)
	assert.Equal(t, BandingStart, track.Segments[StartLineOffset+1].Banding)
	for i := 0; i < RumbleLength; i++ {
		assert.Equal(t, BandingFinish, track.Segments[n-1-i].Banding)
	}

	starts, finishes := 0, 0
	for i, s := range track.Segments {
		switch s.Banding {
		case BandingStart:
			starts++
		case BandingFinish:
			finishes++
		default:
			assert.Equal(t, bandingFor(i), s.Banding, "segment %d", i)
		}
	}
	assert.Equal(t, 2, starts)
	assert.Equal(t, RumbleLength, finishes)
	assert.Equal(t, BandingLight, bandingFor(2))
	assert.Equal(t, BandingDark, bandingFor(3))
	assert.Equal(t, BandingLight, bandingFor(6))
}

func TestScatterSprites(t *testing.T) {
	// three candidate slots (20, 30, 40) on a 150 segment track
	rnd := &scriptedRand{values: []float64{
		0.1, 0.75, // trash at 0.75*2-1
		0.5, 0.2, // car, right side
		0.8, 0.9, // pedestrian, left side
	}}
	track, err := NewGenerator(rnd).Build(Route{Straight(50)}, 1)
	require.NoError(t, err)

	got := map[int][]Sprite{}
	for _, s := range track.Segments {
		if len(s.Sprites) > 0 {
			got[s.Index] = s.Sprites
		}
	}
	want := map[int][]Sprite{
		20: {NewTrash(0.5)},
		30: {NewParkedCar(0.6)},
		40: {NewPedestrian(-1.1)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sprite placement mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 6, rnd.calls)
}

func TestScatterNothing(t *testing.T) {
	rnd := &scriptedRand{values: []float64{0.9}}
	track, err := NewGenerator(rnd).Build(Route{Straight(50)}, 1)
	require.NoError(t, err)
	assert.Empty(t, track.SpriteCounts())
	assert.Equal(t, 3, rnd.calls, "one roll per candidate slot")
}

func TestScatterBounds(t *testing.T) {
	track := buildDefault(t)
	for _, s := range track.Segments {
		if len(s.Sprites) == 0 {
			continue
		}
		assert.GreaterOrEqual(t, s.Index, ScatterStart)
		assert.Less(t, s.Index, track.Len()-ScatterMargin)
		assert.Zero(t, (s.Index-ScatterStart)%ScatterStride)
		for _, sp := range s.Sprites {
			switch sp.Kind {
			case KindCollectible:
				assert.True(t, sp.Offset >= -1 && sp.Offset <= 1)
			case KindStaticObstacle:
				assert.Contains(t, []float64{0.6, -0.6}, sp.Offset)
			case KindWalkingObstacle:
				assert.Contains(t, []float64{1.1, -1.1}, sp.Offset)
			}
		}
	}
}

func TestBuildTooShort(t *testing.T) {
	_, err := NewGenerator(noSprites()).Build(Route{Straight(1)}, 300)
	assert.True(t, errors.Is(err, ErrTrackTooShort))

	_, err = NewGenerator(noSprites()).Build(Route{}, 0)
	assert.True(t, errors.Is(err, ErrTrackTooShort))

	_, err = NewTrack(nil)
	assert.True(t, errors.Is(err, ErrTrackTooShort))
}

func TestFindSegmentWraps(t *testing.T) {
	track, err := NewGenerator(noSprites()).Build(Route{Straight(2)}, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, track.FindSegment(0).Index)
	assert.Equal(t, 0, track.FindSegment(SegmentLength-0.001).Index)
	assert.Equal(t, 1, track.FindSegment(SegmentLength).Index)
	assert.Equal(t, 0, track.FindSegment(track.Length()).Index)
	assert.Equal(t, 5, track.FindSegment(-1).Index)
	assert.Equal(t, 2, track.At(-4).Index)
	assert.Equal(t, 1, track.At(13).Index)
}

func TestWrapRange(t *testing.T) {
	track := buildDefault(t)
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		z := (rnd.Float64()*2 - 1) * track.Length() * 10
		w := track.Wrap(z)
		require.GreaterOrEqual(t, w, 0.0)
		require.Less(t, w, track.Length())
	}
	assert.Equal(t, 0.0, track.Wrap(track.Length()))
	assert.Equal(t, 0.0, track.Wrap(-1e-300))
}

func TestRemoveSprite(t *testing.T) {
	seg := Segment{Sprites: []Sprite{NewTrash(0), NewParkedCar(0.6), NewTrash(-0.5)}}
	seg.RemoveSprite(1)
	assert.Equal(t, []Sprite{NewTrash(0), NewTrash(-0.5)}, seg.Sprites)
	seg.RemoveSprite(5)
	assert.Len(t, seg.Sprites, 2)
}

func TestCollisionRadius(t *testing.T) {
	assert.InDelta(t, 0.4, SpriteTrash.CollisionRadius(), 1e-9)
	assert.InDelta(t, 0.6, SpriteCar.CollisionRadius(), 1e-9)
	assert.InDelta(t, 0.3, SpritePedestrian.CollisionRadius(), 1e-9)
}
