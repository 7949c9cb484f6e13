package road

// Track geometry shared by the generator, the simulation and the renderer.
const (
	SegmentLength = 200.0 // world units along z covered by one segment
	RumbleLength  = 3     // segments per colour band
)

// Sprite scatter layout for a generated route.
const (
	ScatterStart  = 20  // first segment index that may carry a sprite
	ScatterStride = 10  // distance between candidate segments
	ScatterMargin = 100 // segments left empty before the end of the track
)

// StartLineOffset is how many segments past the player's starting segment
// the two START bands begin.
const StartLineOffset = 2

// Banding selects the colour set a segment is painted with.
type Banding int

const (
	BandingLight Banding = iota
	BandingDark
	BandingStart
	BandingFinish
)

func (b Banding) String() string {
	switch b {
	case BandingLight:
		return "light"
	case BandingDark:
		return "dark"
	case BandingStart:
		return "start"
	case BandingFinish:
		return "finish"
	}
	return "unknown"
}

// SpriteKind tags how a roadside sprite behaves when the player reaches it.
type SpriteKind int

const (
	// KindCollectible is removed on contact and pays a bonus.
	KindCollectible SpriteKind = iota
	// KindStaticObstacle stays put and damages the player.
	KindStaticObstacle
	// KindWalkingObstacle sways across the road and damages the player.
	KindWalkingObstacle
)

func (k SpriteKind) String() string {
	switch k {
	case KindCollectible:
		return "collectible"
	case KindStaticObstacle:
		return "static"
	case KindWalkingObstacle:
		return "walking"
	}
	return "unknown"
}

// Sheet identifies one of the three decoded images supplied by the asset
// collaborator.
type Sheet int

const (
	SheetBackground Sheet = iota
	SheetBike
	SheetObstacles
)

func (s Sheet) String() string {
	switch s {
	case SheetBackground:
		return "background"
	case SheetBike:
		return "bike"
	case SheetObstacles:
		return "obstacles"
	}
	return "unknown"
}
