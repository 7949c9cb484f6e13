package road

import "image"

// collisionScale converts a sprite's pixel width into a lateral collision
// radius in road-width units.
const collisionScale = 500.0

// SpriteSource is a named sub-rectangle of a sprite sheet.
type SpriteSource struct {
	Name  string
	Sheet Sheet
	Rect  image.Rectangle
}

// W returns the source width in pixels.
func (s SpriteSource) W() int { return s.Rect.Dx() }

// H returns the source height in pixels.
func (s SpriteSource) H() int { return s.Rect.Dy() }

// CollisionRadius is the lateral distance inside which the player touches
// a sprite cut from this source.
func (s SpriteSource) CollisionRadius() float64 {
	return float64(s.W()) / collisionScale
}

func source(name string, sheet Sheet, x, y, w, h int) SpriteSource {
	return SpriteSource{Name: name, Sheet: sheet, Rect: image.Rect(x, y, x+w, y+h)}
}

// Sprite sub-rectangles on the obstacle and bike sheets.
var (
	SpriteTrash      = source("trash", SheetObstacles, 420, 450, 200, 180)
	SpriteCar        = source("car", SheetObstacles, 60, 400, 300, 200)
	SpritePedestrian = source("pedestrian", SheetObstacles, 780, 370, 150, 260)

	SpriteBikeStraight  = source("bike-straight", SheetBike, 400, 340, 220, 350)
	SpriteBikeLeft      = source("bike-left", SheetBike, 200, 340, 220, 350)
	SpriteBikeHardLeft  = source("bike-hard-left", SheetBike, 0, 340, 220, 350)
	SpriteBikeRight     = source("bike-right", SheetBike, 600, 340, 220, 350)
	SpriteBikeHardRight = source("bike-hard-right", SheetBike, 800, 340, 220, 350)
)

// ObstacleSprites lists every source on the obstacle sheet.
var ObstacleSprites = []SpriteSource{SpriteTrash, SpriteCar, SpritePedestrian}

// BikeSprites lists every source on the bike sheet.
var BikeSprites = []SpriteSource{
	SpriteBikeHardLeft, SpriteBikeLeft, SpriteBikeStraight, SpriteBikeRight, SpriteBikeHardRight,
}

// Sprite is a decoration or obstacle placed on a segment.
type Sprite struct {
	Kind   SpriteKind
	Source SpriteSource
	Offset float64 // lateral position, ±1 is the road edge
	Base   float64 // offset a walking sprite sways around
}

// NewTrash returns a collectible trash bag at the given offset.
func NewTrash(offset float64) Sprite {
	return Sprite{Kind: KindCollectible, Source: SpriteTrash, Offset: offset}
}

// NewParkedCar returns a stationary car obstacle at the given offset.
func NewParkedCar(offset float64) Sprite {
	return Sprite{Kind: KindStaticObstacle, Source: SpriteCar, Offset: offset}
}

// NewPedestrian returns a walking obstacle at the given offset.
func NewPedestrian(offset float64) Sprite {
	return Sprite{Kind: KindWalkingObstacle, Source: SpritePedestrian, Offset: offset, Base: offset}
}

// Collectible reports whether touching the sprite collects it.
func (s Sprite) Collectible() bool { return s.Kind == KindCollectible }

// Walking reports whether the sprite sways across the road.
func (s Sprite) Walking() bool { return s.Kind == KindWalkingObstacle }
