package render

import (
	"image"
	"image/color"

	"github.com/golangdaddy/roadrash/pkg/road"
)

// Vec is a screen-space point.
type Vec struct {
	X, Y float64
}

// Quad is a convex four-sided polygon in drawing order.
type Quad [4]Vec

// Rect is a floating point screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Canvas is the raster target the scene is drawn onto.
type Canvas interface {
	// FillQuad fills a convex quad.
	FillQuad(q Quad, c color.Color)
	// FillRect fills an axis aligned rectangle, blending by c's alpha.
	FillRect(r Rect, c color.Color)
	// Blit scales the src sub-rectangle of sheet into dst.
	Blit(sheet road.Sheet, src image.Rectangle, dst Rect)
	// SheetSize reports the pixel size of a sheet.
	SheetSize(sheet road.Sheet) (w, h int)
}
