package render

import (
	"math"

	"github.com/golangdaddy/roadrash/pkg/road"
)

// Camera is the eye position in world space plus its optical depth.
type Camera struct {
	X, Y, Z float64
	Depth   float64
}

// Viewport is the target surface size and the road half-width in world units.
type Viewport struct {
	Width, Height float64
	RoadWidth     float64
}

// Projection is a track point expressed in camera and screen space.
type Projection struct {
	Camera  road.Point // world minus camera
	Scale   float64
	X, Y, W float64 // screen position and projected road half-width, rounded
}

// CameraDepth converts a field of view in degrees into the optical depth
// used by Project.
func CameraDepth(fovDegrees float64) float64 {
	return 1 / math.Tan((fovDegrees/2)*math.Pi/180)
}

// Project maps p onto the viewport. The caller must discard the result when
// Camera.Z <= cam.Depth; no clipping happens here.
func Project(p road.Point, cam Camera, vp Viewport) Projection {
	c := road.Point{X: p.X - cam.X, Y: p.Y - cam.Y, Z: p.Z - cam.Z}
	scale := cam.Depth / c.Z
	halfW, halfH := vp.Width/2, vp.Height/2
	return Projection{
		Camera: c,
		Scale:  scale,
		X:      math.Round(halfW + scale*c.X*halfW),
		Y:      math.Round(halfH - scale*c.Y*halfH),
		W:      math.Round(scale * vp.RoadWidth * halfW),
	}
}
