// Package easing holds the quadratic and cosine interpolation curves used to
// ramp road curvature and elevation and to bob the camera between segment
// endpoints.
package easing

import "math"

// In interpolates from a to b with a quadratic ease-in: slow start, fast end.
func In(a, b, t float64) float64 {
	return a + (b-a)*t*t
}

// Out interpolates from a to b with a quadratic ease-out: fast start, slow end.
func Out(a, b, t float64) float64 {
	return a + (b-a)*(1-(1-t)*(1-t))
}

// InOut interpolates from a to b along half a cosine wave.
func InOut(a, b, t float64) float64 {
	return a + (b-a)*(0.5-math.Cos(t*math.Pi)/2)
}

// Percent returns how far n lies into a span of total steps, or 0 for an
// empty span.
func Percent(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(n) / float64(total)
}
