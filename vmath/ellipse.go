package vmath

import "math"

// Ellipse describes a tilted elliptical orbit around the origin
// The vertical sweep uses Radii[2] and the depth sweep Radii[1]
type Ellipse struct {
	Radii Vec3
	TiltX float64
	TiltY float64
}

// Point returns the orbit position at angle theta
func (e Ellipse) Point(theta float64) Vec3 {
	x := math.Cos(theta) * e.Radii[0]
	y := math.Sin(theta) * e.Radii[2]
	z := math.Sin(theta) * e.Radii[1]

	// Tilt about X
	cx, sx := math.Cos(e.TiltX), math.Sin(e.TiltX)
	y, z = y*cx-z*sx, y*sx+z*cx

	// Tilt about Y
	cy, sy := math.Cos(e.TiltY), math.Sin(e.TiltY)
	x, z = x*cy+z*sy, z*cy-x*sy

	return Vec3{x, y, z}
}
