package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 and Quat are the mgl64 types, aliased so callers don't import mathgl directly
type (
	Vec3 = mgl64.Vec3
	Quat = mgl64.Quat
)

// V3 builds a Vec3
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// One is the unit scale
func One() Vec3 {
	return Vec3{1, 1, 1}
}

// Splat returns a vector with all components set to s
func Splat(s float64) Vec3 {
	return Vec3{s, s, s}
}

// Identity returns the identity rotation
func Identity() Quat {
	return mgl64.QuatIdent()
}

// Normalize returns the unit vector, zero vector stays zero
func Normalize(v Vec3) Vec3 {
	mag := v.Len()
	if mag == 0 {
		return Vec3{}
	}
	return v.Mul(1 / mag)
}

// Distance returns Euclidean distance between a and b
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// LerpV3 interpolates component-wise
func LerpV3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
	}
}

// MoveTowardsV3 steps each axis independently by at most maxDelta
func MoveTowardsV3(cur, target Vec3, maxDelta float64) Vec3 {
	return Vec3{
		MoveTowards(cur[0], target[0], maxDelta),
		MoveTowards(cur[1], target[1], maxDelta),
		MoveTowards(cur[2], target[2], maxDelta),
	}
}

// EulerDeg converts XYZ Euler angles in degrees to a quaternion
func EulerDeg(x, y, z float64) Quat {
	return mgl64.AnglesToQuat(mgl64.DegToRad(x), mgl64.DegToRad(y), mgl64.DegToRad(z), mgl64.XYZ)
}

// AxisAngleDeg builds a rotation of deg degrees about axis
// Degenerate axis yields identity
func AxisAngleDeg(deg float64, axis Vec3) Quat {
	n := Normalize(axis)
	if n.Len() == 0 {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatRotate(mgl64.DegToRad(deg), n)
}

// Finite reports whether no component is NaN or Inf
func Finite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// FiniteQuat reports whether the quaternion has no NaN or Inf component
func FiniteQuat(q Quat) bool {
	return Finite(q.V) && !math.IsNaN(q.W) && !math.IsInf(q.W, 0)
}
