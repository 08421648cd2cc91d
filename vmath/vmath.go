// Package vmath holds the float helpers shared by shape layouts and motion systems
package vmath

import "math"

// Phi is the golden ratio
var Phi = (1 + math.Sqrt(5)) / 2

// GoldenAngle is the golden-angle increment in radians, π(3-√5)
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// Lerp linearly interpolates from a to b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// MoveTowards steps current toward target by at most maxDelta without overshoot
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// EaseOutCubic maps t in [0,1] to 1-(1-t)^3
func EaseOutCubic(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv*inv
}

// LerpEased interpolates with ease-out-cubic timing
func LerpEased(a, b, t float64) float64 {
	return Lerp(a, b, EaseOutCubic(t))
}

// Wrap folds v into [-bound, bound], used for bounded particle drift
func Wrap(v, bound float64) float64 {
	switch {
	case v > bound:
		return -bound
	case v < -bound:
		return bound
	default:
		return v
	}
}
