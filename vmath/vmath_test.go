package vmath

import (
	"math"
	"testing"
)

func TestMoveTowardsNoOvershoot(t *testing.T) {
	tests := []struct {
		name                      string
		current, target, maxDelta float64
		want                      float64
	}{
		{"step up", 0, 1, 0.25, 0.25},
		{"step down", 1, 0, 0.25, 0.75},
		{"snap within delta", 0.9, 1, 0.25, 1},
		{"already there", 2, 2, 0.1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveTowards(tt.current, tt.target, tt.maxDelta)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestEaseOutCubicEndpoints(t *testing.T) {
	if EaseOutCubic(0) != 0 {
		t.Errorf("Expected 0 at t=0, got %v", EaseOutCubic(0))
	}
	if EaseOutCubic(1) != 1 {
		t.Errorf("Expected 1 at t=1, got %v", EaseOutCubic(1))
	}
	if EaseOutCubic(0.5) <= 0.5 {
		t.Errorf("Expected ease-out to lead linear at midpoint, got %v", EaseOutCubic(0.5))
	}
}

func TestNormalizeZero(t *testing.T) {
	if n := Normalize(Vec3{}); n != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", n)
	}
	n := Normalize(V3(3, 0, 4))
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %v", n.Len())
	}
}

func TestAxisAngleDegenerateAxis(t *testing.T) {
	q := AxisAngleDeg(45, Vec3{})
	if q != Identity() {
		t.Errorf("Expected identity for zero axis, got %v", q)
	}
	if !FiniteQuat(AxisAngleDeg(90, V3(0, 1, 0))) {
		t.Error("Expected finite quaternion")
	}
}

func TestEulerDegRotatesVector(t *testing.T) {
	q := EulerDeg(0, 0, 90)
	v := q.Rotate(V3(1, 0, 0))
	if math.Abs(v[0]) > 1e-9 || math.Abs(v[1]-1) > 1e-9 {
		t.Errorf("Expected (0,1,0) after 90deg about Z, got %v", v)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(7.5, 7) != -7 {
		t.Errorf("Expected wrap to -7, got %v", Wrap(7.5, 7))
	}
	if Wrap(-7.5, 7) != 7 {
		t.Errorf("Expected wrap to 7, got %v", Wrap(-7.5, 7))
	}
	if Wrap(3, 7) != 3 {
		t.Errorf("Expected 3 unchanged, got %v", Wrap(3, 7))
	}
}

func TestEllipseZeroTiltMatchesAxes(t *testing.T) {
	e := Ellipse{Radii: V3(2, 3, 4)}
	p := e.Point(0)
	if math.Abs(p[0]-2) > 1e-12 || math.Abs(p[1]) > 1e-12 || math.Abs(p[2]) > 1e-12 {
		t.Errorf("Expected (2,0,0) at theta=0, got %v", p)
	}
	p = e.Point(math.Pi / 2)
	if math.Abs(p[1]-4) > 1e-9 || math.Abs(p[2]-3) > 1e-9 {
		t.Errorf("Expected (0,4,3) at theta=pi/2, got %v", p)
	}
}
