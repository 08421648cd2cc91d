package shape

import (
	"math"

	"github.com/lixenwraith/swarm-installation/seed"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// Params is the closed set of per-kind parameter structs
type Params interface {
	Kind() Kind
	sealed()
}

type CubeParams struct {
	Size  float64
	Scale float64
}

type SphereParams struct {
	Radius float64
	Scale  float64
}

type FibonacciSphereParams struct {
	Radius float64
}

type PlaneParams struct {
	Scale    float64
	Rotation vmath.Quat
}

type RandomParams struct {
	BaseScale float64
	Variation float64
}

type MatrixParams struct {
	Scale float64
}

type SpiralParams struct {
	Expansion float64
	Turns     float64
	Scale     float64
}

type GoldenSpiralParams struct {
	MaxTurns  float64
	MaxRadius float64
}

// LissajousParams also rescales the installation parent
type LissajousParams struct {
	ParentScale float64
	AFreq       float64
	BFreq       float64
	APhase      float64
	BPhase      float64
	Scale       float64
}

type MobiusParams struct {
	Width  float64
	Twists float64
}

type TorusKnotParams struct {
	P    float64
	Q    float64
	Tube float64
}

func (CubeParams) Kind() Kind            { return Cube }
func (SphereParams) Kind() Kind          { return Sphere }
func (FibonacciSphereParams) Kind() Kind { return FibonacciSphere }
func (PlaneParams) Kind() Kind           { return Plane }
func (RandomParams) Kind() Kind          { return Random }
func (MatrixParams) Kind() Kind          { return Matrix }
func (SpiralParams) Kind() Kind          { return Spiral }
func (GoldenSpiralParams) Kind() Kind    { return GoldenSpiral }
func (LissajousParams) Kind() Kind       { return Lissajous }
func (MobiusParams) Kind() Kind          { return Mobius }
func (TorusKnotParams) Kind() Kind       { return TorusKnot }

func (CubeParams) sealed()            {}
func (SphereParams) sealed()          {}
func (FibonacciSphereParams) sealed() {}
func (PlaneParams) sealed()           {}
func (RandomParams) sealed()          {}
func (MatrixParams) sealed()          {}
func (SpiralParams) sealed()          {}
func (GoldenSpiralParams) sealed()    {}
func (LissajousParams) sealed()       {}
func (MobiusParams) sealed()          {}
func (TorusKnotParams) sealed()       {}

// Derive reads the kind's parameters from the room identity
// Slice widths and ranges are part of the installation's visual identity, changing them changes every room
func Derive(kind Kind, id string, norm seed.Normalization) Params {
	m := seed.NewMapper(id, norm)

	switch kind {
	case Cube:
		m.Skip(2)
		return CubeParams{
			Size:  m.Float(2, 1, 10),
			Scale: m.Float(2, 0.1, 0.5),
		}
	case Sphere:
		return SphereParams{
			Radius: m.Float(2, 0.1, 5),
			Scale:  m.Float(2, 0.1, 0.5),
		}
	case FibonacciSphere:
		return FibonacciSphereParams{
			Radius: m.Float(2, 0.5, 5),
		}
	case Plane:
		return PlaneParams{
			Scale:    m.Float(2, 0.1, 0.5),
			Rotation: Orientation(id, norm),
		}
	case Random:
		return RandomParams{
			BaseScale: m.Float(2, 0.1, 1),
			Variation: m.Float(2, 0, 1),
		}
	case Matrix:
		m.Skip(2)
		return MatrixParams{
			Scale: m.Float(2, 0.01, 1),
		}
	case Spiral:
		return SpiralParams{
			Expansion: m.Float(2, 0.05, 0.2),
			Turns:     m.Float(3, 2, 10),
			Scale:     m.Float(2, 0.01, 1),
		}
	case GoldenSpiral:
		return GoldenSpiralParams{
			MaxTurns:  m.Float(3, 2, 5),
			MaxRadius: m.Float(2, 1, 6),
		}
	case Lissajous:
		return LissajousParams{
			ParentScale: m.Float(2, 0.01, 1),
			AFreq:       m.Float(2, 1, 5),
			BFreq:       m.Float(3, 1, 5),
			APhase:      m.Float(4, 0, math.Pi),
			BPhase:      m.Float(5, 0, math.Pi),
			Scale:       m.Float(2, 0.01, 0.5),
		}
	case Mobius:
		return MobiusParams{
			Width:  m.Float(2, 0.1, 12),
			Twists: m.Float(3, 1, 10),
		}
	case TorusKnot:
		return TorusKnotParams{
			P:    m.Float(2, 1, 50),
			Q:    m.Float(3, 1, 50),
			Tube: m.Float(3, 0.5, 5),
		}
	default:
		return CubeParams{Size: 1, Scale: 0.1}
	}
}

// Orientation derives an Euler rotation from three 2-digit slices mapped to [0, 360)
func Orientation(id string, norm seed.Normalization) vmath.Quat {
	m := seed.NewMapper(id, norm)
	x := m.Float(2, 0, 360)
	y := m.Float(2, 0, 360)
	z := m.Float(2, 0, 360)
	return vmath.EulerDeg(x, y, z)
}
