package motion

import (
	"github.com/lixenwraith/swarm-installation/seed"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// Params is the closed set of per-kind parameter structs
type Params interface {
	Kind() Kind
	sealed()
}

// RotateParams spins each entity about its own axis
// With Gradient above 5 the per-entity variation ramps across the swarm
type RotateParams struct {
	BaseDegrees        float64
	Gradient           float64
	DegreesVariation   float64
	DirectionVariation float64
	BaseAxis           vmath.Vec3
}

type WanderParams struct {
	Speed float64
}

type JumpParams struct{}

// FollowParams links entities into a ring chasing their predecessor
type FollowParams struct {
	Speed        float64
	Deviation    float64
	SinDirection vmath.Vec3
}

type ParticleParams struct {
	BaseSpeed        float64
	SpeedDeviation   float64
	DeviationDegrees float64
	Direction        vmath.Vec3
}

type WiggleParams struct {
	Amplitude  float64
	Wavelength float64
	Speed      float64
}

type RollingParams struct {
	ScaleAmplitude float64
	Wavelength     float64
	Speed          float64
}

// OrbitParams drives tilted elliptical orbits, Style 0 gives similar orbits and 1 diverse ones
type OrbitParams struct {
	Style            float64
	BaseRadius       float64
	SpeedVariability float64
	BaseSpeed        float64
	Direction        float64
}

func (RotateParams) Kind() Kind   { return Rotate }
func (WanderParams) Kind() Kind   { return Wander }
func (JumpParams) Kind() Kind     { return Jump }
func (FollowParams) Kind() Kind   { return Follow }
func (ParticleParams) Kind() Kind { return Particle }
func (WiggleParams) Kind() Kind   { return Wiggle }
func (RollingParams) Kind() Kind  { return Rolling }
func (OrbitParams) Kind() Kind    { return Orbit }

func (RotateParams) sealed()   {}
func (WanderParams) sealed()   {}
func (JumpParams) sealed()     {}
func (FollowParams) sealed()   {}
func (ParticleParams) sealed() {}
func (WiggleParams) sealed()   {}
func (RollingParams) sealed()  {}
func (OrbitParams) sealed()    {}

// Derive reads the kind's parameters from the room identity
func Derive(kind Kind, id string, norm seed.Normalization) Params {
	m := seed.NewMapper(id, norm)

	switch kind {
	case Rotate:
		m.Skip(2)
		return RotateParams{
			BaseDegrees:        m.Float(2, -10, 10),
			Gradient:           m.Float(3, 0, 10),
			DegreesVariation:   m.Float(2, 0, 1),
			DirectionVariation: m.Float(2, 0, 1),
			BaseAxis: vmath.V3(
				m.Float(3, -1, 1),
				m.Float(3, -1, 1),
				m.Float(3, -1, 1),
			),
		}
	case Wander:
		return WanderParams{Speed: m.Float(2, 0.1, 1)}
	case Jump:
		return JumpParams{}
	case Follow:
		m.Skip(2)
		return FollowParams{
			Speed:     m.Float(2, 0.1, 1),
			Deviation: m.Float(2, 0, 10),
			SinDirection: vmath.V3(
				m.Float(2, -1, 1),
				m.Float(2, -1, 1),
				m.Float(2, -1, 1),
			),
		}
	case Particle:
		m.Skip(2)
		return ParticleParams{
			BaseSpeed:        m.Float(2, 0.1, 1),
			SpeedDeviation:   m.Float(2, 0, 1),
			DeviationDegrees: m.Float(2, -2, 2),
			Direction: vmath.V3(
				m.Float(2, -1, 1),
				m.Float(2, -1, 1),
				m.Float(2, -1, 1),
			),
		}
	case Wiggle:
		m.Skip(2)
		return WiggleParams{
			Amplitude:  m.Float(2, 0.01, 1),
			Wavelength: m.Float(2, 0.01, 10),
			Speed:      m.Float(2, 0.1, 3),
		}
	case Rolling:
		return RollingParams{
			ScaleAmplitude: m.Float(2, 0.01, 0.1),
			Wavelength:     m.Float(2, 0.1, 10),
			Speed:          m.Float(2, 0.1, 5),
		}
	case Orbit:
		p := OrbitParams{
			Style:            m.Float(3, 0, 1),
			BaseRadius:       m.Float(2, 0.2, 7),
			SpeedVariability: m.Float(2, 0, 1),
			BaseSpeed:        m.Float(2, 0.2, 2),
			Direction:        1,
		}
		if m.Float(2, 0, 1) >= 0.5 {
			p.Direction = -1
		}
		return p
	default:
		return JumpParams{}
	}
}
