package palette

import (
	"fmt"
	"math"

	"github.com/hsluv/hsluv-go"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/swarm-installation/component"
	"github.com/lixenwraith/swarm-installation/seed"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// Material is the PBR record written to each swarm entity
type Material = component.MaterialComponent

const (
	Metallic  = 0.8
	Roughness = 0.1

	// GlowMin and GlowMax bound HDR albedo channels
	GlowMin = 2.0
	GlowMax = 4.0

	// CycleDuration is the period of one full pass through the glow cycle, in seconds
	CycleDuration = 5.0
)

// glowCycle is walked in order by the cycle palette
var glowCycle = []colorful.Color{
	{R: 2, G: 2, B: 4},
	{R: 4, G: 2, B: 2},
	{R: 2, G: 4, B: 2},
	{R: 4, G: 4, B: 2},
}

// Default is the material entities carry before a color function runs
func Default() Material {
	return Material{
		Albedo:    [3]float64{4, 4, 4},
		Metallic:  Metallic,
		Roughness: Roughness,
	}
}

// Target receives materials by swarm slot
type Target interface {
	Count() int
	SetMaterial(i int, m Material)
}

// System is a running color function
type System interface {
	Kind() Kind
	Update(dt float64)
}

// New initializes the color function of kind for the room identity
// Static palettes are applied immediately, Update is then a no-op for them
func New(kind Kind, id string, target Target, norm seed.Normalization) (System, error) {
	if target == nil {
		return nil, fmt.Errorf("palette: nil target")
	}
	switch kind {
	case Random:
		return newRandom(id, target, norm), nil
	case Gradient:
		return newGradient(id, target, norm), nil
	case Cycle:
		return &cycleSystem{target: target}, nil
	default:
		return nil, fmt.Errorf("palette: invalid kind %d", kind)
	}
}

func glow(c float64) float64 {
	return vmath.Clamp(c, GlowMin, GlowMax)
}

func material(c colorful.Color) Material {
	return Material{
		Albedo:    [3]float64{glow(c.R), glow(c.G), glow(c.B)},
		Metallic:  Metallic,
		Roughness: Roughness,
	}
}

// --- random ---

type staticSystem struct {
	kind Kind
}

func (s staticSystem) Kind() Kind     { return s.kind }
func (s staticSystem) Update(float64) {}

// RandomColor derives the single swarm albedo from the identity
func RandomColor(id string, norm seed.Normalization) colorful.Color {
	m := seed.NewMapper(id, norm)
	m.Skip(10)
	return colorful.Color{
		R: m.Float(3, GlowMin, GlowMax),
		G: m.Float(3, GlowMin, GlowMax),
		B: m.Float(3, GlowMin, GlowMax),
	}
}

func newRandom(id string, target Target, norm seed.Normalization) staticSystem {
	mat := material(RandomColor(id, norm))
	for i := 0; i < target.Count(); i++ {
		target.SetMaterial(i, mat)
	}
	return staticSystem{kind: Random}
}

// --- gradient ---

// GradientParams is a hue ramp in HSLuv across swarm slots
type GradientParams struct {
	Hue        float64
	Span       float64
	Saturation float64
	Lightness  float64
}

func DeriveGradient(id string, norm seed.Normalization) GradientParams {
	m := seed.NewMapper(id, norm)
	m.Skip(12)
	return GradientParams{
		Hue:        m.Float(3, 0, 360),
		Span:       m.Float(2, 30, 180),
		Saturation: m.Float(2, 60, 100),
		Lightness:  m.Float(2, 45, 75),
	}
}

// At returns the gradient color at fraction t in [0, 1], scaled into the glow band
func (p GradientParams) At(t float64) colorful.Color {
	h := math.Mod(p.Hue+p.Span*vmath.Clamp01(t), 360)
	r, g, b := hsluv.HsluvToRGB(h, p.Saturation, p.Lightness)
	scale := GlowMax - GlowMin
	return colorful.Color{
		R: GlowMin + vmath.Clamp01(r)*scale,
		G: GlowMin + vmath.Clamp01(g)*scale,
		B: GlowMin + vmath.Clamp01(b)*scale,
	}
}

func newGradient(id string, target Target, norm seed.Normalization) staticSystem {
	p := DeriveGradient(id, norm)
	n := target.Count()
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		target.SetMaterial(i, material(p.At(t)))
	}
	return staticSystem{kind: Gradient}
}

// --- cycle ---

type cycleSystem struct {
	target Target
	time   float64
}

func (s *cycleSystem) Kind() Kind { return Cycle }

// CycleColor returns the glow color at elapsed seconds
func CycleColor(elapsed float64) colorful.Color {
	frac := math.Mod(elapsed, CycleDuration) / CycleDuration
	if frac < 0 {
		frac += 1
	}
	pos := frac * float64(len(glowCycle))
	idx := int(pos) % len(glowCycle)
	next := (idx + 1) % len(glowCycle)
	return glowCycle[idx].BlendRgb(glowCycle[next], pos-math.Floor(pos))
}

func (s *cycleSystem) Update(dt float64) {
	s.time += dt
	mat := material(CycleColor(s.time))
	for i := 0; i < s.target.Count(); i++ {
		s.target.SetMaterial(i, mat)
	}
}
