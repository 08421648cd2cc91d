package shape

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/swarm-installation/component"
	"github.com/lixenwraith/swarm-installation/seed"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// Extent is the half-size of the installation volume shapes are laid out in
const Extent = 6.0

// Mesh is the primitive every shape renders its entities with
const Mesh = "box"

// Arrangement is the output of a generator, one transform per entity slot
type Arrangement struct {
	Kind       Kind
	Transforms []component.TransformComponent

	// ParentScale rescales the installation parent when non-zero
	ParentScale float64
}

// Generator binds the normalization mode and the randomness used by the Random kind
type Generator struct {
	Normalization seed.Normalization
	Rand          *rand.Rand
}

// NewGenerator creates a generator with a time-seeded random source
func NewGenerator(norm seed.Normalization) *Generator {
	now := uint64(time.Now().UnixNano())
	return &Generator{
		Normalization: norm,
		Rand:          rand.New(rand.NewPCG(now, now>>17|1)),
	}
}

// Generate derives parameters and lays out n entities
func (g *Generator) Generate(kind Kind, id string, n int) Arrangement {
	return Layout(Derive(kind, id, g.Normalization), n, g.Rand)
}

// Layout computes one transform per entity, rng is only consulted by RandomParams
func Layout(p Params, n int, rng *rand.Rand) Arrangement {
	if n < 0 {
		n = 0
	}
	arr := Arrangement{
		Kind:       p.Kind(),
		Transforms: make([]component.TransformComponent, n),
	}
	if n == 0 {
		return arr
	}

	switch p := p.(type) {
	case CubeParams:
		layoutCube(p, arr.Transforms)
	case SphereParams:
		layoutSphere(p.Radius, p.Scale, arr.Transforms)
	case FibonacciSphereParams:
		layoutSphere(p.Radius, 0.2, arr.Transforms)
	case PlaneParams:
		layoutPlane(p, arr.Transforms)
	case RandomParams:
		if rng == nil {
			rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 1))
		}
		layoutRandom(p, arr.Transforms, rng)
	case MatrixParams:
		layoutMatrix(p, arr.Transforms)
	case SpiralParams:
		layoutSpiral(p, arr.Transforms)
	case GoldenSpiralParams:
		layoutGoldenSpiral(p, arr.Transforms)
	case LissajousParams:
		layoutLissajous(p, arr.Transforms)
		arr.ParentScale = p.ParentScale
	case MobiusParams:
		layoutMobius(p, arr.Transforms)
	case TorusKnotParams:
		layoutTorusKnot(p, arr.Transforms)
	}
	return arr
}

func place(pos vmath.Vec3, scale float64) component.TransformComponent {
	t := component.At(pos)
	t.Scale = vmath.Splat(scale)
	return t
}

// layoutCube spreads entities over the six faces of a cube
func layoutCube(p CubeParams, out []component.TransformComponent) {
	n := float64(len(out))
	perFace := n / 6
	side := math.Floor(math.Sqrt(perFace))
	if side < 1 {
		side = 1
	}
	spacing := p.Size / side
	half := p.Size / 2

	for i := range out {
		fi := float64(i)
		face := int(math.Floor(fi/perFace)) % 6
		inFace := math.Mod(fi, perFace)
		row := math.Floor(inFace / side)
		col := math.Mod(inFace, side)

		a := (col - side/2) * spacing
		b := (row - side/2) * spacing

		var pos vmath.Vec3
		switch face {
		case 0: // front
			pos = vmath.V3(a, b, half)
		case 1: // back
			pos = vmath.V3(a, b, -half)
		case 2: // top
			pos = vmath.V3(a, half, b)
		case 3: // bottom
			pos = vmath.V3(a, -half, b)
		case 4: // right
			pos = vmath.V3(half, b, a)
		default: // left
			pos = vmath.V3(-half, b, a)
		}
		out[i] = place(pos, p.Scale)
	}
}

// layoutSphere places entities on a golden-angle sphere, y runs from 1 to -1
func layoutSphere(radius, scale float64, out []component.TransformComponent) {
	denom := float64(len(out) - 1)
	if denom < 1 {
		denom = 1
	}
	for i := range out {
		y := 1 - float64(i)/denom*2
		r := math.Sqrt(math.Max(0, 1-y*y))
		phi := float64(i) * vmath.GoldenAngle
		pos := vmath.V3(math.Cos(phi)*r, y, math.Sin(phi)*r).Mul(radius)
		out[i] = place(pos, scale)
	}
}

// layoutPlane lays a square grid 2*Extent wide and rotates it by the room orientation
func layoutPlane(p PlaneParams, out []component.TransformComponent) {
	side := math.Sqrt(float64(len(out)))
	spacing := 2 * Extent / side
	center := side/2 - 0.5

	for i := range out {
		fi := float64(i)
		row := math.Floor(fi / side)
		col := math.Mod(fi, side)
		local := vmath.V3((col-center)*spacing, 0, (row-center)*spacing)

		t := place(p.Rotation.Rotate(local), p.Scale)
		t.Rotation = p.Rotation
		out[i] = t
	}
}

// layoutRandom scatters entities uniformly in the volume with per-entity scale jitter
func layoutRandom(p RandomParams, out []component.TransformComponent, rng *rand.Rand) {
	for i := range out {
		pos := vmath.V3(
			rng.Float64()*2*Extent-Extent,
			rng.Float64()*2*Extent-Extent,
			rng.Float64()*2*Extent-Extent,
		)
		variation := rng.Float64() * p.Variation
		adjust := 1 - variation + rng.Float64()*variation*2
		out[i] = place(pos, p.BaseScale*adjust)
	}
}

// layoutMatrix fills a cubic lattice centered on the origin
func layoutMatrix(p MatrixParams, out []component.TransformComponent) {
	perSide := math.Cbrt(float64(len(out)))
	spacing := 2 * Extent / perSide
	layer := perSide * perSide

	for i := range out {
		fi := float64(i)
		z := math.Floor(fi / layer)
		y := math.Floor(math.Mod(fi, layer) / perSide)
		x := math.Mod(fi, perSide)

		pos := vmath.V3(
			(x-perSide/2)*spacing+spacing/2,
			(y-perSide/2)*spacing+spacing/2,
			(z-perSide/2)*spacing+spacing/2,
		)
		out[i] = place(pos, p.Scale)
	}
}

// layoutSpiral winds an expanding helix from bottom to top of the volume
func layoutSpiral(p SpiralParams, out []component.TransformComponent) {
	const baseRadius = 1.0
	height := 2 * Extent
	inc := height / float64(len(out))

	for i := range out {
		y := float64(i+1) * inc
		angle := y / height * 2 * math.Pi * p.Turns
		r := baseRadius + p.Expansion*y
		pos := vmath.V3(math.Cos(angle)*r, y-Extent, math.Sin(angle)*r)
		out[i] = place(pos, p.Scale)
	}
}

// layoutGoldenSpiral steps by the golden-ratio angle while the radius grows with height
// Entities past the top of the volume stay on the top plane
func layoutGoldenSpiral(p GoldenSpiralParams, out []component.TransformComponent) {
	const baseRadius = 0.5
	height := 2 * Extent
	vInc := height / float64(len(out))
	angleInc := 2 * math.Pi / vmath.Phi

	angle := 0.0
	radius := baseRadius
	y := -Extent

	for i := range out {
		x := math.Cos(angle) * radius
		z := math.Sin(angle) * radius

		angle += angleInc
		radius = baseRadius + p.MaxRadius*(y+Extent)/height
		y = math.Min(y+vInc, Extent)

		out[i] = place(vmath.V3(x, y, z), 0.2)
	}
}

// layoutLissajous traces one period of a 3D Lissajous curve
func layoutLissajous(p LissajousParams, out []component.TransformComponent) {
	const amplitude = Extent
	step := 2 * math.Pi / float64(len(out))

	for i := range out {
		t := float64(i) * step
		pos := vmath.V3(
			amplitude*math.Sin(p.AFreq*t+p.APhase),
			amplitude*math.Sin((p.AFreq+p.BFreq)*0.5*t),
			amplitude*math.Sin(p.BFreq*t+p.BPhase),
		)
		out[i] = place(pos, p.Scale)
	}
}

// layoutMobius places entities along a twisted strip, each rotated by its twist angle
func layoutMobius(p MobiusParams, out []component.TransformComponent) {
	const radius = 3.0
	step := 2 * math.Pi / float64(len(out))

	for i := range out {
		t := float64(i) * step
		twist := t * p.Twists
		ring := radius + p.Width*math.Cos(twist/2)
		pos := vmath.V3(math.Cos(t)*ring, math.Sin(t)*ring, p.Width*math.Sin(twist/2))

		tr := place(pos, 0.3)
		tr.Rotation = vmath.EulerDeg(0, 0, twist*180/math.Pi)
		out[i] = tr
	}
}

// layoutTorusKnot winds a (p,q) knot around a torus of radius 3
func layoutTorusKnot(p TorusKnotParams, out []component.TransformComponent) {
	const radius = 3.0
	step := 2 * math.Pi / float64(len(out))
	theta := 0.0

	for i := range out {
		theta += step
		r := radius + p.Tube*math.Cos(p.Q*theta)
		pos := vmath.V3(r*math.Cos(p.P*theta), r*math.Sin(p.P*theta), p.Tube*math.Sin(p.Q*theta))
		out[i] = place(pos, 0.2)
	}
}
