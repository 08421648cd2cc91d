package motion

import (
	"math"
	"math/rand/v2"

	"github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/swarm-installation/seed"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// Extent bounds random targets and jump positions
const Extent = 6.0

// ParticleBound is where drifting particles wrap to the opposite side
const ParticleBound = 7.0

// OrbitTransitionRate is the per-second ramp of orbit transition progress
const OrbitTransitionRate = 0.3

// arrivalEpsilon is the per-axis distance at which a wander target counts as reached
const arrivalEpsilon = 0.1

func randomPoint(rng *rand.Rand) vmath.Vec3 {
	return vmath.V3(
		rng.Float64()*2*Extent-Extent,
		rng.Float64()*2*Extent-Extent,
		rng.Float64()*2*Extent-Extent,
	)
}

// --- rotate ---

type rotateSystem struct {
	params  RotateParams
	swarm   Swarm
	degrees []float64
	axes    []vmath.Vec3
}

func newRotate(p RotateParams, swarm Swarm, rng *rand.Rand) *rotateSystem {
	n := swarm.Count()
	s := &rotateSystem{
		params:  p,
		swarm:   swarm,
		degrees: make([]float64, n),
		axes:    make([]vmath.Vec3, n),
	}

	gradientEffect := p.Gradient > 5
	step := 0.0
	if n > 0 {
		step = 1 / float64(n)
	}
	current := 0.0

	for i := 0; i < n; i++ {
		t := swarm.Local(i)
		t.Rotation = vmath.Identity()
		swarm.SetLocal(i, t)

		mult := 1.0
		if gradientEffect {
			mult = current
		}

		deg := p.BaseDegrees
		if p.DegreesVariation != 0 {
			deg += float64(i) * p.DegreesVariation * 10 * mult / float64(n)
		}
		s.degrees[i] = math.Mod(deg, 360)

		variation := 0.0
		if p.DirectionVariation != 0 {
			variation = (rng.Float64()*2 - 1) * mult
		}
		offset := variation * p.DirectionVariation
		s.axes[i] = vmath.V3(
			vmath.Clamp(p.BaseAxis[0]+offset, -1, 1),
			vmath.Clamp(p.BaseAxis[1]+offset, -1, 1),
			vmath.Clamp(p.BaseAxis[2]+offset, -1, 1),
		)

		current += step
	}
	return s
}

func (s *rotateSystem) Kind() Kind     { return Rotate }
func (s *rotateSystem) Params() Params { return s.params }

func (s *rotateSystem) Update(dt float64) {
	frames := dt * ReferenceFPS
	for i := range s.degrees {
		t := s.swarm.Local(i)
		t.Rotation = t.Rotation.Mul(vmath.AxisAngleDeg(s.degrees[i]*frames, s.axes[i])).Normalize()
		s.swarm.SetLocal(i, t)
	}
}

// --- wander ---

// wanderSystem moves each entity toward a target drawn from simplex noise
// Targets are indexed by (entity, epoch) so a room wanders the same way every visit
type wanderSystem struct {
	params  WanderParams
	swarm   Swarm
	noise   opensimplex.Noise
	epochs  []int
	targets []vmath.Vec3
}

func newWander(p WanderParams, id string, swarm Swarm) *wanderSystem {
	n := swarm.Count()
	s := &wanderSystem{
		params:  p,
		swarm:   swarm,
		noise:   opensimplex.New(int64(seed.Seed64(id))),
		epochs:  make([]int, n),
		targets: make([]vmath.Vec3, n),
	}
	for i := range s.targets {
		s.targets[i] = s.target(i, 0)
	}
	return s
}

func (s *wanderSystem) target(i, epoch int) vmath.Vec3 {
	fi, fe := float64(i)*0.731, float64(epoch)*1.917
	return vmath.V3(
		s.noise.Eval3(fi, fe, 0.5)*Extent,
		s.noise.Eval3(fi, fe, 17.5)*Extent,
		s.noise.Eval3(fi, fe, 43.5)*Extent,
	)
}

func (s *wanderSystem) Kind() Kind     { return Wander }
func (s *wanderSystem) Params() Params { return s.params }

// Target returns the current wander target of slot i
func (s *wanderSystem) Target(i int) vmath.Vec3 {
	return s.targets[i]
}

func (s *wanderSystem) Update(dt float64) {
	step := s.params.Speed * dt
	for i, target := range s.targets {
		t := s.swarm.Local(i)
		t.Position = vmath.MoveTowardsV3(t.Position, target, step)
		s.swarm.SetLocal(i, t)

		d := t.Position.Sub(target)
		if math.Abs(d[0]) < arrivalEpsilon && math.Abs(d[1]) < arrivalEpsilon && math.Abs(d[2]) < arrivalEpsilon {
			s.epochs[i]++
			s.targets[i] = s.target(i, s.epochs[i])
		}
	}
}

// --- jump ---

type jumpSystem struct {
	params JumpParams
	swarm  Swarm
	rng    *rand.Rand
}

func newJump(p JumpParams, swarm Swarm, rng *rand.Rand) *jumpSystem {
	return &jumpSystem{params: p, swarm: swarm, rng: rng}
}

func (s *jumpSystem) Kind() Kind     { return Jump }
func (s *jumpSystem) Params() Params { return s.params }

// Update teleports one entity per frame
func (s *jumpSystem) Update(float64) {
	n := s.swarm.Count()
	if n == 0 {
		return
	}
	i := s.rng.IntN(n)
	t := s.swarm.Local(i)
	t.Position = randomPoint(s.rng)
	s.swarm.SetLocal(i, t)
}

// --- follow ---

// followSystem chains entities into a ring, each lerping toward its predecessor
// Slot 0 follows the last slot. A single entity has no link.
type followSystem struct {
	params FollowParams
	swarm  Swarm
	next   []int
}

func newFollow(p FollowParams, swarm Swarm) *followSystem {
	n := swarm.Count()
	s := &followSystem{params: p, swarm: swarm}
	if n < 2 {
		return s
	}
	s.next = make([]int, n)
	s.next[0] = n - 1
	for i := 1; i < n; i++ {
		s.next[i] = i - 1
	}
	return s
}

func (s *followSystem) Kind() Kind     { return Follow }
func (s *followSystem) Params() Params { return s.params }

// Leader returns the slot that slot i follows, -1 when unlinked
func (s *followSystem) Leader(i int) int {
	if i < 0 || i >= len(s.next) {
		return -1
	}
	return s.next[i]
}

func (s *followSystem) Update(dt float64) {
	if len(s.next) == 0 {
		return
	}
	rate := vmath.Clamp01(s.params.Speed * dt)

	// Read all leaders first so the chain moves as one frame
	leaders := make([]vmath.Vec3, len(s.next))
	for i, j := range s.next {
		leaders[i] = s.swarm.Local(j).Position
	}
	for i := range s.next {
		t := s.swarm.Local(i)
		t.Position = vmath.LerpV3(t.Position, leaders[i], rate)
		s.swarm.SetLocal(i, t)
	}
}

// --- particle ---

type particleSystem struct {
	params     ParticleParams
	swarm      Swarm
	speeds     []float64
	directions []vmath.Vec3
}

func newParticle(p ParticleParams, swarm Swarm, rng *rand.Rand) *particleSystem {
	n := swarm.Count()
	s := &particleSystem{
		params:     p,
		swarm:      swarm,
		speeds:     make([]float64, n),
		directions: make([]vmath.Vec3, n),
	}

	// Direction deviation accumulates entity to entity, fanning the stream out
	dir := p.Direction
	for i := 0; i < n; i++ {
		sign := 1.0
		if rng.Float64() <= 0.5 {
			sign = -1
		}
		s.speeds[i] = p.BaseSpeed + rng.Float64()*p.SpeedDeviation*sign

		if p.DeviationDegrees != 0 {
			axis := vmath.V3(rng.Float64()-0.5, rng.Float64()-0.5, rng.Float64()-0.5)
			dir = vmath.AxisAngleDeg(p.DeviationDegrees, axis).Rotate(dir)
		}
		s.directions[i] = dir
	}
	return s
}

func (s *particleSystem) Kind() Kind     { return Particle }
func (s *particleSystem) Params() Params { return s.params }

func (s *particleSystem) Update(dt float64) {
	for i, dir := range s.directions {
		t := s.swarm.Local(i)
		p := t.Position.Add(dir.Mul(s.speeds[i] * dt))
		t.Position = vmath.V3(
			vmath.Wrap(p[0], ParticleBound),
			vmath.Wrap(p[1], ParticleBound),
			vmath.Wrap(p[2], ParticleBound),
		)
		s.swarm.SetLocal(i, t)
	}
}

// --- wiggle ---

type wiggleSystem struct {
	params WiggleParams
	swarm  Swarm
	baseY  []float64
	phases []float64
	time   float64
}

func newWiggle(p WiggleParams, swarm Swarm) *wiggleSystem {
	n := swarm.Count()
	s := &wiggleSystem{
		params: p,
		swarm:  swarm,
		baseY:  make([]float64, n),
		phases: make([]float64, n),
	}
	inc := 0.0
	if n > 0 {
		inc = 2 * math.Pi / float64(n)
	}
	for i := 0; i < n; i++ {
		s.baseY[i] = swarm.Local(i).Position[1]
		s.phases[i] = float64(i) * inc
	}
	return s
}

func (s *wiggleSystem) Kind() Kind     { return Wiggle }
func (s *wiggleSystem) Params() Params { return s.params }

func (s *wiggleSystem) Update(dt float64) {
	s.time += dt
	for i, phase := range s.phases {
		t := s.swarm.Local(i)
		t.Position[1] = s.baseY[i] + math.Sin(s.time*s.params.Speed+phase)*s.params.Amplitude
		s.swarm.SetLocal(i, t)
	}
}

// --- rolling ---

type rollingSystem struct {
	params RollingParams
	swarm  Swarm
	base   []vmath.Vec3
	phases []float64
	time   float64
}

func newRolling(p RollingParams, swarm Swarm) *rollingSystem {
	n := swarm.Count()
	s := &rollingSystem{
		params: p,
		swarm:  swarm,
		base:   make([]vmath.Vec3, n),
		phases: make([]float64, n),
	}
	inc := 0.0
	if n > 0 {
		inc = 2 * math.Pi / float64(n)
	}
	for i := 0; i < n; i++ {
		s.base[i] = swarm.Local(i).Scale
		s.phases[i] = float64(i) * inc
	}
	return s
}

func (s *rollingSystem) Kind() Kind     { return Rolling }
func (s *rollingSystem) Params() Params { return s.params }

// Update breathes scale around the captured base, factor stays in [1-amp, 1+amp]
func (s *rollingSystem) Update(dt float64) {
	s.time += dt
	for i, phase := range s.phases {
		factor := 1 + math.Sin(s.time*s.params.Speed+phase)*s.params.ScaleAmplitude
		t := s.swarm.Local(i)
		t.Scale = s.base[i].Mul(factor)
		s.swarm.SetLocal(i, t)
	}
}

// --- orbit ---

type orbitEntity struct {
	ellipse vmath.Ellipse
	speed   float64
	phase   float64
	start   vmath.Vec3
}

type orbitSystem struct {
	params   OrbitParams
	swarm    Swarm
	entities []orbitEntity
	progress float64
	time     float64
}

func newOrbit(p OrbitParams, swarm Swarm, rng *rand.Rand) *orbitSystem {
	const tiltMax = math.Pi / 4

	n := swarm.Count()
	s := &orbitSystem{
		params:   p,
		swarm:    swarm,
		entities: make([]orbitEntity, n),
	}
	for i := 0; i < n; i++ {
		s.entities[i] = orbitEntity{
			ellipse: vmath.Ellipse{
				Radii: vmath.V3(
					p.BaseRadius+rng.Float64()*p.Style,
					p.BaseRadius+rng.Float64()*(1-p.Style),
					p.BaseRadius*p.Style,
				),
				TiltX: p.Style * tiltMax * (rng.Float64() - 0.5) * 2,
				TiltY: p.Style * tiltMax * (rng.Float64() - 0.5) * 2,
			},
			speed: p.BaseSpeed + p.SpeedVariability*rng.Float64()*0.5,
			phase: rng.Float64() * 2 * math.Pi,
			start: swarm.Local(i).Position,
		}
	}
	return s
}

func (s *orbitSystem) Kind() Kind     { return Orbit }
func (s *orbitSystem) Params() Params { return s.params }

// Progress returns the transition-in progress in [0, 1]
func (s *orbitSystem) Progress() float64 {
	return s.progress
}

func (s *orbitSystem) Update(dt float64) {
	s.time += dt
	if s.progress < 1 {
		s.progress = math.Min(s.progress+dt*OrbitTransitionRate, 1)
	}

	for i, e := range s.entities {
		theta := s.time*e.speed*s.params.Direction + e.phase
		orbitPos := e.ellipse.Point(theta)

		t := s.swarm.Local(i)
		t.Position = vmath.LerpV3(e.start, orbitPos, s.progress)
		s.swarm.SetLocal(i, t)
	}
}
