package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/swarm-installation/seed"
)

// Drone and chime tuning
const (
	droneFreqMinHz      = 55.0
	droneFreqSpanHz     = 55.0
	droneAmplitude      = 0.15
	droneSwellDurationS = 4
	chimeFreqMinHz      = 440.0
	chimeFreqSpanHz     = 440.0
	chimeAmplitude      = 0.3
	chimeDecayRate      = 6.0
)

// DroneFrequency maps a clip name to a stable fundamental in the bass range
func DroneFrequency(clip string) float64 {
	return droneFreqMinHz + float64(seed.Seed64(clip)%1000)/1000*droneFreqSpanHz
}

// ChimeFrequency maps a clip name to a stable pitch for one-shot cues
func ChimeFrequency(clip string) float64 {
	return chimeFreqMinHz + float64(seed.Seed64(clip)%1000)/1000*chimeFreqSpanHz
}

// DroneGenerator is a slowly swelling fifth, stand-in for looping ambience
type DroneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
}

// NewDroneGenerator creates a drone at freq
func NewDroneGenerator(sr beep.SampleRate, freq float64) *DroneGenerator {
	return &DroneGenerator{
		sr:      sr,
		freq:    freq,
		samples: sr.N(time.Second * droneSwellDurationS),
	}
}

func (g *DroneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		amplitude := droneAmplitude * (0.6 + 0.4*math.Sin(cyclePos*math.Pi*2))

		sample := math.Sin(2*math.Pi*g.freq*t) + 0.5*math.Sin(2*math.Pi*g.freq*1.5*t)
		sample *= amplitude / 1.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DroneGenerator) Err() error {
	return nil
}

// ChimeGenerator is a bell-like decaying tone for confirm and speech cues
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime at freq
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * chimeDecayRate)
		sample := 0.0
		sample += math.Sin(2 * math.Pi * g.freq * t)
		sample += 0.4 * math.Sin(2*math.Pi*g.freq*2.76*t)
		sample *= chimeAmplitude * envelope / 1.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
