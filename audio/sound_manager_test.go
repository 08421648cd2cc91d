package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayLoop("nasa/kepler-star", 0.2)
	sm.PlayOnce("ui/confirm-echo", 1, 100*time.Millisecond)
	sm.Stop("nasa/kepler-star")
	sm.Stop("never-played")
	sm.Cleanup()
}

// TestSoundManagerRecordsStateWithoutDevice verifies loop bookkeeping works in silent mode
func TestSoundManagerRecordsStateWithoutDevice(t *testing.T) {
	sm := NewSoundManager()

	sm.PlayLoop("b", 0.2)
	sm.PlayLoop("a", 0.2)
	sm.PlayLoop("a", 0.2)

	active := sm.Active()
	if len(active) != 2 || active[0] != "a" || active[1] != "b" {
		t.Errorf("Expected [a b], got %v", active)
	}

	sm.Stop("a")
	if sm.Playing("a") {
		t.Error("Expected a stopped")
	}
	if !sm.Playing("b") {
		t.Error("Expected b still playing")
	}

	sm.PlayOnce("cue", 1, time.Millisecond)
	sm.PlayOnce("cue", 1, time.Millisecond)
	if sm.OneShots() != 2 {
		t.Errorf("Expected 2 one-shots, got %d", sm.OneShots())
	}

	sm.Cleanup()
	if len(sm.Active()) != 0 {
		t.Errorf("Expected no active clips after cleanup, got %v", sm.Active())
	}
}

// TestSoundManagerDoubleInitialization verifies double initialization is safe
func TestSoundManagerDoubleInitialization(t *testing.T) {
	sm := NewSoundManager()

	err1 := sm.Initialize()
	if err1 != nil {
		t.Logf("First initialization failed (expected in test environment): %v", err1)
		return
	}

	err2 := sm.Initialize()
	if err2 != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err2)
	}

	sm.Cleanup()
}

// TestTryInitializeDisabled verifies disabled audio never touches the device
func TestTryInitializeDisabled(t *testing.T) {
	sm := NewSoundManager()
	sm.TryInitialize(false)
	if sm.Initialized() {
		t.Error("Expected manager to stay uninitialized when disabled")
	}
}

// TestClipFrequenciesStable verifies pitch depends only on clip name
func TestClipFrequenciesStable(t *testing.T) {
	clips := []string{"nasa/voyager-jupiter", "nasa/plasma-waves", "ui/confirm-echo", ""}
	for _, clip := range clips {
		f := DroneFrequency(clip)
		if f != DroneFrequency(clip) {
			t.Errorf("DroneFrequency(%q) not stable", clip)
		}
		if f < droneFreqMinHz || f > droneFreqMinHz+droneFreqSpanHz {
			t.Errorf("DroneFrequency(%q) = %f outside range", clip, f)
		}
		c := ChimeFrequency(clip)
		if c < chimeFreqMinHz || c > chimeFreqMinHz+chimeFreqSpanHz {
			t.Errorf("ChimeFrequency(%q) = %f outside range", clip, c)
		}
	}
}

// TestGeneratorsBounded verifies synthesized samples stay within [-1, 1]
func TestGeneratorsBounded(t *testing.T) {
	sr := beep.SampleRate(48000)
	streamers := map[string]beep.Streamer{
		"drone": NewDroneGenerator(sr, 110),
		"chime": NewChimeGenerator(sr, 880),
	}

	buf := make([][2]float64, 4096)
	for name, s := range streamers {
		for range 20 {
			n, ok := s.Stream(buf)
			if !ok || n != len(buf) {
				t.Fatalf("%s: Expected full buffer, got n=%d ok=%v", name, n, ok)
			}
			for _, frame := range buf {
				if math.Abs(frame[0]) > 1 || frame[0] != frame[1] {
					t.Fatalf("%s: sample out of range or channels differ: %v", name, frame)
				}
			}
		}
		if s.Err() != nil {
			t.Errorf("%s: unexpected error %v", name, s.Err())
		}
	}
}

// TestChimeDecays verifies the chime envelope falls off
func TestChimeDecays(t *testing.T) {
	sr := beep.SampleRate(48000)
	g := NewChimeGenerator(sr, 880)

	peak := func() float64 {
		buf := make([][2]float64, sr.N(50*time.Millisecond))
		g.Stream(buf)
		m := 0.0
		for _, f := range buf {
			m = math.Max(m, math.Abs(f[0]))
		}
		return m
	}

	first := peak()
	for range 10 {
		peak()
	}
	if last := peak(); last >= first {
		t.Errorf("Expected chime to decay, first peak %f, later peak %f", first, last)
	}
}

// TestLoopStreamerNeverExhausts verifies the ambience chain keeps streaming past the swell period
func TestLoopStreamerNeverExhausts(t *testing.T) {
	ctrl := newLoopStreamer("nasa/kepler-star", 0.5)
	buf := make([][2]float64, 4096)

	total := 0
	peak := 0.0
	for total < sampleRate.N(3*droneSwellDurationS*time.Second) {
		n, ok := ctrl.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("Loop stream stopped after %d samples (n=%d ok=%v)", total, n, ok)
		}
		for _, s := range buf {
			peak = math.Max(peak, math.Abs(s[0]))
		}
		total += n
	}
	if peak == 0 {
		t.Error("Expected audible loop output")
	}

	silent := newLoopStreamer("nasa/kepler-star", 0)
	silent.Stream(buf)
	for i, s := range buf {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence at zero volume, sample %d = %v", i, s)
		}
	}
}
