package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines latency and mixer tick rate
	AudioBufferDuration = 100 * time.Millisecond
)

// Emitter Volumes
const (
	AmbienceVolume = 0.2
	SpeechVolume   = 3.0
	ChimeVolume    = 1.0
)

// Clip Durations
const (
	ChimeDuration  = 400 * time.Millisecond
	SpeechDuration = 900 * time.Millisecond
)

// ConfirmClip plays once each time a portal opens
const ConfirmClip = "ui/confirm-echo"

// AmbienceClips is the default ambience list, selected per room from the identity
var AmbienceClips = []string{
	"nasa/voyager-jupiter",
	"nasa/voyager-saturn",
	"nasa/cassini-titan",
	"nasa/juno-magnetosphere",
	"nasa/kepler-star",
	"nasa/sputnik-beep",
	"nasa/plasma-waves",
	"nasa/earth-chorus",
}

// SpeechClips is indexed by the room counter, wrapping past the end
var SpeechClips = []string{
	"speech/welcome",
	"speech/second-room",
	"speech/keep-going",
	"speech/deeper",
	"speech/lost",
	"speech/again",
	"speech/almost",
	"speech/endless",
}
