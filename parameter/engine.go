package parameter

import "time"

// Frame Loop Timing
const (
	// FrameRate is the default simulation rate in frames per second
	FrameRate = 30

	// FrameInterval is the ticker period at FrameRate
	FrameInterval = time.Second / FrameRate

	// PreviewRenderInterval throttles terminal redraws
	PreviewRenderInterval = 50 * time.Millisecond
)
