package seed

import "errors"

// ErrNoCandidates is returned when selecting from, or registering, an empty candidate list
var ErrNoCandidates = errors.New("no candidates configured")

// Window is a half-open character range [Start, End) of a room identity
type Window struct {
	Start int `mapstructure:"start"`
	End   int `mapstructure:"end"`
}

// Default selection windows over the room identity
var (
	ShapeWindow    = Window{Start: 0, End: 3}
	MotionWindow   = Window{Start: 0, End: 6}
	ColorWindow    = Window{Start: 10, End: 12}
	AmbienceWindow = Window{Start: 5, End: 8}
)

// Slice returns id[Start:End] clamped to the string bounds, swapping reversed bounds
func (w Window) Slice(id string) string {
	start, end := clampIndex(w.Start, len(id)), clampIndex(w.End, len(id))
	if start > end {
		start, end = end, start
	}
	return id[start:end]
}

// SelectIndex parses id[start:end] and reduces it modulo count
// The reduction runs digit by digit so windows wider than uint64 stay exact
func SelectIndex(id string, start, end, count int) (int, error) {
	if count <= 0 {
		return 0, ErrNoCandidates
	}
	s := Window{Start: start, End: end}.Slice(id)

	idx := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		idx = (idx*10 + int(s[i]-'0')) % count
	}
	return idx, nil
}

// Select applies SelectIndex with a window
func (w Window) Select(id string, count int) (int, error) {
	return SelectIndex(id, w.Start, w.End, count)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
