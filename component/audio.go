package component

// AudioComponent is an audio clip attached to an entity
type AudioComponent struct {
	Clip    string
	Loop    bool
	Volume  float64
	Playing bool
}
