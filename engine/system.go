package engine

// System is a per-frame participant registered on the World scheduler
// Lower priority runs first within a frame
type System interface {
	Name() string
	Priority() int
	Update(dt float64)
}
