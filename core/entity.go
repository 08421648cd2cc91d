package core

// Entity is an opaque entity identifier handed out by engine.World
// Zero is never a valid entity
type Entity uint64
