// Package shape computes the static swarm arrangement of a room.
//
// Each Kind carries its own parameter struct derived from the room identity.
// Layout turns parameters into one transform per entity. Every kind except
// Random is a pure function of (identity, entity count).
package shape

import "fmt"

// Kind enumerates shape generators in canonical selection order
type Kind uint8

const (
	Cube Kind = iota
	Sphere
	Plane
	Random
	Matrix
	Spiral
	GoldenSpiral
	Lissajous
	Mobius
	TorusKnot
	FibonacciSphere

	kindCount
)

var kindNames = [kindCount]string{
	Cube:            "cube",
	Sphere:          "sphere",
	Plane:           "plane",
	Random:          "random",
	Matrix:          "matrix",
	Spiral:          "spiral",
	GoldenSpiral:    "goldenSpiral",
	Lissajous:       "lissajous",
	Mobius:          "mobius",
	TorusKnot:       "torusKnot",
	FibonacciSphere: "fibonacciSphere",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Valid reports whether k is a defined kind
func (k Kind) Valid() bool {
	return k < kindCount
}

// Deterministic reports whether the kind is a pure function of identity and count
func (k Kind) Deterministic() bool {
	return k != Random
}

// All returns every kind in canonical order
func All() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind resolves a kind by name
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", s)
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid kind %d", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
