// Package motion animates the swarm once a shape has been laid out.
//
// A motion system is built in two steps. New derives its parameters from the
// room identity and captures per-entity state from the current layout. Update
// then runs once per frame. Randomness is drawn from sources seeded by the
// identity, so a room animates the same way on every visit.
package motion

import "fmt"

// Kind enumerates motion systems in canonical selection order
type Kind uint8

const (
	Rotate Kind = iota
	Wander
	Jump
	Follow
	Particle
	Wiggle
	Rolling
	Orbit

	kindCount
)

var kindNames = [kindCount]string{
	Rotate:   "rotate",
	Wander:   "wander",
	Jump:     "jump",
	Follow:   "follow",
	Particle: "particle",
	Wiggle:   "wiggle",
	Rolling:  "rolling",
	Orbit:    "orbit",
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
	return 0, fmt.Errorf("unknown motion %q", s)
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
