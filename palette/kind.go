// Package palette assigns swarm materials from the room identity.
package palette

import "fmt"

// Kind enumerates color functions in canonical selection order
type Kind uint8

const (
	Random Kind = iota
	Gradient
	Cycle

	kindCount
)

var kindNames = [kindCount]string{
	Random:   "random",
	Gradient: "gradient",
	Cycle:    "cycle",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func (k Kind) Valid() bool {
	return k < kindCount
}

func All() []Kind {
	return []Kind{Random, Gradient, Cycle}
}

func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
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
