package installation

import (
	"github.com/lixenwraith/swarm-installation/parameter"
	"github.com/lixenwraith/swarm-installation/seed"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// Windows are the identity ranges each selection reads
type Windows struct {
	Shape    seed.Window
	Motion   seed.Window
	Color    seed.Window
	Ambience seed.Window
}

// Config fixes the pool size and the derivation policy for an installation
type Config struct {
	Count         int
	Parent        vmath.Vec3
	Normalization seed.Normalization
	Windows       Windows
}

// DefaultConfig returns the installation's established layout
func DefaultConfig() Config {
	return Config{
		Count:         parameter.EntityCount,
		Parent:        parameter.ParentPosition(),
		Normalization: seed.NormalizeParsedWidth,
		Windows: Windows{
			Shape:    seed.ShapeWindow,
			Motion:   seed.MotionWindow,
			Color:    seed.ColorWindow,
			Ambience: seed.AmbienceWindow,
		},
	}
}
