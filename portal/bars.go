package portal

import (
	"github.com/lixenwraith/swarm-installation/component"
	"github.com/lixenwraith/swarm-installation/parameter"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// Bars is the frame geometry at some point of the opening animation
type Bars struct {
	SideHeight   float64
	SideOffset   float64
	TopY         float64
	TopWidth     float64
	TopThickness float64
}

// Step advances bar geometry for progress p in [0, 1]
// The first half raises the side bars, the second half spreads them apart
func (b Bars) Step(p float64, opening bool) Bars {
	full := parameter.PortalBarHeight
	spread := parameter.PortalBarSpread
	minWidth := parameter.PortalTopBarMinWidth

	switch {
	case p <= 0:
		return Bars{}
	case p >= 1:
		return Bars{SideHeight: full, SideOffset: spread, TopY: full, TopWidth: 1, TopThickness: 0.5}
	}

	if p <= 0.5 {
		f := p / 0.5
		b.SideHeight = full * f
		b.TopY = full / 2 * f
		b.TopThickness = 0.5 * f
		if opening {
			b.TopWidth = minWidth
			b.SideOffset = 0
		}
		return b
	}

	f := (p - 0.5) / 0.5
	b.SideHeight = full
	b.TopY = full
	b.SideOffset = vmath.LerpEased(0, spread, f)
	b.TopWidth = vmath.LerpEased(minWidth, 1, f)
	return b
}

// Transforms returns the left, right and top bar transforms relative to the portal
func (b Bars) Transforms() (left, right, top component.TransformComponent) {
	left = component.At(vmath.V3(-b.SideOffset, 0, 0))
	left.Scale = vmath.V3(0.5, b.SideHeight, 1)
	right = component.At(vmath.V3(b.SideOffset, 0, 0))
	right.Scale = vmath.V3(0.5, b.SideHeight, 1)
	top = component.At(vmath.V3(0, b.TopY, 0))
	top.Scale = vmath.V3(b.TopWidth, b.TopThickness, 1)
	return left, right, top
}
