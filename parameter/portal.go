package parameter

// Portal Geometry
const (
	// PortalMaxDistance is the click range and the opening radius
	PortalMaxDistance = 6.0

	// PortalHeight is the y position of every portal frame
	PortalHeight = 8.1288

	// PortalMirrorMidpoint is the x and z axis the viewer is mirrored around on traversal
	PortalMirrorMidpoint = 8.0

	// PortalAnimationSpeed is progress per second while opening or closing
	PortalAnimationSpeed = 1.0

	// PortalBarHeight is the full height of the side bars, the top bar rests there
	PortalBarHeight = 4.0

	// PortalBarSpread is how far side bars slide out from center when fully open
	PortalBarSpread = 0.5

	// PortalTopBarMinWidth is the collapsed width of the top bar
	PortalTopBarMinWidth = 0.1
)
