package parameter

import "github.com/lixenwraith/swarm-installation/vmath"

// Installation Layout
const (
	// EntityCount is the size of the swarm pool created once per installation
	EntityCount = 180

	// ParentX, ParentY and ParentZ place the installation parent in scene space
	ParentX = 8.0
	ParentY = 10.0
	ParentZ = 8.0

	// CubeHalfExtent is the horizontal half size of the room the viewer stands in
	CubeHalfExtent = 7.0

	// CubeFloorHeight is the minimum viewer height that counts as inside
	CubeFloorHeight = 7.0

	// ForceFieldRadius is how close the viewer may get before entities are pushed aside
	ForceFieldRadius = 3.0

	// AudioOffsetY and SpeechOffsetY place the ambience and speech emitters above the parent
	AudioOffsetY  = 8.0
	SpeechOffsetY = 4.0
)

// ParentPosition returns the default installation parent position
func ParentPosition() vmath.Vec3 {
	return vmath.V3(ParentX, ParentY, ParentZ)
}

// PlayerStart is where the viewer enters the installation, inside the cube and clear of every portal
func PlayerStart() vmath.Vec3 {
	return vmath.V3(ParentX, CubeFloorHeight+1, ParentZ)
}
