package component

// MaterialComponent is a PBR appearance assigned to an entity
// Albedo and Emissive may exceed 1 for HDR glow
type MaterialComponent struct {
	Albedo    [3]float64
	Emissive  [3]float64
	Metallic  float64
	Roughness float64
}

// MeshComponent names the primitive or asset path rendered for an entity
type MeshComponent struct {
	Shape string
}
