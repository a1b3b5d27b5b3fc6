package parameter

// Terrain profile generation
const (
	// TerrainStep is the horizontal spacing between interior samples
	TerrainStep = 10
	// TerrainFirstX is the x of the first interior sample
	TerrainFirstX = 1

	// TerrainMinDepth and TerrainMaxDepth bound the random surface depth above the screen bottom (inclusive)
	TerrainMinDepth = 50
	TerrainMaxDepth = 150

	// TerrainAnchorDepth is the depth of the two boundary anchors at x=0 and x=width
	TerrainAnchorDepth = 100.0
)

// Erosion
const (
	// ErosionTolerance is the strict horizontal distance under which a sample is hit
	ErosionTolerance = 10.0
	// CraterDepth is how far below the projectile the surface is pushed
	CraterDepth = 20.0
	// ErosionClamp restricts erosion to writes that lower the surface
	ErosionClamp = false
)
