package render

import _ "embed"

// Shader sources are data assets kept apart from the geometry code; the
// geometry package only ever emits vertex and normal lists.
var (
	//go:embed shaders/vignette.fs
	vignetteFS string

	//go:embed shaders/lighting.vs
	lightingVS string

	//go:embed shaders/lighting.fs
	lightingFS string
)
