package life

import (
	_ "embed"
	"strconv"
	"strings"
)

//go:embed shaders/cell.wgsl
var cellShaderSource string

//go:embed shaders/flat.wgsl
var flatShaderSource string

//go:embed shaders/simulation.wgsl
var simulationShaderSource string

// simulationShader substitutes the configured workgroup edge length
// into the compute shader source. The workgroup size is baked into
// the WGSL text, there is no dispatch-time parameter for it.
func simulationShader(tileSize uint32) string {
	tile := strconv.FormatUint(uint64(tileSize), 10)
	return strings.ReplaceAll(simulationShaderSource, "TILE_SIZE", tile)
}
