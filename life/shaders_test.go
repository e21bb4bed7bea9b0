package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulationShaderTileSize(t *testing.T) {
	source := simulationShader(8)

	assert.Contains(t, source, "@workgroup_size(8, 8)")
	assert.NotContains(t, source, "TILE_SIZE")

	source = simulationShader(16)
	assert.Contains(t, source, "@workgroup_size(16, 16)")
}

func TestShaderEntryPoints(t *testing.T) {
	assert.Contains(t, cellShaderSource, "fn vs_main")
	assert.Contains(t, cellShaderSource, "fn fs_main")

	assert.Contains(t, flatShaderSource, "fn vs_main")
	assert.Contains(t, flatShaderSource, "fn fs_main")

	assert.Contains(t, simulationShaderSource, "fn cs_main")
}

func TestShaderBindings(t *testing.T) {
	// the simulation consumes all three bindings of the shared
	// layout, the cell shader the first two, the flat shader only
	// the uniform
	assert.Contains(t, simulationShaderSource, "@binding(2)")
	assert.Contains(t, cellShaderSource, "@binding(1)")
	assert.NotContains(t, cellShaderSource, "@binding(2)")
	assert.NotContains(t, flatShaderSource, "@binding(1)")
}
