package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanDispatch(t *testing.T) {
	opts := Options{GridSize: 128, TileSize: 8}.withDefaults()

	plan := opts.Plan(0)

	assert.True(t, plan.Simulate)
	assert.Equal(t, [3]uint32{16, 16, 1}, plan.Dispatch)
	assert.Equal(t, uint32(6), plan.VertexCount)
	assert.Equal(t, uint32(128*128), plan.InstanceCount)
}

func TestPlanDispatchRoundsUp(t *testing.T) {
	opts := Options{GridSize: 100, TileSize: 8}.withDefaults()

	plan := opts.Plan(0)
	assert.Equal(t, [3]uint32{13, 13, 1}, plan.Dispatch)
}

func TestPlanBindGroupsAlternate(t *testing.T) {
	opts := Options{GridSize: 64}.withDefaults()

	for s := Step(0); s < 16; s++ {
		plan := opts.Plan(s)

		// within one frame the two passes never share a bind group
		assert.NotEqual(t, plan.ComputeGroup, plan.RenderGroup, "step %d", s)

		// the buffer written in frame k is the one read in frame k+1
		next := opts.Plan(s.Next())
		assert.Equal(t, plan.RenderGroup, next.ComputeGroup, "step %d", s)
	}
}

func TestPlanRenderOnly(t *testing.T) {
	opts := Options{GridSize: 32, RenderOnly: true}.withDefaults()

	plan := opts.Plan(0)

	assert.False(t, plan.Simulate)
	assert.Equal(t, [3]uint32{}, plan.Dispatch)
	assert.Equal(t, 0, plan.RenderGroup)
	assert.Equal(t, uint32(6), plan.VertexCount)
	assert.Equal(t, uint32(1024), plan.InstanceCount)
}
