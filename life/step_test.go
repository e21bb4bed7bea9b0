package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepParity(t *testing.T) {
	for s := Step(0); s < 64; s++ {
		// the render phase of a frame never binds the group the
		// compute phase of the same frame bound
		assert.NotEqual(t, s.Group(), s.Next().Group(), "step %d", s)

		// no step reads the buffer it writes
		assert.NotEqual(t, s.Input(), s.Output(), "step %d", s)

		// ping-pong: what this step wrote is what the next one reads
		assert.Equal(t, s.Output(), s.Next().Input(), "step %d", s)
		assert.Equal(t, s.Input(), s.Next().Output(), "step %d", s)
	}
}

func TestStepGroupMatchesInputRole(t *testing.T) {
	assert.Equal(t, 0, Step(0).Group())
	assert.Equal(t, RoleA, Step(0).Input())
	assert.Equal(t, RoleB, Step(0).Output())

	assert.Equal(t, 1, Step(1).Group())
	assert.Equal(t, RoleB, Step(1).Input())
	assert.Equal(t, RoleA, Step(1).Output())
}

func TestBufferRole(t *testing.T) {
	assert.Equal(t, RoleB, RoleA.Other())
	assert.Equal(t, RoleA, RoleB.Other())

	assert.Equal(t, "RoleA", RoleA.String())
	assert.Equal(t, "RoleB", RoleB.String())
}
