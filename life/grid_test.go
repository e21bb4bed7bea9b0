package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 16, CeilDiv(128, 8))
	assert.Equal(t, 13, CeilDiv(100, 8))
	assert.Equal(t, 1, CeilDiv(1, 8))
	assert.Equal(t, 4, CeilDiv(32, 8))
	assert.Equal(t, 5, CeilDiv(33, 8))
}

func TestWorkgroupsPerAxis(t *testing.T) {
	assert.Equal(t, uint32(16), WorkgroupsPerAxis(128, 8))
	assert.Equal(t, uint32(4), WorkgroupsPerAxis(32, 8))
	assert.Equal(t, uint32(2), WorkgroupsPerAxis(33, 32))

	// a tile never covers less than one cell of work
	assert.Equal(t, uint32(1), WorkgroupsPerAxis(1, 64))
}
