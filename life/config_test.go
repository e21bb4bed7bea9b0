package life

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()

	assert.Equal(t, uint32(DefaultGridSize), opts.GridSize)
	assert.Equal(t, uint32(DefaultTileSize), opts.TileSize)
	assert.Equal(t, DefaultUpdateInterval, opts.UpdateInterval)
	assert.Equal(t, RandomSeed{Alive: DefaultAliveFraction}, opts.Seeder)
	assert.False(t, opts.RenderOnly)
	assert.NotEmpty(t, opts.WindowTitle)
}

func TestOptionsKeepsExplicitValues(t *testing.T) {
	opts := Options{
		GridSize:       32,
		TileSize:       16,
		UpdateInterval: 50 * time.Millisecond,
		Seeder:         NoiseSeed{SeedValue: 5},
		RenderOnly:     true,
	}.withDefaults()

	assert.Equal(t, uint32(32), opts.GridSize)
	assert.Equal(t, uint32(16), opts.TileSize)
	assert.Equal(t, 50*time.Millisecond, opts.UpdateInterval)
	assert.Equal(t, NoiseSeed{SeedValue: 5}, opts.Seeder)
	assert.True(t, opts.RenderOnly)
}

func TestCellCount(t *testing.T) {
	assert.Equal(t, uint32(1024), Options{GridSize: 32}.CellCount())
	assert.Equal(t, uint32(16384), Options{GridSize: 128}.CellCount())
}
