package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/conway/life"
)

func clearEnv(t *testing.T) {
	t.Setenv("CONWAY_GRID_SIZE", "")
	t.Setenv("CONWAY_TILE_SIZE", "")
	t.Setenv("CONWAY_INTERVAL_MS", "")
	t.Setenv("CONWAY_SEED_FILL", "")
	t.Setenv("CONWAY_SEED_NOISE", "")
	t.Setenv("CONWAY_RENDER_ONLY", "")
}

func TestOptionsFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONWAY_GRID_SIZE", "32")
	t.Setenv("CONWAY_TILE_SIZE", "4")
	t.Setenv("CONWAY_INTERVAL_MS", "100")
	t.Setenv("CONWAY_SEED_FILL", "0.25")
	t.Setenv("CONWAY_RENDER_ONLY", "1")

	opts, err := optionsFromEnv()
	require.NoError(t, err)

	assert.Equal(t, uint32(32), opts.GridSize)
	assert.Equal(t, uint32(4), opts.TileSize)
	assert.Equal(t, 100*time.Millisecond, opts.UpdateInterval)
	assert.True(t, opts.RenderOnly)
	assert.Equal(t, life.RandomSeed{Alive: 0.25}, opts.Seeder)
}

func TestOptionsFromEnvUnset(t *testing.T) {
	clearEnv(t)

	opts, err := optionsFromEnv()
	require.NoError(t, err)

	// unset values stay zero, the run loop applies the defaults
	assert.Zero(t, opts.GridSize)
	assert.Zero(t, opts.TileSize)
	assert.Zero(t, opts.UpdateInterval)
	assert.Nil(t, opts.Seeder)
	assert.False(t, opts.RenderOnly)
}

func TestOptionsFromEnvNoiseSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONWAY_SEED_NOISE", "1")

	opts, err := optionsFromEnv()
	require.NoError(t, err)

	assert.Equal(t, life.NoiseSeed{}, opts.Seeder)
}

func TestOptionsFromEnvRejectsGarbage(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONWAY_GRID_SIZE", "many")

	_, err := optionsFromEnv()
	assert.ErrorContains(t, err, "CONWAY_GRID_SIZE")
}

func TestOptionsFromEnvRejectsZero(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONWAY_TILE_SIZE", "0")

	_, err := optionsFromEnv()
	assert.ErrorContains(t, err, "CONWAY_TILE_SIZE")
}

func TestOptionsFromEnvRejectsBadFill(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONWAY_SEED_FILL", "2.5")

	_, err := optionsFromEnv()
	assert.ErrorContains(t, err, "CONWAY_SEED_FILL")
}
