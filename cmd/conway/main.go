package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/oliverbestmann/conway/life"
)

func main() {
	opts, err := optionsFromEnv()
	if err != nil {
		slog.Error("Invalid configuration", slog.Any("error", err))
		os.Exit(2)
	}

	if err := life.Run(opts); err != nil {
		slog.Error("Demo failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// optionsFromEnv builds the demo configuration from the environment:
//
//	CONWAY_GRID_SIZE    lattice width and height (default 128)
//	CONWAY_TILE_SIZE    compute workgroup edge length (default 8)
//	CONWAY_INTERVAL_MS  frame period in milliseconds (default 200)
//	CONWAY_SEED_FILL    fraction of cells starting alive (default 0.4)
//	CONWAY_SEED_NOISE   "1" seeds from a noise field instead
//	CONWAY_RENDER_ONLY  "1" disables the simulation pass
//
// The WGPU_LOG_LEVEL and WGPU_FORCE_FALLBACK_ADAPTER variables are
// picked up by the gpu layer as usual.
func optionsFromEnv() (life.Options, error) {
	var opts life.Options
	var err error

	opts.GridSize, err = envUint32("CONWAY_GRID_SIZE")
	if err != nil {
		return opts, err
	}

	opts.TileSize, err = envUint32("CONWAY_TILE_SIZE")
	if err != nil {
		return opts, err
	}

	intervalMs, err := envUint32("CONWAY_INTERVAL_MS")
	if err != nil {
		return opts, err
	}
	opts.UpdateInterval = time.Duration(intervalMs) * time.Millisecond

	opts.RenderOnly = os.Getenv("CONWAY_RENDER_ONLY") == "1"

	opts.Seeder, err = seederFromEnv()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

func seederFromEnv() (life.Seeder, error) {
	if os.Getenv("CONWAY_SEED_NOISE") == "1" {
		return life.NoiseSeed{}, nil
	}

	fill := os.Getenv("CONWAY_SEED_FILL")
	if fill == "" {
		return nil, nil
	}

	alive, err := strconv.ParseFloat(fill, 64)
	if err != nil || alive < 0 || alive > 1 {
		return nil, fmt.Errorf("CONWAY_SEED_FILL must be a fraction in [0, 1], got %q", fill)
	}

	return life.RandomSeed{Alive: alive}, nil
}

func envUint32(name string) (uint32, error) {
	value := os.Getenv(name)
	if value == "" {
		return 0, nil
	}

	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil || parsed == 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, value)
	}

	return uint32(parsed), nil
}
