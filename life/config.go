package life

import "time"

const (
	DefaultGridSize       = 128
	DefaultTileSize       = 8
	DefaultUpdateInterval = 200 * time.Millisecond

	// DefaultAliveFraction is the probability of a cell starting
	// alive when no explicit Seeder is configured. An arbitrary
	// demo choice, dense enough to keep the board lively for a
	// while.
	DefaultAliveFraction = 0.4
)

// Options configures the demo. The zero value is usable, every unset
// field falls back to one of the defaults above.
type Options struct {
	// GridSize is the width and height of the cell lattice.
	GridSize uint32

	// TileSize is the edge length of one compute workgroup. The
	// dispatch covers the lattice with ceil(GridSize/TileSize)
	// workgroups per axis.
	TileSize uint32

	// UpdateInterval is the wall-clock period between simulation
	// steps. The loop never paces against actual GPU completion,
	// submissions are fire and forget.
	UpdateInterval time.Duration

	// Seeder fills the initial cell states.
	Seeder Seeder

	// RenderOnly disables the simulation entirely: no compute
	// pipeline, no cell state buffers, and the quads are drawn from
	// the grid uniform alone.
	RenderOnly bool

	WindowWidth  int
	WindowHeight int
	WindowTitle  string
}

func (o Options) withDefaults() Options {
	if o.GridSize == 0 {
		o.GridSize = DefaultGridSize
	}

	if o.TileSize == 0 {
		o.TileSize = DefaultTileSize
	}

	if o.UpdateInterval == 0 {
		o.UpdateInterval = DefaultUpdateInterval
	}

	if o.Seeder == nil {
		o.Seeder = RandomSeed{Alive: DefaultAliveFraction}
	}

	if o.WindowWidth == 0 {
		o.WindowWidth = 1000
	}

	if o.WindowHeight == 0 {
		o.WindowHeight = 1000
	}

	if o.WindowTitle == "" {
		o.WindowTitle = "Conway"
	}

	return o
}

// CellCount returns the number of cells in the lattice, which is also
// the instance count of the per-frame draw call.
func (o Options) CellCount() uint32 {
	return o.GridSize * o.GridSize
}
