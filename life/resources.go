package life

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/oliverbestmann/conway/pulse"
)

// quadVertices is the unit quad every cell instance is drawn with,
// two triangles of three vertices each, inset so the gaps between
// cells stay visible.
var quadVertices = []float32{
	// X, Y
	-0.8, -0.8,
	0.8, -0.8,
	0.8, 0.8,

	-0.8, -0.8,
	0.8, 0.8,
	-0.8, 0.8,
}

// VerticesPerCell is the vertex count of the shared quad mesh.
const VerticesPerCell = 6

// Resources holds the static buffers of the demo. Everything here is
// uploaded exactly once at startup, after that the two state buffers
// are only ever touched by compute dispatches. The host never reads
// any of them back.
type Resources struct {
	// Vertex holds the shared quad mesh.
	Vertex *wgpu.Buffer

	// GridUniform holds the lattice dimensions as a vec2f.
	GridUniform *wgpu.Buffer

	// State is the ping-pong pair of cell state buffers, indexed by
	// BufferRole. Both entries are nil in render-only mode.
	State [2]*wgpu.Buffer
}

func newResources(ctx *pulse.Context, opts Options) *Resources {
	rs := &Resources{}

	rs.Vertex = ctx.CreateBufferInit(wgpu.BufferInitDescriptor{
		Label:    "QuadVertices",
		Contents: wgpu.ToBytes(quadVertices),
		Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})

	gridSize := []float32{float32(opts.GridSize), float32(opts.GridSize)}
	rs.GridUniform = ctx.CreateBufferInit(wgpu.BufferInitDescriptor{
		Label:    "GridSize",
		Contents: wgpu.ToBytes(gridSize),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})

	if opts.RenderOnly {
		return rs
	}

	// only RoleA is seeded. The first dispatch reads it and fully
	// overwrites RoleB before anything looks at RoleB.
	cells := make([]uint32, opts.CellCount())
	opts.Seeder.Seed(cells, opts.GridSize)

	for role := RoleA; role <= RoleB; role++ {
		rs.State[role] = ctx.CreateBuffer(wgpu.BufferDescriptor{
			Label: "CellState" + role.String(),
			Size:  uint64(opts.CellCount()) * 4,
			Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
		})
	}

	pulse.WriteToBuffer(ctx, rs.State[RoleA], cells)

	return rs
}
