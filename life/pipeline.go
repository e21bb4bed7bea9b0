package life

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/oliverbestmann/conway/pulse"
)

// Pipelines bundles the executable pipelines and the precomputed bind
// group pair.
type Pipelines struct {
	Render  *wgpu.RenderPipeline
	Compute *wgpu.ComputePipeline

	// BindGroups is indexed by step parity: index 0 reads RoleA and
	// writes RoleB, index 1 the other way around. In render-only
	// mode only index 0 is populated and it binds the uniform alone.
	BindGroups [2]*wgpu.BindGroup
}

// renderConfig specializes the render pipeline. Configs are the keys
// of the pipeline cache, so two builds from the same shader, layout
// and surface format share one pipeline.
type renderConfig struct {
	shader *wgpu.ShaderModule
	layout *wgpu.PipelineLayout
	format wgpu.TextureFormat
}

func (c renderConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	return dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "CellPipeline",
		Layout: c.layout,
		Vertex: wgpu.VertexState{
			Module:     c.shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					// one vec2f position per vertex
					ArrayStride: 2 * 4,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         0,
							ShaderLocation: 0,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     c.shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    c.format,
					Blend:     nil,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xffffffff,
		},
	})
}

// newPipelines compiles the shaders and builds the render and compute
// pipelines over one shared layout, which guarantees binding slot
// compatibility between the two passes. A compilation failure is a
// development-time defect and is returned, not retried.
func newPipelines(ctx *pulse.Context, cache *pulse.PipelineCache[renderConfig], opts Options, rs *Resources) (*Pipelines, error) {
	if opts.RenderOnly {
		return newStaticPipelines(ctx, cache, opts, rs)
	}

	bindGroupLayout, err := ctx.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "CellBindGroupLayout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment | wgpu.ShaderStageCompute,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageCompute,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeReadOnlyStorage},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageCompute,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeStorage},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group layout: %w", err)
	}

	defer bindGroupLayout.Release()

	pipelineLayout, err := ctx.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "CellPipelineLayout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bindGroupLayout},
	})
	if err != nil {
		return nil, fmt.Errorf("create pipeline layout: %w", err)
	}

	defer pipelineLayout.Release()

	cellShader, err := ctx.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "cell.wgsl",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: cellShaderSource},
	})
	if err != nil {
		return nil, fmt.Errorf("compile cell shader: %w", err)
	}

	defer cellShader.Release()

	simulationModule, err := ctx.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "simulation.wgsl",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: simulationShader(opts.TileSize)},
	})
	if err != nil {
		return nil, fmt.Errorf("compile simulation shader: %w", err)
	}

	defer simulationModule.Release()

	pl := &Pipelines{}

	pl.Render, err = cache.Get(renderConfig{
		shader: cellShader,
		layout: pipelineLayout,
		format: ctx.SurfaceFormat(),
	})
	if err != nil {
		return nil, err
	}

	pl.Compute, err = ctx.Device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label:  "SimulationPipeline",
		Layout: pipelineLayout,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     simulationModule,
			EntryPoint: "cs_main",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create compute pipeline: %w", err)
	}

	for role := RoleA; role <= RoleB; role++ {
		group, err := ctx.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  "CellBindGroup" + role.String(),
			Layout: bindGroupLayout,
			Entries: []wgpu.BindGroupEntry{
				{
					Binding: 0,
					Buffer:  rs.GridUniform,
					Size:    wgpu.WholeSize,
				},
				{
					Binding: 1,
					Buffer:  rs.State[role],
					Size:    wgpu.WholeSize,
				},
				{
					Binding: 2,
					Buffer:  rs.State[role.Other()],
					Size:    wgpu.WholeSize,
				},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("create bind group %s: %w", role, err)
		}

		pl.BindGroups[role] = group
	}

	return pl, nil
}

// newStaticPipelines builds the render-only variant: a uniform-only
// layout, the flat shader and a single bind group. No compute pipeline
// and no cell state.
func newStaticPipelines(ctx *pulse.Context, cache *pulse.PipelineCache[renderConfig], opts Options, rs *Resources) (*Pipelines, error) {
	bindGroupLayout, err := ctx.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "FlatBindGroupLayout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group layout: %w", err)
	}

	defer bindGroupLayout.Release()

	pipelineLayout, err := ctx.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "FlatPipelineLayout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bindGroupLayout},
	})
	if err != nil {
		return nil, fmt.Errorf("create pipeline layout: %w", err)
	}

	defer pipelineLayout.Release()

	flatShader, err := ctx.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "flat.wgsl",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: flatShaderSource},
	})
	if err != nil {
		return nil, fmt.Errorf("compile flat shader: %w", err)
	}

	defer flatShader.Release()

	pl := &Pipelines{}

	pl.Render, err = cache.Get(renderConfig{
		shader: flatShader,
		layout: pipelineLayout,
		format: ctx.SurfaceFormat(),
	})
	if err != nil {
		return nil, err
	}

	pl.BindGroups[0], err = ctx.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "FlatBindGroup",
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  rs.GridUniform,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group: %w", err)
	}

	return pl, nil
}
