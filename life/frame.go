package life

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/oliverbestmann/conway/pulse"
)

// background is the clear color of the render pass.
var background = wgpu.Color{R: 0, G: 0.01, B: 0.05, A: 1}

// FramePlan is the host-side description of one frame submission:
// which bind groups the two passes select and how much work they
// issue.
type FramePlan struct {
	// Simulate is false in render-only mode, where no compute pass
	// is encoded at all.
	Simulate bool

	// Dispatch is the workgroup count per axis of the compute pass.
	Dispatch [3]uint32

	// ComputeGroup and RenderGroup are the bind group indices bound
	// by the two passes. They are never equal when simulating.
	ComputeGroup int
	RenderGroup  int

	VertexCount   uint32
	InstanceCount uint32
}

// Plan computes the frame plan for the simulation step s. The compute
// phase uses the parity of s, the render phase the parity of s+1, so
// the draw always observes the buffer the dispatch just wrote.
func (o Options) Plan(s Step) FramePlan {
	plan := FramePlan{
		VertexCount:   VerticesPerCell,
		InstanceCount: o.CellCount(),
	}

	if o.RenderOnly {
		return plan
	}

	groups := WorkgroupsPerAxis(o.GridSize, o.TileSize)

	plan.Simulate = true
	plan.Dispatch = [3]uint32{groups, groups, 1}
	plan.ComputeGroup = s.Group()
	plan.RenderGroup = s.Next().Group()

	return plan
}

// Frame drives one simulation step plus one draw per invocation. It
// owns the step counter, no other frame state exists in the process.
type Frame struct {
	ctx       *pulse.Context
	resources *Resources
	pipelines *Pipelines
	opts      Options

	step Step
}

func newFrame(ctx *pulse.Context, opts Options, rs *Resources, pl *Pipelines) *Frame {
	return &Frame{
		ctx:       ctx,
		resources: rs,
		pipelines: pl,
		opts:      opts,
	}
}

// Step returns the number of simulation steps submitted so far.
func (f *Frame) Step() Step {
	return f.step
}

// Render encodes one compute dispatch and one instanced draw into a
// single command buffer and submits it to the queue, fire and forget.
// Only surface acquisition is allowed to fail here, the caller decides
// whether that is worth skipping a frame over.
func (f *Frame) Render() error {
	screen, err := f.ctx.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("get current texture: %w", err)
	}

	view, err := screen.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create surface view: %w", err)
	}

	defer view.Release()

	plan := f.opts.Plan(f.step)

	enc := f.ctx.CreateEncoder("Frame")
	defer enc.Release()

	if plan.Simulate {
		enc.AddComputePass(func(pass *wgpu.ComputePassEncoder) {
			pass.SetPipeline(f.pipelines.Compute)
			pass.SetBindGroup(0, f.pipelines.BindGroups[plan.ComputeGroup], nil)
			pass.DispatchWorkgroups(plan.Dispatch[0], plan.Dispatch[1], plan.Dispatch[2])
		})

		f.step = f.step.Next()
	}

	enc.AddRenderPass(wgpu.RenderPassDescriptor{
		Label: "CellPass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: background,
			},
		},
	}, func(pass *wgpu.RenderPassEncoder) {
		pass.SetPipeline(f.pipelines.Render)
		pass.SetBindGroup(0, f.pipelines.BindGroups[plan.RenderGroup], nil)
		pass.SetVertexBuffer(0, f.resources.Vertex, 0, wgpu.WholeSize)
		pass.Draw(plan.VertexCount, plan.InstanceCount, 0, 0)
	})

	enc.Submit(f.ctx.Queue)

	f.ctx.Surface.Present()

	return nil
}
