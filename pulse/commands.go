package pulse

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// CommandEncoder wraps a wgpu command encoder with pass helpers that
// take care of ending and releasing the pass encoders.
type CommandEncoder struct {
	*wgpu.CommandEncoder
	label string
}

func (ctx *Context) CreateEncoder(label string) CommandEncoder {
	desc := wgpu.CommandEncoderDescriptor{Label: label}

	enc, err := ctx.Device.CreateCommandEncoder(&desc)
	Handle(err, "create command encoder %q", label)

	return CommandEncoder{CommandEncoder: enc, label: label}
}

func (enc *CommandEncoder) AddComputePass(configure func(pass *wgpu.ComputePassEncoder)) {
	pass := enc.BeginComputePass(nil)
	defer pass.Release()

	configure(pass)

	err := pass.End()
	Handle(err, "end compute pass in %q", enc.label)
}

func (enc *CommandEncoder) AddRenderPass(desc wgpu.RenderPassDescriptor, configure func(pass *wgpu.RenderPassEncoder)) {
	pass := enc.BeginRenderPass(&desc)
	defer pass.Release()

	configure(pass)

	err := pass.End()
	Handle(err, "end render pass %q", desc.Label)
}

// Submit finishes the encoder and hands the command buffer to the
// queue. The submission is fire and forget, nothing waits for the
// device to finish executing it.
func (enc *CommandEncoder) Submit(queue *wgpu.Queue) {
	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: enc.label})
	Handle(err, "finish command encoder %q", enc.label)

	defer buf.Release()

	queue.Submit(buf)
}
