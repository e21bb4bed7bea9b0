package pulse

import (
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// CreateBuffer allocates an uninitialized buffer. The buffer is
// released when it gets garbage collected.
func (ctx *Context) CreateBuffer(desc wgpu.BufferDescriptor) *wgpu.Buffer {
	buf, err := ctx.Device.CreateBuffer(&desc)
	Handle(err, "create buffer label=%q", desc.Label)

	return withFinalizer(buf)
}

// CreateBufferInit allocates a buffer and uploads its initial
// contents in one go.
func (ctx *Context) CreateBufferInit(desc wgpu.BufferInitDescriptor) *wgpu.Buffer {
	buf, err := ctx.Device.CreateBufferInit(&desc)
	Handle(err, "create and init buffer label=%q", desc.Label)

	return withFinalizer(buf)
}

// WriteToBuffer copies the values to the GPU via the queue.
func WriteToBuffer[T any](ctx *Context, target *wgpu.Buffer, values []T) {
	err := ctx.Queue.WriteBuffer(target, 0, wgpu.ToBytes(values))
	Handle(err, "write to buffer")
}

func withFinalizer(buf *wgpu.Buffer) *wgpu.Buffer {
	runtime.SetFinalizer(buf, func(buf *wgpu.Buffer) {
		buf.Release()
	})

	return buf
}
