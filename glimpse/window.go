package glimpse

import (
	"time"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window is a drawable output target. Desktop builds back it with a
// glfw window, wasm builds with the browser viewport.
type Window interface {
	// Size returns the current size of the drawable area in pixels.
	Size() (uint32, uint32)

	// SurfaceDescriptor describes the surface to render to.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run invokes frame once per interval until the window is closed.
	// It returns the first error returned by frame. Pacing is purely
	// wall-clock, a frame that runs long is not caught up on.
	Run(interval time.Duration, frame func() error) error

	Terminate()
}
