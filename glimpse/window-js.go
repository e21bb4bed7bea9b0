//go:build js

package glimpse

import (
	"syscall/js"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
)

// jsWindow drives the browser viewport. The webgpu bindings manage
// their own canvas element, so all we provide is the viewport size
// and a timer-paced loop.
type jsWindow struct{}

func NewWindow(width, height int, title string) (Window, error) {
	js.Global().Get("document").Set("title", title)

	return &jsWindow{}, nil
}

func (g *jsWindow) Size() (uint32, uint32) {
	ratio := js.Global().Get("devicePixelRatio").Float()

	vv := js.Global().Get("visualViewport")
	width := vv.Get("width").Float()
	height := vv.Get("height").Float()
	return uint32(width * ratio), uint32(height * ratio)
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{}
}

func (g *jsWindow) Terminate() {
	// do nothing
}

func (g *jsWindow) Run(interval time.Duration, frame func() error) error {
	helper := js.Global().Call("eval", `({
        async run(tickOnce, millis) {
            while (true) {
                await new Promise(resolve => setTimeout(resolve, millis))
                tickOnce();
            }
        }
	})`)

	errs := make(chan error, 1)

	tick := func(this js.Value, args []js.Value) any {
		if err := frame(); err != nil {
			select {
			case errs <- err:
			default:
			}
		}

		return nil
	}

	fn := js.FuncOf(tick)
	defer fn.Release()

	helper.Call("run", fn, interval.Milliseconds())

	// block until the loop reports an error
	return <-errs
}
