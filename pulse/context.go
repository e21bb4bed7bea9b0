package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	runtime.LockOSThread()

	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// Context bundles the webgpu handles everything else builds on: the
// Device and the Queue commands are submitted to, plus the Surface and
// Adapter they were derived from.
//
// All of these are environment preconditions. If any of them cannot be
// acquired there is nothing to retry, the caller is expected to abort.
type Context struct {
	*wgpu.Device
	Queue   *wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter

	surfaceConfig *wgpu.SurfaceConfiguration
}

func New(sd *wgpu.SurfaceDescriptor) (ctx *Context, err error) {
	defer func() {
		if err != nil && ctx != nil {
			ctx.Release()
			ctx = nil
		}
	}()

	ctx = &Context{}

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	ctx.Surface = instance.CreateSurface(sd)
	if ctx.Surface == nil {
		return nil, errors.New("no drawable surface")
	}

	// the adapter must be able to render to the surface
	ctx.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    ctx.Surface,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}

	ctx.Device, err = ctx.Adapter.RequestDevice(nil)
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}

	ctx.Queue = ctx.Device.GetQueue()

	return ctx, nil
}

// Configure applies the surface configuration for the given drawable
// size and returns the texture format the surface was configured with.
// The format is the first one the adapter reports for this surface.
func (ctx *Context) Configure(width, height uint32) wgpu.TextureFormat {
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)

	ctx.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       width,
		Height:      height,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}

	slog.Info("Configure surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
		slog.Any("format", ctx.surfaceConfig.Format),
	)

	ctx.Surface.Configure(ctx.Adapter, ctx.Device, ctx.surfaceConfig)

	return ctx.surfaceConfig.Format
}

// SurfaceFormat returns the format passed to the last Configure call.
func (ctx *Context) SurfaceFormat() wgpu.TextureFormat {
	return ctx.surfaceConfig.Format
}

func (ctx *Context) Release() {
	if ctx.Queue != nil {
		ctx.Queue.Release()
		ctx.Queue = nil
	}

	if ctx.Device != nil {
		ctx.Device.Release()
		ctx.Device = nil
	}

	if ctx.Adapter != nil {
		ctx.Adapter.Release()
		ctx.Adapter = nil
	}

	if ctx.Surface != nil {
		ctx.Surface.Release()
		ctx.Surface = nil
	}
}
