package life

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/oliverbestmann/conway/glimpse"
	"github.com/oliverbestmann/conway/pulse"
)

// Run initializes the window, the device and all static GPU resources,
// then drives the frame loop until the window closes. Initialization
// failures are environment preconditions and returned immediately,
// nothing in here retries.
func Run(opts Options) error {
	opts = opts.withDefaults()

	win, err := glimpse.NewWindow(opts.WindowWidth, opts.WindowHeight, opts.WindowTitle)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	ctx, err := pulse.New(win.SurfaceDescriptor())
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	width, height := win.Size()
	ctx.Configure(width, height)

	resources := newResources(ctx, opts)

	cache := pulse.NewPipelineCache[renderConfig](ctx)

	pipelines, err := newPipelines(ctx, cache, opts, resources)
	if err != nil {
		return fmt.Errorf("build pipelines: %w", err)
	}

	slog.Info("Enter frame loop",
		slog.Uint64("gridSize", uint64(opts.GridSize)),
		slog.Uint64("tileSize", uint64(opts.TileSize)),
		slog.Duration("interval", opts.UpdateInterval),
		slog.Bool("renderOnly", opts.RenderOnly),
	)

	frame := newFrame(ctx, opts, resources, pipelines)

	return win.Run(opts.UpdateInterval, func() error {
		err := frame.Render()

		if err != nil && isTransientSurfaceError(err) {
			// skip this frame, the next tick draws again
			slog.Warn("Skipping frame", slog.Any("error", err))
			return nil
		}

		return err
	})
}

// isTransientSurfaceError reports whether err is one of the surface
// conditions worth skipping a frame over. Everything else, device
// loss included, has no recovery path and stops the loop.
func isTransientSurfaceError(err error) bool {
	text := err.Error()

	return strings.Contains(text, "Surface timed out") ||
		strings.Contains(text, "Surface is outdated")
}
