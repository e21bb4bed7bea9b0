//go:build !js

package glimpse

import (
	"fmt"
	"os"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
)

type glfwWindow struct {
	win  *glfw.Window
	prof interface{ Stop() }
}

func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window}

	if os.Getenv("CONWAY_PROFILE") == "1" {
		w.prof = profile.Start(profile.CPUProfile)
	}

	return w, nil
}

func (g *glfwWindow) Size() (uint32, uint32) {
	width, height := g.win.GetSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(interval time.Duration, frame func() error) error {
	next := time.Now()

	for !g.win.ShouldClose() {
		glfw.PollEvents()

		if err := frame(); err != nil {
			return err
		}

		next = next.Add(interval)

		if wait := time.Until(next); wait > 0 {
			time.Sleep(wait)
		} else {
			// the frame overran the interval, restart the schedule
			// instead of firing a burst of catch-up frames
			next = time.Now()
		}
	}

	return nil
}
