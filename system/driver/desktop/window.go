// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package desktop

import (
	"fmt"
	"image"

	"cogentcore.org/hellotri/system"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a glfw window with no client API, for use with a
// WebGPU surface. It implements [system.Window].
type Window struct {
	app *App

	// glw is the glfw window.
	glw *glfw.Window

	// redraw is set by RequestRedraw and cleared when the
	// RedrawRequested event is delivered.
	redraw bool
}

func newWindow(a *App, opts *system.WindowOptions) (*Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	if opts.Visible {
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	w := &Window{app: a, glw: glw}
	glw.SetFramebufferSizeCallback(w.framebufferSizeEvent)
	glw.SetCloseCallback(w.closeEvent)
	glw.SetKeyCallback(w.keyEvent)
	glw.SetRefreshCallback(w.refreshEvent)
	// like any freshly mapped window, the first thing it gets is a redraw
	w.redraw = true
	return w, nil
}

func (w *Window) InnerSize() image.Point {
	width, height := w.glw.GetFramebufferSize()
	return image.Pt(width, height)
}

func (w *Window) OuterSize() image.Point {
	width, height := w.glw.GetSize()
	left, top, right, bottom := w.glw.GetFrameSize()
	return image.Pt(width+left+right, height+top+bottom)
}

func (w *Window) SetVisible(visible bool) {
	if visible {
		w.glw.Show()
	} else {
		w.glw.Hide()
	}
}

// SetOuterPosition moves the window so that its decorations start at pos.
// glfw positions the content area, so the frame is added back on.
func (w *Window) SetOuterPosition(pos system.Position) {
	left, top, _, _ := w.glw.GetFrameSize()
	w.glw.SetPos(int(pos.X)+left, int(pos.Y)+top)
}

// CurrentMonitor returns the monitor containing the center of the
// window, falling back on the primary monitor.
func (w *Window) CurrentMonitor() (*system.Monitor, bool) {
	x, y := w.glw.GetPos()
	width, height := w.glw.GetSize()
	center := image.Pt(x+width/2, y+height/2)
	var primary *system.Monitor
	for _, gm := range glfw.GetMonitors() {
		mon := monitor(gm)
		if mon == nil {
			continue
		}
		if primary == nil {
			primary = mon // glfw lists the primary monitor first
		}
		if center.In(image.Rectangle{Min: mon.Position, Max: mon.Position.Add(mon.Size)}) {
			return mon, true
		}
	}
	return primary, primary != nil
}

// monitor converts a glfw monitor, returning nil if it has no video mode.
func monitor(gm *glfw.Monitor) *system.Monitor {
	if gm == nil {
		return nil
	}
	vm := gm.GetVideoMode()
	if vm == nil {
		return nil
	}
	x, y := gm.GetPos()
	return &system.Monitor{
		Name:     gm.GetName(),
		Position: image.Pt(x, y),
		Size:     image.Pt(vm.Width, vm.Height),
	}
}

func (w *Window) RequestRedraw() {
	if w.redraw {
		return
	}
	w.redraw = true
	glfw.PostEmptyEvent()
}

// PrePresentNotify is a no-op: glfw has no frame pacing hook.
func (w *Window) PrePresentNotify() {}

func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.glw)
}
