// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"errors"
	"image"
	"testing"

	"cogentcore.org/hellotri/config"
	"cogentcore.org/hellotri/gpu"
	"cogentcore.org/hellotri/system"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	opts     system.WindowOptions
	inner    image.Point
	visible  bool
	pos      system.Position
	redraws  int
	monitor  *system.Monitor
	shownAt  int // renders done when shown
	renderer *fakeRenderer
}

func (w *fakeWindow) InnerSize() image.Point { return w.inner }
func (w *fakeWindow) OuterSize() image.Point { return w.opts.Size }
func (w *fakeWindow) SetVisible(v bool) {
	w.visible = v
	if w.renderer != nil {
		w.shownAt = len(w.renderer.frames)
	}
}
func (w *fakeWindow) SetOuterPosition(pos system.Position)       { w.pos = pos }
func (w *fakeWindow) CurrentMonitor() (*system.Monitor, bool)    { return w.monitor, w.monitor != nil }
func (w *fakeWindow) RequestRedraw()                             { w.redraws++ }
func (w *fakeWindow) PrePresentNotify()                          {}
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }

type fakeLoop struct {
	windows   []*fakeWindow
	createErr error
	exits     int
}

func (el *fakeLoop) CreateWindow(opts *system.WindowOptions) (system.Window, error) {
	if el.createErr != nil {
		return nil, el.createErr
	}
	w := &fakeWindow{
		opts:    *opts,
		inner:   opts.Size,
		monitor: &system.Monitor{Size: image.Pt(1920, 1080)},
	}
	el.windows = append(el.windows, w)
	return w, nil
}

func (el *fakeLoop) Exit() { el.exits++ }

type fakeRenderer struct {
	sizes    []image.Point
	frames   []image.Point
	errs     []error
	released bool
}

func (r *fakeRenderer) Reconfigure(size image.Point) {
	r.sizes = append(r.sizes, gpu.ClampSize(size))
}

func (r *fakeRenderer) RenderFrame(win gpu.Window) error {
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		if err != nil {
			return err
		}
	}
	cur := image.Point{}
	if len(r.sizes) > 0 {
		cur = r.sizes[len(r.sizes)-1]
	}
	r.frames = append(r.frames, cur)
	return nil
}

func (r *fakeRenderer) Release() { r.released = true }

// newTestApp returns an App whose renderers are recorded in rs.
func newTestApp(rs *[]*fakeRenderer, setupErr error) *App {
	a := New(config.New())
	a.NewRenderer = func(ctx context.Context, win system.Window, size image.Point) (Renderer, error) {
		if setupErr != nil {
			return nil, setupErr
		}
		r := &fakeRenderer{}
		r.Reconfigure(size)
		win.(*fakeWindow).renderer = r
		*rs = append(*rs, r)
		return r, nil
	}
	return a
}

func TestResumed(t *testing.T) {
	var rs []*fakeRenderer
	a := newTestApp(&rs, nil)
	el := &fakeLoop{}

	assert.Equal(t, Loading, a.State())
	assert.Panics(t, func() { a.mustReady() })

	a.Resumed(el)
	a.Resumed(el)
	require.Len(t, el.windows, 1)
	require.Len(t, rs, 1)
	assert.Equal(t, Ready, a.State())
	assert.NotPanics(t, func() { a.mustReady() })

	w := el.windows[0]
	assert.Equal(t, "WGPU Tutorial", w.opts.Title)
	assert.Equal(t, image.Pt(800, 600), w.opts.Size)
	assert.False(t, w.opts.Visible)
	assert.True(t, w.visible)
	assert.Equal(t, 1, w.shownAt, "shown after the first frame")
	assert.Equal(t, system.Position{X: 560, Y: 240}, w.pos)
	assert.Equal(t, 0, el.exits)
	assert.NoError(t, a.Err())
}

func TestEventsWhileLoading(t *testing.T) {
	var rs []*fakeRenderer
	a := newTestApp(&rs, nil)
	el := &fakeLoop{}

	a.WindowEvent(el, system.RedrawRequested{})
	a.WindowEvent(el, system.Resized{Size: image.Pt(10, 10)})
	a.WindowEvent(el, system.KeyEvent{Code: system.CodeEscape, State: system.Pressed})
	assert.Equal(t, 0, el.exits)
	assert.Empty(t, rs)

	a.WindowEvent(el, system.CloseRequested{})
	assert.Equal(t, 1, el.exits)
}

func TestResizeCoalescing(t *testing.T) {
	var rs []*fakeRenderer
	a := newTestApp(&rs, nil)
	el := &fakeLoop{}
	a.Resumed(el)
	w, r := el.windows[0], rs[0]
	require.Len(t, r.sizes, 1)

	for _, sz := range []image.Point{{640, 480}, {700, 500}, {1024, 768}} {
		w.inner = sz
		a.WindowEvent(el, system.Resized{Size: sz})
	}
	assert.Len(t, r.sizes, 1, "no reconfigure before the redraw")
	assert.Equal(t, 3, w.redraws)

	a.WindowEvent(el, system.RedrawRequested{})
	require.Len(t, r.sizes, 2)
	assert.Equal(t, image.Pt(1024, 768), r.sizes[1])
	assert.Equal(t, image.Pt(1024, 768), r.frames[len(r.frames)-1])

	a.WindowEvent(el, system.RedrawRequested{})
	assert.Len(t, r.sizes, 2, "flag is cleared")
	assert.Equal(t, 5, w.redraws, "continuous redraw")

	w.inner = image.Pt(0, 0)
	a.WindowEvent(el, system.Resized{})
	a.WindowEvent(el, system.RedrawRequested{})
	assert.Equal(t, image.Pt(1, 1), r.sizes[2])
}

func TestNotContinuous(t *testing.T) {
	var rs []*fakeRenderer
	a := newTestApp(&rs, nil)
	a.Config.Continuous = false
	el := &fakeLoop{}
	a.Resumed(el)
	w := el.windows[0]

	a.WindowEvent(el, system.RedrawRequested{})
	assert.Equal(t, 0, w.redraws)
	assert.Len(t, rs[0].frames, 2)
}

func TestKeys(t *testing.T) {
	var rs []*fakeRenderer
	a := newTestApp(&rs, nil)
	el := &fakeLoop{}
	a.Resumed(el)

	a.WindowEvent(el, system.KeyEvent{Code: system.CodeEscape, State: system.Released})
	a.WindowEvent(el, system.KeyEvent{Code: system.CodeA, State: system.Pressed})
	a.WindowEvent(el, system.KeyEvent{Code: system.CodeSpacebar, State: system.Pressed})
	assert.Equal(t, 0, el.exits)

	a.WindowEvent(el, system.KeyEvent{Code: system.CodeEscape, State: system.Pressed})
	assert.Equal(t, 1, el.exits)
	assert.NoError(t, a.Err())
}

func TestCloseWhenReady(t *testing.T) {
	var rs []*fakeRenderer
	a := newTestApp(&rs, nil)
	el := &fakeLoop{}
	a.Resumed(el)
	a.WindowEvent(el, system.CloseRequested{})
	assert.Equal(t, 1, el.exits)

	a.Exiting(el)
	assert.True(t, rs[0].released)
}

func TestSetupFailure(t *testing.T) {
	boom := errors.New("no adapter")
	var rs []*fakeRenderer
	a := newTestApp(&rs, boom)
	el := &fakeLoop{}
	a.Resumed(el)
	assert.Equal(t, Loading, a.State())
	assert.ErrorIs(t, a.Err(), boom)
	assert.ErrorContains(t, a.Err(), "create renderer")
	assert.Equal(t, 1, el.exits)

	a.Resumed(el)
	assert.Len(t, el.windows, 1, "no retry after a fatal error")

	el = &fakeLoop{createErr: errors.New("no display")}
	a = newTestApp(&rs, nil)
	a.Resumed(el)
	assert.ErrorContains(t, a.Err(), "create window")
	assert.Equal(t, 1, el.exits)
	a.Exiting(el)
}

func TestFatalFrame(t *testing.T) {
	var rs []*fakeRenderer
	a := newTestApp(&rs, nil)
	el := &fakeLoop{}
	a.Resumed(el)
	w := el.windows[0]
	fatal := &gpu.FrameError{Status: gpu.FrameDeviceLost}
	rs[0].errs = []error{fatal}

	a.WindowEvent(el, system.RedrawRequested{})
	assert.ErrorIs(t, a.Err(), fatal)
	assert.Equal(t, 1, el.exits)
	assert.Equal(t, 0, w.redraws)
}

func TestWindowStep(t *testing.T) {
	var rs []*fakeRenderer
	a := newTestApp(&rs, nil)
	a.Config.Step = "window"
	el := &fakeLoop{}
	a.Resumed(el)
	require.Len(t, el.windows, 1)
	assert.Empty(t, rs, "no renderer without a GPU")
	assert.Equal(t, Ready, a.State())
	w := el.windows[0]
	assert.True(t, w.visible)
	assert.Equal(t, system.Position{X: 560, Y: 240}, w.pos)

	a.WindowEvent(el, system.Resized{Size: image.Pt(640, 480)})
	a.WindowEvent(el, system.RedrawRequested{})
	assert.Equal(t, 2, w.redraws)
	assert.NoError(t, a.Err())

	a.WindowEvent(el, system.KeyEvent{Code: system.CodeEscape, State: system.Pressed})
	assert.Equal(t, 1, el.exits)
	a.Exiting(el)
}
