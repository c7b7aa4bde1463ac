// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app provides the lifecycle of the hellotri application:
// it creates the window and the renderer once the platform is ready,
// then turns window events into frames.
package app

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/hellotri/config"
	"cogentcore.org/hellotri/gpu"
	"cogentcore.org/hellotri/system"
)

// States are the lifecycle states of an [App].
type States int32

const (
	// Loading is the initial state, until the window and the
	// renderer exist.
	Loading States = iota

	// Ready is the state once the window has been shown. It is final.
	Ready
)

func (st States) String() string {
	if st == Ready {
		return "Ready"
	}
	return "Loading"
}

// Renderer is the part of [gpu.Renderer] used by an [App].
type Renderer interface {
	Reconfigure(size image.Point)
	RenderFrame(win gpu.Window) error
	Release()
}

// NewRendererFunc makes the renderer for a window, for a surface
// of the given size in physical pixels.
type NewRendererFunc func(ctx context.Context, win system.Window, size image.Point) (Renderer, error)

// App is a [system.Handler] that owns the window and the renderer.
type App struct {

	// Config is the configuration of the app.
	Config *config.Config

	// NewRenderer makes the renderer. It defaults to [gpu.NewRenderer]
	// with the options of Config.
	NewRenderer NewRendererFunc

	state States
	ready *ready
	err   error
}

// ready is the state that only exists once the app is [Ready].
type ready struct {
	window system.Window

	// renderer is nil when the step has no GPU.
	renderer Renderer

	// pendingResize is set on resize and cleared when the surface is
	// reconfigured on the next redraw.
	pendingResize bool
}

// New returns a new App for the given configuration.
func New(cfg *config.Config) *App {
	a := &App{Config: cfg}
	a.NewRenderer = a.newGPURenderer
	return a
}

func (a *App) newGPURenderer(ctx context.Context, win system.Window, size image.Point) (Renderer, error) {
	opts, err := a.Config.RendererOptions()
	if err != nil {
		return nil, err
	}
	return gpu.NewRenderer(ctx, win, size, opts)
}

// State returns the current lifecycle state.
func (a *App) State() States {
	return a.state
}

// Err returns the fatal error that stopped the app, if any.
func (a *App) Err() error {
	return a.err
}

// mustReady returns the ready state. It panics while loading:
// only events handled after setup may use it.
func (a *App) mustReady() *ready {
	if a.state != Ready || a.ready == nil {
		panic("app: window and renderer used before the app is ready")
	}
	return a.ready
}

// Resumed creates the window and the renderer, renders the first
// frame and shows the window. It does nothing once the app is ready
// or has failed.
func (a *App) Resumed(el system.EventLoop) {
	if a.state == Ready || a.err != nil {
		return
	}
	if err := a.setup(el); err != nil {
		a.fail(el, err)
	}
}

func (a *App) setup(el system.EventLoop) error {
	win, err := el.CreateWindow(&system.WindowOptions{
		Title:   a.Config.Title,
		Size:    a.Config.Size(),
		Visible: false,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	if !system.Center(win) {
		slog.Debug("app: no monitor to center the window on")
	}
	var rd Renderer
	if a.Config.Renders() {
		rd, err = a.NewRenderer(context.Background(), win, win.InnerSize())
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}
		if err := rd.RenderFrame(win); err != nil {
			rd.Release()
			return fmt.Errorf("render first frame: %w", err)
		}
	}
	win.SetVisible(true)
	a.ready = &ready{window: win, renderer: rd}
	a.state = Ready
	slog.Info("app: ready", "size", win.InnerSize())
	return nil
}

// fail records a fatal error and stops the event loop.
func (a *App) fail(el system.EventLoop, err error) {
	slog.Error("app: fatal", "err", err)
	a.err = err
	el.Exit()
}

// WindowEvent handles an event on the window. Close requests stop the
// event loop in any state; other events are dropped until the app
// is ready.
func (a *App) WindowEvent(el system.EventLoop, ev system.Event) {
	if _, ok := ev.(system.CloseRequested); ok {
		el.Exit()
		return
	}
	if a.state != Ready {
		slog.Debug("app: dropped event while loading", "event", ev)
		return
	}
	rs := a.mustReady()
	switch ev := ev.(type) {
	case system.RedrawRequested:
		if rs.renderer != nil {
			if rs.pendingResize {
				rs.renderer.Reconfigure(rs.window.InnerSize())
				rs.pendingResize = false
			}
			if err := rs.renderer.RenderFrame(rs.window); err != nil {
				a.fail(el, err)
				return
			}
		}
		if a.Config.Continuous {
			rs.window.RequestRedraw()
		}
	case system.Resized:
		rs.pendingResize = true
		rs.window.RequestRedraw()
	case system.KeyEvent:
		if ev.Code == system.CodeEscape && ev.State == system.Pressed {
			el.Exit()
		}
	}
}

// Exiting releases the renderer, if any, while the window still exists.
func (a *App) Exiting(el system.EventLoop) {
	if a.ready != nil && a.ready.renderer != nil {
		a.ready.renderer.Release()
	}
}
