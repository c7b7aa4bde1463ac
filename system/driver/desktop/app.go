// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Package desktop implements the [system] windowing contract on
// desktop platforms using glfw.
package desktop

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/hellotri/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// ErrWindowExists is returned by [App.CreateWindow] when the app
// already has a window.
var ErrWindowExists = errors.New("desktop: only one window is supported")

// Init initializes glfw.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down glfw -- call as last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// App is the glfw event loop. It implements [system.EventLoop].
type App struct {
	handler system.Handler
	window  *Window
	exit    bool
}

// Run initializes glfw and runs the event loop, delivering events to h,
// until [App.Exit] is called. It only returns an error if glfw itself
// fails to start; errors of the handler are the handler's to report.
// IMPORTANT: must be called on the main initial thread!
func Run(h system.Handler) error {
	if err := Init(); err != nil {
		return err
	}
	defer Terminate()

	a := &App{handler: h}
	defer a.destroy()

	// desktop windows are usable as soon as glfw is up,
	// so the app resumes exactly once.
	h.Resumed(a)
	for !a.exit {
		a.step()
	}
	h.Exiting(a)
	return nil
}

// step runs one iteration of the loop: while a redraw is pending it
// polls without blocking and then delivers the redraw, otherwise it
// sleeps until the next platform event.
func (a *App) step() {
	w := a.window
	if w == nil || !w.redraw {
		glfw.WaitEvents()
		return
	}
	glfw.PollEvents()
	if a.exit || !w.redraw {
		return
	}
	w.redraw = false
	a.handler.WindowEvent(a, system.RedrawRequested{})
}

func (a *App) CreateWindow(opts *system.WindowOptions) (system.Window, error) {
	if a.window != nil {
		return nil, ErrWindowExists
	}
	w, err := newWindow(a, opts)
	if err != nil {
		return nil, err
	}
	a.window = w
	return w, nil
}

func (a *App) Exit() {
	a.exit = true
	glfw.PostEmptyEvent()
}

// send delivers a window event to the handler.
func (a *App) send(ev system.Event) {
	a.handler.WindowEvent(a, ev)
}

func (a *App) destroy() {
	if a.window != nil {
		a.window.glw.Destroy()
		a.window = nil
	}
}
