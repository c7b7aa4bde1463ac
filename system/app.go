// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the windowing contract between a platform
// driver (see system/driver/desktop) and the application: a single
// window, the event loop that owns it, and the events it delivers.
package system

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// EventLoop is the platform event loop, as seen from inside a [Handler]
// callback. All methods must be called on the thread running the loop.
type EventLoop interface {

	// CreateWindow makes a new window with the given options.
	// Only one window is supported; it lives until the loop exits.
	CreateWindow(opts *WindowOptions) (Window, error)

	// Exit stops the loop after the current callback returns.
	Exit()
}

// Handler receives lifecycle and window events from an [EventLoop].
// Both methods are called synchronously on the loop thread.
type Handler interface {

	// Resumed is called when the platform is ready for windows and
	// surfaces to be created. It fires at least once, and may fire
	// again on platforms that suspend and resume the app.
	Resumed(el EventLoop)

	// WindowEvent is called for every event on the window.
	WindowEvent(el EventLoop, ev Event)

	// Exiting is called once when the loop stops, before the window
	// is destroyed, so that resources bound to it can be released.
	Exiting(el EventLoop)
}

// WindowOptions are the options used to make a new window.
type WindowOptions struct {

	// Title is the window title.
	Title string

	// Size is the requested size of the drawable area, in screen units.
	Size image.Point

	// Visible is whether the window is shown as soon as it is created.
	// Windows that are rendered into before being shown should set
	// this to false and call [Window.SetVisible] after the first frame.
	Visible bool
}

// Window is a platform window that can host a GPU surface.
// The same Window value is held by the driver, the application and
// the renderer; none of them owns it exclusively.
type Window interface {

	// InnerSize returns the size of the drawable area in physical pixels.
	InnerSize() image.Point

	// OuterSize returns the size of the window including decorations,
	// in screen coordinates (the units of [Monitor] and [Position]).
	OuterSize() image.Point

	// SetVisible shows or hides the window.
	SetVisible(visible bool)

	// SetOuterPosition moves the top-left corner of the window,
	// including decorations, to the given position in screen coordinates.
	SetOuterPosition(pos Position)

	// CurrentMonitor returns the monitor the window is on, or false
	// if the platform cannot tell.
	CurrentMonitor() (*Monitor, bool)

	// RequestRedraw schedules a [RedrawRequested] event. Multiple
	// requests before the event is delivered are merged.
	RequestRedraw()

	// PrePresentNotify is called right before a frame is presented,
	// so the platform can align its frame pacing.
	PrePresentNotify()

	// SurfaceDescriptor returns the descriptor used to bind a WebGPU
	// surface to the window's drawable.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}
