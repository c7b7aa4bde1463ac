// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"image"
)

// Event is a window event delivered to [Handler.WindowEvent].
// It is one of [RedrawRequested], [Resized], [CloseRequested]
// or [KeyEvent].
type Event interface {
	fmt.Stringer
	isEvent()
}

// RedrawRequested is sent when the window should draw a new frame,
// after [Window.RequestRedraw] or when the platform needs a repaint.
type RedrawRequested struct{}

// Resized is sent when the drawable size of the window changes.
type Resized struct {

	// Size is the new drawable size in physical pixels.
	// It can be zero in either dimension, for example while minimized.
	Size image.Point
}

// CloseRequested is sent when the user asks to close the window.
type CloseRequested struct{}

// KeyEvent is sent when a physical key is pressed or released.
type KeyEvent struct {

	// Code is the physical key.
	Code KeyCodes

	// State is whether the key went down or up.
	State KeyStates
}

func (RedrawRequested) isEvent() {}
func (Resized) isEvent()         {}
func (CloseRequested) isEvent()  {}
func (KeyEvent) isEvent()        {}

func (RedrawRequested) String() string { return "RedrawRequested" }
func (ev Resized) String() string      { return fmt.Sprintf("Resized(%dx%d)", ev.Size.X, ev.Size.Y) }
func (CloseRequested) String() string  { return "CloseRequested" }
func (ev KeyEvent) String() string     { return fmt.Sprintf("Key(%s %s)", ev.Code, ev.State) }
