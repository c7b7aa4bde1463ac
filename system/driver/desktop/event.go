// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package desktop

import (
	"image"

	"cogentcore.org/hellotri/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func (w *Window) framebufferSizeEvent(gw *glfw.Window, width, height int) {
	w.app.send(system.Resized{Size: image.Pt(width, height)})
}

// closeEvent hands the close decision to the handler:
// glfw has already flagged the window, so the flag is cleared here
// and only [App.Exit] ends the loop.
func (w *Window) closeEvent(gw *glfw.Window) {
	gw.SetShouldClose(false)
	w.app.send(system.CloseRequested{})
}

func (w *Window) refreshEvent(gw *glfw.Window) {
	w.RequestRedraw()
}

// physical key
func (w *Window) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	st := system.Pressed
	if action == glfw.Release {
		st = system.Released
	}
	w.app.send(system.KeyEvent{Code: GlfwKeyCode(ky), State: st})
}

// GlfwKeyCode returns the [system.KeyCodes] for the given glfw key,
// or [system.CodeUnknown] for keys that are not mapped.
func GlfwKeyCode(kcode glfw.Key) system.KeyCodes {
	switch {
	case kcode >= glfw.KeyA && kcode <= glfw.KeyZ:
		return system.CodeA + system.KeyCodes(kcode-glfw.KeyA)
	case kcode >= glfw.Key0 && kcode <= glfw.Key9:
		return system.Code0 + system.KeyCodes(kcode-glfw.Key0)
	case kcode >= glfw.KeyF1 && kcode <= glfw.KeyF12:
		return system.CodeF1 + system.KeyCodes(kcode-glfw.KeyF1)
	}
	if kc, ok := glfwKeyCodes[kcode]; ok {
		return kc
	}
	return system.CodeUnknown
}

var glfwKeyCodes = map[glfw.Key]system.KeyCodes{
	glfw.KeyEscape:    system.CodeEscape,
	glfw.KeyEnter:     system.CodeReturnEnter,
	glfw.KeySpace:     system.CodeSpacebar,
	glfw.KeyTab:       system.CodeTab,
	glfw.KeyBackspace: system.CodeBackspace,
	glfw.KeyDelete:    system.CodeDelete,
	glfw.KeyUp:        system.CodeUpArrow,
	glfw.KeyDown:      system.CodeDownArrow,
	glfw.KeyLeft:      system.CodeLeftArrow,
	glfw.KeyRight:     system.CodeRightArrow,
}
