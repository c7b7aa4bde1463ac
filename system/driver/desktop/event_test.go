// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package desktop

import (
	"testing"

	"cogentcore.org/hellotri/system"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestGlfwKeyCode(t *testing.T) {
	tests := map[glfw.Key]system.KeyCodes{
		glfw.KeyEscape:       system.CodeEscape,
		glfw.KeyA:            system.CodeA,
		glfw.KeyQ:            system.CodeQ,
		glfw.KeyZ:            system.CodeZ,
		glfw.Key0:            system.Code0,
		glfw.Key9:            system.Code9,
		glfw.KeyF1:           system.CodeF1,
		glfw.KeyF12:          system.CodeF12,
		glfw.KeyEnter:        system.CodeReturnEnter,
		glfw.KeyLeft:         system.CodeLeftArrow,
		glfw.KeyF13:          system.CodeUnknown,
		glfw.KeyLeftShift:    system.CodeUnknown,
		glfw.KeyGraveAccent:  system.CodeUnknown,
		glfw.KeyKPEnter:      system.CodeUnknown,
		glfw.KeyRightControl: system.CodeUnknown,
	}
	for k, want := range tests {
		assert.Equal(t, want, GlfwKeyCode(k), "glfw key %d", k)
	}
}
