// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Package driver runs the [system] event loop with the driver
// for the current platform.
package driver

import (
	"cogentcore.org/hellotri/system"
	"cogentcore.org/hellotri/system/driver/desktop"
)

// Run runs the event loop of the current platform until the handler
// exits it. It must be called on the main thread.
func Run(h system.Handler) error {
	return desktop.Run(h)
}
