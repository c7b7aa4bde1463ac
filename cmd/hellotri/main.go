// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hellotri opens a window and renders a triangle with WebGPU.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/hellotri/app"
	"cogentcore.org/hellotri/config"
	"cogentcore.org/hellotri/system/driver"
)

func init() {
	// must lock main thread for the window and the gpu!
	runtime.LockOSThread()
}

func main() {
	opts := cli.DefaultOptions("hellotri", "Hellotri opens a window and renders a triangle with WebGPU.")
	opts.DefaultFiles = []string{"hellotri.toml"}
	cli.Run(opts, config.New(), Run)
}

// Run runs the app with the given configuration until the window
// is closed, returning the error that stopped it, if any.
func Run(c *config.Config) error { //cli:cmd -root
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logx.UserLevel})))
	if err := c.Validate(); err != nil {
		return err
	}
	slog.Debug("hellotri: config\n" + c.String())
	a := app.New(c)
	if err := driver.Run(a); err != nil {
		return err
	}
	return a.Err()
}
