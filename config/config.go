// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the hellotri command.
package config

import (
	"fmt"
	"image"
	"image/color"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/colors"
	"cogentcore.org/hellotri/gpu"
	"github.com/pelletier/go-toml/v2"
)

// Steps are the steps of the tutorial that can be run.
var Steps = []string{"window", "clear", "triangle"}

// Config contains the configuration information
// used by hellotri
type Config struct {

	// the title of the window
	Title string `default:"WGPU Tutorial"`

	// the initial width of the window, in screen coordinates
	Width int `default:"800" min:"1"`

	// the initial height of the window, in screen coordinates
	Height int `default:"600" min:"1"`

	// the tutorial step to run: window only opens the window with no GPU,
	// clear also clears the surface, and triangle also draws the triangle
	Step string `default:"triangle"`

	// the presentation policy (auto-no-vsync, auto-vsync, immediate, mailbox, or fifo)
	PresentMode string `default:"auto-no-vsync"`

	// the maximum number of frames queued for presentation
	MaxFrameLatency int `default:"2" min:"1"`

	// the color each frame is cleared to, as a hex string
	ClearColor string `default:"#00ff00"`

	// whether to request a new redraw after every frame; if false,
	// frames are only drawn when the window needs it
	Continuous bool `default:"true"`
}

// New returns a new Config with the default values.
func New() *Config {
	c := &Config{}
	cli.SetFromDefaults(c)
	return c
}

// Size returns the initial window size.
func (c *Config) Size() image.Point {
	return image.Pt(c.Width, c.Height)
}

// Validate returns an error describing every invalid field, if any.
func (c *Config) Validate() error {
	var errs []error
	if c.Width < 1 || c.Height < 1 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.Width, c.Height))
	}
	if !slices.Contains(Steps, c.Step) {
		errs = append(errs, fmt.Errorf("unknown step %q (want one of %v)", c.Step, Steps))
	}
	if _, err := gpu.ParsePresentMode(c.PresentMode); err != nil {
		errs = append(errs, err)
	}
	if c.MaxFrameLatency < 1 {
		errs = append(errs, fmt.Errorf("invalid max frame latency %d", c.MaxFrameLatency))
	}
	if _, err := parseHex(c.ClearColor); err != nil {
		errs = append(errs, fmt.Errorf("invalid clear color %q: %w", c.ClearColor, err))
	}
	return errors.Join(errs...)
}

// Renders returns whether the step uses a GPU renderer.
func (c *Config) Renders() bool {
	return c.Step != "window"
}

// RendererOptions returns the [gpu.Options] for the configuration.
func (c *Config) RendererOptions() (gpu.Options, error) {
	if err := c.Validate(); err != nil {
		return gpu.Options{}, err
	}
	pm, _ := gpu.ParsePresentMode(c.PresentMode)
	clr, _ := parseHex(c.ClearColor)
	return gpu.Options{
		PresentMode:     pm,
		MaxFrameLatency: c.MaxFrameLatency,
		ClearColor:      clr,
		Pipeline:        c.Step == "triangle",
	}, nil
}

// parseHex parses a #RGB, #RRGGBB or #RRGGBBAA color. The digits are
// checked first since [colors.FromHex] does not report bad digits.
func parseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("want 3, 6 or 8 hex digits, got %d", len(hex))
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return color.RGBA{}, errors.New("not a hex number")
	}
	return colors.FromHex(hex)
}

// String returns the configuration in TOML format.
func (c *Config) String() string {
	b, err := toml.Marshal(c)
	if errors.Log(err) != nil {
		return ""
	}
	return string(b)
}
