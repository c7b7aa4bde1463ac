// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/hellotri/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, "WGPU Tutorial", c.Title)
	assert.Equal(t, image.Pt(800, 600), c.Size())
	assert.Equal(t, "triangle", c.Step)
	assert.Equal(t, "auto-no-vsync", c.PresentMode)
	assert.Equal(t, 2, c.MaxFrameLatency)
	assert.True(t, c.Continuous)
	require.NoError(t, c.Validate())

	opts, err := c.RendererOptions()
	require.NoError(t, err)
	assert.Equal(t, gpu.AutoNoVsync, opts.PresentMode)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, opts.ClearColor)
	assert.Equal(t, 2, opts.MaxFrameLatency)
	assert.True(t, opts.Pipeline)
}

func TestClearStep(t *testing.T) {
	c := New()
	c.Step = "clear"
	c.PresentMode = "Fifo"
	opts, err := c.RendererOptions()
	require.NoError(t, err)
	assert.False(t, opts.Pipeline)
	assert.Equal(t, gpu.Fifo, opts.PresentMode)
}

func TestValidate(t *testing.T) {
	c := New()
	c.Width = 0
	c.Step = "shadows"
	c.PresentMode = "sometimes"
	c.MaxFrameLatency = 0
	c.ClearColor = "#zzzzzz"
	err := c.Validate()
	require.Error(t, err)
	for _, s := range []string{"window size", "shadows", "sometimes", "latency", "clear color"} {
		assert.ErrorContains(t, err, s)
	}
	_, err = c.RendererOptions()
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	s := New().String()
	assert.Contains(t, s, "Title = 'WGPU Tutorial'")
	assert.Contains(t, s, "Continuous = true")
}

func TestClearColor(t *testing.T) {
	c := New()
	for _, s := range []string{"#zzzzzz", "#12345g", "#fff0", "", "#", "-12345", "0x1234"} {
		c.ClearColor = s
		assert.ErrorContains(t, c.Validate(), "clear color", s)
	}
	for s, want := range map[string]color.RGBA{
		"#0f0":      {0, 255, 0, 255},
		"00ff00":    {0, 255, 0, 255},
		"#10203040": {0x10, 0x20, 0x30, 0x40},
	} {
		c.ClearColor = s
		opts, err := c.RendererOptions()
		require.NoError(t, err, s)
		assert.Equal(t, want, opts.ClearColor, s)
	}
}

func TestWindowStep(t *testing.T) {
	c := New()
	assert.True(t, c.Renders())
	c.Step = "window"
	require.NoError(t, c.Validate())
	assert.False(t, c.Renders())
}
