// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window is what a [Renderer] needs from the window it presents to.
type Window interface {

	// SurfaceDescriptor returns the platform handles of the window
	// for creating a WebGPU surface.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// RequestRedraw asks for another redraw event.
	RequestRedraw()

	// PrePresentNotify is called right before a frame is presented.
	PrePresentNotify()
}

// Options are the settings of a [Renderer].
type Options struct {

	// PresentMode is the presentation policy.
	PresentMode PresentModes

	// MaxFrameLatency is the desired maximum number of queued frames;
	// 0 means [DefaultMaxFrameLatency].
	MaxFrameLatency int

	// ClearColor is the color each frame is cleared to.
	ClearColor color.RGBA

	// Pipeline adds the triangle pipeline, drawn after the clear.
	Pipeline bool
}

// Renderer presents frames to the surface of one window.
// It is created once the window exists and lives as long as it.
type Renderer struct {

	// Config is the current surface configuration.
	Config SurfaceConfig

	// ClearColor is the color each frame is cleared to.
	ClearColor color.RGBA

	// Frames is the number of frames presented so far.
	Frames int

	// Skipped is the number of frames skipped on a transient
	// acquisition failure.
	Skipped int

	target target
}

// NewRenderer creates the GPU objects presenting to the window, with
// the surface initially configured for the given size in physical
// pixels. It blocks until the adapter and device are acquired.
// Every error names the setup step that failed.
func NewRenderer(ctx context.Context, win Window, size image.Point, opts Options) (*Renderer, error) {
	st, err := newSurfaceTarget(ctx, win.SurfaceDescriptor())
	if err != nil {
		return nil, err
	}
	format, err := SelectFormat(st.caps.Formats)
	if err != nil {
		st.release()
		return nil, fmt.Errorf("select surface format: %w", err)
	}
	cfg := NewSurfaceConfig(format, size, opts.PresentMode.Select(st.caps.PresentModes))
	if opts.MaxFrameLatency > 0 {
		cfg.MaxFrameLatency = opts.MaxFrameLatency
	}
	if opts.Pipeline {
		pl := NewGraphicsPipeline("triangle", TriangleShader, format)
		if err := pl.Config(st.device); err != nil {
			st.release()
			return nil, fmt.Errorf("create pipeline: %w", err)
		}
		st.pipeline = pl
	}
	rd := newRenderer(st, cfg, opts.ClearColor)
	slog.Info("gpu: renderer ready", "config", rd.Config.String(), "pipeline", opts.Pipeline)
	return rd, nil
}

// newRenderer returns a Renderer for the target, configured with cfg.
func newRenderer(tg target, cfg SurfaceConfig, clear color.RGBA) *Renderer {
	rd := &Renderer{Config: cfg, ClearColor: clear, target: tg}
	rd.target.configure(&rd.Config)
	return rd
}

// Reconfigure applies a new size to the surface, clamped to at
// least 1x1. All other configuration is unchanged.
func (rd *Renderer) Reconfigure(size image.Point) {
	rd.Config = rd.Config.WithSize(size)
	slog.Debug("gpu: reconfigure surface", "size", rd.Config.Size)
	rd.target.configure(&rd.Config)
}

// RenderFrame acquires the next surface texture, clears it, draws the
// pipeline if there is one, and presents it. A fatal acquisition
// error is returned; any other failure skips the frame and requests
// a redraw from the window.
func (rd *Renderer) RenderFrame(win Window) error {
	fr, err := rd.target.acquire()
	if err != nil {
		fe := NewFrameError(err)
		if fe.Status.Fatal() {
			return fe
		}
		rd.skip(win, fe)
		return nil
	}
	if err := fr.render(rd.ClearColor); err != nil {
		fr.release()
		rd.skip(win, err)
		return nil
	}
	win.PrePresentNotify()
	fr.present()
	rd.Frames++
	return nil
}

func (rd *Renderer) skip(win Window, err error) {
	rd.Skipped++
	slog.Debug("gpu: skipped frame", "err", err, "skipped", rd.Skipped)
	win.RequestRedraw()
}

// Release releases all the GPU objects. The Renderer cannot be
// used afterward.
func (rd *Renderer) Release() {
	if rd.target == nil {
		return
	}
	rd.target.release()
	rd.target = nil
}
