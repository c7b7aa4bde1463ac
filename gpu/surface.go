// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
)

// SurfaceConfig is the configuration applied to a presentation surface
// before it can yield frames. It is replaced as a whole on resize,
// see [SurfaceConfig.WithSize].
type SurfaceConfig struct {

	// Usage of the surface textures: render attachment.
	Usage wgpu.TextureUsage

	// Format of the surface textures, from [SelectFormat].
	Format wgpu.TextureFormat

	// Size in physical pixels, at least 1x1.
	Size image.Point

	// PresentMode is the resolved presentation mode.
	PresentMode wgpu.PresentMode

	// MaxFrameLatency is the desired maximum number of frames
	// queued for presentation.
	MaxFrameLatency int

	// AlphaMode is how the surface alpha is composited by the platform.
	AlphaMode wgpu.CompositeAlphaMode

	// ViewFormats are extra formats views of the surface textures
	// may use; none by default.
	ViewFormats []wgpu.TextureFormat
}

// DefaultMaxFrameLatency is the default [SurfaceConfig.MaxFrameLatency].
const DefaultMaxFrameLatency = 2

// NewSurfaceConfig returns the default configuration for a surface of
// the given format, size and present mode.
func NewSurfaceConfig(format wgpu.TextureFormat, size image.Point, mode wgpu.PresentMode) SurfaceConfig {
	return SurfaceConfig{
		Usage:           wgpu.TextureUsageRenderAttachment,
		Format:          format,
		Size:            ClampSize(size),
		PresentMode:     mode,
		MaxFrameLatency: DefaultMaxFrameLatency,
		AlphaMode:       wgpu.CompositeAlphaModeAuto,
	}
}

// ClampSize returns size with each dimension raised to at least 1:
// a zero-sized surface cannot be configured.
func ClampSize(size image.Point) image.Point {
	return image.Pt(max(size.X, 1), max(size.Y, 1))
}

// WithSize returns a copy of the configuration for the given size,
// clamped with [ClampSize]. All other fields are unchanged.
func (sc SurfaceConfig) WithSize(size image.Point) SurfaceConfig {
	nc := sc
	nc.Size = ClampSize(size)
	nc.ViewFormats = slices.Clone(sc.ViewFormats)
	return nc
}

func (sc *SurfaceConfig) String() string {
	return fmt.Sprintf("Size: %v  Format: %v  PresentMode: %v  AlphaMode: %v  MaxFrameLatency: %d", sc.Size, sc.Format, sc.PresentMode, sc.AlphaMode, sc.MaxFrameLatency)
}

// configuration returns the WebGPU configuration for the surface.
// The frame latency has no field in the binding; wgpu-native uses 2.
func (sc SurfaceConfig) configuration() *wgpu.SurfaceConfiguration {
	return &wgpu.SurfaceConfiguration{
		Usage:       sc.Usage,
		Format:      sc.Format,
		Width:       uint32(sc.Size.X),
		Height:      uint32(sc.Size.Y),
		PresentMode: sc.PresentMode,
		AlphaMode:   sc.AlphaMode,
		ViewFormats: sc.ViewFormats,
	}
}
