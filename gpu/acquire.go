// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"context"

	"github.com/cogentcore/webgpu/wgpu"
)

// blockOn runs fn on the calling thread, which is the locked event loop
// thread: the binding's requests already wait for the driver, and some
// platforms require surfaces and devices to be used from that thread.
// A context that is already done stops fn from running.
func blockOn[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	var res T
	if err := ctx.Err(); err != nil {
		return res, err
	}
	return fn(ctx)
}

// requestAdapter asks for a GPU that can present to the surface, using
// the default power preference and never a software fallback.
func requestAdapter(ctx context.Context, inst *wgpu.Instance, sf *wgpu.Surface) (*wgpu.Adapter, error) {
	return blockOn(ctx, func(ctx context.Context) (*wgpu.Adapter, error) {
		// zero PowerPreference is the platform default
		return inst.RequestAdapter(&wgpu.RequestAdapterOptions{
			CompatibleSurface:    sf,
			ForceFallbackAdapter: false,
		})
	})
}

// requestDevice asks the adapter for a device with no optional features
// and default limits, except that the texture size limits are raised to
// what the adapter supports so the surface can span any display.
func requestDevice(ctx context.Context, adapter *wgpu.Adapter) (*wgpu.Device, error) {
	return blockOn(ctx, func(ctx context.Context) (*wgpu.Device, error) {
		limits := resolutionLimits(wgpu.DefaultLimits(), adapter.GetLimits().Limits)
		return adapter.RequestDevice(&wgpu.DeviceDescriptor{
			Label:          "hellotri",
			RequiredLimits: &wgpu.RequiredLimits{Limits: limits},
		})
	})
}

// resolutionLimits returns base with the texture dimension limits
// taken from the adapter limits.
func resolutionLimits(base, adapter wgpu.Limits) wgpu.Limits {
	base.MaxTextureDimension1D = adapter.MaxTextureDimension1D
	base.MaxTextureDimension2D = adapter.MaxTextureDimension2D
	base.MaxTextureDimension3D = adapter.MaxTextureDimension3D
	return base
}
