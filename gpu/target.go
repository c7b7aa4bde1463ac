// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"context"
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"github.com/cogentcore/webgpu/wgpu"
)

// target is a configurable presentation surface that yields frames.
type target interface {
	configure(cfg *SurfaceConfig)
	acquire() (frame, error)
	release()
}

// frame is one acquired surface texture. It is either rendered and
// presented, or released.
type frame interface {
	render(clear color.RGBA) error
	present()
	release()
}

// surfaceTarget is the WebGPU [target], owning every GPU object
// needed to present to a window.
type surfaceTarget struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	caps     wgpu.SurfaceCapabilities

	// pipeline is drawn after the clear, if non-nil.
	pipeline *GraphicsPipeline
}

// newSurfaceTarget creates the instance and the surface for the
// window, then acquires an adapter and a device that can present to it.
func newSurfaceTarget(ctx context.Context, desc *wgpu.SurfaceDescriptor) (*surfaceTarget, error) {
	st := &surfaceTarget{}
	st.instance = wgpu.CreateInstance(&wgpu.InstanceDescriptor{
		Backends: wgpu.InstanceBackendPrimary,
	})
	if st.instance == nil {
		return nil, errors.New("create instance: no WebGPU backend")
	}
	if desc == nil {
		st.release()
		return nil, errors.New("create surface: window has no surface descriptor")
	}
	st.surface = st.instance.CreateSurface(desc)
	if st.surface == nil {
		st.release()
		return nil, errors.New("create surface: failed")
	}
	var err error
	st.adapter, err = requestAdapter(ctx, st.instance, st.surface)
	if err != nil {
		st.release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	st.device, err = requestDevice(ctx, st.adapter)
	if err != nil {
		st.release()
		return nil, fmt.Errorf("request device: %w", err)
	}
	st.queue = st.device.GetQueue()
	st.caps = st.surface.GetCapabilities(st.adapter)
	return st, nil
}

func (st *surfaceTarget) configure(cfg *SurfaceConfig) {
	st.surface.Configure(st.adapter, st.device, cfg.configuration())
}

func (st *surfaceTarget) acquire() (frame, error) {
	tex, err := st.surface.GetCurrentTexture()
	if err != nil {
		return nil, NewFrameError(err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		return nil, NewFrameError(err)
	}
	return &surfaceFrame{target: st, view: view}, nil
}

func (st *surfaceTarget) release() {
	if st.pipeline != nil {
		st.pipeline.Release()
		st.pipeline = nil
	}
	if st.queue != nil {
		st.queue.Release()
		st.queue = nil
	}
	if st.device != nil {
		st.device.Release()
		st.device = nil
	}
	if st.adapter != nil {
		st.adapter.Release()
		st.adapter = nil
	}
	if st.surface != nil {
		st.surface.Release()
		st.surface = nil
	}
	if st.instance != nil {
		st.instance.Release()
		st.instance = nil
	}
}

// surfaceFrame is the current texture of a [surfaceTarget].
// The texture itself belongs to the surface: only the view is
// released by the frame.
type surfaceFrame struct {
	target *surfaceTarget
	view   *wgpu.TextureView
}

// clearRenderPass returns a render pass descriptor that clears the
// view to the given color.
func clearRenderPass(view *wgpu.TextureView, clear color.RGBA) *wgpu.RenderPassDescriptor {
	r, g, b, a := colors.ToFloat32(clear)
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:   view,
			LoadOp: wgpu.LoadOpClear,
			ClearValue: wgpu.Color{
				R: float64(r),
				G: float64(g),
				B: float64(b),
				A: float64(a),
			},
			StoreOp: wgpu.StoreOpStore,
		}},
	}
}

// render records one render pass that clears the frame and draws the
// pipeline, if any, then submits it to the queue.
func (sf *surfaceFrame) render(clear color.RGBA) error {
	st := sf.target
	cmd, err := st.device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return err
	}
	defer cmd.Release()
	rp := cmd.BeginRenderPass(clearRenderPass(sf.view, clear))
	if st.pipeline != nil {
		st.pipeline.Draw(rp, TriangleVertices)
	}
	rp.End()
	rp.Release() // must happen before Finish
	cmdBuffer, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		return err
	}
	st.queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	return nil
}

func (sf *surfaceFrame) present() {
	sf.target.surface.Present()
	sf.release()
}

func (sf *surfaceFrame) release() {
	if sf.view != nil {
		sf.view.Release()
		sf.view = nil
	}
}
