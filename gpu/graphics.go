// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// GraphicsPipeline is a render pipeline built from one shader module
// with a vertex and a fragment entry point, drawing into a single
// color target. It has no vertex buffers or bind groups: all geometry
// comes from the vertex index in the shader.
type GraphicsPipeline struct {

	// unique name of this pipeline
	Name string

	// Code is the WGSL source of the shader module.
	Code string

	// VertexEntry and FragmentEntry are the shader entry points.
	VertexEntry, FragmentEntry string

	// Format is the format of the color target, matching the surface.
	Format wgpu.TextureFormat

	// Primitive has various settings for graphics primitives,
	// e.g., TriangleList
	Primitive wgpu.PrimitiveState

	Multisample wgpu.MultisampleState

	// Blend is the blending applied to the color target.
	Blend wgpu.BlendState

	module         *wgpu.ShaderModule
	layout         *wgpu.PipelineLayout
	renderPipeline *wgpu.RenderPipeline
}

// NewGraphicsPipeline returns a new GraphicsPipeline with the
// graphics defaults, see [GraphicsPipeline.SetGraphicsDefaults].
func NewGraphicsPipeline(name, code string, format wgpu.TextureFormat) *GraphicsPipeline {
	pl := &GraphicsPipeline{Name: name, Code: code, Format: format}
	pl.VertexEntry = "vs_main"
	pl.FragmentEntry = "fs_main"
	pl.SetGraphicsDefaults()
	return pl
}

// SetGraphicsDefaults configures the default settings: a filled
// triangle list with counter-clockwise front faces and no culling,
// single sampling, and colors that replace the target.
func (pl *GraphicsPipeline) SetGraphicsDefaults() *GraphicsPipeline {
	pl.SetTopology(TriangleList)
	pl.SetFrontFace(wgpu.FrontFaceCCW)
	pl.SetCullMode(wgpu.CullModeNone)
	pl.SetMultisample(1)
	pl.Blend = wgpu.BlendStateReplace
	return pl
}

// SetTopology sets the topology of vertex position data.
// TriangleList is the default.
func (pl *GraphicsPipeline) SetTopology(topo Topologies) *GraphicsPipeline {
	pl.Primitive.Topology = topo.Primitive()
	return pl
}

// SetFrontFace sets the winding order for what counts as a front face.
func (pl *GraphicsPipeline) SetFrontFace(face wgpu.FrontFace) *GraphicsPipeline {
	pl.Primitive.FrontFace = face
	return pl
}

// SetCullMode sets the face culling mode.
func (pl *GraphicsPipeline) SetCullMode(mode wgpu.CullMode) *GraphicsPipeline {
	pl.Primitive.CullMode = mode
	return pl
}

// SetMultisample sets the number of samples per pixel, at least 1.
func (pl *GraphicsPipeline) SetMultisample(ms int) *GraphicsPipeline {
	pl.Multisample.Count = uint32(max(1, ms))
	pl.Multisample.Mask = 0xFFFFFFFF
	pl.Multisample.AlphaToCoverageEnabled = false
	return pl
}

// descriptor returns the render pipeline descriptor, given the
// compiled shader module and layout.
func (pl *GraphicsPipeline) descriptor(module *wgpu.ShaderModule, layout *wgpu.PipelineLayout) *wgpu.RenderPipelineDescriptor {
	return &wgpu.RenderPipelineDescriptor{
		Label:       pl.Name,
		Layout:      layout,
		Primitive:   pl.Primitive,
		Multisample: pl.Multisample,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: pl.VertexEntry,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: pl.FragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    pl.Format,
				Blend:     &pl.Blend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	}
}

// Config compiles the shader and builds the render pipeline on the
// given device. It only needs to be called once.
func (pl *GraphicsPipeline) Config(dev *wgpu.Device) error {
	if pl.renderPipeline != nil {
		return nil
	}
	if err := pl.checkEntries(); err != nil {
		return err
	}
	module, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          pl.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: pl.Code},
	})
	if err != nil {
		return fmt.Errorf("compile shader %s: %w", pl.Name, err)
	}
	pl.module = module
	layout, err := dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: pl.Name,
	})
	if err != nil {
		pl.Release()
		return fmt.Errorf("create pipeline layout %s: %w", pl.Name, err)
	}
	pl.layout = layout
	rp, err := dev.CreateRenderPipeline(pl.descriptor(module, layout))
	if err != nil {
		slog.Error(err.Error())
		pl.Release()
		return fmt.Errorf("create render pipeline %s: %w", pl.Name, err)
	}
	pl.renderPipeline = rp
	return nil
}

// checkEntries returns an error if the shader code does not
// declare both entry points.
func (pl *GraphicsPipeline) checkEntries() error {
	for _, e := range []string{pl.VertexEntry, pl.FragmentEntry} {
		if !hasEntry(pl.Code, e) {
			return fmt.Errorf("shader %s: no entry point %q", pl.Name, e)
		}
	}
	return nil
}

// Draw binds the pipeline in the given render pass and draws
// one instance of n vertices.
func (pl *GraphicsPipeline) Draw(rp *wgpu.RenderPassEncoder, n uint32) {
	rp.SetPipeline(pl.renderPipeline)
	rp.Draw(n, 1, 0, 0)
}

// Release releases the render pipeline, its layout and the shader
// module. Config can be called again afterward.
func (pl *GraphicsPipeline) Release() {
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.module != nil {
		pl.module.Release()
		pl.module = nil
	}
}

// Topologies are the different vertex topologies a
// [GraphicsPipeline] can assemble primitives from.
type Topologies int32

const (
	// PointList draws each vertex as a point.
	PointList Topologies = iota

	// LineList draws a line for each pair of vertices.
	LineList

	// LineStrip draws a connected line through all vertices.
	LineStrip

	// TriangleList draws a triangle for each three vertices.
	// It is the default.
	TriangleList

	// TriangleStrip draws a triangle for each vertex after the
	// second, sharing the previous two.
	TriangleStrip
)

// Primitive returns the WebGPU primitive topology.
func (tp Topologies) Primitive() wgpu.PrimitiveTopology {
	return WebGPUTopologies[tp]
}

// WebGPUTopologies maps Topologies to WebGPU primitive topologies.
var WebGPUTopologies = map[Topologies]wgpu.PrimitiveTopology{
	PointList:     wgpu.PrimitiveTopologyPointList,
	LineList:      wgpu.PrimitiveTopologyLineList,
	LineStrip:     wgpu.PrimitiveTopologyLineStrip,
	TriangleList:  wgpu.PrimitiveTopologyTriangleList,
	TriangleStrip: wgpu.PrimitiveTopologyTriangleStrip,
}
