// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// cubeUniformSize is the size of the vertex-stage constants: one mat4x4<f32>.
const cubeUniformSize = Float4x4Size

// PipelineConfig describes the render targets and conventions the cube
// pipeline is built for.
type PipelineConfig struct {
	// ColorFormat is the format of the single color target.
	ColorFormat gputypes.TextureFormat

	// DepthFormat is the depth attachment format. TextureFormatUndefined
	// builds a pipeline without depth testing.
	DepthFormat gputypes.TextureFormat

	// ReverseDepth selects GreaterEqual depth testing for reversed-Z
	// projections instead of LessEqual.
	ReverseDepth bool

	// Backend selects the front-face winding (see FrontFaceFor).
	Backend gputypes.Backend

	// SampleCount is the MSAA sample count of the targets. Zero means 1.
	SampleCount uint32

	// ValidateShaders compiles the WGSL source through naga before the
	// shader module is created.
	ValidateShaders bool
}

// DefaultPipelineConfig returns a configuration for a BGRA8 color target
// with a Depth32Float depth target and standard depth direction.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		ColorFormat: gputypes.TextureFormatBGRA8Unorm,
		DepthFormat: gputypes.TextureFormatDepth32Float,
		SampleCount: 1,
	}
}

func (c PipelineConfig) withDefaults() PipelineConfig {
	if c.ColorFormat == gputypes.TextureFormatUndefined {
		c.ColorFormat = gputypes.TextureFormatBGRA8Unorm
	}
	if c.SampleCount == 0 {
		c.SampleCount = 1
	}
	return c
}

// CubePipeline draws the sample cube. It owns the shader, the immutable
// render pipeline, the static vertex and index buffers, and the uniform
// buffer with its bind group. Only the uniform buffer changes after
// construction.
//
// CubePipeline is not safe for concurrent use; all calls are expected on
// the host's render thread.
type CubePipeline struct {
	device hal.Device
	queue  hal.Queue
	config PipelineConfig

	// GPU objects for the render pipeline.
	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline

	// Geometry and constants.
	vertBuf    hal.Buffer
	indexBuf   hal.Buffer
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup

	// uniformStaging is reused by every frame's matrix upload.
	uniformStaging []byte
}

// NewCubePipeline compiles the cube shader, creates the render pipeline for
// the configured targets, uploads the cube geometry, and binds the uniform
// buffer. On failure every resource created so far is released.
func NewCubePipeline(device hal.Device, queue hal.Queue, config PipelineConfig) (*CubePipeline, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}

	cp := &CubePipeline{
		device:         device,
		queue:          queue,
		config:         config.withDefaults(),
		uniformStaging: make([]byte, 0, cubeUniformSize),
	}
	if err := cp.createPipeline(); err != nil {
		cp.Destroy()
		return nil, err
	}
	if err := cp.createBuffers(); err != nil {
		cp.Destroy()
		return nil, err
	}
	if err := cp.createBindGroup(); err != nil {
		cp.Destroy()
		return nil, err
	}

	slogger().Debug("cube pipeline created",
		"color_format", cp.config.ColorFormat.String(),
		"depth_format", cp.config.DepthFormat.String(),
		"depth_compare", cp.DepthCompare().String(),
		"front_face", cp.FrontFace().String(),
		"samples", cp.config.SampleCount,
	)
	return cp, nil
}

// Config returns the configuration the pipeline was built with.
func (cp *CubePipeline) Config() PipelineConfig {
	return cp.config
}

// DepthCompare returns the depth test baked into the pipeline.
func (cp *CubePipeline) DepthCompare() gputypes.CompareFunction {
	return DepthCompareFor(cp.config.ReverseDepth)
}

// FrontFace returns the front-face winding baked into the pipeline.
func (cp *CubePipeline) FrontFace() gputypes.FrontFace {
	return FrontFaceFor(cp.config.Backend)
}

// Render uploads viewProj and records the cube draw into rp.
//
// The matrix is transposed and written over the whole uniform buffer, so
// nothing from the previous frame survives the write. The write goes
// through the queue and is ordered before the next submission; recording
// several Render calls into one submission leaves only the last matrix
// visible to all of them.
func (cp *CubePipeline) Render(rp hal.RenderPassEncoder, viewProj Float4x4) error {
	if cp.pipeline == nil {
		return ErrDestroyed
	}
	if rp == nil {
		return ErrNilPass
	}
	if err := cp.writeViewProj(viewProj); err != nil {
		return err
	}
	cp.RecordDraws(rp)
	return nil
}

// RecordDraws binds the cube geometry, pipeline, and bind group and issues
// the indexed draw. It does not touch the uniform buffer.
func (cp *CubePipeline) RecordDraws(rp hal.RenderPassEncoder) {
	if cp.pipeline == nil || rp == nil {
		return
	}
	rp.SetVertexBuffer(0, cp.vertBuf, 0)
	rp.SetIndexBuffer(cp.indexBuf, gputypes.IndexFormatUint32, 0)
	rp.SetPipeline(cp.pipeline)
	rp.SetBindGroup(0, cp.bindGroup, nil)
	rp.DrawIndexed(CubeIndexCount, 1, 0, 0, 0)
}

// writeViewProj replaces the uniform buffer contents with the transpose
// of m.
func (cp *CubePipeline) writeViewProj(m Float4x4) error {
	cp.uniformStaging = m.Transpose().AppendBytes(cp.uniformStaging[:0])
	if err := cp.queue.WriteBuffer(cp.uniformBuf, 0, cp.uniformStaging); err != nil {
		return fmt.Errorf("write view-projection: %w", err)
	}
	return nil
}

// Destroy releases all GPU resources in reverse creation order. Safe to
// call multiple times.
func (cp *CubePipeline) Destroy() {
	if cp.device == nil {
		return
	}
	if cp.bindGroup != nil {
		cp.device.DestroyBindGroup(cp.bindGroup)
		cp.bindGroup = nil
	}
	for _, buf := range []*hal.Buffer{&cp.uniformBuf, &cp.indexBuf, &cp.vertBuf} {
		if *buf != nil {
			cp.device.DestroyBuffer(*buf)
			*buf = nil
		}
	}
	if cp.pipeline != nil {
		cp.device.DestroyRenderPipeline(cp.pipeline)
		cp.pipeline = nil
	}
	if cp.pipeLayout != nil {
		cp.device.DestroyPipelineLayout(cp.pipeLayout)
		cp.pipeLayout = nil
	}
	if cp.uniformLayout != nil {
		cp.device.DestroyBindGroupLayout(cp.uniformLayout)
		cp.uniformLayout = nil
	}
	if cp.shader != nil {
		cp.device.DestroyShaderModule(cp.shader)
		cp.shader = nil
	}
}

// createPipeline compiles the cube shader and creates the layouts and the
// render pipeline.
func (cp *CubePipeline) createPipeline() error {
	if cubeShaderSource == "" {
		return ErrEmptyShader
	}
	if cp.config.ValidateShaders {
		if err := ValidateShaderSource(cubeShaderSource); err != nil {
			return err
		}
	}

	shader, err := cp.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "cube_shader",
		Source: hal.ShaderSource{WGSL: cubeShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile cube shader: %w", err)
	}
	cp.shader = shader

	uniformLayout, err := cp.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "cube_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create cube uniform layout: %w", err)
	}
	cp.uniformLayout = uniformLayout

	pipeLayout, err := cp.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "cube_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{cp.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create cube pipeline layout: %w", err)
	}
	cp.pipeLayout = pipeLayout

	pipeline, err := cp.device.CreateRenderPipeline(cp.pipelineDescriptor())
	if err != nil {
		return fmt.Errorf("create cube pipeline: %w", err)
	}
	cp.pipeline = pipeline
	return nil
}

// pipelineDescriptor builds the render pipeline descriptor from the
// pipeline config. The shader module and layout must already exist.
func (cp *CubePipeline) pipelineDescriptor() *hal.RenderPipelineDescriptor {
	blend := cubeBlendState()
	desc := &hal.RenderPipelineDescriptor{
		Label:  "cube_pipeline",
		Layout: cp.pipeLayout,
		Vertex: hal.VertexState{
			Module:     cp.shader,
			EntryPoint: cubeVertexEntry,
			Buffers:    cubeVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     cp.shader,
			EntryPoint: cubeFragmentEntry,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    cp.config.ColorFormat,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: cp.FrontFace(),
			CullMode:  gputypes.CullModeBack,
		},
		Multisample: gputypes.MultisampleState{
			Count: cp.config.SampleCount,
			Mask:  0xFFFFFFFF,
		},
	}
	if cp.config.DepthFormat != gputypes.TextureFormatUndefined {
		keep := hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionAlways,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationKeep,
		}
		desc.DepthStencil = &hal.DepthStencilState{
			Format:            cp.config.DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      cp.DepthCompare(),
			StencilFront:      keep,
			StencilBack:       keep,
			StencilReadMask:   0x00,
			StencilWriteMask:  0x00,
		}
	}
	return desc
}

// createBuffers allocates the vertex, index, and uniform buffers and
// uploads the static geometry.
func (cp *CubePipeline) createBuffers() error {
	vertBuf, err := cp.createAndUploadBuffer("cube_vertices", encodeCubeVertices(),
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return fmt.Errorf("create cube vertex buffer: %w", err)
	}
	cp.vertBuf = vertBuf

	indexBuf, err := cp.createAndUploadBuffer("cube_indices", encodeCubeIndices(),
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return fmt.Errorf("create cube index buffer: %w", err)
	}
	cp.indexBuf = indexBuf

	uniformBuf, err := cp.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "cube_vs_constants",
		Size:  cubeUniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create cube uniform buffer: %w", err)
	}
	cp.uniformBuf = uniformBuf
	logBuffer("cube_vs_constants", cubeUniformSize, "uniform")
	return nil
}

// createBindGroup binds the uniform buffer to binding 0 of the vertex stage.
func (cp *CubePipeline) createBindGroup() error {
	bindGroup, err := cp.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "cube_bind",
		Layout: cp.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: cp.uniformBuf.NativeHandle(), Offset: 0, Size: cubeUniformSize,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create cube bind group: %w", err)
	}
	cp.bindGroup = bindGroup
	return nil
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (cp *CubePipeline) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := cp.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	if err := cp.queue.WriteBuffer(buf, 0, data); err != nil {
		cp.device.DestroyBuffer(buf)
		return nil, fmt.Errorf("upload %s: %w", label, err)
	}
	logBuffer(label, uint64(len(data)), "static")
	return buf, nil
}
