// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ghostcube

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/ghostcube/internal/gpu"
)

// Sample draws the ghost cube into a host-owned render pass.
//
// A Sample owns its pipeline, geometry buffers, and uniform buffer. It does
// not own the device or the queue. Call Destroy before the device is
// destroyed.
type Sample struct {
	pipeline *gpu.CubePipeline
}

// New builds the cube pipeline on device and uploads the cube geometry
// through queue. The options must describe the targets the host will render
// into: color format, depth format, sample count, and depth direction.
func New(device hal.Device, queue hal.Queue, opts ...Option) (*Sample, error) {
	o := applyOptions(opts)
	return newSample(device, queue, o)
}

func newSample(device hal.Device, queue hal.Queue, o options) (*Sample, error) {
	pipeline, err := gpu.NewCubePipeline(device, queue, o.config)
	if err != nil {
		return nil, fmt.Errorf("ghostcube: %w", err)
	}
	cfg := pipeline.Config()
	Logger().Info("ghostcube: sample created",
		"color_format", cfg.ColorFormat.String(),
		"reverse_depth", cfg.ReverseDepth,
	)
	return &Sample{pipeline: pipeline}, nil
}

// halProvider is implemented by device providers that expose the HAL
// objects behind their gpucontext handles.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// backendProvider is implemented by device providers that know which
// graphics backend their device runs on.
type backendProvider interface {
	Backend() gputypes.Backend
}

// NewFromProvider builds a sample on the device shared by provider.
//
// The provider must implement HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue. Unless overridden by options, the provider's
// surface format becomes the color target format, and if the provider
// implements Backend() gputypes.Backend its backend selects the front-face
// winding. The provider's adapter name and type are logged at info level.
func NewFromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*Sample, error) {
	if provider == nil {
		return nil, ErrNoHALProvider
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALProvider)
	}

	info := provider.AdapterInfo()
	Logger().Info("ghostcube: using provider adapter",
		"adapter", info.Name,
		"adapter_type", info.Type.String(),
	)

	o := applyOptions(opts)
	if !o.colorSet {
		if format := provider.SurfaceFormat(); format != gputypes.TextureFormatUndefined {
			o.config.ColorFormat = format
		}
	}
	if !o.backendSet {
		if bp, ok := provider.(backendProvider); ok {
			o.config.Backend = bp.Backend()
		} else {
			Logger().Warn("ghostcube: provider does not report its backend, assuming clockwise front faces")
		}
	}
	return newSample(device, queue, o)
}

// Render writes viewProj into the sample's uniform buffer and records the
// cube draw into rp. rp must be an open pass whose attachments match the
// formats the sample was created with.
//
// The uniform write is ordered before the host's next submission. Calling
// Render more than once before that submission makes every draw use the
// last matrix.
func (s *Sample) Render(rp hal.RenderPassEncoder, viewProj Matrix) error {
	return s.pipeline.Render(rp, viewProj)
}

// Destroy releases the sample's GPU resources. Safe to call multiple times.
func (s *Sample) Destroy() {
	s.pipeline.Destroy()
}

// ColorFormat returns the color target format the pipeline was built for.
func (s *Sample) ColorFormat() gputypes.TextureFormat {
	return s.pipeline.Config().ColorFormat
}

// DepthFormat returns the depth target format, or TextureFormatUndefined
// when depth testing is disabled.
func (s *Sample) DepthFormat() gputypes.TextureFormat {
	return s.pipeline.Config().DepthFormat
}

// ReverseDepth reports whether the sample expects reversed-Z matrices.
func (s *Sample) ReverseDepth() bool {
	return s.pipeline.Config().ReverseDepth
}

// DepthCompare returns the depth test the pipeline uses.
func (s *Sample) DepthCompare() gputypes.CompareFunction {
	return s.pipeline.DepthCompare()
}

// DepthClearValue returns the value the host must clear the depth
// attachment to.
func (s *Sample) DepthClearValue() float32 {
	return gpu.DepthClearValue(s.pipeline.Config().ReverseDepth)
}

// FrontFace returns the triangle winding the pipeline treats as front
// facing.
func (s *Sample) FrontFace() gputypes.FrontFace {
	return s.pipeline.FrontFace()
}

// ValidateShader compiles the cube's WGSL source through naga and reports
// any error. It does not require a device.
func ValidateShader() error {
	return gpu.ValidateShaderSource(gpu.CubeShaderSource())
}
