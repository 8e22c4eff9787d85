// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ghostcube

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ghostcube/internal/gpu"
)

// Option configures a Sample during creation.
//
// Example:
//
//	// Defaults: BGRA8 color, Depth32Float depth, standard depth direction
//	s, err := ghostcube.New(device, queue)
//
//	// Reversed-Z into an RGBA8 target
//	s, err := ghostcube.New(device, queue,
//	    ghostcube.WithColorFormat(gputypes.TextureFormatRGBA8Unorm),
//	    ghostcube.WithReverseDepth(true))
type Option func(*options)

// options holds optional configuration for Sample creation.
type options struct {
	config gpu.PipelineConfig

	// colorSet and backendSet record explicit choices so NewFromProvider
	// does not override them with provider defaults.
	colorSet   bool
	backendSet bool
}

// defaultOptions returns the default sample options.
func defaultOptions() options {
	return options{
		config: gpu.DefaultPipelineConfig(),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithReverseDepth selects reversed-Z depth testing (GreaterEqual, clear to
// 0) instead of the standard LessEqual with a clear to 1. It must match the
// projection the host builds its matrices with.
func WithReverseDepth(reverse bool) Option {
	return func(o *options) {
		o.config.ReverseDepth = reverse
	}
}

// WithColorFormat sets the format of the color target the sample renders
// into. It must match the host's render pass attachment.
func WithColorFormat(format gputypes.TextureFormat) Option {
	return func(o *options) {
		o.config.ColorFormat = format
		o.colorSet = true
	}
}

// WithDepthFormat sets the depth attachment format. Pass
// gputypes.TextureFormatUndefined to build a pipeline without depth testing.
func WithDepthFormat(format gputypes.TextureFormat) Option {
	return func(o *options) {
		o.config.DepthFormat = format
	}
}

// WithBackend tells the sample which graphics backend the device belongs
// to. The backend decides which triangle winding is front-facing.
func WithBackend(backend gputypes.Backend) Option {
	return func(o *options) {
		o.config.Backend = backend
		o.backendSet = true
	}
}

// WithSampleCount sets the MSAA sample count of the host's targets.
// Zero is treated as 1.
func WithSampleCount(count uint32) Option {
	return func(o *options) {
		o.config.SampleCount = count
	}
}

// WithShaderValidation compiles the cube shader through naga before the
// shader module is created, surfacing WGSL errors at creation time.
func WithShaderValidation(enabled bool) Option {
	return func(o *options) {
		o.config.ValidateShaders = enabled
	}
}
