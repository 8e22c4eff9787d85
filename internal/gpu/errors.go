// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "errors"

// Package errors for the cube pipeline.
var (
	// ErrNilDevice is returned when a pipeline is built without a device.
	ErrNilDevice = errors.New("gpu: nil device")

	// ErrNilQueue is returned when a pipeline is built without a queue.
	ErrNilQueue = errors.New("gpu: nil queue")

	// ErrNilPass is returned when Render is called without a render pass.
	ErrNilPass = errors.New("gpu: nil render pass")

	// ErrDestroyed is returned when Render is called after Destroy.
	ErrDestroyed = errors.New("gpu: pipeline destroyed")

	// ErrEmptyShader is returned when the embedded shader source is missing.
	ErrEmptyShader = errors.New("gpu: shader source is empty")
)
