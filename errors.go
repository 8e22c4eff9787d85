// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ghostcube

import (
	"errors"

	"github.com/gogpu/ghostcube/internal/gpu"
)

// Errors returned by ghostcube. The pipeline errors are shared with the
// internal renderer so errors.Is works on wrapped values from either layer.
var (
	// ErrNilDevice is returned by New when the device is nil.
	ErrNilDevice = gpu.ErrNilDevice

	// ErrNilQueue is returned by New when the queue is nil.
	ErrNilQueue = gpu.ErrNilQueue

	// ErrNilPass is returned by Render when the render pass is nil.
	ErrNilPass = gpu.ErrNilPass

	// ErrDestroyed is returned by Render after Destroy.
	ErrDestroyed = gpu.ErrDestroyed

	// ErrNoHALProvider is returned by NewFromProvider when the provider does
	// not expose HAL device and queue handles.
	ErrNoHALProvider = errors.New("ghostcube: provider does not expose HAL device and queue")
)
