// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ghostcube is a minimal GPU rendering sample: a colored,
// half-transparent cube drawn with a caller-supplied view-projection matrix.
//
// # Overview
//
// ghostcube sits on top of the gogpu HAL (github.com/gogpu/wgpu/hal). It
// never creates windows, swapchains, or command submissions itself. The host
// owns the device, the queue, and the frame's render pass; the sample only
// builds its pipeline once and records draw commands into passes it is
// handed.
//
// # Quick Start
//
//	import "github.com/gogpu/ghostcube"
//
//	sample, err := ghostcube.New(device, queue,
//	    ghostcube.WithColorFormat(gputypes.TextureFormatBGRA8Unorm),
//	    ghostcube.WithReverseDepth(true),
//	)
//	if err != nil {
//	    return err
//	}
//	defer sample.Destroy()
//
//	// Each frame, inside an open render pass:
//	if err := sample.Render(pass, viewProj); err != nil {
//	    return err
//	}
//
// The depth attachment of the pass must be cleared to
// [Sample.DepthClearValue]: 1 for standard depth, 0 for reversed depth.
//
// # Matrix Convention
//
// [Matrix] is row-major in the row-vector convention (clip = [x y z 1] * M).
// The sample transposes it before upload; the shader multiplies the vertex
// position on the left of the matrix. Use the camera sub-package to build
// matrices from mathgl types.
//
// # Shared Devices
//
// [NewFromProvider] accepts any gpucontext.DeviceProvider that also exposes
// HAL handles (HalDevice() any and HalQueue() any), such as a gogpu app.
// The provider's surface format becomes the default color target format.
//
// # Logging
//
// ghostcube is silent by default. Call [SetLogger] to receive pipeline
// lifecycle and diagnostic records through log/slog.
//
// # Thread Safety
//
// A Sample is not safe for concurrent use. Render and Destroy must be called
// from the thread that records the host's command buffers.
package ghostcube
