// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu builds and draws the sample cube on a gogpu/wgpu HAL device.
//
// This is an internal package used by ghostcube. It has two halves that
// share one object, [CubePipeline]:
//
//   - Construction (NewCubePipeline): compiles the embedded WGSL shader,
//     declares the position+color input layout, configures blending,
//     culling and depth testing for the host's targets, uploads the static
//     vertex and index buffers, and binds a 64-byte uniform buffer.
//   - Per frame (Render): writes the transposed view-projection matrix over
//     the uniform buffer and records one 36-index draw into the host's
//     render pass.
//
// # Matrix convention
//
// [Float4x4] is row-major in the row-vector convention (clip = pos * M).
// The renderer uploads its transpose; WGSL reads the bytes column-major,
// so the shader multiplies `pos * view_proj` and sees the host matrix.
//
// # Threading
//
// Nothing here is synchronized. The host calls every method from its
// render thread.
package gpu
