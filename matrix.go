// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ghostcube

import "github.com/gogpu/ghostcube/internal/gpu"

// Matrix is a 4x4 float32 matrix, row-major, row-vector convention:
//
//	clip = [x y z 1] * M
//
// Translation lives in row 3. Matrix is what [Sample.Render] consumes.
type Matrix = gpu.Float4x4

// IdentityMatrix returns the identity matrix.
func IdentityMatrix() Matrix {
	return gpu.Identity4x4()
}

const (
	// VertexCount is the number of cube corners.
	VertexCount = gpu.CubeVertexCount

	// IndexCount is the number of indices drawn per Render call.
	IndexCount = gpu.CubeIndexCount
)

// Vertex is one corner of the cube: a position in [-1, 1] and an RGBA color.
type Vertex = gpu.CubeVertex

// Vertices returns a copy of the cube's corner data.
func Vertices() []Vertex { return gpu.CubeVertices() }

// Indices returns a copy of the cube's triangle list.
func Indices() []uint32 { return gpu.CubeIndices() }

// ShaderSource returns the WGSL source of the cube shader.
func ShaderSource() string { return gpu.CubeShaderSource() }
