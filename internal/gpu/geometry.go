// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// cubeVertexStride is the byte stride per vertex in the cube pipeline.
// Layout per vertex:
//
//	position (vec3<f32>) = 12 bytes (location 0)
//	color    (vec4<f32>) = 16 bytes (location 1)
//
// Total = 28 bytes per vertex.
const cubeVertexStride = 28

const (
	// CubeVertexCount is the number of cube corners.
	CubeVertexCount = 8

	// CubeIndexCount is the number of indices drawn per frame: 12 triangles,
	// two per face.
	CubeIndexCount = 36
)

// CubeVertex is one corner of the sample cube.
type CubeVertex struct {
	Position [3]float32
	Color    [4]float32
}

// cubeVertices are the corners of a cube spanning [-1, 1] on every axis.
// All colors are half transparent.
var cubeVertices = [CubeVertexCount]CubeVertex{
	{Position: [3]float32{-1, -1, -1}, Color: [4]float32{1, 0, 0, 0.5}},
	{Position: [3]float32{-1, +1, -1}, Color: [4]float32{0, 1, 0, 0.5}},
	{Position: [3]float32{+1, +1, -1}, Color: [4]float32{0, 0, 1, 0.5}},
	{Position: [3]float32{+1, -1, -1}, Color: [4]float32{1, 1, 1, 0.5}},

	{Position: [3]float32{-1, -1, +1}, Color: [4]float32{1, 1, 0, 0.5}},
	{Position: [3]float32{-1, +1, +1}, Color: [4]float32{0, 1, 1, 0.5}},
	{Position: [3]float32{+1, +1, +1}, Color: [4]float32{1, 0, 1, 0.5}},
	{Position: [3]float32{+1, -1, +1}, Color: [4]float32{0.2, 0.2, 0.2, 0.5}},
}

var cubeIndices = [CubeIndexCount]uint32{
	2, 0, 1, 2, 3, 0,
	4, 6, 5, 4, 7, 6,
	0, 7, 4, 0, 3, 7,
	1, 0, 4, 1, 4, 5,
	1, 5, 2, 5, 6, 2,
	3, 6, 7, 3, 2, 6,
}

// CubeVertices returns a copy of the cube corner data.
func CubeVertices() []CubeVertex {
	out := make([]CubeVertex, CubeVertexCount)
	copy(out, cubeVertices[:])
	return out
}

// CubeIndices returns a copy of the cube index list.
func CubeIndices() []uint32 {
	out := make([]uint32, CubeIndexCount)
	copy(out, cubeIndices[:])
	return out
}

// encodeCubeVertices packs the cube corners into vertex buffer bytes.
func encodeCubeVertices() []byte {
	buf := make([]byte, 0, CubeVertexCount*cubeVertexStride)
	for i := range cubeVertices {
		v := &cubeVertices[i]
		for _, f := range v.Position {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
		}
		for _, f := range v.Color {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
		}
	}
	return buf
}

// encodeCubeIndices packs the index list as little-endian uint32.
func encodeCubeIndices() []byte {
	buf := make([]byte, 0, CubeIndexCount*4)
	for _, idx := range cubeIndices {
		buf = binary.LittleEndian.AppendUint32(buf, idx)
	}
	return buf
}

// cubeVertexLayout returns the vertex buffer layout for the cube pipeline.
func cubeVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: cubeVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1}, // color
			},
		},
	}
}
