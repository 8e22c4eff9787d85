// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"encoding/binary"
	"math"
)

// Float4x4Size is the byte size of a Float4x4 packed as 16 float32 values.
const Float4x4Size = 64

// Float4x4 is a 4x4 float32 matrix stored row-major.
//
// It follows the row-vector convention of the host engine:
//
//	clip = [x y z 1] * M
//
// so the translation lives in the last row.
type Float4x4 [4][4]float32

// Identity4x4 returns the identity matrix.
func Identity4x4() Float4x4 {
	return Float4x4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Transpose returns the transpose of m.
func (m Float4x4) Transpose() Float4x4 {
	var t Float4x4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c][r] = m[r][c]
		}
	}
	return t
}

// Mul returns m * n. In the row-vector convention this applies m first,
// then n.
func (m Float4x4) Mul(n Float4x4) Float4x4 {
	var out Float4x4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[r][k] * n[k][c]
			}
			out[r][c] = sum
		}
	}
	return out
}

// TransformPoint returns [p 1] * m as homogeneous clip coordinates.
func (m Float4x4) TransformPoint(p [3]float32) [4]float32 {
	v := [4]float32{p[0], p[1], p[2], 1}
	var out [4]float32
	for c := 0; c < 4; c++ {
		for k := 0; k < 4; k++ {
			out[c] += v[k] * m[k][c]
		}
	}
	return out
}

// AppendBytes appends m to dst as 16 little-endian float32 values in
// row-major order and returns the extended slice.
func (m Float4x4) AppendBytes(dst []byte) []byte {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(m[r][c]))
		}
	}
	return dst
}
