// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/cube.wgsl
var cubeShaderSource string

// Shader entry points in cube.wgsl.
const (
	cubeVertexEntry   = "vs_main"
	cubeFragmentEntry = "fs_main"
)

// CubeShaderSource returns the embedded WGSL source of the cube shader.
func CubeShaderSource() string {
	return cubeShaderSource
}

// ValidateShaderSource compiles WGSL through naga and reports the first
// error. The compiled SPIR-V is discarded; the HAL device compiles the
// source again for its own backend.
func ValidateShaderSource(source string) error {
	if source == "" {
		return ErrEmptyShader
	}
	spirv, err := naga.Compile(source)
	if err != nil {
		return fmt.Errorf("validate shader: %w", err)
	}
	slogger().Debug("shader validated", "spirv_bytes", len(spirv))
	return nil
}
