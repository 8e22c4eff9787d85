// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package camera builds ghostcube view-projection matrices from mathgl
// types.
//
// mathgl produces OpenGL-style column-vector matrices with clip depth in
// [-w, w]. Orbit remaps depth to the WebGPU range [0, w] (optionally
// reversed) and converts the result to the row-major, row-vector
// ghostcube.Matrix the sample consumes.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/ghostcube"
)

// Orbit is a perspective camera circling a target point.
type Orbit struct {
	// Target is the point the camera looks at.
	Target mgl32.Vec3

	// Distance from the eye to Target.
	Distance float32

	// Yaw rotates the eye around the Y axis, in radians. Zero places the
	// eye on +Z.
	Yaw float32

	// Pitch raises the eye above the XZ plane, in radians.
	Pitch float32

	// FovY is the vertical field of view, in radians.
	FovY float32

	// Aspect is width / height of the render target.
	Aspect float32

	// Near and Far are the clip plane distances.
	Near, Far float32

	// ReverseDepth maps the near plane to depth 1 and the far plane to 0.
	ReverseDepth bool
}

// DefaultOrbit returns a camera five units from the origin, slightly
// above the cube, with a 45 degree field of view.
func DefaultOrbit(aspect float32) Orbit {
	if aspect <= 0 {
		aspect = 1
	}
	return Orbit{
		Distance: 5,
		Pitch:    mgl32.DegToRad(20),
		FovY:     mgl32.DegToRad(45),
		Aspect:   aspect,
		Near:     0.1,
		Far:      100,
	}
}

// Eye returns the camera position.
func (o Orbit) Eye() mgl32.Vec3 {
	sinYaw, cosYaw := math.Sincos(float64(o.Yaw))
	sinPitch, cosPitch := math.Sincos(float64(o.Pitch))
	dir := mgl32.Vec3{
		float32(cosPitch * sinYaw),
		float32(sinPitch),
		float32(cosPitch * cosYaw),
	}
	return o.Target.Add(dir.Mul(o.Distance))
}

// View returns the world-to-camera matrix.
func (o Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(o.Eye(), o.Target, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix with clip depth in [0, w].
func (o Orbit) Projection() mgl32.Mat4 {
	proj := mgl32.Perspective(o.FovY, o.Aspect, o.Near, o.Far)
	return depthRemap(o.ReverseDepth).Mul4(proj)
}

// ViewProjection returns Projection * View in mathgl's column-vector
// convention.
func (o Orbit) ViewProjection() mgl32.Mat4 {
	return o.Projection().Mul4(o.View())
}

// Matrix returns the view-projection ready for ghostcube.Sample.Render.
func (o Orbit) Matrix() ghostcube.Matrix {
	return ToMatrix(o.ViewProjection())
}

// Rotate advances the yaw by delta radians, wrapped to [0, 2π).
func (o *Orbit) Rotate(delta float32) {
	yaw := math.Mod(float64(o.Yaw+delta), 2*math.Pi)
	if yaw < 0 {
		yaw += 2 * math.Pi
	}
	o.Yaw = float32(yaw)
}

// ToMatrix converts a mathgl column-vector matrix to a ghostcube.Matrix.
//
// mathgl stores columns contiguously. Reading that storage as rows yields
// the transpose, which is exactly the row-vector form of the same
// transform.
func ToMatrix(m mgl32.Mat4) ghostcube.Matrix {
	var out ghostcube.Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m[r*4+c]
		}
	}
	return out
}

// depthRemap maps OpenGL clip depth z in [-w, w] to [0, w]:
// z' = 0.5z + 0.5w, or z' = 0.5w - 0.5z when reversed.
func depthRemap(reverse bool) mgl32.Mat4 {
	scale := float32(0.5)
	if reverse {
		scale = -0.5
	}
	return mgl32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, scale, 0,
		0, 0, 0.5, 1,
	}
}
