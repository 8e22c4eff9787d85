// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/ghostcube"
)

const eps = 1e-4

// near compares with an absolute tolerance; mgl32.FloatEqualThreshold is
// relative and rejects float32 noise around zero.
func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestNearAroundZero(t *testing.T) {
	for _, v := range []float32{5.7559333e-08, -3.5974583e-08, 4.7683534e-06, 1.7484555e-07} {
		if !near(v, 0) {
			t.Errorf("near(%v, 0) = false, want true", v)
		}
	}
	if near(1e-3, 0) {
		t.Error("near(1e-3, 0) = true, want false")
	}
}

func TestToMatrixMatchesMathgl(t *testing.T) {
	o := DefaultOrbit(16.0 / 9.0)
	o.Yaw = 0.7
	vp := o.ViewProjection()
	m := ToMatrix(vp)

	for _, v := range ghostcube.Vertices() {
		p := v.Position
		want := vp.Mul4x1(mgl32.Vec4{p[0], p[1], p[2], 1})
		got := m.TransformPoint(p)
		for i := range got {
			if !near(got[i], want[i]) {
				t.Errorf("corner %v component %d: got %v, want %v", p, i, got[i], want[i])
			}
		}
	}
}

func TestToMatrixTranslationRow(t *testing.T) {
	m := ToMatrix(mgl32.Translate3D(1, 2, 3))
	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("translation row = %v, want [1 2 3 1]", m[3])
	}
}

func TestTargetProjectsToCenter(t *testing.T) {
	o := DefaultOrbit(1)
	o.Yaw = 1.2
	clip := o.Matrix().TransformPoint([3]float32{0, 0, 0})
	if clip[3] <= 0 {
		t.Fatalf("target behind camera: w = %v", clip[3])
	}
	if !near(clip[0]/clip[3], 0) || !near(clip[1]/clip[3], 0) {
		t.Errorf("target NDC = (%v, %v), want (0, 0)", clip[0]/clip[3], clip[1]/clip[3])
	}
}

func TestDepthRange(t *testing.T) {
	tests := []struct {
		name      string
		reverse   bool
		nearDepth float32
		farDepth  float32
	}{
		{"standard", false, 0, 1},
		{"reverse", true, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOrbit(1)
			o.ReverseDepth = tt.reverse
			eye := o.Eye()
			forward := o.Target.Sub(eye).Normalize()
			m := o.Matrix()

			depth := func(dist float32) float32 {
				p := eye.Add(forward.Mul(dist))
				clip := m.TransformPoint([3]float32{p[0], p[1], p[2]})
				return clip[2] / clip[3]
			}
			if got := depth(o.Near); !near(got, tt.nearDepth) {
				t.Errorf("near plane depth = %v, want %v", got, tt.nearDepth)
			}
			if got := depth(o.Far); math.Abs(float64(got-tt.farDepth)) > 1e-3 {
				t.Errorf("far plane depth = %v, want %v", got, tt.farDepth)
			}
		})
	}
}

func TestCubeInsideDepthRange(t *testing.T) {
	for _, reverse := range []bool{false, true} {
		o := DefaultOrbit(4.0 / 3.0)
		o.ReverseDepth = reverse
		m := o.Matrix()
		for _, v := range ghostcube.Vertices() {
			clip := m.TransformPoint(v.Position)
			d := clip[2] / clip[3]
			if d < 0 || d > 1 {
				t.Errorf("reverse=%v corner %v depth %v outside [0, 1]", reverse, v.Position, d)
			}
		}
	}
}

func TestEyeDistance(t *testing.T) {
	o := DefaultOrbit(1)
	o.Target = mgl32.Vec3{1, 2, 3}
	o.Yaw = 2.5
	if got := o.Eye().Sub(o.Target).Len(); !near(got, o.Distance) {
		t.Errorf("eye distance = %v, want %v", got, o.Distance)
	}
}

func TestRotateWraps(t *testing.T) {
	o := DefaultOrbit(1)
	o.Rotate(2 * math.Pi)
	if !near(o.Yaw, 0) && !near(o.Yaw, 2*math.Pi) {
		t.Errorf("Yaw after full turn = %v, want 0", o.Yaw)
	}
	o.Yaw = 0
	o.Rotate(-0.5)
	if o.Yaw < 0 || !near(o.Yaw, 2*math.Pi-0.5) {
		t.Errorf("Yaw after -0.5 = %v, want %v", o.Yaw, 2*math.Pi-0.5)
	}
}

func TestDefaultOrbitAspect(t *testing.T) {
	if got := DefaultOrbit(0).Aspect; got != 1 {
		t.Errorf("DefaultOrbit(0).Aspect = %v, want 1", got)
	}
}
