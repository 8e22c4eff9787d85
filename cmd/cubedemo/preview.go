// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	"golang.org/x/image/vector"

	"github.com/gogpu/ghostcube"
)

// previewTri is one projected cube triangle ready to fill.
type previewTri struct {
	pts   [3][2]float32
	depth float32
	fill  color.NRGBA
}

// drawPreview paints a CPU reference of the cube over dst using the same
// matrix, geometry, and blending the pipeline uses. Backends that skip
// indexed draws still show where the cube lands. It returns the number of
// triangles filled.
func drawPreview(dst *image.RGBA, viewProj ghostcube.Matrix, eye [3]float32, reverse bool) int {
	verts := ghostcube.Vertices()
	indices := ghostcube.Indices()
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	tris := make([]previewTri, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := verts[indices[i]], verts[indices[i+1]], verts[indices[i+2]]
		if !facesEye(a.Position, b.Position, c.Position, eye) {
			continue
		}

		var t previewTri
		visible := true
		var colorSum [4]float32
		for k, v := range [3]ghostcube.Vertex{a, b, c} {
			clip := viewProj.TransformPoint(v.Position)
			if clip[3] <= 0 {
				visible = false
				break
			}
			ndcX, ndcY, ndcZ := clip[0]/clip[3], clip[1]/clip[3], clip[2]/clip[3]
			t.pts[k] = [2]float32{
				(ndcX*0.5 + 0.5) * float32(w),
				(0.5 - ndcY*0.5) * float32(h),
			}
			t.depth += ndcZ / 3
			for j := range colorSum {
				colorSum[j] += v.Color[j] / 3
			}
		}
		if !visible {
			continue
		}
		t.fill = color.NRGBA{
			R: unitToByte(colorSum[0]),
			G: unitToByte(colorSum[1]),
			B: unitToByte(colorSum[2]),
			A: unitToByte(colorSum[3]),
		}
		tris = append(tris, t)
	}

	// Back to front.
	sort.Slice(tris, func(i, j int) bool {
		if reverse {
			return tris[i].depth < tris[j].depth
		}
		return tris[i].depth > tris[j].depth
	})

	z := vector.NewRasterizer(w, h)
	for _, t := range tris {
		z.Reset(w, h)
		z.DrawOp = draw.Over
		z.MoveTo(t.pts[0][0], t.pts[0][1])
		z.LineTo(t.pts[1][0], t.pts[1][1])
		z.LineTo(t.pts[2][0], t.pts[2][1])
		z.ClosePath()
		z.Draw(dst, dst.Bounds(), image.NewUniform(t.fill), image.Point{})
	}
	return len(tris)
}

// facesEye reports whether triangle abc, wound with its outward normal
// along (b-a)x(c-a), faces the eye. Back faces are culled as in the
// pipeline.
func facesEye(a, b, c, eye [3]float32) bool {
	ab := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	ac := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	n := [3]float32{
		ab[1]*ac[2] - ab[2]*ac[1],
		ab[2]*ac[0] - ab[0]*ac[2],
		ab[0]*ac[1] - ab[1]*ac[0],
	}
	toEye := [3]float32{eye[0] - a[0], eye[1] - a[1], eye[2] - a[2]}
	return n[0]*toEye[0]+n[1]*toEye[1]+n[2]*toEye[2] > 0
}

func unitToByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
