// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const captionSize = 14

// drawCaption writes text in the top-left corner of dst.
func drawCaption(dst *image.RGBA, text string) error {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse caption font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("create caption face: %w", err)
	}
	defer face.Close()

	ascent := face.Metrics().Ascent
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(8), Y: fixed.I(6) + ascent},
	}
	drawer.DrawString(text)
	return nil
}

func frameCaption(cfg config, frame int, sampleInfo string) string {
	depth := "standard-z"
	if cfg.ReverseZ {
		depth = "reverse-z"
	}
	return fmt.Sprintf("ghostcube %s frame %d/%d %s %s", cfg.Backend, frame, cfg.Frames, depth, sampleInfo)
}
