// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command cubedemo renders the ghost cube headlessly.
//
// It plays the part of a host engine: it opens a HAL backend, creates the
// color and depth targets, and hands each frame's render pass to a
// ghostcube.Sample while an orbit camera circles the cube.
//
// Usage:
//
//	cubedemo -backend software -frames 60 -reverse-z -output cube.png
//	cubedemo -backend software -preview on -output cube.png
//	cubedemo -config demo.yaml -v
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	"github.com/schollz/progressbar/v3"

	"github.com/gogpu/ghostcube"
	"github.com/gogpu/ghostcube/camera"
)

func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("cubedemo: %v", err)
	}
	if cfg.Verbose {
		ghostcube.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	progress := io.Writer(os.Stderr)
	if cfg.Quiet {
		progress = io.Discard
	}
	if err := run(cfg, progress); err != nil {
		log.Fatalf("cubedemo: %v", err)
	}
	if cfg.Output != "" {
		log.Printf("Last frame saved to %s (%dx%d)\n", cfg.Output, cfg.Width, cfg.Height)
	}
}

// run renders cfg.Frames frames and optionally writes the last one.
func run(cfg config, progress io.Writer) error {
	h, err := openHost(cfg.Backend, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer h.close()

	logger := ghostcube.Logger()
	logger.Info("cubedemo: adapter opened",
		"name", h.adapter.Name,
		"type", h.adapter.DeviceType.String(),
		"backend", cfg.Backend,
	)

	sample, err := ghostcube.New(h.device, h.queue, h.sampleOptions(cfg.ReverseZ)...)
	if err != nil {
		return err
	}
	defer sample.Destroy()

	cam := camera.DefaultOrbit(float32(cfg.Width) / float32(cfg.Height))
	cam.ReverseDepth = cfg.ReverseZ
	clearColor := gputypes.Color{R: cfg.Clear[0], G: cfg.Clear[1], B: cfg.Clear[2], A: cfg.Clear[3]}

	bar := progressbar.NewOptions(cfg.Frames,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() { _, _ = fmt.Fprintln(progress) }),
	)

	start := time.Now()
	for frame := range cfg.Frames {
		if frame > 0 {
			cam.Rotate(mgl32.DegToRad(cfg.YawStep))
		}
		if err := h.renderFrame(sample, cam.Matrix(), clearColor); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	logger.Debug("cubedemo: frames rendered", "frames", cfg.Frames, "elapsed", time.Since(start))

	if cfg.Output == "" {
		return nil
	}
	return writeSnapshot(cfg, h, sample, cam)
}

// writeSnapshot saves the last frame as PNG. The software backend reads
// the color target back; other backends start from the clear color. The
// CPU preview is painted on top only when cfg.previewEnabled reports it,
// which by default excludes read-back frames.
func writeSnapshot(cfg config, h *host, sample *ghostcube.Sample, cam camera.Orbit) error {
	var img *image.RGBA
	if cfg.readsBack() {
		var err error
		img, err = h.readColor()
		if err != nil {
			return err
		}
	} else {
		img = image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
		bg := color.NRGBA{
			R: unitToByte(float32(cfg.Clear[0])),
			G: unitToByte(float32(cfg.Clear[1])),
			B: unitToByte(float32(cfg.Clear[2])),
			A: unitToByte(float32(cfg.Clear[3])),
		}
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	if cfg.previewEnabled() {
		eye := cam.Eye()
		n := drawPreview(img, cam.Matrix(), [3]float32{eye[0], eye[1], eye[2]}, cfg.ReverseZ)
		ghostcube.Logger().Debug("cubedemo: preview drawn", "triangles", n)
	}
	if cfg.Caption {
		info := fmt.Sprintf("depth %s front %s", sample.DepthCompare(), sample.FrontFace())
		if err := drawCaption(img, frameCaption(cfg, cfg.Frames, info)); err != nil {
			return err
		}
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
