// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
	"github.com/gogpu/wgpu/hal/software"

	"github.com/gogpu/ghostcube"
)

const (
	colorFormat = gputypes.TextureFormatRGBA8Unorm
	depthFormat = gputypes.TextureFormatDepth32Float
)

// host stands in for an engine: it owns the device, the render targets,
// and the frame's command recording. The sample only sees the open pass.
type host struct {
	width, height uint32

	instance hal.Instance
	adapter  gputypes.AdapterInfo
	device   hal.Device
	queue    hal.Queue

	color     hal.Texture
	colorView hal.TextureView
	depth     hal.Texture
	depthView hal.TextureView
	readback  hal.Buffer
}

func backendAPI(name string) (hal.Backend, error) {
	switch name {
	case "noop":
		return noop.API{}, nil
	case "software":
		return software.API{}, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownBackend, name)
}

// openHost opens the first adapter of the named backend and creates
// width x height color and depth targets plus a readback buffer.
func openHost(backend string, width, height int) (*host, error) {
	api, err := backendAPI(backend)
	if err != nil {
		return nil, err
	}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("%s: no adapters", backend)
	}
	open, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open adapter: %w", err)
	}

	h := &host{
		width:    uint32(width),  //nolint:gosec // validated positive
		height:   uint32(height), //nolint:gosec // validated positive
		instance: instance,
		adapter:  adapters[0].Info,
		device:   open.Device,
		queue:    open.Queue,
	}
	if err := h.createTargets(); err != nil {
		h.close()
		return nil, err
	}
	return h, nil
}

func (h *host) createTargets() error {
	size := hal.Extent3D{Width: h.width, Height: h.height, DepthOrArrayLayers: 1}

	var err error
	h.color, err = h.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "cubedemo_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        colorFormat,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create color target: %w", err)
	}
	h.colorView, err = h.device.CreateTextureView(h.color, &hal.TextureViewDescriptor{Label: "cubedemo_color_view"})
	if err != nil {
		return fmt.Errorf("create color view: %w", err)
	}

	h.depth, err = h.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "cubedemo_depth",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        depthFormat,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create depth target: %w", err)
	}
	h.depthView, err = h.device.CreateTextureView(h.depth, &hal.TextureViewDescriptor{Label: "cubedemo_depth_view"})
	if err != nil {
		return fmt.Errorf("create depth view: %w", err)
	}

	h.readback, err = h.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "cubedemo_readback",
		Size:  h.rowBytes() * uint64(h.height),
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create readback buffer: %w", err)
	}
	return nil
}

func (h *host) rowBytes() uint64 { return uint64(h.width) * 4 }

// sampleOptions describes the host's targets to the sample.
func (h *host) sampleOptions(reverse bool) []ghostcube.Option {
	return []ghostcube.Option{
		ghostcube.WithColorFormat(colorFormat),
		ghostcube.WithDepthFormat(depthFormat),
		ghostcube.WithBackend(h.adapter.Backend),
		ghostcube.WithReverseDepth(reverse),
	}
}

// renderFrame records one pass that clears both targets and lets the
// sample draw, then submits it.
func (h *host) renderFrame(s *ghostcube.Sample, viewProj ghostcube.Matrix, clearColor gputypes.Color) error {
	encoder, err := h.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "cubedemo_frame"})
	if err != nil {
		return fmt.Errorf("create encoder: %w", err)
	}
	if err := encoder.BeginEncoding("cubedemo_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	pass := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "cubedemo_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       h.colorView,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: clearColor,
		}},
		DepthStencilAttachment: &hal.RenderPassDepthStencilAttachment{
			View:            h.depthView,
			DepthLoadOp:     gputypes.LoadOpClear,
			DepthStoreOp:    gputypes.StoreOpStore,
			DepthClearValue: s.DepthClearValue(),
		},
	})
	renderErr := s.Render(pass, viewProj)
	pass.End()
	if renderErr != nil {
		encoder.DiscardEncoding()
		return renderErr
	}
	return h.submit(encoder)
}

func (h *host) submit(encoder hal.CommandEncoder) error {
	cmd, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer h.device.FreeCommandBuffer(cmd)
	if _, err := h.queue.Submit([]hal.CommandBuffer{cmd}); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	return nil
}

// readColor copies the color target into the readback buffer and returns
// it as an image.
func (h *host) readColor() (*image.RGBA, error) {
	encoder, err := h.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "cubedemo_readback"})
	if err != nil {
		return nil, fmt.Errorf("create encoder: %w", err)
	}
	if err := encoder.BeginEncoding("cubedemo_readback"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}
	encoder.CopyTextureToBuffer(h.color, h.readback, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{
			BytesPerRow:  uint32(h.rowBytes()), //nolint:gosec // bounded by width
			RowsPerImage: h.height,
		},
		TextureBase: hal.ImageCopyTexture{Texture: h.color, Aspect: gputypes.TextureAspectAll},
		Size:        hal.Extent3D{Width: h.width, Height: h.height, DepthOrArrayLayers: 1},
	}})
	if err := h.submit(encoder); err != nil {
		return nil, err
	}
	if err := h.device.WaitIdle(); err != nil {
		return nil, fmt.Errorf("wait idle: %w", err)
	}

	size := h.rowBytes() * uint64(h.height)
	mapping, err := h.device.MapBuffer(h.readback, 0, size)
	if err != nil {
		return nil, fmt.Errorf("map readback: %w", err)
	}
	defer func() { _ = h.device.UnmapBuffer(h.readback) }()

	img := image.NewRGBA(image.Rect(0, 0, int(h.width), int(h.height)))
	copy(img.Pix, unsafe.Slice((*byte)(mapping.Ptr), size))
	return img, nil
}

// close releases the targets, the device, and the instance.
func (h *host) close() {
	if h.device != nil {
		if h.readback != nil {
			h.device.DestroyBuffer(h.readback)
		}
		if h.depthView != nil {
			h.device.DestroyTextureView(h.depthView)
		}
		if h.depth != nil {
			h.device.DestroyTexture(h.depth)
		}
		if h.colorView != nil {
			h.device.DestroyTextureView(h.colorView)
		}
		if h.color != nil {
			h.device.DestroyTexture(h.color)
		}
		h.device.Destroy()
		h.device = nil
	}
	if h.instance != nil {
		h.instance.Destroy()
		h.instance = nil
	}
}
