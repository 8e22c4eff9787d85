// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop device and queue for testing.
// Returns the device, queue, and a cleanup function.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// beginNoopPass opens a noop command encoder and render pass.
func beginNoopPass(t *testing.T, device hal.Device) hal.RenderPassEncoder {
	t.Helper()
	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "test_encoder"})
	if err != nil {
		t.Fatalf("CreateCommandEncoder failed: %v", err)
	}
	if err := encoder.BeginEncoding("test"); err != nil {
		t.Fatalf("BeginEncoding failed: %v", err)
	}
	return encoder.BeginRenderPass(&hal.RenderPassDescriptor{Label: "test_pass"})
}

// readBuffer maps a noop buffer and copies size bytes out of it.
func readBuffer(t *testing.T, device hal.Device, buf hal.Buffer, size uint64) []byte {
	t.Helper()
	mapping, err := device.MapBuffer(buf, 0, size)
	if err != nil {
		t.Fatalf("MapBuffer failed: %v", err)
	}
	defer func() { _ = device.UnmapBuffer(buf) }()
	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(mapping.Ptr), size))
	return out
}

// decodeFloat4x4 reads 16 little-endian float32 values in row-major order.
func decodeFloat4x4(t *testing.T, data []byte) Float4x4 {
	t.Helper()
	if len(data) < Float4x4Size {
		t.Fatalf("matrix data too short: %d bytes", len(data))
	}
	var m Float4x4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			off := (r*4 + c) * 4
			m[r][c] = math.Float32frombits(binary.LittleEndian.Uint32(data[off : off+4]))
		}
	}
	return m
}

var errInjected = errors.New("injected failure")

// recordingDevice wraps a HAL device, captures render pipeline descriptors,
// counts destroyed objects, and can fail a named create call.
type recordingDevice struct {
	hal.Device

	failOn    string
	pipelines []hal.RenderPipelineDescriptor
	destroyed map[string]int
}

func newRecordingDevice(inner hal.Device) *recordingDevice {
	return &recordingDevice{Device: inner, destroyed: make(map[string]int)}
}

func (d *recordingDevice) fail(op string) error {
	if d.failOn == op {
		return fmt.Errorf("%s: %w", op, errInjected)
	}
	return nil
}

func (d *recordingDevice) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	if err := d.fail("CreateShaderModule"); err != nil {
		return nil, err
	}
	return d.Device.CreateShaderModule(desc)
}

func (d *recordingDevice) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	if err := d.fail("CreateRenderPipeline"); err != nil {
		return nil, err
	}
	d.pipelines = append(d.pipelines, *desc)
	return d.Device.CreateRenderPipeline(desc)
}

func (d *recordingDevice) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	if err := d.fail("CreateBuffer:" + desc.Label); err != nil {
		return nil, err
	}
	return d.Device.CreateBuffer(desc)
}

func (d *recordingDevice) CreateBindGroup(desc *hal.BindGroupDescriptor) (hal.BindGroup, error) {
	if err := d.fail("CreateBindGroup"); err != nil {
		return nil, err
	}
	return d.Device.CreateBindGroup(desc)
}

func (d *recordingDevice) DestroyBuffer(b hal.Buffer) {
	d.destroyed["buffer"]++
	d.Device.DestroyBuffer(b)
}

func (d *recordingDevice) DestroyBindGroup(g hal.BindGroup) {
	d.destroyed["bind_group"]++
	d.Device.DestroyBindGroup(g)
}

func (d *recordingDevice) DestroyRenderPipeline(p hal.RenderPipeline) {
	d.destroyed["pipeline"]++
	d.Device.DestroyRenderPipeline(p)
}

func (d *recordingDevice) DestroyShaderModule(m hal.ShaderModule) {
	d.destroyed["shader"]++
	d.Device.DestroyShaderModule(m)
}

// recordingPass wraps a render pass encoder and logs the commands the cube
// renderer issues.
type recordingPass struct {
	hal.RenderPassEncoder

	calls       []string
	indexFormat gputypes.IndexFormat
	indexCount  uint32
}

func (p *recordingPass) SetPipeline(pipeline hal.RenderPipeline) {
	p.calls = append(p.calls, "SetPipeline")
	p.RenderPassEncoder.SetPipeline(pipeline)
}

func (p *recordingPass) SetBindGroup(index uint32, group hal.BindGroup, offsets []uint32) {
	p.calls = append(p.calls, fmt.Sprintf("SetBindGroup(%d)", index))
	p.RenderPassEncoder.SetBindGroup(index, group, offsets)
}

func (p *recordingPass) SetVertexBuffer(slot uint32, buffer hal.Buffer, offset uint64) {
	p.calls = append(p.calls, fmt.Sprintf("SetVertexBuffer(%d)", slot))
	p.RenderPassEncoder.SetVertexBuffer(slot, buffer, offset)
}

func (p *recordingPass) SetIndexBuffer(buffer hal.Buffer, format gputypes.IndexFormat, offset uint64) {
	p.calls = append(p.calls, "SetIndexBuffer")
	p.indexFormat = format
	p.RenderPassEncoder.SetIndexBuffer(buffer, format, offset)
}

func (p *recordingPass) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	p.calls = append(p.calls, "DrawIndexed")
	p.indexCount = indexCount
	p.RenderPassEncoder.DrawIndexed(indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
}

// failingQueue rejects every buffer write.
type failingQueue struct {
	hal.Queue
}

func (failingQueue) WriteBuffer(hal.Buffer, uint64, []byte) error {
	return errInjected
}
