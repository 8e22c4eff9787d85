// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import "github.com/gogpu/gputypes"

// FrontFaceFor returns the winding treated as front-facing on the given
// backend. Host engines flip Y when rendering into D3D-style targets, which
// mirrors screen-space winding, so DX12 takes counter-clockwise and every
// other backend clockwise.
func FrontFaceFor(backend gputypes.Backend) gputypes.FrontFace {
	if backend == gputypes.BackendDX12 {
		return gputypes.FrontFaceCCW
	}
	return gputypes.FrontFaceCW
}

// DepthCompareFor returns the depth test for the given depth direction.
// Reversed depth clears to 0 and keeps nearer fragments with larger values.
func DepthCompareFor(reverse bool) gputypes.CompareFunction {
	if reverse {
		return gputypes.CompareFunctionGreaterEqual
	}
	return gputypes.CompareFunctionLessEqual
}

// DepthClearValue returns the far-plane value a depth attachment must be
// cleared to for the given depth direction.
func DepthClearValue(reverse bool) float32 {
	if reverse {
		return 0
	}
	return 1
}

// cubeBlendState is straight alpha blending on color that leaves the
// destination alpha untouched.
func cubeBlendState() gputypes.BlendState {
	return gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorZero,
			DstFactor: gputypes.BlendFactorOne,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}
