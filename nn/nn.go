// Copyright 2026 The ESRGan Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/Firas-DR/ESRGan/internal/nn"
)

// Module is the base interface for all network components.
type Module = nn.Module

// ConfigError reports a block constructed with weights that do not match its
// declared channel configuration.
type ConfigError = nn.ConfigError

// ConvWeights is the externally supplied weight/bias pair for one convolution.
type ConvWeights = nn.ConvWeights

// Layers

// Conv2D is a learned 2D convolution with stride 1 and "same" padding.
type Conv2D = nn.Conv2D

// NewConv2D creates a convolution from externally supplied weights.
//
// Example:
//
//	conv, err := nn.NewConv2D(64, 32, 3, nn.ConvWeights{Weight: w, Bias: b})
func NewConv2D(inChannels, outChannels, kernelSize int, w ConvWeights) (*Conv2D, error) {
	return nn.NewConv2D(inChannels, outChannels, kernelSize, w)
}

// Blocks

// ResidualDenseBlock is a stack of five densely connected convolutions with
// a scaled residual add.
type ResidualDenseBlock = nn.ResidualDenseBlock

// NewResidualDenseBlock creates a dense block over five 3x3 convolution
// weight sets, ordered conv1..conv5.
func NewResidualDenseBlock(channels, growthChannels int, weights [5]ConvWeights) (*ResidualDenseBlock, error) {
	return nn.NewResidualDenseBlock(channels, growthChannels, weights)
}

// ResidualResidualDenseBlock chains three dense blocks under one outer
// scaled residual.
type ResidualResidualDenseBlock = nn.ResidualResidualDenseBlock

// NewResidualResidualDenseBlock creates the three-block stack with
// independent weights per block.
func NewResidualResidualDenseBlock(channels, growthChannels int, weights [3][5]ConvWeights) (*ResidualResidualDenseBlock, error) {
	return nn.NewResidualResidualDenseBlock(channels, growthChannels, weights)
}

// ResidualFeatureDistillationBlock refines features along a distilled and a
// remaining path and applies an injected attention gate.
type ResidualFeatureDistillationBlock = nn.ResidualFeatureDistillationBlock

// NewResidualFeatureDistillationBlock creates a distillation block over
// eight weight sets and the injected spatial-attention gate.
func NewResidualFeatureDistillationBlock(channels int, weights [8]ConvWeights, gate AttentionGate) (*ResidualFeatureDistillationBlock, error) {
	return nn.NewResidualFeatureDistillationBlock(channels, weights, gate)
}

// Collaborators

// AttentionGate is the pluggable spatial-attention transform applied at the
// end of a ResidualFeatureDistillationBlock.
type AttentionGate = nn.AttentionGate

// Identity is the trivial shape-preserving gate.
type Identity = nn.Identity

// Compile-time check that the facade re-exports a usable gate.
var _ AttentionGate = Identity{}
