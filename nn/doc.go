// Copyright 2026 The ESRGan Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the feature-extraction blocks of the ESRGan
// super-resolution network.
//
// # Overview
//
// This package contains:
//   - Conv2D: same-size 2D convolution over NCHW tensors
//   - ResidualDenseBlock: five densely-connected convolution stages
//   - ResidualResidualDenseBlock: three chained dense blocks
//   - ResidualFeatureDistillationBlock: channel-splitting distillation block
//   - AttentionGate: injectable spatial-attention collaborator
//
// # Weight supply
//
// Blocks perform inference only. Weights and biases come from the caller
// (typically a checkpoint loader, which lives outside this module) as
// ConvWeights pairs, and are validated against the declared channel
// configuration at construction time: a block that constructs successfully
// can never fail a forward pass on shape grounds for a well-shaped input.
//
//	weights := [5]nn.ConvWeights{ ... }
//	block, err := nn.NewResidualDenseBlock(64, 32, weights)
//	if err != nil {
//	    return err // *nn.ConfigError: weights disagree with the configuration
//	}
//	out, err := block.Forward(features)
//
// # Concurrency
//
// All blocks are immutable after construction and every operation allocates
// fresh outputs, so concurrent Forward calls on different inputs may share
// one block without synchronization.
package nn
