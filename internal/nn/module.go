// Package nn implements the feature-extraction blocks of the ESRGan
// super-resolution network.
//
// This package provides:
//   - Conv2D: same-size 2D convolution over NCHW tensors
//   - ResidualDenseBlock: five densely-connected convolution stages
//   - ResidualResidualDenseBlock: three chained dense blocks
//   - ResidualFeatureDistillationBlock: channel-splitting distillation block
//   - AttentionGate: pluggable spatial-attention collaborator
//
// Every block is a fixed forward pipeline over externally supplied weights:
// no training, no gradient tracking, no dynamic layer dispatch. Weight and
// bias values come from the caller (typically a checkpoint loader) and are
// validated at construction time, so a malformed block can never be invoked.
package nn

import "github.com/Firas-DR/ESRGan/internal/tensor"

// Module is the base interface for all network components.
//
// Forward evaluates the component on a feature map and returns a freshly
// allocated output tensor. Implementations are pure: they never mutate the
// input and hold only immutable weight state, so concurrent Forward calls on
// different inputs are safe without synchronization.
type Module interface {
	Forward(x *tensor.Tensor) (*tensor.Tensor, error)
}

// Compile-time checks that all blocks implement Module.
var (
	_ Module = (*Conv2D)(nil)
	_ Module = (*ResidualDenseBlock)(nil)
	_ Module = (*ResidualResidualDenseBlock)(nil)
	_ Module = (*ResidualFeatureDistillationBlock)(nil)
	_ Module = Identity{}
)
