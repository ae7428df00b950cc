package nn

import "github.com/Firas-DR/ESRGan/internal/tensor"

// AttentionGate is the spatial-attention collaborator applied at the end of a
// ResidualFeatureDistillationBlock.
//
// Contract: Forward must accept a tensor of the block's channel width and
// return a tensor of the identical shape. The gate's internals (e.g. an
// enhanced spatial attention module) live outside this core; the block treats
// it as an opaque Tensor -> Tensor transform injected at construction.
type AttentionGate interface {
	Forward(x *tensor.Tensor) (*tensor.Tensor, error)
}

// Identity is the trivial shape-preserving gate: it returns a copy of its
// input. Useful for wiring blocks before a real attention module is available
// and in tests.
type Identity struct{}

// Forward returns a fresh copy of x.
func (Identity) Forward(x *tensor.Tensor) (*tensor.Tensor, error) {
	return x.Clone(), nil
}
