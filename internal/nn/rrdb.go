package nn

import (
	"fmt"

	"github.com/Firas-DR/ESRGan/internal/tensor"
)

// ResidualResidualDenseBlock chains three independently-weighted
// ResidualDenseBlocks and wraps the whole stack in one more scaled residual:
//
//	out = RDB3(RDB2(RDB1(x)))
//	return x + 0.2*out
//
// The outer 0.2 scale is applied once around the stack; each inner block
// still applies its own residual scale internally.
type ResidualResidualDenseBlock struct {
	channels       int
	growthChannels int

	rdbs [3]*ResidualDenseBlock
}

// NewResidualResidualDenseBlock creates the three-block stack. All three
// dense blocks share the same (channels, growthChannels) configuration but
// carry independent weights, supplied as weights[block][conv].
func NewResidualResidualDenseBlock(channels, growthChannels int, weights [3][5]ConvWeights) (*ResidualResidualDenseBlock, error) {
	b := &ResidualResidualDenseBlock{channels: channels, growthChannels: growthChannels}

	for i := range b.rdbs {
		rdb, err := NewResidualDenseBlock(channels, growthChannels, weights[i])
		if err != nil {
			return nil, fmt.Errorf("residual residual dense block: rdb%d: %w", i+1, err)
		}
		b.rdbs[i] = rdb
	}
	return b, nil
}

// Forward runs the three dense blocks in sequence and the outer residual add.
// The output shape equals the input shape exactly.
func (b *ResidualResidualDenseBlock) Forward(x *tensor.Tensor) (*tensor.Tensor, error) {
	out := x
	for _, rdb := range b.rdbs {
		var err error
		out, err = rdb.Forward(out)
		if err != nil {
			return nil, err
		}
	}

	return tensor.Add(x, tensor.Scale(out, residualScale))
}

// Channels returns the block's input/output channel count.
func (b *ResidualResidualDenseBlock) Channels() int { return b.channels }

// GrowthChannels returns the per-stage channel growth of the inner blocks.
func (b *ResidualResidualDenseBlock) GrowthChannels() int { return b.growthChannels }

// String returns a string representation of the block.
func (b *ResidualResidualDenseBlock) String() string {
	return fmt.Sprintf("ResidualResidualDenseBlock(channels=%d, growth_channels=%d)", b.channels, b.growthChannels)
}
