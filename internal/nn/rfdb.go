package nn

import (
	"fmt"

	"github.com/Firas-DR/ESRGan/internal/tensor"
)

// ResidualFeatureDistillationBlock refines features along two paths: a
// "distilled" path of cheap 1x1 convolutions whose outputs are kept for the
// final fusion, and a "remaining" path of 3x3 convolutions with residual
// adds that is refined stage by stage.
//
// Three distill/remain stages feed a fourth 3x3 convolution that reduces the
// remaining path to distilled width; the four distilled branches are then
// concatenated, fused by a 1x1 convolution back to the block width, and
// passed through the injected attention gate. All activations are
// LeakyReLU(0.05), applied after each stage's residual add.
type ResidualFeatureDistillationBlock struct {
	channels          int
	distilledChannels int // channels / 2
	remainingChannels int // channels, unchanged across the remaining path

	conv1Distilled *Conv2D // 1x1, channels  -> distilled
	conv1Remaining *Conv2D // 3x3, channels  -> channels
	conv2Distilled *Conv2D // 1x1, channels  -> distilled
	conv2Remaining *Conv2D // 3x3, channels  -> channels
	conv3Distilled *Conv2D // 1x1, channels  -> distilled
	conv3Remaining *Conv2D // 3x3, channels  -> channels
	conv4          *Conv2D // 3x3, channels  -> distilled
	conv5          *Conv2D // 1x1, 4*distilled -> channels

	gate AttentionGate
}

// NewResidualFeatureDistillationBlock creates a distillation block over eight
// externally supplied weight sets, ordered conv1_distilled, conv1_remaining,
// conv2_distilled, conv2_remaining, conv3_distilled, conv3_remaining, conv4,
// conv5. The gate is the injected spatial-attention collaborator.
//
// channels must be even so the distilled split channels/2 is exact. Returns a
// *ConfigError on invalid configuration or mismatched weight shapes.
func NewResidualFeatureDistillationBlock(channels int, weights [8]ConvWeights, gate AttentionGate) (*ResidualFeatureDistillationBlock, error) {
	if channels <= 0 || channels%2 != 0 {
		return nil, configErrorf("residual feature distillation block", "channels=%d must be positive and even", channels)
	}
	if gate == nil {
		return nil, configErrorf("residual feature distillation block", "attention gate is required")
	}

	distilled := channels / 2
	b := &ResidualFeatureDistillationBlock{
		channels:          channels,
		distilledChannels: distilled,
		remainingChannels: channels,
		gate:              gate,
	}

	stages := []struct {
		name   string
		slot   **Conv2D
		in     int
		out    int
		kernel int
	}{
		{"conv1_distilled", &b.conv1Distilled, channels, distilled, 1},
		{"conv1_remaining", &b.conv1Remaining, channels, channels, 3},
		{"conv2_distilled", &b.conv2Distilled, channels, distilled, 1},
		{"conv2_remaining", &b.conv2Remaining, channels, channels, 3},
		{"conv3_distilled", &b.conv3Distilled, channels, distilled, 1},
		{"conv3_remaining", &b.conv3Remaining, channels, channels, 3},
		{"conv4", &b.conv4, channels, distilled, 3},
		{"conv5", &b.conv5, 4 * distilled, channels, 1},
	}
	for i, s := range stages {
		conv, err := NewConv2D(s.in, s.out, s.kernel, weights[i])
		if err != nil {
			return nil, fmt.Errorf("residual feature distillation block: %s: %w", s.name, err)
		}
		*s.slot = conv
	}
	return b, nil
}

// Forward runs the three distill/remain stages, the reduction and fusion
// convolutions, and the attention gate. The output shape equals the input
// shape exactly.
func (b *ResidualFeatureDistillationBlock) Forward(x *tensor.Tensor) (*tensor.Tensor, error) {
	d1, r1, err := b.stage(b.conv1Distilled, b.conv1Remaining, x)
	if err != nil {
		return nil, err
	}
	d2, r2, err := b.stage(b.conv2Distilled, b.conv2Remaining, r1)
	if err != nil {
		return nil, err
	}
	d3, r3, err := b.stage(b.conv3Distilled, b.conv3Remaining, r2)
	if err != nil {
		return nil, err
	}

	// Final reduction of the remaining path to distilled width; no residual.
	r4, err := convLeaky(b.conv4, distillSlope, r3)
	if err != nil {
		return nil, err
	}

	// The four distilled branches fuse back to the block width.
	fusedIn, err := tensor.ConcatChannels(d1, d2, d3, r4)
	if err != nil {
		return nil, err
	}
	fused, err := b.conv5.Forward(fusedIn)
	if err != nil {
		return nil, err
	}

	out, err := b.gate.Forward(fused)
	if err != nil {
		return nil, fmt.Errorf("residual feature distillation block: attention gate: %w", err)
	}
	if !out.Shape().Equal(fused.Shape()) {
		return nil, &tensor.ShapeError{
			Op:  "attention gate",
			Msg: fmt.Sprintf("gate returned shape %v, want %v", out.Shape(), fused.Shape()),
		}
	}
	return out, nil
}

// stage runs one distill/remain pair: the distilled branch is a 1x1
// convolution under LeakyReLU, the remaining branch a 3x3 convolution whose
// output is residual-added to the stage input before activation.
func (b *ResidualFeatureDistillationBlock) stage(distill, remain *Conv2D, in *tensor.Tensor) (d, r *tensor.Tensor, err error) {
	d, err = convLeaky(distill, distillSlope, in)
	if err != nil {
		return nil, nil, err
	}

	rConv, err := remain.Forward(in)
	if err != nil {
		return nil, nil, err
	}
	rSum, err := tensor.Add(rConv, in)
	if err != nil {
		return nil, nil, err
	}
	return d, tensor.LeakyReLU(rSum, distillSlope), nil
}

// Channels returns the block's input/output channel count.
func (b *ResidualFeatureDistillationBlock) Channels() int { return b.channels }

// DistilledChannels returns the derived distilled path width (channels / 2).
func (b *ResidualFeatureDistillationBlock) DistilledChannels() int { return b.distilledChannels }

// RemainingChannels returns the remaining path width (equal to channels).
func (b *ResidualFeatureDistillationBlock) RemainingChannels() int { return b.remainingChannels }

// String returns a string representation of the block.
func (b *ResidualFeatureDistillationBlock) String() string {
	return fmt.Sprintf("ResidualFeatureDistillationBlock(channels=%d, distilled_channels=%d)", b.channels, b.distilledChannels)
}
