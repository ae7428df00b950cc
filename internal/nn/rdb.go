package nn

import (
	"fmt"

	"github.com/Firas-DR/ESRGan/internal/tensor"
)

// Fixed design constants of the ESRGAN block family. The residual scale
// damps each block's contribution for training stability and is not learned.
const (
	residualScale = 0.2  // scale on every residual branch
	denseSlope    = 0.2  // LeakyReLU slope inside dense blocks
	distillSlope  = 0.05 // LeakyReLU slope inside distillation blocks
)

// ResidualDenseBlock is a stack of five densely connected convolutions.
//
// Each of the first four stages convolves the concatenation of the block
// input and all previous stage outputs, producing growth_channels new
// feature channels under LeakyReLU(0.2). The fifth convolution maps the full
// concatenation back to the input channel count without activation, and the
// block returns x + 0.2*out5.
type ResidualDenseBlock struct {
	channels       int
	growthChannels int

	conv1 *Conv2D // channels                -> growth
	conv2 *Conv2D // channels + 1*growth     -> growth
	conv3 *Conv2D // channels + 2*growth     -> growth
	conv4 *Conv2D // channels + 3*growth     -> growth
	conv5 *Conv2D // channels + 4*growth     -> channels
}

// NewResidualDenseBlock creates a dense block over five externally supplied
// 3x3 convolution weight sets, ordered conv1..conv5.
//
// Returns a *ConfigError if any weight set does not match its stage's
// channel arithmetic (stage i consumes channels + i*growthChannels inputs).
func NewResidualDenseBlock(channels, growthChannels int, weights [5]ConvWeights) (*ResidualDenseBlock, error) {
	if channels <= 0 || growthChannels <= 0 {
		return nil, configErrorf("residual dense block", "invalid configuration channels=%d, growth_channels=%d", channels, growthChannels)
	}

	b := &ResidualDenseBlock{channels: channels, growthChannels: growthChannels}

	convs := [5]**Conv2D{&b.conv1, &b.conv2, &b.conv3, &b.conv4, &b.conv5}
	for i, slot := range convs {
		in := channels + i*growthChannels
		out := growthChannels
		if i == 4 {
			out = channels
		}
		conv, err := NewConv2D(in, out, 3, weights[i])
		if err != nil {
			return nil, fmt.Errorf("residual dense block: conv%d: %w", i+1, err)
		}
		*slot = conv
	}
	return b, nil
}

// Forward runs the five dense stages and the scaled residual add.
// The output shape equals the input shape exactly.
func (b *ResidualDenseBlock) Forward(x *tensor.Tensor) (*tensor.Tensor, error) {
	out1, err := convLeaky(b.conv1, denseSlope, x)
	if err != nil {
		return nil, err
	}
	out2, err := convLeakyCat(b.conv2, denseSlope, x, out1)
	if err != nil {
		return nil, err
	}
	out3, err := convLeakyCat(b.conv3, denseSlope, x, out1, out2)
	if err != nil {
		return nil, err
	}
	out4, err := convLeakyCat(b.conv4, denseSlope, x, out1, out2, out3)
	if err != nil {
		return nil, err
	}

	// conv5 restores the input channel count; no activation.
	cat, err := tensor.ConcatChannels(x, out1, out2, out3, out4)
	if err != nil {
		return nil, err
	}
	out5, err := b.conv5.Forward(cat)
	if err != nil {
		return nil, err
	}

	return tensor.Add(x, tensor.Scale(out5, residualScale))
}

// Channels returns the block's input/output channel count.
func (b *ResidualDenseBlock) Channels() int { return b.channels }

// GrowthChannels returns the per-stage channel growth.
func (b *ResidualDenseBlock) GrowthChannels() int { return b.growthChannels }

// String returns a string representation of the block.
func (b *ResidualDenseBlock) String() string {
	return fmt.Sprintf("ResidualDenseBlock(channels=%d, growth_channels=%d)", b.channels, b.growthChannels)
}

// convLeaky applies conv then LeakyReLU with the given slope.
func convLeaky(conv *Conv2D, slope float32, x *tensor.Tensor) (*tensor.Tensor, error) {
	out, err := conv.Forward(x)
	if err != nil {
		return nil, err
	}
	return tensor.LeakyReLU(out, slope), nil
}

// convLeakyCat concatenates the inputs along channels, then applies conv and
// LeakyReLU with the given slope.
func convLeakyCat(conv *Conv2D, slope float32, xs ...*tensor.Tensor) (*tensor.Tensor, error) {
	cat, err := tensor.ConcatChannels(xs...)
	if err != nil {
		return nil, err
	}
	return convLeaky(conv, slope, cat)
}
