package nn

import "github.com/Firas-DR/ESRGan/internal/tensor"

// Shared weight builders for the block tests. All of them return weights in
// the (out_channels, in_channels, k, k) layout NewConv2D expects.

// zeroWeights returns an all-zero weight/bias pair.
func zeroWeights(out, in, k int) ConvWeights {
	return ConvWeights{
		Weight: tensor.Zeros(tensor.Shape{out, in, k, k}),
		Bias:   make([]float32, out),
	}
}

// patternWeights returns a deterministic, non-symmetric weight pattern with
// small magnitudes, and a small per-channel bias.
func patternWeights(out, in, k int) ConvWeights {
	w := tensor.Zeros(tensor.Shape{out, in, k, k})
	data := w.Data()
	for i := range data {
		data[i] = float32((i%5)-2) * 0.1
	}
	bias := make([]float32, out)
	for i := range bias {
		bias[i] = float32(i) * 0.01
	}
	return ConvWeights{Weight: w, Bias: bias}
}

// centerTapWeights puts weight 1 at the kernel center for every (out, in)
// channel pair and uses zero bias: each output channel is the sum of all
// input channels at the same pixel.
func centerTapWeights(out, in, k int) ConvWeights {
	w := tensor.Zeros(tensor.Shape{out, in, k, k})
	for oc := 0; oc < out; oc++ {
		for ic := 0; ic < in; ic++ {
			w.Set(1, oc, ic, k/2, k/2)
		}
	}
	return ConvWeights{Weight: w, Bias: make([]float32, out)}
}

// denseBlockWeights builds the five weight sets of a ResidualDenseBlock from
// a per-conv generator.
func denseBlockWeights(channels, growth int, gen func(out, in, k int) ConvWeights) [5]ConvWeights {
	var weights [5]ConvWeights
	for i := 0; i < 4; i++ {
		weights[i] = gen(growth, channels+i*growth, 3)
	}
	weights[4] = gen(channels, channels+4*growth, 3)
	return weights
}

// distillationBlockWeights builds the eight weight sets of a
// ResidualFeatureDistillationBlock from a per-conv generator.
func distillationBlockWeights(channels int, gen func(out, in, k int) ConvWeights) [8]ConvWeights {
	distilled := channels / 2
	return [8]ConvWeights{
		gen(distilled, channels, 1),   // conv1_distilled
		gen(channels, channels, 3),    // conv1_remaining
		gen(distilled, channels, 1),   // conv2_distilled
		gen(channels, channels, 3),    // conv2_remaining
		gen(distilled, channels, 1),   // conv3_distilled
		gen(channels, channels, 3),    // conv3_remaining
		gen(distilled, channels, 3),   // conv4
		gen(channels, 4*distilled, 1), // conv5
	}
}

// rampTensor fills a tensor with a deterministic non-uniform pattern.
func rampTensor(shape tensor.Shape) *tensor.Tensor {
	t := tensor.Zeros(shape)
	data := t.Data()
	for i := range data {
		data[i] = float32(i%13)*0.25 - 1.5
	}
	return t
}
