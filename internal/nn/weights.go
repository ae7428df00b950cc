package nn

import "github.com/Firas-DR/ESRGan/internal/tensor"

// ConvWeights is the externally supplied parameter pair for one convolution.
//
// Weight has shape (out_channels, in_channels, k, k); Bias has one entry per
// output channel. How the values are produced (checkpoint format, loader) is
// the caller's concern; constructors only check that the shapes match the
// declared channel configuration.
type ConvWeights struct {
	Weight *tensor.Tensor
	Bias   []float32
}
