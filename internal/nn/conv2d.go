package nn

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/Firas-DR/ESRGan/internal/parallel"
	"github.com/Firas-DR/ESRGan/internal/tensor"
)

// Conv2D is a learned 2D convolution with stride 1 and "same" padding.
//
// Input shape:  [batch, in_channels, height, width]
// Weight shape: [out_channels, in_channels, k, k]
// Bias shape:   [out_channels]
// Output shape: [batch, out_channels, height, width]
//
// The kernel size must be odd; padding is fixed at (k-1)/2 so the output
// spatial size always equals the input spatial size. No activation is applied
// inside the convolution.
//
// The forward pass uses the im2col transform followed by a float32 GEMM:
//  1. Transform input patches into columns: [N*H*W, C_in*k*k]
//  2. View the kernel as a matrix: [C_out, C_in*k*k]
//  3. Multiply: [C_out, C_in*k*k] @ [C_in*k*k, N*H*W] -> [C_out, N*H*W]
//  4. Rearrange into [N, C_out, H, W] and add the per-channel bias
type Conv2D struct {
	inChannels  int
	outChannels int
	kernelSize  int
	padding     int

	weight *tensor.Tensor // [out_channels, in_channels, k, k], private copy
	bias   []float32      // [out_channels], private copy

	par parallel.Config
}

// NewConv2D creates a convolution from externally supplied weights.
//
// Returns a *ConfigError if the channel counts are invalid, the kernel size
// is not positive and odd, or the weight/bias shapes do not match the
// declared configuration. The weight tensor and bias slice are copied, so
// the layer's parameters are immutable after construction.
func NewConv2D(inChannels, outChannels, kernelSize int, w ConvWeights) (*Conv2D, error) {
	if inChannels <= 0 || outChannels <= 0 {
		return nil, configErrorf("conv2d", "invalid channels in=%d, out=%d", inChannels, outChannels)
	}
	if kernelSize <= 0 || kernelSize%2 == 0 {
		return nil, configErrorf("conv2d", "kernel size %d must be odd for same-size output", kernelSize)
	}
	if w.Weight == nil {
		return nil, configErrorf("conv2d", "weight tensor is nil")
	}
	wantShape := tensor.Shape{outChannels, inChannels, kernelSize, kernelSize}
	if !w.Weight.Shape().Equal(wantShape) {
		return nil, configErrorf("conv2d", "weight shape %v does not match declared %v", w.Weight.Shape(), wantShape)
	}
	if len(w.Bias) != outChannels {
		return nil, configErrorf("conv2d", "bias has %d entries, want %d", len(w.Bias), outChannels)
	}

	return &Conv2D{
		inChannels:  inChannels,
		outChannels: outChannels,
		kernelSize:  kernelSize,
		padding:     (kernelSize - 1) / 2,
		weight:      w.Weight.Clone(),
		bias:        append([]float32(nil), w.Bias...),
		par:         parallel.DefaultConfig(),
	}, nil
}

// Forward applies the convolution to x.
// Returns a *tensor.ShapeError if x's channel count does not match the
// layer's declared input channels.
func (c *Conv2D) Forward(x *tensor.Tensor) (*tensor.Tensor, error) {
	if x.Channels() != c.inChannels {
		return nil, &tensor.ShapeError{
			Op:  "conv2d",
			Msg: fmt.Sprintf("input has %d channels, layer expects %d", x.Channels(), c.inChannels),
		}
	}

	n, h, w := x.Batch(), x.Height(), x.Width()
	out := tensor.Zeros(tensor.Shape{n, c.outChannels, h, w})

	colWidth := c.inChannels * c.kernelSize * c.kernelSize
	colHeight := n * h * w
	colBuf := make([]float32, colHeight*colWidth)
	c.im2col(colBuf, x)

	// kernel [C_out, colWidth] @ colBuf^T [colWidth, colHeight].
	prod := make([]float32, c.outChannels*colHeight)
	blas32.Gemm(blas.NoTrans, blas.Trans, 1,
		blas32.General{Rows: c.outChannels, Cols: colWidth, Stride: colWidth, Data: c.weight.Data()},
		blas32.General{Rows: colHeight, Cols: colWidth, Stride: colWidth, Data: colBuf},
		0,
		blas32.General{Rows: c.outChannels, Cols: colHeight, Stride: colHeight, Data: prod})

	// Rearrange [C_out, N*H*W] into NCHW and add the per-channel bias.
	plane := h * w
	outData := out.Data()
	parallel.ForBatch(n, c.outChannels, func(bn, oc int) {
		src := oc*colHeight + bn*plane
		dst := bn*c.outChannels*plane + oc*plane
		b := c.bias[oc]
		for i := 0; i < plane; i++ {
			outData[dst+i] = prod[src+i] + b
		}
	}, c.par)

	return out, nil
}

// im2col fills colBuf with one row per output position, each row holding the
// zero-padded input patch under the kernel window at that position.
func (c *Conv2D) im2col(colBuf []float32, x *tensor.Tensor) {
	n, ch, h, w := x.Batch(), x.Channels(), x.Height(), x.Width()
	k := c.kernelSize
	pad := c.padding
	colWidth := ch * k * k
	data := x.Data()

	parallel.For(n*h*w, func(col int) {
		bn := col / (h * w)
		rem := col % (h * w)
		outH := rem / w
		outW := rem % w

		hStart := outH - pad
		wStart := outW - pad
		bufIdx := col * colWidth

		for ci := 0; ci < ch; ci++ {
			for kh := 0; kh < k; kh++ {
				hh := hStart + kh
				if hh < 0 || hh >= h {
					// Entire kernel row falls in the zero padding;
					// colBuf is already zero.
					bufIdx += k
					continue
				}
				rowBase := bn*ch*h*w + ci*h*w + hh*w
				for kw := 0; kw < k; kw++ {
					ww := wStart + kw
					if ww >= 0 && ww < w {
						colBuf[bufIdx] = data[rowBase+ww]
					}
					bufIdx++
				}
			}
		}
	}, c.par)
}

// InChannels returns the declared input channel count.
func (c *Conv2D) InChannels() int { return c.inChannels }

// OutChannels returns the declared output channel count.
func (c *Conv2D) OutChannels() int { return c.outChannels }

// KernelSize returns the square kernel size.
func (c *Conv2D) KernelSize() int { return c.kernelSize }

// Padding returns the derived same-size padding (k-1)/2.
func (c *Conv2D) Padding() int { return c.padding }

// String returns a string representation of the layer.
func (c *Conv2D) String() string {
	return fmt.Sprintf("Conv2D(in_channels=%d, out_channels=%d, kernel_size=%d, stride=1, padding=%d)",
		c.inChannels, c.outChannels, c.kernelSize, c.padding)
}
