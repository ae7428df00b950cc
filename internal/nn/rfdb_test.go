package nn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Firas-DR/ESRGan/internal/tensor"
)

// recordingGate captures what the block hands to its attention collaborator.
type recordingGate struct {
	calls int
	shape tensor.Shape
}

func (g *recordingGate) Forward(x *tensor.Tensor) (*tensor.Tensor, error) {
	g.calls++
	g.shape = x.Shape().Clone()
	return x.Clone(), nil
}

// widenGate violates the gate contract by growing the channel axis.
type widenGate struct{}

func (widenGate) Forward(x *tensor.Tensor) (*tensor.Tensor, error) {
	s := x.Shape()
	return tensor.Zeros(tensor.Shape{s[0], s[1] + 1, s[2], s[3]}), nil
}

func TestNewResidualFeatureDistillationBlock_BadConfig(t *testing.T) {
	var cfgErr *ConfigError

	// Odd channel counts cannot split into an exact distilled half.
	_, err := NewResidualFeatureDistillationBlock(7, distillationBlockWeights(8, zeroWeights), Identity{})
	require.True(t, errors.As(err, &cfgErr))

	_, err = NewResidualFeatureDistillationBlock(8, distillationBlockWeights(8, zeroWeights), nil)
	require.True(t, errors.As(err, &cfgErr))
}

func TestNewResidualFeatureDistillationBlock_FusionWidth(t *testing.T) {
	// For channels=64 the fusion convolution must consume exactly
	// 4*distilled = 128 channels; any other conv5 width is rejected.
	weights := distillationBlockWeights(64, zeroWeights)
	block, err := NewResidualFeatureDistillationBlock(64, weights, Identity{})
	require.NoError(t, err)
	assert.Equal(t, 32, block.DistilledChannels())
	assert.Equal(t, 64, block.RemainingChannels())

	weights[7] = zeroWeights(64, 64, 1)
	_, err = NewResidualFeatureDistillationBlock(64, weights, Identity{})

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr), "expected *ConfigError, got %v", err)
	assert.Contains(t, err.Error(), "conv5")
}

func TestResidualFeatureDistillationBlock_ShapePreserved(t *testing.T) {
	block, err := NewResidualFeatureDistillationBlock(8, distillationBlockWeights(8, patternWeights), Identity{})
	require.NoError(t, err)

	x := rampTensor(tensor.Shape{2, 8, 6, 6})
	out, err := block.Forward(x)
	require.NoError(t, err)

	assert.True(t, out.Shape().Equal(x.Shape()), "got %v, want %v", out.Shape(), x.Shape())
}

func TestResidualFeatureDistillationBlock_GateSeesFusedMap(t *testing.T) {
	gate := &recordingGate{}
	block, err := NewResidualFeatureDistillationBlock(8, distillationBlockWeights(8, patternWeights), gate)
	require.NoError(t, err)

	x := rampTensor(tensor.Shape{1, 8, 5, 5})
	_, err = block.Forward(x)
	require.NoError(t, err)

	// The gate runs exactly once, on the fused map at full block width.
	assert.Equal(t, 1, gate.calls)
	assert.True(t, gate.shape.Equal(tensor.Shape{1, 8, 5, 5}), "gate saw %v", gate.shape)
}

func TestResidualFeatureDistillationBlock_GateShapeViolation(t *testing.T) {
	block, err := NewResidualFeatureDistillationBlock(8, distillationBlockWeights(8, patternWeights), widenGate{})
	require.NoError(t, err)

	_, err = block.Forward(rampTensor(tensor.Shape{1, 8, 4, 4}))

	var shapeErr *tensor.ShapeError
	require.True(t, errors.As(err, &shapeErr), "expected *tensor.ShapeError, got %v", err)
}

func TestResidualFeatureDistillationBlock_ZeroWeights(t *testing.T) {
	// All-zero convolutions zero out both paths, so the fused map and the
	// identity-gated output are zero everywhere.
	block, err := NewResidualFeatureDistillationBlock(4, distillationBlockWeights(4, zeroWeights), Identity{})
	require.NoError(t, err)

	out, err := block.Forward(rampTensor(tensor.Shape{1, 4, 4, 4}))
	require.NoError(t, err)

	for i, v := range out.Data() {
		assert.Zero(t, v, "position %d", i)
	}
}

// TestResidualFeatureDistillationBlock_Golden pins the stage arithmetic with
// channels=2 (distilled=1), an input of ones, center-tap 3x3 kernels and
// all-ones 1x1 kernels:
//
//	d1 = 2;  r1 = lrelu(2 + 1)  = 3
//	d2 = 6;  r2 = lrelu(6 + 3)  = 9
//	d3 = 18; r3 = lrelu(18 + 9) = 27
//	r4 = 54
//	fused = conv5([2, 6, 18, 54]) = 80 on both output channels
func TestResidualFeatureDistillationBlock_Golden(t *testing.T) {
	gen := func(out, in, k int) ConvWeights {
		if k == 1 {
			return ConvWeights{
				Weight: tensor.Ones(tensor.Shape{out, in, 1, 1}),
				Bias:   make([]float32, out),
			}
		}
		return centerTapWeights(out, in, k)
	}

	block, err := NewResidualFeatureDistillationBlock(2, distillationBlockWeights(2, gen), Identity{})
	require.NoError(t, err)

	x := tensor.Ones(tensor.Shape{1, 2, 4, 4})
	out, err := block.Forward(x)
	require.NoError(t, err)
	require.True(t, out.Shape().Equal(x.Shape()))

	for i, v := range out.Data() {
		assert.InDelta(t, 80.0, v, 1e-3, "position %d", i)
	}
}
