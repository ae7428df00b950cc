// Package tensor provides the dense NCHW feature-map container and the pure
// elementwise operations the network blocks are composed from.
//
// Tensors are functional: every operation allocates a fresh output buffer and
// never aliases or mutates its inputs. The only aliasing entry point is Data(),
// which exists for operators and tests that fill buffers in bulk.
package tensor

import "fmt"

// Tensor is a dense 4D feature map in NCHW layout backed by a flat,
// row-major float32 buffer.
//
// Invariant: len(data) == N*C*H*W. A Tensor owns its buffer exclusively;
// constructors and operations always copy incoming data.
type Tensor struct {
	shape  Shape
	stride []int
	data   []float32
}

// New creates a zero-filled tensor with the given NCHW shape.
func New(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &Tensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]float32, shape.NumElements()),
	}, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's own buffer.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	t, err := New(shape)
	if err != nil {
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Batch returns the batch dimension N.
func (t *Tensor) Batch() int { return t.shape[0] }

// Channels returns the channel dimension C.
func (t *Tensor) Channels() int { return t.shape[1] }

// Height returns the spatial height H.
func (t *Tensor) Height() int { return t.shape[2] }

// Width returns the spatial width W.
func (t *Tensor) Width() int { return t.shape[3] }

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the flat row-major buffer.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float32 {
	return t.data
}

// At returns the element at (n, c, h, w).
// Panics if any index is out of bounds.
func (t *Tensor) At(n, c, h, w int) float32 {
	return t.data[t.offset(n, c, h, w)]
}

// Set sets the element at (n, c, h, w).
// Panics if any index is out of bounds.
func (t *Tensor) Set(value float32, n, c, h, w int) {
	t.data[t.offset(n, c, h, w)] = value
}

func (t *Tensor) offset(indices ...int) int {
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.stride[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor with its own buffer.
func (t *Tensor) Clone() *Tensor {
	clone := &Tensor{
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
		data:   make([]float32, len(t.data)),
	}
	copy(clone.data, t.data)
	return clone
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor[float32]%v", t.shape)
}
