package tensor

// Add performs element-wise addition of two tensors of identical shape.
// Returns a *ShapeError if the shapes differ in any dimension; there is no
// broadcasting in this core.
func Add(a, b *Tensor) (*Tensor, error) {
	if !a.shape.Equal(b.shape) {
		return nil, shapeErrorf("add", "operand shapes %v and %v do not match", a.shape, b.shape)
	}

	result := Zeros(a.shape)
	out := result.data
	for i, v := range a.data {
		out[i] = v + b.data[i]
	}
	return result, nil
}

// Scale multiplies every element by the scalar k.
func Scale(x *Tensor, k float32) *Tensor {
	result := Zeros(x.shape)
	out := result.data
	for i, v := range x.data {
		out[i] = k * v
	}
	return result
}

// LeakyReLU applies leaky ReLU element-wise: x if x >= 0, else slope*x.
// The input tensor is left untouched.
func LeakyReLU(x *Tensor, slope float32) *Tensor {
	result := Zeros(x.shape)
	in := x.data
	out := result.data
	for i := range in {
		if in[i] >= 0 {
			out[i] = in[i]
		} else {
			out[i] = slope * in[i]
		}
	}
	return result
}
