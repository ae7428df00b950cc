package tensor

// ConcatChannels concatenates tensors along the channel axis, in argument
// order: the output channel layout is [t0's channels..., t1's channels...]
// and so on.
//
// All tensors must agree on N, H and W; a mismatch returns a *ShapeError.
func ConcatChannels(tensors ...*Tensor) (*Tensor, error) {
	if len(tensors) == 0 {
		return nil, shapeErrorf("concat", "at least one tensor required")
	}
	if len(tensors) == 1 {
		return tensors[0].Clone(), nil
	}

	first := tensors[0].shape
	totalChannels := 0
	for i, t := range tensors {
		s := t.shape
		if s[0] != first[0] || s[2] != first[2] || s[3] != first[3] {
			return nil, shapeErrorf("concat", "tensor %d has shape %v, want (N,H,W) of %v", i, s, first)
		}
		totalChannels += s[1]
	}

	result := Zeros(Shape{first[0], totalChannels, first[2], first[3]})

	// Per batch element, each input's channel block is contiguous in NCHW
	// row-major layout, so concatenation is a sequence of block copies.
	plane := first[2] * first[3]
	dst := 0
	for n := 0; n < first[0]; n++ {
		for _, t := range tensors {
			block := t.shape[1] * plane
			copy(result.data[dst:dst+block], t.data[n*block:(n+1)*block])
			dst += block
		}
	}
	return result, nil
}

// NarrowChannels returns a new tensor holding channels [from, to) of x.
// The result owns a fresh buffer; it never aliases x.
// Returns a *ShapeError if the range is empty or out of bounds.
func NarrowChannels(x *Tensor, from, to int) (*Tensor, error) {
	if from < 0 || to > x.shape[1] || from >= to {
		return nil, shapeErrorf("narrow", "channel range [%d, %d) invalid for %d channels", from, to, x.shape[1])
	}

	result := Zeros(Shape{x.shape[0], to - from, x.shape[2], x.shape[3]})

	plane := x.shape[2] * x.shape[3]
	srcBlock := x.shape[1] * plane
	dstBlock := (to - from) * plane
	for n := 0; n < x.shape[0]; n++ {
		src := n*srcBlock + from*plane
		copy(result.data[n*dstBlock:(n+1)*dstBlock], x.data[src:src+dstBlock])
	}
	return result, nil
}
