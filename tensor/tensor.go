// Copyright 2026 The ESRGan Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense NCHW feature maps the
// network blocks operate on.
//
// Example:
//
//	x := tensor.Full(tensor.Shape{1, 64, 32, 32}, 1.0)
//	y := tensor.LeakyReLU(x, 0.2)
//	z, err := tensor.Add(x, y)
package tensor

import (
	"github.com/Firas-DR/ESRGan/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor, always (N, C, H, W) here.
type Shape = tensor.Shape

// Tensor is a dense 4D feature map backed by a flat row-major float32 buffer.
type Tensor = tensor.Tensor

// ShapeError reports operands whose shapes are incompatible for an operation.
type ShapeError = tensor.ShapeError

// New creates a zero-filled tensor with the given NCHW shape.
func New(shape Shape) (*Tensor, error) {
	return tensor.New(shape)
}

// FromSlice creates a tensor by copying data into a fresh buffer.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float32) *Tensor {
	return tensor.Full(shape, value)
}

// Add performs element-wise addition of two tensors of identical shape.
func Add(a, b *Tensor) (*Tensor, error) {
	return tensor.Add(a, b)
}

// Scale multiplies every element by the scalar k.
func Scale(x *Tensor, k float32) *Tensor {
	return tensor.Scale(x, k)
}

// LeakyReLU applies leaky ReLU element-wise: x if x >= 0, else slope*x.
func LeakyReLU(x *Tensor, slope float32) *Tensor {
	return tensor.LeakyReLU(x, slope)
}

// ConcatChannels concatenates tensors along the channel axis in argument order.
func ConcatChannels(tensors ...*Tensor) (*Tensor, error) {
	return tensor.ConcatChannels(tensors...)
}

// NarrowChannels returns a new tensor holding channels [from, to) of x.
func NarrowChannels(x *Tensor, from, to int) (*Tensor, error) {
	return tensor.NarrowChannels(x, from, to)
}
