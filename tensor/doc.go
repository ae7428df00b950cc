// Copyright 2026 The ESRGan Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense NCHW feature-map containers and the pure
// elementwise operations the super-resolution blocks are built from.
//
// # Overview
//
// Tensors are 4-dimensional (batch, channels, height, width) float32 arrays
// in row-major layout. This package provides:
//   - Shape-checked construction and element access
//   - Pure elementwise operations: Add, Scale, LeakyReLU
//   - Channel-axis concatenation and narrowing
//
// # Functional style
//
// Every operation allocates a fresh output tensor and never mutates or
// aliases its inputs. This makes concurrent forward passes over shared
// weight state safe without synchronization: a tensor is only ever written
// by the operation that created it.
//
// # Errors
//
// Operations that combine tensors return a *ShapeError when operand shapes
// are incompatible. Shape errors are deterministic caller bugs: retrying the
// same call always fails the same way, so callers should propagate them
// rather than retry.
//
// # Basic Usage
//
//	x, err := tensor.FromSlice(data, tensor.Shape{1, 3, 64, 64})
//	if err != nil {
//	    return err
//	}
//	activated := tensor.LeakyReLU(x, 0.2)
//	both, err := tensor.ConcatChannels(x, activated)
package tensor
