// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/gradtape/internal/tensor"
)

// RawTensor is the untyped storage behind a Tensor: identity, shape and a
// dense row-major float32 buffer.
//
// Most users should use Tensor instead.
type RawTensor = tensor.RawTensor

// ID identifies a tensor in a gradient store.
type ID = tensor.ID

// Phantom is the identity and shape of a tensor without its data.
type Phantom = tensor.Phantom
