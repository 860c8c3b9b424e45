// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import "github.com/lubkoll/dune-istl-cg/mixin"

// NewCG creates a Step implementing the plain preconditioned conjugate
// gradient method (Hestenes & Stiefel, 1952). It assumes A is
// symmetric positive-definite; for operators that may be indefinite,
// use NewRCG, NewTCG or NewTRCG instead.
func NewCG() *Step {
	return &Step{
		Precondition: NewApplyPreconditioner(),
		Direction:    NewPlainSearchDirection(),
		Scale:        PlainScaling{},
		Update:       UpdateIterate{},
		Truncation:   NoTruncation{},
		Verbosity:    mixin.NewVerbosity(0),
	}
}
