// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import "github.com/lubkoll/dune-istl-cg/mixin"

// NewRCG creates a Step implementing Regularized CG: whenever the
// search direction's curvature (dx,A*dx) is too small or negative, a
// positive shift is added to it (and accumulated in
// Cache.ShiftAccumulated) instead of stopping. Use RCG when A may be
// only weakly indefinite; for operators that should instead abandon a
// bad step, use NewTCG or NewTRCG.
func NewRCG() *Step {
	return &Step{
		Precondition: NewApplyPreconditioner(),
		Direction:    NewPlainSearchDirection(),
		Scale:        NewRegularizingScaling(false),
		Update:       UpdateIterate{},
		Truncation:   NoTruncation{},
		Verbosity:    mixin.NewVerbosity(0),
	}
}
