// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import "github.com/lubkoll/dune-istl-cg/mixin"

// NewTRCG creates a Step implementing Truncated-Regularized CG: small
// positive curvature is repaired with the same escalating shift RCG
// uses, but once the escalation budget (RegularizingScaling.Cap) is
// exhausted without recovering positive curvature, the step is
// truncated instead of returning an error.
func NewTRCG() *Step {
	scale := NewRegularizingScaling(true)
	return &Step{
		Precondition: NewApplyPreconditioner(),
		Direction:    NewPlainSearchDirection(),
		Scale:        scale,
		Update:       UpdateIterate{},
		Truncation:   scale,
		Verbosity:    mixin.NewVerbosity(0),
	}
}
