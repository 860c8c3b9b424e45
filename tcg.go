// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import "github.com/lubkoll/dune-istl-cg/mixin"

// NonPositiveCurvature truncates a step as soon as the search
// direction's energy length (dx,A*dx) is non-positive, without
// attempting any regularization. It is TCG's TruncationPolicy.
type NonPositiveCurvature struct{}

// ShouldTruncate implements TruncationPolicy.
func (NonPositiveCurvature) ShouldTruncate(c *Cache) bool { return c.DxAdx <= 0 }

// NewTCG creates a Step implementing Truncated CG: the step is
// abandoned (the iterate for that step is left unchanged) as soon as
// non-positive curvature is detected. Use TCG inside a trust-region
// method, where an indefinite direction should be discarded rather than
// repaired.
func NewTCG() *Step {
	return &Step{
		Precondition: NewApplyPreconditioner(),
		Direction:    NewPlainSearchDirection(),
		Scale:        PlainScaling{},
		Update:       UpdateIterate{},
		Truncation:   NonPositiveCurvature{},
		Verbosity:    mixin.NewVerbosity(0),
	}
}
