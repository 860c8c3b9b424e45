// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import (
	"math"

	"github.com/lubkoll/dune-istl-cg/mixin"
)

// Defaults for the regularization parameters RCG and TRCG use to
// repair small or negative curvature. The original source left these
// unparameterized; this package exposes them as tolerances on
// RegularizingScaling. The detection threshold stays at machine-epsilon
// scale (Eps.SqrtEps()), but the repair itself starts at DefaultRegularizationInitial: a shift
// of eps-scale magnitude repairs curvature to eps-scale, which then
// produces an alpha = sigma/dxAdx many orders of magnitude too large for
// sigma of ordinary size. Starting the repair at an O(1) shift and only
// escalating (doubling, up to the cap) when that is not enough keeps
// alpha well-scaled.
const (
	DefaultRegularizationInitial = 1.0
	DefaultRegularizationFactor  = 2.0
	DefaultRegularizationCap     = 10
)

// RegularizingScaling computes the conjugate-gradient scaling
// alpha = sigma/dxAdx, adding a positive shift to dxAdx whenever the
// search direction's curvature is too small or negative:
//
//	threshold := Eps.SqrtEps()*(dx,dx)   // fixed for the step
//	theta := Initial
//	for dxAdx < threshold and escalations < cap:
//	    dxAdx += theta*(dx,dx)
//	    accumulate theta, double theta
//
// The detection threshold uses Eps.SqrtEps() so that only curvature
// indistinguishable from zero at machine precision triggers a repair.
// theta itself starts at Initial rather than at the threshold scale, so
// the repaired dxAdx - and hence alpha - stays near the problem's own
// scale instead of collapsing to eps-scale. theta is reset to Initial
// on every step; only the cumulative shift and escalation count persist
// across the whole solve (see Cache.ShiftAccumulated and
// Cache.Escalations).
//
// RegularizingScaling also implements TruncationPolicy: TRCG plugs the
// same instance in as both its Scale and Truncation policy, so that the
// escalation budget is the single source of truth for whether a step
// must be abandoned. RCG plugs it in only as Scale (with
// NoTruncation as its Truncation policy): if the escalation budget is
// exhausted, RCG reports ErrRhoBreakdown instead of truncating.
type RegularizingScaling struct {
	*mixin.Eps

	// Initial is the magnitude of the first repair shift attempted once
	// curvature is found to be below threshold.
	Initial float64
	// Factor is the multiplier theta is scaled by after each
	// unsuccessful escalation.
	Factor float64
	// Cap is the maximum number of escalations attempted within a
	// single step before giving up.
	Cap int
	// TruncateOnExhaustion, when true, makes ShouldTruncate report
	// true once the escalation budget is exhausted without repairing
	// curvature (TRCG). When false, ShouldTruncate always reports
	// false and Apply instead returns ErrRhoBreakdown on exhaustion
	// (RCG).
	TruncateOnExhaustion bool
}

// NewRegularizingScaling creates a RegularizingScaling policy with the
// package's default initial shift, factor and cap.
func NewRegularizingScaling(truncateOnExhaustion bool) *RegularizingScaling {
	return &RegularizingScaling{
		Eps:                  mixin.NewEps(defaultEps),
		Initial:              DefaultRegularizationInitial,
		Factor:               DefaultRegularizationFactor,
		Cap:                  DefaultRegularizationCap,
		TruncateOnExhaustion: truncateOnExhaustion,
	}
}

// escalate runs the shift-doubling loop described on RegularizingScaling
// against a local copy of dxAdx, returning the repaired curvature and
// whether it succeeded within Cap escalations. The acceptance threshold
// is fixed at the outset (Eps.SqrtEps()*normDx2) and does not move as
// theta escalates; each failed attempt adds a shift of the current theta
// and then doubles theta, so a deeply negative dxAdx needs several
// escalations to clear the threshold while a dxAdx only barely too small
// clears it on the first attempt. When apply is true, the shifts are
// also committed to c.DxAdx, c.ShiftAccumulated and c.Escalations; when
// false (used by ShouldTruncate) c is left unmodified.
func (s *RegularizingScaling) escalate(c *Cache, apply bool) (dxAdx float64, ok bool) {
	dxAdx = c.DxAdx
	normDx2 := c.SP.Dot(c.Dx, c.Dx)
	threshold := s.Eps.SqrtEps() * normDx2
	theta := s.Initial
	for n := 0; dxAdx < threshold; n++ {
		if n >= s.Cap {
			return dxAdx, false
		}
		dxAdx += theta * normDx2
		if apply {
			c.ShiftAccumulated += theta
			c.Escalations++
		}
		theta *= s.Factor
	}
	return dxAdx, true
}

// ShouldTruncate implements TruncationPolicy.
func (s *RegularizingScaling) ShouldTruncate(c *Cache) bool {
	if !s.TruncateOnExhaustion {
		return false
	}
	_, ok := s.escalate(c, false)
	return !ok
}

// Apply implements Scaling.
func (s *RegularizingScaling) Apply(c *Cache) error {
	dxAdx, ok := s.escalate(c, true)
	c.DxAdx = dxAdx
	if !ok {
		return ErrRhoBreakdown
	}
	c.Alpha = c.Sigma / c.DxAdx
	if math.IsNaN(c.Alpha) {
		return ErrInvalidOperator
	}
	return nil
}

const defaultEps = 1e-15
