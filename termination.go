// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import (
	"fmt"
	"math"

	"github.com/lubkoll/dune-istl-cg/mixin"
)

// TerminationCriterion observes a Step's interface after each
// iteration and decides whether a solve should continue.
type TerminationCriterion interface {
	// Init is queried once against the step's initial, zero-step
	// state; it reports whether the initial residual already
	// satisfies the stopping tolerance (the zero-step fast path).
	Init(step *Step) bool

	// Query is called after each completed step. It returns Converged
	// once the stopping tolerance is met, Continue otherwise, or a
	// non-nil error if a numerical breakdown (e.g. a NaN residual
	// norm) was observed.
	Query(step *Step) (Status, error)
}

// ResidualBased converges when
//
//	residualNorm <= max(absAccuracy, relAccuracy*initialResidualNorm).
type ResidualBased struct {
	*mixin.AbsoluteAccuracy
	*mixin.RelativeAccuracy

	initialResidualNorm float64
	initialized         bool
}

// NewResidualBased creates a ResidualBased termination criterion with
// default tolerances.
func NewResidualBased() *ResidualBased {
	return &ResidualBased{
		AbsoluteAccuracy: mixin.NewAbsoluteAccuracy(1e-15),
		RelativeAccuracy: mixin.NewRelativeAccuracy(1e-12),
	}
}

// Init implements TerminationCriterion.
func (r *ResidualBased) Init(step *Step) bool {
	r.initialResidualNorm = step.ResidualNorm()
	r.initialized = true
	return r.converged(step)
}

// Query implements TerminationCriterion.
func (r *ResidualBased) Query(step *Step) (Status, error) {
	if !r.initialized {
		r.Init(step)
	}
	if math.IsNaN(step.ResidualNorm()) {
		return Continue, fmt.Errorf("residual-based termination: %w", ErrInvalidOperator)
	}
	if r.converged(step) {
		return Converged, nil
	}
	return Continue, nil
}

func (r *ResidualBased) converged(step *Step) bool {
	tol := math.Max(r.AbsoluteAccuracy.AbsoluteAccuracy(), r.RelativeAccuracy.RelativeAccuracy()*r.initialResidualNorm)
	return step.ResidualNorm() <= tol
}

// RelativeEnergyError tracks the relative energy-error estimate
//
//	E_n = sqrt( sum_{i=n-L+1..n} tau_i / sum_{i=0..n} tau_i ),  tau_i = alpha_i*sigma_i
//
// over a trailing lookahead window of length L, converging once
// E_n <= relAccuracy and at least L steps have been taken. It falls
// back to a residual-based check whenever the accumulated energy is
// too small to divide by, which happens when b is the zero vector.
type RelativeEnergyError struct {
	*mixin.RelativeAccuracy
	*mixin.Eps

	lookahead int
	window    []float64
	total     float64
	n         int

	fallback *ResidualBased
}

// NewRelativeEnergyError creates a RelativeEnergyError termination
// criterion with the given lookahead window length. A non-positive
// lookahead is replaced by the package default of 5.
func NewRelativeEnergyError(lookahead int) *RelativeEnergyError {
	if lookahead <= 0 {
		lookahead = 5
	}
	return &RelativeEnergyError{
		RelativeAccuracy: mixin.NewRelativeAccuracy(1e-8),
		Eps:              mixin.NewEps(defaultEps),
		lookahead:        lookahead,
		fallback:         NewResidualBased(),
	}
}

// Init implements TerminationCriterion.
func (e *RelativeEnergyError) Init(step *Step) bool {
	e.fallback.Init(step)
	return e.fallback.converged(step)
}

// Query implements TerminationCriterion.
func (e *RelativeEnergyError) Query(step *Step) (Status, error) {
	if math.IsNaN(step.ResidualNorm()) {
		return Continue, fmt.Errorf("relative-energy-error termination: %w", ErrInvalidOperator)
	}

	tau := step.Alpha() * step.PreconditionedResidualNorm()
	e.total += tau
	e.window = append(e.window, tau)
	if len(e.window) > e.lookahead {
		e.window = e.window[1:]
	}
	e.n++

	if e.total <= e.Eps.Eps() {
		if e.fallback.converged(step) {
			return Converged, nil
		}
		return Continue, nil
	}

	if e.n < e.lookahead {
		return Continue, nil
	}

	var windowSum float64
	for _, t := range e.window {
		windowSum += t
	}
	errEst := math.Sqrt(windowSum / e.total)
	if errEst <= e.RelativeAccuracy.RelativeAccuracy() {
		return Converged, nil
	}
	return Continue, nil
}
