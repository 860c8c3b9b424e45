// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixin

import "math"

// Eps carries the maximal attainable accuracy ε used to guard against
// floating-point noise (e.g. the regularization detection threshold √ε
// used by RCG/TRCG, or the accumulated-energy floor below which
// RelativeEnergyError falls back to a residual-based check).
type Eps struct {
	v *Value[float64]
}

// NewEps creates an Eps mixin. eps must be strictly positive.
func NewEps(eps float64) *Eps {
	if eps <= 0 {
		panic("mixin: eps must be positive")
	}
	return &Eps{v: NewValue(eps)}
}

// Eps returns ε.
func (e *Eps) Eps() float64 { return e.v.Get() }

// SqrtEps returns √ε.
func (e *Eps) SqrtEps() float64 { return math.Sqrt(e.v.Get()) }

// CbrtEps returns ε^(1/3).
func (e *Eps) CbrtEps() float64 { return math.Cbrt(e.v.Get()) }

// SetEps sets ε on e and every mixin connected to it.
func (e *Eps) SetEps(eps float64) {
	if eps <= 0 {
		panic("mixin: eps must be positive")
	}
	e.v.Set(eps)
}

// Connect subscribes e and other to each other.
func (e *Eps) Connect(other *Eps) { e.v.Connect(other.v) }

// AbsoluteAccuracy carries an absolute stopping tolerance.
type AbsoluteAccuracy struct {
	v *Value[float64]
}

// NewAbsoluteAccuracy creates an AbsoluteAccuracy mixin. accuracy must
// be non-negative.
func NewAbsoluteAccuracy(accuracy float64) *AbsoluteAccuracy {
	if accuracy < 0 {
		panic("mixin: absolute accuracy must be non-negative")
	}
	return &AbsoluteAccuracy{v: NewValue(accuracy)}
}

// AbsoluteAccuracy returns the absolute accuracy.
func (a *AbsoluteAccuracy) AbsoluteAccuracy() float64 { return a.v.Get() }

// SetAbsoluteAccuracy sets the absolute accuracy on a and every mixin
// connected to it.
func (a *AbsoluteAccuracy) SetAbsoluteAccuracy(accuracy float64) {
	if accuracy < 0 {
		panic("mixin: absolute accuracy must be non-negative")
	}
	a.v.Set(accuracy)
}

// Connect subscribes a and other to each other.
func (a *AbsoluteAccuracy) Connect(other *AbsoluteAccuracy) { a.v.Connect(other.v) }

// RelativeAccuracy carries a relative stopping tolerance.
type RelativeAccuracy struct {
	v *Value[float64]
}

// NewRelativeAccuracy creates a RelativeAccuracy mixin. accuracy must
// be non-negative.
func NewRelativeAccuracy(accuracy float64) *RelativeAccuracy {
	if accuracy < 0 {
		panic("mixin: relative accuracy must be non-negative")
	}
	return &RelativeAccuracy{v: NewValue(accuracy)}
}

// RelativeAccuracy returns the relative accuracy.
func (a *RelativeAccuracy) RelativeAccuracy() float64 { return a.v.Get() }

// SetRelativeAccuracy sets the relative accuracy on a and every mixin
// connected to it.
func (a *RelativeAccuracy) SetRelativeAccuracy(accuracy float64) {
	if accuracy < 0 {
		panic("mixin: relative accuracy must be non-negative")
	}
	a.v.Set(accuracy)
}

// Connect subscribes a and other to each other.
func (a *RelativeAccuracy) Connect(other *RelativeAccuracy) { a.v.Connect(other.v) }

// IterativeRefinements carries the number of fixed-point refinements
// ApplyPreconditioner performs after the initial preconditioner solve.
type IterativeRefinements struct {
	v *Value[int]
}

// NewIterativeRefinements creates an IterativeRefinements mixin. count
// must be non-negative.
func NewIterativeRefinements(count int) *IterativeRefinements {
	if count < 0 {
		panic("mixin: iterative refinement count must be non-negative")
	}
	return &IterativeRefinements{v: NewValue(count)}
}

// IterativeRefinements returns the configured refinement count.
func (r *IterativeRefinements) IterativeRefinements() int { return r.v.Get() }

// SetIterativeRefinements sets the refinement count on r and every
// mixin connected to it.
func (r *IterativeRefinements) SetIterativeRefinements(count int) {
	if count < 0 {
		panic("mixin: iterative refinement count must be non-negative")
	}
	r.v.Set(count)
}

// Connect subscribes r and other to each other.
func (r *IterativeRefinements) Connect(other *IterativeRefinements) { r.v.Connect(other.v) }

// MaxSteps carries the step-count limit of the cg driver (cg.Method).
type MaxSteps struct {
	v *Value[int]
}

// NewMaxSteps creates a MaxSteps mixin. n must be non-negative; zero is
// a valid, if degenerate, limit (see the zero-step scenario in the
// driver tests).
func NewMaxSteps(n int) *MaxSteps {
	if n < 0 {
		panic("mixin: max steps must be non-negative")
	}
	return &MaxSteps{v: NewValue(n)}
}

// MaxSteps returns the step-count limit.
func (m *MaxSteps) MaxSteps() int { return m.v.Get() }

// SetMaxSteps sets the step-count limit on m and every mixin connected
// to it.
func (m *MaxSteps) SetMaxSteps(n int) {
	if n < 0 {
		panic("mixin: max steps must be non-negative")
	}
	m.v.Set(n)
}

// Connect subscribes m and other to each other.
func (m *MaxSteps) Connect(other *MaxSteps) { m.v.Connect(other.v) }

// Verbosity carries the diagnostic verbosity level: 0 is silent, 1
// prints a final summary, 2 additionally prints per-iteration data.
type Verbosity struct {
	v *Value[int]
}

// NewVerbosity creates a Verbosity mixin.
func NewVerbosity(level int) *Verbosity {
	if level < 0 {
		panic("mixin: verbosity must be non-negative")
	}
	return &Verbosity{v: NewValue(level)}
}

// Verbosity returns the verbosity level.
func (v *Verbosity) Verbosity() int { return v.v.Get() }

// SetVerbosity sets the verbosity level on v and every mixin connected
// to it.
func (v *Verbosity) SetVerbosity(level int) {
	if level < 0 {
		panic("mixin: verbosity must be non-negative")
	}
	v.v.Set(level)
}

// Connect subscribes v and other to each other.
func (v *Verbosity) Connect(other *Verbosity) { v.v.Connect(other.v) }
