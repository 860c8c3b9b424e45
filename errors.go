// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import "errors"

// ErrInvalidOperator is returned by Method.Apply when a precondition
// such as a finite Sigma or DxAdx is violated during the solve. It is
// fatal and surfaced immediately, never retried.
var ErrInvalidOperator = errors.New("cg: invalid operator")

// ErrRhoBreakdown is returned by a Scaling policy when the admissible
// escalation budget of a regularized variant is exhausted without
// recovering positive curvature.
var ErrRhoBreakdown = errors.New("cg: regularization budget exhausted")

// Status is the terminal reason a solve stopped for.
type Status int

const (
	// Continue is the internal "keep iterating" result of a
	// TerminationCriterion query. Method.Apply returns it only
	// together with a non-nil error.
	Continue Status = iota
	// Converged indicates the residual (or relative energy error)
	// satisfied the configured tolerance.
	Converged
	// Truncated indicates TCG or TRCG observed non-positive curvature
	// and stopped before updating the iterate for that step.
	Truncated
	// MaxIterationsReached indicates the step-count limit was reached
	// without convergence. The returned iterate is best-effort.
	MaxIterationsReached
)

// String returns a short human-readable name for s.
func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Converged:
		return "converged"
	case Truncated:
		return "truncated"
	case MaxIterationsReached:
		return "max iterations reached"
	default:
		return "unknown status"
	}
}
