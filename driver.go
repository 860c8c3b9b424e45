// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import (
	"fmt"
	"io"
	"os"

	"github.com/lubkoll/dune-istl-cg/mixin"
)

// Stats holds statistics about a solve performed by Method.Apply.
type Stats struct {
	// Steps is the number of completed iterations.
	Steps int
	// ResidualNorm is the final residual norm.
	ResidualNorm float64
	// Status is the terminal reason the solve stopped for.
	Status Status
	// ShiftAccumulated is the cumulative regularization shift RCG or
	// TRCG applied during the solve. It is zero for CG and TCG.
	ShiftAccumulated float64
	// Escalations is the cumulative number of regularization shifts
	// RCG or TRCG applied during the solve.
	Escalations int
}

// Method is the generic iterative driver: it owns the linear operator,
// preconditioner, scalar product, a Step realizing one of the CG
// variants, and a TerminationCriterion, and runs the loop described in
// the package documentation.
type Method struct {
	a  LinearOperator
	p  Preconditioner
	sp ScalarProduct

	step        *Step
	termination TerminationCriterion

	absAccuracy *mixin.AbsoluteAccuracy
	relAccuracy *mixin.RelativeAccuracy
	eps         *mixin.Eps
	refinements *mixin.IterativeRefinements
	*mixin.MaxSteps
	*mixin.Verbosity

	// Output receives verbosity-gated diagnostics. It defaults to
	// os.Stderr and is never a structured logging backend.
	Output io.Writer

	stats Stats
}

// NewMethod creates a Method from a fully assembled Step and
// TerminationCriterion. Use this constructor when you need a CG
// variant and termination criterion combination not covered by
// NewCGMethod, NewRCGMethod, NewTCGMethod or NewTRCGMethod.
func NewMethod(step *Step, termination TerminationCriterion, a LinearOperator, p Preconditioner, sp ScalarProduct) *Method {
	if step == nil || termination == nil {
		panic("cg: nil step or termination criterion")
	}
	if a == nil || p == nil || sp == nil {
		panic("cg: nil operator, preconditioner or scalar product")
	}
	m := &Method{
		a:           a,
		p:           p,
		sp:          sp,
		step:        step,
		termination: termination,
		absAccuracy: mixin.NewAbsoluteAccuracy(1e-15),
		relAccuracy: mixin.NewRelativeAccuracy(1e-12),
		eps:         mixin.NewEps(defaultEps),
		refinements: mixin.NewIterativeRefinements(0),
		MaxSteps:    mixin.NewMaxSteps(1000),
		Verbosity:   mixin.NewVerbosity(0),
		Output:      os.Stderr,
	}
	m.wire()
	return m
}

// wire connects the driver's own tolerance mixins to whichever
// sub-components expose a matching mixin: eps shared with the step's
// RegularizingScaling policy (RCG, TRCG) and with a RelativeEnergyError
// criterion (ApplyPreconditioner carries no eps mixin and is not
// connected to it); absolute and relative accuracy shared between
// driver and termination criterion, including the residual-based
// fallback inside RelativeEnergyError; the iterative-refinement count
// shared with ApplyPreconditioner; verbosity shared between driver and
// step.
func (m *Method) wire() {
	if ap, ok := m.step.Precondition.(*ApplyPreconditioner); ok {
		m.refinements.Connect(ap.IterativeRefinements)
	}
	if rs, ok := m.step.Scale.(*RegularizingScaling); ok {
		m.eps.Connect(rs.Eps)
	}
	switch tc := m.termination.(type) {
	case *ResidualBased:
		m.absAccuracy.Connect(tc.AbsoluteAccuracy)
		m.relAccuracy.Connect(tc.RelativeAccuracy)
	case *RelativeEnergyError:
		m.eps.Connect(tc.Eps)
		m.relAccuracy.Connect(tc.RelativeAccuracy)
		m.absAccuracy.Connect(tc.fallback.AbsoluteAccuracy)
		m.relAccuracy.Connect(tc.fallback.RelativeAccuracy)
	}
	if m.step.Verbosity != nil {
		m.Verbosity.Connect(m.step.Verbosity)
	}
}

// NewCGMethod creates a Method solving Ax=b with plain CG and a
// RelativeEnergyError termination criterion, mirroring the package's
// default variant/criterion pairing.
func NewCGMethod(a LinearOperator, p Preconditioner, sp ScalarProduct, relAccuracy float64, maxSteps, verbosity int, eps float64) *Method {
	return newConvenienceMethod(NewCG(), a, p, sp, relAccuracy, maxSteps, verbosity, eps)
}

// NewRCGMethod creates a Method solving Ax=b with Regularized CG.
func NewRCGMethod(a LinearOperator, p Preconditioner, sp ScalarProduct, relAccuracy float64, maxSteps, verbosity int, eps float64) *Method {
	return newConvenienceMethod(NewRCG(), a, p, sp, relAccuracy, maxSteps, verbosity, eps)
}

// NewTCGMethod creates a Method solving Ax=b with Truncated CG.
func NewTCGMethod(a LinearOperator, p Preconditioner, sp ScalarProduct, relAccuracy float64, maxSteps, verbosity int, eps float64) *Method {
	return newConvenienceMethod(NewTCG(), a, p, sp, relAccuracy, maxSteps, verbosity, eps)
}

// NewTRCGMethod creates a Method solving Ax=b with Truncated-Regularized CG.
func NewTRCGMethod(a LinearOperator, p Preconditioner, sp ScalarProduct, relAccuracy float64, maxSteps, verbosity int, eps float64) *Method {
	return newConvenienceMethod(NewTRCG(), a, p, sp, relAccuracy, maxSteps, verbosity, eps)
}

func newConvenienceMethod(step *Step, a LinearOperator, p Preconditioner, sp ScalarProduct, relAccuracy float64, maxSteps, verbosity int, eps float64) *Method {
	m := NewMethod(step, NewRelativeEnergyError(5), a, p, sp)
	m.SetRelAccuracy(relAccuracy)
	m.SetMaxSteps(maxSteps)
	m.SetVerbosity(verbosity)
	m.SetEps(eps)
	return m
}

// SetRelAccuracy sets the relative accuracy on the driver and every
// connected termination-criterion mixin.
func (m *Method) SetRelAccuracy(v float64) { m.relAccuracy.SetRelativeAccuracy(v) }

// RelAccuracy returns the driver's relative accuracy.
func (m *Method) RelAccuracy() float64 { return m.relAccuracy.RelativeAccuracy() }

// SetAbsAccuracy sets the absolute accuracy on the driver and every
// connected termination-criterion mixin.
func (m *Method) SetAbsAccuracy(v float64) { m.absAccuracy.SetAbsoluteAccuracy(v) }

// AbsAccuracy returns the driver's absolute accuracy.
func (m *Method) AbsAccuracy() float64 { return m.absAccuracy.AbsoluteAccuracy() }

// SetEps sets the maximal attainable accuracy on the driver and every
// connected mixin (step's regularization policy, termination criterion).
func (m *Method) SetEps(v float64) { m.eps.SetEps(v) }

// Eps returns the driver's maximal attainable accuracy.
func (m *Method) Eps() float64 { return m.eps.Eps() }

// SetIterativeRefinements sets the number of fixed-point refinements
// ApplyPreconditioner performs on the driver's step.
func (m *Method) SetIterativeRefinements(k int) { m.refinements.SetIterativeRefinements(k) }

// Step returns the Step driven by m.
func (m *Method) Step() *Step { return m.step }

// Stats returns statistics for the most recently completed call to
// Apply.
func (m *Method) Stats() Stats { return m.stats }

// Shift returns the cumulative regularization shift RCG or TRCG
// applied during the most recent solve.
func (m *Method) Shift() float64 { return m.stats.ShiftAccumulated }

// Escalations returns the number of regularization shifts RCG or TRCG
// applied during the most recent solve.
func (m *Method) Escalations() int { return m.stats.Escalations }

// Apply solves Ax=b, mutating x in place to hold the solution and b in
// place to serve as the residual buffer throughout the solve (this
// aliasing is deliberate). It returns the terminal reason the solve
// stopped for; when it also returns a non-nil error, the status is
// Continue.
func (m *Method) Apply(x, b Vector) (Status, error) {
	m.step.Init(m.a, m.p, m.sp, x, b)
	m.step.PreProcess()

	var (
		status Status
		steps  int
		err    error
	)
	if m.termination.Init(m.step) {
		status = Converged
	} else {
		status, steps, err = m.loop()
	}

	m.step.PostProcess()
	m.stats = Stats{
		Steps:            steps,
		ResidualNorm:     m.step.ResidualNorm(),
		Status:           status,
		ShiftAccumulated: m.step.Cache().ShiftAccumulated,
		Escalations:      m.step.Cache().Escalations,
	}
	if m.Verbosity.Verbosity() >= 1 {
		fmt.Fprintf(m.Output, "cg: %d steps, residual norm %.6e, status: %s\n", steps, m.stats.ResidualNorm, status)
	}
	return status, err
}

func (m *Method) loop() (Status, int, error) {
	max := m.MaxSteps.MaxSteps()
	for i := 1; i <= max; i++ {
		m.step.ApplyPreconditioner()
		m.step.ComputeSearchDirection()

		if m.step.Truncated() {
			return Truncated, i - 1, nil
		}

		if err := m.step.ComputeScaling(); err != nil {
			return Continue, i - 1, err
		}
		m.step.UpdateIterate()

		if m.Verbosity.Verbosity() >= 2 {
			fmt.Fprintf(m.Output, "cg: step %d, residual norm %.6e, alpha %.6e\n", i, m.step.ResidualNorm(), m.step.Alpha())
		}

		status, err := m.termination.Query(m.step)
		if err != nil {
			return Continue, i, err
		}
		if status == Converged {
			return Converged, i, nil
		}
	}
	return MaxIterationsReached, max, nil
}
