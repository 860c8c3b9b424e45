// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import (
	"fmt"
	"os"

	"github.com/lubkoll/dune-istl-cg/mixin"
)

// Preconditioning computes cache.Pr from cache.R.
type Preconditioning interface {
	Apply(c *Cache)
}

// SearchDirection updates cache.Dx, cache.ADx and cache.DxAdx from
// cache.Pr, cache.R and (on every step but the first) the previous
// cache.Dx.
type SearchDirection interface {
	Apply(c *Cache)
}

// Scaling computes cache.Alpha from cache.Sigma and cache.DxAdx. It may
// adjust cache.DxAdx itself (regularization) and reports an error when
// no admissible scaling could be produced.
type Scaling interface {
	Apply(c *Cache) error
}

// IterateUpdate advances cache.X and cache.R using cache.Alpha,
// cache.Dx and cache.ADx.
type IterateUpdate interface {
	Apply(c *Cache)
}

// TruncationPolicy decides, after SearchDirection has run and before
// Scaling runs, whether the current step must be abandoned because of
// non-positive curvature.
type TruncationPolicy interface {
	ShouldTruncate(c *Cache) bool
}

// NoTruncation never truncates. CG assumes a positive-definite operator
// and RCG repairs indefiniteness with a regularizing shift instead of
// stopping, so both use NoTruncation.
type NoTruncation struct{}

// ShouldTruncate implements TruncationPolicy. It always returns false.
func (NoTruncation) ShouldTruncate(c *Cache) bool { return false }

// Step is the ordered composition of the four CG policies
// (Precondition -> Direction -> [truncation check] -> Scale -> Update)
// over a shared Cache, plus the lifecycle hooks a Method drives a solve
// through. The four CG variants in this package
// (CG, RCG, TCG, TRCG) differ only in which Scale and Truncation
// policies they plug in.
type Step struct {
	Precondition Preconditioning
	Direction    SearchDirection
	Scale        Scaling
	Update       IterateUpdate
	Truncation   TruncationPolicy

	// Verbosity gates the escalation diagnostics ComputeScaling writes
	// to stderr. It is independent of Method.Output: a Step driven
	// directly (without a Method wrapping it) still gets diagnostics if
	// its own Verbosity is raised. A Method connects its own Verbosity
	// to this one in wire(), so SetVerbosity on the driver reaches the
	// step too.
	*mixin.Verbosity

	cache *Cache
}

// Init builds the cache aliasing x (as the iterate) and b (as the
// residual), computes r = b - A*x, primes Pr and ResidualNorm, and
// marks Sigma as unset (the first ApplyPreconditioner computes it). It
// must be called once before the first call to any other Step method.
func (s *Step) Init(a LinearOperator, p Preconditioner, sp ScalarProduct, x, b Vector) {
	if a == nil || p == nil || sp == nil {
		panic("cg: nil operator, preconditioner or scalar product")
	}
	if s.Truncation == nil {
		s.Truncation = NoTruncation{}
	}
	s.cache = &Cache{
		X:   x,
		R:   b,
		Pr:  x.Copy(),
		Dx:  x.Copy(),
		ADx: b.Copy(),
		A:   a,
		P:   p,
		SP:  sp,
	}
	s.cache.reset()
}

// Cache returns the cache backing this step. It is valid only between
// Init and the end of the solve.
func (s *Step) Cache() *Cache {
	if s.cache == nil {
		panic("cg: Step.Init not called")
	}
	return s.cache
}

// PreProcess delegates to the preconditioner's pre-solve hook.
func (s *Step) PreProcess() { s.Cache().P.Pre(s.cache.X, s.cache.R) }

// PostProcess delegates to the preconditioner's post-solve hook.
func (s *Step) PostProcess() { s.Cache().P.Post(s.cache.X) }

// Reset re-primes the cache for another solve with the same A, P and
// sp, reusing the already-allocated auxiliary vectors.
func (s *Step) Reset() { s.Cache().reset() }

// ApplyPreconditioner runs the Precondition policy.
func (s *Step) ApplyPreconditioner() { s.Precondition.Apply(s.Cache()) }

// ComputeSearchDirection runs the Direction policy.
func (s *Step) ComputeSearchDirection() { s.Direction.Apply(s.Cache()) }

// Truncated reports whether the Truncation policy judges the current
// search direction to have non-positive curvature.
func (s *Step) Truncated() bool { return s.Truncation.ShouldTruncate(s.Cache()) }

// ComputeScaling runs the Scale policy, reporting a regularization
// escalation to stderr when s.Verbosity() is at least 2.
func (s *Step) ComputeScaling() error {
	before := s.Cache().Escalations
	err := s.Scale.Apply(s.Cache())
	if s.Verbosity != nil && s.Verbosity.Verbosity() >= 2 && s.Cache().Escalations > before {
		fmt.Fprintf(os.Stderr, "cg: step escalated curvature %d time(s), shift accumulated %.6e\n",
			s.Cache().Escalations-before, s.Cache().ShiftAccumulated)
	}
	return err
}

// UpdateIterate runs the Update policy.
func (s *Step) UpdateIterate() { s.Update.Apply(s.Cache()) }

// Alpha returns the scaling used for the most recently computed search
// direction, i.e. (r,Pr)/(dx,A*dx).
func (s *Step) Alpha() float64 { return s.Cache().Alpha }

// Length returns the energy length of the search direction, (dx,A*dx).
func (s *Step) Length() float64 { return s.Cache().DxAdx }

// PreconditionedResidualNorm returns |(r,Pr)|, where r = b - A*x.
func (s *Step) PreconditionedResidualNorm() float64 { return s.Cache().Sigma }

// ResidualNorm returns ||r|| with respect to the employed scalar
// product, where r = b - A*x.
func (s *Step) ResidualNorm() float64 { return s.Cache().ResidualNorm }
