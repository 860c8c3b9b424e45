// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import (
	"math"

	"github.com/lubkoll/dune-istl-cg/mixin"
)

// ApplyPreconditioner computes Pr <- P*r, optionally followed by a
// bounded number of fixed-point refinements to improve accuracy when P
// is a low-quality or inexact solver. It is shared, unmodified, by all
// four CG variants.
type ApplyPreconditioner struct {
	*mixin.IterativeRefinements

	// AbsDot controls whether the preconditioned residual norm
	// |(r,Pr)| is taken in absolute value before being cached as
	// Sigma. Defaulting to true stabilizes plain CG against
	// preconditioners that are not exactly SPD; set to false to
	// surface indefinite preconditioners instead of masking them.
	AbsDot bool
}

// NewApplyPreconditioner creates an ApplyPreconditioner policy with no
// refinements and AbsDot enabled.
func NewApplyPreconditioner() *ApplyPreconditioner {
	return &ApplyPreconditioner{
		IterativeRefinements: mixin.NewIterativeRefinements(0),
		AbsDot:               true,
	}
}

// Apply implements Preconditioning.
func (a *ApplyPreconditioner) Apply(c *Cache) {
	c.P.Apply(c.Pr, c.R)

	if k := a.IterativeRefinements.IterativeRefinements(); k > 0 {
		r2 := c.R.Copy()
		dQr := c.Pr.Copy()
		for i := 0; i < k; i++ {
			r2.Scale(0)
			r2.Add(c.R)
			c.A.ApplyScaleAdd(r2, -1, c.Pr)
			c.P.Apply(dQr, r2)
			c.Pr.Add(dQr)
		}
	}

	if !c.SigmaSet {
		dot := c.SP.Dot(c.R, c.Pr)
		if a.AbsDot {
			dot = math.Abs(dot)
		}
		c.Sigma = dot
		c.SigmaSet = true
	}
}

// PlainSearchDirection computes the conjugate search direction shared
// by CG, RCG, TCG and TRCG:
//
//	first step:  dx <- Pr
//	later steps: beta <- newSigma/sigma ; dx <- beta*dx + Pr
//
// followed in both cases by A*dx and its energy length (dx,A*dx).
type PlainSearchDirection struct {
	// AbsDot mirrors ApplyPreconditioner.AbsDot: whether (r,Pr) is
	// taken in absolute value when refreshing Sigma for beta.
	AbsDot bool
}

// NewPlainSearchDirection creates a PlainSearchDirection policy with
// AbsDot enabled.
func NewPlainSearchDirection() *PlainSearchDirection {
	return &PlainSearchDirection{AbsDot: true}
}

// Apply implements SearchDirection.
func (d *PlainSearchDirection) Apply(c *Cache) {
	if c.FirstStep {
		c.Dx.Scale(0)
		c.Dx.Add(c.Pr)
		d.computeInducedStepLength(c)
		c.FirstStep = false
		return
	}

	newSigma := c.SP.Dot(c.R, c.Pr)
	if d.AbsDot {
		newSigma = math.Abs(newSigma)
	}
	c.Beta = newSigma / c.Sigma
	c.Dx.Scale(c.Beta)
	c.Dx.Add(c.Pr)
	c.Sigma = newSigma

	d.computeInducedStepLength(c)
}

func (d *PlainSearchDirection) computeInducedStepLength(c *Cache) {
	c.A.Apply(c.ADx, c.Dx)
	c.DxAdx = c.SP.Dot(c.Dx, c.ADx)
}

// PlainScaling computes the unregularized conjugate-gradient scaling
// alpha = sigma/dxAdx. It is used directly by CG and TCG; RCG and TRCG
// use RegularizingScaling instead.
type PlainScaling struct{}

// Apply implements Scaling.
func (PlainScaling) Apply(c *Cache) error {
	c.Alpha = c.Sigma / c.DxAdx
	if math.IsNaN(c.Alpha) {
		return ErrInvalidOperator
	}
	return nil
}

// UpdateIterate advances x <- x + alpha*dx and r <- r - alpha*A*dx, and
// refreshes Cache.ResidualNorm from the updated r so that a
// TerminationCriterion queried immediately afterward observes the
// current residual. It is shared, unmodified, by all four CG variants.
type UpdateIterate struct{}

// Apply implements IterateUpdate.
func (UpdateIterate) Apply(c *Cache) {
	c.X.AXPY(c.Alpha, c.Dx)
	c.R.AXPY(-c.Alpha, c.ADx)
	c.ResidualNorm = c.SP.Norm(c.R)
}
