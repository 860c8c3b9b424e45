// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

// Cache is the mutable per-solve scratch space shared by every policy
// of a Step. It is constructed once per call to Method.Apply and
// discarded when Apply returns.
//
// X aliases the caller's initial guess and is updated in place to hold
// the current iterate. R aliases the caller's right-hand side and is
// updated in place to hold the current residual b-A*x: it is never
// recomputed from scratch, only corrected by a single AXPY per step.
type Cache struct {
	X Vector // current iterate
	R Vector // current residual b - A*x

	Pr  Vector // preconditioned residual P*r
	Dx  Vector // search direction
	ADx Vector // A applied to the search direction

	Alpha float64 // scaling of the search direction
	Beta  float64 // conjugacy coefficient
	Sigma float64 // |<r,Pr>|, preconditioned residual norm squared
	DxAdx float64 // energy length of the search direction, <dx,A*dx>

	ResidualNorm float64 // ||r|| with respect to ScalarProduct

	// SigmaSet reports whether Sigma holds a value from a previous
	// step. It replaces the teacher's sentinel convention of a
	// negative Sigma meaning "unset".
	SigmaSet bool

	// FirstStep is true only for the initial step within the current
	// solve; SearchDirection policies branch on it and clear it.
	FirstStep bool

	// ShiftAccumulated is the running sum of regularization shifts
	// RCG/TRCG have added to dxAdx over the whole solve.
	ShiftAccumulated float64
	// Escalations is the running count of regularization shifts
	// RCG/TRCG have applied over the whole solve.
	Escalations int

	A  LinearOperator
	P  Preconditioner
	SP ScalarProduct
}

// reset re-primes r = b - A*x, Pr = P*r, residualNorm = ||r|| and marks
// the next step as the first of a fresh solve. It is called by
// Step.Init and by Step.Reset.
func (c *Cache) reset() {
	c.A.ApplyScaleAdd(c.R, -1, c.X)
	c.P.Apply(c.Pr, c.R)
	c.ResidualNorm = c.SP.Norm(c.R)
	c.FirstStep = true
	c.Sigma = 0
	c.SigmaSet = false
	c.ShiftAccumulated = 0
	c.Escalations = 0
}
