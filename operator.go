// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

// Vector is the opaque storage for an iterate, residual or search
// direction. cg never inspects a Vector's internal representation; it
// only ever calls these five methods. Concrete implementations are the
// caller's responsibility (see internal/densevec for a minimal
// reference used by this package's own tests).
type Vector interface {
	// AXPY computes v <- v + alpha*x.
	AXPY(alpha float64, x Vector)

	// Scale computes v <- alpha*v.
	Scale(alpha float64)

	// Add computes v <- v + w.
	Add(w Vector)

	// Sub computes v <- v - w.
	Sub(w Vector)

	// Copy returns a new Vector holding a copy of v's data.
	Copy() Vector
}

// LinearOperator represents the matrix A of the linear system Ax = b.
type LinearOperator interface {
	// Apply computes dst <- A*x.
	Apply(dst, x Vector)

	// ApplyScaleAdd computes dst <- dst + alpha*A*x.
	ApplyScaleAdd(dst Vector, alpha float64, x Vector)
}

// Preconditioner represents an operator P approximating A^-1.
type Preconditioner interface {
	// Pre is an optional pre-solve hook; it may mutate x and b.
	Pre(x, b Vector)

	// Apply computes dst <- P*src, an approximate solve of A*dst = src.
	Apply(dst, src Vector)

	// Post is an optional post-solve hook; it may mutate x.
	Post(x Vector)
}

// ScalarProduct represents an inner product on the vector space Vector
// lives in.
type ScalarProduct interface {
	// Dot returns the inner product of x and y.
	Dot(x, y Vector) float64

	// Norm returns the norm induced by Dot, typically sqrt(Dot(x,x)).
	Norm(x Vector) float64
}

// IdentityPreconditioner is the trivial preconditioner P = I. Pre and
// Post are no-ops and Apply copies src into dst.
type IdentityPreconditioner struct{}

// Pre implements Preconditioner. It does nothing.
func (IdentityPreconditioner) Pre(x, b Vector) {}

// Apply implements Preconditioner. It sets dst <- src.
func (IdentityPreconditioner) Apply(dst, src Vector) {
	dst.Scale(0)
	dst.Add(src)
}

// Post implements Preconditioner. It does nothing.
func (IdentityPreconditioner) Post(x Vector) {}
