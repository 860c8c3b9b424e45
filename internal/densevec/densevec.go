// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package densevec adapts gonum's dense vector and matrix types to the
// cg package's Vector, LinearOperator and ScalarProduct interfaces. It
// is the reference adapter used by this module's tests and examples;
// production callers with their own vector representation write an
// equivalent adapter rather than depending on this package.
package densevec

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/lubkoll/dune-istl-cg"
)

// Dense is a cg.Vector backed by a plain []float64, delegating its
// arithmetic to gonum/floats. The zero value is not usable; create one
// with New.
type Dense []float64

// New creates a Dense vector of length n, zero-initialized.
func New(n int) Dense { return make(Dense, n) }

// NewFromSlice creates a Dense vector that takes ownership of data.
func NewFromSlice(data []float64) Dense { return Dense(data) }

func asDense(v cg.Vector) Dense {
	d, ok := v.(Dense)
	if !ok {
		panic(fmt.Sprintf("densevec: incompatible vector type %T", v))
	}
	return d
}

// AXPY implements cg.Vector: d <- d + alpha*x.
func (d Dense) AXPY(alpha float64, x cg.Vector) {
	floats.AddScaled(d, alpha, asDense(x))
}

// Scale implements cg.Vector: d <- alpha*d.
func (d Dense) Scale(alpha float64) { floats.Scale(alpha, d) }

// Add implements cg.Vector: d <- d + w.
func (d Dense) Add(w cg.Vector) { floats.Add(d, asDense(w)) }

// Sub implements cg.Vector: d <- d - w.
func (d Dense) Sub(w cg.Vector) { floats.Sub(d, asDense(w)) }

// Copy implements cg.Vector, returning an independent copy of d.
func (d Dense) Copy() cg.Vector {
	c := make(Dense, len(d))
	copy(c, d)
	return c
}

// String implements fmt.Stringer for readable test failures.
func (d Dense) String() string { return fmt.Sprintf("%v", []float64(d)) }

// EuclideanProduct is a cg.ScalarProduct computing the standard
// Euclidean inner product via gonum/floats.
type EuclideanProduct struct{}

// Dot implements cg.ScalarProduct.
func (EuclideanProduct) Dot(x, y cg.Vector) float64 {
	return floats.Dot(asDense(x), asDense(y))
}

// Norm implements cg.ScalarProduct, returning the Euclidean 2-norm.
func (EuclideanProduct) Norm(x cg.Vector) float64 {
	return floats.Norm(asDense(x), 2)
}

// SymmetricOperator is a cg.LinearOperator backed by a *mat.SymDense,
// suitable for the SPD operators CG and its variants require.
type SymmetricOperator struct {
	A *mat.SymDense
}

// NewSymmetricOperator wraps a, which must not be nil.
func NewSymmetricOperator(a *mat.SymDense) *SymmetricOperator {
	if a == nil {
		panic("densevec: nil symmetric matrix")
	}
	return &SymmetricOperator{A: a}
}

// Apply implements cg.LinearOperator: dst <- A*x.
func (s *SymmetricOperator) Apply(dst, x cg.Vector) {
	n, _ := s.A.Dims()
	xv := mat.NewVecDense(n, append([]float64(nil), asDense(x)...))
	dv := mat.NewVecDense(n, nil)
	dv.MulVec(s.A, xv)
	copy(asDense(dst), dv.RawVector().Data)
}

// ApplyScaleAdd implements cg.LinearOperator: dst <- dst + alpha*A*x.
func (s *SymmetricOperator) ApplyScaleAdd(dst cg.Vector, alpha float64, x cg.Vector) {
	n, _ := s.A.Dims()
	xv := mat.NewVecDense(n, append([]float64(nil), asDense(x)...))

	axv := mat.NewVecDense(n, nil)
	axv.MulVec(s.A, xv)

	floats.AddScaled(asDense(dst), alpha, axv.RawVector().Data)
}
