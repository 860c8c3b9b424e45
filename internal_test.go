// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import "math"

// testVector is a minimal []float64-backed Vector used by this
// package's white-box tests, so that Cache, Step and the policies can
// be exercised without depending on any particular production Vector
// implementation.
type testVector []float64

func (v testVector) AXPY(alpha float64, x Vector) {
	w := x.(testVector)
	for i := range v {
		v[i] += alpha * w[i]
	}
}

func (v testVector) Scale(alpha float64) {
	for i := range v {
		v[i] *= alpha
	}
}

func (v testVector) Add(w Vector) {
	ww := w.(testVector)
	for i := range v {
		v[i] += ww[i]
	}
}

func (v testVector) Sub(w Vector) {
	ww := w.(testVector)
	for i := range v {
		v[i] -= ww[i]
	}
}

func (v testVector) Copy() Vector {
	c := make(testVector, len(v))
	copy(c, v)
	return c
}

// testOperator is a dense LinearOperator backed by a row-major slice of
// rows, used to assemble small hand-checkable SPD and indefinite
// systems in tests.
type testOperator [][]float64

func (a testOperator) Apply(dst, x Vector) {
	xv, dv := x.(testVector), dst.(testVector)
	for i := range a {
		var sum float64
		for j, aij := range a[i] {
			sum += aij * xv[j]
		}
		dv[i] = sum
	}
}

func (a testOperator) ApplyScaleAdd(dst Vector, alpha float64, x Vector) {
	xv, dv := x.(testVector), dst.(testVector)
	for i := range a {
		var sum float64
		for j, aij := range a[i] {
			sum += aij * xv[j]
		}
		dv[i] += alpha * sum
	}
}

// testScalarProduct is the Euclidean inner product over testVector.
type testScalarProduct struct{}

func (testScalarProduct) Dot(x, y Vector) float64 {
	xv, yv := x.(testVector), y.(testVector)
	var sum float64
	for i := range xv {
		sum += xv[i] * yv[i]
	}
	return sum
}

func (testScalarProduct) Norm(x Vector) float64 {
	return math.Sqrt(testScalarProduct{}.Dot(x, x))
}
