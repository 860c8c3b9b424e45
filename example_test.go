// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg_test

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/lubkoll/dune-istl-cg"
	"github.com/lubkoll/dune-istl-cg/internal/densevec"
)

// ExampleMethod_Apply solves Ax=b for the identity operator, which
// plain CG reaches in a single step regardless of the right-hand side.
func ExampleMethod_Apply() {
	a := densevec.NewSymmetricOperator(mat.NewSymDense(2, []float64{1, 0, 0, 1}))
	method := cg.NewMethod(cg.NewCG(), cg.NewResidualBased(), a, cg.IdentityPreconditioner{}, densevec.EuclideanProduct{})
	method.SetAbsAccuracy(1e-12)
	method.Output = io.Discard

	x := densevec.NewFromSlice([]float64{0, 0})
	b := densevec.NewFromSlice([]float64{3, 4})

	status, err := method.Apply(x, b)
	if err != nil {
		fmt.Println(err)
		return
	}

	stats := method.Stats()
	fmt.Printf("status: %s\n", status)
	fmt.Printf("steps: %d\n", stats.Steps)
	fmt.Printf("residual norm: %.6e\n", stats.ResidualNorm)
	fmt.Printf("solution: [%.6f %.6f]\n", x[0], x[1])

	// Output:
	// status: converged
	// steps: 1
	// residual norm: 0.000000e+00
	// solution: [3.000000 4.000000]
}
