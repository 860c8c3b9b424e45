// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import (
	"math"
	"testing"
)

// countingPreconditioner counts calls to Apply and optionally perturbs
// its output so the iterative-refinement loop in ApplyPreconditioner
// has something to correct.
type countingPreconditioner struct {
	calls int
	bias  float64
}

func (p *countingPreconditioner) Pre(x, b Vector)  {}
func (p *countingPreconditioner) Post(x Vector)    {}
func (p *countingPreconditioner) Apply(dst, src Vector) {
	p.calls++
	s := src.(testVector)
	d := dst.(testVector)
	for i := range s {
		d[i] = s[i] + p.bias
	}
}

func TestApplyPreconditionerIdentityRefinementIsIdempotent(t *testing.T) {
	identity := testOperator{{1, 0}, {0, 1}}
	for k := 0; k <= 3; k++ {
		c := &Cache{
			R:  testVector{3, 4},
			Pr: testVector{0, 0},
			A:  identity,
			P:  IdentityPreconditioner{},
			SP: testScalarProduct{},
		}
		policy := NewApplyPreconditioner()
		policy.SetIterativeRefinements(k)
		policy.Apply(c)

		pr := c.Pr.(testVector)
		for i, want := range []float64{3, 4} {
			if math.Abs(pr[i]-want) > 1e-12 {
				t.Errorf("k=%d: Pr[%d] = %v, want %v", k, i, pr[i], want)
			}
		}
	}
}

// TestApplyPreconditionerRefinementUsesFreshResidualEachIteration is a
// regression test: an earlier version of the refinement loop reused a
// single buffer across iterations without resetting it to r first,
// silently corrupting refinements beyond the first.
func TestApplyPreconditionerRefinementUsesFreshResidualEachIteration(t *testing.T) {
	identity := testOperator{{1, 0}, {0, 1}}
	precond := &countingPreconditioner{bias: 0.1}

	c := &Cache{
		R:  testVector{1, 1},
		Pr: testVector{0, 0},
		A:  identity,
		P:  precond,
		SP: testScalarProduct{},
	}
	policy := NewApplyPreconditioner()
	policy.SetIterativeRefinements(2)
	policy.Apply(c)

	// P(s) = s + 0.1. Pr0 = P(r) = r + 0.1.
	// refinement 1: r1' = r - A*Pr0 = r - Pr0 = -0.1 ; dQr = P(r1') = -0.1+0.1 = 0 ; Pr1 = Pr0 + dQr = Pr0.
	// refinement 2: r2' = r - A*Pr1 = r - Pr0 = -0.1 (recomputed from r, not from r1') ; dQr = 0 ; Pr2 = Pr1.
	// With a fresh r each iteration, Pr converges to r+0.1 and stays there.
	pr := c.Pr.(testVector)
	for i, rv := range []float64{1, 1} {
		want := rv + 0.1
		if math.Abs(pr[i]-want) > 1e-12 {
			t.Errorf("Pr[%d] = %v, want %v", i, pr[i], want)
		}
	}
}

func TestPlainScalingReportsInvalidOperatorOnNaN(t *testing.T) {
	c := &Cache{Sigma: 0, DxAdx: 0}
	err := PlainScaling{}.Apply(c)
	if err != ErrInvalidOperator {
		t.Errorf("Apply returned %v, want ErrInvalidOperator", err)
	}
}

func TestUpdateIterateRefreshesResidualNorm(t *testing.T) {
	c := &Cache{
		X:     testVector{0, 0},
		R:     testVector{1, 1},
		Dx:    testVector{1, 1},
		ADx:   testVector{1, 1},
		Alpha: 1,
		SP:    testScalarProduct{},
	}
	UpdateIterate{}.Apply(c)

	x := c.X.(testVector)
	if x[0] != 1 || x[1] != 1 {
		t.Errorf("X = %v, want [1 1]", x)
	}
	r := c.R.(testVector)
	if r[0] != 0 || r[1] != 0 {
		t.Errorf("R = %v, want [0 0]", r)
	}
	if c.ResidualNorm != 0 {
		t.Errorf("ResidualNorm = %v, want 0", c.ResidualNorm)
	}
}
