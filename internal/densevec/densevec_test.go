// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package densevec

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/lubkoll/dune-istl-cg"
)

func TestDenseVectorOps(t *testing.T) {
	var v, w cg.Vector = New(3), New(3)
	copy(v.(Dense), []float64{1, 2, 3})
	copy(w.(Dense), []float64{4, 5, 6})

	v.AXPY(2, w)
	want := []float64{9, 12, 15}
	for i, got := range v.(Dense) {
		if got != want[i] {
			t.Errorf("AXPY: v[%d] = %v, want %v", i, got, want[i])
		}
	}

	v.Scale(0)
	v.Add(w)
	for i, got := range v.(Dense) {
		if got != w.(Dense)[i] {
			t.Errorf("Scale+Add: v[%d] = %v, want %v", i, got, w.(Dense)[i])
		}
	}

	v.Sub(w)
	for _, got := range v.(Dense) {
		if got != 0 {
			t.Errorf("Sub: v = %v, want all zero", v)
		}
	}
}

func TestDenseCopyIsIndependent(t *testing.T) {
	v := NewFromSlice([]float64{1, 2, 3})
	c := v.Copy().(Dense)
	c[0] = 100
	if v[0] == 100 {
		t.Error("Copy shares storage with the original")
	}
}

func TestEuclideanProduct(t *testing.T) {
	x := NewFromSlice([]float64{3, 4})
	p := EuclideanProduct{}

	if got, want := p.Dot(x, x), 25.0; got != want {
		t.Errorf("Dot(x,x) = %v, want %v", got, want)
	}
	if got, want := p.Norm(x), 5.0; got != want {
		t.Errorf("Norm(x) = %v, want %v", got, want)
	}
}

func TestSymmetricOperatorApply(t *testing.T) {
	a := mat.NewSymDense(2, []float64{4, 1, 1, 3})
	op := NewSymmetricOperator(a)

	x := NewFromSlice([]float64{1, 1})
	dst := New(2)
	op.Apply(dst, x)

	want := []float64{5, 4}
	for i, got := range dst {
		if math.Abs(got-want[i]) > 1e-12 {
			t.Errorf("Apply: dst[%d] = %v, want %v", i, got, want[i])
		}
	}
}

func TestSymmetricOperatorApplyScaleAdd(t *testing.T) {
	a := mat.NewSymDense(2, []float64{4, 1, 1, 3})
	op := NewSymmetricOperator(a)

	dst := NewFromSlice([]float64{1, 1})
	x := NewFromSlice([]float64{1, 1})
	op.ApplyScaleAdd(dst, -1, x)

	// dst <- dst - A*x = [1,1] - [5,4] = [-4,-3]
	want := []float64{-4, -3}
	for i, got := range dst {
		if math.Abs(got-want[i]) > 1e-12 {
			t.Errorf("ApplyScaleAdd: dst[%d] = %v, want %v", i, got, want[i])
		}
	}
}
