// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dok implements a dictionary-of-keys sparse matrix and adapts
// it to cg.LinearOperator, for operators assembled incrementally (one
// nonzero entry at a time) rather than known up front as a dense
// *mat.SymDense.
package dok

import (
	"fmt"

	"github.com/lubkoll/dune-istl-cg"
	"github.com/lubkoll/dune-istl-cg/internal/densevec"
)

// DOK is a symmetric sparse matrix stored as a map keyed by (row, col).
// SetAt mirrors its entry across the diagonal, so DOK can only ever
// represent a symmetric operator; that restriction is deliberate, since
// cg requires A to be SPD.
type DOK struct {
	N int

	data map[index]float64
}

type index struct {
	row, col int
}

// New creates an n by n DOK matrix with no nonzero entries.
func New(n int) *DOK {
	return &DOK{N: n, data: make(map[index]float64)}
}

// At returns A[i][j].
func (m *DOK) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[index{i, j}]
}

// SetAt sets A[i][j] = A[j][i] = v.
func (m *DOK) SetAt(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[index{i, j}] = v
	m.data[index{j, i}] = v
}

func (m *DOK) checkIndex(i, j int) {
	if i < 0 || m.N <= i {
		panic("dok: row index out of range")
	}
	if j < 0 || m.N <= j {
		panic("dok: column index out of range")
	}
}

func (m *DOK) mulVec(dst, x []float64) {
	if m.N != len(x) || m.N != len(dst) {
		panic(fmt.Sprintf("dok: dimension mismatch: matrix is %d by %d, vectors have length %d and %d", m.N, m.N, len(dst), len(x)))
	}
	for i := range dst {
		dst[i] = 0
	}
	for ij, aij := range m.data {
		dst[ij.row] += aij * x[ij.col]
	}
}

// Apply implements cg.LinearOperator: dst <- A*x.
func (m *DOK) Apply(dst, x cg.Vector) {
	m.mulVec(dst.(densevec.Dense), x.(densevec.Dense))
}

// ApplyScaleAdd implements cg.LinearOperator: dst <- dst + alpha*A*x.
func (m *DOK) ApplyScaleAdd(dst cg.Vector, alpha float64, x cg.Vector) {
	dv, xv := dst.(densevec.Dense), x.(densevec.Dense)
	ax := make([]float64, m.N)
	m.mulVec(ax, xv)
	for i := range dv {
		dv[i] += alpha * ax[i]
	}
}
