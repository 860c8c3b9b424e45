// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package triplet implements an append-only sparse matrix assembly
// format and adapts it to cg.LinearOperator. Unlike dok, Matrix never
// deduplicates or merges entries at the same (row, col); repeated
// Append calls at the same position accumulate, matching how a finite
// element assembly loop contributes several element matrices into the
// same global entry.
package triplet

import (
	"fmt"

	"github.com/lubkoll/dune-istl-cg"
	"github.com/lubkoll/dune-istl-cg/internal/densevec"
)

type entry struct {
	i, j int
	v    float64
}

// Matrix is a symmetric sparse matrix assembled by Append. A is only
// ever used by cg as an SPD operator, so Append always contributes both
// (i,j) and its mirror (j,i) (a no-op contribution when i == j).
type Matrix struct {
	n    int
	data []entry
}

// New creates an n by n Matrix with no entries.
func New(n int) *Matrix { return &Matrix{n: n} }

// Dim returns the matrix dimension.
func (m *Matrix) Dim() int { return m.n }

// Append contributes v to A[i][j] and A[j][i].
func (m *Matrix) Append(i, j int, v float64) {
	if i < 0 || m.n <= i {
		panic("triplet: row index out of range")
	}
	if j < 0 || m.n <= j {
		panic("triplet: column index out of range")
	}
	m.data = append(m.data, entry{i, j, v})
	if i != j {
		m.data = append(m.data, entry{j, i, v})
	}
}

func (m *Matrix) mulVec(dst, x []float64) {
	if m.n != len(x) || m.n != len(dst) {
		panic(fmt.Sprintf("triplet: dimension mismatch: matrix is %d by %d, vectors have length %d and %d", m.n, m.n, len(dst), len(x)))
	}
	for i := range dst {
		dst[i] = 0
	}
	for _, e := range m.data {
		dst[e.i] += e.v * x[e.j]
	}
}

// Apply implements cg.LinearOperator: dst <- A*x.
func (m *Matrix) Apply(dst, x cg.Vector) {
	m.mulVec(dst.(densevec.Dense), x.(densevec.Dense))
}

// ApplyScaleAdd implements cg.LinearOperator: dst <- dst + alpha*A*x.
func (m *Matrix) ApplyScaleAdd(dst cg.Vector, alpha float64, x cg.Vector) {
	dv, xv := dst.(densevec.Dense), x.(densevec.Dense)
	ax := make([]float64, m.n)
	m.mulVec(ax, xv)
	for i := range dv {
		dv[i] += alpha * ax[i]
	}
}
