// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cg provides a generic, composable framework for the
// preconditioned conjugate gradient family of iterative solvers: CG,
// Regularized CG (RCG), Truncated CG (TCG) and Truncated-Regularized CG
// (TRCG).
//
// Unlike a monolithic solver, cg decomposes every variant into the same
// four-step recipe
//
//	ApplyPreconditioner -> SearchDirection -> Scaling -> UpdateIterate
//
// acting on a shared Cache, and pairs the step with a pluggable
// TerminationCriterion. Variants differ only in which Scaling and
// TruncationPolicy are plugged into the step; the
// rest of the machinery (preconditioner application with iterative
// refinement, conjugate search-direction update, iterate update) is
// shared.
//
// cg treats the linear operator, preconditioner, scalar product and
// vector storage as external collaborators (see LinearOperator,
// Preconditioner, ScalarProduct and Vector): it never allocates a dense
// or sparse matrix itself, and callers are free to back Vector with
// whatever storage suits them.
package cg
