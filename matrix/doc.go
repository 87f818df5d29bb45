// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric destination type used by the
// design-matrix pipeline, plus a small set of deterministic linear-algebra
// kernels over it.
//
// What is matrix?
//
// A Dense is a row-major float64 matrix backed by one contiguous slice
// (offset = row*cols + col). It is the memory a caller hands to the filler:
// allocated once, written in place, reused across refills. The package keeps
// two access levels side by side:
//
//   - Safe accessors At/Set with bounds checks and sentinel errors - never a
//     panic on user input.
//   - Raw views Row/Data for hot paths that have already validated shapes and
//     want flat indexing with zero overhead.
//
// Why this package?
//
//   - ✨ One allocation, stable layout: rows are contiguous, so row-wise
//     writers and cache lines agree.
//   - ✨ Deterministic kernels: Mul, Transpose, MatVec and Gram use fixed loop
//     orders; identical inputs give bit-identical outputs.
//   - ✨ Fail-fast validation: every kernel validates via the central
//     validators and wraps failures with the operation tag, preserving
//     sentinel identity for errors.Is.
//
// ⚙️ Quick start:
//
//	dst, err := matrix.NewDense(rows, cols)
//	if err != nil { ... }
//	// fill dst in place, then:
//	xtx, err := matrix.Gram(dst) // cols×cols cross-product
//
// The kernels intentionally stop at products and transposes: factorizations,
// solvers and fitting belong to downstream consumers, not to the destination
// type.
package matrix
