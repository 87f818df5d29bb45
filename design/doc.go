// SPDX-License-Identifier: MIT

// Package design turns a model-term tree plus a dataset into a dense numeric
// design matrix, writing into caller-owned memory with nothing allocated on
// the fill path.
//
// What problem does it solve?
//
// Model fitting pipelines rebuild the same design matrix over and over:
// bootstrap resamples, permutation tests, cross-validation folds. The tree
// shape never changes between rebuilds - only the data does - so all sizing
// work can happen once. That split is this package:
//
//   - 🚀 NewPlan(root, rows) walks the tree once, computes the total column
//     width, and pre-allocates every scratch buffer that function and
//     interaction terms will ever need at this row count.
//   - 🚀 Plan.Fill(dst, data) recursively writes columns left to right.
//     After the up-front validation it performs zero heap allocations and
//     touches each destination cell exactly once.
//
// Scratch discipline:
//
// Function terms evaluate their arguments into a rows×arity scratch block;
// interaction terms evaluate their components into a rows×Σwidths block and
// expand the per-row Kronecker product from it. Buffers are claimed by two
// monotonic cursors in the same parent-first, left-to-right order the
// planner used, and the cursors reset at every fill, so a Plan serves
// unlimited refills. The plan keeps the tree it was built from: a fill can
// never pair one tree's traversal with another tree's buffers.
//
// Column semantics (left to right, one term at a time):
//
//   - ✨ Constant/Intercept broadcast a scalar down one column.
//   - ✨ Continuous copies a numeric variable verbatim.
//   - ✨ Categorical writes the contrast-coefficient row selected by each
//     observation's level code.
//   - ✨ Func applies its callable per row (direct calls for arity ≤ 3, one
//     slice call above that).
//   - ✨ Interaction writes every cross-combination of its component
//     columns; the first component's columns vary fastest.
//   - ✨ Sequence concatenates its children.
//
// Errors are sentinels, detected at planning or at the start of a fill -
// never after a destination write. A Plan's scratch is mutable state: use
// one Plan per goroutine (Clone is cheap) or serialize fills externally.
//
// ⚙️ One-shot use:
//
//	dst, err := design.Matrix(rhs, data) // plan + allocate + fill
//
// Reuse (the point of the package):
//
//	p, _ := design.NewPlan(rhs, data.Rows())
//	dst, _ := matrix.NewDense(p.Rows(), p.Width())
//	for _, resample := range folds {
//	    if err := p.Fill(dst, resample); err != nil { ... }
//	    // consume dst before the next iteration
//	}
package design
