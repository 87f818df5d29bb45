// SPDX-License-Identifier: MIT

// Package term defines the hierarchical model-term tree that drives
// design-matrix construction.
//
// What is a term tree?
//
// A statistical model's right-hand side is an ordered list of terms: an
// intercept, raw predictors, contrast-coded categorical factors, functions of
// predictors, and interactions between any of those. Package term represents
// that structure as a closed tree: Term is a sealed interface and the node
// set is fixed, so downstream consumers can type-switch exhaustively and
// reject anything else.
//
// Node kinds and their column widths:
//
//   - ✨ Constant     - a fixed scalar broadcast down one column (width 1).
//   - ✨ Intercept    - the all-ones column when present (width 1, else 0).
//   - ✨ Continuous   - a numeric dataset variable copied verbatim (width 1).
//   - ✨ Categorical  - a coded factor; width = contrast columns.
//   - ✨ Func         - a scalar function of scalar arguments (width 1).
//   - ✨ Interaction  - the Kronecker expansion of its components;
//     width = product of component widths.
//   - ✨ Sequence     - ordered concatenation; width = sum of child widths.
//   - ✨ Grouping     - a random-effects marker (width 0); never materialized,
//     stripped by FixedEffects before planning.
//
// Widths are static: they depend only on the tree shape and contrast sizes,
// never on data. That is what lets a planner size every buffer up front and
// lets fills run without allocation.
//
// ⚙️ Construction is plain Go:
//
//	x := &term.Continuous{Variable: "x"}
//	g := &term.Categorical{Variable: "g", Levels: 3, Contrast: coding}
//	rhs := &term.Sequence{Terms: []term.Term{
//	    &term.Intercept{Present: true},
//	    x,
//	    g,
//	    &term.Interaction{Components: []term.Term{x, g}},
//	}}
//
// Formula parsing is deliberately out of scope; trees arrive from callers or
// from parsers layered on top. Contrast matrices are likewise opaque inputs:
// this package validates their shape and serves their coefficients, but never
// chooses a coding scheme.
package term
