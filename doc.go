// Package modelmat builds dense numeric design matrices from explicit
// model-term trees — plan once, fill many, with no per-row allocation.
//
// 🚀 What is modelmat?
//
//	A statistical-modeling building block that turns a structural model
//	description into matrix columns:
//		• Term trees: intercepts, constants, continuous and categorical
//		  predictors, scalar functions, interactions, ordered sequences
//		• Contrast expansion: precomputed coefficient rows per factor level
//		• Interactions: Kronecker-product columns, first component fastest
//		• Planning: one pre-order walk fixes total width and every scratch
//		  buffer, so fills run allocation-free
//		• Fixed-effects extraction: strips random-effects grouping terms
//		  before planning
//
// ✨ Why choose modelmat?
//
//   - Predictable hot path – all validation happens at planning or at the
//     start of a fill, never mid-write
//   - Caller-owned memory – fill a matrix.Dense or any strided []float64
//   - Deterministic – identical inputs produce bit-identical matrices
//   - Reusable plans – one Plan serves unlimited fills; Clone per goroutine
//
// Everything is organized under four subpackages:
//
//	term/   — the model vocabulary: sealed Term variants, contrasts,
//	          fixed-effects extraction
//	frame/  — column-oriented datasets: numeric & categorical columns,
//	          CSV, database/sql and synthetic sources
//	design/ — the planner and filler: NewPlan, Fill, FillBuffer, Matrix
//	matrix/ — the dense destination type plus small deterministic kernels
//	          (Mul, Transpose, MatVec, Gram)
//
// Quick sketch, the model 1 + x + g over three observations:
//
//	x = [1 2 3], g = [a b a]      ┌ 1  1  0 ┐
//	g dummy-coded against "a"  →  │ 1  2  1 │
//	                              └ 1  3  0 ┘
//
// cmd/mmbench times plan-reuse against re-planning over seeded synthetic
// datasets.
//
//	go get github.com/katalvlaran/modelmat
package modelmat
