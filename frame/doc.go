// SPDX-License-Identifier: MIT

// Package frame provides the column-oriented dataset view that design-matrix
// fills read from.
//
// What is a Frame?
//
// A Frame is a named collection of equally-long columns over one row count.
// Exactly two column kinds exist, matching what a model term can reference:
//
//   - ✨ numeric     - raw float64 predictor values, served as-is.
//   - ✨ categorical - integer level codes plus ordered level labels; every
//     code is validated against [0, levels) once, at construction, so fills
//     never re-scan rows.
//
// Columns are snapshotted on Add (callers cannot skew a frame afterwards)
// and served as live read-only views (fills copy nothing). Uniqueness,
// lengths and code ranges are all enforced at the Add boundary with sentinel
// errors; lookups distinguish "column missing" from "column of the wrong
// kind" so callers can report each precisely.
//
// Ingestion: besides programmatic Add* calls, a Frame can be loaded from CSV
// (FromCSV: header row plus numeric-else-categorical inference) and from any
// database/sql result set (FromRows). Deterministic fixture generators
// (Ramp, Pulse, Chirp, Noise, Labels) cover tests, examples and benchmarks.
//
// ⚙️ Quick start:
//
//	f, _ := frame.New(3)
//	_ = f.AddNumeric("x", []float64{1, 2, 3})
//	_ = f.AddCategoricalFromStrings("g", []string{"a", "b", "a"})
//
// Missing values are out of scope: datasets are expected pre-cleaned, NULLs
// in SQL results are rejected, and no NaN policy is imposed on numeric data.
package frame
