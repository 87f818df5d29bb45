// SPDX-License-Identifier: MIT

package matrix

// Matrix is the minimal read/write surface the kernels operate on.
// Concrete destinations are expected to be *Dense; the interface exists so
// kernels can accept wrappers (views, instrumented matrices) and still fall
// back to a correct, if slower, At/Set path.
type Matrix interface {
	// Rows reports the number of rows.
	Rows() int
	// Cols reports the number of columns.
	Cols() int
	// At returns the element at (i, j); ErrOutOfRange on bad indices.
	At(i, j int) (float64, error)
	// Set stores v at (i, j); ErrOutOfRange on bad indices.
	Set(i, j int, v float64) error
	// Clone returns a deep, independent copy.
	Clone() Matrix
}

// Compile-time conformance check.
var _ Matrix = (*Dense)(nil)
