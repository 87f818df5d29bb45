// SPDX-License-Identifier: MIT

// Dense - the canonical row-major float64 matrix.
//
// Layout contract: data[i*c + j] holds element (i, j). The backing slice is
// exactly r*c long, allocated once by NewDense and never reallocated by any
// method, so raw views handed out by Row/Data stay valid for the lifetime of
// the matrix.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Context tags for unified error wrapping (no magic strings at call sites).
const (
	ctxNewDense = "NewDense"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
)

// Dense is a dense row-major matrix of float64 values.
// The zero value is unusable; construct via NewDense.
type Dense struct {
	r, c int       // dimensions; immutable after construction
	data []float64 // backing slice, len == r*c, row-major
}

// denseErrorf wraps err with a method tag, preserving sentinel identity.
func denseErrorf(ctx string, err error) error {
	return fmt.Errorf("%s: %w", ctx, err)
}

// NewDense allocates a zero-initialized rows×cols matrix.
//
// Implementation:
//   - Stage 1: Validate rows ≥ 1 and cols ≥ 1.
//   - Stage 2: Allocate the flat backing slice in one make call.
//
// Inputs:
//   - rows, cols: target shape; both must be positive.
//
// Returns:
//   - *Dense: zero-filled matrix ready for in-place writes.
//   - error : ErrInvalidDimensions (wrapped) on a non-positive dimension.
//
// Complexity:
//   - Time O(rows*cols) for the zeroing make, Space O(rows*cols).
func NewDense(rows, cols int) (*Dense, error) {
	// Stage 1 - Validate requested shape.
	if rows < 1 || cols < 1 {
		return nil, denseErrorf(ctxNewDense, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	// Stage 2 - Single contiguous allocation.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// indexOf maps (i, j) to the flat offset. Callers must have validated bounds.
func (d *Dense) indexOf(i, j int) int { return i*d.c + j }

// inBounds reports whether (i, j) addresses a valid element.
func (d *Dense) inBounds(i, j int) bool {
	return i >= 0 && i < d.r && j >= 0 && j < d.c
}

// Rows reports the number of rows.
func (d *Dense) Rows() int { return d.r }

// Cols reports the number of columns.
func (d *Dense) Cols() int { return d.c }

// Shape returns (rows, cols) in one call.
func (d *Dense) Shape() (rows, cols int) { return d.r, d.c }

// At returns the element at (i, j).
//
// Errors:
//   - ErrOutOfRange (wrapped with indices) when (i, j) is outside the shape.
//
// Complexity: O(1).
func (d *Dense) At(i, j int) (float64, error) {
	if !d.inBounds(i, j) {
		return 0, denseErrorf(ctxAt, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, d.r, d.c, ErrOutOfRange))
	}
	return d.data[d.indexOf(i, j)], nil
}

// Set stores v at (i, j).
//
// Errors:
//   - ErrOutOfRange (wrapped with indices) when (i, j) is outside the shape.
//
// Complexity: O(1).
func (d *Dense) Set(i, j int, v float64) error {
	if !d.inBounds(i, j) {
		return denseErrorf(ctxSet, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, d.r, d.c, ErrOutOfRange))
	}
	d.data[d.indexOf(i, j)] = v
	return nil
}

// Row returns row i as a live view into the backing slice: writes through the
// returned slice mutate the matrix. Hot paths use it to stream a row without
// per-element bounds checks.
//
// Errors:
//   - ErrOutOfRange (wrapped) when i is outside [0, Rows()).
func (d *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.r {
		return nil, denseErrorf(ctxRow, fmt.Errorf("row %d of %d: %w", i, d.r, ErrOutOfRange))
	}
	base := i * d.c
	return d.data[base : base+d.c : base+d.c], nil
}

// Data returns the raw row-major backing slice (len Rows()*Cols()). It is a
// live view, not a copy: callers that write through it own the shape
// discipline. Intended for validated hot paths; everyone else should go
// through At/Set.
func (d *Dense) Data() []float64 { return d.data }

// Clone returns a deep copy sharing no memory with the receiver.
//
// Complexity: Time O(r*c), Space O(r*c).
func (d *Dense) Clone() Matrix {
	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	copy(out.data, d.data)
	return out
}

// String renders the matrix one bracketed row per line, elements formatted
// with strconv.FormatFloat 'g'. Meant for tests and debug output, not for
// machine parsing.
func (d *Dense) String() string {
	var sb strings.Builder
	var i, j, base int // deterministic i→j traversal
	for i = 0; i < d.r; i++ {
		base = i * d.c
		sb.WriteByte('[')
		for j = 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(d.data[base+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
