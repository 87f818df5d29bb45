// SPDX-License-Identifier: MIT

// Frame core: construction, column registration and typed lookups.
//
// Invariants held by every Frame:
//   - every column is exactly rows long,
//   - column names are unique and non-empty,
//   - categorical codes all lie in [0, len(labels)),
//   - labels within a column are unique.
//
// All four are enforced at the Add boundary, never re-checked on reads.

package frame

import (
	"fmt"
	"sort"
)

// column is the sealed union of the two storage kinds.
type column interface {
	columnNode()
}

type numericColumn struct {
	values []float64
}

func (*numericColumn) columnNode() {}

type categoricalColumn struct {
	codes  []int
	labels []string
}

func (*categoricalColumn) columnNode() {}

// Frame is a fixed-row-count collection of named columns. The zero value is
// unusable; construct via New or one of the ingestion helpers.
type Frame struct {
	rows   int
	order  []string // insertion order, drives Columns()
	byName map[string]column
}

// New creates an empty frame expecting columns of the given length.
// A zero row count is legal (an empty result set); negative counts are not.
func New(rows int) (*Frame, error) {
	if rows < 0 {
		return nil, fmt.Errorf("New: %d: %w", rows, ErrNegativeRows)
	}
	return &Frame{rows: rows, byName: make(map[string]column)}, nil
}

// Rows reports the shared row count.
func (f *Frame) Rows() int { return f.rows }

// Columns returns the column names in insertion order (a fresh slice).
func (f *Frame) Columns() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Has reports whether a column with the given name exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.byName[name]
	return ok
}

// register runs the shared name checks and wires the column in.
func (f *Frame) register(ctx, name string, col column) error {
	if name == "" {
		return fmt.Errorf("%s: %w", ctx, ErrEmptyName)
	}
	if _, exists := f.byName[name]; exists {
		return fmt.Errorf("%s: %q: %w", ctx, name, ErrDuplicateColumn)
	}
	f.byName[name] = col
	f.order = append(f.order, name)
	return nil
}

// AddNumeric snapshots values as a numeric column.
//
// Errors:
//   - ErrEmptyName, ErrDuplicateColumn on bad names.
//   - ErrRowCount when len(values) != Rows().
func (f *Frame) AddNumeric(name string, values []float64) error {
	const ctx = "AddNumeric"
	if len(values) != f.rows {
		return fmt.Errorf("%s: %q has %d values for %d rows: %w",
			ctx, name, len(values), f.rows, ErrRowCount)
	}
	own := make([]float64, len(values))
	copy(own, values)
	return f.register(ctx, name, &numericColumn{values: own})
}

// AddCategorical snapshots integer level codes together with their ordered
// label set. The label order fixes the meaning of each code: code k means
// labels[k].
//
// Implementation:
//   - Stage 1: Validate lengths (codes vs rows; labels non-empty unless the
//     frame has zero rows).
//   - Stage 2: Validate label uniqueness and every code in [0, len(labels)).
//   - Stage 3: Snapshot both slices and register.
//
// Errors:
//   - ErrEmptyName, ErrDuplicateColumn, ErrRowCount as for AddNumeric.
//   - ErrDuplicateLevel on repeated labels.
//   - ErrBadLevelCode on any code outside the label range.
func (f *Frame) AddCategorical(name string, codes []int, labels []string) error {
	const ctx = "AddCategorical"

	// Stage 1 - Lengths.
	if len(codes) != f.rows {
		return fmt.Errorf("%s: %q has %d codes for %d rows: %w",
			ctx, name, len(codes), f.rows, ErrRowCount)
	}
	if len(labels) == 0 && f.rows > 0 {
		return fmt.Errorf("%s: %q has no levels: %w", ctx, name, ErrBadLevelCode)
	}

	// Stage 2 - Label uniqueness, then the one-time code range scan. Doing
	// the scan here is what lets every later fill skip it.
	seen := make(map[string]struct{}, len(labels))
	for _, lab := range labels {
		if _, dup := seen[lab]; dup {
			return fmt.Errorf("%s: %q level %q: %w", ctx, name, lab, ErrDuplicateLevel)
		}
		seen[lab] = struct{}{}
	}
	levels := len(labels)
	for i, code := range codes {
		if code < 0 || code >= levels {
			return fmt.Errorf("%s: %q row %d code %d of %d levels: %w",
				ctx, name, i, code, levels, ErrBadLevelCode)
		}
	}

	// Stage 3 - Snapshot and register.
	ownCodes := make([]int, len(codes))
	copy(ownCodes, codes)
	ownLabels := make([]string, len(labels))
	copy(ownLabels, labels)
	return f.register(ctx, name, &categoricalColumn{codes: ownCodes, labels: ownLabels})
}

// AddCategoricalFromStrings factorizes raw string observations into a
// categorical column. Levels are the lexicographically sorted unique values,
// so identical data always produces identical codes regardless of row order.
func (f *Frame) AddCategoricalFromStrings(name string, raw []string) error {
	const ctx = "AddCategoricalFromStrings"
	if len(raw) != f.rows {
		return fmt.Errorf("%s: %q has %d values for %d rows: %w",
			ctx, name, len(raw), f.rows, ErrRowCount)
	}

	// Collect unique labels, then fix codes by sorted order.
	uniq := make(map[string]int, len(raw))
	for _, v := range raw {
		uniq[v] = 0
	}
	labels := make([]string, 0, len(uniq))
	for v := range uniq {
		labels = append(labels, v)
	}
	sort.Strings(labels)
	for i, lab := range labels {
		uniq[lab] = i
	}

	codes := make([]int, len(raw))
	for i, v := range raw {
		codes[i] = uniq[v]
	}
	if err := f.AddCategorical(name, codes, labels); err != nil {
		return fmt.Errorf("%s: %w", ctx, err)
	}
	return nil
}

// Numeric returns the values of a numeric column as a live read-only view.
//
// Errors:
//   - ErrUnknownColumn when no column has the name.
//   - ErrColumnType when the column is categorical.
func (f *Frame) Numeric(name string) ([]float64, error) {
	col, ok := f.byName[name]
	if !ok {
		return nil, fmt.Errorf("Numeric: %q: %w", name, ErrUnknownColumn)
	}
	nc, ok := col.(*numericColumn)
	if !ok {
		return nil, fmt.Errorf("Numeric: %q is categorical: %w", name, ErrColumnType)
	}
	return nc.values, nil
}

// Categorical returns the codes and ordered labels of a categorical column
// as live read-only views. len(labels) is the level count; every code is
// already proven to lie in [0, len(labels)).
//
// Errors:
//   - ErrUnknownColumn when no column has the name.
//   - ErrColumnType when the column is numeric.
func (f *Frame) Categorical(name string) (codes []int, labels []string, err error) {
	col, ok := f.byName[name]
	if !ok {
		return nil, nil, fmt.Errorf("Categorical: %q: %w", name, ErrUnknownColumn)
	}
	cc, ok := col.(*categoricalColumn)
	if !ok {
		return nil, nil, fmt.Errorf("Categorical: %q is numeric: %w", name, ErrColumnType)
	}
	return cc.codes, cc.labels, nil
}
