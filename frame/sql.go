// SPDX-License-Identifier: MIT

// database/sql ingestion. Works against any driver: values are scanned into
// interface holders and classified per column - integers, floats and bools
// become numeric columns, text becomes factorized categorical columns.
// NULLs and exotic types are rejected: missing-value handling is a job for
// the query, not the frame.

package frame

import (
	"database/sql"
	"fmt"
)

// FromRows drains a *sql.Rows result set into a Frame. The caller still owns
// closing the rows; FromRows only iterates them.
//
// Column kind rules, applied uniformly per column:
//   - int64, float64       → numeric (int64 converted).
//   - bool                 → numeric 0/1.
//   - string, []byte       → categorical via sorted-label factorization.
//   - NULL or mixed kinds  → ErrScanType.
//
// Errors:
//   - scan/iteration errors from the driver, wrapped.
//   - ErrScanType per the rules above, wrapped with column name and row.
func FromRows(rows *sql.Rows) (*Frame, error) {
	const ctx = "FromRows"

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctx, err)
	}
	ncols := len(names)

	// Drain every row through interface holders.
	cells := make([][]any, ncols) // per-column accumulation
	holders := make([]any, ncols)
	ptrs := make([]any, ncols)
	var j int
	for j = 0; j < ncols; j++ {
		ptrs[j] = &holders[j]
	}
	for rows.Next() {
		if err = rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%s: %w", ctx, err)
		}
		for j = 0; j < ncols; j++ {
			cells[j] = append(cells[j], holders[j])
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ctx, err)
	}

	nrows := 0
	if ncols > 0 {
		nrows = len(cells[0])
	}
	f, err := New(nrows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctx, err)
	}

	// Classify and register column by column.
	var (
		i       int
		numeric bool
		val     any
	)
	vals := make([]float64, nrows)
	raw := make([]string, nrows)
	for j = 0; j < ncols; j++ {
		numeric = true
		for i = 0; i < nrows; i++ {
			val = cells[j][i]
			switch v := val.(type) {
			case int64:
				vals[i] = float64(v)
			case float64:
				vals[i] = v
			case bool:
				if v {
					vals[i] = 1
				} else {
					vals[i] = 0
				}
			case string:
				numeric = false
				raw[i] = v
			case []byte:
				numeric = false
				raw[i] = string(v)
			default:
				return nil, fmt.Errorf("%s: column %q row %d holds %T: %w",
					ctx, names[j], i, val, ErrScanType)
			}
		}

		if numeric {
			err = f.AddNumeric(names[j], vals)
		} else {
			// Re-walk to catch numeric cells inside a text column: one
			// column, one kind.
			for i = 0; i < nrows; i++ {
				switch v := cells[j][i].(type) {
				case string:
					raw[i] = v
				case []byte:
					raw[i] = string(v)
				default:
					return nil, fmt.Errorf("%s: column %q row %d mixes %T with text: %w",
						ctx, names[j], i, cells[j][i], ErrScanType)
				}
			}
			err = f.AddCategoricalFromStrings(names[j], raw)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: column %q: %w", ctx, names[j], err)
		}
	}

	return f, nil
}
