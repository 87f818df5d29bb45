// SPDX-License-Identifier: MIT

// CSV ingestion. The column kind is inferred per column: if every cell
// parses as a float64 the column is numeric, otherwise it is factorized into
// a categorical column. Quoting, embedded separators and ragged-row
// detection come from encoding/csv.

package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FromCSV reads a header-first CSV stream into a Frame.
//
// Implementation:
//   - Stage 1: Read all records; the first is the header, the rest are rows.
//   - Stage 2: For each column, attempt float parsing on every cell; fall
//     back to string factorization (sorted unique labels) on the first
//     failure.
//
// Inputs:
//   - r: CSV text; first record is the header naming the columns.
//
// Returns:
//   - *Frame: one column per header field, insertion order preserved.
//   - error : ErrNoHeader on empty input; csv parse errors verbatim;
//     registration errors (ErrEmptyName, ErrDuplicateColumn) wrapped.
//
// Complexity: Time O(rows*cols), Space O(rows*cols).
func FromCSV(r io.Reader) (*Frame, error) {
	const ctx = "FromCSV"

	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctx, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", ctx, ErrNoHeader)
	}

	header := records[0]
	body := records[1:]
	f, err := New(len(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctx, err)
	}

	var (
		j, i    int
		numeric bool
		cell    string
	)
	vals := make([]float64, len(body))
	raw := make([]string, len(body))
	for j = 0; j < len(header); j++ {
		// Optimistic numeric pass; first failure flips the column.
		numeric = true
		for i = 0; i < len(body); i++ {
			cell = strings.TrimSpace(body[i][j])
			raw[i] = cell
			if !numeric {
				continue
			}
			vals[i], err = strconv.ParseFloat(cell, 64)
			if err != nil {
				numeric = false
			}
		}

		if numeric {
			err = f.AddNumeric(header[j], vals)
		} else {
			err = f.AddCategoricalFromStrings(header[j], raw)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: column %d: %w", ctx, j, err)
		}
	}

	return f, nil
}
