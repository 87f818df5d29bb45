// SPDX-License-Identifier: MIT

package frame

import "errors"

var (
	// ErrNegativeRows is returned by New when the row count is negative.
	ErrNegativeRows = errors.New("frame: negative row count")

	// ErrEmptyName is returned when a column name is the empty string.
	ErrEmptyName = errors.New("frame: empty column name")

	// ErrDuplicateColumn is returned when a column name is already taken.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrRowCount is returned when a column's length disagrees with the
	// frame's row count.
	ErrRowCount = errors.New("frame: column length disagrees with row count")

	// ErrUnknownColumn is returned by lookups for names the frame does not
	// hold.
	ErrUnknownColumn = errors.New("frame: unknown column")

	// ErrColumnType is returned when a column exists but is not of the
	// requested kind.
	ErrColumnType = errors.New("frame: column has the wrong kind")

	// ErrBadLevelCode is returned when a categorical code falls outside
	// [0, levels).
	ErrBadLevelCode = errors.New("frame: level code out of range")

	// ErrDuplicateLevel is returned when categorical level labels repeat.
	ErrDuplicateLevel = errors.New("frame: duplicate level label")

	// ErrNoHeader is returned by FromCSV when the input has no header row.
	ErrNoHeader = errors.New("frame: csv input has no header row")

	// ErrScanType is returned by FromRows for SQL values that map to
	// neither a numeric nor a categorical column (NULLs included).
	ErrScanType = errors.New("frame: unsupported sql column value")
)
