// SPDX-License-Identifier: MIT

package frame_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/modelmat/frame"
)

// openTestDB spins up an in-memory sqlite database per test.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// TestFromRows_TypedColumns drains a result set with REAL, INTEGER and TEXT
// columns into the matching frame kinds.
func TestFromRows_TypedColumns(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`CREATE TABLE obs (x REAL, n INTEGER, g TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO obs (x, n, g) VALUES
		(1.5, 10, 'b'),
		(2.5, 20, 'a'),
		(3.5, 30, 'b')`)
	require.NoError(t, err)

	rows, err := db.Query(`SELECT x, n, g FROM obs ORDER BY rowid`)
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	f, err := frame.FromRows(rows)
	require.NoError(t, err)

	assert.Equal(t, 3, f.Rows())
	assert.Equal(t, []string{"x", "n", "g"}, f.Columns())

	x, err := f.Numeric("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, x)

	n, err := f.Numeric("n")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, n, "integers widen to float64")

	codes, labels, err := f.Categorical("g")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, labels)
	assert.Equal(t, []int{1, 0, 1}, codes)
}

// TestFromRows_RejectsNull: missing values are out of scope, so a NULL cell
// fails the whole ingestion.
func TestFromRows_RejectsNull(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`CREATE TABLE obs (x REAL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO obs (x) VALUES (1.0), (NULL)`)
	require.NoError(t, err)

	rows, err := db.Query(`SELECT x FROM obs ORDER BY rowid`)
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	_, err = frame.FromRows(rows)
	assert.ErrorIs(t, err, frame.ErrScanType)
}

// TestFromRows_RejectsMixedKinds uses sqlite's dynamic typing to smuggle a
// number into a text column; the frame must refuse it.
func TestFromRows_RejectsMixedKinds(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`CREATE TABLE mixed (v)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO mixed (v) VALUES ('label'), (42)`)
	require.NoError(t, err)

	rows, err := db.Query(`SELECT v FROM mixed ORDER BY rowid`)
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	_, err = frame.FromRows(rows)
	assert.ErrorIs(t, err, frame.ErrScanType)
}

// TestFromRows_EmptyResult yields a zero-row frame that downstream planning
// will reject on its own terms.
func TestFromRows_EmptyResult(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`CREATE TABLE obs (x REAL)`)
	require.NoError(t, err)

	rows, err := db.Query(`SELECT x FROM obs`)
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	f, err := frame.FromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Rows())
	assert.Equal(t, []string{"x"}, f.Columns())
}
