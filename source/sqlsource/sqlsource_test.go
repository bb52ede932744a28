package sqlsource

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildInstancesQueryRegression(t *testing.T) {
	q := buildInstancesQuery(1)
	require.Equal(t, "SELECT bin, residual_0 FROM instances ORDER BY rowid", q)
}

func TestBuildInstancesQueryClassificationIncludesDenominators(t *testing.T) {
	q := buildInstancesQuery(2)
	require.Equal(t, "SELECT bin, residual_0, residual_1, denominator_0, denominator_1 FROM instances ORDER BY rowid", q)
}

func TestOpenSQLite3DefersFileAccess(t *testing.T) {
	// sql.Open for the sqlite3 driver only fails eagerly on a malformed
	// DSN; exercising the full read path requires a real database file
	// and is left to integration testing.
	_, err := OpenSQLite3("/nonexistent/dir/does/not/exist.db")
	require.NoError(t, err, "sql.Open defers the actual file access until first use")
}
