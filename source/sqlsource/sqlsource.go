/*
Package sqlsource loads a sampledset.SampledSet from a SQL table,
reducing the CRUD-capable Adapter surface of
pbanos/botanic/pkg/bio/sql/sqlite3adapter and
pbanos/botanic/set/sqlset/pgadapter (dozens of methods supporting
arbitrary discrete/continuous feature schemas and write paths) down to
the one read-only, forward-only query this module needs: pull rows
out of an `instances` table and decode them into Instance values. Both
constructors share the same query against database/sql; only the
driver import and DSN handling differ between them, exactly as in the
two adapters they are grounded on.
*/
package sqlsource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Import of SQLite3 driver.
	_ "github.com/mattn/go-sqlite3"
	// Import of PostgreSQL driver.
	_ "github.com/lib/pq"

	"github.com/pbanos/ebmgrow/sampledset"
)

// Adapter loads instances from a SQL table one linear pass at a time.
type Adapter interface {
	// Instances streams every row of the configured table as an
	// Instance, closing both channels once the table is exhausted or
	// an error occurs.
	Instances(ctx context.Context, numClasses int) (<-chan sampledset.Instance, <-chan error)
}

type adapter struct {
	db *sql.DB
}

// OpenSQLite3 takes a path to a SQLite3 database file and returns an
// Adapter over its `instances` table, or an error if the driver
// rejects the DSN. The file itself is not opened until the first
// query.
func OpenSQLite3(path string) (Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %v", path, err)
	}
	return &adapter{db}, nil
}

// OpenPostgres takes a PostgreSQL connection URL and returns an
// Adapter over its `instances` table, or an error if the driver
// rejects the URL. No connection is made until the first query.
func OpenPostgres(connURL string) (Adapter, error) {
	db, err := sql.Open("postgres", connURL)
	if err != nil {
		return nil, fmt.Errorf("opening postgres database: %v", err)
	}
	return &adapter{db}, nil
}

// Instances expects a table `instances` with one row per instance and
// columns `bin, residual_0, ..., residual_{K-1}[, denominator_0, ...,
// denominator_{K-1}]`, the same layout sampledset.ReadCSV expects of
// a CSV row. It streams rows in `rowid` order.
func (a *adapter) Instances(ctx context.Context, numClasses int) (<-chan sampledset.Instance, <-chan error) {
	out := make(chan sampledset.Instance)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)

		query := buildInstancesQuery(numClasses)
		rows, err := a.db.QueryContext(ctx, query)
		if err != nil {
			errc <- fmt.Errorf("querying instances: %v", err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			inst, _, err := scanInstance(rows, numClasses)
			if err != nil {
				errc <- fmt.Errorf("scanning instance row: %v", err)
				return
			}
			select {
			case out <- inst:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		if err := rows.Err(); err != nil {
			errc <- fmt.Errorf("reading instances: %v", err)
		}
	}()
	return out, errc
}

func buildInstancesQuery(numClasses int) string {
	columns := []string{"bin"}
	for k := 0; k < numClasses; k++ {
		columns = append(columns, fmt.Sprintf("residual_%d", k))
	}
	if numClasses > 1 {
		for k := 0; k < numClasses; k++ {
			columns = append(columns, fmt.Sprintf("denominator_%d", k))
		}
	}
	return fmt.Sprintf("SELECT %s FROM instances ORDER BY rowid", strings.Join(columns, ", "))
}

func scanInstance(rows *sql.Rows, numClasses int) (sampledset.Instance, bool, error) {
	var bin int
	residuals := make([]float64, numClasses)
	dest := make([]interface{}, 0, 1+2*numClasses)
	dest = append(dest, &bin)
	for k := range residuals {
		dest = append(dest, &residuals[k])
	}
	var denominators []float64
	if numClasses > 1 {
		denominators = make([]float64, numClasses)
		for k := range denominators {
			dest = append(dest, &denominators[k])
		}
	}
	if err := rows.Scan(dest...); err != nil {
		return sampledset.Instance{}, false, err
	}
	return sampledset.Instance{Bin: bin, Residuals: residuals, Denominators: denominators}, numClasses > 1, nil
}
