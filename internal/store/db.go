package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	_ "github.com/mattn/go-sqlite3"
)

var ErrTableNotFound = errors.New("table not found")

// Open opens a SQLite database file in read-only mode.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", dbPath))
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %s", dbPath)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "ping sqlite %s", dbPath)
	}
	return db, nil
}

// TableExists reports whether a table with the given name exists.
func TableExists(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type IN ('table', 'view') AND name = ?`, table).Scan(&n)
	if err != nil {
		return false, errors.Wrap(err, "query sqlite_master")
	}
	return n > 0, nil
}

// ReadTable returns the column names of a table and every row keyed by
// column name, in storage order. BLOB/TEXT values come back as strings.
func ReadTable(ctx context.Context, db *sql.DB, table string) ([]string, []map[string]interface{}, error) {
	ok, err := TableExists(ctx, db, table)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, errors.Wrapf(ErrTableNotFound, "table %q", table)
	}

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(table))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "select from %q", table)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, errors.Wrap(err, "read columns")
	}

	var out []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, errors.Wrap(err, "scan row")
		}

		rec := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				rec[col] = string(b)
				continue
			}
			rec[col] = values[i]
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "iterate rows")
	}
	return columns, out, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
