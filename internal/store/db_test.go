package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
)

func seedDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dash.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE "recruit ""2024""" (agency TEXT, quota INTEGER, note BLOB)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO "recruit ""2024""" VALUES ('AMK', 4, x'6869'), ('AKP', NULL, NULL)`)
	require.NoError(t, err)
	return path
}

func TestReadTable(t *testing.T) {
	db, err := Open(seedDB(t))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	ok, err := TableExists(ctx, db, `recruit "2024"`)
	require.NoError(t, err)
	require.True(t, ok)

	columns, rows, err := ReadTable(ctx, db, `recruit "2024"`)
	require.NoError(t, err)
	require.Equal(t, []string{"agency", "quota", "note"}, columns)
	require.Len(t, rows, 2)
	require.Equal(t, "AMK", rows[0]["agency"])
	require.Equal(t, int64(4), rows[0]["quota"])
	require.Equal(t, "hi", rows[0]["note"])
	require.Nil(t, rows[1]["quota"])
}

func TestReadTableMissing(t *testing.T) {
	db, err := Open(seedDB(t))
	require.NoError(t, err)
	defer db.Close()

	_, _, err = ReadTable(context.Background(), db, "nope")
	require.True(t, errors.Is(err, ErrTableNotFound))
}

func TestOpenIsReadOnly(t *testing.T) {
	db, err := Open(seedDB(t))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`DELETE FROM "recruit ""2024"""`)
	require.Error(t, err)
}
