package db

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogi-fashion/embroidery-service/internal/config"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	cfg := config.Database{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "embroidery.db")}
	database, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func tableNames(t *testing.T, database *DB) []string {
	t.Helper()
	var names []string
	err := database.DB.Select(&names, `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'schema_migrations' ORDER BY name`)
	require.NoError(t, err)
	return names
}

func TestEnsureSchema_CreatesTables(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, database.EnsureSchema(context.Background()))

	assert.Equal(t, []string{"clients", "employees", "expenses", "products", "users"}, tableNames(t, database))
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.EnsureSchema(ctx))
	require.NoError(t, database.EnsureSchema(ctx))

	assert.Len(t, tableNames(t, database), 5)
}

func TestEnsureSchema_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "embroidery.db")
	cfg := config.Database{Driver: "sqlite", Path: path}

	first, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, first.EnsureSchema(context.Background()))
	_, err = first.DB.Exec(`INSERT INTO employees (id, name, contact, role, created_at, updated_at) VALUES ('e1', 'Ravi', '1', 'Tailor', '2024-01-01 00:00:00', '2024-01-01 00:00:00')`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(cfg)
	require.NoError(t, err)
	defer second.Close()
	require.NoError(t, second.EnsureSchema(context.Background()))

	var n int
	require.NoError(t, second.DB.Get(&n, `SELECT COUNT(*) FROM employees`))
	assert.Equal(t, 1, n)
}

func TestClassifyError_SQLiteUnique(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, database.EnsureSchema(context.Background()))

	insert := `INSERT INTO users (id, username, password_hash, created_at, updated_at) VALUES (?, 'alice', 'x', '2024-01-01 00:00:00', '2024-01-01 00:00:00')`
	_, err := database.DB.Exec(insert, "u1")
	require.NoError(t, err)

	_, err = database.DB.Exec(insert, "u2")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestClassifyError(t *testing.T) {
	assert.True(t, IsNoRows(fmt.Errorf("get: %w", sql.ErrNoRows)))
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.Equal(t, ErrorClassUnavailable, ClassifyError(&pq.Error{Code: "08006"}))
	assert.Equal(t, ErrorClassUnavailable, ClassifyError(sql.ErrConnDone))
	assert.False(t, IsUniqueViolation(nil))
}
