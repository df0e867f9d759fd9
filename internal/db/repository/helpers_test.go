package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yogi-fashion/embroidery-service/internal/config"
	"github.com/yogi-fashion/embroidery-service/internal/db"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
)

func setupRepos(t *testing.T, policy validation.NumericPolicy) (*Repositories, *db.DB) {
	t.Helper()

	database, err := db.Open(config.Database{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.EnsureSchema(context.Background()))

	return NewRepositories(database, policy), database
}

var lenient = validation.NumericPolicy{AllowNegative: true}
