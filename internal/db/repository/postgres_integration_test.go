//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/yogi-fashion/embroidery-service/internal/apperror"
	"github.com/yogi-fashion/embroidery-service/internal/config"
	"github.com/yogi-fashion/embroidery-service/internal/db"
	"github.com/yogi-fashion/embroidery-service/internal/models"
)

func setupPostgres(t *testing.T) *Repositories {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:14-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := config.Database{
		Driver: "postgres",
		DSN:    fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port()),
	}

	database, err := db.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.EnsureSchema(ctx))
	require.NoError(t, database.EnsureSchema(ctx))

	return NewRepositories(database, lenient)
}

func TestPostgres_Repositories(t *testing.T) {
	repos := setupPostgres(t)
	ctx := context.Background()

	anita := models.Client{Name: "Anita Textiles", Contact: "+911234567890", Address: "Surat"}
	_, err := repos.Client.Create(ctx, &anita)
	require.NoError(t, err)
	_, err = repos.Client.Create(ctx, &models.Client{Name: "Bharat Silks", Contact: "9988776655", Address: "Varanasi"})
	require.NoError(t, err)

	_, err = repos.Client.Create(ctx, &models.Client{Name: "Copy", Contact: "+911234567890", Address: "Surat"})
	assert.True(t, errors.Is(err, apperror.ErrDuplicateContact))

	found, err := repos.Client.Search(ctx, "anita")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, anita.ID, found[0].ID)

	p := models.Product{Description: "Peacock", EmbroideryType: "Zari", Price: decimal.RequireFromString("19.99"), Stock: 10}
	id, err := repos.Product.Create(ctx, &p)
	require.NoError(t, err)
	got, err := repos.Product.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(p.Price))

	_, err = repos.User.Create(ctx, &models.User{Username: "alice", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = repos.User.Create(ctx, &models.User{Username: "alice", PasswordHash: "h"})
	assert.True(t, errors.Is(err, apperror.ErrDuplicateUsername))
}
