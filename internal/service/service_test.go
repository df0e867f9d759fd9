package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yogi-fashion/embroidery-service/internal/config"
	"github.com/yogi-fashion/embroidery-service/internal/db"
	"github.com/yogi-fashion/embroidery-service/internal/db/repository"
	"github.com/yogi-fashion/embroidery-service/internal/models"
	"github.com/yogi-fashion/embroidery-service/internal/validation"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []models.ChangeEvent
}

func (r *recordingNotifier) Notify(e models.ChangeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingNotifier) Events() []models.ChangeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ChangeEvent(nil), r.events...)
}

func setupServices(t *testing.T, policy validation.NumericPolicy) (*Services, *recordingNotifier) {
	t.Helper()

	database, err := db.Open(config.Database{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, database.EnsureSchema(context.Background()))

	n := &recordingNotifier{}
	svcs, err := NewServices(
		repository.NewRepositories(database, policy),
		JWTConfig{Secret: "test-secret", ExpiresIn: 1},
		bcrypt.MinCost,
		policy,
		n,
	)
	require.NoError(t, err)

	return svcs, n
}
