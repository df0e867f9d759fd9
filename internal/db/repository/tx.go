package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yogi-fashion/embroidery-service/internal/apperror"
)

// withTx runs fn inside a transaction, committing on success and rolling
// back on any error. The connection goes back to the pool on every path.
func withTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return apperror.Storage("begin transaction", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperror.Storage("commit transaction", err)
	}

	return nil
}
