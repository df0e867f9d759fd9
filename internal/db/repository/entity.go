package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/yogi-fashion/embroidery-service/internal/apperror"
	"github.com/yogi-fashion/embroidery-service/internal/db"
)

// Kind describes how records of type T map onto their table. One Kind per
// entity is all it takes to get the full set of CRUD operations.
type Kind[T any] struct {
	// Name is used in error context, e.g. "client".
	Name     string
	Table    string
	IDColumn string
	// Columns lists the user-supplied fields in the order Args returns them.
	Columns []string
	Args    func(*T) []any
	// Meta exposes the identifier and timestamps the repository maintains.
	Meta func(*T) (id *uuid.UUID, createdAt, updatedAt *time.Time)
	// Unique, when set, is enforced on create and update.
	Unique *UniqueKey[T]
	// SearchColumns are matched case-insensitively by search.
	SearchColumns []string
	// Check is the repository's own validation, run before every write.
	Check func(*T) error
}

// UniqueKey names a column whose value must be distinct across records.
type UniqueKey[T any] struct {
	Column string
	Value  func(*T) string
	Err    error
}

// Repository implements create, update, delete, get, list and search for
// one entity kind against the shared store.
type Repository[T any] struct {
	db   *sqlx.DB
	kind Kind[T]

	selectSQL string
	getSQL    string
	insertSQL string
	updateSQL string
	deleteSQL string
	existsSQL string
	uniqueSQL string
	countSQL  string
	searchSQL string
}

// NewRepository prepares the statements for kind against db.
func NewRepository[T any](conn *sqlx.DB, kind Kind[T]) *Repository[T] {
	r := &Repository[T]{db: conn, kind: kind}

	cols := append([]string{kind.IDColumn}, kind.Columns...)
	cols = append(cols, "created_at", "updated_at")
	selectList := strings.Join(cols, ", ")

	r.selectSQL = fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at, %s`, selectList, kind.Table, kind.IDColumn)
	r.getSQL = conn.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`, selectList, kind.Table, kind.IDColumn))
	r.insertSQL = conn.Rebind(fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		kind.Table, selectList, strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")))

	sets := make([]string, 0, len(kind.Columns)+1)
	for _, c := range kind.Columns {
		sets = append(sets, c+" = ?")
	}
	sets = append(sets, "updated_at = ?")
	r.updateSQL = conn.Rebind(fmt.Sprintf(`UPDATE %s SET %s WHERE %s = ?`, kind.Table, strings.Join(sets, ", "), kind.IDColumn))

	r.deleteSQL = conn.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, kind.Table, kind.IDColumn))
	r.existsSQL = conn.Rebind(fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = ?`, kind.Table, kind.IDColumn))
	r.countSQL = fmt.Sprintf(`SELECT COUNT(*) FROM %s`, kind.Table)

	if kind.Unique != nil {
		r.uniqueSQL = conn.Rebind(fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = ? AND %s <> ?`,
			kind.Table, kind.Unique.Column, kind.IDColumn))
	}

	if len(kind.SearchColumns) > 0 {
		conds := make([]string, 0, len(kind.SearchColumns))
		for _, c := range kind.SearchColumns {
			conds = append(conds, fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, c))
		}
		r.searchSQL = conn.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY created_at, %s`,
			selectList, kind.Table, strings.Join(conds, " OR "), kind.IDColumn))
	}

	return r
}

// Create assigns a fresh identifier to rec and stores it. The uniqueness
// pre-check and the insert share one transaction.
func (r *Repository[T]) Create(ctx context.Context, rec *T) (uuid.UUID, error) {
	if err := r.check(rec); err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	now := time.Now().UTC()

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := r.ensureUnique(ctx, tx, rec, uuid.Nil); err != nil {
			return err
		}

		args := make([]any, 0, len(r.kind.Columns)+3)
		args = append(args, id)
		args = append(args, r.kind.Args(rec)...)
		args = append(args, now, now)

		if _, err := tx.ExecContext(ctx, r.insertSQL, args...); err != nil {
			return r.writeErr("create", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	recID, createdAt, updatedAt := r.kind.Meta(rec)
	*recID, *createdAt, *updatedAt = id, now, now

	return id, nil
}

// Update replaces every field of the record identified by id.
func (r *Repository[T]) Update(ctx context.Context, id uuid.UUID, rec *T) error {
	if err := r.check(rec); err != nil {
		return err
	}

	now := time.Now().UTC()

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var n int
		if err := tx.GetContext(ctx, &n, r.existsSQL, id); err != nil {
			return apperror.Storage(fmt.Sprintf("look up %s", r.kind.Name), err)
		}
		if n == 0 {
			return fmt.Errorf("%s %s: %w", r.kind.Name, id, apperror.ErrNotFound)
		}

		if err := r.ensureUnique(ctx, tx, rec, id); err != nil {
			return err
		}

		args := make([]any, 0, len(r.kind.Columns)+2)
		args = append(args, r.kind.Args(rec)...)
		args = append(args, now, id)

		if _, err := tx.ExecContext(ctx, r.updateSQL, args...); err != nil {
			return r.writeErr("update", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	recID, _, updatedAt := r.kind.Meta(rec)
	*recID, *updatedAt = id, now

	return nil
}

// Delete permanently removes the record identified by id.
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, r.deleteSQL, id)
	if err != nil {
		return apperror.Storage(fmt.Sprintf("delete %s", r.kind.Name), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperror.Storage("get rows affected", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", r.kind.Name, id, apperror.ErrNotFound)
	}

	return nil
}

// Get retrieves a single record by identifier.
func (r *Repository[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var rec T
	if err := r.db.GetContext(ctx, &rec, r.getSQL, id); err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%s %s: %w", r.kind.Name, id, apperror.ErrNotFound)
		}
		return nil, apperror.Storage(fmt.Sprintf("get %s", r.kind.Name), err)
	}
	return &rec, nil
}

// List returns every record. Callers needing a particular order must sort.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	recs := []T{}
	if err := r.db.SelectContext(ctx, &recs, r.selectSQL); err != nil {
		return nil, apperror.Storage(fmt.Sprintf("list %s", r.kind.Name), err)
	}
	return recs, nil
}

// Count returns the number of stored records.
func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, r.countSQL); err != nil {
		return 0, apperror.Storage(fmt.Sprintf("count %s", r.kind.Name), err)
	}
	return n, nil
}

// search matches query as a literal, case-insensitive substring of any of
// the kind's search columns. Only the empty query returns everything;
// whitespace is matched like any other character.
func (r *Repository[T]) search(ctx context.Context, query string) ([]T, error) {
	if query == "" || r.searchSQL == "" {
		return r.List(ctx)
	}

	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	args := make([]any, len(r.kind.SearchColumns))
	for i := range args {
		args[i] = pattern
	}

	recs := []T{}
	if err := r.db.SelectContext(ctx, &recs, r.searchSQL, args...); err != nil {
		return nil, apperror.Storage(fmt.Sprintf("search %s", r.kind.Name), err)
	}
	return recs, nil
}

func (r *Repository[T]) check(rec *T) error {
	if r.kind.Check == nil {
		return nil
	}
	return r.kind.Check(rec)
}

// ensureUnique fails with the kind's duplicate error when another record
// (any record but self) already holds rec's unique value.
func (r *Repository[T]) ensureUnique(ctx context.Context, tx *sqlx.Tx, rec *T, self uuid.UUID) error {
	if r.kind.Unique == nil {
		return nil
	}

	var n int
	if err := tx.GetContext(ctx, &n, r.uniqueSQL, r.kind.Unique.Value(rec), self); err != nil {
		return apperror.Storage(fmt.Sprintf("check %s %s", r.kind.Name, r.kind.Unique.Column), err)
	}
	if n > 0 {
		return r.kind.Unique.Err
	}
	return nil
}

func (r *Repository[T]) writeErr(op string, err error) error {
	if db.IsUniqueViolation(err) && r.kind.Unique != nil {
		return r.kind.Unique.Err
	}
	return apperror.Storage(fmt.Sprintf("%s %s", op, r.kind.Name), err)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
