package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/receiptcapture/portal_backend/internal/apperrors"
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a postgres unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// emailTakenTx checks email uniqueness across accounts and staff inside the
// caller's transaction, optionally excluding one staff ID for self-updates.
func emailTakenTx(ctx context.Context, tx pgx.Tx, email string, excludeStaffID string) (bool, error) {
	var taken bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM accounts WHERE lower(email) = lower($1)
			UNION ALL
			SELECT 1 FROM staff WHERE lower(email) = lower($1) AND staff_id <> $2
		);
	`
	if err := tx.QueryRow(ctx, query, email, excludeStaffID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	return taken, nil
}

// withTx runs fn inside a transaction, committing on success and rolling back
// on error.
func withTx(ctx context.Context, pool *pgxpool.Pool, fn func(pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// duplicateEmailErr wraps the sentinel with the offending address.
func duplicateEmailErr(email string) error {
	return fmt.Errorf("%w: email %s", apperrors.ErrDuplicate, email)
}
