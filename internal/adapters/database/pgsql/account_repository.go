package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
)

type PgxAccountRepository struct {
	db *pgxpool.Pool
}

func newPgxAccountRepository(db *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{db: db}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, email, password_hash, name, role, organization_id, is_active, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.AccountID,
		&a.Email,
		&a.PasswordHash,
		&a.Name,
		&a.Role,
		&a.OrganizationID,
		&a.IsActive,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	return &a, nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	return scanAccount(r.db.QueryRow(ctx, query, accountID))
}

func (r *PgxAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE lower(email) = lower($1);`
	return scanAccount(r.db.QueryRow(ctx, query, email))
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		taken, err := emailTakenTx(ctx, tx, account.Email, "")
		if err != nil {
			return err
		}
		if taken {
			return duplicateEmailErr(account.Email)
		}

		query := `
			INSERT INTO accounts (account_id, email, password_hash, name, role, organization_id, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
		`
		_, err = tx.Exec(ctx, query,
			account.AccountID,
			account.Email,
			account.PasswordHash,
			account.Name,
			account.Role,
			account.OrganizationID,
			account.IsActive,
			account.CreatedAt,
			account.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return duplicateEmailErr(account.Email)
			}
			return fmt.Errorf("failed to save account: %w", err)
		}
		return nil
	})
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET email = $2, password_hash = $3, name = $4, role = $5, organization_id = $6, is_active = $7, updated_at = $8
		WHERE account_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		account.AccountID,
		account.Email,
		account.PasswordHash,
		account.Name,
		account.Role,
		account.OrganizationID,
		account.IsActive,
		account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return duplicateEmailErr(account.Email)
		}
		return fmt.Errorf("failed to update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
