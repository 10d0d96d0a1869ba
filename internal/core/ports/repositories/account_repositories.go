package repositories

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
)

// AccountReader defines read operations for portal accounts.
type AccountReader interface {
	// FindAccountByID retrieves an account by ID. Returns apperrors.ErrNotFound if absent.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByEmail retrieves an account by email. Returns apperrors.ErrNotFound if absent.
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// AccountWriter defines write operations for portal accounts.
type AccountWriter interface {
	// SaveAccount inserts a new account. Returns apperrors.ErrDuplicate if the
	// email is already taken by any account or staff member. The check and the
	// insert happen atomically in the adapter.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount persists changes to an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines account reader and writer.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
