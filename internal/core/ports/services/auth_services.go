package services

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
)

// AuthSvcFacade authenticates portal accounts and resolves callers.
type AuthSvcFacade interface {
	// Authenticate verifies email/password credentials against active
	// accounts. Unknown email, wrong password or an inactive account all
	// return apperrors.ErrUnauthorized without distinguishing which failed.
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)

	// ResolveActiveAccount loads the account behind a validated token.
	// Missing or deactivated accounts return apperrors.ErrNotFound.
	ResolveActiveAccount(ctx context.Context, accountID string) (*domain.Account, error)
}
