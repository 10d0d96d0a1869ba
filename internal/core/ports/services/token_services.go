package services

import (
	"github.com/receiptcapture/portal_backend/internal/core/domain"
)

// TokenClaims is the decoded identity carried by a session token.
type TokenClaims struct {
	AccountID string
	Email     string
	Role      domain.AccountRole
}

// TokenSvcFacade issues and validates session tokens.
type TokenSvcFacade interface {
	// IssueToken creates a signed session token for the account.
	IssueToken(account *domain.Account) (string, error)

	// ValidateToken decodes and verifies a token. Malformed, tampered or
	// expired tokens return apperrors.ErrUnauthorized.
	ValidateToken(token string) (*TokenClaims, error)
}
