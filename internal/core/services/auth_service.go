package services

import (
	"context"
	"log/slog"

	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/utils"
)

type authService struct {
	BaseService
}

// NewAuthService creates the authentication service.
func NewAuthService(accountRepo portsrepo.AccountReader) portssvc.AuthSvcFacade {
	return &authService{
		BaseService: BaseService{accountRepo: accountRepo},
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil {
		if IsNotFound(err) {
			// Same error as a wrong password so enumeration gets nothing.
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up account for login")
		return nil, err
	}

	if !utils.CheckPasswordHash(password, account.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch on login", slog.String("account_id", account.AccountID))
		return nil, apperrors.ErrUnauthorized
	}

	if !account.IsActive {
		s.LogDebug(ctx, "Login attempt on deactivated account", slog.String("account_id", account.AccountID))
		return nil, apperrors.ErrUnauthorized
	}

	return account, nil
}
