package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
	"github.com/receiptcapture/portal_backend/internal/middleware"
)

// BaseService provides logging and caller-resolution helpers shared by all
// services.
type BaseService struct {
	accountRepo portsrepo.AccountReader
}

// GetLogger gets the request-scoped logger from the context.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting.
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// ResolveActiveAccount loads the account behind a validated token. A missing
// or deactivated account yields apperrors.ErrNotFound, matching the behavior
// the dashboard expects for revoked logins.
func (s *BaseService) ResolveActiveAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

// RequireRepresentative resolves the caller and enforces that they are an
// organization representative. Returns the account and its organization ID.
func (s *BaseService) RequireRepresentative(ctx context.Context, accountID string) (*domain.Account, string, error) {
	account, err := s.ResolveActiveAccount(ctx, accountID)
	if err != nil {
		return nil, "", err
	}
	if account.Role != domain.RoleOrgRepresentative || account.OrganizationID == nil {
		s.LogDebug(ctx, "Caller is not an organization representative",
			slog.String("account_id", accountID),
			slog.String("role", string(account.Role)))
		return nil, "", apperrors.ErrForbidden
	}
	return account, *account.OrganizationID, nil
}

// IsNotFound reports whether err is the sentinel not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
