package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/platform/config"
)

// sessionClaims embeds the account identity into the signed token so request
// handling never needs a session table.
type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret []byte
	issuer string
	expiry time.Duration
}

// NewTokenService creates the session token issuer/validator. Tokens are
// HS256-signed; expiry defaults to 24h via config.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
		expiry: cfg.JWTExpiryDuration,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) IssueToken(account *domain.Account) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: account.Email,
		Role:  string(account.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   account.AccountID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) ValidateToken(tokenString string) (*portssvc.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		// Malformed, tampered and expired all collapse to unauthorized; the
		// holder learns nothing about which check failed.
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, err.Error())
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrUnauthorized
	}

	return &portssvc.TokenClaims{
		AccountID: claims.Subject,
		Email:     claims.Email,
		Role:      domain.AccountRole(claims.Role),
	}, nil
}
