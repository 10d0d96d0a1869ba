package dto

import (
	"time"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
)

// LoginRequest carries portal login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token and the authenticated account.
type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// AccountResponse is the wire shape of an account. The credential is never
// serialized.
type AccountResponse struct {
	AccountID      string    `json:"accountID"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	OrganizationID *string   `json:"organizationID,omitempty"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		Email:          a.Email,
		Name:           a.Name,
		Role:           string(a.Role),
		OrganizationID: a.OrganizationID,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
	}
}

// MeResponse wraps the current account for /auth/me.
type MeResponse struct {
	Account AccountResponse `json:"account"`
}
