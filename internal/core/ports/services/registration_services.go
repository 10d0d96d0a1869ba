package services

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/dto"
)

// RegistrationSvcFacade runs the signup workflow.
type RegistrationSvcFacade interface {
	// Register commits a validated registration: organization (trial),
	// representative account and the initial zero-amount billing entry are
	// created atomically, then a session token is issued. A duplicate
	// representative email returns apperrors.ErrDuplicate with nothing
	// persisted.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegistrationResponse, error)

	// ValidateStep checks one signup step's fields so the form can advance.
	// Returns apperrors.ErrValidation (wrapped with the first failing reason)
	// on bad input.
	ValidateStep(ctx context.Context, req dto.RegisterStepRequest) error
}
