package services

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/dto"
)

// OrganizationSvcFacade exposes the representative-facing company settings.
type OrganizationSvcFacade interface {
	// GetSettings returns the requester's organization, current plan and a
	// usage summary.
	GetSettings(ctx context.Context, requesterID string) (*dto.CompanySettingsResponse, error)

	// UpdateSettings edits name, forwarding email and domain. Validation
	// failures mutate nothing.
	UpdateSettings(ctx context.Context, requesterID string, req dto.UpdateCompanySettingsRequest) (*dto.OrganizationResponse, error)
}
