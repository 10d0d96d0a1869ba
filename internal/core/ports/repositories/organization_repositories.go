package repositories

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
)

// OrganizationReader defines read operations for organizations.
type OrganizationReader interface {
	// FindOrganizationByID retrieves an organization by ID. Returns apperrors.ErrNotFound if absent.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
}

// OrganizationWriter defines write operations for organizations.
type OrganizationWriter interface {
	SaveOrganization(ctx context.Context, org domain.Organization) error
	UpdateOrganization(ctx context.Context, org domain.Organization) error
}

// OrganizationRepositoryFacade combines organization reader and writer.
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
}
