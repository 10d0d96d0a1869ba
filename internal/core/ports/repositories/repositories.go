package repositories

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
)

// RegistrationRepository commits the registration unit of work: organization,
// representative account and the initial trial billing entry are persisted
// atomically. If the representative email is already taken by any account or
// staff member, nothing is persisted and apperrors.ErrDuplicate is returned.
type RegistrationRepository interface {
	CreateOrganizationWithRepresentative(ctx context.Context, org domain.Organization, representative domain.Account, trialEntry domain.BillingEntry) error
}

// RepositoryProvider bundles all repository facades for dependency injection
// into the service container.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryFacade
	OrganizationRepo OrganizationRepositoryFacade
	PlanRepo         PlanRepositoryFacade
	StaffRepo        StaffRepositoryFacade
	ReceiptRepo      ReceiptRepositoryFacade
	BillingRepo      BillingRepositoryFacade
	RegistrationRepo RegistrationRepository
}
