package services

import (
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/platform/config"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	tokens := NewTokenService(cfg)

	return &portssvc.ServiceContainer{
		Token:        tokens,
		Auth:         NewAuthService(repos.AccountRepo),
		Registration: NewRegistrationService(repos.AccountRepo, repos.PlanRepo, repos.RegistrationRepo, tokens),
		Staff:        NewStaffService(repos.AccountRepo, repos.StaffRepo),
		Receipt:      NewReceiptService(repos.AccountRepo, repos.ReceiptRepo, repos.StaffRepo),
		Organization: NewOrganizationService(repos.AccountRepo, repos.OrganizationRepo, repos.PlanRepo, repos.StaffRepo, repos.ReceiptRepo),
		Subscription: NewSubscriptionService(repos.AccountRepo, repos.OrganizationRepo, repos.PlanRepo, repos.BillingRepo, repos.StaffRepo, repos.ReceiptRepo),
	}
}
