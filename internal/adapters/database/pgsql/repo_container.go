package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every postgres repository against one
// connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(dbPool),
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
		PlanRepo:         newPgxPlanRepository(dbPool),
		StaffRepo:        newPgxStaffRepository(dbPool),
		ReceiptRepo:      newPgxReceiptRepository(dbPool),
		BillingRepo:      newPgxBillingRepository(dbPool),
		RegistrationRepo: newPgxRegistrationRepository(dbPool),
	}
}
