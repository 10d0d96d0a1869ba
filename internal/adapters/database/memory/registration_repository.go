package memory

import (
	"context"
	"fmt"

	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
)

type registrationRepository struct {
	store *Store
}

func newRegistrationRepository(store *Store) portsrepo.RegistrationRepository {
	return &registrationRepository{store: store}
}

var _ portsrepo.RegistrationRepository = (*registrationRepository)(nil)

// CreateOrganizationWithRepresentative commits the whole registration under
// one lock: the uniqueness check and the three inserts cannot interleave with
// a concurrent registration of the same email.
func (r *registrationRepository) CreateOrganizationWithRepresentative(ctx context.Context, org domain.Organization, representative domain.Account, trialEntry domain.BillingEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.emailTaken(representative.Email, "") {
		return fmt.Errorf("%w: email %s", apperrors.ErrDuplicate, representative.Email)
	}

	r.store.organizations[org.OrganizationID] = org
	r.store.accounts[representative.AccountID] = representative
	r.store.billing[org.OrganizationID] = append(r.store.billing[org.OrganizationID], trialEntry)
	return nil
}
