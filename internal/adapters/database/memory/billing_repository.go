package memory

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
)

type billingRepository struct {
	store *Store
}

func newBillingRepository(store *Store) portsrepo.BillingRepositoryFacade {
	return &billingRepository{store: store}
}

var _ portsrepo.BillingRepositoryFacade = (*billingRepository)(nil)

func (r *billingRepository) ListBillingByOrganization(ctx context.Context, organizationID string) ([]domain.BillingEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := r.store.billing[organizationID]
	out := make([]domain.BillingEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (r *billingRepository) SaveBillingEntry(ctx context.Context, entry domain.BillingEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.billing[entry.OrganizationID] = append(r.store.billing[entry.OrganizationID], entry)
	return nil
}
