package memory

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
)

type organizationRepository struct {
	store *Store
}

func newOrganizationRepository(store *Store) portsrepo.OrganizationRepositoryFacade {
	return &organizationRepository{store: store}
}

var _ portsrepo.OrganizationRepositoryFacade = (*organizationRepository)(nil)

func (r *organizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	org, ok := r.store.organizations[organizationID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &org, nil
}

func (r *organizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.organizations[org.OrganizationID] = org
	return nil
}

func (r *organizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.organizations[org.OrganizationID]; !ok {
		return apperrors.ErrNotFound
	}
	r.store.organizations[org.OrganizationID] = org
	return nil
}
