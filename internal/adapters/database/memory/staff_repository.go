package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
)

type staffRepository struct {
	store *Store
}

func newStaffRepository(store *Store) portsrepo.StaffRepositoryFacade {
	return &staffRepository{store: store}
}

var _ portsrepo.StaffRepositoryFacade = (*staffRepository)(nil)

func (r *staffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	staff, ok := r.store.staff[staffID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &staff, nil
}

func (r *staffRepository) FindStaffByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	lowered := strings.ToLower(email)
	for _, staff := range r.store.staff {
		if strings.ToLower(staff.Email) == lowered {
			m := staff
			return &m, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *staffRepository) ListStaffByOrganization(ctx context.Context, organizationID string) ([]domain.Staff, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	staff := make([]domain.Staff, 0)
	for _, id := range r.store.staffOrder {
		if m, ok := r.store.staff[id]; ok && m.OrganizationID == organizationID {
			staff = append(staff, m)
		}
	}
	return staff, nil
}

func (r *staffRepository) ListAllStaff(ctx context.Context) ([]domain.Staff, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	staff := make([]domain.Staff, 0, len(r.store.staffOrder))
	for _, id := range r.store.staffOrder {
		if m, ok := r.store.staff[id]; ok {
			staff = append(staff, m)
		}
	}
	return staff, nil
}

func (r *staffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.emailTaken(staff.Email, "") {
		return fmt.Errorf("%w: email %s", apperrors.ErrDuplicate, staff.Email)
	}
	r.store.staff[staff.StaffID] = staff
	r.store.staffOrder = append(r.store.staffOrder, staff.StaffID)
	return nil
}

func (r *staffRepository) UpdateStaff(ctx context.Context, staff domain.Staff) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.staff[staff.StaffID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if !strings.EqualFold(current.Email, staff.Email) && r.store.emailTaken(staff.Email, staff.StaffID) {
		return fmt.Errorf("%w: email %s", apperrors.ErrDuplicate, staff.Email)
	}
	r.store.staff[staff.StaffID] = staff
	return nil
}

func (r *staffRepository) DeleteStaff(ctx context.Context, staffID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.staff[staffID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.store.staff, staffID)
	for i, id := range r.store.staffOrder {
		if id == staffID {
			r.store.staffOrder = append(r.store.staffOrder[:i], r.store.staffOrder[i+1:]...)
			break
		}
	}
	return nil
}
