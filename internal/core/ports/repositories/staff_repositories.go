package repositories

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
)

// StaffReader defines read operations for staff members.
type StaffReader interface {
	// FindStaffByID retrieves a staff member by ID. Returns apperrors.ErrNotFound if absent.
	FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error)

	// FindStaffByEmail retrieves a staff member by email. Returns apperrors.ErrNotFound if absent.
	FindStaffByEmail(ctx context.Context, email string) (*domain.Staff, error)

	// ListStaffByOrganization retrieves all staff of one organization.
	ListStaffByOrganization(ctx context.Context, organizationID string) ([]domain.Staff, error)

	// ListAllStaff retrieves staff across every organization (admin use).
	ListAllStaff(ctx context.Context) ([]domain.Staff, error)
}

// StaffWriter defines write operations for staff members.
type StaffWriter interface {
	// SaveStaff inserts a new staff member. Returns apperrors.ErrDuplicate if
	// the email is already taken by any account or staff member. The check and
	// the insert happen atomically in the adapter.
	SaveStaff(ctx context.Context, staff domain.Staff) error

	// UpdateStaff persists changes to an existing staff member. When the email
	// changed, the adapter re-checks uniqueness (excluding the member itself)
	// and returns apperrors.ErrDuplicate on collision.
	UpdateStaff(ctx context.Context, staff domain.Staff) error

	// DeleteStaff removes a staff member. Returns apperrors.ErrNotFound if absent.
	DeleteStaff(ctx context.Context, staffID string) error
}

// StaffRepositoryFacade combines staff reader and writer.
type StaffRepositoryFacade interface {
	StaffReader
	StaffWriter
}
