package services

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
	"github.com/receiptcapture/portal_backend/internal/dto"
)

// StaffSvcFacade manages an organization's staff members. Every operation
// resolves the requesting account and enforces the role/ownership rules:
// representatives act only on their own organization, portal admins read and
// mutate across organizations.
type StaffSvcFacade interface {
	// ListStaff returns staff scoped by the requester's role. Representatives
	// get their own organization's staff; portal admins get all staff or, when
	// organizationID is non-empty, one organization's.
	ListStaff(ctx context.Context, requesterID string, organizationID string) ([]domain.Staff, error)

	// CreateStaff adds a staff member to the representative's organization.
	CreateStaff(ctx context.Context, requesterID string, req dto.CreateStaffRequest) (*domain.Staff, error)

	// UpdateStaff applies a partial update. Applying the same update twice
	// yields the same final state.
	UpdateStaff(ctx context.Context, requesterID string, staffID string, req dto.UpdateStaffRequest) (*domain.Staff, error)

	// DeleteStaff removes a staff member.
	DeleteStaff(ctx context.Context, requesterID string, staffID string) error
}
