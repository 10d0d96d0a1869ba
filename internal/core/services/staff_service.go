package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/dto"
	"github.com/receiptcapture/portal_backend/internal/utils"
)

type staffService struct {
	BaseService
	staffRepo portsrepo.StaffRepositoryFacade
}

// NewStaffService creates the staff management service.
func NewStaffService(accountRepo portsrepo.AccountReader, staffRepo portsrepo.StaffRepositoryFacade) portssvc.StaffSvcFacade {
	return &staffService{
		BaseService: BaseService{accountRepo: accountRepo},
		staffRepo:   staffRepo,
	}
}

var _ portssvc.StaffSvcFacade = (*staffService)(nil)

func (s *staffService) ListStaff(ctx context.Context, requesterID string, organizationID string) ([]domain.Staff, error) {
	account, err := s.ResolveActiveAccount(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	switch account.Role {
	case domain.RoleOrgRepresentative:
		if account.OrganizationID == nil {
			return nil, apperrors.ErrForbidden
		}
		return s.staffRepo.ListStaffByOrganization(ctx, *account.OrganizationID)
	case domain.RolePortalAdmin:
		if organizationID != "" {
			return s.staffRepo.ListStaffByOrganization(ctx, organizationID)
		}
		return s.staffRepo.ListAllStaff(ctx)
	default:
		return nil, apperrors.ErrForbidden
	}
}

func (s *staffService) CreateStaff(ctx context.Context, requesterID string, req dto.CreateStaffRequest) (*domain.Staff, error) {
	account, organizationID, err := s.RequireRepresentative(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash staff password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	staff := domain.Staff{
		StaffID:        uuid.NewString(),
		Email:          strings.ToLower(req.Email),
		PasswordHash:   passwordHash,
		Name:           strings.TrimSpace(req.Name),
		OrganizationID: organizationID,
		Role:           domain.StaffRole(req.Role),
		IsActive:       true,
		CreatedBy:      account.AccountID,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	// The adapter checks email uniqueness across accounts and staff inside
	// the same critical section as the insert.
	if err := s.staffRepo.SaveStaff(ctx, staff); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Staff member created",
		slog.String("staff_id", staff.StaffID),
		slog.String("organization_id", organizationID))
	return &staff, nil
}

// authorizeStaffAccess loads a staff member and enforces the ownership rule:
// portal admins act on anyone, representatives only on their own
// organization's staff.
func (s *staffService) authorizeStaffAccess(ctx context.Context, requesterID, staffID string) (*domain.Staff, error) {
	account, err := s.ResolveActiveAccount(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	if account.Role == domain.RolePortalAdmin {
		return staff, nil
	}
	if account.Role == domain.RoleOrgRepresentative &&
		account.OrganizationID != nil &&
		staff.OrganizationID == *account.OrganizationID {
		return staff, nil
	}

	s.LogDebug(ctx, "Cross-organization staff access denied",
		slog.String("requester_id", requesterID),
		slog.String("staff_id", staffID))
	return nil, apperrors.ErrForbidden
}

func (s *staffService) UpdateStaff(ctx context.Context, requesterID string, staffID string, req dto.UpdateStaffRequest) (*domain.Staff, error) {
	staff, err := s.authorizeStaffAccess(ctx, requesterID, staffID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		staff.Email = strings.ToLower(*req.Email)
	}
	if req.Name != nil {
		staff.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		staff.Role = domain.StaffRole(*req.Role)
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}
	if req.Password != nil {
		passwordHash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash staff password")
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		staff.PasswordHash = passwordHash
	}
	staff.UpdatedAt = time.Now()

	if err := s.staffRepo.UpdateStaff(ctx, *staff); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Staff member updated", slog.String("staff_id", staffID))
	return staff, nil
}

func (s *staffService) DeleteStaff(ctx context.Context, requesterID string, staffID string) error {
	if _, err := s.authorizeStaffAccess(ctx, requesterID, staffID); err != nil {
		return err
	}

	if err := s.staffRepo.DeleteStaff(ctx, staffID); err != nil {
		return err
	}

	s.LogInfo(ctx, "Staff member deleted", slog.String("staff_id", staffID))
	return nil
}
