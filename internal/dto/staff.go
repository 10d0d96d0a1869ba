package dto

import (
	"time"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
)

// CreateStaffRequest carries the fields for a new staff member.
type CreateStaffRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=manager employee"`
	Password string `json:"password" binding:"required"`
}

// UpdateStaffRequest is a partial staff update. Pointers distinguish omitted
// fields from zero values.
type UpdateStaffRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Name     *string `json:"name"`
	Role     *string `json:"role" binding:"omitempty,oneof=manager employee"`
	IsActive *bool   `json:"isActive"`
	Password *string `json:"password"`
}

// ListStaffParams are the query parameters for the staff listing.
// OrganizationID is honored for portal admins only.
type ListStaffParams struct {
	OrganizationID string `form:"organizationId"`
}

// StaffResponse is the wire shape of a staff member. The credential is never
// serialized.
type StaffResponse struct {
	StaffID        string    `json:"staffID"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	OrganizationID string    `json:"organizationID"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"isActive"`
	CreatedBy      string    `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToStaffResponse converts a domain.Staff to its response DTO.
func ToStaffResponse(s *domain.Staff) StaffResponse {
	return StaffResponse{
		StaffID:        s.StaffID,
		Email:          s.Email,
		Name:           s.Name,
		OrganizationID: s.OrganizationID,
		Role:           string(s.Role),
		IsActive:       s.IsActive,
		CreatedBy:      s.CreatedBy,
		CreatedAt:      s.CreatedAt,
	}
}

// ListStaffResponse wraps a staff listing.
type ListStaffResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// ToListStaffResponse converts a slice of domain.Staff to ListStaffResponse.
func ToListStaffResponse(staff []domain.Staff) ListStaffResponse {
	responses := make([]StaffResponse, len(staff))
	for i := range staff {
		responses[i] = ToStaffResponse(&staff[i])
	}
	return ListStaffResponse{Staff: responses}
}
