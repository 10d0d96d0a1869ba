package dto

import (
	"time"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
)

// OrganizationResponse is the wire shape of an organization.
type OrganizationResponse struct {
	OrganizationID        string    `json:"organizationID"`
	Name                  string    `json:"name"`
	Domain                *string   `json:"domain,omitempty"`
	ForwardingEmail       string    `json:"forwardingEmail"`
	PlanID                *string   `json:"planID,omitempty"`
	Status                string    `json:"status"`
	SubscriptionStartDate time.Time `json:"subscriptionStartDate"`
	SubscriptionEndDate   time.Time `json:"subscriptionEndDate"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// ToOrganizationResponse converts a domain.Organization to its response DTO.
func ToOrganizationResponse(o *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID:        o.OrganizationID,
		Name:                  o.Name,
		Domain:                o.Domain,
		ForwardingEmail:       o.ForwardingEmail,
		PlanID:                o.PlanID,
		Status:                string(o.Status),
		SubscriptionStartDate: o.SubscriptionStartDate,
		SubscriptionEndDate:   o.SubscriptionEndDate,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

// UpdateCompanySettingsRequest carries the editable organization settings.
type UpdateCompanySettingsRequest struct {
	Name            string  `json:"name" binding:"required"`
	ForwardingEmail string  `json:"forwardingEmail" binding:"required,email"`
	Domain          *string `json:"domain"`
}

// SettingsUsage summarizes plan consumption on the settings page.
type SettingsUsage struct {
	StaffCount        int `json:"staffCount"`
	ActiveStaffCount  int `json:"activeStaffCount"`
	ReceiptsThisMonth int `json:"receiptsThisMonth"`
	MaxUsers          int `json:"maxUsers"`
	MaxReceipts       int `json:"maxReceipts"`
}

// CompanySettingsResponse bundles the organization, its current plan and a
// usage summary.
type CompanySettingsResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Plan         *PlanResponse        `json:"plan,omitempty"`
	Usage        SettingsUsage        `json:"usage"`
}
