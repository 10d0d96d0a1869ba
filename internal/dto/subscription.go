package dto

import (
	"time"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillingEntryResponse is the wire shape of a billing history entry.
type BillingEntryResponse struct {
	BillingID       string          `json:"billingID"`
	OrganizationID  string          `json:"organizationID"`
	PlanID          string          `json:"planID"`
	PlanName        string          `json:"planName"`
	Amount          decimal.Decimal `json:"amount"`
	BillingCycle    string          `json:"billingCycle"`
	Status          string          `json:"status"`
	BillingDate     time.Time       `json:"billingDate"`
	NextBillingDate time.Time       `json:"nextBillingDate"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToBillingEntryResponse converts a domain.BillingEntry to its response DTO.
func ToBillingEntryResponse(e *domain.BillingEntry) BillingEntryResponse {
	return BillingEntryResponse{
		BillingID:       e.BillingID,
		OrganizationID:  e.OrganizationID,
		PlanID:          e.PlanID,
		PlanName:        e.PlanName,
		Amount:          e.Amount,
		BillingCycle:    string(e.BillingCycle),
		Status:          string(e.Status),
		BillingDate:     e.BillingDate,
		NextBillingDate: e.NextBillingDate,
		Description:     e.Description,
		CreatedAt:       e.CreatedAt,
	}
}

// SubscriptionSummary is the slim organization view attached to billing and
// usage responses.
type SubscriptionSummary struct {
	Status              string    `json:"status"`
	SubscriptionEndDate time.Time `json:"subscriptionEndDate"`
}

// BillingHistoryResponse bundles history, current plan and subscription state.
type BillingHistoryResponse struct {
	BillingHistory []BillingEntryResponse `json:"billingHistory"`
	CurrentPlan    *PlanResponse          `json:"currentPlan,omitempty"`
	Organization   SubscriptionSummary    `json:"organization"`
}

// ChangePlanRequest selects the plan to switch to.
type ChangePlanRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

// ChangePlanResponse confirms a subscription change.
type ChangePlanResponse struct {
	Message      string               `json:"message"`
	Organization OrganizationResponse `json:"organization"`
	Plan         PlanResponse         `json:"plan"`
	BillingEntry BillingEntryResponse `json:"billingEntry"`
}

// MonthlyUsagePoint is one month of the six-month usage series.
type MonthlyUsagePoint struct {
	Month    string          `json:"month"` // e.g. "Aug 2026"
	Receipts int             `json:"receipts"`
	Amount   decimal.Decimal `json:"amount"`
}

// UsageLimits echoes the current plan's quota.
type UsageLimits struct {
	MaxUsers     int `json:"maxUsers"`
	MaxReceipts  int `json:"maxReceipts"`
	MaxStorageMB int `json:"maxStorageMB"`
}

// UsagePercentage is quota consumption, rounded to whole percents.
type UsagePercentage struct {
	Users    int `json:"users"`
	Receipts int `json:"receipts"`
	Storage  int `json:"storage"`
}

// UsageStats is the full usage analytics payload.
type UsageStats struct {
	StaffCount        int                 `json:"staffCount"`
	ActiveStaffCount  int                 `json:"activeStaffCount"`
	ReceiptsThisMonth int                 `json:"receiptsThisMonth"`
	TotalReceipts     int                 `json:"totalReceipts"`
	StorageUsedMB     decimal.Decimal     `json:"storageUsedMB"`
	Limits            UsageLimits         `json:"limits"`
	MonthlyUsage      []MonthlyUsagePoint `json:"monthlyUsage"`
	UsagePercentage   UsagePercentage     `json:"usagePercentage"`
}

// UsageResponse bundles usage analytics with current plan and subscription
// state.
type UsageResponse struct {
	Usage        UsageStats          `json:"usage"`
	CurrentPlan  *PlanResponse       `json:"currentPlan,omitempty"`
	Organization SubscriptionSummary `json:"organization"`
}
