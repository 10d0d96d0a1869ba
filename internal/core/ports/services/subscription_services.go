package services

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/dto"
)

// SubscriptionSvcFacade covers plan catalog, plan changes, billing history and
// usage analytics. "Billing" records intent only; no charge is ever made.
type SubscriptionSvcFacade interface {
	// ListPlans returns the active plan catalog (any active account).
	ListPlans(ctx context.Context, requesterID string) (*dto.ListPlansResponse, error)

	// GetBillingHistory returns the append-only billing log plus current plan
	// and subscription state (representatives only).
	GetBillingHistory(ctx context.Context, requesterID string) (*dto.BillingHistoryResponse, error)

	// ChangePlan switches the organization to the given plan: status becomes
	// active, the end date advances one month or one year by billing cycle,
	// and a billing entry snapshotting the plan is appended. Unknown or
	// deactivated plans return apperrors.ErrValidation.
	ChangePlan(ctx context.Context, requesterID string, planID string) (*dto.ChangePlanResponse, error)

	// GetUsage returns usage analytics and quota percentages.
	GetUsage(ctx context.Context, requesterID string) (*dto.UsageResponse, error)
}
