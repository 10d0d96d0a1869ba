package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/dto"
	"github.com/shopspring/decimal"
)

const (
	// Storage consumed per captured receipt until real attachment sizes are
	// tracked.
	storagePerReceiptMB = 0.5

	// Default storage quota applied to every plan.
	defaultStorageQuotaMB = 1000

	usageHistoryMonths = 6
)

type subscriptionService struct {
	BaseService
	orgRepo     portsrepo.OrganizationRepositoryFacade
	planRepo    portsrepo.PlanReader
	billingRepo portsrepo.BillingRepositoryFacade
	staffRepo   portsrepo.StaffReader
	receiptRepo portsrepo.ReceiptReader
}

// NewSubscriptionService creates the subscription and billing service.
func NewSubscriptionService(
	accountRepo portsrepo.AccountReader,
	orgRepo portsrepo.OrganizationRepositoryFacade,
	planRepo portsrepo.PlanReader,
	billingRepo portsrepo.BillingRepositoryFacade,
	staffRepo portsrepo.StaffReader,
	receiptRepo portsrepo.ReceiptReader,
) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{
		BaseService: BaseService{accountRepo: accountRepo},
		orgRepo:     orgRepo,
		planRepo:    planRepo,
		billingRepo: billingRepo,
		staffRepo:   staffRepo,
		receiptRepo: receiptRepo,
	}
}

var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

func (s *subscriptionService) ListPlans(ctx context.Context, requesterID string) (*dto.ListPlansResponse, error) {
	if _, err := s.ResolveActiveAccount(ctx, requesterID); err != nil {
		return nil, err
	}

	plans, err := s.planRepo.ListActivePlans(ctx)
	if err != nil {
		return nil, err
	}

	resp := dto.ToListPlansResponse(plans)
	return &resp, nil
}

// loadSubscription resolves the requester's organization and current plan. The
// plan is nil when none is assigned or the referenced plan vanished.
func (s *subscriptionService) loadSubscription(ctx context.Context, requesterID string) (*domain.Organization, *domain.Plan, error) {
	_, organizationID, err := s.RequireRepresentative(ctx, requesterID)
	if err != nil {
		return nil, nil, err
	}

	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, nil, err
	}

	var plan *domain.Plan
	if org.PlanID != nil {
		plan, err = s.planRepo.FindPlanByID(ctx, *org.PlanID)
		if err != nil {
			if !IsNotFound(err) {
				return nil, nil, err
			}
			plan = nil
		}
	}
	return org, plan, nil
}

func (s *subscriptionService) GetBillingHistory(ctx context.Context, requesterID string) (*dto.BillingHistoryResponse, error) {
	org, plan, err := s.loadSubscription(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	entries, err := s.billingRepo.ListBillingByOrganization(ctx, org.OrganizationID)
	if err != nil {
		return nil, err
	}

	// Repo returns oldest first; billing pages show the latest entry on top.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].BillingDate.After(entries[j].BillingDate)
	})

	history := make([]dto.BillingEntryResponse, len(entries))
	for i := range entries {
		history[i] = dto.ToBillingEntryResponse(&entries[i])
	}

	resp := &dto.BillingHistoryResponse{
		BillingHistory: history,
		Organization: dto.SubscriptionSummary{
			Status:              string(org.Status),
			SubscriptionEndDate: org.SubscriptionEndDate,
		},
	}
	if plan != nil {
		planResp := dto.ToPlanResponse(plan)
		resp.CurrentPlan = &planResp
	}
	return resp, nil
}

func (s *subscriptionService) ChangePlan(ctx context.Context, requesterID string, planID string) (*dto.ChangePlanResponse, error) {
	_, organizationID, err := s.RequireRepresentative(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: invalid subscription plan selected", apperrors.ErrValidation)
		}
		return nil, err
	}
	if !plan.IsActive {
		return nil, fmt.Errorf("%w: invalid subscription plan selected", apperrors.ErrValidation)
	}

	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var periodEnd time.Time
	if plan.BillingCycle == domain.CycleAnnual {
		periodEnd = now.AddDate(1, 0, 0)
	} else {
		periodEnd = now.AddDate(0, 1, 0)
	}

	newPlanID := plan.PlanID
	org.PlanID = &newPlanID
	org.Status = domain.SubscriptionActive
	org.SubscriptionStartDate = now
	org.SubscriptionEndDate = periodEnd
	org.UpdatedAt = now

	if err := s.orgRepo.UpdateOrganization(ctx, *org); err != nil {
		s.LogError(ctx, err, "Failed to update subscription",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	// The entry snapshots plan name and price so history survives later plan
	// edits. No payment provider is involved.
	entry := domain.BillingEntry{
		BillingID:       uuid.NewString(),
		OrganizationID:  organizationID,
		PlanID:          plan.PlanID,
		PlanName:        plan.Name,
		Amount:          plan.Price,
		BillingCycle:    plan.BillingCycle,
		Status:          domain.BillingPaid,
		BillingDate:     now,
		NextBillingDate: periodEnd,
		Description:     fmt.Sprintf("Subscription to %s plan", plan.Name),
		CreatedAt:       now,
	}
	if err := s.billingRepo.SaveBillingEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to record billing entry",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Subscription plan changed",
		slog.String("organization_id", organizationID),
		slog.String("plan_id", plan.PlanID))

	return &dto.ChangePlanResponse{
		Message:      fmt.Sprintf("Successfully switched to the %s plan", plan.Name),
		Organization: dto.ToOrganizationResponse(org),
		Plan:         dto.ToPlanResponse(plan),
		BillingEntry: dto.ToBillingEntryResponse(&entry),
	}, nil
}

func (s *subscriptionService) GetUsage(ctx context.Context, requesterID string) (*dto.UsageResponse, error) {
	org, plan, err := s.loadSubscription(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	staff, err := s.staffRepo.ListStaffByOrganization(ctx, org.OrganizationID)
	if err != nil {
		return nil, err
	}
	receipts, err := s.receiptRepo.ListReceiptsByOrganization(ctx, org.OrganizationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	usage := dto.UsageStats{
		StaffCount:        len(staff),
		TotalReceipts:     len(receipts),
		ReceiptsThisMonth: countReceiptsThisMonth(receipts, now),
		StorageUsedMB: decimal.NewFromFloat(storagePerReceiptMB).
			Mul(decimal.NewFromInt(int64(len(receipts)))),
		MonthlyUsage: monthlyUsageSeries(receipts, now),
	}
	for i := range staff {
		if staff[i].IsActive {
			usage.ActiveStaffCount++
		}
	}

	usage.Limits = dto.UsageLimits{MaxStorageMB: defaultStorageQuotaMB}
	if plan != nil {
		usage.Limits.MaxUsers = plan.MaxUsers
		usage.Limits.MaxReceipts = plan.MaxReceiptsPerMonth
	}

	usage.UsagePercentage = dto.UsagePercentage{
		Users:    quotaPercent(decimal.NewFromInt(int64(usage.StaffCount)), usage.Limits.MaxUsers),
		Receipts: quotaPercent(decimal.NewFromInt(int64(usage.ReceiptsThisMonth)), usage.Limits.MaxReceipts),
		Storage:  quotaPercent(usage.StorageUsedMB, usage.Limits.MaxStorageMB),
	}

	resp := &dto.UsageResponse{
		Usage: usage,
		Organization: dto.SubscriptionSummary{
			Status:              string(org.Status),
			SubscriptionEndDate: org.SubscriptionEndDate,
		},
	}
	if plan != nil {
		planResp := dto.ToPlanResponse(plan)
		resp.CurrentPlan = &planResp
	}
	return resp, nil
}

// quotaPercent is consumption over quota as a whole percentage, rounded half
// up. A zero quota reads as 0 rather than dividing by zero.
func quotaPercent(used decimal.Decimal, quota int) int {
	if quota <= 0 {
		return 0
	}
	pct := used.Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(quota))).
		Round(0)
	return int(pct.IntPart())
}

// monthlyUsageSeries buckets receipts into the last six calendar months,
// oldest first, including empty months.
func monthlyUsageSeries(receipts []domain.Receipt, now time.Time) []dto.MonthlyUsagePoint {
	series := make([]dto.MonthlyUsagePoint, usageHistoryMonths)
	index := make(map[string]int, usageHistoryMonths)
	// Anchor on the first of the month so AddDate never rolls over on short
	// months.
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < usageHistoryMonths; i++ {
		month := base.AddDate(0, i-(usageHistoryMonths-1), 0)
		label := month.Format("Jan 2006")
		series[i] = dto.MonthlyUsagePoint{Month: label, Amount: decimal.Zero}
		index[month.Format("2006-01")] = i
	}

	for i := range receipts {
		key := receipts[i].EffectiveDate().Format("2006-01")
		pos, ok := index[key]
		if !ok {
			continue
		}
		series[pos].Receipts++
		if receipts[i].Amount != nil {
			series[pos].Amount = series[pos].Amount.Add(*receipts[i].Amount)
		}
	}
	return series
}
