package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/dto"
)

const minCompanyNameLength = 2

type organizationService struct {
	BaseService
	orgRepo     portsrepo.OrganizationRepositoryFacade
	planRepo    portsrepo.PlanReader
	staffRepo   portsrepo.StaffReader
	receiptRepo portsrepo.ReceiptReader
}

// NewOrganizationService creates the company settings service.
func NewOrganizationService(
	accountRepo portsrepo.AccountReader,
	orgRepo portsrepo.OrganizationRepositoryFacade,
	planRepo portsrepo.PlanReader,
	staffRepo portsrepo.StaffReader,
	receiptRepo portsrepo.ReceiptReader,
) portssvc.OrganizationSvcFacade {
	return &organizationService{
		BaseService: BaseService{accountRepo: accountRepo},
		orgRepo:     orgRepo,
		planRepo:    planRepo,
		staffRepo:   staffRepo,
		receiptRepo: receiptRepo,
	}
}

var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

func (s *organizationService) GetSettings(ctx context.Context, requesterID string) (*dto.CompanySettingsResponse, error) {
	_, organizationID, err := s.RequireRepresentative(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CompanySettingsResponse{
		Organization: dto.ToOrganizationResponse(org),
	}

	var plan *domain.Plan
	if org.PlanID != nil {
		plan, err = s.planRepo.FindPlanByID(ctx, *org.PlanID)
		if err != nil && !IsNotFound(err) {
			return nil, err
		}
	}
	if plan != nil {
		planResp := dto.ToPlanResponse(plan)
		resp.Plan = &planResp
		resp.Usage.MaxUsers = plan.MaxUsers
		resp.Usage.MaxReceipts = plan.MaxReceiptsPerMonth
	}

	staff, err := s.staffRepo.ListStaffByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	resp.Usage.StaffCount = len(staff)
	for i := range staff {
		if staff[i].IsActive {
			resp.Usage.ActiveStaffCount++
		}
	}

	receipts, err := s.receiptRepo.ListReceiptsByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	resp.Usage.ReceiptsThisMonth = countReceiptsThisMonth(receipts, time.Now())

	return resp, nil
}

// countReceiptsThisMonth counts receipts whose effective date falls in the
// calendar month of now.
func countReceiptsThisMonth(receipts []domain.Receipt, now time.Time) int {
	count := 0
	for i := range receipts {
		d := receipts[i].EffectiveDate()
		if d.Year() == now.Year() && d.Month() == now.Month() {
			count++
		}
	}
	return count
}

func (s *organizationService) UpdateSettings(ctx context.Context, requesterID string, req dto.UpdateCompanySettingsRequest) (*dto.OrganizationResponse, error) {
	_, organizationID, err := s.RequireRepresentative(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if len(name) < minCompanyNameLength {
		return nil, fmt.Errorf("%w: company name must be at least %d characters", apperrors.ErrValidation, minCompanyNameLength)
	}

	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	org.Name = name
	org.ForwardingEmail = strings.ToLower(req.ForwardingEmail)
	if req.Domain != nil {
		if trimmed := strings.TrimSpace(*req.Domain); trimmed != "" {
			org.Domain = &trimmed
		} else {
			org.Domain = nil
		}
	}
	org.UpdatedAt = time.Now()

	if err := s.orgRepo.UpdateOrganization(ctx, *org); err != nil {
		s.LogError(ctx, err, "Failed to update company settings",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Company settings updated", slog.String("organization_id", organizationID))

	resp := dto.ToOrganizationResponse(org)
	return &resp, nil
}
