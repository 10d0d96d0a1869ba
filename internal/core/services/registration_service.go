package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/dto"
	"github.com/receiptcapture/portal_backend/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	trialDays         = 30
	minPasswordLength = 8
)

// validate backs the service-level field checks that gin's binding layer
// cannot express (the step endpoint receives all fields as optional).
var validate = validator.New()

type registrationService struct {
	BaseService
	planRepo         portsrepo.PlanReader
	registrationRepo portsrepo.RegistrationRepository
	tokens           portssvc.TokenSvcFacade
}

// NewRegistrationService creates the signup workflow service.
func NewRegistrationService(
	accountRepo portsrepo.AccountReader,
	planRepo portsrepo.PlanReader,
	registrationRepo portsrepo.RegistrationRepository,
	tokens portssvc.TokenSvcFacade,
) portssvc.RegistrationSvcFacade {
	return &registrationService{
		BaseService:      BaseService{accountRepo: accountRepo},
		planRepo:         planRepo,
		registrationRepo: registrationRepo,
		tokens:           tokens,
	}
}

var _ portssvc.RegistrationSvcFacade = (*registrationService)(nil)

func (s *registrationService) ValidateStep(ctx context.Context, req dto.RegisterStepRequest) error {
	switch req.Step {
	case dto.RegisterStepCompany:
		return s.validateCompanyStep(req.CompanyName, req.ForwardingEmail)
	case dto.RegisterStepRepresentative:
		return s.validateRepresentativeStep(req.RepresentativeName, req.RepresentativeEmail, req.RepresentativePassword, req.PasswordConfirmation)
	case dto.RegisterStepPlan:
		return s.validatePlanStep(ctx, req.SelectedPlanID)
	default:
		return fmt.Errorf("%w: unknown registration step %q", apperrors.ErrValidation, req.Step)
	}
}

func (s *registrationService) validateCompanyStep(name, forwardingEmail string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: company name is required", apperrors.ErrValidation)
	}
	if err := validate.Var(forwardingEmail, "required,email"); err != nil {
		return fmt.Errorf("%w: a valid forwarding email is required", apperrors.ErrValidation)
	}
	return nil
}

func (s *registrationService) validateRepresentativeStep(name, email, password, confirmation string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: representative name is required", apperrors.ErrValidation)
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: a valid representative email is required", apperrors.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, minPasswordLength)
	}
	if password != confirmation {
		return fmt.Errorf("%w: password confirmation does not match", apperrors.ErrValidation)
	}
	return nil
}

func (s *registrationService) validatePlanStep(ctx context.Context, planID string) error {
	if planID == "" {
		return fmt.Errorf("%w: a subscription plan must be selected", apperrors.ErrValidation)
	}
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		if IsNotFound(err) {
			return fmt.Errorf("%w: invalid subscription plan selected", apperrors.ErrValidation)
		}
		return err
	}
	if !plan.IsActive {
		return fmt.Errorf("%w: invalid subscription plan selected", apperrors.ErrValidation)
	}
	return nil
}

func (s *registrationService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegistrationResponse, error) {
	if err := s.validateCompanyStep(req.CompanyName, req.ForwardingEmail); err != nil {
		return nil, err
	}
	if err := s.validateRepresentativeStep(req.RepresentativeName, req.RepresentativeEmail, req.RepresentativePassword, req.PasswordConfirmation); err != nil {
		return nil, err
	}
	if err := s.validatePlanStep(ctx, req.SelectedPlanID); err != nil {
		return nil, err
	}

	plan, err := s.planRepo.FindPlanByID(ctx, req.SelectedPlanID)
	if err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.RepresentativePassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash representative password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	trialEnd := now.AddDate(0, 0, trialDays)
	organizationID := uuid.NewString()
	accountID := uuid.NewString()
	planID := plan.PlanID

	var domainPtr *string
	if req.CompanyDomain != nil {
		if trimmed := strings.TrimSpace(*req.CompanyDomain); trimmed != "" {
			domainPtr = &trimmed
		}
	}

	org := domain.Organization{
		OrganizationID:        organizationID,
		Name:                  strings.TrimSpace(req.CompanyName),
		Domain:                domainPtr,
		ForwardingEmail:       strings.ToLower(req.ForwardingEmail),
		PlanID:                &planID,
		Status:                domain.SubscriptionTrial,
		SubscriptionStartDate: now,
		SubscriptionEndDate:   trialEnd,
		Timestamps:            domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	representative := domain.Account{
		AccountID:      accountID,
		Email:          strings.ToLower(req.RepresentativeEmail),
		PasswordHash:   passwordHash,
		Name:           strings.TrimSpace(req.RepresentativeName),
		Role:           domain.RoleOrgRepresentative,
		OrganizationID: &organizationID,
		IsActive:       true,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	trialEntry := domain.BillingEntry{
		BillingID:       uuid.NewString(),
		OrganizationID:  organizationID,
		PlanID:          plan.PlanID,
		PlanName:        plan.Name,
		Amount:          decimal.Zero,
		BillingCycle:    plan.BillingCycle,
		Status:          domain.BillingPaid,
		BillingDate:     now,
		NextBillingDate: trialEnd,
		Description:     fmt.Sprintf("%d-day trial for %s plan", trialDays, plan.Name),
		CreatedAt:       now,
	}

	// Organization, representative and trial entry commit as one unit; a
	// duplicate email leaves the store untouched.
	if err := s.registrationRepo.CreateOrganizationWithRepresentative(ctx, org, representative, trialEntry); err != nil {
		if !IsNotFound(err) {
			s.LogDebug(ctx, "Registration commit rejected", slog.String("error", err.Error()))
		}
		return nil, err
	}

	token, err := s.tokens.IssueToken(&representative)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue token after registration",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Organization registered",
		slog.String("organization_id", organizationID),
		slog.String("plan_id", plan.PlanID))

	return &dto.RegistrationResponse{
		Message:      "Company registration successful",
		Token:        token,
		Account:      dto.ToAccountResponse(&representative),
		Organization: dto.ToOrganizationResponse(&org),
		Plan: dto.RegisteredPlanInfo{
			Name:         plan.Name,
			TrialEndDate: trialEnd.Format(time.RFC3339),
		},
	}, nil
}
