package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/core/services"
	"github.com/receiptcapture/portal_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RegistrationServiceTestSuite struct {
	suite.Suite
	accountRepo      *MockAccountRepository
	planRepo         *MockPlanRepository
	registrationRepo *MockRegistrationRepository
	tokens           *MockTokenService
	svc              portssvc.RegistrationSvcFacade
	ctx              context.Context
	plan             *domain.Plan
}

func (suite *RegistrationServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.planRepo = new(MockPlanRepository)
	suite.registrationRepo = new(MockRegistrationRepository)
	suite.tokens = new(MockTokenService)
	suite.svc = services.NewRegistrationService(suite.accountRepo, suite.planRepo, suite.registrationRepo, suite.tokens)
	suite.ctx = context.Background()
	suite.plan = &domain.Plan{
		PlanID:       "2",
		Name:         "Professional",
		Price:        decimal.RequireFromString("59.99"),
		BillingCycle: domain.CycleMonthly,
		IsActive:     true,
	}
}

func validRegisterRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		CompanyName:            "Tech Corp Ltd",
		ForwardingEmail:        "invoices@techcorp.com",
		RepresentativeName:     "John Smith",
		RepresentativeEmail:    "Rep@TechCorp.com",
		RepresentativePassword: "password123",
		PasswordConfirmation:   "password123",
		SelectedPlanID:         "2",
	}
}

func (suite *RegistrationServiceTestSuite) TestRegister_Success() {
	suite.planRepo.On("FindPlanByID", mock.Anything, "2").Return(suite.plan, nil)
	suite.registrationRepo.On("CreateOrganizationWithRepresentative", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	suite.tokens.On("IssueToken", mock.Anything).Return("signed-token", nil)

	before := time.Now()
	resp, err := suite.svc.Register(suite.ctx, validRegisterRequest())
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "signed-token", resp.Token)
	assert.Equal(suite.T(), "rep@techcorp.com", resp.Account.Email)
	assert.Equal(suite.T(), string(domain.RoleOrgRepresentative), resp.Account.Role)
	assert.Equal(suite.T(), string(domain.SubscriptionTrial), resp.Organization.Status)
	assert.Equal(suite.T(), "Professional", resp.Plan.Name)

	// Trial runs 30 days from registration.
	expectedEnd := before.AddDate(0, 0, 30)
	assert.WithinDuration(suite.T(), expectedEnd, resp.Organization.SubscriptionEndDate, time.Minute)

	// The committed unit of work carries a zero-amount paid trial entry.
	call := suite.registrationRepo.Calls[0]
	entry := call.Arguments.Get(3).(domain.BillingEntry)
	assert.True(suite.T(), entry.Amount.IsZero())
	assert.Equal(suite.T(), domain.BillingPaid, entry.Status)
	assert.Equal(suite.T(), "2", entry.PlanID)

	account := call.Arguments.Get(2).(domain.Account)
	assert.NotEqual(suite.T(), "password123", account.PasswordHash)
	assert.NotEmpty(suite.T(), account.PasswordHash)
}

func (suite *RegistrationServiceTestSuite) TestRegister_DuplicateEmail() {
	suite.planRepo.On("FindPlanByID", mock.Anything, "2").Return(suite.plan, nil)
	suite.registrationRepo.On("CreateOrganizationWithRepresentative", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate)

	_, err := suite.svc.Register(suite.ctx, validRegisterRequest())
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
	suite.tokens.AssertNotCalled(suite.T(), "IssueToken", mock.Anything)
}

func (suite *RegistrationServiceTestSuite) TestRegister_PasswordMismatch() {
	req := validRegisterRequest()
	req.PasswordConfirmation = "different123"

	_, err := suite.svc.Register(suite.ctx, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.registrationRepo.AssertNotCalled(suite.T(), "CreateOrganizationWithRepresentative", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RegistrationServiceTestSuite) TestRegister_ShortPassword() {
	req := validRegisterRequest()
	req.RepresentativePassword = "short"
	req.PasswordConfirmation = "short"

	_, err := suite.svc.Register(suite.ctx, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *RegistrationServiceTestSuite) TestRegister_InactivePlan() {
	inactive := *suite.plan
	inactive.IsActive = false
	suite.planRepo.On("FindPlanByID", mock.Anything, "2").Return(&inactive, nil)

	_, err := suite.svc.Register(suite.ctx, validRegisterRequest())
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *RegistrationServiceTestSuite) TestValidateStep_Company() {
	err := suite.svc.ValidateStep(suite.ctx, dto.RegisterStepRequest{
		Step:            dto.RegisterStepCompany,
		CompanyName:     "Tech Corp Ltd",
		ForwardingEmail: "invoices@techcorp.com",
	})
	assert.NoError(suite.T(), err)

	err = suite.svc.ValidateStep(suite.ctx, dto.RegisterStepRequest{
		Step:            dto.RegisterStepCompany,
		CompanyName:     "   ",
		ForwardingEmail: "invoices@techcorp.com",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)

	err = suite.svc.ValidateStep(suite.ctx, dto.RegisterStepRequest{
		Step:            dto.RegisterStepCompany,
		CompanyName:     "Tech Corp Ltd",
		ForwardingEmail: "not-an-email",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *RegistrationServiceTestSuite) TestValidateStep_PlanUnknown() {
	suite.planRepo.On("FindPlanByID", mock.Anything, "99").Return(nil, apperrors.ErrNotFound)

	err := suite.svc.ValidateStep(suite.ctx, dto.RegisterStepRequest{
		Step:           dto.RegisterStepPlan,
		SelectedPlanID: "99",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *RegistrationServiceTestSuite) TestValidateStep_UnknownStep() {
	err := suite.svc.ValidateStep(suite.ctx, dto.RegisterStepRequest{Step: "payment"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func TestRegistrationService(t *testing.T) {
	suite.Run(t, new(RegistrationServiceTestSuite))
}
