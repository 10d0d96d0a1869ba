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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OrganizationServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	orgRepo     *MockOrganizationRepository
	planRepo    *MockPlanRepository
	staffRepo   *MockStaffRepository
	receiptRepo *MockReceiptRepository
	svc         portssvc.OrganizationSvcFacade
	ctx         context.Context
	org         *domain.Organization
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.orgRepo = new(MockOrganizationRepository)
	suite.planRepo = new(MockPlanRepository)
	suite.staffRepo = new(MockStaffRepository)
	suite.receiptRepo = new(MockReceiptRepository)
	suite.svc = services.NewOrganizationService(
		suite.accountRepo, suite.orgRepo, suite.planRepo, suite.staffRepo, suite.receiptRepo,
	)
	suite.ctx = context.Background()

	planID := "2"
	suite.org = &domain.Organization{
		OrganizationID:  "org-1",
		Name:            "Tech Corp Ltd",
		ForwardingEmail: "invoices@techcorp.com",
		PlanID:          &planID,
		Status:          domain.SubscriptionActive,
	}

	rep := representativeAccount("rep-1", "org-1")
	suite.accountRepo.On("FindAccountByID", mock.Anything, "rep-1").Return(rep, nil)
}

func (suite *OrganizationServiceTestSuite) TestGetSettings() {
	plan := &domain.Plan{
		PlanID:              "2",
		Name:                "Professional",
		MaxUsers:            20,
		MaxReceiptsPerMonth: 500,
		IsActive:            true,
	}
	suite.orgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(suite.org, nil)
	suite.planRepo.On("FindPlanByID", mock.Anything, "2").Return(plan, nil)
	suite.staffRepo.On("ListStaffByOrganization", mock.Anything, "org-1").Return([]domain.Staff{
		{StaffID: "staff-1", IsActive: true},
		{StaffID: "staff-2", IsActive: true},
		{StaffID: "staff-3", IsActive: false},
	}, nil)
	suite.receiptRepo.On("ListReceiptsByOrganization", mock.Anything, "org-1").Return([]domain.Receipt{
		{ReceiptID: "r-1", CreatedAt: time.Now()},
		{ReceiptID: "r-2", CreatedAt: time.Now().AddDate(0, 0, -40)},
	}, nil)

	resp, err := suite.svc.GetSettings(suite.ctx, "rep-1")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "Tech Corp Ltd", resp.Organization.Name)
	assert.Equal(suite.T(), "Professional", resp.Plan.Name)
	assert.Equal(suite.T(), 3, resp.Usage.StaffCount)
	assert.Equal(suite.T(), 2, resp.Usage.ActiveStaffCount)
	assert.Equal(suite.T(), 1, resp.Usage.ReceiptsThisMonth)
	assert.Equal(suite.T(), 20, resp.Usage.MaxUsers)
	assert.Equal(suite.T(), 500, resp.Usage.MaxReceipts)
}

func (suite *OrganizationServiceTestSuite) TestUpdateSettings_Success() {
	suite.orgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(suite.org, nil)
	suite.orgRepo.On("UpdateOrganization", mock.Anything, mock.Anything).Return(nil)

	domainName := "newcorp.io"
	resp, err := suite.svc.UpdateSettings(suite.ctx, "rep-1", dto.UpdateCompanySettingsRequest{
		Name:            "  New Corp  ",
		ForwardingEmail: "Billing@NewCorp.io",
		Domain:          &domainName,
	})
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "New Corp", resp.Name)
	assert.Equal(suite.T(), "billing@newcorp.io", resp.ForwardingEmail)
	assert.Equal(suite.T(), "newcorp.io", *resp.Domain)
}

func (suite *OrganizationServiceTestSuite) TestUpdateSettings_NameTooShort() {
	_, err := suite.svc.UpdateSettings(suite.ctx, "rep-1", dto.UpdateCompanySettingsRequest{
		Name:            " X ",
		ForwardingEmail: "billing@newcorp.io",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.orgRepo.AssertNotCalled(suite.T(), "UpdateOrganization", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestUpdateSettings_AdminForbidden() {
	adminRepo := new(MockAccountRepository)
	adminRepo.On("FindAccountByID", mock.Anything, "admin-1").Return(adminAccount("admin-1"), nil)
	svc := services.NewOrganizationService(adminRepo, suite.orgRepo, suite.planRepo, suite.staffRepo, suite.receiptRepo)

	_, err := svc.UpdateSettings(suite.ctx, "admin-1", dto.UpdateCompanySettingsRequest{
		Name:            "New Corp",
		ForwardingEmail: "billing@newcorp.io",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func TestOrganizationService(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
