package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SubscriptionServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	orgRepo     *MockOrganizationRepository
	planRepo    *MockPlanRepository
	billingRepo *MockBillingRepository
	staffRepo   *MockStaffRepository
	receiptRepo *MockReceiptRepository
	svc         portssvc.SubscriptionSvcFacade
	ctx         context.Context
	org         *domain.Organization
	plan        *domain.Plan
}

func (suite *SubscriptionServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.orgRepo = new(MockOrganizationRepository)
	suite.planRepo = new(MockPlanRepository)
	suite.billingRepo = new(MockBillingRepository)
	suite.staffRepo = new(MockStaffRepository)
	suite.receiptRepo = new(MockReceiptRepository)
	suite.svc = services.NewSubscriptionService(
		suite.accountRepo, suite.orgRepo, suite.planRepo,
		suite.billingRepo, suite.staffRepo, suite.receiptRepo,
	)
	suite.ctx = context.Background()

	planID := "1"
	suite.org = &domain.Organization{
		OrganizationID:      "org-1",
		Name:                "Tech Corp Ltd",
		PlanID:              &planID,
		Status:              domain.SubscriptionTrial,
		SubscriptionEndDate: time.Now().AddDate(0, 0, 10),
	}
	suite.plan = &domain.Plan{
		PlanID:              "1",
		Name:                "Starter",
		Price:               decimal.RequireFromString("29.99"),
		BillingCycle:        domain.CycleMonthly,
		MaxUsers:            5,
		MaxReceiptsPerMonth: 100,
		IsActive:            true,
	}

	rep := representativeAccount("rep-1", "org-1")
	suite.accountRepo.On("FindAccountByID", mock.Anything, "rep-1").Return(rep, nil)
}

func (suite *SubscriptionServiceTestSuite) TestListPlans() {
	suite.planRepo.On("ListActivePlans", mock.Anything).Return([]domain.Plan{*suite.plan}, nil)

	resp, err := suite.svc.ListPlans(suite.ctx, "rep-1")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Plans, 1)
	assert.Equal(suite.T(), "Starter", resp.Plans[0].Name)
}

func (suite *SubscriptionServiceTestSuite) TestChangePlan_MonthlyAdvancesOneMonth() {
	professional := &domain.Plan{
		PlanID:       "2",
		Name:         "Professional",
		Price:        decimal.RequireFromString("59.99"),
		BillingCycle: domain.CycleMonthly,
		IsActive:     true,
	}
	suite.planRepo.On("FindPlanByID", mock.Anything, "2").Return(professional, nil)
	suite.orgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(suite.org, nil)
	suite.orgRepo.On("UpdateOrganization", mock.Anything, mock.Anything).Return(nil)
	suite.billingRepo.On("SaveBillingEntry", mock.Anything, mock.Anything).Return(nil)

	before := time.Now()
	resp, err := suite.svc.ChangePlan(suite.ctx, "rep-1", "2")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), string(domain.SubscriptionActive), resp.Organization.Status)
	assert.Equal(suite.T(), "2", *resp.Organization.PlanID)
	assert.WithinDuration(suite.T(), before.AddDate(0, 1, 0), resp.Organization.SubscriptionEndDate, time.Minute)

	assert.True(suite.T(), resp.BillingEntry.Amount.Equal(decimal.RequireFromString("59.99")))
	assert.Equal(suite.T(), "Professional", resp.BillingEntry.PlanName)
	assert.Equal(suite.T(), string(domain.BillingPaid), resp.BillingEntry.Status)
}

func (suite *SubscriptionServiceTestSuite) TestChangePlan_AnnualAdvancesOneYear() {
	annual := &domain.Plan{
		PlanID:       "4",
		Name:         "Enterprise Annual",
		Price:        decimal.RequireFromString("1499.99"),
		BillingCycle: domain.CycleAnnual,
		IsActive:     true,
	}
	suite.planRepo.On("FindPlanByID", mock.Anything, "4").Return(annual, nil)
	suite.orgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(suite.org, nil)
	suite.orgRepo.On("UpdateOrganization", mock.Anything, mock.Anything).Return(nil)
	suite.billingRepo.On("SaveBillingEntry", mock.Anything, mock.Anything).Return(nil)

	before := time.Now()
	resp, err := suite.svc.ChangePlan(suite.ctx, "rep-1", "4")
	require.NoError(suite.T(), err)
	assert.WithinDuration(suite.T(), before.AddDate(1, 0, 0), resp.Organization.SubscriptionEndDate, time.Minute)
}

func (suite *SubscriptionServiceTestSuite) TestChangePlan_UnknownPlan() {
	suite.planRepo.On("FindPlanByID", mock.Anything, "99").Return(nil, apperrors.ErrNotFound)

	_, err := suite.svc.ChangePlan(suite.ctx, "rep-1", "99")
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.orgRepo.AssertNotCalled(suite.T(), "UpdateOrganization", mock.Anything, mock.Anything)
}

func (suite *SubscriptionServiceTestSuite) TestChangePlan_DeactivatedPlan() {
	inactive := *suite.plan
	inactive.IsActive = false
	suite.planRepo.On("FindPlanByID", mock.Anything, "1").Return(&inactive, nil)

	_, err := suite.svc.ChangePlan(suite.ctx, "rep-1", "1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *SubscriptionServiceTestSuite) TestGetBillingHistory_NewestFirst() {
	older := domain.BillingEntry{BillingID: "b-1", BillingDate: time.Now().AddDate(0, -2, 0)}
	newer := domain.BillingEntry{BillingID: "b-2", BillingDate: time.Now().AddDate(0, -1, 0)}
	suite.orgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(suite.org, nil)
	suite.planRepo.On("FindPlanByID", mock.Anything, "1").Return(suite.plan, nil)
	suite.billingRepo.On("ListBillingByOrganization", mock.Anything, "org-1").Return([]domain.BillingEntry{older, newer}, nil)

	resp, err := suite.svc.GetBillingHistory(suite.ctx, "rep-1")
	require.NoError(suite.T(), err)

	require.Len(suite.T(), resp.BillingHistory, 2)
	assert.Equal(suite.T(), "b-2", resp.BillingHistory[0].BillingID)
	assert.Equal(suite.T(), "Starter", resp.CurrentPlan.Name)
	assert.Equal(suite.T(), string(domain.SubscriptionTrial), resp.Organization.Status)
}

func (suite *SubscriptionServiceTestSuite) TestGetUsage_QuotasAndSeries() {
	now := time.Now()
	receiptThisMonth := domain.Receipt{
		ReceiptID: "r-1", OrganizationID: "org-1",
		Amount: decValPtr("100.00"), CreatedAt: now,
	}
	receiptEarlier := domain.Receipt{
		ReceiptID: "r-2", OrganizationID: "org-1",
		Amount: decValPtr("50.00"), CreatedAt: now.AddDate(0, 0, -40),
	}
	suite.orgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(suite.org, nil)
	suite.planRepo.On("FindPlanByID", mock.Anything, "1").Return(suite.plan, nil)
	suite.staffRepo.On("ListStaffByOrganization", mock.Anything, "org-1").Return([]domain.Staff{
		{StaffID: "staff-1", IsActive: true},
		{StaffID: "staff-2", IsActive: false},
	}, nil)
	suite.receiptRepo.On("ListReceiptsByOrganization", mock.Anything, "org-1").Return([]domain.Receipt{
		receiptThisMonth, receiptEarlier,
	}, nil)

	resp, err := suite.svc.GetUsage(suite.ctx, "rep-1")
	require.NoError(suite.T(), err)

	usage := resp.Usage
	assert.Equal(suite.T(), 2, usage.StaffCount)
	assert.Equal(suite.T(), 1, usage.ActiveStaffCount)
	assert.Equal(suite.T(), 2, usage.TotalReceipts)
	assert.Equal(suite.T(), 1, usage.ReceiptsThisMonth)
	assert.True(suite.T(), usage.StorageUsedMB.Equal(decimal.RequireFromString("1.0")))

	assert.Equal(suite.T(), 5, usage.Limits.MaxUsers)
	assert.Equal(suite.T(), 100, usage.Limits.MaxReceipts)
	assert.Equal(suite.T(), 1000, usage.Limits.MaxStorageMB)

	// 2 of 5 users -> 40%, 1 of 100 receipts -> 1%, 1MB of 1000MB -> 0%.
	assert.Equal(suite.T(), 40, usage.UsagePercentage.Users)
	assert.Equal(suite.T(), 1, usage.UsagePercentage.Receipts)
	assert.Equal(suite.T(), 0, usage.UsagePercentage.Storage)

	require.Len(suite.T(), usage.MonthlyUsage, 6)
	last := usage.MonthlyUsage[5]
	assert.Equal(suite.T(), now.Format("Jan 2006"), last.Month)
	assert.Equal(suite.T(), 1, last.Receipts)
	assert.True(suite.T(), last.Amount.Equal(decimal.RequireFromString("100.00")))
}

func (suite *SubscriptionServiceTestSuite) TestGetUsage_AdminForbidden() {
	adminRepo := new(MockAccountRepository)
	adminRepo.On("FindAccountByID", mock.Anything, "admin-1").Return(adminAccount("admin-1"), nil)
	svc := services.NewSubscriptionService(adminRepo, suite.orgRepo, suite.planRepo, suite.billingRepo, suite.staffRepo, suite.receiptRepo)

	_, err := svc.GetUsage(suite.ctx, "admin-1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}
