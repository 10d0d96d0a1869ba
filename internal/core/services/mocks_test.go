package services_test

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock OrganizationRepository ---

type MockOrganizationRepository struct {
	mock.Mock
}

var _ portsrepo.OrganizationRepositoryFacade = (*MockOrganizationRepository)(nil)

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

// --- Mock PlanRepository ---

type MockPlanRepository struct {
	mock.Mock
}

var _ portsrepo.PlanRepositoryFacade = (*MockPlanRepository)(nil)

func (m *MockPlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockPlanRepository) ListActivePlans(ctx context.Context) ([]domain.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

func (m *MockPlanRepository) SavePlan(ctx context.Context, plan domain.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) DeactivatePlan(ctx context.Context, planID string) error {
	args := m.Called(ctx, planID)
	return args.Error(0)
}

// --- Mock StaffRepository ---

type MockStaffRepository struct {
	mock.Mock
}

var _ portsrepo.StaffRepositoryFacade = (*MockStaffRepository)(nil)

func (m *MockStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindStaffByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) ListStaffByOrganization(ctx context.Context, organizationID string) ([]domain.Staff, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) ListAllStaff(ctx context.Context) ([]domain.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) UpdateStaff(ctx context.Context, staff domain.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) DeleteStaff(ctx context.Context, staffID string) error {
	args := m.Called(ctx, staffID)
	return args.Error(0)
}

// --- Mock ReceiptRepository ---

type MockReceiptRepository struct {
	mock.Mock
}

var _ portsrepo.ReceiptRepositoryFacade = (*MockReceiptRepository)(nil)

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) ListReceiptsByOrganization(ctx context.Context, organizationID string) ([]domain.Receipt, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

// --- Mock BillingRepository ---

type MockBillingRepository struct {
	mock.Mock
}

var _ portsrepo.BillingRepositoryFacade = (*MockBillingRepository)(nil)

func (m *MockBillingRepository) ListBillingByOrganization(ctx context.Context, organizationID string) ([]domain.BillingEntry, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillingEntry), args.Error(1)
}

func (m *MockBillingRepository) SaveBillingEntry(ctx context.Context, entry domain.BillingEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock RegistrationRepository ---

type MockRegistrationRepository struct {
	mock.Mock
}

var _ portsrepo.RegistrationRepository = (*MockRegistrationRepository)(nil)

func (m *MockRegistrationRepository) CreateOrganizationWithRepresentative(ctx context.Context, org domain.Organization, representative domain.Account, trialEntry domain.BillingEntry) error {
	args := m.Called(ctx, org, representative, trialEntry)
	return args.Error(0)
}

// --- Mock TokenService ---

type MockTokenService struct {
	mock.Mock
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

func (m *MockTokenService) IssueToken(account *domain.Account) (string, error) {
	args := m.Called(account)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(token string) (*portssvc.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.TokenClaims), args.Error(1)
}

// --- Shared fixtures ---

func strPtr(s string) *string { return &s }

func representativeAccount(accountID, organizationID string) *domain.Account {
	return &domain.Account{
		AccountID:      accountID,
		Email:          "rep@example.com",
		Name:           "Rep",
		Role:           domain.RoleOrgRepresentative,
		OrganizationID: &organizationID,
		IsActive:       true,
	}
}

func adminAccount(accountID string) *domain.Account {
	return &domain.Account{
		AccountID: accountID,
		Email:     "admin@example.com",
		Name:      "Admin",
		Role:      domain.RolePortalAdmin,
		IsActive:  true,
	}
}
