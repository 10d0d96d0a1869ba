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

type ReceiptServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	receiptRepo *MockReceiptRepository
	staffRepo   *MockStaffRepository
	svc         portssvc.ReceiptSvcFacade
	ctx         context.Context
	receipts    []domain.Receipt
	orgStaff    []domain.Staff
}

func decValPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func tsPtr(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &t
}

func ts(value string) time.Time {
	return *tsPtr(value)
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.receiptRepo = new(MockReceiptRepository)
	suite.staffRepo = new(MockStaffRepository)
	suite.svc = services.NewReceiptService(suite.accountRepo, suite.receiptRepo, suite.staffRepo)
	suite.ctx = context.Background()

	suite.orgStaff = []domain.Staff{
		{StaffID: "staff-1", Name: "Alice Johnson", Email: "alice@techcorp.com", OrganizationID: "org-1"},
	}

	suite.receipts = []domain.Receipt{
		{
			ReceiptID: "receipt-1", StaffID: "staff-1", OrganizationID: "org-1",
			MerchantName: strPtr("Office Depot"), Amount: decValPtr("45.99"),
			ReceiptDate: tsPtr("2025-09-25T10:30:00Z"), Notes: strPtr("Printer paper and pens"),
			Category: strPtr("Office Supplies"), Status: domain.ReceiptSent,
			CreatedAt: ts("2025-09-25T10:45:00Z"),
		},
		{
			ReceiptID: "receipt-2", StaffID: "staff-2", OrganizationID: "org-1",
			MerchantName: strPtr("Starbucks"), Amount: decValPtr("12.50"),
			ReceiptDate: tsPtr("2025-09-28T08:15:00Z"), Notes: strPtr("Client meeting coffee"),
			Category: strPtr("Meals & Entertainment"), Status: domain.ReceiptProcessed,
			CreatedAt: ts("2025-09-28T08:20:00Z"),
		},
		{
			ReceiptID: "receipt-3", StaffID: "staff-1", OrganizationID: "org-1",
			MerchantName: strPtr("Shell Gas Station"), Amount: decValPtr("67.88"),
			ReceiptDate: tsPtr("2025-10-01T14:22:00Z"), Notes: strPtr("Business trip fuel"),
			Category: strPtr("Travel & Transportation"), Status: domain.ReceiptPending,
			CreatedAt: ts("2025-10-01T14:25:00Z"),
		},
	}

	rep := representativeAccount("rep-1", "org-1")
	suite.accountRepo.On("FindAccountByID", mock.Anything, "rep-1").Return(rep, nil)
}

func (suite *ReceiptServiceTestSuite) expectListing() {
	suite.receiptRepo.On("ListReceiptsByOrganization", mock.Anything, "org-1").Return(suite.receipts, nil)
	suite.staffRepo.On("ListStaffByOrganization", mock.Anything, "org-1").Return(suite.orgStaff, nil)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_NewestFirst() {
	suite.expectListing()

	resp, err := suite.svc.ListReceipts(suite.ctx, "rep-1", dto.ListReceiptsParams{Page: 1, Limit: 10})
	require.NoError(suite.T(), err)

	require.Len(suite.T(), resp.Receipts, 3)
	assert.Equal(suite.T(), "receipt-3", resp.Receipts[0].ReceiptID)
	assert.Equal(suite.T(), "receipt-1", resp.Receipts[2].ReceiptID)
	assert.Equal(suite.T(), 3, resp.Pagination.Total)
	assert.False(suite.T(), resp.Pagination.HasNext)
	assert.False(suite.T(), resp.Pagination.HasPrev)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_SearchMatchesNotes() {
	suite.expectListing()

	resp, err := suite.svc.ListReceipts(suite.ctx, "rep-1", dto.ListReceiptsParams{
		Search: "coffee", Page: 1, Limit: 10,
	})
	require.NoError(suite.T(), err)

	require.Len(suite.T(), resp.Receipts, 1)
	assert.Equal(suite.T(), "receipt-2", resp.Receipts[0].ReceiptID)
	assert.Equal(suite.T(), "Starbucks", *resp.Receipts[0].MerchantName)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_StatsIgnoreFilters() {
	suite.expectListing()

	resp, err := suite.svc.ListReceipts(suite.ctx, "rep-1", dto.ListReceiptsParams{
		Status: "pending", Page: 1, Limit: 10,
	})
	require.NoError(suite.T(), err)

	require.Len(suite.T(), resp.Receipts, 1)
	assert.Equal(suite.T(), 3, resp.Stats.Total)
	assert.Equal(suite.T(), 1, resp.Stats.Pending)
	assert.Equal(suite.T(), 1, resp.Stats.Processed)
	assert.Equal(suite.T(), 1, resp.Stats.Sent)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_AmountRange() {
	suite.expectListing()

	resp, err := suite.svc.ListReceipts(suite.ctx, "rep-1", dto.ListReceiptsParams{
		MinAmount: "40", MaxAmount: "70", Page: 1, Limit: 10,
	})
	require.NoError(suite.T(), err)

	require.Len(suite.T(), resp.Receipts, 2)
	assert.Equal(suite.T(), "receipt-3", resp.Receipts[0].ReceiptID)
	assert.Equal(suite.T(), "receipt-1", resp.Receipts[1].ReceiptID)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_DateRangeOnReceiptDate() {
	suite.expectListing()

	resp, err := suite.svc.ListReceipts(suite.ctx, "rep-1", dto.ListReceiptsParams{
		StartDate: "2025-09-26", EndDate: "2025-09-30", Page: 1, Limit: 10,
	})
	require.NoError(suite.T(), err)

	require.Len(suite.T(), resp.Receipts, 1)
	assert.Equal(suite.T(), "receipt-2", resp.Receipts[0].ReceiptID)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_PageBeyondLast() {
	suite.expectListing()

	resp, err := suite.svc.ListReceipts(suite.ctx, "rep-1", dto.ListReceiptsParams{Page: 5, Limit: 10})
	require.NoError(suite.T(), err)

	assert.Empty(suite.T(), resp.Receipts)
	assert.Equal(suite.T(), 3, resp.Pagination.Total)
	assert.False(suite.T(), resp.Pagination.HasNext)
	assert.True(suite.T(), resp.Pagination.HasPrev)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_InvalidPage() {
	_, err := suite.svc.ListReceipts(suite.ctx, "rep-1", dto.ListReceiptsParams{Page: 0, Limit: 10})
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)

	_, err = suite.svc.ListReceipts(suite.ctx, "rep-1", dto.ListReceiptsParams{Page: 1, Limit: -1})
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_InvalidFilterValues() {
	_, err := suite.svc.ListReceipts(suite.ctx, "rep-1", dto.ListReceiptsParams{
		StartDate: "not-a-date", Page: 1, Limit: 10,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)

	_, err = suite.svc.ListReceipts(suite.ctx, "rep-1", dto.ListReceiptsParams{
		MinAmount: "lots", Page: 1, Limit: 10,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_UnknownStaffPlaceholder() {
	suite.expectListing()

	resp, err := suite.svc.ListReceipts(suite.ctx, "rep-1", dto.ListReceiptsParams{Page: 1, Limit: 10})
	require.NoError(suite.T(), err)

	// receipt-2 belongs to staff-2, who is no longer in the roster.
	var starbucks *dto.ReceiptResponse
	for i := range resp.Receipts {
		if resp.Receipts[i].ReceiptID == "receipt-2" {
			starbucks = &resp.Receipts[i]
		}
	}
	require.NotNil(suite.T(), starbucks)
	assert.Equal(suite.T(), "Unknown Staff", starbucks.StaffName)
	assert.Empty(suite.T(), starbucks.StaffEmail)
}

func (suite *ReceiptServiceTestSuite) TestGetReceipt_CrossOrgReadsAsNotFound() {
	suite.receiptRepo.On("FindReceiptByID", mock.Anything, "receipt-9").Return(&domain.Receipt{
		ReceiptID:      "receipt-9",
		OrganizationID: "org-2",
	}, nil)

	_, err := suite.svc.GetReceipt(suite.ctx, "rep-1", "receipt-9")
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *ReceiptServiceTestSuite) TestUpdateReceipt_SentStampsForwardingTime() {
	pending := suite.receipts[2]
	suite.receiptRepo.On("FindReceiptByID", mock.Anything, "receipt-3").Return(&pending, nil)
	suite.receiptRepo.On("UpdateReceipt", mock.Anything, mock.Anything).Return(nil)
	suite.staffRepo.On("ListStaffByOrganization", mock.Anything, "org-1").Return(suite.orgStaff, nil)

	status := "sent"
	resp, err := suite.svc.UpdateReceipt(suite.ctx, "rep-1", "receipt-3", dto.UpdateReceiptRequest{Status: &status})
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "sent", resp.Status)
	require.NotNil(suite.T(), resp.EmailSentAt)
	assert.WithinDuration(suite.T(), time.Now(), *resp.EmailSentAt, time.Minute)
}

func (suite *ReceiptServiceTestSuite) TestUpdateReceipt_NotesOnly() {
	processed := suite.receipts[1]
	suite.receiptRepo.On("FindReceiptByID", mock.Anything, "receipt-2").Return(&processed, nil)
	suite.receiptRepo.On("UpdateReceipt", mock.Anything, mock.Anything).Return(nil)
	suite.staffRepo.On("ListStaffByOrganization", mock.Anything, "org-1").Return(suite.orgStaff, nil)

	notes := "Reviewed and approved"
	resp, err := suite.svc.UpdateReceipt(suite.ctx, "rep-1", "receipt-2", dto.UpdateReceiptRequest{Notes: &notes})
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "processed", resp.Status)
	assert.Equal(suite.T(), "Reviewed and approved", *resp.Notes)
	assert.Nil(suite.T(), resp.EmailSentAt)
}

func TestReceiptService(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
