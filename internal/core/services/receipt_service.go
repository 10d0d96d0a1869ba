package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/dto"
	"github.com/shopspring/decimal"
)

const maxPageSize = 100

type receiptService struct {
	BaseService
	receiptRepo portsrepo.ReceiptRepositoryFacade
	staffRepo   portsrepo.StaffReader
}

// NewReceiptService creates the receipt review service.
func NewReceiptService(
	accountRepo portsrepo.AccountReader,
	receiptRepo portsrepo.ReceiptRepositoryFacade,
	staffRepo portsrepo.StaffReader,
) portssvc.ReceiptSvcFacade {
	return &receiptService{
		BaseService: BaseService{accountRepo: accountRepo},
		receiptRepo: receiptRepo,
		staffRepo:   staffRepo,
	}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// receiptFilter is the parsed, validated form of dto.ListReceiptsParams.
type receiptFilter struct {
	status    string
	startDate *time.Time
	endDate   *time.Time
	minAmount *decimal.Decimal
	maxAmount *decimal.Decimal
	search    string
}

// dateLayouts accepted on startDate/endDate query parameters.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseFilterDate(value string) (*time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, value)
}

func parseFilterAmount(value string) (*decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, value)
	}
	return &d, nil
}

func parseReceiptFilter(params dto.ListReceiptsParams) (*receiptFilter, error) {
	f := &receiptFilter{search: strings.TrimSpace(params.Search)}

	// "all" is what the dashboard's status dropdown sends for no filter.
	if params.Status != "" && params.Status != "all" {
		f.status = params.Status
	}

	var err error
	if params.StartDate != "" {
		if f.startDate, err = parseFilterDate(params.StartDate); err != nil {
			return nil, err
		}
	}
	if params.EndDate != "" {
		if f.endDate, err = parseFilterDate(params.EndDate); err != nil {
			return nil, err
		}
	}
	if params.MinAmount != "" {
		if f.minAmount, err = parseFilterAmount(params.MinAmount); err != nil {
			return nil, err
		}
	}
	if params.MaxAmount != "" {
		if f.maxAmount, err = parseFilterAmount(params.MaxAmount); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// matches applies all active filters. The free-text search has OR semantics
// across merchant, notes and category.
func (f *receiptFilter) matches(r *domain.Receipt) bool {
	if f.status != "" && string(r.Status) != f.status {
		return false
	}
	if f.startDate != nil && r.EffectiveDate().Before(*f.startDate) {
		return false
	}
	if f.endDate != nil && r.EffectiveDate().After(*f.endDate) {
		return false
	}
	if f.minAmount != nil {
		amount := decimal.Zero
		if r.Amount != nil {
			amount = *r.Amount
		}
		if amount.LessThan(*f.minAmount) {
			return false
		}
	}
	if f.maxAmount != nil {
		amount := decimal.Zero
		if r.Amount != nil {
			amount = *r.Amount
		}
		if amount.GreaterThan(*f.maxAmount) {
			return false
		}
	}
	if f.search != "" {
		needle := strings.ToLower(f.search)
		if !containsFold(r.MerchantName, needle) &&
			!containsFold(r.Notes, needle) &&
			!containsFold(r.Category, needle) {
			return false
		}
	}
	return true
}

func containsFold(field *string, lowerNeedle string) bool {
	return field != nil && strings.Contains(strings.ToLower(*field), lowerNeedle)
}

func (s *receiptService) ListReceipts(ctx context.Context, requesterID string, params dto.ListReceiptsParams) (*dto.ListReceiptsResponse, error) {
	_, organizationID, err := s.RequireRepresentative(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	if params.Page <= 0 {
		return nil, fmt.Errorf("%w: page must be a positive integer", apperrors.ErrValidation)
	}
	if params.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be a positive integer", apperrors.ErrValidation)
	}
	if params.Limit > maxPageSize {
		params.Limit = maxPageSize
	}

	filter, err := parseReceiptFilter(params)
	if err != nil {
		return nil, err
	}

	all, err := s.receiptRepo.ListReceiptsByOrganization(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receipts",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	stats := dto.ReceiptStats{Total: len(all)}
	for i := range all {
		switch all[i].Status {
		case domain.ReceiptPending:
			stats.Pending++
		case domain.ReceiptProcessed:
			stats.Processed++
		case domain.ReceiptSent:
			stats.Sent++
		}
	}

	filtered := make([]domain.Receipt, 0, len(all))
	for i := range all {
		if filter.matches(&all[i]) {
			filtered = append(filtered, all[i])
		}
	}

	// Newest first; the stable sort keeps insertion order for equal
	// timestamps.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)
	totalPages := (total + params.Limit - 1) / params.Limit
	start := (params.Page - 1) * params.Limit
	end := start + params.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	page := filtered[start:end]

	staffByID, err := s.staffIndex(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReceiptResponse, len(page))
	for i := range page {
		responses[i] = dto.ToReceiptResponse(&page[i], staffByID[page[i].StaffID])
	}

	return &dto.ListReceiptsResponse{
		Receipts: responses,
		Pagination: dto.Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    params.Page < totalPages,
			HasPrev:    params.Page > 1,
		},
		Stats: stats,
	}, nil
}

// staffIndex maps staff IDs to members for response decoration. Receipts of
// since-deleted staff simply miss the index.
func (s *receiptService) staffIndex(ctx context.Context, organizationID string) (map[string]*domain.Staff, error) {
	staff, err := s.staffRepo.ListStaffByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	index := make(map[string]*domain.Staff, len(staff))
	for i := range staff {
		index[staff[i].StaffID] = &staff[i]
	}
	return index, nil
}

// findOwnReceipt loads a receipt and hides other organizations' receipts
// behind not-found, so their existence never leaks.
func (s *receiptService) findOwnReceipt(ctx context.Context, requesterID, receiptID string) (*domain.Receipt, string, error) {
	_, organizationID, err := s.RequireRepresentative(ctx, requesterID)
	if err != nil {
		return nil, "", err
	}

	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, "", err
	}
	if receipt.OrganizationID != organizationID {
		return nil, "", apperrors.ErrNotFound
	}
	return receipt, organizationID, nil
}

func (s *receiptService) GetReceipt(ctx context.Context, requesterID string, receiptID string) (*dto.ReceiptResponse, error) {
	receipt, organizationID, err := s.findOwnReceipt(ctx, requesterID, receiptID)
	if err != nil {
		return nil, err
	}

	staffByID, err := s.staffIndex(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToReceiptResponse(receipt, staffByID[receipt.StaffID])
	return &resp, nil
}

func (s *receiptService) UpdateReceipt(ctx context.Context, requesterID string, receiptID string, req dto.UpdateReceiptRequest) (*dto.ReceiptResponse, error) {
	receipt, organizationID, err := s.findOwnReceipt(ctx, requesterID, receiptID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		receipt.Status = domain.ReceiptStatus(*req.Status)
		if receipt.Status == domain.ReceiptSent {
			now := time.Now()
			receipt.EmailSentAt = &now
		}
	}
	if req.Notes != nil {
		receipt.Notes = req.Notes
	}

	if err := s.receiptRepo.UpdateReceipt(ctx, *receipt); err != nil {
		s.LogError(ctx, err, "Failed to update receipt", slog.String("receipt_id", receiptID))
		return nil, err
	}

	s.LogInfo(ctx, "Receipt updated",
		slog.String("receipt_id", receiptID),
		slog.String("status", string(receipt.Status)))

	staffByID, err := s.staffIndex(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToReceiptResponse(receipt, staffByID[receipt.StaffID])
	return &resp, nil
}
