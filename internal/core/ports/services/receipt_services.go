package services

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/dto"
)

// ReceiptSvcFacade reviews an organization's receipts. All operations are
// restricted to the requesting representative's own organization.
type ReceiptSvcFacade interface {
	// ListReceipts applies the optional filters, sorts newest first and
	// paginates. Invalid filter values or a non-positive page/limit return
	// apperrors.ErrValidation.
	ListReceipts(ctx context.Context, requesterID string, params dto.ListReceiptsParams) (*dto.ListReceiptsResponse, error)

	// GetReceipt returns one receipt decorated with submitter info. Receipts
	// of other organizations are indistinguishable from missing ones (404).
	GetReceipt(ctx context.Context, requesterID string, receiptID string) (*dto.ReceiptResponse, error)

	// UpdateReceipt mutates status and/or notes. Transitioning to "sent"
	// stamps the forwarding time.
	UpdateReceipt(ctx context.Context, requesterID string, receiptID string, req dto.UpdateReceiptRequest) (*dto.ReceiptResponse, error)
}
