package repositories

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
)

// ReceiptReader defines read operations for receipts.
type ReceiptReader interface {
	// FindReceiptByID retrieves a receipt by ID. Returns apperrors.ErrNotFound if absent.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// ListReceiptsByOrganization retrieves every receipt of one organization in
	// insertion order. Filtering and pagination are the service's concern.
	ListReceiptsByOrganization(ctx context.Context, organizationID string) ([]domain.Receipt, error)
}

// ReceiptWriter defines write operations for receipts.
type ReceiptWriter interface {
	// SaveReceipt inserts a new receipt (used by the ingestion path and seeding).
	SaveReceipt(ctx context.Context, receipt domain.Receipt) error

	// UpdateReceipt persists changes to an existing receipt.
	UpdateReceipt(ctx context.Context, receipt domain.Receipt) error
}

// ReceiptRepositoryFacade combines receipt reader and writer.
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}
