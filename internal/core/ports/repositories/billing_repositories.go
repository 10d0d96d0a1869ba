package repositories

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
)

// BillingReader defines read operations for the billing history.
type BillingReader interface {
	// ListBillingByOrganization retrieves all billing entries of one
	// organization, oldest first.
	ListBillingByOrganization(ctx context.Context, organizationID string) ([]domain.BillingEntry, error)
}

// BillingWriter appends to the billing history. Entries are immutable; there
// is deliberately no update or delete.
type BillingWriter interface {
	SaveBillingEntry(ctx context.Context, entry domain.BillingEntry) error
}

// BillingRepositoryFacade combines billing reader and writer.
type BillingRepositoryFacade interface {
	BillingReader
	BillingWriter
}
