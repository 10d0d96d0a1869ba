package memory

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
)

type receiptRepository struct {
	store *Store
}

func newReceiptRepository(store *Store) portsrepo.ReceiptRepositoryFacade {
	return &receiptRepository{store: store}
}

var _ portsrepo.ReceiptRepositoryFacade = (*receiptRepository)(nil)

func (r *receiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	receipt, ok := r.store.receipts[receiptID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &receipt, nil
}

func (r *receiptRepository) ListReceiptsByOrganization(ctx context.Context, organizationID string) ([]domain.Receipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	receipts := make([]domain.Receipt, 0)
	for _, id := range r.store.receiptOrder {
		if receipt, ok := r.store.receipts[id]; ok && receipt.OrganizationID == organizationID {
			receipts = append(receipts, receipt)
		}
	}
	return receipts, nil
}

func (r *receiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.receipts[receipt.ReceiptID]; !ok {
		r.store.receiptOrder = append(r.store.receiptOrder, receipt.ReceiptID)
	}
	r.store.receipts[receipt.ReceiptID] = receipt
	return nil
}

func (r *receiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.receipts[receipt.ReceiptID]; !ok {
		return apperrors.ErrNotFound
	}
	r.store.receipts[receipt.ReceiptID] = receipt
	return nil
}
