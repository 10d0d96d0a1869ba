package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
)

type accountRepository struct {
	store *Store
}

func newAccountRepository(store *Store) portsrepo.AccountRepositoryFacade {
	return &accountRepository{store: store}
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &account, nil
}

func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	lowered := strings.ToLower(email)
	for _, account := range r.store.accounts {
		if strings.ToLower(account.Email) == lowered {
			a := account
			return &a, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.emailTaken(account.Email, "") {
		return fmt.Errorf("%w: email %s", apperrors.ErrDuplicate, account.Email)
	}
	r.store.accounts[account.AccountID] = account
	return nil
}

func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.accounts[account.AccountID]; !ok {
		return apperrors.ErrNotFound
	}
	r.store.accounts[account.AccountID] = account
	return nil
}
