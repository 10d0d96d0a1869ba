package memory

import (
	"strings"
	"sync"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
)

// Store is the process-local backing store shared by all memory repositories.
// One RWMutex guards every map so multi-entity operations (registration,
// email uniqueness checks) run atomically.
type Store struct {
	mu sync.RWMutex

	accounts      map[string]domain.Account
	organizations map[string]domain.Organization
	plans         map[string]domain.Plan
	staff         map[string]domain.Staff
	receipts      map[string]domain.Receipt
	billing       map[string][]domain.BillingEntry // keyed by organization ID

	// Insertion order, preserved so listings are deterministic.
	planOrder    []string
	staffOrder   []string
	receiptOrder []string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		accounts:      make(map[string]domain.Account),
		organizations: make(map[string]domain.Organization),
		plans:         make(map[string]domain.Plan),
		staff:         make(map[string]domain.Staff),
		receipts:      make(map[string]domain.Receipt),
		billing:       make(map[string][]domain.BillingEntry),
	}
}

// emailTaken reports whether the email belongs to any account or staff
// member, optionally excluding one staff ID (for self-updates). Callers must
// hold s.mu.
func (s *Store) emailTaken(email string, excludeStaffID string) bool {
	lowered := strings.ToLower(email)
	for _, a := range s.accounts {
		if strings.ToLower(a.Email) == lowered {
			return true
		}
	}
	for id, m := range s.staff {
		if id == excludeStaffID {
			continue
		}
		if strings.ToLower(m.Email) == lowered {
			return true
		}
	}
	return false
}

// NewRepositoryProvider wires every memory repository against one shared
// store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newAccountRepository(store),
		OrganizationRepo: newOrganizationRepository(store),
		PlanRepo:         newPlanRepository(store),
		StaffRepo:        newStaffRepository(store),
		ReceiptRepo:      newReceiptRepository(store),
		BillingRepo:      newBillingRepository(store),
		RegistrationRepo: newRegistrationRepository(store),
	}
}
