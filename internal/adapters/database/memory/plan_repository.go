package memory

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
)

type planRepository struct {
	store *Store
}

func newPlanRepository(store *Store) portsrepo.PlanRepositoryFacade {
	return &planRepository{store: store}
}

var _ portsrepo.PlanRepositoryFacade = (*planRepository)(nil)

func (r *planRepository) FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	plan, ok := r.store.plans[planID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &plan, nil
}

func (r *planRepository) ListActivePlans(ctx context.Context) ([]domain.Plan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	plans := make([]domain.Plan, 0, len(r.store.planOrder))
	for _, id := range r.store.planOrder {
		if plan, ok := r.store.plans[id]; ok && plan.IsActive {
			plans = append(plans, plan)
		}
	}
	return plans, nil
}

func (r *planRepository) SavePlan(ctx context.Context, plan domain.Plan) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.plans[plan.PlanID]; !ok {
		r.store.planOrder = append(r.store.planOrder, plan.PlanID)
	}
	r.store.plans[plan.PlanID] = plan
	return nil
}

func (r *planRepository) DeactivatePlan(ctx context.Context, planID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	plan, ok := r.store.plans[planID]
	if !ok {
		return apperrors.ErrNotFound
	}
	plan.IsActive = false
	r.store.plans[planID] = plan
	return nil
}
