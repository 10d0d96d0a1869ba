package repositories

import (
	"context"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
)

// PlanReader defines read operations for the plan catalog.
type PlanReader interface {
	// FindPlanByID retrieves a plan by ID regardless of active flag.
	// Returns apperrors.ErrNotFound if absent.
	FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error)

	// ListActivePlans retrieves all plans currently offered for selection.
	ListActivePlans(ctx context.Context) ([]domain.Plan, error)
}

// PlanWriter defines write operations for the plan catalog. Plans are never
// deleted; DeactivatePlan flips the active flag so historical references keep
// resolving.
type PlanWriter interface {
	SavePlan(ctx context.Context, plan domain.Plan) error
	DeactivatePlan(ctx context.Context, planID string) error
}

// PlanRepositoryFacade combines plan reader and writer.
type PlanRepositoryFacade interface {
	PlanReader
	PlanWriter
}
