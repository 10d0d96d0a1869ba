package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/receiptcapture/portal_backend/internal/apperrors"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
)

type PgxPlanRepository struct {
	db *pgxpool.Pool
}

func newPgxPlanRepository(db *pgxpool.Pool) portsrepo.PlanRepositoryFacade {
	return &PgxPlanRepository{db: db}
}

var _ portsrepo.PlanRepositoryFacade = (*PgxPlanRepository)(nil)

const planColumns = `plan_id, name, description, price, billing_cycle, max_users, max_receipts_per_month, features, is_active`

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	var p domain.Plan
	err := row.Scan(
		&p.PlanID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.BillingCycle,
		&p.MaxUsers,
		&p.MaxReceiptsPerMonth,
		&p.Features,
		&p.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan plan: %w", err)
	}
	return &p, nil
}

func (r *PgxPlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE plan_id = $1;`
	return scanPlan(r.db.QueryRow(ctx, query, planID))
}

func (r *PgxPlanRepository) ListActivePlans(ctx context.Context) ([]domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE is_active ORDER BY price;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	plans := make([]domain.Plan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}
	return plans, rows.Err()
}

func (r *PgxPlanRepository) SavePlan(ctx context.Context, plan domain.Plan) error {
	query := `
		INSERT INTO plans (plan_id, name, description, price, billing_cycle, max_users, max_receipts_per_month, features, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (plan_id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			billing_cycle = EXCLUDED.billing_cycle,
			max_users = EXCLUDED.max_users,
			max_receipts_per_month = EXCLUDED.max_receipts_per_month,
			features = EXCLUDED.features,
			is_active = EXCLUDED.is_active;
	`
	_, err := r.db.Exec(ctx, query,
		plan.PlanID,
		plan.Name,
		plan.Description,
		plan.Price,
		plan.BillingCycle,
		plan.MaxUsers,
		plan.MaxReceiptsPerMonth,
		plan.Features,
		plan.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

func (r *PgxPlanRepository) DeactivatePlan(ctx context.Context, planID string) error {
	tag, err := r.db.Exec(ctx, `UPDATE plans SET is_active = false WHERE plan_id = $1;`, planID)
	if err != nil {
		return fmt.Errorf("failed to deactivate plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
