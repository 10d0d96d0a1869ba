package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
)

type PgxBillingRepository struct {
	db *pgxpool.Pool
}

func newPgxBillingRepository(db *pgxpool.Pool) portsrepo.BillingRepositoryFacade {
	return &PgxBillingRepository{db: db}
}

var _ portsrepo.BillingRepositoryFacade = (*PgxBillingRepository)(nil)

const billingColumns = `billing_id, organization_id, plan_id, plan_name, amount, billing_cycle, status, billing_date, next_billing_date, description, created_at`

func (r *PgxBillingRepository) ListBillingByOrganization(ctx context.Context, organizationID string) ([]domain.BillingEntry, error) {
	query := `SELECT ` + billingColumns + ` FROM billing_entries WHERE organization_id = $1 ORDER BY billing_date;`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list billing entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.BillingEntry, 0)
	for rows.Next() {
		var e domain.BillingEntry
		err := rows.Scan(
			&e.BillingID,
			&e.OrganizationID,
			&e.PlanID,
			&e.PlanName,
			&e.Amount,
			&e.BillingCycle,
			&e.Status,
			&e.BillingDate,
			&e.NextBillingDate,
			&e.Description,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan billing entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PgxBillingRepository) SaveBillingEntry(ctx context.Context, entry domain.BillingEntry) error {
	query := `
		INSERT INTO billing_entries (billing_id, organization_id, plan_id, plan_name, amount, billing_cycle, status, billing_date, next_billing_date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		entry.BillingID,
		entry.OrganizationID,
		entry.PlanID,
		entry.PlanName,
		entry.Amount,
		entry.BillingCycle,
		entry.Status,
		entry.BillingDate,
		entry.NextBillingDate,
		entry.Description,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save billing entry: %w", err)
	}
	return nil
}
