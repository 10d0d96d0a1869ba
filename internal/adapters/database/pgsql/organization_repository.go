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

type PgxOrganizationRepository struct {
	db *pgxpool.Pool
}

func newPgxOrganizationRepository(db *pgxpool.Pool) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{db: db}
}

var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

const organizationColumns = `organization_id, name, domain, forwarding_email, plan_id, status, subscription_start_date, subscription_end_date, created_at, updated_at`

func scanOrganization(row pgx.Row) (*domain.Organization, error) {
	var o domain.Organization
	err := row.Scan(
		&o.OrganizationID,
		&o.Name,
		&o.Domain,
		&o.ForwardingEmail,
		&o.PlanID,
		&o.Status,
		&o.SubscriptionStartDate,
		&o.SubscriptionEndDate,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan organization: %w", err)
	}
	return &o, nil
}

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE organization_id = $1;`
	return scanOrganization(r.db.QueryRow(ctx, query, organizationID))
}

func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	query := `
		INSERT INTO organizations (organization_id, name, domain, forwarding_email, plan_id, status, subscription_start_date, subscription_end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		org.OrganizationID,
		org.Name,
		org.Domain,
		org.ForwardingEmail,
		org.PlanID,
		org.Status,
		org.SubscriptionStartDate,
		org.SubscriptionEndDate,
		org.CreatedAt,
		org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save organization: %w", err)
	}
	return nil
}

func (r *PgxOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	query := `
		UPDATE organizations
		SET name = $2, domain = $3, forwarding_email = $4, plan_id = $5, status = $6, subscription_start_date = $7, subscription_end_date = $8, updated_at = $9
		WHERE organization_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		org.OrganizationID,
		org.Name,
		org.Domain,
		org.ForwardingEmail,
		org.PlanID,
		org.Status,
		org.SubscriptionStartDate,
		org.SubscriptionEndDate,
		org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
