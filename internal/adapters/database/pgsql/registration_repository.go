package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
)

type PgxRegistrationRepository struct {
	db *pgxpool.Pool
}

func newPgxRegistrationRepository(db *pgxpool.Pool) portsrepo.RegistrationRepository {
	return &PgxRegistrationRepository{db: db}
}

var _ portsrepo.RegistrationRepository = (*PgxRegistrationRepository)(nil)

// CreateOrganizationWithRepresentative inserts the organization, its
// representative and the trial billing entry in one transaction. The email
// uniqueness check shares the transaction, so a concurrent duplicate signup
// rolls back cleanly.
func (r *PgxRegistrationRepository) CreateOrganizationWithRepresentative(ctx context.Context, org domain.Organization, representative domain.Account, trialEntry domain.BillingEntry) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		taken, err := emailTakenTx(ctx, tx, representative.Email, "")
		if err != nil {
			return err
		}
		if taken {
			return duplicateEmailErr(representative.Email)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO organizations (organization_id, name, domain, forwarding_email, plan_id, status, subscription_start_date, subscription_end_date, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`,
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
			return fmt.Errorf("failed to insert organization: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO accounts (account_id, email, password_hash, name, role, organization_id, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
		`,
			representative.AccountID,
			representative.Email,
			representative.PasswordHash,
			representative.Name,
			representative.Role,
			representative.OrganizationID,
			representative.IsActive,
			representative.CreatedAt,
			representative.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return duplicateEmailErr(representative.Email)
			}
			return fmt.Errorf("failed to insert representative: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO billing_entries (billing_id, organization_id, plan_id, plan_name, amount, billing_cycle, status, billing_date, next_billing_date, description, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
		`,
			trialEntry.BillingID,
			trialEntry.OrganizationID,
			trialEntry.PlanID,
			trialEntry.PlanName,
			trialEntry.Amount,
			trialEntry.BillingCycle,
			trialEntry.Status,
			trialEntry.BillingDate,
			trialEntry.NextBillingDate,
			trialEntry.Description,
			trialEntry.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trial billing entry: %w", err)
		}
		return nil
	})
}
