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

type PgxStaffRepository struct {
	db *pgxpool.Pool
}

func newPgxStaffRepository(db *pgxpool.Pool) portsrepo.StaffRepositoryFacade {
	return &PgxStaffRepository{db: db}
}

var _ portsrepo.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

const staffColumns = `staff_id, email, password_hash, name, organization_id, role, is_active, created_by, created_at, updated_at`

func scanStaff(row pgx.Row) (*domain.Staff, error) {
	var s domain.Staff
	err := row.Scan(
		&s.StaffID,
		&s.Email,
		&s.PasswordHash,
		&s.Name,
		&s.OrganizationID,
		&s.Role,
		&s.IsActive,
		&s.CreatedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan staff member: %w", err)
	}
	return &s, nil
}

func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE staff_id = $1;`
	return scanStaff(r.db.QueryRow(ctx, query, staffID))
}

func (r *PgxStaffRepository) FindStaffByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE lower(email) = lower($1);`
	return scanStaff(r.db.QueryRow(ctx, query, email))
}

func (r *PgxStaffRepository) listStaff(ctx context.Context, query string, args ...any) ([]domain.Staff, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	staff := make([]domain.Staff, 0)
	for rows.Next() {
		m, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, *m)
	}
	return staff, rows.Err()
}

func (r *PgxStaffRepository) ListStaffByOrganization(ctx context.Context, organizationID string) ([]domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE organization_id = $1 ORDER BY created_at;`
	return r.listStaff(ctx, query, organizationID)
}

func (r *PgxStaffRepository) ListAllStaff(ctx context.Context) ([]domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY created_at;`
	return r.listStaff(ctx, query)
}

func (r *PgxStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		taken, err := emailTakenTx(ctx, tx, staff.Email, "")
		if err != nil {
			return err
		}
		if taken {
			return duplicateEmailErr(staff.Email)
		}

		query := `
			INSERT INTO staff (staff_id, email, password_hash, name, organization_id, role, is_active, created_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`
		_, err = tx.Exec(ctx, query,
			staff.StaffID,
			staff.Email,
			staff.PasswordHash,
			staff.Name,
			staff.OrganizationID,
			staff.Role,
			staff.IsActive,
			staff.CreatedBy,
			staff.CreatedAt,
			staff.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return duplicateEmailErr(staff.Email)
			}
			return fmt.Errorf("failed to save staff member: %w", err)
		}
		return nil
	})
}

func (r *PgxStaffRepository) UpdateStaff(ctx context.Context, staff domain.Staff) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		taken, err := emailTakenTx(ctx, tx, staff.Email, staff.StaffID)
		if err != nil {
			return err
		}
		if taken {
			return duplicateEmailErr(staff.Email)
		}

		query := `
			UPDATE staff
			SET email = $2, password_hash = $3, name = $4, role = $5, is_active = $6, updated_at = $7
			WHERE staff_id = $1;
		`
		tag, err := tx.Exec(ctx, query,
			staff.StaffID,
			staff.Email,
			staff.PasswordHash,
			staff.Name,
			staff.Role,
			staff.IsActive,
			staff.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return duplicateEmailErr(staff.Email)
			}
			return fmt.Errorf("failed to update staff member: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

func (r *PgxStaffRepository) DeleteStaff(ctx context.Context, staffID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM staff WHERE staff_id = $1;`, staffID)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
