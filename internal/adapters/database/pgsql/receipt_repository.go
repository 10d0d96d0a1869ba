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

type PgxReceiptRepository struct {
	db *pgxpool.Pool
}

func newPgxReceiptRepository(db *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{db: db}
}

var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

const receiptColumns = `receipt_id, staff_id, organization_id, image_path, merchant_name, amount, receipt_date, category, notes, status, email_sent_at, created_at`

func scanReceipt(row pgx.Row) (*domain.Receipt, error) {
	var rec domain.Receipt
	err := row.Scan(
		&rec.ReceiptID,
		&rec.StaffID,
		&rec.OrganizationID,
		&rec.ImagePath,
		&rec.MerchantName,
		&rec.Amount,
		&rec.ReceiptDate,
		&rec.Category,
		&rec.Notes,
		&rec.Status,
		&rec.EmailSentAt,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan receipt: %w", err)
	}
	return &rec, nil
}

func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE receipt_id = $1;`
	return scanReceipt(r.db.QueryRow(ctx, query, receiptID))
}

func (r *PgxReceiptRepository) ListReceiptsByOrganization(ctx context.Context, organizationID string) ([]domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE organization_id = $1 ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	receipts := make([]domain.Receipt, 0)
	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, *rec)
	}
	return receipts, rows.Err()
}

func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	query := `
		INSERT INTO receipts (receipt_id, staff_id, organization_id, image_path, merchant_name, amount, receipt_date, category, notes, status, email_sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db.Exec(ctx, query,
		receipt.ReceiptID,
		receipt.StaffID,
		receipt.OrganizationID,
		receipt.ImagePath,
		receipt.MerchantName,
		receipt.Amount,
		receipt.ReceiptDate,
		receipt.Category,
		receipt.Notes,
		receipt.Status,
		receipt.EmailSentAt,
		receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save receipt: %w", err)
	}
	return nil
}

func (r *PgxReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt) error {
	query := `
		UPDATE receipts
		SET merchant_name = $2, amount = $3, receipt_date = $4, category = $5, notes = $6, status = $7, email_sent_at = $8
		WHERE receipt_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		receipt.ReceiptID,
		receipt.MerchantName,
		receipt.Amount,
		receipt.ReceiptDate,
		receipt.Category,
		receipt.Notes,
		receipt.Status,
		receipt.EmailSentAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update receipt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
