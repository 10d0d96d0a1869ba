package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptStatus tracks a receipt through the review pipeline.
type ReceiptStatus string

const (
	ReceiptPending   ReceiptStatus = "pending"
	ReceiptProcessed ReceiptStatus = "processed"
	ReceiptSent      ReceiptStatus = "sent"
)

// Receipt is a captured receipt image plus extracted metadata. Receipts are
// created by the staff-facing client; the portal only reviews them.
type Receipt struct {
	ReceiptID      string           `json:"receiptID"`
	StaffID        string           `json:"staffID"`
	OrganizationID string           `json:"organizationID"`
	ImagePath      string           `json:"imagePath"`
	MerchantName   *string          `json:"merchantName,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	ReceiptDate    *time.Time       `json:"receiptDate,omitempty"`
	Category       *string          `json:"category,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
	Status         ReceiptStatus    `json:"status"`
	EmailSentAt    *time.Time       `json:"emailSentAt,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// EffectiveDate is the receipt date when present, else the capture time.
// Date-range filters operate on this value.
func (r Receipt) EffectiveDate() time.Time {
	if r.ReceiptDate != nil {
		return *r.ReceiptDate
	}
	return r.CreatedAt
}
