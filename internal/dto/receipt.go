package dto

import (
	"time"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListReceiptsParams are the query parameters for the receipt listing.
// Date and amount bounds arrive as strings and are parsed by the service so
// malformed values surface as validation errors instead of silent zero values.
type ListReceiptsParams struct {
	Status    string `form:"status"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	MinAmount string `form:"minAmount"`
	MaxAmount string `form:"maxAmount"`
	Search    string `form:"search"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
}

// UpdateReceiptRequest mutates the reviewable receipt fields.
type UpdateReceiptRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=pending processed sent"`
	Notes  *string `json:"notes"`
}

// ReceiptResponse is a receipt decorated with the submitting staff member's
// name and email.
type ReceiptResponse struct {
	ReceiptID      string           `json:"receiptID"`
	StaffID        string           `json:"staffID"`
	OrganizationID string           `json:"organizationID"`
	ImagePath      string           `json:"imagePath"`
	MerchantName   *string          `json:"merchantName,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	ReceiptDate    *time.Time       `json:"receiptDate,omitempty"`
	Category       *string          `json:"category,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
	Status         string           `json:"status"`
	EmailSentAt    *time.Time       `json:"emailSentAt,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	StaffName      string           `json:"staffName"`
	StaffEmail     string           `json:"staffEmail"`
}

// ToReceiptResponse converts a domain.Receipt plus submitter info to the
// response DTO. A nil staff yields the "Unknown Staff" placeholder the
// dashboard expects for deleted members.
func ToReceiptResponse(r *domain.Receipt, staff *domain.Staff) ReceiptResponse {
	resp := ReceiptResponse{
		ReceiptID:      r.ReceiptID,
		StaffID:        r.StaffID,
		OrganizationID: r.OrganizationID,
		ImagePath:      r.ImagePath,
		MerchantName:   r.MerchantName,
		Amount:         r.Amount,
		ReceiptDate:    r.ReceiptDate,
		Category:       r.Category,
		Notes:          r.Notes,
		Status:         string(r.Status),
		EmailSentAt:    r.EmailSentAt,
		CreatedAt:      r.CreatedAt,
		StaffName:      "Unknown Staff",
	}
	if staff != nil {
		resp.StaffName = staff.Name
		resp.StaffEmail = staff.Email
	}
	return resp
}

// Pagination describes the returned page of a listing.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// ReceiptStats counts the organization's receipts by status, regardless of
// any filters applied to the listing.
type ReceiptStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
}

// ListReceiptsResponse is a filtered, paginated receipt listing.
type ListReceiptsResponse struct {
	Receipts   []ReceiptResponse `json:"receipts"`
	Pagination Pagination        `json:"pagination"`
	Stats      ReceiptStats      `json:"stats"`
}
