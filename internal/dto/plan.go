package dto

import (
	"github.com/receiptcapture/portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PlanResponse is the wire shape of a subscription plan.
type PlanResponse struct {
	PlanID              string          `json:"planID"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Price               decimal.Decimal `json:"price"`
	BillingCycle        string          `json:"billingCycle"`
	MaxUsers            int             `json:"maxUsers"`
	MaxReceiptsPerMonth int             `json:"maxReceiptsPerMonth"`
	Features            []string        `json:"features"`
	IsActive            bool            `json:"isActive"`
}

// ToPlanResponse converts a domain.Plan to its response DTO.
func ToPlanResponse(p *domain.Plan) PlanResponse {
	return PlanResponse{
		PlanID:              p.PlanID,
		Name:                p.Name,
		Description:         p.Description,
		Price:               p.Price,
		BillingCycle:        string(p.BillingCycle),
		MaxUsers:            p.MaxUsers,
		MaxReceiptsPerMonth: p.MaxReceiptsPerMonth,
		Features:            p.Features,
		IsActive:            p.IsActive,
	}
}

// ListPlansResponse wraps the active plan catalog.
type ListPlansResponse struct {
	Plans []PlanResponse `json:"plans"`
}

// ToListPlansResponse converts a slice of domain.Plan to ListPlansResponse.
func ToListPlansResponse(plans []domain.Plan) ListPlansResponse {
	responses := make([]PlanResponse, len(plans))
	for i := range plans {
		responses[i] = ToPlanResponse(&plans[i])
	}
	return ListPlansResponse{Plans: responses}
}
