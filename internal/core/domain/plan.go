package domain

import "github.com/shopspring/decimal"

// BillingCycle is how often a plan renews.
type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleAnnual  BillingCycle = "annual"
)

// Plan is an immutable catalog entry. Plans are never deleted, only
// deactivated, so historical billing entries keep resolving.
type Plan struct {
	PlanID              string          `json:"planID"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Price               decimal.Decimal `json:"price"`
	BillingCycle        BillingCycle    `json:"billingCycle"`
	MaxUsers            int             `json:"maxUsers"`
	MaxReceiptsPerMonth int             `json:"maxReceiptsPerMonth"`
	Features            []string        `json:"features"`
	IsActive            bool            `json:"isActive"`
}
