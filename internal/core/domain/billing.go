package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingStatus is the settlement state of a billing entry.
type BillingStatus string

const (
	BillingPaid    BillingStatus = "paid"
	BillingPending BillingStatus = "pending"
	BillingFailed  BillingStatus = "failed"
)

// BillingEntry is an append-only record of a subscription event. The plan
// name, price and cycle are snapshotted at creation time so later catalog
// changes never rewrite history. Entries are never mutated.
type BillingEntry struct {
	BillingID       string          `json:"billingID"`
	OrganizationID  string          `json:"organizationID"`
	PlanID          string          `json:"planID"`
	PlanName        string          `json:"planName"`
	Amount          decimal.Decimal `json:"amount"`
	BillingCycle    BillingCycle    `json:"billingCycle"`
	Status          BillingStatus   `json:"status"`
	BillingDate     time.Time       `json:"billingDate"`
	NextBillingDate time.Time       `json:"nextBillingDate"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
}
