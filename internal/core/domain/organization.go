package domain

import "time"

// SubscriptionStatus tracks the lifecycle of an organization's subscription.
type SubscriptionStatus string

const (
	SubscriptionInactive  SubscriptionStatus = "inactive"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionTrial     SubscriptionStatus = "trial"
)

// Organization is a registered tenant of the portal.
type Organization struct {
	OrganizationID        string             `json:"organizationID"`
	Name                  string             `json:"name"`
	Domain                *string            `json:"domain,omitempty"`
	ForwardingEmail       string             `json:"forwardingEmail"` // receipts are forwarded here
	PlanID                *string            `json:"planID,omitempty"`
	Status                SubscriptionStatus `json:"status"`
	SubscriptionStartDate time.Time          `json:"subscriptionStartDate"`
	SubscriptionEndDate   time.Time          `json:"subscriptionEndDate"`
	Timestamps
}
