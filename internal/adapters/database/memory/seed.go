package memory

import (
	"fmt"
	"time"

	"github.com/receiptcapture/portal_backend/internal/core/domain"
	"github.com/receiptcapture/portal_backend/internal/utils"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func timePtr(t time.Time) *time.Time { return &t }

func mustParse(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed loads the demo fixtures: the plan catalog, a portal admin, one
// organization with its representative, two staff members and a handful of
// receipts in every review state. Intended for local development; disable via
// SEED_DEMO_DATA=false.
func (s *Store) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	plans := []domain.Plan{
		{
			PlanID:              "1",
			Name:                "Starter",
			Description:         "Perfect for small teams",
			Price:               decimal.RequireFromString("29.99"),
			BillingCycle:        domain.CycleMonthly,
			MaxUsers:            5,
			MaxReceiptsPerMonth: 100,
			Features:            []string{"Email Support", "1GB Storage", "Basic Analytics"},
			IsActive:            true,
		},
		{
			PlanID:              "2",
			Name:                "Professional",
			Description:         "Growing businesses",
			Price:               decimal.RequireFromString("59.99"),
			BillingCycle:        domain.CycleMonthly,
			MaxUsers:            20,
			MaxReceiptsPerMonth: 500,
			Features:            []string{"Priority Support", "10GB Storage", "Advanced Analytics", "Custom Categories"},
			IsActive:            true,
		},
		{
			PlanID:              "3",
			Name:                "Enterprise",
			Description:         "Large organizations",
			Price:               decimal.RequireFromString("149.99"),
			BillingCycle:        domain.CycleMonthly,
			MaxUsers:            100,
			MaxReceiptsPerMonth: 2000,
			Features:            []string{"Phone Support", "Unlimited Storage", "Advanced Analytics", "API Access", "Custom Integrations"},
			IsActive:            true,
		},
	}
	for _, plan := range plans {
		s.plans[plan.PlanID] = plan
		s.planOrder = append(s.planOrder, plan.PlanID)
	}

	adminHash, err := utils.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}
	repHash, err := utils.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}
	staffHash, err := utils.HashPassword("staff123")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}
	managerHash, err := utils.HashPassword("mgr123")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	orgID := "org-1"
	planID := "2"

	s.accounts["admin-1"] = domain.Account{
		AccountID:    "admin-1",
		Email:        "admin@receiptcapture.com",
		PasswordHash: adminHash,
		Name:         "Portal Master Admin",
		Role:         domain.RolePortalAdmin,
		IsActive:     true,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	s.organizations[orgID] = domain.Organization{
		OrganizationID:        orgID,
		Name:                  "Tech Corp Ltd",
		Domain:                strPtr("techcorp.com"),
		ForwardingEmail:       "invoices@techcorp.com",
		PlanID:                &planID,
		Status:                domain.SubscriptionActive,
		SubscriptionStartDate: now,
		SubscriptionEndDate:   now.AddDate(0, 1, 0),
		Timestamps:            domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	s.accounts["rep-1"] = domain.Account{
		AccountID:      "rep-1",
		Email:          "rep@techcorp.com",
		PasswordHash:   repHash,
		Name:           "John Smith",
		Role:           domain.RoleOrgRepresentative,
		OrganizationID: &orgID,
		IsActive:       true,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	staff := []domain.Staff{
		{
			StaffID:        "staff-1",
			Email:          "staff1@techcorp.com",
			PasswordHash:   staffHash,
			Name:           "Alice Johnson",
			OrganizationID: orgID,
			Role:           domain.StaffEmployee,
			IsActive:       true,
			CreatedBy:      "rep-1",
			Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
		},
		{
			StaffID:        "staff-2",
			Email:          "manager@techcorp.com",
			PasswordHash:   managerHash,
			Name:           "Bob Wilson",
			OrganizationID: orgID,
			Role:           domain.StaffManager,
			IsActive:       true,
			CreatedBy:      "rep-1",
			Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
		},
	}
	for _, m := range staff {
		s.staff[m.StaffID] = m
		s.staffOrder = append(s.staffOrder, m.StaffID)
	}

	receipts := []domain.Receipt{
		{
			ReceiptID:      "receipt-1",
			StaffID:        "staff-1",
			OrganizationID: orgID,
			ImagePath:      "/uploads/receipt-1.jpg",
			MerchantName:   strPtr("Office Depot"),
			Amount:         decPtr(decimal.RequireFromString("45.99")),
			ReceiptDate:    timePtr(mustParse("2025-09-25T10:30:00Z")),
			Category:       strPtr("Office Supplies"),
			Notes:          strPtr("Printer paper and pens"),
			Status:         domain.ReceiptSent,
			EmailSentAt:    timePtr(mustParse("2025-09-25T11:00:00Z")),
			CreatedAt:      mustParse("2025-09-25T10:45:00Z"),
		},
		{
			ReceiptID:      "receipt-2",
			StaffID:        "staff-2",
			OrganizationID: orgID,
			ImagePath:      "/uploads/receipt-2.jpg",
			MerchantName:   strPtr("Starbucks"),
			Amount:         decPtr(decimal.RequireFromString("12.50")),
			ReceiptDate:    timePtr(mustParse("2025-09-28T08:15:00Z")),
			Category:       strPtr("Meals & Entertainment"),
			Notes:          strPtr("Client meeting coffee"),
			Status:         domain.ReceiptProcessed,
			CreatedAt:      mustParse("2025-09-28T08:20:00Z"),
		},
		{
			ReceiptID:      "receipt-3",
			StaffID:        "staff-1",
			OrganizationID: orgID,
			ImagePath:      "/uploads/receipt-3.jpg",
			MerchantName:   strPtr("Shell Gas Station"),
			Amount:         decPtr(decimal.RequireFromString("67.88")),
			ReceiptDate:    timePtr(mustParse("2025-10-01T14:22:00Z")),
			Category:       strPtr("Travel & Transportation"),
			Notes:          strPtr("Business trip fuel"),
			Status:         domain.ReceiptPending,
			CreatedAt:      mustParse("2025-10-01T14:25:00Z"),
		},
		{
			ReceiptID:      "receipt-4",
			StaffID:        "staff-2",
			OrganizationID: orgID,
			ImagePath:      "/uploads/receipt-4.jpg",
			MerchantName:   strPtr("Best Buy"),
			Amount:         decPtr(decimal.RequireFromString("299.99")),
			ReceiptDate:    timePtr(mustParse("2025-10-02T11:45:00Z")),
			Category:       strPtr("Equipment"),
			Notes:          strPtr("Wireless mouse and keyboard"),
			Status:         domain.ReceiptPending,
			CreatedAt:      mustParse("2025-10-02T12:00:00Z"),
		},
		{
			ReceiptID:      "receipt-5",
			StaffID:        "staff-1",
			OrganizationID: orgID,
			ImagePath:      "/uploads/receipt-5.jpg",
			MerchantName:   strPtr("Amazon Business"),
			Amount:         decPtr(decimal.RequireFromString("89.95")),
			ReceiptDate:    timePtr(mustParse("2025-10-02T16:30:00Z")),
			Category:       strPtr("Office Supplies"),
			Status:         domain.ReceiptProcessed,
			CreatedAt:      mustParse("2025-10-02T16:35:00Z"),
		},
	}
	for _, receipt := range receipts {
		s.receipts[receipt.ReceiptID] = receipt
		s.receiptOrder = append(s.receiptOrder, receipt.ReceiptID)
	}

	return nil
}
