package domain

// StaffRole is the role of a staff member inside their organization.
type StaffRole string

const (
	StaffManager  StaffRole = "manager"
	StaffEmployee StaffRole = "employee"
)

// Staff is a receipt-submitting member of an organization, managed by the
// organization's representative.
type Staff struct {
	StaffID        string    `json:"staffID"`
	Email          string    `json:"email"` // unique across accounts and staff
	PasswordHash   string    `json:"-"`
	Name           string    `json:"name"`
	OrganizationID string    `json:"organizationID"`
	Role           StaffRole `json:"role"`
	IsActive       bool      `json:"isActive"`
	CreatedBy      string    `json:"createdBy"` // AccountID of the creating representative
	Timestamps
}
