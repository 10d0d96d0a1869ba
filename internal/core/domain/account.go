package domain

// AccountRole is the portal-level role carried by an Account.
type AccountRole string

const (
	// RolePortalAdmin has unrestricted read access across organizations.
	RolePortalAdmin AccountRole = "portal_admin"
	// RoleOrgRepresentative manages exactly one organization.
	RoleOrgRepresentative AccountRole = "org_representative"
)

// Account is a portal login (admin or organization representative).
// Staff members are NOT accounts; they authenticate only through the
// separate mobile client and never against portal endpoints.
type Account struct {
	AccountID      string      `json:"accountID"`
	Email          string      `json:"email"` // unique across accounts and staff
	PasswordHash   string      `json:"-"`
	Name           string      `json:"name"`
	Role           AccountRole `json:"role"`
	OrganizationID *string     `json:"organizationID,omitempty"` // required when Role is org_representative
	IsActive       bool        `json:"isActive"`
	Timestamps
}
