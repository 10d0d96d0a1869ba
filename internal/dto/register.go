package dto

// RegisterRequest is the final registration commit: organization details,
// representative credentials and the selected plan, collected by the
// multi-step signup form.
type RegisterRequest struct {
	CompanyName            string  `json:"companyName" binding:"required"`
	CompanyDomain          *string `json:"companyDomain"`
	ForwardingEmail        string  `json:"forwardingEmail" binding:"required,email"`
	RepresentativeName     string  `json:"representativeName" binding:"required"`
	RepresentativeEmail    string  `json:"representativeEmail" binding:"required,email"`
	RepresentativePassword string  `json:"representativePassword" binding:"required"`
	PasswordConfirmation   string  `json:"passwordConfirmation" binding:"required"`
	SelectedPlanID         string  `json:"selectedPlanId" binding:"required"`
}

// Registration form steps, validated independently so the form can advance
// one step at a time.
const (
	RegisterStepCompany        = "company"
	RegisterStepRepresentative = "representative"
	RegisterStepPlan           = "plan"
)

// RegisterStepRequest validates a single signup step. Only the fields of the
// named step are inspected.
type RegisterStepRequest struct {
	Step string `json:"step" binding:"required,oneof=company representative plan"`

	CompanyName     string  `json:"companyName"`
	CompanyDomain   *string `json:"companyDomain"`
	ForwardingEmail string  `json:"forwardingEmail"`

	RepresentativeName     string `json:"representativeName"`
	RepresentativeEmail    string `json:"representativeEmail"`
	RepresentativePassword string `json:"representativePassword"`
	PasswordConfirmation   string `json:"passwordConfirmation"`

	SelectedPlanID string `json:"selectedPlanId"`
}

// RegisteredPlanInfo echoes the selected plan on successful registration.
type RegisteredPlanInfo struct {
	Name         string `json:"name"`
	TrialEndDate string `json:"trialEndDate"`
}

// RegistrationResponse returns the session token plus the freshly created
// account and organization.
type RegistrationResponse struct {
	Message      string               `json:"message"`
	Token        string               `json:"token"`
	Account      AccountResponse      `json:"account"`
	Organization OrganizationResponse `json:"organization"`
	Plan         RegisteredPlanInfo   `json:"plan"`
}
