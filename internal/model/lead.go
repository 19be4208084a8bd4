package model

// ApplicationStatus is the pipeline state of an IPO qualification lead.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationReviewing ApplicationStatus = "reviewing"
	ApplicationQualified ApplicationStatus = "qualified"
	ApplicationContacted ApplicationStatus = "contacted"
	ApplicationConverted ApplicationStatus = "converted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// ApplicationStatuses lists every application status in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationPending, ApplicationReviewing, ApplicationQualified,
	ApplicationContacted, ApplicationConverted, ApplicationRejected,
}

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ContactStatus is the follow-up state of a general inquiry.
type ContactStatus string

const (
	ContactPending   ContactStatus = "pending"
	ContactContacted ContactStatus = "contacted"
	ContactConverted ContactStatus = "converted"
	ContactRejected  ContactStatus = "rejected"
)

// ContactStatuses lists every contact status.
var ContactStatuses = []ContactStatus{ContactPending, ContactContacted, ContactConverted, ContactRejected}

// Valid reports whether s is a known contact status.
func (s ContactStatus) Valid() bool {
	for _, v := range ContactStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Application is a qualification lead submitted from the homepage form.
type Application struct {
	ID             string            `json:"id" validate:"required"`
	Name           string            `json:"name"`
	CompanyName    string            `json:"company_name"`
	AnnualTurnover string            `json:"annual_turnover"`
	MobileNumber   string            `json:"mobile_number"`
	Status         ApplicationStatus `json:"status"`
	CreatedAt      string            `json:"created_at"`
}

// Contact is an inquiry submitted from the contact page.
// Notes can only be set through the admin update endpoint.
type Contact struct {
	ID             string        `json:"id" validate:"required"`
	Name           string        `json:"name"`
	CompanyName    string        `json:"company_name"`
	AnnualTurnover *string       `json:"annual_turnover,omitempty"`
	MobileNumber   string        `json:"mobile_number"`
	Email          *string       `json:"email,omitempty"`
	Message        *string       `json:"message,omitempty"`
	Status         ContactStatus `json:"status"`
	Notes          *string       `json:"notes,omitempty"`
	CreatedAt      string        `json:"created_at"`
}

// ContactRequest is the body of POST /api/contact.
// Optional fields are sent as JSON null when empty.
type ContactRequest struct {
	Name           string  `json:"name" validate:"required"`
	CompanyName    string  `json:"company_name" validate:"required"`
	AnnualTurnover *string `json:"annual_turnover"`
	MobileNumber   string  `json:"mobile_number" validate:"required"`
	Email          *string `json:"email"`
	Message        *string `json:"message"`
}

// ApplicationRequest is the body of POST /api/application. Every field is mandatory.
type ApplicationRequest struct {
	Name           string `json:"name" validate:"required"`
	CompanyName    string `json:"company_name" validate:"required"`
	AnnualTurnover string `json:"annual_turnover" validate:"required"`
	MobileNumber   string `json:"mobile_number" validate:"required"`
}

// ApplicationReceipt is what the public form shows after a successful submission.
type ApplicationReceipt struct {
	Message     string
	Application Application
}

// ApplicationUpdate is the partial body of PUT /api/admin/applications/{id}.
// Nil fields are omitted and left to the backend.
type ApplicationUpdate struct {
	Status *ApplicationStatus `json:"status,omitempty"`
}

// ContactUpdate is the partial body of PUT /api/admin/contacts/{id}.
type ContactUpdate struct {
	Status *ContactStatus `json:"status,omitempty"`
	Notes  *string        `json:"notes,omitempty"`
}

// OptionalString returns nil for an empty string so it encodes as JSON null.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
