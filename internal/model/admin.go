package model

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token issued for an admin session.
type LoginResponse struct {
	Token     string `json:"token" validate:"required"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expires_at"`
}

// VerifyResponse is returned by GET /api/admin/verify for a live token.
type VerifyResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email"`
}

// StatusCount summarises a lead collection on the dashboard.
type StatusCount struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
}

// Stats is the admin dashboard overview from GET /api/admin/stats.
type Stats struct {
	Contacts           StatusCount   `json:"contacts"`
	Applications       StatusCount   `json:"applications"`
	BlogPosts          int           `json:"blog_posts"`
	Files              int           `json:"files"`
	RecentContacts     []Contact     `json:"recent_contacts"`
	RecentApplications []Application `json:"recent_applications"`
}
