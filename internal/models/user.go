package models

// User is the current session's identity.
type User struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsPremium bool   `json:"isPremium"`
}

// UserProfile is the persisted per-user record.
type UserProfile struct {
	Email         string         `json:"email"`
	Password      string         `json:"password,omitempty"`
	FormData      *FormData      `json:"formData"`
	DashboardData *DashboardData `json:"dashboardData"`
	IsPremium     bool           `json:"isPremium"`
}
