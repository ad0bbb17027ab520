package models

import "time"

// Role controls access to the admin-only operations (rate editing, sheet
// handoff). There is exactly one authorization contract: the role claim
// carried in the session token.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleAdmin  Role = "admin"
)

// User is a dashboard account. The user set is seeded locally; passwords are
// stored as bcrypt hashes.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ExportRecord is an audit-trail row written for every export a user runs.
type ExportRecord struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"` // "csv", "pdf", or "sheets"
	ReportName  string    `json:"report_name"`
	RowCount    int       `json:"row_count"`
	TotalPayout float64   `json:"total_payout"`
	Status      string    `json:"status"` // "ok", "fallback", or "failed"
	Detail      string    `json:"detail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
