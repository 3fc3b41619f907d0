package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// APIKey grants read access to the public v1 API. Only the sha256 hash of
// the issued key is stored.
type APIKey struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	KeyHash      string     `json:"-"`
	Name         string     `json:"name,omitempty"`
	IsActive     bool       `json:"is_active"`
	RequestCount int64      `json:"request_count"`
	LastUsedAt   *time.Time `json:"last_used_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
