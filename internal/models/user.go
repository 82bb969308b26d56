package models

import "time"

const (
	RoleBusiness = "business"
	RoleUser     = "user"
)

// User mirrors an identity-provider account. Rows are created by the
// provider's user.created webhook; Role stays nil until assigned once.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClerkID string  `gorm:"size:64;uniqueIndex;not null" json:"clerk_id"`
	Email   string  `gorm:"size:100" json:"email"`
	Role    *string `gorm:"size:20" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
