package auth

import (
	"context"
	"time"
)

// User is the authenticated identity. The password hash never leaves the
// backend.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Repository interface {
	// CreateUserWithPersonalWallet inserts the user together with a default
	// PERSONAL wallet and an OWNER membership in a single database
	// transaction. A unique violation on the email column is reported as
	// ErrCredentialsTaken and leaves no rows behind.
	CreateUserWithPersonalWallet(ctx context.Context, user *User) error

	// GetUserByEmail returns nil when no user with the email exists.
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// GetUserByID returns nil when no user with the id exists.
	GetUserByID(ctx context.Context, id string) (*User, error)
}
