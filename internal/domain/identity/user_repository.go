package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email (case-insensitive)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByPhone finds a user by phone number
	FindByPhone(ctx context.Context, phone string) (*User, error)

	// ExistsByEmail checks if an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByPhone checks if a phone number is already registered
	ExistsByPhone(ctx context.Context, phone string) (bool, error)

	// ExistsByNameAndSurname checks if the name+surname pair is already registered
	ExistsByNameAndSurname(ctx context.Context, name, surname string) (bool, error)
}
