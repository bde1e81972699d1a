package inventory

import (
	"context"

	"github.com/google/uuid"
)

// FreezerRepository defines the interface for freezer persistence
type FreezerRepository interface {
	// Create creates a new freezer record
	Create(ctx context.Context, freezer *Freezer) error

	// FindByID finds a freezer by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Freezer, error)

	// FindAll returns all freezers
	FindAll(ctx context.Context) ([]*Freezer, error)
}
