package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session ID is unknown or expired
var ErrNotFound = errors.New("session not found")

// Data is the server-side state carried by a session
type Data struct {
	UserID     uuid.UUID `json:"user_id"`
	Role       string    `json:"role"`
	RememberMe bool      `json:"remember_me"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store is the capability interface for session persistence. Any backend
// works as long as it honors the TTL; the process holds no other auth state.
type Store interface {
	// Get returns the session data for an ID, or ErrNotFound
	Get(ctx context.Context, id string) (*Data, error)

	// Set stores session data under an ID with the given TTL
	Set(ctx context.Context, id string, data *Data, ttl time.Duration) error

	// Destroy removes a session; unknown IDs are not an error
	Destroy(ctx context.Context, id string) error
}

// NewID generates an opaque 128-bit session identifier
func NewID() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
