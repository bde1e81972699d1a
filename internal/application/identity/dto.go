package identity

import (
	"time"

	"github.com/google/uuid"
)

// RegisterInput contains the registration form fields
type RegisterInput struct {
	Name            string
	Surname         string
	PhoneNumber     string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput contains the login form fields
type LoginInput struct {
	Email      string
	Password   string
	RememberMe bool
	IP         string
}

// UserInfo is the user shape returned to the client
type UserInfo struct {
	ID          uuid.UUID
	Name        string
	Surname     string
	PhoneNumber string
	Email       string
	Role        string
}

// SessionInfo describes the session opened for the client
type SessionInfo struct {
	ID         string
	RememberMe bool
	// TTL is the cookie and store lifetime. Zero means a session-only
	// cookie backed by the idle TTL server-side.
	TTL time.Duration
}

// RegisterResult is returned on successful registration
type RegisterResult struct {
	User    UserInfo
	Session SessionInfo
}

// LoginResult is returned on successful login
type LoginResult struct {
	User    UserInfo
	Session SessionInfo
}

// CurrentUserResult describes the authenticated state of a session
type CurrentUserResult struct {
	IsAuth bool
	User   *UserInfo
}
