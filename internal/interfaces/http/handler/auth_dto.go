package handler

import "github.com/google/uuid"

// RegisterRequest is the registration form body
type RegisterRequest struct {
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	PhoneNumber     string `json:"phoneNumber"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the login form body
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// AuthUserResponse is the user shape returned by the auth endpoints
type AuthUserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
}

// CurrentUserResponse reports the authentication state of the session
type CurrentUserResponse struct {
	IsAuth bool              `json:"isAuth"`
	User   *AuthUserResponse `json:"user,omitempty"`
}

// LogoutResponse confirms the logout
type LogoutResponse struct {
	Message string `json:"message"`
}
