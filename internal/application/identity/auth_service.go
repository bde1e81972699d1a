package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ghiaccio/backend/internal/domain/identity"
	"github.com/ghiaccio/backend/internal/domain/shared"
	"github.com/ghiaccio/backend/internal/infrastructure/session"
	"go.uber.org/zap"
)

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	// IdleTTL is the server-side lifetime of a session-only cookie
	IdleTTL time.Duration
	// RememberMeTTL is the lifetime when the user checks "remember me"
	RememberMeTTL time.Duration
}

// DefaultAuthServiceConfig returns default configuration
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		IdleTTL:       24 * time.Hour,
		RememberMeTTL: 7 * 24 * time.Hour,
	}
}

// AuthService handles registration, login, and session lifecycle
type AuthService struct {
	userRepo identity.UserRepository
	sessions session.Store
	config   AuthServiceConfig
	logger   *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	sessions session.Store,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		config:   config,
		logger:   logger,
	}
}

// Register creates a new customer account and opens a session for it, as
// the registration form logs the user straight in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	if errs := identity.ValidateRegistration(input.Name, input.Surname, input.PhoneNumber, input.Email, input.Password, input.ConfirmPassword); len(errs) > 0 {
		return nil, errs
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Duplicate checks before any row is written
	if exists, err := s.userRepo.ExistsByEmail(ctx, email); err != nil {
		s.logger.Error("Failed to check email uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Registration failed")
	} else if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email già registrata")
	}
	if exists, err := s.userRepo.ExistsByNameAndSurname(ctx, strings.TrimSpace(input.Name), strings.TrimSpace(input.Surname)); err != nil {
		s.logger.Error("Failed to check name uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Registration failed")
	} else if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Nome e cognome già in uso")
	}
	if exists, err := s.userRepo.ExistsByPhone(ctx, strings.TrimSpace(input.PhoneNumber)); err != nil {
		s.logger.Error("Failed to check phone uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Registration failed")
	} else if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Numero di telefono già in uso")
	}

	user, err := identity.NewUser(input.Name, input.Surname, input.PhoneNumber, input.Email, input.Password, identity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Registration failed")
	}

	sess, err := s.openSession(ctx, user, false)
	if err != nil {
		s.logger.Error("Failed to open session after registration", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Registration succeeded but login failed")
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &RegisterResult{
		User:    userInfo(user),
		Session: *sess,
	}, nil
}

// Login verifies the credentials and opens a session. Unknown email and
// wrong password return the same generic error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, shared.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown email", zap.String("ip", input.IP))
			return nil, shared.ErrInvalidCredentials
		}
		s.logger.Error("Failed to load user during login", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Login failed")
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt",
			zap.String("user_id", user.ID.String()),
			zap.String("ip", input.IP))
		return nil, shared.ErrInvalidCredentials
	}

	sess, err := s.openSession(ctx, user, input.RememberMe)
	if err != nil {
		s.logger.Error("Failed to open session", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Login failed")
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.Bool("remember_me", input.RememberMe))

	return &LoginResult{
		User:    userInfo(user),
		Session: *sess,
	}, nil
}

// Logout destroys the session. A missing session is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		s.logger.Error("Failed to destroy session", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Logout failed")
	}
	return nil
}

// CurrentUser resolves a session cookie to the logged-in user, or to an
// anonymous result when the session is missing or expired.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*CurrentUserResult, error) {
	anonymous := &CurrentUserResult{IsAuth: false}

	if sessionID == "" {
		return anonymous, nil
	}

	data, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return anonymous, nil
		}
		s.logger.Error("Failed to read session", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Session lookup failed")
	}

	user, err := s.userRepo.FindByID(ctx, data.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// User gone; drop the orphaned session
			_ = s.sessions.Destroy(ctx, sessionID)
			return anonymous, nil
		}
		s.logger.Error("Failed to load session user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Session lookup failed")
	}

	info := userInfo(user)
	return &CurrentUserResult{IsAuth: true, User: &info}, nil
}

func (s *AuthService) openSession(ctx context.Context, user *identity.User, rememberMe bool) (*SessionInfo, error) {
	id, err := session.NewID()
	if err != nil {
		return nil, err
	}

	storeTTL := s.config.IdleTTL
	cookieTTL := time.Duration(0) // session-only cookie
	if rememberMe {
		storeTTL = s.config.RememberMeTTL
		cookieTTL = s.config.RememberMeTTL
	}

	data := &session.Data{
		UserID:     user.ID,
		Role:       string(user.Role),
		RememberMe: rememberMe,
		CreatedAt:  time.Now(),
	}
	if err := s.sessions.Set(ctx, id, data, storeTTL); err != nil {
		return nil, err
	}

	return &SessionInfo{
		ID:         id,
		RememberMe: rememberMe,
		TTL:        cookieTTL,
	}, nil
}

func userInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:          user.ID,
		Name:        user.Name,
		Surname:     user.Surname,
		PhoneNumber: user.Phone,
		Email:       user.Email,
		Role:        string(user.Role),
	}
}
