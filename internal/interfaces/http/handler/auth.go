package handler

import (
	"net/http"

	"github.com/ghiaccio/backend/internal/application/identity"
	"github.com/ghiaccio/backend/internal/infrastructure/config"
	"github.com/ghiaccio/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login, and session HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
	cookies     config.SessionConfig
	rateLimit   gin.HandlerFunc
}

// NewAuthHandler creates a new auth handler. rateLimit guards the
// credential endpoints and may be nil.
func NewAuthHandler(authService *identity.AuthService, cookies config.SessionConfig, rateLimit gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
		rateLimit:   rateLimit,
	}
}

// RegisterRoutes registers the authentication routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	guarded := []gin.HandlerFunc{}
	if h.rateLimit != nil {
		guarded = append(guarded, h.rateLimit)
	}

	rg.POST("/register", append(guarded, h.Register)...)
	rg.POST("/login", append(guarded, h.Login)...)
	rg.POST("/logout", h.Logout)
	rg.GET("/user", h.CurrentUser)
}

// Register creates a new customer account and logs it straight in
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), identity.RegisterInput{
		Name:            req.Name,
		Surname:         req.Surname,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, result.Session)

	h.Created(c, authUserResponse(result.User))
}

// Login verifies the credentials and opens a session
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
		IP:         c.ClientIP(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, result.Session)

	h.Success(c, authUserResponse(result.User))
}

// Logout destroys the session and clears the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		// Fall back to the raw cookie so stale sessions still get destroyed
		sessionID, _ = c.Cookie(h.cookies.CookieName)
	}

	if err := h.authService.Logout(c.Request.Context(), sessionID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.clearSessionCookie(c)

	h.Success(c, LogoutResponse{Message: "Logged out successfully"})
}

// CurrentUser reports whether the session is authenticated and for whom
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	sessionID, _ := c.Cookie(h.cookies.CookieName)

	result, err := h.authService.CurrentUser(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	response := CurrentUserResponse{IsAuth: result.IsAuth}
	if result.User != nil {
		user := authUserResponse(*result.User)
		response.User = &user
	}

	h.Success(c, response)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sess identity.SessionInfo) {
	c.SetSameSite(sameSite(h.cookies.SameSite))
	// MaxAge 0 keeps the cookie for the browser session only
	maxAge := int(sess.TTL.Seconds())
	c.SetCookie(
		h.cookies.CookieName,
		sess.ID,
		maxAge,
		h.cookies.CookiePath,
		h.cookies.CookieDomain,
		h.cookies.CookieSecure,
		true, // httpOnly, the frontend never reads the session ID
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(sameSite(h.cookies.SameSite))
	c.SetCookie(
		h.cookies.CookieName,
		"",
		-1,
		h.cookies.CookiePath,
		h.cookies.CookieDomain,
		h.cookies.CookieSecure,
		true,
	)
}

func sameSite(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func authUserResponse(u identity.UserInfo) AuthUserResponse {
	return AuthUserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Surname:     u.Surname,
		PhoneNumber: u.PhoneNumber,
		Email:       u.Email,
		Role:        u.Role,
	}
}
