package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ghiaccio/backend/internal/infrastructure/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "ice_session"

func storeSession(t *testing.T, store session.Store, role string) (string, uuid.UUID) {
	t.Helper()

	id, err := session.NewID()
	require.NoError(t, err)
	userID := uuid.New()
	err = store.Set(context.Background(), id, &session.Data{
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
	}, time.Hour)
	require.NoError(t, err)
	return id, userID
}

func TestSessionAuth(t *testing.T) {
	t.Run("attaches identity for a valid cookie", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		store := session.NewMemoryStore(0)
		defer store.Close()
		sessionID, userID := storeSession(t, store, "customer")

		router := gin.New()
		router.Use(SessionAuth(testCookieName, store))
		router.GET("/open", func(c *gin.Context) {
			assert.Equal(t, sessionID, GetSessionID(c))
			assert.Equal(t, userID, GetSessionUserID(c))
			assert.Equal(t, "customer", GetSessionRole(c))
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: sessionID})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("passes through anonymously without a cookie", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		store := session.NewMemoryStore(0)
		defer store.Close()

		router := gin.New()
		router.Use(SessionAuth(testCookieName, store))
		router.GET("/open", func(c *gin.Context) {
			assert.Empty(t, GetSessionID(c))
			assert.Equal(t, uuid.Nil, GetSessionUserID(c))
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))

		assert.Equal(t, http.StatusOK, w.Code, "missing session must not block open routes")
	})

	t.Run("passes through anonymously with an unknown cookie", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		store := session.NewMemoryStore(0)
		defer store.Close()

		router := gin.New()
		router.Use(SessionAuth(testCookieName, store))
		router.GET("/open", func(c *gin.Context) {
			assert.Equal(t, uuid.Nil, GetSessionUserID(c))
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "stale-session-id"})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := session.NewMemoryStore(0)
	defer store.Close()

	router := gin.New()
	router.Use(SessionAuth(testCookieName, store))
	router.GET("/private", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("allows authenticated sessions", func(t *testing.T) {
		sessionID, _ := storeSession(t, store, "customer")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: sessionID})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects anonymous requests with 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_UNAUTHORIZED")
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := session.NewMemoryStore(0)
	defer store.Close()

	router := gin.New()
	router.Use(SessionAuth(testCookieName, store))
	router.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("allows administrators", func(t *testing.T) {
		sessionID, _ := storeSession(t, store, "admin")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: sessionID})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects customers with 403", func(t *testing.T) {
		sessionID, _ := storeSession(t, store, "customer")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: sessionID})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_FORBIDDEN")
	})

	t.Run("rejects anonymous requests with 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
