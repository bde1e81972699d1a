package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ghiaccio/backend/internal/application/report"
	"github.com/ghiaccio/backend/internal/domain/inventory"
	"github.com/ghiaccio/backend/internal/domain/ordering"
	"github.com/ghiaccio/backend/internal/infrastructure/session"
	"github.com/ghiaccio/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockFreezerRepository is a mock implementation of inventory.FreezerRepository
type MockFreezerRepository struct {
	mock.Mock
}

func (m *MockFreezerRepository) Create(ctx context.Context, freezer *inventory.Freezer) error {
	args := m.Called(ctx, freezer)
	return args.Error(0)
}

func (m *MockFreezerRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Freezer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Freezer), args.Error(1)
}

func (m *MockFreezerRepository) FindAll(ctx context.Context) ([]*inventory.Freezer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Freezer), args.Error(1)
}

func setupAdminRouter(t *testing.T) (*gin.Engine, *MockOrderRepository, *MockFreezerRepository, *session.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orderRepo := new(MockOrderRepository)
	freezerRepo := new(MockFreezerRepository)
	store := session.NewMemoryStore(0)
	t.Cleanup(store.Close)

	summaryService := report.NewSummaryService(orderRepo, freezerRepo, zap.NewNop())
	adminHandler := NewAdminHandler(summaryService)

	router := gin.New()
	router.Use(middleware.SessionAuth("ice_session", store))
	api := router.Group("/api")
	adminHandler.RegisterRoutes(api)

	return router, orderRepo, freezerRepo, store
}

func testFreezer(t *testing.T, name string, currentKg, capacityKg int64) *inventory.Freezer {
	t.Helper()
	freezer, err := inventory.NewFreezer(name, 10, decimal.NewFromInt(currentKg), decimal.NewFromInt(capacityKg))
	require.NoError(t, err)
	return freezer
}

func TestAdminHandler_Summary(t *testing.T) {
	t.Run("returns order counts and ice stock", func(t *testing.T) {
		router, orderRepo, freezerRepo, store := setupAdminRouter(t)
		cookie := loginAs(t, store, uuid.New(), "admin")

		orderRepo.On("CountByStatus", mock.Anything).Return(map[ordering.OrderStatus]int64{
			ordering.OrderStatusPending:   5,
			ordering.OrderStatusCompleted: 10,
		}, nil)
		freezerRepo.On("FindAll", mock.Anything).Return([]*inventory.Freezer{
			testFreezer(t, "Freezer A", 50, 100),
			testFreezer(t, "Freezer B", 100, 200),
		}, nil)

		w := doJSON(router, http.MethodGet, "/api/summary", nil, cookie)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Data struct {
				Orders struct {
					Total   int64 `json:"total"`
					Pending int64 `json:"pending"`
				} `json:"orders"`
				Ice struct {
					UsagePercent int64 `json:"usage_percent"`
				} `json:"ice"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(15), resp.Data.Orders.Total)
		assert.Equal(t, int64(5), resp.Data.Orders.Pending)
		assert.Equal(t, int64(50), resp.Data.Ice.UsagePercent)
	})

	t.Run("rejects customers", func(t *testing.T) {
		router, _, _, store := setupAdminRouter(t)
		cookie := loginAs(t, store, uuid.New(), "customer")

		w := doJSON(router, http.MethodGet, "/api/summary", nil, cookie)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rejects anonymous callers", func(t *testing.T) {
		router, _, _, _ := setupAdminRouter(t)

		w := doJSON(router, http.MethodGet, "/api/summary", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminHandler_Freezers(t *testing.T) {
	router, _, freezerRepo, store := setupAdminRouter(t)
	cookie := loginAs(t, store, uuid.New(), "admin")
	freezerRepo.On("FindAll", mock.Anything).Return([]*inventory.Freezer{
		testFreezer(t, "Freezer A", 50, 100),
	}, nil)

	w := doJSON(router, http.MethodGet, "/api/freezers", nil, cookie)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Freezer A")
}
