package report

import (
	"context"
	"testing"

	"github.com/ghiaccio/backend/internal/domain/inventory"
	"github.com/ghiaccio/backend/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of ordering.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, filter ordering.Filter) ([]*ordering.Order, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter ordering.Filter) ([]*ordering.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context) (map[ordering.OrderStatus]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[ordering.OrderStatus]int64), args.Error(1)
}

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

func newFreezer(t *testing.T, name string, bags int, currentKg, capacityKg int64) *inventory.Freezer {
	t.Helper()
	f, err := inventory.NewFreezer(name, bags, decimal.NewFromInt(currentKg), decimal.NewFromInt(capacityKg))
	require.NoError(t, err)
	return f
}

func TestSummaryService_Summary(t *testing.T) {
	ctx := context.Background()
	orderRepo := new(MockOrderRepository)
	freezerRepo := new(MockFreezerRepository)

	orderRepo.On("CountByStatus", ctx).Return(map[ordering.OrderStatus]int64{
		ordering.OrderStatusPending:   5,
		ordering.OrderStatusDelivery:  2,
		ordering.OrderStatusCompleted: 10,
		ordering.OrderStatusCancelled: 3,
	}, nil)
	freezerRepo.On("FindAll", ctx).Return([]*inventory.Freezer{
		newFreezer(t, "Freezer A", 12, 30, 100),
		newFreezer(t, "Freezer B", 8, 20, 50),
	}, nil)

	svc := NewSummaryService(orderRepo, freezerRepo, zap.NewNop())

	summary, err := svc.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(20), summary.Orders.Total)
	assert.Equal(t, int64(5), summary.Orders.Pending)
	assert.Equal(t, int64(2), summary.Orders.Delivery)
	assert.Equal(t, int64(10), summary.Orders.Completed)
	assert.Equal(t, int64(3), summary.Orders.Cancelled)

	assert.True(t, summary.Ice.TotalKg.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 20, summary.Ice.TotalBags)
	assert.True(t, summary.Ice.TotalCapacityKg.Equal(decimal.NewFromInt(150)))
	// 50 / 150 = 33.33%, rounded to 33
	assert.Equal(t, int64(33), summary.Ice.UsagePercent)
}

func TestSummaryService_Summary_Rounding(t *testing.T) {
	ctx := context.Background()
	orderRepo := new(MockOrderRepository)
	freezerRepo := new(MockFreezerRepository)

	orderRepo.On("CountByStatus", ctx).Return(map[ordering.OrderStatus]int64{}, nil)
	freezerRepo.On("FindAll", ctx).Return([]*inventory.Freezer{
		newFreezer(t, "Freezer A", 0, 2, 3),
	}, nil)

	svc := NewSummaryService(orderRepo, freezerRepo, zap.NewNop())

	summary, err := svc.Summary(ctx)

	require.NoError(t, err)
	// 2 / 3 = 66.67%, rounded to 67
	assert.Equal(t, int64(67), summary.Ice.UsagePercent)
	assert.Equal(t, int64(0), summary.Orders.Total)
}

func TestSummaryService_Summary_ZeroCapacity(t *testing.T) {
	ctx := context.Background()
	orderRepo := new(MockOrderRepository)
	freezerRepo := new(MockFreezerRepository)

	orderRepo.On("CountByStatus", ctx).Return(map[ordering.OrderStatus]int64{}, nil)
	freezerRepo.On("FindAll", ctx).Return([]*inventory.Freezer{}, nil)

	svc := NewSummaryService(orderRepo, freezerRepo, zap.NewNop())

	summary, err := svc.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Ice.UsagePercent)
	assert.True(t, summary.Ice.TotalKg.IsZero())
}

func TestSummaryService_Freezers(t *testing.T) {
	ctx := context.Background()
	orderRepo := new(MockOrderRepository)
	freezerRepo := new(MockFreezerRepository)

	a := newFreezer(t, "Freezer A", 12, 30, 100)
	freezerRepo.On("FindAll", ctx).Return([]*inventory.Freezer{a}, nil)

	svc := NewSummaryService(orderRepo, freezerRepo, zap.NewNop())

	freezers, err := svc.Freezers(ctx)

	require.NoError(t, err)
	require.Len(t, freezers, 1)
	assert.Equal(t, a.ID, freezers[0].ID)
	assert.Equal(t, "Freezer A", freezers[0].Name)
	assert.Equal(t, 12, freezers[0].Bags)
	assert.True(t, freezers[0].CapacityKg.Equal(decimal.NewFromInt(100)))
}
