package report

import (
	"context"

	"github.com/ghiaccio/backend/internal/domain/inventory"
	"github.com/ghiaccio/backend/internal/domain/ordering"
	"github.com/ghiaccio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderCounts breaks down orders by status
type OrderCounts struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Delivery  int64 `json:"delivery"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

// IceStock aggregates the ice held across all freezers
type IceStock struct {
	TotalKg         decimal.Decimal `json:"total_kg"`
	TotalBags       int             `json:"total_bags"`
	TotalCapacityKg decimal.Decimal `json:"total_capacity_kg"`
	// UsagePercent is stored kg over capacity, rounded to the nearest
	// whole percent. Zero capacity reports zero.
	UsagePercent int64 `json:"usage_percent"`
}

// FreezerInfo is the freezer shape returned to the client
type FreezerInfo struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Bags       int             `json:"n_bags"`
	CurrentKg  decimal.Decimal `json:"n_kg"`
	CapacityKg decimal.Decimal `json:"n_kg_max"`
}

// Summary is the administrator dashboard aggregate
type Summary struct {
	Orders OrderCounts `json:"orders"`
	Ice    IceStock    `json:"ice"`
}

// SummaryService produces administrator aggregates over orders and freezers
type SummaryService struct {
	orderRepo   ordering.OrderRepository
	freezerRepo inventory.FreezerRepository
	logger      *zap.Logger
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	orderRepo ordering.OrderRepository,
	freezerRepo inventory.FreezerRepository,
	logger *zap.Logger,
) *SummaryService {
	return &SummaryService{
		orderRepo:   orderRepo,
		freezerRepo: freezerRepo,
		logger:      logger,
	}
}

// Summary computes the order counts and ice stock totals
func (s *SummaryService) Summary(ctx context.Context) (*Summary, error) {
	counts, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Failed to count orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to build summary")
	}

	freezers, err := s.freezerRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to load freezers", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to build summary")
	}

	orders := OrderCounts{
		Pending:   counts[ordering.OrderStatusPending],
		Delivery:  counts[ordering.OrderStatusDelivery],
		Completed: counts[ordering.OrderStatusCompleted],
		Cancelled: counts[ordering.OrderStatusCancelled],
	}
	orders.Total = orders.Pending + orders.Delivery + orders.Completed + orders.Cancelled

	ice := IceStock{TotalKg: decimal.Zero, TotalCapacityKg: decimal.Zero}
	for _, f := range freezers {
		ice.TotalKg = ice.TotalKg.Add(f.CurrentKg)
		ice.TotalBags += f.Bags
		ice.TotalCapacityKg = ice.TotalCapacityKg.Add(f.CapacityKg)
	}
	if ice.TotalCapacityKg.IsPositive() {
		ice.UsagePercent = ice.TotalKg.
			Div(ice.TotalCapacityKg).
			Mul(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	}

	return &Summary{Orders: orders, Ice: ice}, nil
}

// Freezers lists all freezer units
func (s *SummaryService) Freezers(ctx context.Context) ([]FreezerInfo, error) {
	freezers, err := s.freezerRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to load freezers", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list freezers")
	}

	infos := make([]FreezerInfo, len(freezers))
	for i, f := range freezers {
		infos[i] = FreezerInfo{
			ID:         f.ID,
			Name:       f.Name,
			Bags:       f.Bags,
			CurrentKg:  f.CurrentKg,
			CapacityKg: f.CapacityKg,
		}
	}
	return infos, nil
}
