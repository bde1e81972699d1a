package persistence

import (
	"context"
	"errors"

	"github.com/ghiaccio/backend/internal/domain/ordering"
	"github.com/ghiaccio/backend/internal/domain/shared"
	"github.com/ghiaccio/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sortColumns maps the sort keys accepted by list views onto real columns.
// Anything outside this allowlist falls back to request recency, so user
// input never reaches the ORDER BY clause directly.
var sortColumns = map[string][]string{
	ordering.SortByRequest:  {"data_richiesta", "orario_richiesta"},
	ordering.SortByQuantity: {"quantita"},
	ordering.SortByIceType:  {"tipologia"},
	ordering.SortByAddress:  {"indirizzo"},
	ordering.SortByStatus:   {"stato"},
	ordering.SortByDelivery: {"data", "orario"},
}

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create creates a new order
func (r *GormOrderRepository) Create(ctx context.Context, order *ordering.Order) error {
	model := models.OrderModelFromDomain(order)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing order
func (r *GormOrderRepository) Update(ctx context.Context, order *ordering.Order) error {
	model := models.OrderModelFromDomain(order)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an order by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUserID returns the orders owned by a user
func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, filter ordering.Filter) ([]*ordering.Order, error) {
	query := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("user_id = ?", userID)
	return r.findWithFilter(query, filter)
}

// FindAll returns all orders (admin views)
func (r *GormOrderRepository) FindAll(ctx context.Context, filter ordering.Filter) ([]*ordering.Order, error) {
	query := r.db.WithContext(ctx).Model(&models.OrderModel{})
	return r.findWithFilter(query, filter)
}

// CountByStatus returns the number of orders per status
func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[ordering.OrderStatus]int64, error) {
	type statusCount struct {
		Stato string
		Count int64
	}
	var rows []statusCount
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("stato, COUNT(*) as count").
		Group("stato").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[ordering.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[ordering.OrderStatus(row.Stato)] = row.Count
	}
	return counts, nil
}

func (r *GormOrderRepository) findWithFilter(query *gorm.DB, filter ordering.Filter) ([]*ordering.Order, error) {
	query = applyOrderFilter(query, filter)
	query = applyOrderSorting(query, filter)

	var orderModels []*models.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*ordering.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = model.ToDomain()
	}
	return orders, nil
}

// applyOrderFilter applies filter options to the query
func applyOrderFilter(query *gorm.DB, filter ordering.Filter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("stato = ?", string(*filter.Status))
	} else if !filter.IncludeCancelled {
		query = query.Where("stato <> ?", string(ordering.OrderStatusCancelled))
	}

	if filter.IceType != nil {
		query = query.Where("tipologia = ?", string(*filter.IceType))
	}

	return query
}

// applyOrderSorting applies the allowlisted sort key and direction
func applyOrderSorting(query *gorm.DB, filter ordering.Filter) *gorm.DB {
	columns, ok := sortColumns[filter.SortBy]
	if !ok {
		columns = sortColumns[ordering.SortByRequest]
	}

	direction := "asc"
	if filter.SortOrder != "asc" {
		direction = "desc"
	}

	for _, column := range columns {
		query = query.Order(column + " " + direction)
	}
	return query
}

// Ensure GormOrderRepository implements OrderRepository
var _ ordering.OrderRepository = (*GormOrderRepository)(nil)
