package ordering

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Create creates a new order
	Create(ctx context.Context, order *Order) error

	// Update updates an existing order
	Update(ctx context.Context, order *Order) error

	// FindByID finds an order by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByUserID returns the orders owned by a user
	FindByUserID(ctx context.Context, userID uuid.UUID, filter Filter) ([]*Order, error)

	// FindAll returns all orders (admin views)
	FindAll(ctx context.Context, filter Filter) ([]*Order, error)

	// CountByStatus returns the number of orders per status
	CountByStatus(ctx context.Context) (map[OrderStatus]int64, error)
}

// Sort keys accepted by list views
const (
	SortByRequest  = "request"  // request recency
	SortByQuantity = "quantity" // kg
	SortByIceType  = "ice_type"
	SortByAddress  = "address"
	SortByStatus   = "status"
	SortByDelivery = "delivery" // time to delivery
)

// Filter contains filter and sort options for order list views
type Filter struct {
	// Filter by status; nil means any non-cancelled status
	Status *OrderStatus

	// Filter by ice type
	IceType *IceType

	// IncludeCancelled shows cancelled orders even without a status filter
	IncludeCancelled bool

	// Sorting
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// NewFilter creates a Filter with default values: cancelled orders hidden,
// most recent requests first.
func NewFilter() Filter {
	return Filter{
		SortBy:    SortByRequest,
		SortOrder: "desc",
	}
}

// WithStatus sets the status filter
func (f Filter) WithStatus(status OrderStatus) Filter {
	f.Status = &status
	return f
}

// WithIceType sets the ice type filter
func (f Filter) WithIceType(iceType IceType) Filter {
	f.IceType = &iceType
	return f
}

// WithSorting sets sorting parameters
func (f Filter) WithSorting(sortBy, sortOrder string) Filter {
	f.SortBy = sortBy
	f.SortOrder = sortOrder
	return f
}
