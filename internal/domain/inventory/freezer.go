package inventory

import (
	"strings"

	"github.com/ghiaccio/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Freezer represents one freezer unit and its ice stock. The ordering flow
// only reads these; stock is maintained out of band.
type Freezer struct {
	shared.BaseEntity
	Name       string
	Bags       int             // number of ice bags stored
	CurrentKg  decimal.Decimal // ice currently stored
	CapacityKg decimal.Decimal // maximum the unit can hold
}

// NewFreezer creates a freezer record
func NewFreezer(name string, bags int, currentKg, capacityKg decimal.Decimal) (*Freezer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Freezer name cannot be empty")
	}
	if bags < 0 {
		return nil, shared.NewDomainError("INVALID_BAGS", "Bag count cannot be negative")
	}
	if currentKg.IsNegative() || capacityKg.IsNegative() {
		return nil, shared.NewDomainError("INVALID_KG", "Stored and capacity kg cannot be negative")
	}
	if currentKg.GreaterThan(capacityKg) {
		return nil, shared.NewDomainError("OVER_CAPACITY", "Stored kg cannot exceed capacity")
	}

	return &Freezer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Bags:       bags,
		CurrentKg:  currentKg,
		CapacityKg: capacityKg,
	}, nil
}
