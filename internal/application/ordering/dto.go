package ordering

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Actor identifies who is performing an ordering operation
type Actor struct {
	UserID uuid.UUID // uuid.Nil when anonymous
	Role   string
}

// IsAuthenticated returns true when the actor has a logged-in user
func (a Actor) IsAuthenticated() bool {
	return a.UserID != uuid.Nil
}

// IsAdmin returns true for administrator actors
func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}

// SubmitInput contains the order form fields. The contact fields are only
// required for unauthenticated submissions.
type SubmitInput struct {
	Quantity        decimal.Decimal
	IceType         string
	DeliveryAddress string
	DeliveryDate    string
	DeliveryHour    string
	Name            string
	Surname         string
	Phone           string
}

// OrderResult is the order shape returned to the client
type OrderResult struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Quantity        decimal.Decimal
	IceType         string
	DeliveryAddress string
	DeliveryDate    string
	DeliveryHour    string
	RequestDate     string
	RequestHour     string
	Status          string
}
