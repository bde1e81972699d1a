package ordering

import (
	"fmt"
	"strings"
	"time"

	"github.com/ghiaccio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of a delivery order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "in attesa"
	OrderStatusDelivery  OrderStatus = "in consegna"
	OrderStatusCompleted OrderStatus = "completato"
	OrderStatusCancelled OrderStatus = "cancellato"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivery, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Transitions are monotonic: nothing ever goes back to pending.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusDelivery || target == OrderStatusCompleted || target == OrderStatusCancelled
	case OrderStatusDelivery:
		return target == OrderStatusCompleted
	case OrderStatusCompleted, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// IceType represents the kind of ice being ordered
type IceType string

const (
	IceTypeConsumption IceType = "consumazione" // food-grade, for drinks
	IceTypeCooling     IceType = "raffreddare"  // for keeping goods cold
)

// IsValid checks if the ice type is one of the two sold kinds
func (t IceType) IsValid() bool {
	return t == IceTypeConsumption || t == IceTypeCooling
}

// Wire layouts for delivery and request timestamps
const (
	DateLayout = "2006-01-02"
	HourLayout = "15:04"
)

// EditWindow is how long before delivery a customer may still change or
// cancel a pending order.
const EditWindow = 72 * time.Hour

// Order represents an ice delivery order.
// It is the aggregate root for the ordering flow.
type Order struct {
	shared.BaseEntity
	UserID          uuid.UUID
	Quantity        decimal.Decimal // kg
	IceType         IceType
	DeliveryAddress string
	DeliveryDate    string // DateLayout
	DeliveryHour    string // HourLayout
	RequestDate     string // server-stamped at creation
	RequestHour     string
	Status          OrderStatus
}

// NewOrder creates a pending order, stamping the request date and hour from
// the supplied wall-clock time.
func NewOrder(userID uuid.UUID, quantity decimal.Decimal, iceType IceType, address, deliveryDate, deliveryHour string, now time.Time) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Order must belong to a user")
	}
	if errs := ValidateFields(quantity, iceType, address, deliveryDate, deliveryHour, now); len(errs) > 0 {
		return nil, errs
	}

	return &Order{
		BaseEntity:      shared.NewBaseEntity(),
		UserID:          userID,
		Quantity:        quantity,
		IceType:         iceType,
		DeliveryAddress: strings.TrimSpace(address),
		DeliveryDate:    deliveryDate,
		DeliveryHour:    deliveryHour,
		RequestDate:     now.Format(DateLayout),
		RequestHour:     now.Format(HourLayout),
		Status:          OrderStatusPending,
	}, nil
}

// DeliveryTime resolves the delivery date and hour into a timestamp in the
// given location.
func (o *Order) DeliveryTime(loc *time.Location) (time.Time, error) {
	return ResolveDeliveryTime(o.DeliveryDate, o.DeliveryHour, loc)
}

// CanBeChangedBy reports whether the user may still edit or cancel this
// order at the given instant: owner only, pending only, and more than 72
// hours before delivery.
func (o *Order) CanBeChangedBy(userID uuid.UUID, now time.Time) error {
	if o.UserID != userID {
		return shared.ErrForbidden
	}
	if o.Status != OrderStatusPending {
		return shared.ErrInvalidState
	}
	deliveryAt, err := o.DeliveryTime(now.Location())
	if err != nil {
		return err
	}
	if deliveryAt.Sub(now) <= EditWindow {
		return shared.ErrEditWindowClosed
	}
	return nil
}

// Amend replaces the customer-editable fields. The request stamp is kept:
// it records when the order was first placed, not when it was last touched.
func (o *Order) Amend(quantity decimal.Decimal, iceType IceType, address, deliveryDate, deliveryHour string, now time.Time) error {
	if errs := ValidateFields(quantity, iceType, address, deliveryDate, deliveryHour, now); len(errs) > 0 {
		return errs
	}

	o.Quantity = quantity
	o.IceType = iceType
	o.DeliveryAddress = strings.TrimSpace(address)
	o.DeliveryDate = deliveryDate
	o.DeliveryHour = deliveryHour
	o.UpdatedAt = now

	return nil
}

// Cancel marks the order cancelled. The row is kept; cancelled orders are
// hidden from list views by default.
func (o *Order) Cancel(now time.Time) error {
	if !o.Status.CanTransitionTo(OrderStatusCancelled) {
		return shared.ErrInvalidState
	}
	o.Status = OrderStatusCancelled
	o.UpdatedAt = now
	return nil
}

// TransitionTo moves the order to the target status if the status machine
// allows it (administrator-driven transitions).
func (o *Order) TransitionTo(target OrderStatus, now time.Time) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.ErrInvalidState
	}
	o.Status = target
	o.UpdatedAt = now
	return nil
}

// ValidateFields checks the customer-supplied order fields and returns one
// field-keyed error per failing rule. The server always re-runs these even
// though the client pre-validates.
func ValidateFields(quantity decimal.Decimal, iceType IceType, address, deliveryDate, deliveryHour string, now time.Time) shared.ValidationErrors {
	var errs shared.ValidationErrors

	if quantity.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, shared.NewValidationError("quantita", "La quantità deve essere maggiore di zero"))
	}
	if iceType == "" {
		errs = append(errs, shared.NewValidationError("tipologia", "La tipologia è obbligatoria"))
	} else if !iceType.IsValid() {
		errs = append(errs, shared.NewValidationError("tipologia", "Tipologia di ghiaccio non valida"))
	}
	if strings.TrimSpace(address) == "" {
		errs = append(errs, shared.NewValidationError("indirizzo", "L'indirizzo di consegna è obbligatorio"))
	}

	switch {
	case deliveryDate == "" || deliveryHour == "":
		errs = append(errs, shared.NewValidationError("data", "Data e orario di consegna sono obbligatori"))
	default:
		deliveryAt, err := ResolveDeliveryTime(deliveryDate, deliveryHour, now.Location())
		if err != nil {
			errs = append(errs, shared.NewValidationError("data", "Data o orario di consegna non validi"))
		} else if !deliveryAt.After(now) {
			errs = append(errs, shared.NewValidationError("orario", "L'orario di consegna deve essere futuro"))
		}
	}

	return errs
}

// ResolveDeliveryTime parses the wire date and hour into a single timestamp
func ResolveDeliveryTime(date, hour string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+HourLayout, date+" "+hour, loc)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DELIVERY_TIME", "Invalid delivery date or hour")
	}
	return t, nil
}
