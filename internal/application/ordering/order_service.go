package ordering

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ghiaccio/backend/internal/domain/identity"
	"github.com/ghiaccio/backend/internal/domain/ordering"
	"github.com/ghiaccio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles order submission, amendment, cancellation, and list
// views. Validation always runs here regardless of what the client checked.
type OrderService struct {
	orderRepo ordering.OrderRepository
	userRepo  identity.UserRepository
	logger    *zap.Logger
	clock     func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo ordering.OrderRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		logger:    logger,
		clock:     time.Now,
	}
}

// Submit validates and stores a new order. Authenticated actors own the
// order directly; anonymous submissions must carry contact details whose
// phone number belongs to a registered user.
func (s *OrderService) Submit(ctx context.Context, input SubmitInput, actor Actor) (*OrderResult, error) {
	now := s.clock()

	userID, err := s.resolveOwner(ctx, input, actor)
	if err != nil {
		return nil, err
	}

	order, err := ordering.NewOrder(
		userID,
		input.Quantity,
		ordering.IceType(input.IceType),
		input.DeliveryAddress,
		input.DeliveryDate,
		input.DeliveryHour,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit order")
	}

	s.logger.Info("Order submitted",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("ice_type", string(order.IceType)))

	return orderResult(order), nil
}

// Update amends a pending order. Only the owner may update, only while the
// order is pending and more than 72 hours remain before delivery; the
// request stamp is untouched.
func (s *OrderService) Update(ctx context.Context, orderID uuid.UUID, input SubmitInput, actor Actor) (*OrderResult, error) {
	if !actor.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}

	now := s.clock()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load order", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update order")
	}

	if err := order.CanBeChangedBy(actor.UserID, now); err != nil {
		return nil, err
	}

	if err := order.Amend(input.Quantity, ordering.IceType(input.IceType), input.DeliveryAddress, input.DeliveryDate, input.DeliveryHour, now); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		s.logger.Error("Failed to update order", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update order")
	}

	s.logger.Info("Order updated", zap.String("order_id", order.ID.String()))

	return orderResult(order), nil
}

// Cancel marks a pending order cancelled within the same window rules as
// Update. The row is kept so the order still appears when the client asks
// for cancelled orders.
func (s *OrderService) Cancel(ctx context.Context, orderID uuid.UUID, actor Actor) (*OrderResult, error) {
	if !actor.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}

	now := s.clock()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load order", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to cancel order")
	}

	if err := order.CanBeChangedBy(actor.UserID, now); err != nil {
		return nil, err
	}

	if err := order.Cancel(now); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		s.logger.Error("Failed to cancel order", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to cancel order")
	}

	s.logger.Info("Order cancelled", zap.String("order_id", order.ID.String()))

	return orderResult(order), nil
}

// List returns the actor's own orders
func (s *OrderService) List(ctx context.Context, actor Actor, filter ordering.Filter) ([]OrderResult, error) {
	if !actor.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}

	orders, err := s.orderRepo.FindByUserID(ctx, actor.UserID, filter)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list orders")
	}

	return orderResults(orders), nil
}

// ListAll returns every order, for administrator views
func (s *OrderService) ListAll(ctx context.Context, actor Actor, filter ordering.Filter) ([]OrderResult, error) {
	if !actor.IsAdmin() {
		return nil, shared.ErrForbidden
	}

	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list all orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list orders")
	}

	return orderResults(orders), nil
}

// resolveOwner decides which user an order belongs to
func (s *OrderService) resolveOwner(ctx context.Context, input SubmitInput, actor Actor) (uuid.UUID, error) {
	if actor.IsAuthenticated() {
		return actor.UserID, nil
	}

	var errs shared.ValidationErrors
	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, shared.NewValidationError("nome", "Il nome è obbligatorio"))
	}
	if strings.TrimSpace(input.Surname) == "" {
		errs = append(errs, shared.NewValidationError("cognome", "Il cognome è obbligatorio"))
	}
	if strings.TrimSpace(input.Phone) == "" {
		errs = append(errs, shared.NewValidationError("telefono", "Il numero di telefono è obbligatorio"))
	} else if err := identity.ValidatePhone(input.Phone); err != nil {
		errs = append(errs, shared.NewValidationError("telefono", "Il numero di telefono non è valido"))
	}
	if len(errs) > 0 {
		return uuid.Nil, errs
	}

	user, err := s.userRepo.FindByPhone(ctx, strings.TrimSpace(input.Phone))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, shared.ValidationErrors{
				shared.NewValidationError("telefono", "Numero di telefono non registrato"),
			}
		}
		s.logger.Error("Failed to look up user by phone", zap.Error(err))
		return uuid.Nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit order")
	}

	return user.ID, nil
}

func orderResult(o *ordering.Order) *OrderResult {
	return &OrderResult{
		ID:              o.ID,
		UserID:          o.UserID,
		Quantity:        o.Quantity,
		IceType:         string(o.IceType),
		DeliveryAddress: o.DeliveryAddress,
		DeliveryDate:    o.DeliveryDate,
		DeliveryHour:    o.DeliveryHour,
		RequestDate:     o.RequestDate,
		RequestHour:     o.RequestHour,
		Status:          string(o.Status),
	}
}

func orderResults(orders []*ordering.Order) []OrderResult {
	results := make([]OrderResult, len(orders))
	for i, o := range orders {
		results[i] = *orderResult(o)
	}
	return results
}
