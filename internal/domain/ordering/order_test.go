package ordering

import (
	"testing"
	"time"

	"github.com/ghiaccio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func validOrder(t *testing.T, hoursUntilDelivery int) *Order {
	t.Helper()

	deliveryAt := testNow.Add(time.Duration(hoursUntilDelivery) * time.Hour)
	order, err := NewOrder(
		uuid.New(),
		decimal.NewFromInt(10),
		IceTypeConsumption,
		"Via Roma 1, Torino",
		deliveryAt.Format(DateLayout),
		deliveryAt.Format(HourLayout),
		testNow,
	)
	require.NoError(t, err)
	return order
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order with request stamp", func(t *testing.T) {
		order := validOrder(t, 100)

		assert.Equal(t, OrderStatusPending, order.Status)
		assert.Equal(t, "2026-03-10", order.RequestDate)
		assert.Equal(t, "09:00", order.RequestHour)
		assert.Equal(t, "Via Roma 1, Torino", order.DeliveryAddress)
		assert.NotEmpty(t, order.ID)
	})

	t.Run("fails without an owner", func(t *testing.T) {
		_, err := NewOrder(uuid.Nil, decimal.NewFromInt(10), IceTypeConsumption,
			"Via Roma 1", "2026-03-20", "15:00", testNow)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_USER", domainErr.Code)
	})

	t.Run("fails with invalid fields", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), decimal.Zero, IceType("tritato"),
			"", "", "", testNow)
		require.Error(t, err)

		var errs shared.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.NotEmpty(t, errs)
	})
}

func TestValidateFields(t *testing.T) {
	valid := func() (decimal.Decimal, IceType, string, string, string) {
		return decimal.NewFromInt(10), IceTypeConsumption, "Via Roma 1", "2026-03-20", "15:00"
	}

	t.Run("passes with valid fields", func(t *testing.T) {
		q, it, addr, date, hour := valid()
		assert.Empty(t, ValidateFields(q, it, addr, date, hour, testNow))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, it, addr, date, hour := valid()
		errs := ValidateFields(decimal.Zero, it, addr, date, hour, testNow)
		require.Len(t, errs, 1)
		assert.Equal(t, "quantita", errs[0].Field)

		errs = ValidateFields(decimal.NewFromInt(-5), it, addr, date, hour, testNow)
		require.Len(t, errs, 1)
		assert.Equal(t, "quantita", errs[0].Field)
	})

	t.Run("rejects missing and unknown ice type", func(t *testing.T) {
		q, _, addr, date, hour := valid()
		errs := ValidateFields(q, "", addr, date, hour, testNow)
		require.Len(t, errs, 1)
		assert.Equal(t, "tipologia", errs[0].Field)
		assert.Equal(t, "La tipologia è obbligatoria", errs[0].Message)

		errs = ValidateFields(q, IceType("tritato"), addr, date, hour, testNow)
		require.Len(t, errs, 1)
		assert.Equal(t, "tipologia", errs[0].Field)
		assert.Equal(t, "Tipologia di ghiaccio non valida", errs[0].Message)
	})

	t.Run("rejects blank address", func(t *testing.T) {
		q, it, _, date, hour := valid()
		errs := ValidateFields(q, it, "   ", date, hour, testNow)
		require.Len(t, errs, 1)
		assert.Equal(t, "indirizzo", errs[0].Field)
	})

	t.Run("rejects missing date or hour", func(t *testing.T) {
		q, it, addr, _, hour := valid()
		errs := ValidateFields(q, it, addr, "", hour, testNow)
		require.Len(t, errs, 1)
		assert.Equal(t, "data", errs[0].Field)

		errs = ValidateFields(q, it, addr, "2026-03-20", "", testNow)
		require.Len(t, errs, 1)
		assert.Equal(t, "data", errs[0].Field)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		q, it, addr, _, hour := valid()
		errs := ValidateFields(q, it, addr, "20-03-2026", hour, testNow)
		require.Len(t, errs, 1)
		assert.Equal(t, "data", errs[0].Field)
	})

	t.Run("rejects delivery in the past", func(t *testing.T) {
		q, it, addr, _, _ := valid()
		errs := ValidateFields(q, it, addr, "2026-03-09", "15:00", testNow)
		require.Len(t, errs, 1)
		assert.Equal(t, "orario", errs[0].Field)
	})

	t.Run("rejects delivery at the current instant", func(t *testing.T) {
		q, it, addr, _, _ := valid()
		errs := ValidateFields(q, it, addr, "2026-03-10", "09:00", testNow)
		require.Len(t, errs, 1)
		assert.Equal(t, "orario", errs[0].Field)
	})
}

func TestCanBeChangedBy(t *testing.T) {
	t.Run("allows the owner well before delivery", func(t *testing.T) {
		order := validOrder(t, 80)
		assert.NoError(t, order.CanBeChangedBy(order.UserID, testNow))
	})

	t.Run("rejects non-owners", func(t *testing.T) {
		order := validOrder(t, 80)
		assert.ErrorIs(t, order.CanBeChangedBy(uuid.New(), testNow), shared.ErrForbidden)
	})

	t.Run("rejects inside the 72 hour window", func(t *testing.T) {
		order := validOrder(t, 70)
		assert.ErrorIs(t, order.CanBeChangedBy(order.UserID, testNow), shared.ErrEditWindowClosed)
	})

	t.Run("rejects at exactly 72 hours", func(t *testing.T) {
		order := validOrder(t, 72)
		assert.ErrorIs(t, order.CanBeChangedBy(order.UserID, testNow), shared.ErrEditWindowClosed)
	})

	t.Run("rejects non-pending orders", func(t *testing.T) {
		order := validOrder(t, 80)
		require.NoError(t, order.TransitionTo(OrderStatusDelivery, testNow))
		assert.ErrorIs(t, order.CanBeChangedBy(order.UserID, testNow), shared.ErrInvalidState)
	})
}

func TestAmend(t *testing.T) {
	t.Run("replaces editable fields and keeps the request stamp", func(t *testing.T) {
		order := validOrder(t, 100)
		later := testNow.Add(2 * time.Hour)

		err := order.Amend(decimal.NewFromInt(25), IceTypeCooling,
			"Via Po 15, Torino", "2026-03-25", "18:30", later)
		require.NoError(t, err)

		assert.True(t, order.Quantity.Equal(decimal.NewFromInt(25)))
		assert.Equal(t, IceTypeCooling, order.IceType)
		assert.Equal(t, "Via Po 15, Torino", order.DeliveryAddress)
		assert.Equal(t, "2026-03-25", order.DeliveryDate)
		assert.Equal(t, "18:30", order.DeliveryHour)
		assert.Equal(t, "2026-03-10", order.RequestDate)
		assert.Equal(t, "09:00", order.RequestHour)
		assert.Equal(t, later, order.UpdatedAt)
	})

	t.Run("rejects invalid replacement fields", func(t *testing.T) {
		order := validOrder(t, 100)
		err := order.Amend(decimal.Zero, order.IceType, order.DeliveryAddress,
			order.DeliveryDate, order.DeliveryHour, testNow)
		require.Error(t, err)

		assert.True(t, order.Quantity.Equal(decimal.NewFromInt(10)), "failed amend must not change the order")
	})
}

func TestCancel(t *testing.T) {
	t.Run("cancels a pending order", func(t *testing.T) {
		order := validOrder(t, 100)
		require.NoError(t, order.Cancel(testNow))
		assert.Equal(t, OrderStatusCancelled, order.Status)
	})

	t.Run("rejects cancelling twice", func(t *testing.T) {
		order := validOrder(t, 100)
		require.NoError(t, order.Cancel(testNow))
		assert.ErrorIs(t, order.Cancel(testNow), shared.ErrInvalidState)
	})

	t.Run("rejects cancelling an order in delivery", func(t *testing.T) {
		order := validOrder(t, 100)
		require.NoError(t, order.TransitionTo(OrderStatusDelivery, testNow))
		assert.ErrorIs(t, order.Cancel(testNow), shared.ErrInvalidState)
	})
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusDelivery, true},
		{OrderStatusPending, OrderStatusCompleted, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusDelivery, OrderStatusCompleted, true},
		{OrderStatusDelivery, OrderStatusPending, false},
		{OrderStatusDelivery, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusDelivery, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
	}

	for _, tt := range tests {
		name := string(tt.from) + " -> " + string(tt.to)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTransitionTo(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		order := validOrder(t, 100)
		err := order.TransitionTo(OrderStatus("spedito"), testNow)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATUS", domainErr.Code)
	})

	t.Run("walks pending to completed through delivery", func(t *testing.T) {
		order := validOrder(t, 100)
		require.NoError(t, order.TransitionTo(OrderStatusDelivery, testNow))
		require.NoError(t, order.TransitionTo(OrderStatusCompleted, testNow))
		assert.Equal(t, OrderStatusCompleted, order.Status)
	})
}

func TestResolveDeliveryTime(t *testing.T) {
	t.Run("parses date and hour in the given location", func(t *testing.T) {
		at, err := ResolveDeliveryTime("2026-03-20", "15:04", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 20, 15, 4, 0, 0, time.UTC), at)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := ResolveDeliveryTime("2026/03/20", "15:04", time.UTC)
		assert.Error(t, err)
	})
}
