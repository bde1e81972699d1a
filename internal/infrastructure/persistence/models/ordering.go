package models

import (
	"github.com/ghiaccio/backend/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order domain entity. Column
// names keep the Italian wire vocabulary the frontend already speaks.
type OrderModel struct {
	BaseModel
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity        decimal.Decimal `gorm:"column:quantita;type:decimal(10,2);not null"`
	IceType         string          `gorm:"column:tipologia;type:varchar(20);not null"`
	DeliveryAddress string          `gorm:"column:indirizzo;type:varchar(500);not null"`
	DeliveryDate    string          `gorm:"column:data;type:varchar(10);not null"`
	DeliveryHour    string          `gorm:"column:orario;type:varchar(5);not null"`
	RequestDate     string          `gorm:"column:data_richiesta;type:varchar(10);not null"`
	RequestHour     string          `gorm:"column:orario_richiesta;type:varchar(5);not null"`
	Status          string          `gorm:"column:stato;type:varchar(20);not null;default:'in attesa';index"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *ordering.Order {
	return &ordering.Order{
		BaseEntity:      m.BaseModel.ToDomain(),
		UserID:          m.UserID,
		Quantity:        m.Quantity,
		IceType:         ordering.IceType(m.IceType),
		DeliveryAddress: m.DeliveryAddress,
		DeliveryDate:    m.DeliveryDate,
		DeliveryHour:    m.DeliveryHour,
		RequestDate:     m.RequestDate,
		RequestHour:     m.RequestHour,
		Status:          ordering.OrderStatus(m.Status),
	}
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *ordering.Order) {
	m.BaseModel.FromDomain(o.BaseEntity)
	m.UserID = o.UserID
	m.Quantity = o.Quantity
	m.IceType = string(o.IceType)
	m.DeliveryAddress = o.DeliveryAddress
	m.DeliveryDate = o.DeliveryDate
	m.DeliveryHour = o.DeliveryHour
	m.RequestDate = o.RequestDate
	m.RequestHour = o.RequestHour
	m.Status = string(o.Status)
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *ordering.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
