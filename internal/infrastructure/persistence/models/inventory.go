package models

import (
	"github.com/ghiaccio/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// FreezerModel is the persistence model for the Freezer domain entity.
type FreezerModel struct {
	BaseModel
	Name       string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Bags       int             `gorm:"column:n_bags;not null;default:0"`
	CurrentKg  decimal.Decimal `gorm:"column:n_kg;type:decimal(10,2);not null;default:0"`
	CapacityKg decimal.Decimal `gorm:"column:n_kg_max;type:decimal(10,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (FreezerModel) TableName() string {
	return "freezer"
}

// ToDomain converts the persistence model to a domain Freezer entity.
func (m *FreezerModel) ToDomain() *inventory.Freezer {
	return &inventory.Freezer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Bags:       m.Bags,
		CurrentKg:  m.CurrentKg,
		CapacityKg: m.CapacityKg,
	}
}

// FromDomain populates the persistence model from a domain Freezer entity.
func (m *FreezerModel) FromDomain(f *inventory.Freezer) {
	m.BaseModel.FromDomain(f.BaseEntity)
	m.Name = f.Name
	m.Bags = f.Bags
	m.CurrentKg = f.CurrentKg
	m.CapacityKg = f.CapacityKg
}

// FreezerModelFromDomain creates a new persistence model from a domain Freezer entity.
func FreezerModelFromDomain(f *inventory.Freezer) *FreezerModel {
	m := &FreezerModel{}
	m.FromDomain(f)
	return m
}
