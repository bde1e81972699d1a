package persistence

import (
	"context"
	"errors"

	"github.com/ghiaccio/backend/internal/domain/inventory"
	"github.com/ghiaccio/backend/internal/domain/shared"
	"github.com/ghiaccio/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFreezerRepository implements FreezerRepository using GORM
type GormFreezerRepository struct {
	db *gorm.DB
}

// NewGormFreezerRepository creates a new GormFreezerRepository
func NewGormFreezerRepository(db *gorm.DB) *GormFreezerRepository {
	return &GormFreezerRepository{db: db}
}

// Create creates a new freezer record
func (r *GormFreezerRepository) Create(ctx context.Context, freezer *inventory.Freezer) error {
	model := models.FreezerModelFromDomain(freezer)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a freezer by ID
func (r *GormFreezerRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Freezer, error) {
	var model models.FreezerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all freezers ordered by name
func (r *GormFreezerRepository) FindAll(ctx context.Context) ([]*inventory.Freezer, error) {
	var freezerModels []*models.FreezerModel
	if err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&freezerModels).Error; err != nil {
		return nil, err
	}

	freezers := make([]*inventory.Freezer, len(freezerModels))
	for i, model := range freezerModels {
		freezers[i] = model.ToDomain()
	}
	return freezers, nil
}

// Ensure GormFreezerRepository implements FreezerRepository
var _ inventory.FreezerRepository = (*GormFreezerRepository)(nil)
