package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/platescan/backend/internal/models"
)

// FoodStore is the GORM-backed nutrition record store.
type FoodStore struct {
	db *gorm.DB
}

// NewFoodStore creates a FoodStore using the given database handle.
func NewFoodStore(db *gorm.DB) *FoodStore {
	return &FoodStore{db: db}
}

// Insert persists a validated record. A rejected write surfaces as a
// persistence_failure and the whole request fails.
func (s *FoodStore) Insert(ctx context.Context, record *models.NutritionRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return persistenceFailure("failed to store nutrition record", err)
	}
	return nil
}

// ListAll returns every persisted record. Listings are never nil so an
// empty store serializes as an empty JSON array.
func (s *FoodStore) ListAll(ctx context.Context) ([]models.NutritionRecord, error) {
	records := make([]models.NutritionRecord, 0)
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, persistenceFailure("failed to list nutrition records", err)
	}
	return records, nil
}

// ListBySource returns records created by the given analysis source.
func (s *FoodStore) ListBySource(ctx context.Context, source string) ([]models.NutritionRecord, error) {
	records := make([]models.NutritionRecord, 0)
	if err := s.db.WithContext(ctx).Where("source = ?", source).Find(&records).Error; err != nil {
		return nil, persistenceFailure("failed to list nutrition records", err)
	}
	return records, nil
}

// ListSince returns records created at or after the given instant.
func (s *FoodStore) ListSince(ctx context.Context, since time.Time) ([]models.NutritionRecord, error) {
	records := make([]models.NutritionRecord, 0)
	if err := s.db.WithContext(ctx).Where("created_at >= ?", since).Find(&records).Error; err != nil {
		return nil, persistenceFailure("failed to list nutrition records", err)
	}
	return records, nil
}
