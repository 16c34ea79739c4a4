package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/platescan/backend/internal/models"
)

// UserProfileStore is the GORM-backed profile store.
type UserProfileStore struct {
	db *gorm.DB
}

// NewUserProfileStore creates a UserProfileStore using the given handle.
func NewUserProfileStore(db *gorm.DB) *UserProfileStore {
	return &UserProfileStore{db: db}
}

// Insert persists a profile with its derived goal.
func (s *UserProfileStore) Insert(ctx context.Context, profile *models.UserProfile) error {
	if err := s.db.WithContext(ctx).Create(profile).Error; err != nil {
		return persistenceFailure("failed to store user profile", err)
	}
	return nil
}

// ListAll returns every profile, oldest first. The listing is never nil so
// an empty store serializes as an empty JSON array.
func (s *UserProfileStore) ListAll(ctx context.Context) ([]models.UserProfile, error) {
	profiles := make([]models.UserProfile, 0)
	if err := s.db.WithContext(ctx).Order("created_at asc").Find(&profiles).Error; err != nil {
		return nil, persistenceFailure("failed to list user profiles", err)
	}
	return profiles, nil
}

// Latest returns the most recently created profile, or nil when none exists.
func (s *UserProfileStore) Latest(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Order("created_at desc").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, persistenceFailure("failed to load latest profile", err)
	}
	return &profile, nil
}
