package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

type ProfileRepository interface {
	Insert(ctx context.Context, profile *db_models.UserProfile) error
	Update(ctx context.Context, profile *db_models.UserProfile) error
	FindByUserId(ctx context.Context, userId string) (*db_models.UserProfile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Insert(ctx context.Context, profile *db_models.UserProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) Update(ctx context.Context, profile *db_models.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) FindByUserId(ctx context.Context, userId string) (*db_models.UserProfile, error) {
	var profile db_models.UserProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
