package services

import (
	"context"

	"gorm.io/datatypes"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userId string) (*response_models.ProfileResponse, error)
	CreateProfile(ctx context.Context, userId string, request request_models.ProfileRequest) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId string, request request_models.ProfileRequest) (*response_models.ProfileResponse, error)
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (p *ProfileService) GetProfile(ctx context.Context, userId string) (*response_models.ProfileResponse, error) {
	profile, err := p.profileRepo.FindByUserId(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	resp := response_models.FromProfile(profile)
	return &resp, nil
}

func (p *ProfileService) CreateProfile(ctx context.Context, userId string, request request_models.ProfileRequest) (*response_models.ProfileResponse, error) {
	user, err := p.userRepo.FindById(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	existing, err := p.profileRepo.FindByUserId(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrProfileExists
	}

	profile := &db_models.UserProfile{
		UserID:         user.ID,
		FirstName:      request.FirstName,
		LastName:       request.LastName,
		PhoneNumber:    request.PhoneNumber,
		City:           request.City,
		Country:        request.Country,
		AdditionalInfo: request.AdditionalInfo,
		Preferences:    preferencesOrEmpty(request.Preferences),
	}
	if err := p.profileRepo.Insert(ctx, profile); err != nil {
		return nil, utils.TranslateDBError(err, utils.ErrProfileExists)
	}

	resp := response_models.FromProfile(profile)
	return &resp, nil
}

func (p *ProfileService) UpdateProfile(ctx context.Context, userId string, request request_models.ProfileRequest) (*response_models.ProfileResponse, error) {
	profile, err := p.profileRepo.FindByUserId(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	profile.FirstName = request.FirstName
	profile.LastName = request.LastName
	profile.PhoneNumber = request.PhoneNumber
	profile.City = request.City
	profile.Country = request.Country
	profile.AdditionalInfo = request.AdditionalInfo
	if len(request.Preferences) > 0 {
		profile.Preferences = datatypes.JSON(request.Preferences)
	}

	if err := p.profileRepo.Update(ctx, profile); err != nil {
		return nil, utils.TranslateDBError(err, utils.ErrConflict)
	}

	resp := response_models.FromProfile(profile)
	return &resp, nil
}

func preferencesOrEmpty(raw []byte) datatypes.JSON {
	if len(raw) == 0 {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}
