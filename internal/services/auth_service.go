package services

import (
	"context"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type AuthServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	GetCurrentUser(ctx context.Context, userId string) (*response_models.UserResponse, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthServiceInterface {
	return &AuthService{userRepo: userRepo}
}

func (a *AuthService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Email:        request.Email,
		PasswordHash: hashedPassword,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		// A concurrent signup can slip past the FindByEmail pre-check; the
		// unique index still reports it as a duplicate.
		return nil, utils.TranslateDBError(err, utils.ErrEmailAlreadyExists)
	}

	token, err := utils.CreateToken(user.ID, user.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		User:  response_models.FromUser(user),
		Token: token,
	}, nil
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		User:  response_models.FromUser(user),
		Token: token,
	}, nil
}

func (a *AuthService) GetCurrentUser(ctx context.Context, userId string) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindById(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	resp := response_models.FromUser(user)
	return &resp, nil
}
