package usecase

import (
	"context"
	"strings"
	"time"

	"ideanest/internal/domain/entity"
	"ideanest/internal/domain/repository"
	"ideanest/pkg/errors"
	"ideanest/pkg/logger"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
}

func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
	}
}

type SignInInput struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// SignIn records a sign-in from the identity provider. The first sign-in
// creates the user; later ones refresh display name, photo and last_login.
// Users are never deleted and joined_date is set exactly once.
func (uc *AuthUseCase) SignIn(ctx context.Context, input SignInInput) (*entity.User, error) {
	if input.Email == "" || input.UID == "" {
		return nil, errors.BadRequest("Email and UID are required", nil)
	}

	displayName := input.DisplayName
	if displayName == "" {
		displayName = strings.SplitN(input.Email, "@", 2)[0]
	}

	now := time.Now()

	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		existing.DisplayName = displayName
		existing.PhotoURL = input.PhotoURL
		existing.LastLogin = now
		if err := uc.userRepo.Update(ctx, existing); err != nil {
			return nil, errors.Internal("Failed to update user record", err)
		}
		logger.Info("User %s signed in", input.Email)
		return existing, nil
	}

	user := &entity.User{
		UID:         input.UID,
		Email:       input.Email,
		DisplayName: displayName,
		PhotoURL:    input.PhotoURL,
		JoinedDate:  now,
		LastLogin:   now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	logger.Info("New user %s registered", input.Email)
	return user, nil
}

func (uc *AuthUseCase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
