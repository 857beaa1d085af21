package logics

import (
	"context"
	"fmt"

	"crayon-server/internal/ai"
	"crayon-server/internal/failures"
	"crayon-server/internal/models"
	"crayon-server/internal/repositories"

	"go.uber.org/zap"
)

// UserService handles profile reads and updates.
type UserService struct {
	userRepo   repositories.UserRepository
	generation ai.Generation
	logger     *zap.Logger
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo repositories.UserRepository, generation ai.Generation, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo:   userRepo,
		generation: generation,
		logger:     logger,
	}
}

// GetUser retrieves a user's profile with follow counts.
func (s *UserService) GetUser(ctx context.Context, userID string) (*models.UserEntity, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, failures.NotFound("User does not exist")
	}
	return s.userEntity(ctx, user)
}

// UpdateUser applies a partial profile update. A supplied image is
// uploaded first and stored by URL.
func (s *UserService) UpdateUser(ctx context.Context, update models.UserUpdate, userID string) (*models.UserEntity, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, failures.NotFound("User does not exist")
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.Country != nil {
		user.Country = *update.Country
	}
	if update.Image != nil && *update.Image != "" {
		uploaded, err := s.generation.UploadImage(ctx, *update.Image)
		if err != nil {
			return nil, failures.Generation("Error uploading image", err)
		}
		user.Image = uploaded
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.userEntity(ctx, user)
}

func (s *UserService) userEntity(ctx context.Context, user *models.User) (*models.UserEntity, error) {
	followers, following, err := s.userRepo.FollowCounts(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load follow counts: %w", err)
	}
	return &models.UserEntity{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Bio:       user.Bio,
		Email:     user.Email,
		Image:     user.Image,
		Country:   user.Country,
		Followers: followers,
		Following: following,
	}, nil
}
