package service

import (
	"context"
	"twitterclone/internal/models"
	"twitterclone/internal/repository"
)

type UserService interface {
	GetMe(ctx context.Context, userID string) (*models.User, error)
	UpdateMe(ctx context.Context, userID string, req repository.UpdateProfileRequest) (*models.User, error)
	Follow(ctx context.Context, userID, followedUserID string) error
	Unfollow(ctx context.Context, userID, followedUserID string) error
}

type userService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) UserService {
	return &userService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

func (s *userService) GetMe(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) UpdateMe(ctx context.Context, userID string, req repository.UpdateProfileRequest) (*models.User, error) {
	return s.userRepo.UpdateProfile(ctx, userID, req)
}

func (s *userService) Follow(ctx context.Context, userID, followedUserID string) error {
	if userID == followedUserID {
		return models.NewBadRequestError("Нельзя подписаться на самого себя")
	}

	// цель подписки должна существовать
	if _, err := s.userRepo.GetUserByID(ctx, followedUserID); err != nil {
		return err
	}

	return s.followRepo.Follow(ctx, userID, followedUserID)
}

func (s *userService) Unfollow(ctx context.Context, userID, followedUserID string) error {
	return s.followRepo.Unfollow(ctx, userID, followedUserID)
}
