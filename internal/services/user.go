package services

import (
	"context"

	"engagement-tracker/internal/authz"
	"engagement-tracker/internal/entities"
	"engagement-tracker/internal/repositories"

	"go.uber.org/zap"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, subject authz.Subject) ([]entities.User, error)
	PromoteUser(ctx context.Context, subject authz.Subject, targetID uint64) (*entities.User, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, subject authz.Subject) ([]entities.User, error) {
	if err := authz.CanPromote(subject); err != nil {
		return nil, err
	}
	return s.userRepo.GetUsers(ctx)
}

// PromoteUser sets the target's role to admin. Promoting an admin again is
// a no-op success.
func (s *UserService) PromoteUser(ctx context.Context, subject authz.Subject, targetID uint64) (*entities.User, error) {
	if err := authz.CanPromote(subject); err != nil {
		return nil, err
	}

	user, err := s.userRepo.PromoteToAdmin(ctx, targetID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user promoted to admin",
		zap.Uint64("targetID", targetID),
		zap.Uint64("promotedBy", subject.UserID),
	)
	return user, nil
}
