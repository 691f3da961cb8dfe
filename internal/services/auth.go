package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"engagement-tracker/internal/dto"
	"engagement-tracker/internal/entities"
	"engagement-tracker/internal/repositories"
	apperrors "engagement-tracker/pkg/errors"
	"engagement-tracker/pkg/service"
	"engagement-tracker/pkg/utils"

	"go.uber.org/zap"
)

const revokedSessionKeyFmt = "revoked_session:%s"

type AuthServiceInterface interface {
	Signup(ctx context.Context, payload dto.SignupDTO) (*entities.User, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error)
	GetUserByID(ctx context.Context, userID uint64) (*entities.User, error)
	RevokeToken(ctx context.Context, claims *service.SessionClaims) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
	ResolveRole(ctx context.Context, userID uint64) (string, error)
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, payload dto.SignupDTO) (*entities.User, error) {
	hashedPassword, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, payload.Email, hashedPassword, payload.FullName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("new user signed up", zap.Uint64("userID", user.ID))
	return user, nil
}

// Login returns the same ErrInvalidCredentials for an unknown email and
// for a wrong password, so a caller cannot probe which emails exist.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uint64) (*entities.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// RevokeToken denylists the token's jti for the remainder of its
// lifetime. A bearer token cannot be recalled otherwise.
func (s *AuthService) RevokeToken(ctx context.Context, claims *service.SessionClaims) error {
	if claims.ExpiresAt == nil {
		return nil
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}
	key := fmt.Sprintf(revokedSessionKeyFmt, claims.ID)
	return s.cacheRepo.Set(ctx, key, "revoked", remaining)
}

func (s *AuthService) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	return s.cacheRepo.Exists(ctx, fmt.Sprintf(revokedSessionKeyFmt, jti))
}

// ResolveRole re-reads the user's role on every request, so a promotion
// takes effect on the target's next request without a re-login.
func (s *AuthService) ResolveRole(ctx context.Context, userID uint64) (string, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}
