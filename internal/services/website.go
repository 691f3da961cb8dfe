package services

import (
	"context"

	"engagement-tracker/internal/authz"
	"engagement-tracker/internal/dto"
	"engagement-tracker/internal/entities"
	"engagement-tracker/internal/repositories"

	"go.uber.org/zap"
)

type WebsiteServiceInterface interface {
	GetWebsites(ctx context.Context, subject authz.Subject) ([]entities.Website, error)
	CreateWebsite(ctx context.Context, subject authz.Subject, payload dto.CreateWebsiteDTO) (*entities.Website, error)
	UpdateWebsite(ctx context.Context, subject authz.Subject, id uint64, payload dto.UpdateWebsiteDTO) (*entities.Website, error)
	DeleteWebsite(ctx context.Context, subject authz.Subject, id uint64) error
}

type WebsiteService struct {
	websiteRepo repositories.WebsiteRepositoryInterface
	logger      *zap.Logger
}

func NewWebsiteService(websiteRepo repositories.WebsiteRepositoryInterface, logger *zap.Logger) WebsiteServiceInterface {
	return &WebsiteService{websiteRepo: websiteRepo, logger: logger}
}

func (s *WebsiteService) GetWebsites(ctx context.Context, subject authz.Subject) ([]entities.Website, error) {
	return s.websiteRepo.GetWebsites(ctx, authz.ReadScope(subject), subject.IsAdmin())
}

func (s *WebsiteService) CreateWebsite(ctx context.Context, subject authz.Subject, payload dto.CreateWebsiteDTO) (*entities.Website, error) {
	return s.websiteRepo.CreateWebsite(ctx, subject.UserID, payload)
}

func (s *WebsiteService) UpdateWebsite(ctx context.Context, subject authz.Subject, id uint64, payload dto.UpdateWebsiteDTO) (*entities.Website, error) {
	website, err := s.websiteRepo.FindWebsite(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanMutate(subject, website.UserID); err != nil {
		return nil, err
	}

	claimOwnerID := s.claimOwnerIfOrphaned(website.UserID, subject, id)
	return s.websiteRepo.UpdateWebsite(ctx, id, payload, claimOwnerID)
}

func (s *WebsiteService) DeleteWebsite(ctx context.Context, subject authz.Subject, id uint64) error {
	website, err := s.websiteRepo.FindWebsite(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.CanMutate(subject, website.UserID); err != nil {
		return err
	}
	return s.websiteRepo.DeleteWebsite(ctx, id)
}

// claimOwnerIfOrphaned implements the ownership back-fill rule: the first
// mutating request on an ownerless record adopts it instead of failing.
func (s *WebsiteService) claimOwnerIfOrphaned(ownerID *uint64, subject authz.Subject, recordID uint64) *uint64 {
	if ownerID != nil {
		return nil
	}
	s.logger.Warn("claiming ownership of orphaned website record",
		zap.Uint64("websiteID", recordID),
		zap.Uint64("newOwnerID", subject.UserID),
	)
	claim := subject.UserID
	return &claim
}
