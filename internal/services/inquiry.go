package services

import (
	"context"

	"engagement-tracker/internal/authz"
	"engagement-tracker/internal/dto"
	"engagement-tracker/internal/entities"
	"engagement-tracker/internal/repositories"
	apperrors "engagement-tracker/pkg/errors"

	"go.uber.org/zap"
)

type InquiryServiceInterface interface {
	GetInquiries(ctx context.Context, subject authz.Subject, statusFilter string) ([]entities.Inquiry, error)
	CreateInquiry(ctx context.Context, subject authz.Subject, payload dto.CreateInquiryDTO) (*entities.Inquiry, error)
	UpdateInquiry(ctx context.Context, subject authz.Subject, id uint64, payload dto.UpdateInquiryDTO) (*entities.Inquiry, error)
	DeleteInquiry(ctx context.Context, subject authz.Subject, id uint64) error
	GetSoftwareSuggestions(ctx context.Context) ([]string, error)
	AppendAction(ctx context.Context, subject authz.Subject, inquiryID uint64, payload dto.CreateActionDTO) ([]entities.InquiryAction, error)
	GetActions(ctx context.Context, subject authz.Subject, inquiryID uint64) ([]entities.InquiryAction, error)
	ExportInquiries(ctx context.Context, subject authz.Subject) ([]entities.Inquiry, error)
}

type InquiryService struct {
	inquiryRepo repositories.InquiryRepositoryInterface
	logger      *zap.Logger
}

func NewInquiryService(inquiryRepo repositories.InquiryRepositoryInterface, logger *zap.Logger) InquiryServiceInterface {
	return &InquiryService{inquiryRepo: inquiryRepo, logger: logger}
}

func (s *InquiryService) GetInquiries(ctx context.Context, subject authz.Subject, statusFilter string) ([]entities.Inquiry, error) {
	return s.inquiryRepo.GetInquiries(ctx, authz.ReadScope(subject), statusFilter, subject.IsAdmin())
}

func (s *InquiryService) CreateInquiry(ctx context.Context, subject authz.Subject, payload dto.CreateInquiryDTO) (*entities.Inquiry, error) {
	return s.inquiryRepo.CreateInquiry(ctx, subject.UserID, payload)
}

func (s *InquiryService) UpdateInquiry(ctx context.Context, subject authz.Subject, id uint64, payload dto.UpdateInquiryDTO) (*entities.Inquiry, error) {
	inquiry, err := s.inquiryRepo.FindInquiry(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanMutate(subject, inquiry.UserID); err != nil {
		return nil, err
	}

	claimOwnerID := s.claimOwnerIfOrphaned(inquiry.UserID, subject, id)
	return s.inquiryRepo.UpdateInquiry(ctx, id, payload, claimOwnerID)
}

func (s *InquiryService) DeleteInquiry(ctx context.Context, subject authz.Subject, id uint64) error {
	inquiry, err := s.inquiryRepo.FindInquiry(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.CanMutate(subject, inquiry.UserID); err != nil {
		return err
	}
	return s.inquiryRepo.DeleteInquiry(ctx, id)
}

func (s *InquiryService) GetSoftwareSuggestions(ctx context.Context) ([]string, error) {
	return s.inquiryRepo.DistinctSoftware(ctx)
}

// AppendAction enforces the same ownership rule as update and returns the
// full action list in append order.
func (s *InquiryService) AppendAction(ctx context.Context, subject authz.Subject, inquiryID uint64, payload dto.CreateActionDTO) ([]entities.InquiryAction, error) {
	inquiry, err := s.inquiryRepo.FindInquiry(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if err := authz.CanMutate(subject, inquiry.UserID); err != nil {
		return nil, err
	}

	if _, err := s.inquiryRepo.AppendAction(ctx, inquiryID, payload.Type, payload.Note); err != nil {
		return nil, err
	}
	return s.inquiryRepo.GetActions(ctx, inquiryID)
}

func (s *InquiryService) GetActions(ctx context.Context, subject authz.Subject, inquiryID uint64) ([]entities.InquiryAction, error) {
	inquiry, err := s.inquiryRepo.FindInquiry(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if err := authz.CanMutate(subject, inquiry.UserID); err != nil {
		return nil, err
	}
	return s.inquiryRepo.GetActions(ctx, inquiryID)
}

// ExportInquiries feeds the admin XLSX export: the full unscoped set with
// owner identity embedded.
func (s *InquiryService) ExportInquiries(ctx context.Context, subject authz.Subject) ([]entities.Inquiry, error) {
	if !subject.IsAdmin() {
		return nil, apperrors.ErrAdminsOnly
	}
	return s.inquiryRepo.GetInquiries(ctx, nil, "", true)
}

func (s *InquiryService) claimOwnerIfOrphaned(ownerID *uint64, subject authz.Subject, recordID uint64) *uint64 {
	if ownerID != nil {
		return nil
	}
	s.logger.Warn("claiming ownership of orphaned inquiry record",
		zap.Uint64("inquiryID", recordID),
		zap.Uint64("newOwnerID", subject.UserID),
	)
	claim := subject.UserID
	return &claim
}
