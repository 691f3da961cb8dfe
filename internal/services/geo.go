package services

import (
	"context"

	"engagement-tracker/internal/entities"
	"engagement-tracker/internal/repositories"

	"go.uber.org/zap"
)

type GeoServiceInterface interface {
	BulkInsertStates(ctx context.Context, records []entities.State) ([]entities.State, error)
	BulkInsertDistricts(ctx context.Context, records []entities.District) ([]entities.District, error)
	BulkInsertPalikas(ctx context.Context, records []entities.Palika) ([]entities.Palika, error)
	GetStates(ctx context.Context) ([]entities.State, error)
	GetDistricts(ctx context.Context, stateID *int64) ([]entities.District, error)
	GetPalikas(ctx context.Context, districtID *int64) ([]entities.Palika, error)
}

type GeoService struct {
	geoRepo repositories.GeoRepositoryInterface
	logger  *zap.Logger
}

func NewGeoService(geoRepo repositories.GeoRepositoryInterface, logger *zap.Logger) GeoServiceInterface {
	return &GeoService{geoRepo: geoRepo, logger: logger}
}

func (s *GeoService) BulkInsertStates(ctx context.Context, records []entities.State) ([]entities.State, error) {
	inserted, err := s.geoRepo.BulkInsertStates(ctx, records)
	if err != nil {
		return nil, err
	}
	s.logger.Info("states bulk inserted", zap.Int("count", len(inserted)))
	return inserted, nil
}

func (s *GeoService) BulkInsertDistricts(ctx context.Context, records []entities.District) ([]entities.District, error) {
	inserted, err := s.geoRepo.BulkInsertDistricts(ctx, records)
	if err != nil {
		return nil, err
	}
	s.logger.Info("districts bulk inserted", zap.Int("count", len(inserted)))
	return inserted, nil
}

func (s *GeoService) BulkInsertPalikas(ctx context.Context, records []entities.Palika) ([]entities.Palika, error) {
	inserted, err := s.geoRepo.BulkInsertPalikas(ctx, records)
	if err != nil {
		return nil, err
	}
	s.logger.Info("palikas bulk inserted", zap.Int("count", len(inserted)))
	return inserted, nil
}

func (s *GeoService) GetStates(ctx context.Context) ([]entities.State, error) {
	return s.geoRepo.GetStates(ctx)
}

func (s *GeoService) GetDistricts(ctx context.Context, stateID *int64) ([]entities.District, error) {
	return s.geoRepo.GetDistricts(ctx, stateID)
}

func (s *GeoService) GetPalikas(ctx context.Context, districtID *int64) ([]entities.Palika, error) {
	return s.geoRepo.GetPalikas(ctx, districtID)
}
