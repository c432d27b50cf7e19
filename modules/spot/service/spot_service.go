package service

import (
	"context"
	"strings"
	"time"

	"surfplan-api/core/errors"
	"surfplan-api/core/logger"
	"surfplan-api/core/utils"
	"surfplan-api/modules/spot/dto"
	"surfplan-api/modules/spot/entity"
	"surfplan-api/modules/spot/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// SpotServiceInterface defines the service contract
type SpotServiceInterface interface {
	List(ctx context.Context, region string) ([]entity.Spot, *errors.AppError)
	Get(ctx context.Context, id uuid.UUID) (*entity.Spot, *errors.AppError)
	Create(ctx context.Context, req *dto.CreateSpotRequest) (*entity.Spot, *errors.AppError)
}

type SpotService struct {
	repo repository.SpotRepositoryInterface
}

func NewSpotService(repo repository.SpotRepositoryInterface) *SpotService {
	return &SpotService{repo: repo}
}

func (s *SpotService) List(ctx context.Context, region string) ([]entity.Spot, *errors.AppError) {
	spots, err := s.repo.List(ctx, region)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list spots", err)
	}
	if spots == nil {
		spots = []entity.Spot{}
	}
	return spots, nil
}

func (s *SpotService) Get(ctx context.Context, id uuid.UUID) (*entity.Spot, *errors.AppError) {
	spot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get spot", err)
	}
	if spot == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "spot not found", nil)
	}
	return spot, nil
}

func (s *SpotService) Create(ctx context.Context, req *dto.CreateSpotRequest) (*entity.Spot, *errors.AppError) {
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown timezone identifier", err)
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "latitude and longitude must be provided together", nil)
	}

	spotSlug, appErr := s.uniqueSlug(ctx, req.Name)
	if appErr != nil {
		return nil, appErr
	}

	created, err := s.repo.Create(ctx, &entity.Spot{
		Name:      req.Name,
		Slug:      spotSlug,
		Region:    req.Region,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timezone:  req.Timezone,
		Active:    true,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create spot", err)
	}

	logger.Info("SpotService:Create", "spot_id", created.ID.String(), "slug", created.Slug)
	return created, nil
}

// uniqueSlug derives a URL slug from the name, appending a short random
// suffix when the plain slug is taken.
func (s *SpotService) uniqueSlug(ctx context.Context, name string) (string, *errors.AppError) {
	base := slug.Make(name)
	existing, err := s.repo.GetBySlug(ctx, base)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to check slug", err)
	}
	if existing == nil {
		return base, nil
	}
	return base + "-" + strings.ToLower(utils.GenerateID()), nil
}
