package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"surfplan-api/core/cache"
	"surfplan-api/core/constants"
	"surfplan-api/core/logger"
	"surfplan-api/modules/forecast/entity"
	"surfplan-api/modules/forecast/repository"
	spotentity "surfplan-api/modules/spot/entity"
	spotrepo "surfplan-api/modules/spot/repository"

	"github.com/google/uuid"
)

// Sentinel errors distinguishing the retrieval outcomes the planner and the
// HTTP surface need to tell apart.
var (
	ErrSpotNotFound      = errors.New("forecast: spot not found")
	ErrSpotNoCoordinates = errors.New("forecast: spot has no coordinates")
	ErrNotYetAvailable   = errors.New("forecast: not yet available")
)

// ForecastFetcher is the outbound provider edge.
type ForecastFetcher interface {
	FetchHourly(ctx context.Context, lat, lon float64, days int) ([]entity.ForecastHour, error)
}

// ForecastServiceInterface defines the service contract
type ForecastServiceInterface interface {
	GetSeries(ctx context.Context, spotID uuid.UUID, horizonHours int) ([]entity.ForecastHour, error)
	Refresh(ctx context.Context, spot *spotentity.Spot) ([]entity.ForecastHour, error)
}

type ForecastService struct {
	spots  spotrepo.SpotRepositoryInterface
	cache  *repository.ForecastCache
	client ForecastFetcher
}

func NewForecastService(spots spotrepo.SpotRepositoryInterface, fcCache *repository.ForecastCache, client ForecastFetcher) *ForecastService {
	return &ForecastService{spots: spots, cache: fcCache, client: client}
}

// GetSeries returns the hourly series for a spot, cache-aside: a miss triggers
// an on-demand fetch, and a fetch failure with nothing cached reports the
// series as not yet available.
func (s *ForecastService) GetSeries(ctx context.Context, spotID uuid.UUID, horizonHours int) ([]entity.ForecastHour, error) {
	spot, err := s.spots.GetByID(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if spot == nil {
		return nil, ErrSpotNotFound
	}
	if !spot.HasCoordinates() {
		return nil, ErrSpotNoCoordinates
	}

	series, err := s.cache.Get(ctx, spotID)
	if err == nil {
		return trimToHorizon(series.Hours, horizonHours), nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Warn("ForecastService:GetSeries cache read failed", "spot_id", spotID.String(), "error", err)
	}

	hours, err := s.Refresh(ctx, spot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotYetAvailable, err)
	}
	return trimToHorizon(hours, horizonHours), nil
}

// Refresh force-fetches the provider series and repopulates the cache.
func (s *ForecastService) Refresh(ctx context.Context, spot *spotentity.Spot) ([]entity.ForecastHour, error) {
	if !spot.HasCoordinates() {
		return nil, ErrSpotNoCoordinates
	}

	hours, err := s.client.FetchHourly(ctx, *spot.Latitude, *spot.Longitude, constants.MaxWindowDays)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, spot.ID, hours); err != nil {
		logger.Warn("ForecastService:Refresh cache write failed", "spot_id", spot.ID.String(), "error", err)
	}
	return hours, nil
}

// trimToHorizon drops hours already in the past and hours beyond the horizon.
func trimToHorizon(hours []entity.ForecastHour, horizonHours int) []entity.ForecastHour {
	now := time.Now().UTC()
	cutoff := now.Add(time.Duration(horizonHours) * time.Hour)
	floor := now.Add(-time.Hour)

	out := make([]entity.ForecastHour, 0, len(hours))
	for _, h := range hours {
		if h.Time.Before(floor) || h.Time.After(cutoff) {
			continue
		}
		out = append(out, h)
	}
	return out
}
