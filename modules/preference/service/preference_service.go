package service

import (
	"context"
	"fmt"
	"strings"

	"surfplan-api/core/errors"
	"surfplan-api/modules/preference/dto"
	"surfplan-api/modules/preference/entity"
	"surfplan-api/modules/preference/repository"

	"github.com/google/uuid"
)

var validOctants = map[string]bool{
	"N": true, "NE": true, "E": true, "SE": true,
	"S": true, "SW": true, "W": true, "NW": true,
}

// PreferenceServiceInterface defines the service contract
type PreferenceServiceInterface interface {
	Upsert(ctx context.Context, userID, spotID uuid.UUID, req *dto.UpsertPreferenceRequest) (*entity.SpotPreference, *errors.AppError)
	Get(ctx context.Context, userID, spotID uuid.UUID) (*entity.SpotPreference, *errors.AppError)
	Delete(ctx context.Context, userID, spotID uuid.UUID) *errors.AppError
	ListPreferences(ctx context.Context, userID uuid.UUID, region string) ([]entity.SpotPreferenceView, error)
	ListAvailability(ctx context.Context, userID uuid.UUID) ([]entity.AvailabilitySlot, error)
	SetAvailability(ctx context.Context, userID uuid.UUID, req *dto.SetAvailabilityRequest) ([]entity.AvailabilitySlot, *errors.AppError)
}

type PreferenceService struct {
	prefs repository.PreferenceRepositoryInterface
	avail repository.AvailabilityRepositoryInterface
}

func NewPreferenceService(prefs repository.PreferenceRepositoryInterface, avail repository.AvailabilityRepositoryInterface) *PreferenceService {
	return &PreferenceService{prefs: prefs, avail: avail}
}

func (s *PreferenceService) Upsert(ctx context.Context, userID, spotID uuid.UUID, req *dto.UpsertPreferenceRequest) (*entity.SpotPreference, *errors.AppError) {
	if appErr := validateBounds("wave height", req.MinWaveHeightM, req.MaxWaveHeightM); appErr != nil {
		return nil, appErr
	}
	if appErr := validateBounds("swell period", req.MinSwellPeriodS, req.MaxSwellPeriodS); appErr != nil {
		return nil, appErr
	}
	if appErr := validateBounds("tide", req.MinTideM, req.MaxTideM); appErr != nil {
		return nil, appErr
	}

	swellDirs, appErr := normalizeOctants(req.SwellDirections)
	if appErr != nil {
		return nil, appErr
	}
	windDirs, appErr := normalizeOctants(req.WindDirections)
	if appErr != nil {
		return nil, appErr
	}

	created, err := s.prefs.Upsert(ctx, &entity.SpotPreference{
		UserID:          userID,
		SpotID:          spotID,
		MinWaveHeightM:  req.MinWaveHeightM,
		MaxWaveHeightM:  req.MaxWaveHeightM,
		MinSwellPeriodS: req.MinSwellPeriodS,
		MaxSwellPeriodS: req.MaxSwellPeriodS,
		SwellDirections: swellDirs,
		MaxWindSpeedKt:  req.MaxWindSpeedKt,
		WindDirections:  windDirs,
		MinTideM:        req.MinTideM,
		MaxTideM:        req.MaxTideM,
		AlertMinScore:   req.AlertMinScore,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save preference", err)
	}
	return created, nil
}

func (s *PreferenceService) Get(ctx context.Context, userID, spotID uuid.UUID) (*entity.SpotPreference, *errors.AppError) {
	pref, err := s.prefs.GetByUserAndSpot(ctx, userID, spotID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get preference", err)
	}
	if pref == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "no preference saved for this spot", nil)
	}
	return pref, nil
}

func (s *PreferenceService) Delete(ctx context.Context, userID, spotID uuid.UUID) *errors.AppError {
	if err := s.prefs.DeleteByUserAndSpot(ctx, userID, spotID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete preference", err)
	}
	return nil
}

// ListPreferences returns the user's profiles joined with spot display fields,
// optionally narrowed to one region.
func (s *PreferenceService) ListPreferences(ctx context.Context, userID uuid.UUID, region string) ([]entity.SpotPreferenceView, error) {
	return s.prefs.ListByUser(ctx, userID, region)
}

func (s *PreferenceService) ListAvailability(ctx context.Context, userID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	return s.avail.ListByUser(ctx, userID)
}

func (s *PreferenceService) SetAvailability(ctx context.Context, userID uuid.UUID, req *dto.SetAvailabilityRequest) ([]entity.AvailabilitySlot, *errors.AppError) {
	seen := map[int]bool{}
	slots := make([]entity.AvailabilitySlot, 0, len(req.Slots))
	for _, s := range req.Slots {
		key := entity.SlotKey(s.DayOfWeek, s.HourLocal)
		if seen[key] {
			continue
		}
		seen[key] = true
		slots = append(slots, entity.AvailabilitySlot{DayOfWeek: s.DayOfWeek, HourLocal: s.HourLocal})
	}

	saved, err := s.avail.ReplaceForUser(ctx, userID, slots)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save availability", err)
	}
	if saved == nil {
		saved = []entity.AvailabilitySlot{}
	}
	return saved, nil
}

func validateBounds(name string, min, max *float64) *errors.AppError {
	if min != nil && max != nil && *min > *max {
		return errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("min %s must not exceed max %s", name, name), nil)
	}
	return nil
}

func normalizeOctants(dirs []string) ([]string, *errors.AppError) {
	out := make([]string, 0, len(dirs))
	seen := map[string]bool{}
	for _, d := range dirs {
		octant := strings.ToUpper(strings.TrimSpace(d))
		if !validOctants[octant] {
			return nil, errors.NewAppError(errors.ErrInvalidInput,
				fmt.Sprintf("unknown compass octant %q", d), nil)
		}
		if seen[octant] {
			continue
		}
		seen[octant] = true
		out = append(out, octant)
	}
	return out, nil
}
