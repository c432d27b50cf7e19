package service

import (
	"context"
	"sync"
	"time"

	"surfplan-api/core/constants"
	"surfplan-api/core/errors"
	"surfplan-api/core/logger"
	fcentity "surfplan-api/modules/forecast/entity"
	"surfplan-api/modules/planner/dto"
	"surfplan-api/modules/planner/entity"
	prefentity "surfplan-api/modules/preference/entity"

	"github.com/google/uuid"
)

// PreferenceSource and ForecastSource are the upstream capabilities the
// planner consumes; the preference and forecast services satisfy them.
type PreferenceSource interface {
	ListPreferences(ctx context.Context, userID uuid.UUID, region string) ([]prefentity.SpotPreferenceView, error)
	ListAvailability(ctx context.Context, userID uuid.UUID) ([]prefentity.AvailabilitySlot, error)
}

type ForecastSource interface {
	GetSeries(ctx context.Context, spotID uuid.UUID, horizonHours int) ([]fcentity.ForecastHour, error)
}

// PlannerServiceInterface defines the service contract
type PlannerServiceInterface interface {
	PlanSessions(ctx context.Context, userID uuid.UUID, req *dto.PlanSessionsRequest) (*dto.PlanSessionsResponse, *errors.AppError)
	BriefSessions(ctx context.Context, userID uuid.UUID, req *dto.BriefRequest) (*dto.BriefResponse, *errors.AppError)
}

type PlannerService struct {
	prefs     PreferenceSource
	forecasts ForecastSource
	briefer   Briefer
	weights   entity.ScoreWeights
}

func NewPlannerService(prefs PreferenceSource, forecasts ForecastSource, briefer Briefer) *PlannerService {
	return &PlannerService{
		prefs:     prefs,
		forecasts: forecasts,
		briefer:   briefer,
		weights:   entity.DefaultScoreWeights(),
	}
}

// PlanSessions scores every spot the user has a preference for over the
// requested horizon and returns the pooled, ranked session windows. Spots
// whose forecast cannot be fetched are skipped rather than failing the batch.
func (s *PlannerService) PlanSessions(ctx context.Context, userID uuid.UUID, req *dto.PlanSessionsRequest) (*dto.PlanSessionsResponse, *errors.AppError) {
	days := req.Days
	if days == 0 {
		days = constants.MaxWindowDays
	}
	if days < constants.MinWindowDays || days > constants.MaxWindowDays {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "days must be between 1 and 7", nil)
	}
	mapper, err := NewCalendarMapper(req.Timezone)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown timezone identifier", err)
	}

	prefs, err := s.prefs.ListPreferences(ctx, userID, req.Region)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load preferences", err)
	}

	resp := &dto.PlanSessionsResponse{
		GeneratedAt: time.Now().UTC(),
		Timezone:    req.Timezone,
		Windows:     []entity.SessionWindow{},
	}
	if len(prefs) == 0 {
		return resp, nil
	}

	slots, err := s.prefs.ListAvailability(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load availability", err)
	}
	avail := make(map[int]bool, len(slots))
	for _, slot := range slots {
		avail[prefentity.SlotKey(slot.DayOfWeek, slot.HourLocal)] = true
	}

	horizonHours := days * 24
	cutoff := resp.GeneratedAt.Add(time.Duration(horizonHours) * time.Hour)
	builder := NewWindowBuilder(mapper, s.weights)

	// Spots only read their own inputs, so the per-spot runs fan out freely.
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		all []entity.SessionWindow
	)
	for i := range prefs {
		pref := prefs[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			hours, err := s.forecasts.GetSeries(ctx, pref.SpotID, horizonHours)
			if err != nil {
				logger.Warn("PlannerService:PlanSessions skipping spot", "spot_id", pref.SpotID.String(), "error", err)
				return
			}
			windows := builder.Build(hours, &pref, avail, cutoff)
			mu.Lock()
			all = append(all, windows...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	RankWindows(all)
	if all != nil {
		resp.Windows = all
	}
	return resp, nil
}

// BriefSessions plans as PlanSessions does, then asks the briefer to write a
// short natural-language summary of the top windows.
func (s *PlannerService) BriefSessions(ctx context.Context, userID uuid.UUID, req *dto.BriefRequest) (*dto.BriefResponse, *errors.AppError) {
	if s.briefer == nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "briefing is not configured", nil)
	}

	planReq := &dto.PlanSessionsRequest{Region: req.Region, Days: req.Days, Timezone: req.Timezone}
	plan, appErr := s.PlanSessions(ctx, userID, planReq)
	if appErr != nil {
		return nil, appErr
	}

	limit := req.MaxWindows
	if limit <= 0 {
		limit = 3
	}
	top := plan.Windows
	if len(top) > limit {
		top = top[:limit]
	}

	brief, err := s.briefer.Brief(ctx, req.Timezone, top)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate briefing", err)
	}

	return &dto.BriefResponse{
		GeneratedAt: plan.GeneratedAt,
		Brief:       brief,
		Windows:     top,
	}, nil
}
