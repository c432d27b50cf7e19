package task

import (
	"context"
	"fmt"
	"time"

	"surfplan-api/core/constants"
	coreEntity "surfplan-api/core/entity"
	"surfplan-api/core/logger"
	fcentity "surfplan-api/modules/forecast/entity"
	"surfplan-api/modules/forecast/service"
	notifentity "surfplan-api/modules/notification/entity"
	notifrepo "surfplan-api/modules/notification/repository"
	plannerentity "surfplan-api/modules/planner/entity"
	plannersvc "surfplan-api/modules/planner/service"
	prefentity "surfplan-api/modules/preference/entity"
	prefrepo "surfplan-api/modules/preference/repository"
	spotentity "surfplan-api/modules/spot/entity"
	spotrepo "surfplan-api/modules/spot/repository"

	"github.com/hibiken/asynq"
)

const TypeForecastRefresh = "forecast:refresh"

func NewForecastRefreshTask() *asynq.Task {
	return asynq.NewTask(TypeForecastRefresh, nil)
}

// RefreshHandler re-fetches the forecast for every active spot that someone
// has a preference for, then raises surf alerts for windows that clear a
// user's alert threshold. Alert hours are read in the spot's timezone since
// the task runs with no request context to supply one.
type RefreshHandler struct {
	spots   spotrepo.SpotRepositoryInterface
	prefs   prefrepo.PreferenceRepositoryInterface
	avail   prefrepo.AvailabilityRepositoryInterface
	notifs  notifrepo.NotificationRepositoryInterface
	service service.ForecastServiceInterface
}

func NewRefreshHandler(
	spots spotrepo.SpotRepositoryInterface,
	prefs prefrepo.PreferenceRepositoryInterface,
	avail prefrepo.AvailabilityRepositoryInterface,
	notifs notifrepo.NotificationRepositoryInterface,
	svc service.ForecastServiceInterface,
) *RefreshHandler {
	return &RefreshHandler{
		spots:   spots,
		prefs:   prefs,
		avail:   avail,
		notifs:  notifs,
		service: svc,
	}
}

func (h *RefreshHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	spots, err := h.spots.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list spots: %w", err)
	}

	refreshed := 0
	for i := range spots {
		spot := &spots[i]
		if !spot.HasCoordinates() {
			continue
		}

		prefs, err := h.prefs.ListBySpot(ctx, spot.ID)
		if err != nil {
			logger.Warn("RefreshHandler:ProcessTask failed to list preferences", "spot_id", spot.ID.String(), "error", err)
			continue
		}
		if len(prefs) == 0 {
			continue
		}

		hours, err := h.service.Refresh(ctx, spot)
		if err != nil {
			logger.Warn("RefreshHandler:ProcessTask refresh failed", "spot_id", spot.ID.String(), "error", err)
			continue
		}
		refreshed++

		h.evaluateAlerts(ctx, spot, prefs, hours)
	}

	logger.Info("Forecast refresh complete", "spots_refreshed", refreshed)
	return nil
}

func (h *RefreshHandler) evaluateAlerts(ctx context.Context, spot *spotentity.Spot, prefs []prefentity.SpotPreferenceView, hours []fcentity.ForecastHour) {
	mapper, err := plannersvc.NewCalendarMapper(spot.Timezone)
	if err != nil {
		logger.Warn("RefreshHandler:evaluateAlerts bad spot timezone", "spot_id", spot.ID.String(), "error", err)
		return
	}

	now := time.Now().UTC()
	cutoff := now.Add(constants.AlertHorizonHours * time.Hour)

	upcoming := make([]fcentity.ForecastHour, 0, len(hours))
	for _, hr := range hours {
		if !hr.Time.Before(now) {
			upcoming = append(upcoming, hr)
		}
	}

	builder := plannersvc.NewWindowBuilder(mapper, plannerentity.DefaultScoreWeights())
	for i := range prefs {
		pref := prefs[i]
		if pref.AlertMinScore == nil {
			continue
		}

		slots, err := h.avail.ListByUser(ctx, pref.UserID)
		if err != nil {
			logger.Warn("RefreshHandler:evaluateAlerts failed to list availability", "user_id", pref.UserID.String(), "error", err)
			continue
		}
		avail := make(map[int]bool, len(slots))
		for _, slot := range slots {
			avail[prefentity.SlotKey(slot.DayOfWeek, slot.HourLocal)] = true
		}

		for _, w := range builder.Build(upcoming, &pref, avail, cutoff) {
			if w.Score < *pref.AlertMinScore {
				continue
			}
			created, err := h.notifs.Create(ctx, &notifentity.Notification{
				UserID:      pref.UserID,
				SpotID:      spot.ID,
				Message:     alertMessage(spot.Name, w.Score, w.StartTime.In(mapper.Location())),
				WindowStart: w.StartTime,
				Score:       w.Score,
				BaseEntity: coreEntity.BaseEntity{
					CreatedAt: now,
					UpdatedAt: now,
				},
			})
			if err != nil {
				logger.Warn("RefreshHandler:evaluateAlerts failed to create alert", "user_id", pref.UserID.String(), "error", err)
				continue
			}
			if created {
				logger.Info("Surf alert raised", "user_id", pref.UserID.String(), "spot", spot.Name, "score", w.Score)
			}
		}
	}
}

func alertMessage(spotName string, score int, start time.Time) string {
	return fmt.Sprintf("%s is looking good: score %d for the %s session", spotName, score, start.Format("Mon Jan 2 15:04"))
}
