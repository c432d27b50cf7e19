package service

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "surfplan-api/core/errors"
	fcentity "surfplan-api/modules/forecast/entity"
	"surfplan-api/modules/planner/dto"
	"surfplan-api/modules/planner/entity"
	prefentity "surfplan-api/modules/preference/entity"

	"github.com/google/uuid"
)

type stubPreferenceSource struct {
	prefs   []prefentity.SpotPreferenceView
	slots   []prefentity.AvailabilitySlot
	prefErr error
}

func (s *stubPreferenceSource) ListPreferences(_ context.Context, _ uuid.UUID, region string) ([]prefentity.SpotPreferenceView, error) {
	if s.prefErr != nil {
		return nil, s.prefErr
	}
	if region == "" {
		return s.prefs, nil
	}
	var out []prefentity.SpotPreferenceView
	for _, p := range s.prefs {
		if p.SpotRegion == region {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPreferenceSource) ListAvailability(_ context.Context, _ uuid.UUID) ([]prefentity.AvailabilitySlot, error) {
	return s.slots, nil
}

type stubForecastSource struct {
	series map[uuid.UUID][]fcentity.ForecastHour
	errs   map[uuid.UUID]error
}

func (s *stubForecastSource) GetSeries(_ context.Context, spotID uuid.UUID, _ int) ([]fcentity.ForecastHour, error) {
	if err, ok := s.errs[spotID]; ok {
		return nil, err
	}
	return s.series[spotID], nil
}

func goodSeries(start time.Time, n int) []fcentity.ForecastHour {
	hours := make([]fcentity.ForecastHour, n)
	for i := range hours {
		hours[i] = fcentity.ForecastHour{
			Time:        start.Add(time.Duration(i) * time.Hour),
			WindSpeedKt: f(5),
		}
	}
	return hours
}

func viewFor(spotID uuid.UUID, name, region string) prefentity.SpotPreferenceView {
	return prefentity.SpotPreferenceView{
		SpotPreference: prefentity.SpotPreference{
			ID:             uuid.New(),
			UserID:         uuid.New(),
			SpotID:         spotID,
			MaxWindSpeedKt: f(10),
		},
		SpotName:   name,
		SpotRegion: region,
	}
}

func everyHourSlots() []prefentity.AvailabilitySlot {
	var slots []prefentity.AvailabilitySlot
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			slots = append(slots, prefentity.AvailabilitySlot{DayOfWeek: d, HourLocal: h})
		}
	}
	return slots
}

func TestPlanSessionsValidation(t *testing.T) {
	svc := NewPlannerService(&stubPreferenceSource{}, &stubForecastSource{}, nil)
	userID := uuid.New()

	tests := []struct {
		name string
		req  dto.PlanSessionsRequest
	}{
		{"days too small", dto.PlanSessionsRequest{Days: -1, Timezone: "UTC"}},
		{"days too large", dto.PlanSessionsRequest{Days: 8, Timezone: "UTC"}},
		{"missing timezone", dto.PlanSessionsRequest{Days: 3}},
		{"unknown timezone", dto.PlanSessionsRequest{Days: 3, Timezone: "Atlantis/Lost_City"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.PlanSessions(context.Background(), userID, &tt.req)
			if appErr == nil {
				t.Fatal("expected a validation error")
			}
			if appErr.Code != apperrors.ErrInvalidInput {
				t.Errorf("code = %s, want %s", appErr.Code, apperrors.ErrInvalidInput)
			}
		})
	}
}

func TestPlanSessionsNoPreferences(t *testing.T) {
	svc := NewPlannerService(&stubPreferenceSource{}, &stubForecastSource{}, nil)

	resp, appErr := svc.PlanSessions(context.Background(), uuid.New(), &dto.PlanSessionsRequest{Days: 3, Timezone: "UTC"})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.Windows == nil || len(resp.Windows) != 0 {
		t.Errorf("windows = %v, want empty non-nil slice", resp.Windows)
	}
	if resp.Timezone != "UTC" {
		t.Errorf("timezone = %s, want UTC", resp.Timezone)
	}
}

func TestPlanSessionsSkipsFailedSpots(t *testing.T) {
	goodSpot := uuid.New()
	badSpot := uuid.New()
	start := time.Now().UTC().Truncate(time.Hour).Add(time.Hour)

	prefs := &stubPreferenceSource{
		prefs: []prefentity.SpotPreferenceView{
			viewFor(goodSpot, "Mavericks", "Half Moon Bay"),
			viewFor(badSpot, "Ghost Reef", "Nowhere"),
		},
		slots: everyHourSlots(),
	}
	forecasts := &stubForecastSource{
		series: map[uuid.UUID][]fcentity.ForecastHour{goodSpot: goodSeries(start, 6)},
		errs:   map[uuid.UUID]error{badSpot: errors.New("provider down")},
	}

	svc := NewPlannerService(prefs, forecasts, nil)
	resp, appErr := svc.PlanSessions(context.Background(), uuid.New(), &dto.PlanSessionsRequest{Days: 2, Timezone: "UTC"})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(resp.Windows) == 0 {
		t.Fatal("expected windows from the healthy spot")
	}
	for _, w := range resp.Windows {
		if w.SpotID == badSpot {
			t.Errorf("window emitted for failed spot %s", badSpot)
		}
	}
}

func TestPlanSessionsRanksAcrossSpots(t *testing.T) {
	calmSpot := uuid.New()
	windySpot := uuid.New()
	start := time.Now().UTC().Truncate(time.Hour).Add(time.Hour)

	// A tight profile so the two spots produce clearly different composites:
	// the calm spot nails every constraint, the windy spot blows all of them.
	pickyView := func(spotID uuid.UUID, name, region string) prefentity.SpotPreferenceView {
		v := viewFor(spotID, name, region)
		v.MinWaveHeightM = f(1)
		v.MaxWaveHeightM = f(2)
		v.MinSwellPeriodS = f(10)
		v.SwellDirections = []string{"W"}
		v.WindDirections = []string{"E"}
		v.MinTideM = f(0.5)
		v.MaxTideM = f(1.5)
		return v
	}
	conditions := func(i int, wave, period, swellDir, windDir, wind, tide float64) fcentity.ForecastHour {
		return fcentity.ForecastHour{
			Time:              start.Add(time.Duration(i) * time.Hour),
			WaveHeightM:       f(wave),
			SwellPeriodS:      f(period),
			SwellDirectionDeg: f(swellDir),
			WindDirectionDeg:  f(windDir),
			WindSpeedKt:       f(wind),
			TideHeightM:       f(tide),
		}
	}
	calm := []fcentity.ForecastHour{
		conditions(0, 1.5, 12, 270, 90, 5, 1.0),
		conditions(1, 1.5, 12, 270, 90, 5, 1.0),
	}
	windy := []fcentity.ForecastHour{
		conditions(0, 5, 4, 90, 270, 20, 3),
		conditions(1, 5, 4, 90, 270, 20, 3),
	}

	prefs := &stubPreferenceSource{
		prefs: []prefentity.SpotPreferenceView{
			pickyView(windySpot, "Windy Point", "North"),
			pickyView(calmSpot, "Calm Cove", "South"),
		},
		slots: everyHourSlots(),
	}
	forecasts := &stubForecastSource{
		series: map[uuid.UUID][]fcentity.ForecastHour{calmSpot: calm, windySpot: windy},
	}

	svc := NewPlannerService(prefs, forecasts, nil)
	resp, appErr := svc.PlanSessions(context.Background(), uuid.New(), &dto.PlanSessionsRequest{Days: 1, Timezone: "UTC"})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(resp.Windows) == 0 {
		t.Fatal("expected windows")
	}

	for i := 1; i < len(resp.Windows); i++ {
		prev, cur := resp.Windows[i-1], resp.Windows[i]
		if cur.Score > prev.Score {
			t.Fatalf("windows not sorted by score: %d before %d", prev.Score, cur.Score)
		}
		if cur.Score == prev.Score && cur.StartTime.Before(prev.StartTime) {
			t.Fatalf("tied windows not sorted by start time")
		}
	}
	if resp.Windows[0].SpotID != calmSpot {
		t.Errorf("top window from %s, want the calm spot", resp.Windows[0].SpotName)
	}
}

func TestPlanSessionsRegionFilter(t *testing.T) {
	north := uuid.New()
	south := uuid.New()
	start := time.Now().UTC().Truncate(time.Hour).Add(time.Hour)

	prefs := &stubPreferenceSource{
		prefs: []prefentity.SpotPreferenceView{
			viewFor(north, "North Break", "North"),
			viewFor(south, "South Break", "South"),
		},
		slots: everyHourSlots(),
	}
	forecasts := &stubForecastSource{
		series: map[uuid.UUID][]fcentity.ForecastHour{
			north: goodSeries(start, 3),
			south: goodSeries(start, 3),
		},
	}

	svc := NewPlannerService(prefs, forecasts, nil)
	resp, appErr := svc.PlanSessions(context.Background(), uuid.New(), &dto.PlanSessionsRequest{Days: 1, Timezone: "UTC", Region: "North"})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(resp.Windows) == 0 {
		t.Fatal("expected windows for the north region")
	}
	for _, w := range resp.Windows {
		if w.SpotID != north {
			t.Errorf("window for spot %s leaked through the region filter", w.SpotName)
		}
	}
}

func TestPlanSessionsDefaultsDays(t *testing.T) {
	svc := NewPlannerService(&stubPreferenceSource{}, &stubForecastSource{}, nil)
	resp, appErr := svc.PlanSessions(context.Background(), uuid.New(), &dto.PlanSessionsRequest{Timezone: "UTC"})
	if appErr != nil {
		t.Fatalf("zero days should fall back to the maximum horizon, got %v", appErr)
	}
	if resp == nil {
		t.Fatal("nil response")
	}
}

func TestBriefSessionsNotConfigured(t *testing.T) {
	svc := NewPlannerService(&stubPreferenceSource{}, &stubForecastSource{}, nil)
	_, appErr := svc.BriefSessions(context.Background(), uuid.New(), &dto.BriefRequest{Days: 1, Timezone: "UTC"})
	if appErr == nil {
		t.Fatal("expected an error when no briefer is wired")
	}
}

type stubBriefer struct {
	out    string
	gotTop int
}

func (s *stubBriefer) Brief(_ context.Context, _ string, windows []entity.SessionWindow) (string, error) {
	s.gotTop = len(windows)
	return s.out, nil
}

func TestBriefSessionsLimitsTopWindows(t *testing.T) {
	spot := uuid.New()
	start := time.Now().UTC().Truncate(time.Hour).Add(time.Hour)

	prefs := &stubPreferenceSource{
		prefs: []prefentity.SpotPreferenceView{viewFor(spot, "Long Reef", "Sydney")},
		slots: everyHourSlots(),
	}
	forecasts := &stubForecastSource{
		series: map[uuid.UUID][]fcentity.ForecastHour{spot: goodSeries(start, 12)},
	}
	briefer := &stubBriefer{out: "go surf"}

	svc := NewPlannerService(prefs, forecasts, briefer)
	resp, appErr := svc.BriefSessions(context.Background(), uuid.New(), &dto.BriefRequest{Days: 1, Timezone: "UTC", MaxWindows: 2})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.Brief != "go surf" {
		t.Errorf("brief = %q", resp.Brief)
	}
	if briefer.gotTop != 2 || len(resp.Windows) != 2 {
		t.Errorf("briefer saw %d windows, response has %d, want 2 and 2", briefer.gotTop, len(resp.Windows))
	}
}
