package service

import (
	"testing"
	"time"

	fcentity "surfplan-api/modules/forecast/entity"
	"surfplan-api/modules/planner/entity"
	prefentity "surfplan-api/modules/preference/entity"

	"github.com/google/uuid"
)

// windOnlyWeights isolates the wind speed sub-score so each hour's composite
// is directly controlled by its wind reading.
var windOnlyWeights = entity.ScoreWeights{WindSpeed: 1}

func testPref() *prefentity.SpotPreferenceView {
	return &prefentity.SpotPreferenceView{
		SpotPreference: prefentity.SpotPreference{
			ID:             uuid.New(),
			UserID:         uuid.New(),
			SpotID:         uuid.New(),
			MaxWindSpeedKt: f(10),
		},
		SpotName:   "Steamer Lane",
		SpotRegion: "Santa Cruz",
	}
}

// hourSeries builds consecutive UTC hours starting at start with the given
// wind speeds. With MaxWindSpeedKt = 10: 5kt scores 1.0, 12.5kt 0.5, 15kt 0.
func hourSeries(start time.Time, windKts ...float64) []fcentity.ForecastHour {
	hours := make([]fcentity.ForecastHour, len(windKts))
	for i, kt := range windKts {
		v := kt
		hours[i] = fcentity.ForecastHour{
			Time:        start.Add(time.Duration(i) * time.Hour),
			WindSpeedKt: &v,
		}
	}
	return hours
}

func allHoursAvailable() map[int]bool {
	avail := make(map[int]bool, 7*24)
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			avail[prefentity.SlotKey(d, h)] = true
		}
	}
	return avail
}

func utcBuilder(t *testing.T, w entity.ScoreWeights) *WindowBuilder {
	t.Helper()
	mapper, err := NewCalendarMapper("UTC")
	if err != nil {
		t.Fatal(err)
	}
	return NewWindowBuilder(mapper, w)
}

func TestBuildPairsConsecutiveHours(t *testing.T) {
	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	hours := hourSeries(start, 12.5, 5)
	b := utcBuilder(t, windOnlyWeights)

	windows := b.Build(hours, testPref(), allHoursAvailable(), start.Add(48*time.Hour))
	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(windows))
	}

	first := windows[0]
	if len(first.Hours) != 2 {
		t.Fatalf("first window has %d hours, want 2", len(first.Hours))
	}
	if !first.StartTime.Equal(start) || !first.EndTime.Equal(start.Add(2*time.Hour)) {
		t.Errorf("first window spans %v to %v", first.StartTime, first.EndTime)
	}
	// Mean of 0.5 and 1.0 rounded onto the 0-100 scale.
	if first.Score != 75 {
		t.Errorf("first window score = %d, want 75", first.Score)
	}
	if !first.BestHour.Equal(start.Add(time.Hour)) {
		t.Errorf("best hour = %v, want the stronger second hour", first.BestHour)
	}
	// Breakdown snapshot comes from the opening hour.
	if first.Scores.Composite != 0.5 {
		t.Errorf("anchor composite = %v, want 0.5", first.Scores.Composite)
	}

	// The second hour also opens its own one-hour window.
	second := windows[1]
	if len(second.Hours) != 1 || second.Score != 100 {
		t.Errorf("second window = %d hours score %d, want 1 hour score 100", len(second.Hours), second.Score)
	}
}

func TestBuildBestHourTieGoesEarlier(t *testing.T) {
	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	hours := hourSeries(start, 5, 5)
	b := utcBuilder(t, windOnlyWeights)

	windows := b.Build(hours, testPref(), allHoursAvailable(), start.Add(48*time.Hour))
	if len(windows) == 0 {
		t.Fatal("no windows built")
	}
	if !windows[0].BestHour.Equal(start) {
		t.Errorf("best hour = %v, want the earlier hour on a tie", windows[0].BestHour)
	}
}

func TestBuildGapPreventsPairing(t *testing.T) {
	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	hours := []fcentity.ForecastHour{
		{Time: start, WindSpeedKt: f(5)},
		{Time: start.Add(3 * time.Hour), WindSpeedKt: f(5)},
	}
	b := utcBuilder(t, windOnlyWeights)

	windows := b.Build(hours, testPref(), allHoursAvailable(), start.Add(48*time.Hour))
	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(windows))
	}
	for _, w := range windows {
		if len(w.Hours) != 1 {
			t.Errorf("window starting %v has %d hours, want 1", w.StartTime, len(w.Hours))
		}
	}
}

func TestBuildAvailabilityGatesOpeningHourOnly(t *testing.T) {
	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC) // a Tuesday
	hours := hourSeries(start, 5, 5, 5)
	b := utcBuilder(t, windOnlyWeights)

	// Only 08:00 Tuesday is available; 09:00 still rides along as a pair,
	// but cannot open a window of its own.
	avail := map[int]bool{prefentity.SlotKey(2, 8): true}

	windows := b.Build(hours, testPref(), avail, start.Add(48*time.Hour))
	if len(windows) != 1 {
		t.Fatalf("got %d windows, want 1", len(windows))
	}
	if len(windows[0].Hours) != 2 {
		t.Errorf("window has %d hours, want 2", len(windows[0].Hours))
	}
}

func TestBuildStopsAtCutoff(t *testing.T) {
	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	hours := hourSeries(start, 5, 5, 5, 5)
	b := utcBuilder(t, windOnlyWeights)

	cutoff := start.Add(time.Hour) // only the first two samples qualify
	windows := b.Build(hours, testPref(), allHoursAvailable(), cutoff)
	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(windows))
	}
	for _, w := range windows {
		if w.StartTime.After(cutoff) {
			t.Errorf("window starts %v after cutoff %v", w.StartTime, cutoff)
		}
	}
}

func TestBuildEmptyOnNoAvailability(t *testing.T) {
	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	hours := hourSeries(start, 5, 5)
	b := utcBuilder(t, windOnlyWeights)

	windows := b.Build(hours, testPref(), map[int]bool{}, start.Add(48*time.Hour))
	if len(windows) != 0 {
		t.Errorf("got %d windows, want 0", len(windows))
	}
}

func TestIsLocalSuccessor(t *testing.T) {
	tests := []struct {
		name                   string
		dow, hr, nextDow, nextHr int
		want                   bool
	}{
		{"same day next hour", 2, 8, 2, 9, true},
		{"same hour", 2, 8, 2, 8, false},
		{"two hours ahead", 2, 8, 2, 10, false},
		{"midnight rollover", 2, 23, 3, 0, true},
		{"saturday to sunday rollover", 6, 23, 0, 0, true},
		{"rollover to wrong day", 2, 23, 4, 0, false},
		{"dst repeated local hour", 0, 1, 0, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isLocalSuccessor(tt.dow, tt.hr, tt.nextDow, tt.nextHr)
			if got != tt.want {
				t.Errorf("isLocalSuccessor(%d,%d,%d,%d) = %v, want %v",
					tt.dow, tt.hr, tt.nextDow, tt.nextHr, got, tt.want)
			}
		})
	}
}
