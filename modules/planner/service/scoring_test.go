package service

import (
	"math"
	"testing"

	fcentity "surfplan-api/modules/forecast/entity"
	"surfplan-api/modules/planner/entity"
	prefentity "surfplan-api/modules/preference/entity"
)

func f(v float64) *float64 { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDirectionScore(t *testing.T) {
	tests := []struct {
		name    string
		actual  *float64
		allowed []string
		want    float64
	}{
		{"empty set accepts anything", f(123), nil, 1.0},
		{"missing reading is neutral", nil, []string{"NW"}, 0.5},
		{"exact octant center", f(315), []string{"NW"}, 1.0},
		{"within half width", f(300), []string{"NW"}, 1.0},
		{"at half width boundary", f(292.5), []string{"NW"}, 1.0},
		{"beyond full falloff", f(200), []string{"NW"}, 0.0},
		{"nearest of several octants wins", f(95), []string{"N", "E"}, 1.0},
		{"wraps around north", f(350), []string{"N"}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DirectionScore(tt.actual, tt.allowed)
			if !almostEqual(got, tt.want) {
				t.Errorf("DirectionScore(%v, %v) = %v, want %v", tt.actual, tt.allowed, got, tt.want)
			}
		})
	}
}

func TestDirectionScoreCosineRamp(t *testing.T) {
	// Halfway down the ramp: 33.75 degrees from center should score 0.5.
	got := DirectionScore(f(315+33.75), []string{"NW"})
	if !almostEqual(got, 0.5) {
		t.Errorf("ramp midpoint = %v, want 0.5", got)
	}

	// The ramp is monotonic between the shoulder and the edge.
	prev := 1.0
	for d := 23.0; d <= 45.0; d++ {
		s := DirectionScore(f(315+d), []string{"NW"})
		if s > prev {
			t.Fatalf("score increased along the ramp at %v degrees: %v > %v", d, s, prev)
		}
		prev = s
	}
}

func TestBandScore(t *testing.T) {
	tests := []struct {
		name  string
		value *float64
		min   *float64
		max   *float64
		want  float64
	}{
		{"missing value is neutral", nil, f(1), f(2), 0.5},
		{"no bounds accepts anything", f(99), nil, nil, 1.0},
		{"inside band", f(1.5), f(1), f(2), 1.0},
		{"at lower edge", f(1), f(1), f(2), 1.0},
		{"at upper edge", f(2), f(1), f(2), 1.0},
		// band 1..2, pad = 0.25; 0.875 is halfway into the pad
		{"below band inside pad", f(0.875), f(1), f(2), 0.5},
		{"above band inside pad", f(2.125), f(1), f(2), 0.5},
		{"far outside pad", f(3), f(1), f(2), 0.0},
		{"zero width band off value", f(1.1), f(1), f(1), 0.0},
		{"only min satisfied", f(8), f(6), nil, 1.0},
		{"only min below scales linearly", f(3), f(6), nil, 0.5},
		{"only min at zero value", f(0), f(6), nil, 0.0},
		{"only max satisfied", f(4), nil, f(6), 1.0},
		{"only max above mirrors", f(9), nil, f(6), 0.5},
		{"only max at double", f(12), nil, f(6), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BandScore(tt.value, tt.min, tt.max)
			if !almostEqual(got, tt.want) {
				t.Errorf("BandScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindSpeedScore(t *testing.T) {
	tests := []struct {
		name  string
		speed *float64
		max   *float64
		want  float64
	}{
		{"missing reading is neutral", nil, f(12), 0.5},
		{"no limit accepts anything", f(40), nil, 1.0},
		{"under limit", f(8), f(12), 1.0},
		{"at limit", f(12), f(12), 1.0},
		{"halfway to cutoff", f(15), f(12), 0.5},
		{"at one and a half times limit", f(18), f(12), 0.0},
		{"beyond cutoff clamps", f(30), f(12), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WindSpeedScore(tt.speed, tt.max)
			if !almostEqual(got, tt.want) {
				t.Errorf("WindSpeedScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTideScore(t *testing.T) {
	if got := TideScore(f(1.2), nil, nil); !almostEqual(got, 0.75) {
		t.Errorf("no tide opinion = %v, want 0.75", got)
	}
	if got := TideScore(f(1.2), f(1), f(2)); !almostEqual(got, 1.0) {
		t.Errorf("inside tide band = %v, want 1.0", got)
	}
	if got := TideScore(nil, f(1), f(2)); !almostEqual(got, 0.5) {
		t.Errorf("missing tide with bounds = %v, want 0.5", got)
	}
}

func TestScoreHourCompositeClamps(t *testing.T) {
	// Perfect conditions across the board: the weighted sum far exceeds one
	// and must clamp.
	hour := fcentity.ForecastHour{
		WaveHeightM:       f(1.5),
		SwellPeriodS:      f(12),
		SwellDirectionDeg: f(280),
		WindDirectionDeg:  f(90),
		WindSpeedKt:       f(5),
		TideHeightM:       f(1.0),
	}
	pref := &prefentity.SpotPreference{
		MinWaveHeightM:  f(1),
		MaxWaveHeightM:  f(2),
		MinSwellPeriodS: f(10),
		SwellDirections: []string{"W", "NW"},
		MaxWindSpeedKt:  f(12),
		WindDirections:  []string{"E"},
		MinTideM:        f(0.5),
		MaxTideM:        f(1.5),
	}

	s := ScoreHour(hour, pref, entity.DefaultScoreWeights())
	if s.Composite != 1.0 {
		t.Errorf("Composite = %v, want clamped 1.0", s.Composite)
	}
	for name, sub := range map[string]float64{
		"Height": s.Height, "Period": s.Period, "SwellDirection": s.SwellDirection,
		"WindDirection": s.WindDirection, "WindSpeed": s.WindSpeed, "Tide": s.Tide,
	} {
		if sub != 1.0 {
			t.Errorf("%s = %v, want 1.0", name, sub)
		}
	}
}

func TestScoreHourUnconstrainedProfile(t *testing.T) {
	// A profile with no bounds at all: everything scores 1.0 except tide's
	// 0.75 default, and missing readings score neutral.
	hour := fcentity.ForecastHour{WaveHeightM: f(1)}
	pref := &prefentity.SpotPreference{}

	s := ScoreHour(hour, pref, entity.DefaultScoreWeights())
	if s.Height != 1.0 || s.SwellDirection != 1.0 || s.WindDirection != 1.0 {
		t.Errorf("unconstrained sub-scores = %+v, want 1.0s", s)
	}
	if s.WindSpeed != 0.5 {
		// Missing wind reading is neutral.
		t.Errorf("WindSpeed = %v, want 0.5", s.WindSpeed)
	}
	if s.Tide != 0.75 {
		t.Errorf("Tide = %v, want 0.75", s.Tide)
	}
	if s.Period != 0.5 {
		// A missing reading is neutral even without bounds.
		t.Errorf("Period = %v, want 0.5", s.Period)
	}
}

func TestScoreHourNormalizedWeights(t *testing.T) {
	hour := fcentity.ForecastHour{
		WaveHeightM:  f(1.5),
		SwellPeriodS: f(12),
		WindSpeedKt:  f(5),
	}
	pref := &prefentity.SpotPreference{
		MinWaveHeightM: f(1),
		MaxWaveHeightM: f(2),
		MaxWindSpeedKt: f(12),
	}

	w := entity.DefaultScoreWeights().Normalized()
	if !almostEqual(w.Sum(), 1.0) {
		t.Fatalf("normalized weights sum = %v, want 1", w.Sum())
	}

	s := ScoreHour(hour, pref, w)
	// All subs are 1.0 except tide 0.75, so the true weighted mean is
	// 1 - 0.25 * (0.5 / 5.0).
	want := 1 - 0.25*(0.5/5.0)
	if !almostEqual(s.Composite, want) {
		t.Errorf("Composite = %v, want %v", s.Composite, want)
	}
}
