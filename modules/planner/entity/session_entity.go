package entity

import (
	"time"

	fcentity "surfplan-api/modules/forecast/entity"

	"github.com/google/uuid"
)

// ScoreWeights sets each sub-score's contribution to the composite. The
// composite is a saturating weighted sum clamped into [0, 1]; call Normalized
// to get weights that sum to one instead.
type ScoreWeights struct {
	Height         float64 `json:"height"`
	Period         float64 `json:"period"`
	SwellDirection float64 `json:"swell_direction"`
	WindDirection  float64 `json:"wind_direction"`
	WindSpeed      float64 `json:"wind_speed"`
	Tide           float64 `json:"tide"`
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Height:         1.0,
		Period:         0.8,
		SwellDirection: 0.7,
		WindDirection:  1.0,
		WindSpeed:      1.0,
		Tide:           0.5,
	}
}

func (w ScoreWeights) Sum() float64 {
	return w.Height + w.Period + w.SwellDirection + w.WindDirection + w.WindSpeed + w.Tide
}

// Normalized scales the weights so they sum to one, making the composite a
// true weighted mean that cannot saturate.
func (w ScoreWeights) Normalized() ScoreWeights {
	total := w.Sum()
	if total <= 0 {
		return w
	}
	return ScoreWeights{
		Height:         w.Height / total,
		Period:         w.Period / total,
		SwellDirection: w.SwellDirection / total,
		WindDirection:  w.WindDirection / total,
		WindSpeed:      w.WindSpeed / total,
		Tide:           w.Tide / total,
	}
}

// HourScores holds the six sub-scores and the composite, all in [0, 1].
type HourScores struct {
	Height         float64 `json:"height"`
	Period         float64 `json:"period"`
	SwellDirection float64 `json:"swell_direction"`
	WindDirection  float64 `json:"wind_direction"`
	WindSpeed      float64 `json:"wind_speed"`
	Tide           float64 `json:"tide"`
	Composite      float64 `json:"composite"`
}

// ScoredHour pairs one forecast hour with its scores.
type ScoredHour struct {
	Time       time.Time             `json:"time"`
	Conditions fcentity.ForecastHour `json:"conditions"`
	Scores     HourScores            `json:"scores"`
}

// SessionWindow is a recommended surf session of one or two consecutive
// hours at a single spot. Score is the mean composite of its hours on a
// 0 to 100 scale; Scores is the opening hour's breakdown.
type SessionWindow struct {
	SpotID     uuid.UUID    `json:"spot_id"`
	SpotName   string       `json:"spot_name"`
	SpotRegion string       `json:"spot_region"`
	StartTime  time.Time    `json:"start_time"`
	EndTime    time.Time    `json:"end_time"`
	Score      int          `json:"score"`
	Scores     HourScores   `json:"scores"`
	BestHour   time.Time    `json:"best_hour"`
	Hours      []ScoredHour `json:"hours"`
}
