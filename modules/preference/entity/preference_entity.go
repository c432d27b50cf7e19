package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SpotPreference is a user's condition profile for one surf spot. Every bound
// is optional; an empty direction set means "any direction".
type SpotPreference struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	UserID          uuid.UUID      `db:"user_id" json:"user_id"`
	SpotID          uuid.UUID      `db:"spot_id" json:"spot_id"`
	MinWaveHeightM  *float64       `db:"min_wave_height_m" json:"min_wave_height_m,omitempty"`
	MaxWaveHeightM  *float64       `db:"max_wave_height_m" json:"max_wave_height_m,omitempty"`
	MinSwellPeriodS *float64       `db:"min_swell_period_s" json:"min_swell_period_s,omitempty"`
	MaxSwellPeriodS *float64       `db:"max_swell_period_s" json:"max_swell_period_s,omitempty"`
	SwellDirections pq.StringArray `db:"swell_directions" json:"swell_directions"`
	MaxWindSpeedKt  *float64       `db:"max_wind_speed_kt" json:"max_wind_speed_kt,omitempty"`
	WindDirections  pq.StringArray `db:"wind_directions" json:"wind_directions"`
	MinTideM        *float64       `db:"min_tide_m" json:"min_tide_m,omitempty"`
	MaxTideM        *float64       `db:"max_tide_m" json:"max_tide_m,omitempty"`
	AlertMinScore   *int           `db:"alert_min_score" json:"alert_min_score,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// SpotPreferenceView joins the preference with its spot's display fields,
// which the planner needs when emitting session windows.
type SpotPreferenceView struct {
	SpotPreference
	SpotName     string `db:"spot_name" json:"spot_name"`
	SpotRegion   string `db:"spot_region" json:"spot_region"`
	SpotTimezone string `db:"spot_timezone" json:"spot_timezone"`
}

// AvailabilitySlot is one recurring weekly hour the user can surf.
// DayOfWeek follows time.Weekday numbering: 0 = Sunday.
type AvailabilitySlot struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	DayOfWeek int       `db:"day_of_week" json:"day_of_week"`
	HourLocal int       `db:"hour_local" json:"hour_local"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SlotKey folds a (day, hour) pair into a single map key.
func SlotKey(dayOfWeek, hour int) int {
	return dayOfWeek*24 + hour
}
