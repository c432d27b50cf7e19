package entity

import "time"

// ForecastHour is one hour of marine conditions at a spot. Every reading is
// nullable: providers return gaps, and a missing value is scored as
// neutral-unknown rather than treated as an error.
type ForecastHour struct {
	Time              time.Time `json:"time"`
	WaveHeightM       *float64  `json:"wave_height_m,omitempty"`
	WindSpeedKt       *float64  `json:"wind_speed_kt,omitempty"`
	WindDirectionDeg  *float64  `json:"wind_direction_deg,omitempty"`
	SwellHeightM      *float64  `json:"swell_height_m,omitempty"`
	SwellDirectionDeg *float64  `json:"swell_direction_deg,omitempty"`
	SwellPeriodS      *float64  `json:"swell_period_s,omitempty"`
	WaterTempC        *float64  `json:"water_temp_c,omitempty"`
	TideHeightM       *float64  `json:"tide_height_m,omitempty"`
}
