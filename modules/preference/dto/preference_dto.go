package dto

import "surfplan-api/modules/preference/entity"

// UpsertPreferenceRequest creates or replaces the profile for one spot.
type UpsertPreferenceRequest struct {
	MinWaveHeightM  *float64 `json:"min_wave_height_m" validate:"omitempty,gte=0"`
	MaxWaveHeightM  *float64 `json:"max_wave_height_m" validate:"omitempty,gte=0"`
	MinSwellPeriodS *float64 `json:"min_swell_period_s" validate:"omitempty,gte=0"`
	MaxSwellPeriodS *float64 `json:"max_swell_period_s" validate:"omitempty,gte=0"`
	SwellDirections []string `json:"swell_directions"`
	MaxWindSpeedKt  *float64 `json:"max_wind_speed_kt" validate:"omitempty,gte=0"`
	WindDirections  []string `json:"wind_directions"`
	MinTideM        *float64 `json:"min_tide_m"`
	MaxTideM        *float64 `json:"max_tide_m"`
	AlertMinScore   *int     `json:"alert_min_score" validate:"omitempty,gte=0,lte=100"`
}

// SetAvailabilityRequest replaces the whole weekly availability grid.
type SetAvailabilityRequest struct {
	Slots []AvailabilitySlotRequest `json:"slots" validate:"required,dive"`
}

type AvailabilitySlotRequest struct {
	DayOfWeek int `json:"day_of_week" validate:"gte=0,lte=6"`
	HourLocal int `json:"hour_local" validate:"gte=0,lte=23"`
}

type AvailabilityResponse struct {
	Slots []entity.AvailabilitySlot `json:"slots"`
}
