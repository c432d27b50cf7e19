package dto

import (
	"time"

	"surfplan-api/modules/planner/entity"
)

// PlanSessionsRequest carries the planning query. Days is the look-ahead
// horizon in days; Timezone is the IANA zone the availability grid is read in.
type PlanSessionsRequest struct {
	Region   string `query:"region" json:"region"`
	Days     int    `query:"days" json:"days" validate:"omitempty,min=1,max=7"`
	Timezone string `query:"timezone" json:"timezone" validate:"required"`
}

type PlanSessionsResponse struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Timezone    string                 `json:"timezone"`
	Windows     []entity.SessionWindow `json:"windows"`
}

// BriefRequest asks for a natural-language summary of the top-ranked windows.
type BriefRequest struct {
	Region     string `json:"region"`
	Days       int    `json:"days" validate:"omitempty,min=1,max=7"`
	Timezone   string `json:"timezone" validate:"required"`
	MaxWindows int    `json:"max_windows" validate:"omitempty,min=1,max=10"`
}

type BriefResponse struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Brief       string                 `json:"brief"`
	Windows     []entity.SessionWindow `json:"windows"`
}
