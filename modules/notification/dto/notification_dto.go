package dto

import (
	"time"

	"github.com/google/uuid"
)

type MarkAsReadRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

type CreateNotificationRequest struct {
	UserID      uuid.UUID `json:"user_id"`
	SpotID      uuid.UUID `json:"spot_id"`
	Message     string    `json:"message"`
	WindowStart time.Time `json:"window_start"`
	Score       int       `json:"score"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}
