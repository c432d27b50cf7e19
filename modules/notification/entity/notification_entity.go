package entity

import (
	"time"

	"surfplan-api/core/entity"

	"github.com/google/uuid"
)

// Notification is a surf alert: a session window at one of the user's
// preferred spots cleared their alert threshold. The (user, spot, window
// start) triple identifies the alert for deduplication across refresh runs.
type Notification struct {
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	SpotID      uuid.UUID `db:"spot_id" json:"spot_id"`
	Message     string    `db:"message" json:"message"`
	WindowStart time.Time `db:"window_start" json:"window_start"`
	Score       int       `db:"score" json:"score"`
	IsRead      bool      `db:"is_read" json:"is_read"`
	entity.BaseEntity
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
