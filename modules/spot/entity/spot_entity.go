package entity

import (
	"time"

	"github.com/google/uuid"
)

// Spot is a surf location. Latitude/longitude are nullable: a freshly added
// spot may not be geocoded yet, and the forecast service reports that as a
// distinct outcome.
type Spot struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	Region    string    `db:"region" json:"region"`
	Latitude  *float64  `db:"latitude" json:"latitude,omitempty"`
	Longitude *float64  `db:"longitude" json:"longitude,omitempty"`
	Timezone  string    `db:"timezone" json:"timezone"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// HasCoordinates reports whether the spot can be matched to a forecast grid point.
func (s *Spot) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}
