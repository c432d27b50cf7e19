package dto

// CreateSpotRequest adds a surf spot to the catalog.
type CreateSpotRequest struct {
	Name      string   `json:"name" validate:"required"`
	Region    string   `json:"region" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Timezone  string   `json:"timezone" validate:"required"`
}
