package domain

import "time"

// Experience is a purchasable gift experience. Price is in minor currency
// units. Records are owned by the catalog and read-only for the cart engine.
type Experience struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Price     int64     `json:"price"`
	ImageURL  string    `json:"image_url"`
	Location  string    `json:"location"`
	Duration  string    `json:"duration"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateExperienceInput struct {
	Title    string
	Price    int64
	ImageURL string
	Location string
	Duration string
}
