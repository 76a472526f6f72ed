package models

import "time"

type Spot struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"         yaml:"name"`
	Tagline      string    `json:"tagline"      yaml:"tagline"`
	Neighborhood *string   `json:"neighborhood" yaml:"neighborhood"`
	City         string    `json:"city"         yaml:"city"`
	Latitude     *float64  `json:"latitude"     yaml:"latitude"`
	Longitude    *float64  `json:"longitude"    yaml:"longitude"`
	CreatedAt    time.Time `json:"-"            yaml:"-"`
}
