package models

import "time"

// Place is a catalog entry keyed by an external place identifier
type Place struct {
	PlaceID   string    `json:"place_id" db:"place_id" yaml:"place_id"`
	Name      string    `json:"name" db:"name" yaml:"name"`
	Address   string    `json:"address" db:"address" yaml:"address"`
	Latitude  *float64  `json:"latitude,omitempty" db:"latitude" yaml:"latitude"`
	Longitude *float64  `json:"longitude,omitempty" db:"longitude" yaml:"longitude"`
	Rating    *float64  `json:"rating,omitempty" db:"rating" yaml:"rating"`
	Types     []string  `json:"types" db:"types" yaml:"types"`
	CreatedAt time.Time `json:"created_at" db:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" yaml:"-"`
}
