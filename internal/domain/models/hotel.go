package models

import "tripbooking/internal/domain"

type Hotel struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Type          string        `json:"type"`
	Occupancy     Occupancy     `json:"occupancy"`
	PricePerNight int64         `json:"price_per_night"`
	Status        domain.Status `json:"status"`
}
