package models

import "time"

// DraftStatus tracks the booking draft lifecycle. Submitted drafts are removed from the store.
type DraftStatus string

const (
	DraftOpen       DraftStatus = "open"
	DraftSubmitting DraftStatus = "submitting"
)

// CabinAllocation assigns pax to one cabin of the selected boat.
type CabinAllocation struct {
	CabinID int64 `json:"cabin_id"`
	Pax     int   `json:"pax"`
}

// HotelAllocation books rooms of one hotel offer.
type HotelAllocation struct {
	HotelID int64 `json:"hotel_id"`
	Rooms   int   `json:"rooms"`
	Pax     int   `json:"pax"`
}

// Customer carries the contact fields sent with a booking.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

// BookingDraft is the incrementally built booking. StartDate is YYYY-MM-DD.
type BookingDraft struct {
	ID           string            `json:"id"`
	TripID       int64             `json:"trip_id"`
	DurationID   int64             `json:"duration_id"`
	StartDate    string            `json:"start_date"`
	Pax          int               `json:"pax"`
	Region       Region            `json:"region"`
	BoatID       int64             `json:"boat_id"`
	Cabins       []CabinAllocation `json:"cabins"`
	Hotels       []HotelAllocation `json:"hotels"`
	ChosenFeeIDs []int64           `json:"chosen_fee_ids"`
	Customer     Customer          `json:"customer"`
	Status       DraftStatus       `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// DraftUpdate supports PATCH-style updates via key presence.
type DraftUpdate struct {
	DurationID *int64    `json:"duration_id"`
	StartDate  *string   `json:"start_date"`
	Pax        *int      `json:"pax"`
	Region     *string   `json:"region"`
	BoatID     *int64    `json:"boat_id"`
	Customer   *Customer `json:"customer"`
}

// Submission is the ledger record of a booking accepted by the landing API.
type Submission struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"booking_id"`
	DraftID    string    `json:"draft_id"`
	TripID     int64     `json:"trip_id"`
	TotalPax   int       `json:"total_pax"`
	TotalPrice int64     `json:"total_price"`
	Payload    []byte    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
