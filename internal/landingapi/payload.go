package landingapi

// BookingStatusPending is the status new bookings are created with.
const BookingStatusPending = "Pending"

type CabinPayload struct {
	CabinID    int64 `json:"cabin_id"`
	TotalPax   int   `json:"total_pax"`
	TotalPrice int64 `json:"total_price"`
}

type AdditionalFeePayload struct {
	AdditionalFeeID int64 `json:"additional_fee_id"`
	TotalPrice      int64 `json:"total_price"`
}

// BookingPayload is the body of POST /api/landing-page/bookings.
type BookingPayload struct {
	TripID           int64                  `json:"trip_id"`
	TripDurationID   int64                  `json:"trip_duration_id"`
	CustomerName     string                 `json:"customer_name"`
	CustomerEmail    string                 `json:"customer_email"`
	CustomerAddress  string                 `json:"customer_address"`
	CustomerCountry  string                 `json:"customer_country"`
	CustomerPhone    string                 `json:"customer_phone"`
	HotelOccupancyID *int64                 `json:"hotel_occupancy_id"`
	TotalPax         int                    `json:"total_pax"`
	Status           string                 `json:"status"`
	StartDate        string                 `json:"start_date"`
	EndDate          string                 `json:"end_date"`
	TotalPrice       int64                  `json:"total_price"`
	Cabins           []CabinPayload         `json:"cabins"`
	BoatIDs          []int64                `json:"boat_ids"`
	AdditionalFeeIDs []AdditionalFeePayload `json:"additional_fee_ids"`
	IsHotelRequested bool                   `json:"is_hotel_requested"`
}
