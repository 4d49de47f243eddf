package calculator

import "tripbooking/internal/domain/models"

// HotelLine is one booked hotel offer with its computed price.
type HotelLine struct {
	Hotel  models.Hotel `json:"hotel"`
	Rooms  int          `json:"rooms"`
	Pax    int          `json:"pax"`
	Nights int          `json:"nights"`
	Price  int64        `json:"price"`
}

// HotelAllocator books whole rooms of fixed occupancy for the party, tracked per hotel.
type HotelAllocator struct {
	PartyPax int
	Hotels   []models.Hotel

	allocs []models.HotelAllocation
}

// NewHotelAllocator replays existing room counts through Increment; pax are recomputed.
func NewHotelAllocator(hotels []models.Hotel, partyPax int, existing []models.HotelAllocation) *HotelAllocator {
	a := &HotelAllocator{PartyPax: partyPax, Hotels: hotels}
	for _, e := range existing {
		for i := 0; i < e.Rooms; i++ {
			if !a.Increment(e.HotelID) {
				break
			}
		}
	}
	return a
}

func (a *HotelAllocator) hotel(id int64) (models.Hotel, bool) {
	for _, h := range a.Hotels {
		if h.ID == id {
			return h, true
		}
	}
	return models.Hotel{}, false
}

func (a *HotelAllocator) index(hotelID int64) int {
	for i, e := range a.allocs {
		if e.HotelID == hotelID {
			return i
		}
	}
	return -1
}

// Total is the number of pax placed across all hotels.
func (a *HotelAllocator) Total() int {
	total := 0
	for _, e := range a.allocs {
		total += e.Pax
	}
	return total
}

// CanIncrement reports whether one more room of hotelID can be booked.
func (a *HotelAllocator) CanIncrement(hotelID int64) bool {
	h, ok := a.hotel(hotelID)
	if !ok || !h.Status.IsActive() {
		return false
	}
	perRoom := h.Occupancy.Capacity()
	if perRoom == 0 {
		return false
	}
	var current models.HotelAllocation
	if i := a.index(hotelID); i >= 0 {
		current = a.allocs[i]
	}
	remaining := a.PartyPax - (a.Total() - current.Pax)
	if remaining < perRoom {
		return false
	}
	// a room that would hold nobody is not offered
	return remaining-current.Pax > 0
}

// Increment books one more room of hotelID. The room adds a full room's pax, capped to
// the pax not yet placed elsewhere.
func (a *HotelAllocator) Increment(hotelID int64) bool {
	if !a.CanIncrement(hotelID) {
		return false
	}
	h, _ := a.hotel(hotelID)
	perRoom := h.Occupancy.Capacity()
	i := a.index(hotelID)
	if i < 0 {
		a.allocs = append(a.allocs, models.HotelAllocation{HotelID: hotelID})
		i = len(a.allocs) - 1
	}
	remaining := a.PartyPax - (a.Total() - a.allocs[i].Pax)
	a.allocs[i].Rooms++
	a.allocs[i].Pax = min(a.allocs[i].Pax+perRoom, remaining)
	return true
}

// Decrement releases one room (and a full room's pax); the entry is dropped at zero rooms.
func (a *HotelAllocator) Decrement(hotelID int64) bool {
	i := a.index(hotelID)
	if i < 0 {
		return false
	}
	perRoom := 0
	if h, ok := a.hotel(hotelID); ok {
		perRoom = h.Occupancy.Capacity()
	}
	a.allocs[i].Rooms--
	a.allocs[i].Pax = max(a.allocs[i].Pax-perRoom, 0)
	if a.allocs[i].Rooms <= 0 {
		a.allocs = append(a.allocs[:i], a.allocs[i+1:]...)
	}
	return true
}

// Allocations returns a copy of the booked rooms.
func (a *HotelAllocator) Allocations() []models.HotelAllocation {
	out := make([]models.HotelAllocation, len(a.allocs))
	copy(out, a.allocs)
	return out
}

// Lines prices each booked hotel for the given number of nights.
func (a *HotelAllocator) Lines(nights int) []HotelLine {
	out := make([]HotelLine, 0, len(a.allocs))
	for _, e := range a.allocs {
		h, _ := a.hotel(e.HotelID)
		out = append(out, HotelLine{
			Hotel:  h,
			Rooms:  e.Rooms,
			Pax:    e.Pax,
			Nights: nights,
			Price:  h.PricePerNight * int64(e.Rooms) * int64(nights),
		})
	}
	return out
}

// Price is sum(pricePerNight * rooms * nights).
func (a *HotelAllocator) Price(nights int) int64 {
	var total int64
	for _, l := range a.Lines(nights) {
		total += l.Price
	}
	return total
}
