package calculator

import "tripbooking/internal/domain/models"

// CabinPrice prices a cabin for pax occupants: the base price covers up to MinPax, each
// extra occupant adds AdditionalPrice.
func CabinPrice(cabin models.Cabin, pax int) int64 {
	if pax <= cabin.MinPax {
		return cabin.BasePrice
	}
	return cabin.BasePrice + cabin.AdditionalPrice*int64(pax-cabin.MinPax)
}

// CabinLine is one allocated cabin with its computed price.
type CabinLine struct {
	Cabin models.Cabin `json:"cabin"`
	Pax   int          `json:"pax"`
	Price int64        `json:"price"`
}

// CabinAllocator assigns party members to cabins of one boat. The sum of allocated pax
// never exceeds PartyPax and every cabin stays within [1, MaxPax] while allocated.
type CabinAllocator struct {
	PartyPax int
	Boat     models.Boat

	allocs []models.CabinAllocation
}

// NewCabinAllocator replays existing allocations one pax at a time, so anything that
// would break the capacity rules is trimmed.
func NewCabinAllocator(boat models.Boat, partyPax int, existing []models.CabinAllocation) *CabinAllocator {
	a := &CabinAllocator{PartyPax: partyPax, Boat: boat}
	for _, e := range existing {
		for i := 0; i < e.Pax; i++ {
			if !a.Increment(e.CabinID) {
				break
			}
		}
	}
	return a
}

func (a *CabinAllocator) index(cabinID int64) int {
	for i, e := range a.allocs {
		if e.CabinID == cabinID {
			return i
		}
	}
	return -1
}

// Pax returns the pax currently assigned to cabinID.
func (a *CabinAllocator) Pax(cabinID int64) int {
	if i := a.index(cabinID); i >= 0 {
		return a.allocs[i].Pax
	}
	return 0
}

// Total is the number of allocated pax across all cabins.
func (a *CabinAllocator) Total() int {
	total := 0
	for _, e := range a.allocs {
		total += e.Pax
	}
	return total
}

// CanIncrement reports whether one more pax fits into cabinID.
func (a *CabinAllocator) CanIncrement(cabinID int64) bool {
	cabin, ok := a.Boat.Cabin(cabinID)
	if !ok || !cabin.Status.IsActive() {
		return false
	}
	return a.Pax(cabinID) < cabin.MaxPax && a.Total() < a.PartyPax
}

// Increment adds one pax to cabinID. It returns false and changes nothing when the cabin
// is full, unknown or inactive, or the whole party is already placed.
func (a *CabinAllocator) Increment(cabinID int64) bool {
	if !a.CanIncrement(cabinID) {
		return false
	}
	if i := a.index(cabinID); i >= 0 {
		a.allocs[i].Pax++
		return true
	}
	a.allocs = append(a.allocs, models.CabinAllocation{CabinID: cabinID, Pax: 1})
	return true
}

// Decrement removes one pax from cabinID and drops the entry when it reaches zero.
func (a *CabinAllocator) Decrement(cabinID int64) bool {
	i := a.index(cabinID)
	if i < 0 {
		return false
	}
	a.allocs[i].Pax--
	if a.allocs[i].Pax <= 0 {
		a.allocs = append(a.allocs[:i], a.allocs[i+1:]...)
	}
	return true
}

// Allocations returns a copy of the current state.
func (a *CabinAllocator) Allocations() []models.CabinAllocation {
	out := make([]models.CabinAllocation, len(a.allocs))
	copy(out, a.allocs)
	return out
}

// Lines prices each allocated cabin.
func (a *CabinAllocator) Lines() []CabinLine {
	out := make([]CabinLine, 0, len(a.allocs))
	for _, e := range a.allocs {
		cabin, _ := a.Boat.Cabin(e.CabinID)
		out = append(out, CabinLine{Cabin: cabin, Pax: e.Pax, Price: CabinPrice(cabin, e.Pax)})
	}
	return out
}

// Price is the sum of cabin prices over allocated cabins.
func (a *CabinAllocator) Price() int64 {
	var total int64
	for _, l := range a.Lines() {
		total += l.Price
	}
	return total
}
