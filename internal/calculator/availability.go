package calculator

import "tripbooking/internal/domain/models"

// FilterBoatsByCapacity returns the active boats whose active cabins can hold partyPax.
// A party of zero leaves the list unfiltered (apart from inactive boats).
func FilterBoatsByCapacity(boats []models.Boat, partyPax int) []models.Boat {
	out := make([]models.Boat, 0, len(boats))
	for _, b := range boats {
		if !b.Status.IsActive() {
			continue
		}
		if partyPax == 0 || b.Capacity() >= partyPax {
			out = append(out, b)
		}
	}
	return out
}

// BoatQualifies reports whether boatID is still offered for partyPax.
func BoatQualifies(boats []models.Boat, boatID int64, partyPax int) bool {
	for _, b := range FilterBoatsByCapacity(boats, partyPax) {
		if b.ID == boatID {
			return true
		}
	}
	return false
}

// BoatRequirements is a rough sizing hint shown before cabins are allocated by hand.
type BoatRequirements struct {
	BoatsNeeded int `json:"boats_needed"`
	// CabinsNeededEstimate divides by the first active cabin's MaxPax only, so it ignores
	// mixed cabin sizes.
	CabinsNeededEstimate int `json:"cabins_needed_estimate"`
}

// EstimateBoatRequirements sizes boats and cabins for partyPax on boat.
func EstimateBoatRequirements(boat models.Boat, partyPax int) BoatRequirements {
	var req BoatRequirements
	if partyPax <= 0 {
		return req
	}
	req.BoatsNeeded = ceilDiv(partyPax, boat.Capacity())
	if cabins := boat.ActiveCabins(); len(cabins) > 0 {
		req.CabinsNeededEstimate = ceilDiv(partyPax, cabins[0].MaxPax)
	}
	return req
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
