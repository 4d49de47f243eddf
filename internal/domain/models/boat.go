package models

import "tripbooking/internal/domain"

type Boat struct {
	ID     int64         `json:"id"`
	Name   string        `json:"name"`
	Status domain.Status `json:"status"`
	Cabins []Cabin       `json:"cabins"`
}

// ActiveCabins returns the selectable cabins in upstream order.
func (b Boat) ActiveCabins() []Cabin {
	out := make([]Cabin, 0, len(b.Cabins))
	for _, c := range b.Cabins {
		if c.Status.IsActive() {
			out = append(out, c)
		}
	}
	return out
}

// Capacity is the sum of MaxPax over active cabins.
func (b Boat) Capacity() int {
	total := 0
	for _, c := range b.ActiveCabins() {
		total += c.MaxPax
	}
	return total
}

func (b Boat) Cabin(id int64) (Cabin, bool) {
	for _, c := range b.Cabins {
		if c.ID == id {
			return c, true
		}
	}
	return Cabin{}, false
}

type Cabin struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	BedType         string        `json:"bed_type"`
	MinPax          int           `json:"min_pax"`
	MaxPax          int           `json:"max_pax"`
	BasePrice       int64         `json:"base_price"`
	AdditionalPrice int64         `json:"additional_price"`
	Status          domain.Status `json:"status"`
}
