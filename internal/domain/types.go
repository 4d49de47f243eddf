package domain

import "strings"

// Status represents a lightweight state value.
type Status string

// StatusActive is the upstream marker for sellable boats, cabins and hotels.
const StatusActive Status = "Aktif"

// IsActive reports whether s carries the upstream active marker (case-insensitive).
func (s Status) IsActive() bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), string(StatusActive))
}
