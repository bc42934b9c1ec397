package entity

import "github.com/google/uuid"

// ServiceCategory is an entry of the canonical category catalog.
// Name is matched exactly (case-sensitive) against partner-supplied category names.
type ServiceCategory struct {
	ID   uuid.UUID
	Name string
}
