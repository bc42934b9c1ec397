package entity

import (
	"time"

	"github.com/google/uuid"
)

// PartnerStatus is the onboarding review state of a Partner.
type PartnerStatus string

const (
	PartnerStatusPending  PartnerStatus = "pending"
	PartnerStatusApproved PartnerStatus = "approved"
	PartnerStatusRejected PartnerStatus = "rejected"
)

// IsValid checks if the PartnerStatus is a valid value.
func (s PartnerStatus) IsValid() bool {
	switch s {
	case PartnerStatusPending, PartnerStatusApproved, PartnerStatusRejected:
		return true
	default:
		return false
	}
}

// Partner is the record written by the mobile onboarding flow for a prospective service provider.
// It exists before the provider is visible in the admin console.
type Partner struct {
	ID                uuid.UUID     // The Global Unique Identifier (GUID) for the partner record.
	PhoneNumber       string        // Primary key used to match the shared User identity.
	Email             string        // Optional secondary matching key. Empty when the partner never supplied one.
	FullName          string        // The partner's display name as entered in the app.
	Address           string        // Free-text street address or locality.
	City              string        // City the partner operates in.
	State             string        // State or province.
	Pincode           string        // Postal code.
	ServiceCategories []string      // Ordered list of free-text category names picked during onboarding.
	Documents         []string      // References (URLs or storage paths) to uploaded files.
	Status            PartnerStatus // Onboarding review status.
	CreatedAt         time.Time     // Timestamp of when the partner signed up.
	UpdatedAt         time.Time     // Timestamp of the last self-service edit.
}

// IsApproved reports whether onboarding review accepted the partner.
func (p *Partner) IsApproved() bool {
	return p.Status == PartnerStatusApproved
}
