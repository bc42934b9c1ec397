// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the shared identity used as the join point between the onboarding flow
// and the admin-facing ServicePartner profile.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // The user's display name or real name.
	Email        string    // Contact email. May be a synthetic address for partners without one.
	Phone        string    // Contact phone number.
	PasswordHash string    // bcrypt hash of the account secret.
	Role         Role      // Account role.
	IsActive     bool      // Whether the account is enabled.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
