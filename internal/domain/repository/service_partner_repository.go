package repository

import (
	"context"

	"servicehub/internal/domain/entity"
	"servicehub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for service partner persistence.
var (
	// ErrServicePartnerNotFound is returned when no profile is linked to the user.
	ErrServicePartnerNotFound = errors.New("service partner not found")
	// ErrServicePartnerExists is returned when the user already owns a profile.
	ErrServicePartnerExists = errors.New("user already has a service partner profile")
)

// ServicePartnerRepository defines persistence operations for admin-facing partner profiles.
type ServicePartnerRepository interface {
	// FindByUserID retrieves the profile owned by the given user.
	// Returns ErrServicePartnerNotFound if the user has none.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ServicePartner, error)

	// Create persists a new profile and fills in its ID and timestamps.
	// Returns ErrServicePartnerExists if the user already owns one.
	Create(ctx context.Context, servicePartner *entity.ServicePartner) error

	// Update persists a merged profile.
	Update(ctx context.Context, servicePartner *entity.ServicePartner) error
}
