package repository

import (
	"context"

	"servicehub/internal/domain/entity"
	"servicehub/internal/errors"

	"github.com/google/uuid"
)

// ErrPartnerNotFound is returned when a partner record does not exist.
var ErrPartnerNotFound = errors.New("partner not found")

// ListPartnersOptions pages through partners ordered by creation time, newest first.
type ListPartnersOptions struct {
	Offset int
	Limit  int
}

// PartnerRepository defines persistence operations for onboarding partner records.
// The reconciliation engine only reads through it; the partner profile flow writes.
type PartnerRepository interface {
	// FindByID retrieves a single partner by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error)

	// List returns one page of partners ordered by CreatedAt descending.
	// An empty result marks the end of the scope.
	List(ctx context.Context, opts ListPartnersOptions) ([]*entity.Partner, error)

	// Update persists self-service edits to an existing partner.
	Update(ctx context.Context, partner *entity.Partner) error
}
