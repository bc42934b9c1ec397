package usecase

import (
	"context"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdatePartnerProfileInput is a partial edit. Nil fields are left unchanged.
type UpdatePartnerProfileInput struct {
	FullName          *string
	Email             *string
	Address           *string
	City              *string
	State             *string
	Pincode           *string
	ServiceCategories []string // nil keeps the current list, an empty slice clears it
	Documents         []string // nil keeps the current list, an empty slice clears it
}

// PartnerUsecase defines the partner-facing self-service operations.
type PartnerUsecase interface {
	// UpdateProfile applies the edit, persists the partner and triggers an inline reconcile.
	UpdateProfile(ctx context.Context, partnerID uuid.UUID, input *UpdatePartnerProfileInput) (*entity.Partner, error)
}
