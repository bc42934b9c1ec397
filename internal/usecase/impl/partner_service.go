package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/errors"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type partnerService struct {
	partnerRepo repository.PartnerRepository
	reconciler  usecase.ReconcileUsecase
	logger      *slog.Logger
}

// PartnerServiceParams holds dependencies for PartnerService, injected by Fx.
type PartnerServiceParams struct {
	fx.In

	PartnerRepo repository.PartnerRepository
	Reconciler  usecase.ReconcileUsecase
	Logger      *slog.Logger
}

// NewPartnerService creates a new partner service instance
func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	return &partnerService{
		partnerRepo: params.PartnerRepo,
		reconciler:  params.Reconciler,
		logger:      params.Logger,
	}
}

// UpdateProfile persists the edit first; the inline reconcile that follows cannot fail it.
func (srv *partnerService) UpdateProfile(ctx context.Context, partnerID uuid.UUID, input *usecase.UpdatePartnerProfileInput) (*entity.Partner, error) {
	partner, err := srv.partnerRepo.FindByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		return nil, domainerrors.ErrSourceRecordAccessFailed.WrapMessage(err.Error())
	}

	applyProfileEdit(partner, input)

	if err := srv.partnerRepo.Update(ctx, partner); err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.ErrPartnerUpdateFailed.WrapMessage(err.Error())
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).InfoContext(ctx, "Partner profile updated",
		slog.String("partner_id", partnerID.String()),
	)

	srv.reconciler.ReconcileInline(ctx, partner.ID)

	return partner, nil
}

// applyProfileEdit copies the non-nil fields of input onto partner. Status is never touched.
func applyProfileEdit(partner *entity.Partner, input *usecase.UpdatePartnerProfileInput) {
	if input == nil {
		return
	}

	setTrimmed := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setTrimmed(&partner.FullName, input.FullName)
	setTrimmed(&partner.Email, input.Email)
	setTrimmed(&partner.Address, input.Address)
	setTrimmed(&partner.City, input.City)
	setTrimmed(&partner.State, input.State)
	setTrimmed(&partner.Pincode, input.Pincode)

	if input.ServiceCategories != nil {
		partner.ServiceCategories = slices.Clone(input.ServiceCategories)
	}
	if input.Documents != nil {
		partner.Documents = slices.Clone(input.Documents)
	}
}
