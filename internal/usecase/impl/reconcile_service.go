package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"servicehub/config"
	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/constants"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultReconcileBatchSize = 100

// reconcileService drives identity resolution, category mapping and profile sync over a scope
// of partners. Partners are processed one at a time; a failure stays local to its partner.
type reconcileService struct {
	partnerRepo  repository.PartnerRepository
	resolver     *identityResolver
	mapper       *categoryMapper
	synchronizer *profileSynchronizer
	publisher    service.EventPublisher
	batchSize    int
	logger       *slog.Logger
}

// ReconcileServiceParams holds dependencies for ReconcileService, injected by Fx.
type ReconcileServiceParams struct {
	fx.In

	PartnerRepo        repository.PartnerRepository
	UserRepo           repository.UserRepository
	CategoryRepo       repository.ServiceCategoryRepository
	ServicePartnerRepo repository.ServicePartnerRepository
	Hasher             service.PasswordHasher
	Validator          service.ProfileValidator
	Publisher          service.EventPublisher
	Config             *config.Config
	Logger             *slog.Logger
}

// NewReconcileService wires the reconciliation components together.
func NewReconcileService(params ReconcileServiceParams) usecase.ReconcileUsecase {
	batchSize := defaultReconcileBatchSize
	emailDomain := ""
	if params.Config != nil && params.Config.Reconcile != nil {
		if params.Config.Reconcile.BatchSize > 0 {
			batchSize = params.Config.Reconcile.BatchSize
		}
		emailDomain = params.Config.Reconcile.SyntheticEmailDomain
	}

	return &reconcileService{
		partnerRepo:  params.PartnerRepo,
		resolver:     newIdentityResolver(params.UserRepo, params.Hasher, emailDomain),
		mapper:       newCategoryMapper(params.CategoryRepo, params.Logger),
		synchronizer: newProfileSynchronizer(params.ServicePartnerRepo, params.Validator),
		publisher:    params.Publisher,
		batchSize:    batchSize,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reconcileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReconcileAll pages through every partner, newest first.
func (srv *reconcileService) ReconcileAll(ctx context.Context) (*usecase.Summary, error) {
	summary := &usecase.Summary{
		StartedAt: time.Now(),
		Failures:  []usecase.Failure{},
	}
	srv.log(ctx).InfoContext(ctx, "Reconciliation started", slog.Int("batch_size", srv.batchSize))

	err := srv.walkPartners(ctx, func(partner *entity.Partner) {
		recordResult(summary, srv.reconcile(ctx, partner, constants.ReconcileModeBatch))
	})

	summary.FinishedAt = time.Now()
	summary.DurationMS = summary.FinishedAt.Sub(summary.StartedAt).Milliseconds()

	attrs := []any{
		slog.Int("total", summary.Total),
		slog.Int("created", summary.Created),
		slog.Int("fixed", summary.Fixed),
		slog.Int("already_synced", summary.AlreadySynced),
		slog.Int("failed", summary.Failed),
		slog.Int("users_created", summary.UsersCreated),
		slog.Int64("duration_ms", summary.DurationMS),
	}
	if err != nil {
		srv.log(ctx).ErrorContext(ctx, "Reconciliation aborted", append(attrs, slog.Any("error", err))...)

		return summary, err
	}
	srv.log(ctx).InfoContext(ctx, "Reconciliation finished", attrs...)

	return summary, nil
}

// walkPartners calls visit for each partner until a short page marks the end of the scope.
func (srv *reconcileService) walkPartners(ctx context.Context, visit func(*entity.Partner)) error {
	for offset := 0; ; offset += srv.batchSize {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "reconciliation interrupted")
		}

		page, err := srv.partnerRepo.List(ctx, repository.ListPartnersOptions{Offset: offset, Limit: srv.batchSize})
		if err != nil {
			return newStepError(domainerrors.ErrSourceRecordAccessFailed, errors.Wrapf(err, "failed to list partners at offset %d", offset))
		}

		for _, partner := range page {
			visit(partner)
		}

		if len(page) < srv.batchSize {
			return nil
		}
	}
}

// ReconcilePartner reconciles one partner by id.
func (srv *reconcileService) ReconcilePartner(ctx context.Context, partnerID uuid.UUID) (*usecase.PartnerResult, error) {
	return srv.reconcileByID(ctx, partnerID, constants.ReconcileModeSingle)
}

// ReconcileInline reconciles the partner that just edited its profile. It never fails its caller.
func (srv *reconcileService) ReconcileInline(ctx context.Context, partnerID uuid.UUID) {
	logger := srv.log(ctx).With(slog.String("partner_id", partnerID.String()))

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "Inline reconciliation panicked", slog.Any("panic", r))
		}
	}()

	result, err := srv.reconcileByID(ctx, partnerID, constants.ReconcileModeInline)
	if err != nil {
		logger.WarnContext(ctx, "Inline reconciliation skipped", slog.Any("error", err))

		return
	}

	logger.DebugContext(ctx, "Inline reconciliation finished", slog.String("outcome", string(result.Outcome)))
}

func (srv *reconcileService) reconcileByID(ctx context.Context, partnerID uuid.UUID, mode string) (*usecase.PartnerResult, error) {
	partner, err := srv.partnerRepo.FindByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound.WrapMessage(fmt.Sprintf("partner %s", partnerID))
		}

		return nil, newStepError(domainerrors.ErrSourceRecordAccessFailed, errors.Wrap(err, "failed to read partner"))
	}

	return srv.reconcile(ctx, partner, mode), nil
}

// reconcile runs resolve, map and sync for one partner. Every failure ends up in the result,
// including a panic raised while processing it.
func (srv *reconcileService) reconcile(ctx context.Context, partner *entity.Partner, mode string) (result *usecase.PartnerResult) {
	logger := srv.log(ctx).With(
		slog.String("partner_id", partner.ID.String()),
		slog.String("mode", mode),
	)
	result = &usecase.PartnerResult{
		PartnerID: partner.ID,
		Outcome:   usecase.OutcomeFailed,
	}

	defer func() {
		if r := recover(); r != nil {
			result.Outcome = usecase.OutcomeFailed
			result.Failure = &usecase.Failure{
				PartnerID: partner.ID,
				Phone:     partner.PhoneNumber,
				Kind:      usecase.FailureKindUnclassifiedFailure,
				Message:   fmt.Sprintf("panic: %v", r),
			}
			logger.ErrorContext(ctx, "Partner reconciliation panicked", slog.Any("panic", r))
		}
	}()

	user, userCreated, err := srv.resolver.Resolve(ctx, partner)
	if err != nil {
		result.Failure = newFailure(partner, err)
		logger.WarnContext(ctx, "Partner reconciliation failed", slog.String("kind", string(result.Failure.Kind)), slog.Any("error", err))

		return result
	}
	result.UserID = user.ID
	result.UserCreated = userCreated

	categoryIDs := srv.mapper.Map(ctx, partner.ServiceCategories)

	servicePartner, outcome, err := srv.synchronizer.Sync(ctx, user, partner, categoryIDs)
	if err != nil {
		result.Failure = newFailure(partner, err)
		logger.WarnContext(ctx, "Partner reconciliation failed",
			slog.String("kind", string(result.Failure.Kind)),
			slog.Any("fields", result.Failure.Fields),
			slog.Any("error", err),
		)

		return result
	}
	result.ServicePartnerID = servicePartner.ID
	result.Outcome = outcome

	logger.DebugContext(ctx, "Partner reconciled",
		slog.String("outcome", string(outcome)),
		slog.Bool("user_created", userCreated),
	)

	if outcome == usecase.OutcomeCreated || outcome == usecase.OutcomeFixed {
		srv.publishSynced(ctx, logger, result, servicePartner, mode)
	}

	return result
}

// publishSynced announces the change. A publish failure never changes the outcome.
func (srv *reconcileService) publishSynced(
	ctx context.Context,
	logger *slog.Logger,
	result *usecase.PartnerResult,
	servicePartner *entity.ServicePartner,
	mode string,
) {
	if srv.publisher == nil {
		return
	}

	event := &service.ServicePartnerSyncedEvent{
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		PartnerID:        result.PartnerID.String(),
		UserID:           result.UserID.String(),
		ServicePartnerID: servicePartner.ID.String(),
		Outcome:          string(result.Outcome),
		Status:           string(servicePartner.Status),
		Mode:             mode,
	}
	if err := srv.publisher.PublishServicePartnerSynced(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish service partner synced event", slog.Any("error", err))
	}
}

func newFailure(partner *entity.Partner, err error) *usecase.Failure {
	return &usecase.Failure{
		PartnerID: partner.ID,
		Phone:     partner.PhoneNumber,
		Kind:      classifyFailure(err),
		Message:   err.Error(),
		Fields:    failureFields(err),
	}
}

func recordResult(summary *usecase.Summary, result *usecase.PartnerResult) {
	summary.Total++
	if result.UserCreated {
		summary.UsersCreated++
	}

	switch result.Outcome {
	case usecase.OutcomeCreated:
		summary.Created++
	case usecase.OutcomeFixed:
		summary.Fixed++
	case usecase.OutcomeAlreadySynced:
		summary.AlreadySynced++
	case usecase.OutcomeFailed:
		summary.Failed++
		if result.Failure != nil {
			summary.Failures = append(summary.Failures, *result.Failure)
		}
	}
}
