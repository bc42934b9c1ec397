package handler

import (
	"log/slog"
	"net/http"

	"servicehub/internal/delivery/api/response"
	deliverycontext "servicehub/internal/delivery/context"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/errors"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReconcileHandlerParams holds dependencies for ReconcileHandler, injected by Fx.
type ReconcileHandlerParams struct {
	fx.In

	ReconcileUC usecase.ReconcileUsecase
	Logger      *slog.Logger
}

// ReconcileHandler exposes reconciliation runs to admin operators.
type ReconcileHandler struct {
	reconcileUC usecase.ReconcileUsecase
	logger      *slog.Logger
}

// NewReconcileHandler is the constructor for ReconcileHandler
func NewReconcileHandler(params ReconcileHandlerParams) *ReconcileHandler {
	return &ReconcileHandler{
		reconcileUC: params.ReconcileUC,
		logger:      params.Logger,
	}
}

// RunAll runs a batch pass and returns its summary. When the partner scope could not be
// read to the end, the partial summary is returned with the error status.
func (h *ReconcileHandler) RunAll(c echo.Context) error {
	ctx := c.Request().Context()

	summary, err := h.reconcileUC.ReconcileAll(ctx)
	if err == nil {
		return response.Success(c, http.StatusOK, summary)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).ErrorContext(ctx, "Reconciliation run stopped early",
		slog.Any("error", err),
		slog.Int("processed", processedCount(summary)),
	)

	if summary == nil {
		return response.HandleAppError(c, err)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Partial(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), summary)
	}

	return response.Partial(c, http.StatusServiceUnavailable, "RECONCILIATION_INTERRUPTED", "Reconciliation run was interrupted", summary)
}

// RunPartner reconciles one partner, addressed by the :id path parameter.
func (h *ReconcileHandler) RunPartner(c echo.Context) error {
	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PARTNER_ID", "Partner ID must be a UUID")
	}

	result, err := h.reconcileUC.ReconcilePartner(c.Request().Context(), partnerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func processedCount(summary *usecase.Summary) int {
	if summary == nil {
		return 0
	}

	return summary.Total
}
