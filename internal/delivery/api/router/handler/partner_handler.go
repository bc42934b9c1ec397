// Package handler contains the echo handlers of the API server.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"servicehub/internal/delivery/api/middleware"
	"servicehub/internal/delivery/api/response"
	"servicehub/internal/domain/entity"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PartnerHandlerParams holds dependencies for PartnerHandler, injected by Fx.
type PartnerHandlerParams struct {
	fx.In

	PartnerUC usecase.PartnerUsecase
	Logger    *slog.Logger
}

// PartnerHandler serves the partner self-service endpoints.
type PartnerHandler struct {
	partnerUC usecase.PartnerUsecase
	logger    *slog.Logger
}

// NewPartnerHandler is the constructor for PartnerHandler
func NewPartnerHandler(params PartnerHandlerParams) *PartnerHandler {
	return &PartnerHandler{
		partnerUC: params.PartnerUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest is a partial profile edit. Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	FullName          *string  `json:"full_name" validate:"omitempty,max=200"`
	Email             *string  `json:"email" validate:"omitempty,email"`
	Address           *string  `json:"address" validate:"omitempty,max=500"`
	City              *string  `json:"city" validate:"omitempty,max=100"`
	State             *string  `json:"state" validate:"omitempty,max=100"`
	Pincode           *string  `json:"pincode" validate:"omitempty,numeric,len=6"`
	ServiceCategories []string `json:"service_categories" validate:"omitempty,dive,required"`
	Documents         []string `json:"documents" validate:"omitempty,dive,required"`
}

// PartnerResponse is the partner record returned to the app.
type PartnerResponse struct {
	ID                uuid.UUID `json:"id"`
	PhoneNumber       string    `json:"phone_number"`
	Email             string    `json:"email,omitempty"`
	FullName          string    `json:"full_name"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	Pincode           string    `json:"pincode"`
	ServiceCategories []string  `json:"service_categories"`
	Documents         []string  `json:"documents"`
	Status            string    `json:"status"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UpdateProfile applies a self-service edit. The response does not depend on the outcome of
// the reconcile that follows the edit.
func (h *PartnerHandler) UpdateProfile(c echo.Context) error {
	partnerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid partner ID in token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	partner, err := h.partnerUC.UpdateProfile(c.Request().Context(), partnerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPartnerResponse(partner))
}

func (r *UpdateProfileRequest) toInput() *usecase.UpdatePartnerProfileInput {
	return &usecase.UpdatePartnerProfileInput{
		FullName:          r.FullName,
		Email:             r.Email,
		Address:           r.Address,
		City:              r.City,
		State:             r.State,
		Pincode:           r.Pincode,
		ServiceCategories: r.ServiceCategories,
		Documents:         r.Documents,
	}
}

func newPartnerResponse(p *entity.Partner) *PartnerResponse {
	resp := &PartnerResponse{
		ID:                p.ID,
		PhoneNumber:       p.PhoneNumber,
		Email:             p.Email,
		FullName:          p.FullName,
		Address:           p.Address,
		City:              p.City,
		State:             p.State,
		Pincode:           p.Pincode,
		ServiceCategories: p.ServiceCategories,
		Documents:         p.Documents,
		Status:            string(p.Status),
		UpdatedAt:         p.UpdatedAt,
	}
	if resp.ServiceCategories == nil {
		resp.ServiceCategories = []string{}
	}
	if resp.Documents == nil {
		resp.Documents = []string{}
	}

	return resp
}
