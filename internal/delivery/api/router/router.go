// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"servicehub/internal/delivery/api/middleware"
	"servicehub/internal/delivery/api/router/handler"
	"servicehub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PartnerHandler   *handler.PartnerHandler
	ReconcileHandler *handler.ReconcileHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	partnerHandler   *handler.PartnerHandler
	reconcileHandler *handler.ReconcileHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		partnerHandler:   params.PartnerHandler,
		reconcileHandler: params.ReconcileHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	// Partner self-service, addressed by the partner id in the token
	partnersGroup := apiV1.Group("/partners/me")
	partnersGroup.Use(r.authMiddleware.RequireRole(entity.RolePartner))
	{
		partnersGroup.PUT("/profile", r.partnerHandler.UpdateProfile)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/reconciliations", r.reconcileHandler.RunAll)
		adminGroup.POST("/reconciliations/partners/:id", r.reconcileHandler.RunPartner)
	}
}
