package main

import (
	"context"
	"log/slog"
	"os"

	"servicehub/config"
	"servicehub/internal/delivery"
	"servicehub/internal/delivery/api"
	"servicehub/internal/delivery/api/middleware"
	"servicehub/internal/delivery/api/router/handler"
	"servicehub/internal/infra/auth"
	logs "servicehub/internal/infra/log"
	"servicehub/internal/infra/persistence/postgres"
	"servicehub/internal/infra/pubsub"
	"servicehub/internal/infra/validation"
	"servicehub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		postgres.NewUserRepository,
		postgres.NewPartnerRepository,
		postgres.NewServiceCategoryRepository,
		postgres.NewServicePartnerRepository,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
		auth.NewJWTService,
		validation.NewProfileValidator,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewReconcileService,
		impl.NewPartnerService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
		middleware.NewErrorMiddleware,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewPartnerHandler,
		handler.NewReconcileHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
