// Command reconcile runs one reconciliation pass and prints its report as JSON.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"servicehub/config"
	"servicehub/internal/infra/auth"
	logs "servicehub/internal/infra/log"
	"servicehub/internal/infra/persistence/postgres"
	"servicehub/internal/infra/pubsub"
	"servicehub/internal/infra/validation"
	"servicehub/internal/usecase"
	"servicehub/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(bootRuntime).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// bootRuntime starts the fx graph the reconciler needs. The HTTP delivery is not part of it.
func bootRuntime(ctx context.Context) (*runtime, error) {
	var (
		reconciler usecase.ReconcileUsecase
		logger     *slog.Logger
	)

	app := fx.New(
		fx.Provide(
			func() context.Context { return ctx },
			fx.Annotate(
				func() io.Writer { return os.Stderr },
				fx.ResultTags(`name:"logOutput"`),
			),
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewPartnerRepository,
			postgres.NewServiceCategoryRepository,
			postgres.NewServicePartnerRepository,
			auth.NewBcryptHasher,
			validation.NewProfileValidator,
			impl.NewReconcileService,
		),
		pubsub.Module,
		fx.Populate(&reconciler, &logger),
	)

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		return nil, err
	}

	return &runtime{
		reconciler: reconciler,
		logger:     logger,
		stop:       app.Stop,
		stopBudget: app.StopTimeout(),
	}, nil
}
