package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/errors"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// errPartnerFailed is returned when a single-partner run ends with a failed outcome.
var errPartnerFailed = errors.New("partner reconciliation failed")

// runtime is the started dependency graph a run executes against.
type runtime struct {
	reconciler usecase.ReconcileUsecase
	logger     *slog.Logger
	stop       func(context.Context) error
	stopBudget time.Duration
}

type runtimeFactory func(ctx context.Context) (*runtime, error)

type runOptions struct {
	partnerID string
	runID     string
}

func newRootCommand(boot runtimeFactory) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile partner onboarding records with service partner profiles",
		Long: `Runs one reconciliation pass over every partner and prints the summary as JSON.
With --partner only that partner is reconciled and its outcome is printed instead.
The exit status is non-zero when the partner scope could not be read to the end.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, boot, opts)
		},
	}

	cmd.Flags().StringVar(&opts.partnerID, "partner", "", "reconcile only the partner with this id")
	cmd.Flags().StringVar(&opts.runID, "run-id", "", "identifier attached to logs and events (default: random uuid)")

	return cmd
}

func run(cmd *cobra.Command, boot runtimeFactory, opts *runOptions) error {
	var partnerID uuid.UUID
	if opts.partnerID != "" {
		id, err := uuid.Parse(opts.partnerID)
		if err != nil {
			return errors.Wrapf(err, "invalid --partner %q", opts.partnerID)
		}
		partnerID = id
	}

	runID := opts.runID
	if runID == "" {
		runID = uuid.NewString()
	}

	rt, err := boot(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), rt.stopBudget)
		defer cancel()

		if stopErr := rt.stop(stopCtx); stopErr != nil {
			rt.logger.Error("Failed to stop cleanly", slog.Any("error", stopErr))
		}
	}()

	ctx := deliverycontext.WithRun(cmd.Context(), rt.logger, runID)
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	if partnerID != uuid.Nil {
		result, err := rt.reconciler.ReconcilePartner(ctx, partnerID)
		if err != nil {
			return err
		}
		if err := encoder.Encode(result); err != nil {
			return errors.WithStack(err)
		}
		if result.Outcome == usecase.OutcomeFailed {
			return errPartnerFailed
		}

		return nil
	}

	summary, runErr := rt.reconciler.ReconcileAll(ctx)
	if summary != nil {
		if err := encoder.Encode(summary); err != nil {
			return errors.WithStack(err)
		}
	}

	return runErr
}
