package impl

import (
	"io"
	"log/slog"
	"testing"

	"servicehub/config"
	"servicehub/internal/infra/validation"
	"servicehub/internal/usecase"
)

const testEmailDomain = "partners.servicehub.local"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(batchSize int) *config.Config {
	return &config.Config{
		Reconcile: &config.ReconcileConfig{
			BatchSize:            batchSize,
			SyntheticEmailDomain: testEmailDomain,
		},
	}
}

// reconcileScenario wires the real reconciliation service to in-memory repositories.
type reconcileScenario struct {
	service   usecase.ReconcileUsecase
	store     *memoryStore
	publisher *recordingPublisher
}

func newReconcileScenario(t *testing.T, batchSize int) *reconcileScenario {
	t.Helper()

	store := newMemoryStore()
	publisher := &recordingPublisher{}
	svc := NewReconcileService(ReconcileServiceParams{
		PartnerRepo:        &memoryPartnerRepo{store: store},
		UserRepo:           &memoryUserRepo{store: store},
		CategoryRepo:       &memoryCategoryRepo{store: store},
		ServicePartnerRepo: &memoryServicePartnerRepo{store: store},
		Hasher:             plainHasher{},
		Validator:          validation.NewProfileValidator(),
		Publisher:          publisher,
		Config:             newTestConfig(batchSize),
		Logger:             newDiscardLogger(),
	})

	return &reconcileScenario{
		service:   svc,
		store:     store,
		publisher: publisher,
	}
}
