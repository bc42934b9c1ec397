package impl

import (
	"context"
	"testing"
	"time"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/service"
	"servicehub/internal/infra/validation"
	mockService "servicehub/internal/mocks/service"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func asha() *entity.Partner {
	return &entity.Partner{
		PhoneNumber:       "+91999",
		Email:             "a@x.com",
		FullName:          "Asha",
		City:              "Pune",
		ServiceCategories: []string{"Plumbing"},
		Documents:         []string{"/d1.pdf"},
		Status:            entity.PartnerStatusPending,
	}
}

func onlyUser(t *testing.T, store *memoryStore, phone string) *entity.User {
	t.Helper()

	users := store.userByPhone(phone)
	require.Len(t, users, 1)

	return users[0]
}

func TestReconcileService_CreatesUserAndServicePartner(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	plumbingID := sc.store.addCategory("Plumbing")
	partner := sc.store.addPartner(asha())

	summary, err := sc.service.ReconcileAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, usecase.Counts{Created: 1, UsersCreated: 1, Total: 1}, summary.Counts)
	assert.Empty(t, summary.Failures)
	assert.False(t, summary.FinishedAt.Before(summary.StartedAt))

	user := onlyUser(t, sc.store, "+91999")
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.PasswordHash)

	sp := sc.store.servicePartnerOf(user.ID)
	require.NotNil(t, sp)
	assert.Equal(t, "Asha", sp.BusinessName)
	assert.Equal(t, entity.PartnerTypeIndividual, sp.PartnerType)
	assert.Equal(t, []uuid.UUID{plumbingID}, sp.Categories)
	assert.Equal(t, []entity.ServiceArea{{City: "Pune", Areas: []string{"Unknown"}, PinCodes: []string{"000000"}}}, sp.ServiceAreas)
	assert.False(t, sp.IsVerified)
	assert.Equal(t, entity.ServicePartnerStatusActive, sp.Status)
	assert.Equal(t, []entity.VerificationDocument{{
		DocumentType: entity.DocumentTypeProfessionalCertificate,
		DocumentURL:  "/d1.pdf",
		Status:       entity.DocumentStatusPending,
	}}, sp.VerificationDocuments)

	require.Len(t, sc.publisher.events, 1)
	event := sc.publisher.events[0]
	assert.Equal(t, partner.ID.String(), event.PartnerID)
	assert.Equal(t, sp.ID.String(), event.ServicePartnerID)
	assert.Equal(t, "created", event.Outcome)
	assert.Equal(t, "batch", event.Mode)
}

func TestReconcileService_ApprovalPropagatesToDocuments(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	plumbingID := sc.store.addCategory("Plumbing")
	partner := sc.store.addPartner(asha())
	ctx := context.Background()

	_, err := sc.service.ReconcileAll(ctx)
	require.NoError(t, err)

	partner.Status = entity.PartnerStatusApproved
	sc.store.addPartner(partner)

	summary, err := sc.service.ReconcileAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.Counts{Fixed: 1, Total: 1}, summary.Counts)

	sp := sc.store.servicePartnerOf(onlyUser(t, sc.store, "+91999").ID)
	require.Len(t, sp.VerificationDocuments, 1)
	assert.Equal(t, entity.DocumentStatusApproved, sp.VerificationDocuments[0].Status)
	assert.Equal(t, "Asha", sp.BusinessName)
	assert.Equal(t, []uuid.UUID{plumbingID}, sp.Categories)
	assert.Equal(t, entity.ServicePartnerStatusActive, sp.Status)
}

func TestReconcileService_SecondRunIsNoOp(t *testing.T) {
	sc := newReconcileScenario(t, 2)
	sc.store.addCategory("Plumbing")
	sc.store.addCategory("Electrical")
	sc.store.addPartner(asha())
	sc.store.addPartner(&entity.Partner{PhoneNumber: "+91 888", ServiceCategories: []string{"Electrical", "Gardening"}, Documents: []string{"/a.pdf", "/a.pdf", " "}, Status: entity.PartnerStatusApproved})
	sc.store.addPartner(&entity.Partner{PhoneNumber: "+91777", FullName: "Ravi", Address: "MG Road", City: "Mumbai", Pincode: "400001", Status: entity.PartnerStatusRejected})
	ctx := context.Background()

	first, err := sc.service.ReconcileAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.Counts{Created: 3, UsersCreated: 3, Total: 3}, first.Counts)
	before := sc.store.snapshotServicePartners()

	second, err := sc.service.ReconcileAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.Counts{AlreadySynced: 3, Total: 3}, second.Counts)
	assert.Equal(t, before, sc.store.snapshotServicePartners())
	assert.Equal(t, 0, sc.store.spUpdates)
	assert.Len(t, sc.publisher.events, 3, "only the first run publishes")
}

func TestReconcileService_PartnersSharingPhoneResolveToOneUser(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	sc.store.addPartner(&entity.Partner{PhoneNumber: "+91555", FullName: "First", Status: entity.PartnerStatusPending})
	sc.store.addPartner(&entity.Partner{PhoneNumber: "+91555", Email: "second@x.com", FullName: "Second", Status: entity.PartnerStatusPending})

	summary, err := sc.service.ReconcileAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.UsersCreated)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Fixed, "the later partner merges into the profile of the shared user")
	user := onlyUser(t, sc.store, "+91555")
	assert.Len(t, sc.store.snapshotServicePartners(), 1)
	assert.NotNil(t, sc.store.servicePartnerOf(user.ID))
}

func TestReconcileService_SyntheticEmailLinksReformattedPhone(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	ctx := context.Background()
	first := sc.store.addPartner(&entity.Partner{PhoneNumber: "+91 999 000", Status: entity.PartnerStatusPending})

	result, err := sc.service.ReconcilePartner(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, result.UserCreated)

	user := onlyUser(t, sc.store, "+91 999 000")
	assert.Equal(t, "91999000@"+testEmailDomain, user.Email)
	assert.Equal(t, "Partner +91 999 000", user.Name)

	second := sc.store.addPartner(&entity.Partner{PhoneNumber: "91999000", Status: entity.PartnerStatusPending})
	result, err = sc.service.ReconcilePartner(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, result.UserCreated)
	assert.Equal(t, user.ID, result.UserID)
}

func TestReconcileService_CategoriesAreExactSubset(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	plumbingID := sc.store.addCategory("Plumbing")
	electricalID := sc.store.addCategory("Electrical")
	sc.store.addCategory("Carpentry")
	partner := sc.store.addPartner(&entity.Partner{
		PhoneNumber:       "+91111",
		ServiceCategories: []string{"Electrical", "plumbing", "Plumbing", "Gardening", "Electrical", "Plumbing "},
		Status:            entity.PartnerStatusPending,
	})

	result, err := sc.service.ReconcilePartner(context.Background(), partner.ID)
	require.NoError(t, err)
	require.Equal(t, usecase.OutcomeCreated, result.Outcome)

	sp := sc.store.servicePartnerOf(result.UserID)
	assert.Equal(t, []uuid.UUID{electricalID, plumbingID}, sp.Categories)
}

func TestReconcileService_StatusForcedActive(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	user := sc.store.addUser(&entity.User{Name: "Meera", Email: "m@x.com", Phone: "+91222", Role: entity.RoleUser, IsActive: true})
	sc.store.putServicePartner(&entity.ServicePartner{
		UserID:       user.ID,
		BusinessName: "Meera",
		PartnerType:  entity.PartnerTypeIndividual,
		ServiceAreas: []entity.ServiceArea{{City: "Delhi", Areas: []string{"Saket"}, PinCodes: []string{"110017"}}},
		Status:       entity.ServicePartnerStatusSuspended,
	})
	partner := sc.store.addPartner(&entity.Partner{PhoneNumber: "+91222", FullName: "Meera", Status: entity.PartnerStatusRejected})

	result, err := sc.service.ReconcilePartner(context.Background(), partner.ID)
	require.NoError(t, err)

	assert.Equal(t, usecase.OutcomeFixed, result.Outcome)
	assert.Equal(t, entity.ServicePartnerStatusActive, sc.store.servicePartnerOf(user.ID).Status)
}

func TestReconcileService_EmptyMappingKeepsCategories(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	existingCategory := uuid.New()
	user := sc.store.addUser(&entity.User{Name: "Kiran", Email: "k@x.com", Phone: "+91333", Role: entity.RoleUser, IsActive: true})
	sc.store.putServicePartner(&entity.ServicePartner{
		UserID:       user.ID,
		BusinessName: "Kiran",
		PartnerType:  entity.PartnerTypeIndividual,
		Categories:   []uuid.UUID{existingCategory},
		ServiceAreas: []entity.ServiceArea{{City: "Delhi", Areas: []string{"Saket"}, PinCodes: []string{"110017"}}},
		Status:       entity.ServicePartnerStatusActive,
	})
	partner := sc.store.addPartner(&entity.Partner{PhoneNumber: "+91333", FullName: "Kiran", ServiceCategories: []string{"Nothing Matches"}, Status: entity.PartnerStatusPending})

	result, err := sc.service.ReconcilePartner(context.Background(), partner.ID)
	require.NoError(t, err)

	assert.Equal(t, usecase.OutcomeAlreadySynced, result.Outcome)
	assert.Equal(t, []uuid.UUID{existingCategory}, sc.store.servicePartnerOf(user.ID).Categories)
}

func TestReconcileService_FailureIsolation(t *testing.T) {
	sc := newReconcileScenario(t, 2)
	for _, phone := range []string{"+91401", "+91402", "+91403", "+91404"} {
		sc.store.addPartner(&entity.Partner{PhoneNumber: phone, Status: entity.PartnerStatusPending})
	}
	// A profile written elsewhere with a blank pincode survives the merge and fails validation.
	user := sc.store.addUser(&entity.User{Name: "Ravi", Email: "r@x.com", Phone: "+91405", Role: entity.RoleUser, IsActive: true})
	sc.store.putServicePartner(&entity.ServicePartner{
		UserID:       user.ID,
		BusinessName: "Ravi",
		PartnerType:  entity.PartnerTypeIndividual,
		ServiceAreas: []entity.ServiceArea{{City: "Pune", Areas: []string{"Baner"}, PinCodes: []string{""}}},
		Status:       entity.ServicePartnerStatusInactive,
	})
	bad := sc.store.addPartner(&entity.Partner{PhoneNumber: "+91405", FullName: "Ravi", Status: entity.PartnerStatusPending})

	summary, err := sc.service.ReconcileAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 4, summary.Created)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Failures, 1)

	failure := summary.Failures[0]
	assert.Equal(t, bad.ID, failure.PartnerID)
	assert.Equal(t, "+91405", failure.Phone)
	assert.Equal(t, usecase.FailureKindProfileValidation, failure.Kind)
	assert.Equal(t, []string{"ServicePartner.ServiceAreas[0].PinCodes[0] failed 'required'"}, failure.Fields)
	assert.Equal(t, 4, summary.UsersCreated)
	assert.Equal(t, entity.ServicePartnerStatusInactive, sc.store.servicePartnerOf(user.ID).Status, "a failed profile is not persisted")
}

func TestReconcileService_FreeFormPincodesAreCarriedOver(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	short := sc.store.addPartner(&entity.Partner{PhoneNumber: "+91411", Pincode: "41100", Status: entity.PartnerStatusPending})
	spaced := sc.store.addPartner(&entity.Partner{PhoneNumber: "+91412", Pincode: "411 001", Status: entity.PartnerStatusPending})

	summary, err := sc.service.ReconcileAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, usecase.Counts{Created: 2, UsersCreated: 2, Total: 2}, summary.Counts)
	assert.Empty(t, summary.Failures)

	for partner, pincode := range map[*entity.Partner]string{short: "41100", spaced: "411 001"} {
		sp := sc.store.servicePartnerOf(onlyUser(t, sc.store, partner.PhoneNumber).ID)
		require.NotNil(t, sp)
		require.Len(t, sp.ServiceAreas, 1)
		assert.Equal(t, []string{pincode}, sp.ServiceAreas[0].PinCodes)
	}
}

func TestReconcileService_PanicStaysWithItsPartner(t *testing.T) {
	sc := newReconcileScenario(t, 2)
	for _, phone := range []string{"+91421", "+91422"} {
		sc.store.addPartner(&entity.Partner{PhoneNumber: phone, Status: entity.PartnerStatusPending})
	}
	broken := sc.store.addPartner(&entity.Partner{PhoneNumber: "+91423", Status: entity.PartnerStatusPending})
	sc.store.addPartner(&entity.Partner{PhoneNumber: "+91424", Status: entity.PartnerStatusPending})
	sc.store.nilUserPhone = "+91423"

	summary, err := sc.service.ReconcileAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 3, summary.Created)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Failures, 1)

	failure := summary.Failures[0]
	assert.Equal(t, broken.ID, failure.PartnerID)
	assert.Equal(t, "+91423", failure.Phone)
	assert.Equal(t, usecase.FailureKindUnclassifiedFailure, failure.Kind)
	assert.Contains(t, failure.Message, "panic")
}

func TestReconcileService_SinglePartnerPanicIsReported(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	partner := sc.store.addPartner(&entity.Partner{PhoneNumber: "+91431", Status: entity.PartnerStatusPending})
	sc.store.nilUserPhone = "+91431"

	result, err := sc.service.ReconcilePartner(context.Background(), partner.ID)
	require.NoError(t, err)

	assert.Equal(t, usecase.OutcomeFailed, result.Outcome)
	require.NotNil(t, result.Failure)
	assert.Equal(t, usecase.FailureKindUnclassifiedFailure, result.Failure.Kind)
}

func TestReconcileService_PageReadFailureReturnsPartialSummary(t *testing.T) {
	sc := newReconcileScenario(t, 2)
	for _, phone := range []string{"+91501", "+91502", "+91503"} {
		sc.store.addPartner(&entity.Partner{PhoneNumber: phone, Status: entity.PartnerStatusPending})
	}
	sc.store.listErr = errors.New("connection refused")
	sc.store.listErrAtOffset = 2

	summary, err := sc.service.ReconcileAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSourceRecordAccessFailed)
	require.NotNil(t, summary)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Created)
}

func TestReconcileService_PagesNewestFirst(t *testing.T) {
	sc := newReconcileScenario(t, 2)
	var ids []uuid.UUID
	for _, phone := range []string{"+91601", "+91602", "+91603", "+91604", "+91605"} {
		ids = append(ids, sc.store.addPartner(&entity.Partner{PhoneNumber: phone, Status: entity.PartnerStatusPending}).ID)
	}

	summary, err := sc.service.ReconcileAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Created)

	require.Len(t, sc.publisher.events, 5)
	for i, event := range sc.publisher.events {
		assert.Equal(t, ids[len(ids)-1-i].String(), event.PartnerID)
	}
}

func TestReconcileService_CancelledContextStopsBetweenPages(t *testing.T) {
	sc := newReconcileScenario(t, 1)
	sc.store.addPartner(&entity.Partner{PhoneNumber: "+91701", Status: entity.PartnerStatusPending})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := sc.service.ReconcileAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, summary.Total)
}

func TestReconcileService_PublishFailureKeepsOutcome(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	sc.publisher.err = errors.New("topic not found")
	partner := sc.store.addPartner(asha())

	result, err := sc.service.ReconcilePartner(context.Background(), partner.ID)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeCreated, result.Outcome)
	assert.Nil(t, result.Failure)
}

func TestReconcileService_PublishFailureIsOnlyLogged(t *testing.T) {
	store := newMemoryStore()
	publisher := mockService.NewMockEventPublisher(t)
	svc := NewReconcileService(ReconcileServiceParams{
		PartnerRepo:        &memoryPartnerRepo{store: store},
		UserRepo:           &memoryUserRepo{store: store},
		CategoryRepo:       &memoryCategoryRepo{store: store},
		ServicePartnerRepo: &memoryServicePartnerRepo{store: store},
		Hasher:             plainHasher{},
		Validator:          validation.NewProfileValidator(),
		Publisher:          publisher,
		Config:             newTestConfig(100),
		Logger:             newDiscardLogger(),
	})
	partner := store.addPartner(asha())

	publisher.EXPECT().
		PublishServicePartnerSynced(mock.Anything, mock.MatchedBy(func(event *service.ServicePartnerSyncedEvent) bool {
			return event.PartnerID == partner.ID.String() && event.Outcome == "created" && event.Mode == "single"
		})).
		Return(errors.New("pubsub unavailable")).
		Once()

	result, err := svc.ReconcilePartner(context.Background(), partner.ID)
	require.NoError(t, err)

	assert.Equal(t, usecase.OutcomeCreated, result.Outcome)
	assert.Nil(t, result.Failure)
	assert.NotNil(t, store.servicePartnerOf(result.UserID))
}

func TestReconcileService_CatalogFailureMeansNoCategories(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	sc.store.addCategory("Plumbing")
	sc.store.categoryErr = errors.New("catalog offline")
	partner := sc.store.addPartner(asha())

	result, err := sc.service.ReconcilePartner(context.Background(), partner.ID)
	require.NoError(t, err)

	assert.Equal(t, usecase.OutcomeCreated, result.Outcome)
	assert.Empty(t, sc.store.servicePartnerOf(result.UserID).Categories)
}

func TestReconcileService_EmptyPhoneIsIdentityFailure(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	partner := sc.store.addPartner(&entity.Partner{PhoneNumber: "  ", FullName: "Nobody", Status: entity.PartnerStatusPending})

	result, err := sc.service.ReconcilePartner(context.Background(), partner.ID)
	require.NoError(t, err)

	assert.Equal(t, usecase.OutcomeFailed, result.Outcome)
	require.NotNil(t, result.Failure)
	assert.Equal(t, usecase.FailureKindIdentityResolution, result.Failure.Kind)
	assert.Contains(t, result.Failure.Message, "phone number is required")
	assert.Empty(t, sc.store.userByPhone("  "))
}

func TestReconcileService_LostCreateRaceIsPersistenceFailure(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	sc.store.spCreateErr = errors.Wrap(errors.New("duplicate key value violates unique constraint"), "user already has a service partner profile")
	partner := sc.store.addPartner(asha())

	result, err := sc.service.ReconcilePartner(context.Background(), partner.ID)
	require.NoError(t, err)

	assert.Equal(t, usecase.OutcomeFailed, result.Outcome)
	assert.Equal(t, usecase.FailureKindProfilePersistence, result.Failure.Kind)
	assert.True(t, result.UserCreated)
}

func TestReconcileService_MergePreservesReviewAnnotations(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	reviewedAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	user := sc.store.addUser(&entity.User{Name: "Asha", Email: "a@x.com", Phone: "+91999", Role: entity.RoleUser, IsActive: true})
	sc.store.putServicePartner(&entity.ServicePartner{
		UserID:       user.ID,
		BusinessName: "Asha",
		PartnerType:  entity.PartnerTypeIndividual,
		ServiceAreas: []entity.ServiceArea{{City: "Pune", Areas: []string{"Unknown"}, PinCodes: []string{"000000"}}},
		Status:       entity.ServicePartnerStatusActive,
		VerificationDocuments: []entity.VerificationDocument{
			{DocumentType: entity.DocumentTypeIdentityProof, DocumentURL: "/keep.pdf", Status: entity.DocumentStatusPending, Notes: "blurry", ReviewedAt: &reviewedAt},
			{DocumentType: entity.DocumentTypeProfessionalCertificate, DocumentURL: "/gone.pdf", Status: entity.DocumentStatusPending},
		},
	})
	partner := sc.store.addPartner(&entity.Partner{
		PhoneNumber: "+91999",
		Email:       "a@x.com",
		FullName:    "Asha",
		Documents:   []string{"/keep.pdf", "/new.pdf"},
		Status:      entity.PartnerStatusApproved,
	})

	result, err := sc.service.ReconcilePartner(context.Background(), partner.ID)
	require.NoError(t, err)
	require.Equal(t, usecase.OutcomeFixed, result.Outcome)

	docs := sc.store.servicePartnerOf(user.ID).VerificationDocuments
	require.Len(t, docs, 2)
	assert.Equal(t, entity.DocumentTypeIdentityProof, docs[0].DocumentType)
	assert.Equal(t, "/keep.pdf", docs[0].DocumentURL)
	assert.Equal(t, entity.DocumentStatusApproved, docs[0].Status)
	assert.Equal(t, "blurry", docs[0].Notes)
	require.NotNil(t, docs[0].ReviewedAt)
	assert.True(t, reviewedAt.Equal(*docs[0].ReviewedAt))
	assert.Equal(t, entity.VerificationDocument{
		DocumentType: entity.DocumentTypeProfessionalCertificate,
		DocumentURL:  "/new.pdf",
		Status:       entity.DocumentStatusApproved,
	}, docs[1])
}

func TestReconcileService_ReconcilePartnerNotFound(t *testing.T) {
	sc := newReconcileScenario(t, 100)

	result, err := sc.service.ReconcilePartner(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrPartnerNotFound)
}

func TestReconcileService_InlineUsesInlineMode(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	partner := sc.store.addPartner(asha())

	sc.service.ReconcileInline(context.Background(), partner.ID)

	require.Len(t, sc.publisher.events, 1)
	assert.Equal(t, "inline", sc.publisher.events[0].Mode)
}

func TestReconcileService_InlineSwallowsFailures(t *testing.T) {
	sc := newReconcileScenario(t, 100)
	sc.store.spCreateErr = errors.New("disk full")
	partner := sc.store.addPartner(asha())

	assert.NotPanics(t, func() {
		sc.service.ReconcileInline(context.Background(), partner.ID)
		sc.service.ReconcileInline(context.Background(), uuid.New())
	})
	assert.Empty(t, sc.publisher.events)
}
