// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Outcome classifies how a single partner was reconciled.
type Outcome string

const (
	// OutcomeCreated means a new ServicePartner was created.
	OutcomeCreated Outcome = "created"
	// OutcomeFixed means an existing ServicePartner was changed and persisted.
	OutcomeFixed Outcome = "fixed"
	// OutcomeAlreadySynced means the existing ServicePartner needed no change.
	OutcomeAlreadySynced Outcome = "alreadySynced"
	// OutcomeFailed means a per-partner failure stopped processing.
	OutcomeFailed Outcome = "failed"
)

// FailureKind names the step at which a partner failed.
type FailureKind string

const (
	FailureKindIdentityResolution  FailureKind = "IdentityResolutionFailure"
	FailureKindProfileValidation   FailureKind = "ProfileValidationFailure"
	FailureKindProfilePersistence  FailureKind = "ProfilePersistenceFailure"
	FailureKindSourceRecordAccess  FailureKind = "SourceRecordAccessFailure"
	FailureKindUnclassifiedFailure FailureKind = "UnclassifiedFailure"
)

// Failure is one diagnostic line of a reconciliation report.
type Failure struct {
	PartnerID uuid.UUID   `json:"partnerId"`
	Phone     string      `json:"phone,omitempty"`
	Kind      FailureKind `json:"kind"`
	Message   string      `json:"message"`
	Fields    []string    `json:"fields,omitempty"`
}

// Counts aggregates partner outcomes of one run.
type Counts struct {
	AlreadySynced int `json:"alreadySynced"`
	Created       int `json:"created"`
	Fixed         int `json:"fixed"`
	Failed        int `json:"failed"`
	UsersCreated  int `json:"usersCreated"`
	Total         int `json:"total"`
}

// Summary is the structured report of a batch run.
type Summary struct {
	Counts
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	DurationMS int64     `json:"durationMs"`
	Failures   []Failure `json:"failures"`
}

// PartnerResult is the outcome of reconciling exactly one partner.
type PartnerResult struct {
	PartnerID        uuid.UUID `json:"partnerId"`
	UserID           uuid.UUID `json:"userId,omitempty"`
	ServicePartnerID uuid.UUID `json:"servicePartnerId,omitempty"`
	Outcome          Outcome   `json:"outcome"`
	UserCreated      bool      `json:"userCreated"`
	Failure          *Failure  `json:"failure,omitempty"`
}

// ReconcileUsecase converges Partner, User and ServicePartner records into one linked state.
type ReconcileUsecase interface {
	// ReconcileAll runs a batch pass over every partner. Per-partner failures are recorded in
	// the summary; an error is returned only when the partner scope itself could not be read,
	// together with the partial summary collected up to that point.
	ReconcileAll(ctx context.Context) (*Summary, error)

	// ReconcilePartner reconciles a single partner and reports its outcome.
	// The returned error is non-nil only if the partner record could not be read.
	ReconcilePartner(ctx context.Context, partnerID uuid.UUID) (*PartnerResult, error)

	// ReconcileInline reconciles a single partner after a self-service edit.
	// Every failure is logged and swallowed.
	ReconcileInline(ctx context.Context, partnerID uuid.UUID)
}
