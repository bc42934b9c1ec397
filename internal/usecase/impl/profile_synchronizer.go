package impl

import (
	"context"
	"slices"
	"strings"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
)

// profileSynchronizer creates or merges the ServicePartner owned by a resolved User.
type profileSynchronizer struct {
	servicePartnerRepo repository.ServicePartnerRepository
	validator          service.ProfileValidator
}

func newProfileSynchronizer(servicePartnerRepo repository.ServicePartnerRepository, validator service.ProfileValidator) *profileSynchronizer {
	return &profileSynchronizer{
		servicePartnerRepo: servicePartnerRepo,
		validator:          validator,
	}
}

// Sync looks the profile up by owner and branches into create or merge.
// Only created, fixed and alreadySynced are returned; failures come back as errors.
func (s *profileSynchronizer) Sync(
	ctx context.Context,
	user *entity.User,
	partner *entity.Partner,
	categoryIDs []uuid.UUID,
) (*entity.ServicePartner, usecase.Outcome, error) {
	existing, err := s.servicePartnerRepo.FindByUserID(ctx, user.ID)
	switch {
	case errors.Is(err, repository.ErrServicePartnerNotFound):
		return s.create(ctx, user, partner, categoryIDs)
	case err != nil:
		return nil, usecase.OutcomeFailed, newStepError(domainerrors.ErrProfilePersistenceFailed, errors.Wrap(err, "failed to find service partner"))
	}

	merged := mergeServicePartner(existing, partner, categoryIDs)
	if !servicePartnerChanged(existing, merged) {
		return existing, usecase.OutcomeAlreadySynced, nil
	}

	if err := s.validator.Validate(merged); err != nil {
		return nil, usecase.OutcomeFailed, newStepError(domainerrors.ErrProfileValidationFailed, err)
	}

	if err := s.servicePartnerRepo.Update(ctx, merged); err != nil {
		return nil, usecase.OutcomeFailed, newStepError(domainerrors.ErrProfilePersistenceFailed, errors.Wrap(err, "failed to update service partner"))
	}

	return merged, usecase.OutcomeFixed, nil
}

func (s *profileSynchronizer) create(
	ctx context.Context,
	user *entity.User,
	partner *entity.Partner,
	categoryIDs []uuid.UUID,
) (*entity.ServicePartner, usecase.Outcome, error) {
	servicePartner := newServicePartner(user, partner, categoryIDs)

	if err := s.validator.Validate(servicePartner); err != nil {
		return nil, usecase.OutcomeFailed, newStepError(domainerrors.ErrProfileValidationFailed, err)
	}

	// The unique index on user_id turns a lost create race into ErrServicePartnerExists.
	if err := s.servicePartnerRepo.Create(ctx, servicePartner); err != nil {
		return nil, usecase.OutcomeFailed, newStepError(domainerrors.ErrProfilePersistenceFailed, errors.Wrap(err, "failed to create service partner"))
	}

	return servicePartner, usecase.OutcomeCreated, nil
}

func newServicePartner(user *entity.User, partner *entity.Partner, categoryIDs []uuid.UUID) *entity.ServicePartner {
	return &entity.ServicePartner{
		UserID:                user.ID,
		BusinessName:          entity.ResolveDisplayName(partner),
		PartnerType:           entity.PartnerTypeIndividual,
		Categories:            slices.Clone(categoryIDs),
		ServiceAreas:          []entity.ServiceArea{entity.ResolveServiceArea(partner)},
		IsVerified:            false,
		Status:                entity.ServicePartnerStatusActive,
		VerificationDocuments: mergeDocuments(nil, partner),
	}
}

// mergeServicePartner applies the partial merge to a copy of existing.
func mergeServicePartner(existing *entity.ServicePartner, partner *entity.Partner, categoryIDs []uuid.UUID) *entity.ServicePartner {
	merged := existing.Clone()

	fullName := strings.TrimSpace(partner.FullName)
	switch {
	case strings.TrimSpace(merged.BusinessName) == "":
		merged.BusinessName = entity.ResolveDisplayName(partner)
	case fullName != "" && fullName != merged.BusinessName:
		merged.BusinessName = fullName
	}

	// An empty mapping never erases categories already assigned.
	if len(categoryIDs) > 0 {
		merged.Categories = slices.Clone(categoryIDs)
	}

	merged.Status = entity.ServicePartnerStatusActive

	// Profiles written elsewhere may lack the fields creation always sets.
	if merged.PartnerType == "" {
		merged.PartnerType = entity.PartnerTypeIndividual
	}
	if len(merged.ServiceAreas) == 0 {
		merged.ServiceAreas = []entity.ServiceArea{entity.ResolveServiceArea(partner)}
	}

	merged.VerificationDocuments = mergeDocuments(existing.VerificationDocuments, partner)

	return merged
}

// mergeDocuments mirrors partner.Documents keyed by URL. Entries whose URL survives keep their
// type and review annotations; blank and repeated references are skipped.
func mergeDocuments(current []entity.VerificationDocument, partner *entity.Partner) []entity.VerificationDocument {
	byURL := make(map[string]entity.VerificationDocument, len(current))
	for _, doc := range current {
		if _, ok := byURL[doc.DocumentURL]; !ok {
			byURL[doc.DocumentURL] = doc
		}
	}

	status := entity.ResolveDocumentStatus(partner)
	docs := make([]entity.VerificationDocument, 0, len(partner.Documents))
	seen := make(map[string]struct{}, len(partner.Documents))
	for _, ref := range partner.Documents {
		url := strings.TrimSpace(ref)
		if url == "" {
			continue
		}
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}

		doc, ok := byURL[url]
		if !ok {
			doc = entity.VerificationDocument{
				DocumentType: entity.DefaultDocumentType,
				DocumentURL:  url,
			}
		}
		if ok && doc.ReviewedAt != nil {
			reviewedAt := *doc.ReviewedAt
			doc.ReviewedAt = &reviewedAt
		}
		doc.Status = status
		docs = append(docs, doc)
	}

	return docs
}

// servicePartnerChanged reports whether the merge produced anything worth persisting.
func servicePartnerChanged(before, after *entity.ServicePartner) bool {
	return before.BusinessName != after.BusinessName ||
		before.PartnerType != after.PartnerType ||
		before.Status != after.Status ||
		!slices.Equal(before.Categories, after.Categories) ||
		!slices.EqualFunc(before.ServiceAreas, after.ServiceAreas, entity.ServiceArea.Equal) ||
		!slices.EqualFunc(before.VerificationDocuments, after.VerificationDocuments, entity.VerificationDocument.Equal)
}
