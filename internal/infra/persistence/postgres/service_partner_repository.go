package postgres

import (
	"context"
	"slices"
	"time"

	"servicehub/config"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type servicePartnerRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewServicePartnerRepository creates a new service partner repository
func NewServicePartnerRepository(db *gorm.DB, cfg *config.Config) repository.ServicePartnerRepository {
	return &servicePartnerRepository{
		db:      db,
		timeout: operationTimeout(cfg),
	}
}

func (repo *servicePartnerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ServicePartner, error) {
	ctx, cancel := withOperationTimeout(ctx, repo.timeout)
	defer cancel()

	var servicePartnerM model.ServicePartnerModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&servicePartnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServicePartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find service partner by user id")
	}

	return toServicePartnerDomain(&servicePartnerM), nil
}

func (repo *servicePartnerRepository) Create(ctx context.Context, servicePartner *entity.ServicePartner) error {
	ctx, cancel := withOperationTimeout(ctx, repo.timeout)
	defer cancel()

	servicePartnerM := fromServicePartnerDomain(servicePartner)
	if err := repo.db.WithContext(ctx).Omit("User").Create(servicePartnerM).Error; err != nil {
		return mapServicePartnerWriteError(err, "failed to create service partner")
	}

	servicePartner.ID = servicePartnerM.ID
	servicePartner.CreatedAt = servicePartnerM.CreatedAt
	servicePartner.UpdatedAt = servicePartnerM.UpdatedAt

	return nil
}

func (repo *servicePartnerRepository) Update(ctx context.Context, servicePartner *entity.ServicePartner) error {
	ctx, cancel := withOperationTimeout(ctx, repo.timeout)
	defer cancel()

	servicePartnerM := fromServicePartnerDomain(servicePartner)
	servicePartnerM.UpdatedAt = time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ServicePartnerModel{}).
		Where("id = ?", servicePartner.ID).
		Select("*").
		Omit("id", "user_id", "created_at", "User").
		Updates(servicePartnerM)
	if result.Error != nil {
		return mapServicePartnerWriteError(result.Error, "failed to update service partner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServicePartnerNotFound
	}

	servicePartner.UpdatedAt = servicePartnerM.UpdatedAt

	return nil
}

func mapServicePartnerWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.Wrap(repository.ErrServicePartnerExists, err.Error())
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrProfilePersistenceFailed.WrapMessage("owning user does not exist")
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrProfilePersistenceFailed.WrapMessage("profile violates a storage constraint")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toServicePartnerDomain(data *model.ServicePartnerModel) *entity.ServicePartner {
	if data == nil {
		return nil
	}

	areas := make([]entity.ServiceArea, len(data.ServiceAreas))
	for i, area := range data.ServiceAreas {
		areas[i] = entity.ServiceArea{
			City:     area.City,
			Areas:    slices.Clone(area.Areas),
			PinCodes: slices.Clone(area.PinCodes),
		}
	}

	docs := make([]entity.VerificationDocument, len(data.VerificationDocuments))
	for i, doc := range data.VerificationDocuments {
		docs[i] = entity.VerificationDocument{
			DocumentType: entity.DocumentType(doc.DocumentType),
			DocumentURL:  doc.DocumentURL,
			Status:       entity.DocumentStatus(doc.Status),
			Notes:        doc.Notes,
			ReviewedAt:   doc.ReviewedAt,
		}
	}

	return &entity.ServicePartner{
		ID:                    data.ID,
		UserID:                data.UserID,
		BusinessName:          data.BusinessName,
		PartnerType:           entity.PartnerType(data.PartnerType),
		Categories:            slices.Clone(data.Categories),
		ServiceAreas:          areas,
		IsVerified:            data.IsVerified,
		Status:                entity.ServicePartnerStatus(data.Status),
		VerificationDocuments: docs,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromServicePartnerDomain(data *entity.ServicePartner) *model.ServicePartnerModel {
	if data == nil {
		return nil
	}

	areas := make([]model.ServiceAreaData, len(data.ServiceAreas))
	for i, area := range data.ServiceAreas {
		areas[i] = model.ServiceAreaData{
			City:     area.City,
			Areas:    slices.Clone(area.Areas),
			PinCodes: slices.Clone(area.PinCodes),
		}
	}

	docs := make([]model.VerificationDocumentData, len(data.VerificationDocuments))
	for i, doc := range data.VerificationDocuments {
		docs[i] = model.VerificationDocumentData{
			DocumentType: string(doc.DocumentType),
			DocumentURL:  doc.DocumentURL,
			Status:       string(doc.Status),
			Notes:        doc.Notes,
			ReviewedAt:   doc.ReviewedAt,
		}
	}

	categories := data.Categories
	if categories == nil {
		categories = []uuid.UUID{}
	}

	return &model.ServicePartnerModel{
		ID:                    data.ID,
		UserID:                data.UserID,
		BusinessName:          data.BusinessName,
		PartnerType:           string(data.PartnerType),
		Categories:            slices.Clone(categories),
		ServiceAreas:          areas,
		IsVerified:            data.IsVerified,
		Status:                string(data.Status),
		VerificationDocuments: docs,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
