package postgres

import (
	"context"
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

type partnerRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewPartnerRepository creates a new partner repository
func NewPartnerRepository(db *gorm.DB, cfg *config.Config) repository.PartnerRepository {
	return &partnerRepository{
		db:      db,
		timeout: operationTimeout(cfg),
	}
}

func (repo *partnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error) {
	ctx, cancel := withOperationTimeout(ctx, repo.timeout)
	defer cancel()

	var partnerM model.PartnerModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by id")
	}

	return toPartnerDomain(&partnerM), nil
}

// List pages newest first. id breaks ties so pages stay stable across calls.
func (repo *partnerRepository) List(ctx context.Context, opts repository.ListPartnersOptions) ([]*entity.Partner, error) {
	ctx, cancel := withOperationTimeout(ctx, repo.timeout)
	defer cancel()

	query := repo.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var partnerMs []model.PartnerModel
	if err := query.Find(&partnerMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	partners := make([]*entity.Partner, len(partnerMs))
	for i := range partnerMs {
		partners[i] = toPartnerDomain(&partnerMs[i])
	}

	return partners, nil
}

func (repo *partnerRepository) Update(ctx context.Context, partner *entity.Partner) error {
	ctx, cancel := withOperationTimeout(ctx, repo.timeout)
	defer cancel()

	partnerM := fromPartnerDomain(partner)
	partnerM.UpdatedAt = time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.PartnerModel{}).
		Where("id = ?", partner.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(partnerM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrPartnerUpdateFailed.WrapMessage("missing required partner information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update partner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPartnerNotFound
	}

	partner.UpdatedAt = partnerM.UpdatedAt

	return nil
}

func toPartnerDomain(data *model.PartnerModel) *entity.Partner {
	if data == nil {
		return nil
	}

	return &entity.Partner{
		ID:                data.ID,
		PhoneNumber:       data.PhoneNumber,
		Email:             data.Email,
		FullName:          data.FullName,
		Address:           data.Address,
		City:              data.City,
		State:             data.State,
		Pincode:           data.Pincode,
		ServiceCategories: data.ServiceCategories,
		Documents:         data.Documents,
		Status:            entity.PartnerStatus(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromPartnerDomain(data *entity.Partner) *model.PartnerModel {
	if data == nil {
		return nil
	}

	return &model.PartnerModel{
		ID:                data.ID,
		PhoneNumber:       data.PhoneNumber,
		Email:             data.Email,
		FullName:          data.FullName,
		Address:           data.Address,
		City:              data.City,
		State:             data.State,
		Pincode:           data.Pincode,
		ServiceCategories: data.ServiceCategories,
		Documents:         data.Documents,
		Status:            string(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
