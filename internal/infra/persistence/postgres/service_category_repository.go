package postgres

import (
	"context"
	"time"

	"servicehub/config"
	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/repository"
	"servicehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type serviceCategoryRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewServiceCategoryRepository creates a new catalog repository
func NewServiceCategoryRepository(db *gorm.DB, cfg *config.Config) repository.ServiceCategoryRepository {
	return &serviceCategoryRepository{
		db:      db,
		timeout: operationTimeout(cfg),
	}
}

func (repo *serviceCategoryRepository) FindByNames(ctx context.Context, names []string) ([]*entity.ServiceCategory, error) {
	if len(names) == 0 {
		return []*entity.ServiceCategory{}, nil
	}

	ctx, cancel := withOperationTimeout(ctx, repo.timeout)
	defer cancel()

	var categoryMs []model.ServiceCategoryModel
	if err := repo.db.WithContext(ctx).Where("name IN ?", names).Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find service categories by name")
	}

	categories := make([]*entity.ServiceCategory, len(categoryMs))
	for i, categoryM := range categoryMs {
		categories[i] = &entity.ServiceCategory{
			ID:   categoryM.ID,
			Name: categoryM.Name,
		}
	}

	return categories, nil
}
