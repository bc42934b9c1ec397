package repository

import (
	"context"

	"servicehub/internal/domain/entity"
)

// ServiceCategoryRepository gives read-only access to the category catalog.
type ServiceCategoryRepository interface {
	// FindByNames returns every category whose name equals one of names exactly.
	FindByNames(ctx context.Context, names []string) ([]*entity.ServiceCategory, error)
}
