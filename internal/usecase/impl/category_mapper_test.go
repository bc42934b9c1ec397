package impl

import (
	"context"
	"testing"

	"servicehub/internal/domain/entity"
	mockRepo "servicehub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCategoryMapper_EmptyInputSkipsCatalog(t *testing.T) {
	categoryRepo := mockRepo.NewMockServiceCategoryRepository(t)
	mapper := newCategoryMapper(categoryRepo, newDiscardLogger())

	ids := mapper.Map(context.Background(), nil)

	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestCategoryMapper_OrdersByFirstMatchingName(t *testing.T) {
	ctx := context.Background()
	categoryRepo := mockRepo.NewMockServiceCategoryRepository(t)
	mapper := newCategoryMapper(categoryRepo, newDiscardLogger())

	cleaning := &entity.ServiceCategory{ID: uuid.New(), Name: "Cleaning"}
	painting := &entity.ServiceCategory{ID: uuid.New(), Name: "Painting"}

	categoryRepo.EXPECT().
		FindByNames(ctx, []string{"Painting", "Cleaning", "Moving"}).
		Return([]*entity.ServiceCategory{cleaning, painting}, nil)

	ids := mapper.Map(ctx, []string{"Painting", "Cleaning", "Painting", "Moving"})

	assert.Equal(t, []uuid.UUID{painting.ID, cleaning.ID}, ids)
}

func TestCategoryMapper_IgnoresLooselyMatchingRows(t *testing.T) {
	ctx := context.Background()
	categoryRepo := mockRepo.NewMockServiceCategoryRepository(t)
	mapper := newCategoryMapper(categoryRepo, newDiscardLogger())

	// A catalog returning a case-folded match must not leak into the result.
	categoryRepo.EXPECT().
		FindByNames(ctx, []string{"plumbing"}).
		Return([]*entity.ServiceCategory{{ID: uuid.New(), Name: "Plumbing"}}, nil)

	assert.Empty(t, mapper.Map(ctx, []string{"plumbing"}))
}

func TestCategoryMapper_CatalogFailureYieldsNoIDs(t *testing.T) {
	ctx := context.Background()
	categoryRepo := mockRepo.NewMockServiceCategoryRepository(t)
	mapper := newCategoryMapper(categoryRepo, newDiscardLogger())

	categoryRepo.EXPECT().
		FindByNames(ctx, []string{"Plumbing"}).
		Return(nil, errors.New("connection refused"))

	ids := mapper.Map(ctx, []string{"Plumbing"})

	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}
