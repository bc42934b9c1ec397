package impl

import (
	"context"
	"log/slog"

	deliverycontext "servicehub/internal/delivery/context"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"

	"github.com/google/uuid"
)

// categoryMapper resolves free-text category names to catalog ids.
// Names match the catalog exactly, case included. Nothing is cached between calls.
type categoryMapper struct {
	categoryRepo repository.ServiceCategoryRepository
	logger       *slog.Logger
}

func newCategoryMapper(categoryRepo repository.ServiceCategoryRepository, logger *slog.Logger) *categoryMapper {
	return &categoryMapper{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Map returns the ids of every catalog entry named in names, ordered by the first input name
// that matched and without duplicates. Unknown names are dropped. A catalog failure is logged
// and yields no ids.
func (m *categoryMapper) Map(ctx context.Context, names []string) []uuid.UUID {
	ids := []uuid.UUID{}
	if len(names) == 0 {
		return ids
	}

	lookup := make([]string, 0, len(names))
	seenNames := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seenNames[name]; ok {
			continue
		}
		seenNames[name] = struct{}{}
		lookup = append(lookup, name)
	}

	categories, err := m.categoryRepo.FindByNames(ctx, lookup)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).WarnContext(ctx, "Category lookup failed, continuing without categories",
			slog.String("error_code", domainerrors.ErrCategoryLookupFailed.ErrorCode()),
			slog.Int("name_count", len(lookup)),
			slog.Any("error", err),
		)

		return ids
	}

	idsByName := make(map[string][]uuid.UUID, len(categories))
	for _, category := range categories {
		idsByName[category.Name] = append(idsByName[category.Name], category.ID)
	}

	seenIDs := make(map[uuid.UUID]struct{}, len(categories))
	for _, name := range lookup {
		for _, id := range idsByName[name] {
			if _, ok := seenIDs[id]; ok {
				continue
			}
			seenIDs[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	return ids
}
