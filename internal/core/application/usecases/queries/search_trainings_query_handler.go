package queries

import (
	"context"

	"training/internal/core/domain/services"
	"training/internal/core/ports"
)

// SearchTrainingsQueryHandler answers SearchTrainingsQuery from the catalog.
type SearchTrainingsQueryHandler struct {
	repository ports.TrainingRepository
	search     services.TrainingSearch
}

func NewSearchTrainingsQueryHandler(
	repository ports.TrainingRepository,
	search services.TrainingSearch,
) SearchTrainingsQueryHandler {
	return SearchTrainingsQueryHandler{
		repository: repository,
		search:     search,
	}
}

// Handle returns the matching trainings ordered by date ascending. The result
// is never nil.
func (h SearchTrainingsQueryHandler) Handle(
	ctx context.Context,
	query SearchTrainingsQuery,
) ([]SearchTrainingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	catalog, err := h.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	found := h.search.Search(catalog, query.DateRange())

	rows := make([]SearchTrainingsQueryResponse, 0, len(found))
	for _, t := range found {
		rows = append(rows, SearchTrainingsQueryResponse{
			ID:           t.ID(),
			Title:        t.Title(),
			Date:         t.Date(),
			Location:     t.Location(),
			Capacity:     t.Capacity(),
			Level:        t.Level(),
			Price:        t.Price(),
			Status:       t.Status().Kind(),
			CancelReason: t.Status().Reason(),
		})
	}

	return rows, nil
}
