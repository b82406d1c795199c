package usecase

import (
	"context"

	"taskkeep/internal/task"
	"taskkeep/internal/task/query"
)

// List filters, searches and sorts the collection. Unknown filter or sort
// keys fail with ErrInvalidQuery before any task is scanned.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	filter, err := query.ParseFilter(input.Filter)
	if err != nil {
		return task.ListOutput{}, err
	}
	sortKey, err := query.ParseSortKey(input.Sort)
	if err != nil {
		return task.ListOutput{}, err
	}

	col, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List Load: %v", err)
		return task.ListOutput{}, err
	}

	tasks := filter.Apply(col.Tasks, uc.today())
	tasks = query.Search(tasks, input.Search)

	switch {
	case sortKey != query.SortNone:
		query.Sort(tasks, sortKey)
	case input.Search != "":
		// Search results default to due-soonest-then-urgency ordering.
		query.SortForSearch(tasks)
	}

	return task.ListOutput{Tasks: tasks, Total: len(tasks)}, nil
}
