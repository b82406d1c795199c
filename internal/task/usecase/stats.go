package usecase

import (
	"context"

	"taskkeep/internal/model"
	"taskkeep/internal/task"
	"taskkeep/internal/task/query"
)

// Stats recomputes the aggregate snapshot from the current collection.
// Nothing is cached; every call reflects the stored state.
func (uc *implUseCase) Stats(ctx context.Context) (task.StatsOutput, error) {
	col, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats Load: %v", err)
		return task.StatsOutput{}, err
	}

	today := uc.today()
	out := task.StatsOutput{
		Total: len(col.Tasks),
		OpenByPriority: map[model.Priority]int{
			model.PriorityLow:    0,
			model.PriorityMedium: 0,
			model.PriorityHigh:   0,
		},
		TagHistogram: tagHistogram(col.Tasks),
	}

	overdue := query.Filter{Overdue: true}
	dueToday := query.Filter{DueToday: true}
	dueThisWeek := query.Filter{DueThisWeek: true}

	for _, t := range col.Tasks {
		switch t.Status {
		case model.StatusOpen:
			out.Open++
			out.OpenByPriority[t.Priority]++
		case model.StatusDone:
			out.Done++
		}
		if t.Recurrence != nil {
			out.Recurring++
		}
		if overdue.Matches(t, today) {
			out.Overdue++
		}
		if dueToday.Matches(t, today) {
			out.DueToday++
		}
		if dueThisWeek.Matches(t, today) {
			out.DueThisWeek++
		}
	}

	if out.Total > 0 {
		out.CompletionRate = float64(out.Done) / float64(out.Total)
	}
	return out, nil
}

// Tags returns the tag usage histogram on its own.
func (uc *implUseCase) Tags(ctx context.Context) ([]task.TagCount, error) {
	col, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Tags Load: %v", err)
		return nil, err
	}
	return tagHistogram(col.Tasks), nil
}
