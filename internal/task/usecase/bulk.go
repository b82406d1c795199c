package usecase

import (
	"context"
	"fmt"
	"time"

	"taskkeep/internal/model"
	"taskkeep/internal/task"
	"taskkeep/internal/task/query"
)

// bulkAction is a validated bulk action ready to apply per task.
type bulkAction struct {
	kind     task.BulkAction
	tags     []string
	priority model.Priority
}

// Bulk selects a target set via the filter, then applies one action to
// every selected task. An invalid action definition fails before any task
// is touched; a per-task failure aborts the remaining batch, keeps the
// already-applied changes, and reports the committed ids.
func (uc *implUseCase) Bulk(ctx context.Context, input task.BulkInput) (task.BulkOutput, error) {
	filter, err := query.ParseFilter(input.Filter)
	if err != nil {
		return task.BulkOutput{}, err
	}
	action, err := validateBulkAction(input)
	if err != nil {
		return task.BulkOutput{}, err
	}

	col, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Bulk Load: %v", err)
		return task.BulkOutput{}, err
	}

	today := uc.today()
	targets := make([]int64, 0)
	for i := range col.Tasks {
		if filter.Matches(col.Tasks[i], today) {
			targets = append(targets, col.Tasks[i].ID)
		}
	}
	if len(targets) == 0 {
		return task.BulkOutput{Affected: 0, CommittedIDs: []int64{}}, nil
	}

	now := uc.timestamp()
	committed := make([]int64, 0, len(targets))
	var applyErr error
	for _, id := range targets {
		if err := uc.applyBulkAction(&col, id, action, now); err != nil {
			applyErr = fmt.Errorf("task #%d: %w", id, err)
			break
		}
		committed = append(committed, id)
	}

	if len(committed) > 0 {
		if err := uc.repo.Save(ctx, col); err != nil {
			uc.l.Errorf(ctx, "uc.Bulk Save: %v", err)
			return task.BulkOutput{}, err
		}
	}

	out := task.BulkOutput{Affected: len(committed), CommittedIDs: committed}
	if applyErr != nil {
		uc.l.Warnf(ctx, "bulk %s aborted after %d of %d tasks: %v", action.kind, len(committed), len(targets), applyErr)
		return out, applyErr
	}

	uc.l.Infof(ctx, "bulk %s applied to %d tasks", action.kind, len(committed))
	return out, nil
}

// validateBulkAction checks the action definition up front, before any
// task is selected or touched.
func validateBulkAction(input task.BulkInput) (bulkAction, error) {
	switch input.Action {
	case task.BulkActionDelete:
		return bulkAction{kind: input.Action}, nil

	case task.BulkActionTagAdd, task.BulkActionTagRemove:
		tags := model.NormalizeTags(input.Tags)
		if len(tags) == 0 {
			return bulkAction{}, fmt.Errorf("%w: %s requires at least one tag", query.ErrInvalidQuery, input.Action)
		}
		return bulkAction{kind: input.Action, tags: tags}, nil

	case task.BulkActionSetPriority:
		priority, err := model.ParsePriority(input.Priority)
		if err != nil {
			return bulkAction{}, fmt.Errorf("%w: %v", query.ErrInvalidQuery, err)
		}
		return bulkAction{kind: input.Action, priority: priority}, nil
	}
	return bulkAction{}, fmt.Errorf("%w: unknown bulk action %q", query.ErrInvalidQuery, input.Action)
}

func (uc *implUseCase) applyBulkAction(col *model.Collection, id int64, action bulkAction, now time.Time) error {
	if action.kind == task.BulkActionDelete {
		i := col.Index(id)
		if i < 0 {
			return task.ErrTaskNotFound
		}
		col.Tasks = append(col.Tasks[:i], col.Tasks[i+1:]...)
		return nil
	}

	t, ok := col.Get(id)
	if !ok {
		return task.ErrTaskNotFound
	}

	switch action.kind {
	case task.BulkActionTagAdd:
		t.Tags = model.NormalizeTags(append(append([]string{}, t.Tags...), action.tags...))
	case task.BulkActionTagRemove:
		drop := make(map[string]struct{}, len(action.tags))
		for _, tag := range action.tags {
			drop[tag] = struct{}{}
		}
		kept := make([]string, 0, len(t.Tags))
		for _, tag := range t.Tags {
			if _, gone := drop[tag]; !gone {
				kept = append(kept, tag)
			}
		}
		t.Tags = kept
	case task.BulkActionSetPriority:
		t.Priority = action.priority
	}
	t.UpdatedAt = now
	return nil
}
