package usecase

import (
	"context"
	"fmt"
	"time"

	"taskkeep/internal/model"
	"taskkeep/internal/task"
)

// Done transitions an open task to done and stamps completed_at. A task
// with a recurrence atomically spawns its follow-up in the same save:
// same title, notes, tags, priority and recurrence, due advanced by one
// period, parent_id pointing back at the completed task.
func (uc *implUseCase) Done(ctx context.Context, id int64) (task.DoneOutput, error) {
	col, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Done Load: %v", err)
		return task.DoneOutput{}, err
	}

	t, ok := col.Get(id)
	if !ok {
		return task.DoneOutput{}, fmt.Errorf("%w: id %d", task.ErrTaskNotFound, id)
	}
	if t.Status == model.StatusDone {
		return task.DoneOutput{}, fmt.Errorf("%w: id %d", task.ErrAlreadyDone, id)
	}

	now := uc.timestamp()
	t.Status = model.StatusDone
	t.CompletedAt = &now
	t.UpdatedAt = now

	var spawned *model.Task
	if t.Recurrence != nil {
		child := uc.spawnRecurrence(&col, *t, now)
		spawned = &child
	}

	if err := uc.repo.Save(ctx, col); err != nil {
		uc.l.Errorf(ctx, "uc.Done Save: %v", err)
		return task.DoneOutput{}, err
	}

	if spawned != nil {
		uc.l.Infof(ctx, "completed task #%d, spawned follow-up #%d due %s", id, spawned.ID, spawned.Due)
	} else {
		uc.l.Infof(ctx, "completed task #%d", id)
	}

	// Re-read the completed task: spawning may have grown the slice and
	// invalidated the earlier pointer.
	done, _ := col.Get(id)
	return task.DoneOutput{Task: done.Clone(), Spawned: spawned}, nil
}

// spawnRecurrence appends the follow-up task for a completed recurring
// task. A parent without a due date starts its child one period from today.
func (uc *implUseCase) spawnRecurrence(col *model.Collection, parent model.Task, now time.Time) model.Task {
	base := uc.today()
	if parent.Due != nil {
		base = *parent.Due
	}
	due := advanceDue(base, *parent.Recurrence)

	rec := *parent.Recurrence
	parentID := parent.ID
	child := model.Task{
		ID:         col.AssignID(),
		Title:      parent.Title,
		Notes:      parent.Notes,
		Tags:       append([]string(nil), parent.Tags...),
		Priority:   parent.Priority,
		Status:     model.StatusOpen,
		Due:        &due,
		Recurrence: &rec,
		ParentID:   &parentID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	col.Tasks = append(col.Tasks, child)
	return child.Clone()
}
