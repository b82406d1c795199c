package usecase

import (
	"context"
	"fmt"

	"taskkeep/internal/task"
)

// Delete removes a task permanently. Ids are never reused, and recurrence
// children of the deleted task are left standing (parent_id is a relation,
// not ownership).
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	col, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete Load: %v", err)
		return err
	}

	i := col.Index(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", task.ErrTaskNotFound, id)
	}
	col.Tasks = append(col.Tasks[:i], col.Tasks[i+1:]...)

	if err := uc.repo.Save(ctx, col); err != nil {
		uc.l.Errorf(ctx, "uc.Delete Save: %v", err)
		return err
	}

	uc.l.Infof(ctx, "deleted task #%d", id)
	return nil
}
