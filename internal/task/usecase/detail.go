package usecase

import (
	"context"
	"fmt"

	"taskkeep/internal/task"
)

// Detail fetches one task by id. Returns ErrTaskNotFound when absent.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (task.DetailOutput, error) {
	col, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail Load: %v", err)
		return task.DetailOutput{}, err
	}

	t, ok := col.Get(id)
	if !ok {
		return task.DetailOutput{}, fmt.Errorf("%w: id %d", task.ErrTaskNotFound, id)
	}
	return task.DetailOutput{Task: t.Clone()}, nil
}
