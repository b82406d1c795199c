package usecase

import (
	"context"

	"taskkeep/internal/model"
	"taskkeep/internal/task"
)

// Create validates the input, assigns the next id and inserts the task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	title, err := parseTitleField(input.Title)
	if err != nil {
		return task.CreateOutput{}, err
	}
	priority, err := parsePriorityField(input.Priority)
	if err != nil {
		return task.CreateOutput{}, err
	}
	due, err := parseDueField(input.Due)
	if err != nil {
		return task.CreateOutput{}, err
	}
	recurrence, err := parseRecurrenceField(input.Recurrence)
	if err != nil {
		return task.CreateOutput{}, err
	}

	col, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create Load: %v", err)
		return task.CreateOutput{}, err
	}

	now := uc.timestamp()
	t := model.Task{
		ID:         col.AssignID(),
		Title:      title,
		Notes:      input.Notes,
		Tags:       model.NormalizeTags(input.Tags),
		Priority:   priority,
		Status:     model.StatusOpen,
		Due:        due,
		Recurrence: recurrence,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	col.Tasks = append(col.Tasks, t)

	if err := uc.repo.Save(ctx, col); err != nil {
		uc.l.Errorf(ctx, "uc.Create Save: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "created task #%d: %s", t.ID, t.Title)
	return task.CreateOutput{Task: t.Clone()}, nil
}
