package usecase

import (
	"context"
	"fmt"
	"strings"

	"taskkeep/internal/model"
	"taskkeep/internal/task"
)

// Edit applies a sparse field patch. Supplied fields are re-validated
// before anything changes; nil pointers leave the field untouched.
func (uc *implUseCase) Edit(ctx context.Context, input task.EditInput) (task.EditOutput, error) {
	patch, err := validatePatch(input)
	if err != nil {
		return task.EditOutput{}, err
	}

	col, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Edit Load: %v", err)
		return task.EditOutput{}, err
	}

	t, ok := col.Get(input.ID)
	if !ok {
		return task.EditOutput{}, fmt.Errorf("%w: id %d", task.ErrTaskNotFound, input.ID)
	}

	patch.applyTo(t)
	t.UpdatedAt = uc.timestamp()

	if err := uc.repo.Save(ctx, col); err != nil {
		uc.l.Errorf(ctx, "uc.Edit Save: %v", err)
		return task.EditOutput{}, err
	}

	uc.l.Infof(ctx, "updated task #%d", t.ID)
	return task.EditOutput{Task: t.Clone()}, nil
}

// editPatch holds the already-validated field changes of one Edit call.
type editPatch struct {
	title      *string
	notes      *string
	priority   *model.Priority
	due        **model.Date       // outer nil = untouched, inner nil = cleared
	recurrence **model.Recurrence // same convention
	tagMode    task.TagMode
	tags       []string
}

func validatePatch(input task.EditInput) (editPatch, error) {
	var p editPatch

	if input.Title != nil {
		title, err := parseTitleField(*input.Title)
		if err != nil {
			return editPatch{}, err
		}
		p.title = &title
	}
	if input.Notes != nil {
		notes := *input.Notes
		p.notes = &notes
	}
	if input.Priority != nil {
		priority, err := model.ParsePriority(*input.Priority)
		if err != nil {
			return editPatch{}, fmt.Errorf("%w: %v", task.ErrValidation, err)
		}
		p.priority = &priority
	}
	if input.Due != nil {
		if strings.TrimSpace(*input.Due) == "" {
			var cleared *model.Date
			p.due = &cleared
		} else {
			due, err := parseDueField(*input.Due)
			if err != nil {
				return editPatch{}, err
			}
			p.due = &due
		}
	}
	if input.Recurrence != nil {
		if strings.TrimSpace(*input.Recurrence) == "" {
			var cleared *model.Recurrence
			p.recurrence = &cleared
		} else {
			rec, err := parseRecurrenceField(*input.Recurrence)
			if err != nil {
				return editPatch{}, err
			}
			p.recurrence = &rec
		}
	}

	switch input.TagMode {
	case "", task.TagModeSet, task.TagModeAdd, task.TagModeRemove:
		p.tagMode = input.TagMode
		p.tags = model.NormalizeTags(input.Tags)
	default:
		return editPatch{}, fmt.Errorf("%w: unknown tag mode %q", task.ErrValidation, input.TagMode)
	}

	return p, nil
}

func (p editPatch) applyTo(t *model.Task) {
	if p.title != nil {
		t.Title = *p.title
	}
	if p.notes != nil {
		t.Notes = *p.notes
	}
	if p.priority != nil {
		t.Priority = *p.priority
	}
	if p.due != nil {
		t.Due = *p.due
	}
	if p.recurrence != nil {
		t.Recurrence = *p.recurrence
	}

	switch p.tagMode {
	case task.TagModeSet:
		t.Tags = p.tags
	case task.TagModeAdd:
		t.Tags = model.NormalizeTags(append(append([]string{}, t.Tags...), p.tags...))
	case task.TagModeRemove:
		drop := make(map[string]struct{}, len(p.tags))
		for _, tag := range p.tags {
			drop[tag] = struct{}{}
		}
		kept := make([]string, 0, len(t.Tags))
		for _, tag := range t.Tags {
			if _, gone := drop[tag]; !gone {
				kept = append(kept, tag)
			}
		}
		t.Tags = kept
	}
}
