package usecase

import (
	"context"
	"strings"
	"time"

	"taskkeep/internal/model"
	"taskkeep/internal/task"
	"taskkeep/internal/task/repository"
)

const legacyUntitled = "Untitled"

// ImportV1 upgrades a legacy flat-format file into the collection. Fresh
// ids come from the same next_id counter as Create, so imported tasks can
// never collide with existing ones. The legacy boundary is tolerant:
// unparsable priorities fall back to medium, unparsable dates are dropped,
// missing timestamps are stamped with the import time.
func (uc *implUseCase) ImportV1(ctx context.Context, input task.ImportV1Input) (task.ImportV1Output, error) {
	records, err := uc.legacy.ReadLegacy(ctx, input.Path)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ImportV1 ReadLegacy: %v", err)
		return task.ImportV1Output{}, err
	}

	col, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ImportV1 Load: %v", err)
		return task.ImportV1Output{}, err
	}

	now := uc.timestamp()
	imported := make([]model.Task, 0, len(records))
	for _, r := range records {
		t := uc.upgradeLegacy(ctx, r, now)
		t.ID = col.AssignID()
		col.Tasks = append(col.Tasks, t)
		imported = append(imported, t.Clone())
	}

	if len(imported) > 0 {
		if err := uc.repo.Save(ctx, col); err != nil {
			uc.l.Errorf(ctx, "uc.ImportV1 Save: %v", err)
			return task.ImportV1Output{}, err
		}
	}

	uc.l.Infof(ctx, "imported %d legacy tasks from %s", len(imported), input.Path)
	return task.ImportV1Output{Imported: len(imported), Tasks: imported}, nil
}

// upgradeLegacy maps one v1 record into the current task shape.
func (uc *implUseCase) upgradeLegacy(ctx context.Context, r repository.LegacyTask, now time.Time) model.Task {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		title = legacyUntitled
	}

	priority := model.PriorityMedium
	if r.Priority != "" {
		if p, err := model.ParsePriority(r.Priority); err == nil {
			priority = p
		} else {
			uc.l.Warnf(ctx, "legacy priority %q not recognized, using medium", r.Priority)
		}
	}

	var due *model.Date
	if r.Due != nil {
		if d, err := model.ParseDate(strings.TrimSpace(*r.Due)); err == nil {
			due = &d
		} else {
			uc.l.Warnf(ctx, "legacy due date %q not recognized, dropping", *r.Due)
		}
	}

	status := model.StatusOpen
	var completedAt *time.Time
	if r.Done {
		status = model.StatusDone
		done := now
		if r.CompletedAt != nil {
			if ts, ok := parseLegacyTime(*r.CompletedAt); ok {
				done = ts
			}
		}
		completedAt = &done
	}

	createdAt := now
	if ts, ok := parseLegacyTime(r.CreatedAt); ok {
		createdAt = ts
	}
	updatedAt := now
	if ts, ok := parseLegacyTime(r.UpdatedAt); ok {
		updatedAt = ts
	}

	return model.Task{
		Title:       title,
		Notes:       r.Notes,
		Tags:        []string{},
		Priority:    priority,
		Status:      status,
		Due:         due,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		CompletedAt: completedAt,
	}
}

// parseLegacyTime accepts the second-resolution layout the old store wrote
// plus full RFC3339 as a fallback.
func parseLegacyTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02T15:04:05Z", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Truncate(time.Second), true
	}
	return time.Time{}, false
}
