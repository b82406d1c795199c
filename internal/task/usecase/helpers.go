package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"taskkeep/internal/model"
	"taskkeep/internal/task"
	"taskkeep/pkg/datemath"
)

// timestamp returns "now" at second resolution in UTC, the granularity the
// store persists.
func (uc *implUseCase) timestamp() time.Time {
	return uc.now().UTC().Truncate(time.Second)
}

// today returns the current calendar date in the configured timezone.
func (uc *implUseCase) today() model.Date {
	return model.DateOf(uc.dates.Today(uc.now()))
}

// --- Record Model validation (task.ErrValidation on any bad field) ---

func parseTitleField(s string) (string, error) {
	title := strings.TrimSpace(s)
	if title == "" {
		return "", fmt.Errorf("%w: title must not be empty", task.ErrValidation)
	}
	return title, nil
}

func parsePriorityField(s string) (model.Priority, error) {
	if s == "" {
		return model.PriorityMedium, nil
	}
	priority, err := model.ParsePriority(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", task.ErrValidation, err)
	}
	return priority, nil
}

func parseDueField(s string) (*model.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	due, err := model.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", task.ErrValidation, err)
	}
	return &due, nil
}

func parseRecurrenceField(s string) (*model.Recurrence, error) {
	if s == "" {
		return nil, nil
	}
	rec, err := model.ParseRecurrence(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", task.ErrValidation, err)
	}
	return &rec, nil
}

// advanceDue moves a due date forward by one recurrence period. Month and
// year steps clamp to the last valid day of the target month.
func advanceDue(d model.Date, rec model.Recurrence) model.Date {
	t := d.Time()
	switch rec {
	case model.RecurrenceDaily:
		t = datemath.AddDays(t, 1)
	case model.RecurrenceWeekly:
		t = datemath.AddDays(t, 7)
	case model.RecurrenceMonthly:
		t = datemath.AddMonths(t, 1)
	case model.RecurrenceYearly:
		t = datemath.AddYears(t, 1)
	}
	return model.DateOf(t)
}

// tagHistogram counts tag usage across all tasks, ordered by descending
// count, ties broken by tag name.
func tagHistogram(tasks []model.Task) []task.TagCount {
	counts := make(map[string]int)
	for _, t := range tasks {
		for _, tag := range t.Tags {
			counts[tag]++
		}
	}
	out := make([]task.TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, task.TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}
