package query

import (
	"fmt"

	"taskkeep/internal/model"
	"taskkeep/internal/task"
)

// Filter is a validated set of predicates, composed by logical AND.
// Nil pointer fields are not applied.
type Filter struct {
	Status      *model.Status
	Priority    *model.Priority
	Tag         string
	Overdue     bool
	DueToday    bool
	DueThisWeek bool
}

// ParseFilter validates raw filter values into a Filter. Unknown enum
// values fail with ErrInvalidQuery before any scan happens.
func ParseFilter(in task.FilterInput) (Filter, error) {
	var f Filter

	if in.Status != "" {
		status, err := model.ParseStatus(in.Status)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		f.Status = &status
	}
	if in.Priority != "" {
		priority, err := model.ParsePriority(in.Priority)
		if err != nil {
			return Filter{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		f.Priority = &priority
	}

	f.Tag = in.Tag
	f.Overdue = in.Overdue
	f.DueToday = in.DueToday
	f.DueThisWeek = in.DueThisWeek
	return f, nil
}

// Matches reports whether the task passes every active predicate, with
// "today" fixed by the caller.
func (f Filter) Matches(t model.Task, today model.Date) bool {
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.Tag != "" && !t.HasTag(f.Tag) {
		return false
	}
	if f.Overdue {
		if t.Due == nil || !t.Due.Before(today) || t.Status != model.StatusOpen {
			return false
		}
	}
	if f.DueToday {
		if t.Due == nil || !t.Due.Equal(today) {
			return false
		}
	}
	if f.DueThisWeek {
		if t.Due == nil {
			return false
		}
		days := today.DaysUntil(*t.Due)
		if days < 0 || days > 7 {
			return false
		}
	}
	return true
}

// Apply returns cloned copies of the tasks passing the filter, preserving
// collection order.
func (f Filter) Apply(tasks []model.Task, today model.Date) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t, today) {
			out = append(out, t.Clone())
		}
	}
	return out
}
