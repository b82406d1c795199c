package query

import (
	"fmt"
	"sort"
	"strings"

	"taskkeep/internal/model"
)

// SortKey selects the ordering applied to query results.
type SortKey string

const (
	SortNone    SortKey = ""         // keep collection order
	SortDue     SortKey = "due"      // earliest first, no due date last
	SortPrio    SortKey = "priority" // most urgent first
	SortTitle   SortKey = "title"    // lexicographic, case-insensitive
	SortCreated SortKey = "created"
	SortUpdated SortKey = "updated"
)

// ParseSortKey validates a raw sort key, failing with ErrInvalidQuery on
// anything outside the fixed vocabulary.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortNone, SortDue, SortPrio, SortTitle, SortCreated, SortUpdated:
		return SortKey(strings.ToLower(strings.TrimSpace(s))), nil
	}
	return SortNone, fmt.Errorf("%w: unknown sort key %q", ErrInvalidQuery, s)
}

// Sort orders tasks in place by the given key. The sort is stable: tasks
// comparing equal keep their relative collection order.
func Sort(tasks []model.Task, key SortKey) {
	switch key {
	case SortDue:
		sort.SliceStable(tasks, func(i, j int) bool {
			return dueLess(tasks[i], tasks[j])
		})
	case SortPrio:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority.Urgency() > tasks[j].Priority.Urgency()
		})
	case SortTitle:
		sort.SliceStable(tasks, func(i, j int) bool {
			return strings.ToLower(tasks[i].Title) < strings.ToLower(tasks[j].Title)
		})
	case SortCreated:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})
	case SortUpdated:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].UpdatedAt.Before(tasks[j].UpdatedAt)
		})
	}
}

// SortForSearch orders search hits by due date (none last), then urgency.
func SortForSearch(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if dueLess(a, b) {
			return true
		}
		if dueLess(b, a) {
			return false
		}
		return a.Priority.Urgency() > b.Priority.Urgency()
	})
}

func dueLess(a, b model.Task) bool {
	switch {
	case a.Due == nil && b.Due == nil:
		return false
	case a.Due == nil:
		return false
	case b.Due == nil:
		return true
	default:
		return a.Due.Before(*b.Due)
	}
}
