package query

import (
	"strings"

	"taskkeep/internal/model"
)

// MatchesSearch reports whether the task matches a case-insensitive
// substring query against title, notes or any tag.
func MatchesSearch(t model.Task, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Notes), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(tag, q) {
			return true
		}
	}
	return false
}

// Search keeps the tasks matching q, preserving order.
func Search(tasks []model.Task, q string) []model.Task {
	if strings.TrimSpace(q) == "" {
		return tasks
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if MatchesSearch(t, q) {
			out = append(out, t)
		}
	}
	return out
}
