package model

import (
	"sort"
	"strings"
	"time"
)

// Task is the unit of work managed by the store.
type Task struct {
	ID          int64
	Title       string
	Notes       string
	Tags        []string // normalized: lowercase, trimmed, sorted, unique
	Priority    Priority
	Status      Status
	Due         *Date
	Recurrence  *Recurrence
	ParentID    *int64 // id of the task that spawned this one via recurrence
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// HasTag reports whether the task carries the given (normalized) tag.
func (t Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hand out task values without
// sharing slices or pointers with the collection.
func (t Task) Clone() Task {
	out := t
	out.Tags = append([]string(nil), t.Tags...)
	if t.Due != nil {
		due := *t.Due
		out.Due = &due
	}
	if t.Recurrence != nil {
		rec := *t.Recurrence
		out.Recurrence = &rec
	}
	if t.ParentID != nil {
		pid := *t.ParentID
		out.ParentID = &pid
	}
	if t.CompletedAt != nil {
		done := *t.CompletedAt
		out.CompletedAt = &done
	}
	return out
}

// NormalizeTags trims, lowercases, drops empties and collapses duplicates.
// The result is sorted so tag sets compare independent of insertion order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
