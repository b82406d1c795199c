package model_test

import (
	"testing"
	"time"

	"taskkeep/internal/model"
)

func TestParsePriority(t *testing.T) {
	for raw, want := range map[string]model.Priority{
		"low":    model.PriorityLow,
		" HIGH ": model.PriorityHigh,
		"Medium": model.PriorityMedium,
	} {
		got, err := model.ParsePriority(raw)
		if err != nil || got != want {
			t.Errorf("ParsePriority(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}
	for _, raw := range []string{"", "urgent", "0"} {
		if _, err := model.ParsePriority(raw); err == nil {
			t.Errorf("ParsePriority(%q) accepted", raw)
		}
	}
}

func TestUrgency(t *testing.T) {
	if model.PriorityHigh.Urgency() <= model.PriorityMedium.Urgency() ||
		model.PriorityMedium.Urgency() <= model.PriorityLow.Urgency() {
		t.Errorf("urgency ordering broken")
	}
}

func TestParseRecurrence(t *testing.T) {
	for _, raw := range []string{"daily", "weekly", "monthly", "yearly", " Daily "} {
		if _, err := model.ParseRecurrence(raw); err != nil {
			t.Errorf("ParseRecurrence(%q): %v", raw, err)
		}
	}
	if _, err := model.ParseRecurrence("fortnightly"); err == nil {
		t.Errorf("unknown recurrence accepted")
	}
}

func TestNormalizeTags(t *testing.T) {
	got := model.NormalizeTags([]string{" Work ", "home", "WORK", "", "  ", "amber"})
	want := []string{"amber", "home", "work"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestDate(t *testing.T) {
	t.Run("Parse And Format", func(t *testing.T) {
		d, err := model.ParseDate("2025-11-10")
		if err != nil {
			t.Fatal(err)
		}
		if d.String() != "2025-11-10" {
			t.Errorf("String() = %q", d.String())
		}
	})

	t.Run("DateOf Drops Time", func(t *testing.T) {
		d := model.DateOf(time.Date(2025, 11, 10, 23, 59, 59, 0, time.UTC))
		if !d.Equal(model.NewDate(2025, time.November, 10)) {
			t.Errorf("DateOf kept time component: %v", d)
		}
	})

	t.Run("Ordering", func(t *testing.T) {
		a := model.NewDate(2025, time.November, 9)
		b := model.NewDate(2025, time.November, 10)
		if !a.Before(b) || !b.After(a) || a.Equal(b) {
			t.Errorf("ordering broken between %v and %v", a, b)
		}
		if a.DaysUntil(b) != 1 || b.DaysUntil(a) != -1 {
			t.Errorf("DaysUntil wrong: %d, %d", a.DaysUntil(b), b.DaysUntil(a))
		}
	})
}

func TestTaskClone(t *testing.T) {
	due := model.NewDate(2025, time.December, 1)
	rec := model.RecurrenceWeekly
	pid := int64(3)
	done := time.Date(2025, 11, 5, 12, 0, 0, 0, time.UTC)
	orig := model.Task{
		ID:          1,
		Title:       "original",
		Tags:        []string{"a", "b"},
		Due:         &due,
		Recurrence:  &rec,
		ParentID:    &pid,
		CompletedAt: &done,
	}

	clone := orig.Clone()
	clone.Tags[0] = "mutated"
	*clone.ParentID = 99
	newDue := model.NewDate(2030, time.January, 1)
	*clone.Due = newDue

	if orig.Tags[0] != "a" {
		t.Errorf("clone shares tags slice")
	}
	if *orig.ParentID != 3 {
		t.Errorf("clone shares parent_id pointer")
	}
	if !orig.Due.Equal(due) {
		t.Errorf("clone shares due pointer")
	}
}

func TestCollection(t *testing.T) {
	col := model.NewCollection()
	if col.NextID != 1 {
		t.Fatalf("fresh next_id = %d, want 1", col.NextID)
	}

	first := col.AssignID()
	second := col.AssignID()
	if first != 1 || second != 2 || col.NextID != 3 {
		t.Errorf("id assignment: %d, %d, next %d", first, second, col.NextID)
	}

	col.Tasks = append(col.Tasks,
		model.Task{ID: first, Title: "one"},
		model.Task{ID: second, Title: "two"},
	)
	if got, ok := col.Get(second); !ok || got.Title != "two" {
		t.Errorf("Get(%d) = %+v, %v", second, got, ok)
	}
	if _, ok := col.Get(42); ok {
		t.Errorf("Get of unknown id succeeded")
	}
	if col.Index(first) != 0 || col.Index(42) != -1 {
		t.Errorf("Index wrong: %d, %d", col.Index(first), col.Index(42))
	}
}
