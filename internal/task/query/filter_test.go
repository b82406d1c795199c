package query_test

import (
	"errors"
	"testing"
	"time"

	"taskkeep/internal/model"
	"taskkeep/internal/task"
	"taskkeep/internal/task/query"
)

func date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func datePtr(t *testing.T, s string) *model.Date {
	t.Helper()
	d := date(t, s)
	return &d
}

func TestParseFilter(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		f, err := query.ParseFilter(task.FilterInput{Status: "open", Priority: "high", Tag: "work"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Status == nil || *f.Status != model.StatusOpen {
			t.Errorf("status = %v", f.Status)
		}
		if f.Priority == nil || *f.Priority != model.PriorityHigh {
			t.Errorf("priority = %v", f.Priority)
		}
	})

	t.Run("Unknown Status", func(t *testing.T) {
		_, err := query.ParseFilter(task.FilterInput{Status: "archived"})
		if !errors.Is(err, query.ErrInvalidQuery) {
			t.Errorf("expected ErrInvalidQuery, got %v", err)
		}
	})

	t.Run("Unknown Priority", func(t *testing.T) {
		_, err := query.ParseFilter(task.FilterInput{Priority: "critical"})
		if !errors.Is(err, query.ErrInvalidQuery) {
			t.Errorf("expected ErrInvalidQuery, got %v", err)
		}
	})
}

func TestFilterMatches(t *testing.T) {
	today := date(t, "2025-11-10")

	open := model.Task{Status: model.StatusOpen, Priority: model.PriorityMedium}
	done := model.Task{Status: model.StatusDone, Priority: model.PriorityMedium}

	t.Run("Overdue Requires Open", func(t *testing.T) {
		f := query.Filter{Overdue: true}

		late := open
		late.Due = datePtr(t, "2025-11-01")
		if !f.Matches(late, today) {
			t.Errorf("open past-due task should be overdue")
		}

		lateDone := done
		lateDone.Due = datePtr(t, "2025-11-01")
		if f.Matches(lateDone, today) {
			t.Errorf("done task must never be overdue")
		}

		dueToday := open
		dueToday.Due = datePtr(t, "2025-11-10")
		if f.Matches(dueToday, today) {
			t.Errorf("due today is not overdue")
		}

		if f.Matches(open, today) {
			t.Errorf("dateless task is not overdue")
		}
	})

	t.Run("Due Today Ignores Status", func(t *testing.T) {
		f := query.Filter{DueToday: true}
		tk := done
		tk.Due = datePtr(t, "2025-11-10")
		if !f.Matches(tk, today) {
			t.Errorf("done task due today should match")
		}
	})

	t.Run("Week Window Inclusive", func(t *testing.T) {
		f := query.Filter{DueThisWeek: true}
		cases := []struct {
			due  string
			want bool
		}{
			{"2025-11-09", false}, // yesterday
			{"2025-11-10", true},  // today
			{"2025-11-17", true},  // +7, still in
			{"2025-11-18", false}, // +8
		}
		for _, c := range cases {
			tk := open
			tk.Due = datePtr(t, c.due)
			if got := f.Matches(tk, today); got != c.want {
				t.Errorf("due %s: match = %v, want %v", c.due, got, c.want)
			}
		}
	})

	t.Run("Predicates AND Together", func(t *testing.T) {
		status := model.StatusOpen
		f := query.Filter{Status: &status, Tag: "work"}

		tk := open
		tk.Tags = []string{"work"}
		if !f.Matches(tk, today) {
			t.Errorf("open work task should match")
		}
		tk.Tags = []string{"home"}
		if f.Matches(tk, today) {
			t.Errorf("tag predicate ignored")
		}
	})
}

func TestSort(t *testing.T) {
	mk := func(id int64, title string, p model.Priority, due *model.Date) model.Task {
		return model.Task{ID: id, Title: title, Priority: p, Status: model.StatusOpen, Due: due}
	}

	t.Run("Due Puts Dateless Last", func(t *testing.T) {
		tasks := []model.Task{
			mk(1, "a", model.PriorityMedium, nil),
			mk(2, "b", model.PriorityMedium, datePtr(t, "2025-12-01")),
			mk(3, "c", model.PriorityMedium, datePtr(t, "2025-11-01")),
		}
		query.Sort(tasks, query.SortDue)
		if tasks[0].ID != 3 || tasks[1].ID != 2 || tasks[2].ID != 1 {
			t.Errorf("order = %d,%d,%d, want 3,2,1", tasks[0].ID, tasks[1].ID, tasks[2].ID)
		}
	})

	t.Run("Priority Sort Is Stable", func(t *testing.T) {
		tasks := []model.Task{
			mk(1, "first high", model.PriorityHigh, nil),
			mk(2, "low", model.PriorityLow, nil),
			mk(3, "second high", model.PriorityHigh, nil),
		}
		query.Sort(tasks, query.SortPrio)
		want := []int64{1, 3, 2}
		for i, id := range want {
			if tasks[i].ID != id {
				t.Errorf("pos %d = #%d, want #%d", i, tasks[i].ID, id)
			}
		}
	})

	t.Run("Title Ignores Case", func(t *testing.T) {
		tasks := []model.Task{
			mk(1, "banana", model.PriorityMedium, nil),
			mk(2, "Apple", model.PriorityMedium, nil),
		}
		query.Sort(tasks, query.SortTitle)
		if tasks[0].ID != 2 {
			t.Errorf("case-insensitive title sort broken: %q first", tasks[0].Title)
		}
	})

	t.Run("Created Sorts Oldest First", func(t *testing.T) {
		old := mk(1, "old", model.PriorityMedium, nil)
		old.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		recent := mk(2, "recent", model.PriorityMedium, nil)
		recent.CreatedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		tasks := []model.Task{recent, old}
		query.Sort(tasks, query.SortCreated)
		if tasks[0].ID != 1 {
			t.Errorf("created sort: %q first", tasks[0].Title)
		}
	})
}

func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{"", "due", "priority", "title", "created", "updated", " Due "} {
		if _, err := query.ParseSortKey(valid); err != nil {
			t.Errorf("key %q rejected: %v", valid, err)
		}
	}
	if _, err := query.ParseSortKey("urgency"); !errors.Is(err, query.ErrInvalidQuery) {
		t.Errorf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Title: "Buy milk", Status: model.StatusOpen},
		{ID: 2, Title: "call mom", Notes: "about the MILK run", Status: model.StatusOpen},
		{ID: 3, Title: "gym", Tags: []string{"milk-round"}, Status: model.StatusOpen},
		{ID: 4, Title: "unrelated", Status: model.StatusOpen},
	}

	t.Run("Title Notes And Tags", func(t *testing.T) {
		got := query.Search(tasks, "milk")
		if len(got) != 3 {
			t.Fatalf("hits = %d, want 3", len(got))
		}
	})

	t.Run("Blank Query Matches All", func(t *testing.T) {
		got := query.Search(tasks, "   ")
		if len(got) != len(tasks) {
			t.Errorf("hits = %d, want %d", len(got), len(tasks))
		}
	})
}
