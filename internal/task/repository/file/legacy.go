package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"taskkeep/internal/task/repository"
)

var _ repository.LegacyReader = (*Store)(nil)

// legacyDoc tolerates the two shapes v1 files were written in.
type legacyDoc struct {
	Tasks []legacyRecord `json:"tasks"`
}

// legacyRecord accepts the loose field naming of the v1 prototype:
// "text" or "name" instead of "title", "description" instead of "notes",
// "due_date" instead of "due".
type legacyRecord struct {
	Title       string  `json:"title"`
	Text        string  `json:"text"`
	Name        string  `json:"name"`
	Notes       string  `json:"notes"`
	Description string  `json:"description"`
	Due         *string `json:"due"`
	DueDate     *string `json:"due_date"`
	Priority    string  `json:"priority"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	CompletedAt *string `json:"completed_at"`
}

// ReadLegacy parses a v1 file into raw legacy records.
func (s *Store) ReadLegacy(ctx context.Context, path string) ([]repository.LegacyTask, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read legacy file %s: %w", path, err)
	}

	var records []legacyRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		var doc legacyDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%w: %s: unrecognized legacy format", repository.ErrCorruptStore, path)
		}
		records = doc.Tasks
	}

	out := make([]repository.LegacyTask, 0, len(records))
	for _, r := range records {
		out = append(out, repository.LegacyTask{
			Title:       firstNonEmpty(r.Title, r.Text, r.Name),
			Notes:       firstNonEmpty(r.Notes, r.Description),
			Due:         coalescePtr(r.Due, r.DueDate),
			Priority:    r.Priority,
			Done:        r.Completed,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
			CompletedAt: r.CompletedAt,
		})
	}
	s.l.Infof(ctx, "read %d legacy records from %s", len(out), path)
	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func coalescePtr(values ...*string) *string {
	for _, v := range values {
		if v != nil && *v != "" {
			return v
		}
	}
	return nil
}
