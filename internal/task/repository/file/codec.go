package file

import (
	"fmt"
	"time"

	"taskkeep/internal/model"
)

// schemaVersion identifies the on-disk document layout.
const schemaVersion = 3

// timeLayout is second-resolution UTC, matching the legacy store.
const timeLayout = "2006-01-02T15:04:05Z"

// storeDoc is the persisted document: the ordered task list plus the id
// counter. Optional task fields serialize as explicit nulls so the schema
// stays self-describing.
type storeDoc struct {
	Schema int       `json:"schema"`
	NextID int64     `json:"next_id"`
	Tasks  []taskDoc `json:"tasks"`
}

type taskDoc struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Notes       string   `json:"notes"`
	Tags        []string `json:"tags"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	Due         *string  `json:"due"`
	Recurrence  *string  `json:"recurrence"`
	ParentID    *int64   `json:"parent_id"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	CompletedAt *string  `json:"completed_at"`
}

func encodeCollection(col model.Collection) storeDoc {
	doc := storeDoc{
		Schema: schemaVersion,
		NextID: col.NextID,
		Tasks:  make([]taskDoc, 0, len(col.Tasks)),
	}
	for _, t := range col.Tasks {
		doc.Tasks = append(doc.Tasks, encodeTask(t))
	}
	return doc
}

func encodeTask(t model.Task) taskDoc {
	d := taskDoc{
		ID:        t.ID,
		Title:     t.Title,
		Notes:     t.Notes,
		Tags:      t.Tags,
		Priority:  string(t.Priority),
		Status:    string(t.Status),
		ParentID:  t.ParentID,
		CreatedAt: t.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt: t.UpdatedAt.UTC().Format(timeLayout),
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	if t.Due != nil {
		due := t.Due.String()
		d.Due = &due
	}
	if t.Recurrence != nil {
		rec := string(*t.Recurrence)
		d.Recurrence = &rec
	}
	if t.CompletedAt != nil {
		done := t.CompletedAt.UTC().Format(timeLayout)
		d.CompletedAt = &done
	}
	return d
}

func decodeCollection(doc storeDoc) (model.Collection, error) {
	if doc.Schema != schemaVersion {
		return model.Collection{}, fmt.Errorf("unsupported schema %d", doc.Schema)
	}
	if doc.NextID < 1 {
		return model.Collection{}, fmt.Errorf("invalid next_id %d", doc.NextID)
	}

	col := model.Collection{
		NextID: doc.NextID,
		Tasks:  make([]model.Task, 0, len(doc.Tasks)),
	}
	seen := make(map[int64]struct{}, len(doc.Tasks))
	for i, d := range doc.Tasks {
		t, err := decodeTask(d)
		if err != nil {
			return model.Collection{}, fmt.Errorf("task[%d]: %w", i, err)
		}
		if _, dup := seen[t.ID]; dup {
			return model.Collection{}, fmt.Errorf("duplicate task id %d", t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.ID >= doc.NextID {
			return model.Collection{}, fmt.Errorf("task id %d not below next_id %d", t.ID, doc.NextID)
		}
		col.Tasks = append(col.Tasks, t)
	}
	return col, nil
}

func decodeTask(d taskDoc) (model.Task, error) {
	if d.ID < 1 {
		return model.Task{}, fmt.Errorf("invalid id %d", d.ID)
	}
	if d.Title == "" {
		return model.Task{}, fmt.Errorf("task %d: empty title", d.ID)
	}

	priority, err := model.ParsePriority(d.Priority)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %d: %v", d.ID, err)
	}
	status, err := model.ParseStatus(d.Status)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %d: %v", d.ID, err)
	}

	createdAt, err := time.Parse(timeLayout, d.CreatedAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %d: bad created_at %q", d.ID, d.CreatedAt)
	}
	updatedAt, err := time.Parse(timeLayout, d.UpdatedAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %d: bad updated_at %q", d.ID, d.UpdatedAt)
	}

	t := model.Task{
		ID:        d.ID,
		Title:     d.Title,
		Notes:     d.Notes,
		Tags:      model.NormalizeTags(d.Tags),
		Priority:  priority,
		Status:    status,
		ParentID:  d.ParentID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if d.Due != nil {
		due, err := model.ParseDate(*d.Due)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %d: %v", d.ID, err)
		}
		t.Due = &due
	}
	if d.Recurrence != nil {
		rec, err := model.ParseRecurrence(*d.Recurrence)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %d: %v", d.ID, err)
		}
		t.Recurrence = &rec
	}
	if d.CompletedAt != nil {
		done, err := time.Parse(timeLayout, *d.CompletedAt)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %d: bad completed_at %q", d.ID, *d.CompletedAt)
		}
		t.CompletedAt = &done
	}
	return t, nil
}
