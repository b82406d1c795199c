package usecase_test

import (
	"context"
	"time"

	"taskkeep/internal/model"
	"taskkeep/internal/task/repository"
)

// memRepo is an in-memory repository.Repository for tests.
type memRepo struct {
	col       model.Collection
	loadErr   error
	saveErr   error
	loadCalls int
	saveCalls int
}

func newMemRepo() *memRepo {
	return &memRepo{col: model.NewCollection()}
}

func (m *memRepo) Load(ctx context.Context) (model.Collection, error) {
	m.loadCalls++
	if m.loadErr != nil {
		return model.Collection{}, m.loadErr
	}
	// Copy so usecase mutations only become visible through Save.
	col := model.Collection{NextID: m.col.NextID, Tasks: make([]model.Task, 0, len(m.col.Tasks))}
	for _, t := range m.col.Tasks {
		col.Tasks = append(col.Tasks, t.Clone())
	}
	return col, nil
}

func (m *memRepo) Save(ctx context.Context, col model.Collection) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.col = col
	return nil
}

// memLegacy is a canned repository.LegacyReader.
type memLegacy struct {
	records []repository.LegacyTask
	err     error
}

func (m *memLegacy) ReadLegacy(ctx context.Context, path string) ([]repository.LegacyTask, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

// fixedClock returns a clock frozen at the given instant.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strPtr(s string) *string { return &s }
