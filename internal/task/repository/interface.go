package repository

import (
	"context"

	"taskkeep/internal/model"
)

// Repository persists the task collection as one unit. Load and Save are
// the only paths that touch the backing store; there are no partial writes.
type Repository interface {
	// Load reads the full collection. A missing store is not an error: it
	// yields an empty collection with NextID 1.
	Load(ctx context.Context) (model.Collection, error)

	// Save writes the full collection atomically. An observer never sees a
	// partially written store, regardless of interruption.
	Save(ctx context.Context, col model.Collection) error
}
