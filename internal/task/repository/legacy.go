package repository

import "context"

// LegacyTask is one record of the v1 flat format: no tags, no recurrence,
// loosely named fields. Values are raw strings; the import usecase
// validates and upgrades them.
type LegacyTask struct {
	Title       string
	Notes       string
	Due         *string // YYYY-MM-DD or absent
	Priority    string  // may be empty
	Done        bool
	CreatedAt   string
	UpdatedAt   string
	CompletedAt *string
}

// LegacyReader reads a v1 store for the one-time import adapter.
type LegacyReader interface {
	// ReadLegacy parses a legacy file: either a bare JSON list of records
	// or an object with a "tasks" list.
	ReadLegacy(ctx context.Context, path string) ([]LegacyTask, error)
}
