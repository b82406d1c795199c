package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"taskkeep/internal/model"
	"taskkeep/internal/task/repository"
	"taskkeep/pkg/log"
)

// Store is a JSON-file-backed repository.Repository. All writes go through
// an atomic temp-file-and-rename, so a crash mid-save can never leave a
// partially written store behind.
type Store struct {
	path string
	l    log.Logger
}

var _ repository.Repository = (*Store)(nil)

// New creates a file store at the given path. The file is created lazily
// on first Save.
func New(path string, l log.Logger) *Store {
	return &Store{path: path, l: l}
}

// Load reads the backing file. A missing file yields an empty collection
// with NextID 1. Malformed content fails with ErrCorruptStore and the file
// is left untouched.
func (s *Store) Load(ctx context.Context) (model.Collection, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.l.Debugf(ctx, "store %s does not exist yet, starting empty", s.path)
		return model.NewCollection(), nil
	}
	if err != nil {
		return model.Collection{}, fmt.Errorf("read store %s: %w", s.path, err)
	}

	var doc storeDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Collection{}, fmt.Errorf("%w: %s: %v", repository.ErrCorruptStore, s.path, err)
	}

	col, err := decodeCollection(doc)
	if err != nil {
		return model.Collection{}, fmt.Errorf("%w: %s: %v", repository.ErrCorruptStore, s.path, err)
	}
	return col, nil
}

// Save serializes the collection to a temporary file in the same directory,
// flushes it, then renames it over the destination. On any failure the
// temporary file is removed and the destination stays unchanged.
func (s *Store) Save(ctx context.Context, col model.Collection) error {
	raw, err := json.MarshalIndent(encodeCollection(col), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", repository.ErrStoreWrite, err)
	}
	raw = append(raw, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp in %s: %v", repository.ErrStoreWrite, dir, err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.Write(raw); err != nil {
		cleanup()
		return fmt.Errorf("%w: write %s: %v", repository.ErrStoreWrite, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("%w: sync %s: %v", repository.ErrStoreWrite, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", repository.ErrStoreWrite, tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod %s: %v", repository.ErrStoreWrite, tmpName, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s -> %s: %v", repository.ErrStoreWrite, tmpName, s.path, err)
	}

	s.l.Debugf(ctx, "saved %d tasks (next_id=%d) to %s", len(col.Tasks), col.NextID, s.path)
	return nil
}
