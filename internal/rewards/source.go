package rewards

import (
	"context"
	"sync/atomic"

	"github.com/arenatools/questplanner/internal/logger"
)

// Source provides hot-reloadable access to the current reward table.
// Readers always see a complete table; Reload swaps the pointer atomically
// so in-flight optimizations keep the table they started with.
type Source struct {
	path  string
	table atomic.Pointer[Table]
}

// NewSource loads the table at path and returns a reloadable source.
func NewSource(path string) (*Source, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}

	s := &Source{path: path}
	s.table.Store(t)
	return s, nil
}

// NewStaticSource wraps an already-built table. Used by tests and callers
// that manage their own table lifecycle. Reload is a no-op for static
// sources.
func NewStaticSource(t *Table) *Source {
	s := &Source{}
	s.table.Store(t)
	return s
}

// Table returns the current table snapshot.
func (s *Source) Table() *Table {
	return s.table.Load()
}

// Reload re-reads the backing file and swaps in the new table. On failure
// the previous table stays active.
func (s *Source) Reload(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	t, err := Load(s.path)
	if err != nil {
		return err
	}

	old := s.table.Swap(t)
	logger.FromContext(ctx).Info("Reward table reloaded",
		"path", s.path,
		"old_version", old.Version(),
		"new_version", t.Version(),
		"queues", t.Len())
	return nil
}
