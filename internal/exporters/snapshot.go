// Package exporters writes catalog snapshots to disk for backup purposes.
package exporters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mrlokans/bookshelf/internal/entities"
)

const snapshotPrefix = "catalog-"

// BookLister provides read access to the full catalog.
type BookLister interface {
	List(search, genre string) ([]entities.Book, error)
}

// SnapshotExporter serializes the whole catalog to a timestamped JSON file
// and prunes snapshots beyond the retention count.
type SnapshotExporter struct {
	store     BookLister
	dir       string
	retention int
}

// NewSnapshotExporter creates an exporter writing into dir, keeping at most
// retention snapshots.
func NewSnapshotExporter(store BookLister, dir string, retention int) *SnapshotExporter {
	return &SnapshotExporter{
		store:     store,
		dir:       dir,
		retention: retention,
	}
}

// Export writes a snapshot and returns its path.
func (e *SnapshotExporter) Export() (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	books, err := e.store.List("", "")
	if err != nil {
		return "", fmt.Errorf("load catalog: %w", err)
	}

	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize catalog: %w", err)
	}

	name := fmt.Sprintf("%s%s.json", snapshotPrefix, time.Now().Format("20060102-150405"))
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	if err := e.prune(); err != nil {
		return path, fmt.Errorf("prune old snapshots: %w", err)
	}

	return path, nil
}

// prune removes the oldest snapshots beyond the retention count. Snapshot
// names embed their timestamp, so lexicographic order is chronological.
func (e *SnapshotExporter) prune() error {
	if e.retention <= 0 {
		return nil
	}

	matches, err := filepath.Glob(filepath.Join(e.dir, snapshotPrefix+"*.json"))
	if err != nil {
		return err
	}
	if len(matches) <= e.retention {
		return nil
	}

	sort.Strings(matches)
	for _, stale := range matches[:len(matches)-e.retention] {
		if err := os.Remove(stale); err != nil {
			return err
		}
	}
	return nil
}
