// Package storage implements the storage adapter: whole-collection load and
// replace over a pluggable backend, with a single process-wide write lock.
//
// Reads are not locked. Two callers that load the same collection, mutate it
// and save it in turn race, and the later save wins; only the write itself
// is exclusive. Backends replace a collection atomically, so a reader sees
// either the old or the new document.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/mesh-intelligence/planboard/pkg/types"
)

// saveMu serialises every Save across all collections and backends.
var saveMu sync.Mutex

// Load decodes the stored document for collection. A missing, unreadable or
// corrupt document yields def; Load never fails.
func Load[D any](store types.Store, collection string, def D) D {
	data, err := store.Read(collection)
	if err != nil {
		if !errors.Is(err, types.ErrNoDocument) {
			slog.Warn("collection unreadable, using default", "collection", collection, "error", err)
		}
		return def
	}
	var doc D
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("collection corrupt, using default", "collection", collection, "error", err)
		return def
	}
	return doc
}

// Save replaces the stored document for collection with doc. Only one Save
// runs at a time in the process.
func Save(store types.Store, collection string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", collection, err)
	}

	saveMu.Lock()
	defer saveMu.Unlock()

	if err := store.Write(collection, data); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

// Init writes an empty document for every standard collection that has no
// readable document yet. Existing documents are left alone.
func Init(store types.Store) error {
	for _, name := range types.StandardCollections {
		data, err := store.Read(name)
		if err == nil && json.Valid(data) {
			continue
		}
		if err := Save(store, name, types.EmptyDocument(name)); err != nil {
			return err
		}
	}
	return nil
}

// Open validates cfg, creates its data directory and returns the configured
// backend. The caller must Close the returned store.
func Open(cfg types.Config) (types.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	switch cfg.Backend {
	case types.BackendSQLite:
		store, err := OpenSQLite(dataDir)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return NewFileStore(dataDir), nil
	}
}
