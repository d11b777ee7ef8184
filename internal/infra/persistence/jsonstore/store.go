// Package jsonstore implements the persistence layer on top of a single
// flat-file JSON document holding five named collections. The whole document
// lives in memory behind an RWMutex and is rewritten to disk after every
// mutation. There is no transactional isolation; read-modify-write races
// between concurrent requests are an accepted property of the prototype.
package jsonstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/gwanzi/dog-marketplace/config"
	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
)

// document is the in-memory mirror of the datastore file.
type document struct {
	Users    []*userRecord     `json:"users"`
	Products []*entity.Product `json:"products"`
	Vendors  []*entity.Vendor  `json:"vendors"`
	Vets     []*entity.Vet     `json:"vets"`
	Orders   []*entity.Order   `json:"orders"`
}

// Store owns the document and its file mirror. Repositories share one Store.
type Store struct {
	path   string
	logger *slog.Logger

	mu  sync.RWMutex
	doc *document
}

// New loads the document from the configured path. A missing file yields an
// empty document; the file is created on the first write.
func New(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	store := &Store{
		path:   cfg.Store.Path,
		logger: logger,
		doc:    &document{},
	}

	raw, err := os.ReadFile(store.path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("Datastore file not found, starting empty", slog.String("path", store.path))

		return store, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read datastore file")
	}

	if err := json.Unmarshal(raw, store.doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode datastore file %s", store.path)
	}

	return store, nil
}

// view runs fn under the read lock. fn must not retain references to
// document contents beyond the call.
func (s *Store) view(fn func(doc *document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.doc)
}

// update runs fn under the write lock and, if it succeeds, persists the
// whole document to disk.
func (s *Store) update(fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.doc); err != nil {
		return err
	}

	return s.flush()
}

// flush writes the document via a temp file and rename so a crash mid-write
// never leaves a truncated datastore behind. Caller must hold the write lock.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode datastore document")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create datastore directory")
	}

	tmp, err := os.CreateTemp(dir, ".marketplace-*.json")
	if err != nil {
		return errors.Wrap(err, "failed to create datastore temp file")
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrap(err, "failed to write datastore temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "failed to close datastore temp file")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "failed to replace datastore file")
	}

	return nil
}
