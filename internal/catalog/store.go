package catalog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Store owns the application state: the last good product list and the
// outcome of the most recent load. Handlers share a single Store; nothing
// lives in package-level mutable globals.
type Store struct {
	loader Loader
	logger *zap.Logger

	group singleflight.Group

	mu       sync.RWMutex
	records  []Product
	loadedAt time.Time
	lastErr  error
}

// NewStore wires a Store to its feed loader.
func NewStore(loader Loader, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{loader: loader, logger: logger}
}

// Refresh loads the feed and replaces the held records on success. Failure
// keeps the last good records, remembers the error, and returns both.
// Concurrent callers share a single in-flight load.
func (s *Store) Refresh(ctx context.Context) ([]Product, error) {
	v, err, _ := s.group.Do("feed", func() (any, error) {
		records, loadErr := s.loader.Load(ctx)
		s.mu.Lock()
		defer s.mu.Unlock()
		if loadErr != nil {
			s.lastErr = loadErr
			return nil, loadErr
		}
		s.records = records
		s.loadedAt = time.Now()
		s.lastErr = nil
		return records, nil
	})
	if err != nil {
		s.logger.Warn("feed refresh failed", zap.Error(err))
		return s.Records(), err
	}
	records := v.([]Product)
	s.logger.Info("feed refreshed", zap.Int("records", len(records)))
	return records, nil
}

// Snapshot returns the held records and the most recent load error without
// touching the network. Fragment requests derive from the snapshot.
func (s *Store) Snapshot() ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.lastErr
}

// Records returns the held records.
func (s *Store) Records() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// LoadedAt reports when the held records were last replaced.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
