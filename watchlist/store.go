// Package watchlist owns the user's saved-movie collection. The
// collection lives in memory in insertion order and is mirrored to a
// local badger database under one fixed key; every mutation rewrites
// the whole serialized list.
package watchlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// storageKey is the single key the serialized collection lives under.
const storageKey = "flickwatch:watchlist:v1"

// Store holds the watchlist and keeps it synchronized with disk.
type Store struct {
	db     *badger.DB
	logger zerolog.Logger

	mu      sync.RWMutex
	entries []Entry
	index   map[string]struct{}
}

// Open opens (or creates) the database at path and loads the persisted
// collection. A missing or unreadable value is treated as an empty
// watchlist, never as a fatal error.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	return open(opts, logger)
}

// OpenInMemory opens a store backed by an in-memory database. Used in
// tests and by the export command's dry runs.
func OpenInMemory(logger zerolog.Logger) (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	return open(opts, logger)
}

func open(opts badger.Options, logger zerolog.Logger) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open watchlist database: %w", err)
	}

	s := &Store{
		db:     db,
		logger: logger,
		index:  make(map[string]struct{}),
	}
	s.load()
	return s, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// load reads the persisted collection. Absent or unparseable data
// falls back to an empty list; there is no recovery action to offer
// the user, so nothing is surfaced beyond a log line.
func (s *Store) load() {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(storageKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append(raw, val...)
			return nil
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			s.logger.Warn().Err(err).Msg("Failed to read watchlist, starting empty")
		}
		return
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.logger.Warn().Err(err).Msg("Persisted watchlist is unparseable, starting empty")
		return
	}

	s.entries = entries
	for _, e := range entries {
		s.index[e.ImdbID] = struct{}{}
	}
	s.logger.Debug().Int("count", len(entries)).Msg("Loaded watchlist")
}

// persist writes the whole collection under the fixed key. Caller must
// hold the write lock.
func (s *Store) persist() error {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("failed to serialize watchlist: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(storageKey), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to persist watchlist: %w", err)
	}
	return nil
}

// Add appends the entry and persists, unless an entry with the same id
// is already present; duplicates are a silent no-op. Returns whether
// the collection changed.
func (s *Store) Add(entry Entry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[entry.ImdbID]; ok {
		return false, nil
	}

	if entry.AddedAt.IsZero() {
		entry.AddedAt = time.Now()
	}

	s.entries = append(s.entries, entry)
	s.index[entry.ImdbID] = struct{}{}

	if err := s.persist(); err != nil {
		return true, err
	}

	s.logger.Info().
		Str("imdb_id", entry.ImdbID).
		Str("title", entry.Title).
		Msg("Added to watchlist")
	return true, nil
}

// Remove deletes every entry matching id and persists. Removing an
// absent id is a no-op. Returns whether the collection changed.
func (s *Store) Remove(imdbID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[imdbID]; !ok {
		return false, nil
	}

	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ImdbID != imdbID {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	delete(s.index, imdbID)

	if err := s.persist(); err != nil {
		return true, err
	}

	s.logger.Info().Str("imdb_id", imdbID).Msg("Removed from watchlist")
	return true, nil
}

// Contains reports whether an entry with the given id is saved.
func (s *Store) Contains(imdbID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[imdbID]
	return ok
}

// All returns the entries in insertion order.
func (s *Store) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of saved entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
