package watchlist

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory(zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func entry(id, title string, year int) Entry {
	return Entry{ImdbID: id, Title: title, Year: year}
}

func TestAddIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	added, err := s.Add(entry("tt0133093", "The Matrix", 1999))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.Add(entry("tt0133093", "The Matrix", 1999))
	require.NoError(t, err)
	assert.False(t, added)

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains("tt0133093"))
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add(entry("tt0133093", "The Matrix", 1999))
	require.NoError(t, err)
	_, err = s.Add(entry("tt0234215", "The Matrix Reloaded", 2003))
	require.NoError(t, err)

	t.Run("absent id is a no-op", func(t *testing.T) {
		removed, err := s.Remove("tt9999999")
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("present id shrinks by one", func(t *testing.T) {
		removed, err := s.Remove("tt0133093")
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, 1, s.Len())
		assert.False(t, s.Contains("tt0133093"))
		assert.True(t, s.Contains("tt0234215"))
	})
}

func TestOrderSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	logger := zerolog.Nop()

	ids := []string{"tt0076759", "tt0080684", "tt0086190"}
	titles := []string{"Star Wars", "The Empire Strikes Back", "Return of the Jedi"}

	s, err := Open(dir, logger)
	require.NoError(t, err)
	for i, id := range ids {
		_, err := s.Add(Entry{ImdbID: id, Title: titles[i], AddedAt: time.Now()})
		require.NoError(t, err)
	}
	require.NoError(t, s.Close())

	reopened, err := Open(dir, logger)
	require.NoError(t, err)
	defer reopened.Close()

	entries := reopened.All()
	require.Len(t, entries, len(ids))
	for i, e := range entries {
		assert.Equal(t, ids[i], e.ImdbID)
		assert.Equal(t, titles[i], e.Title)
	}
}

func TestUnparseablePersistedDataFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	logger := zerolog.Nop()

	s, err := Open(dir, logger)
	require.NoError(t, err)
	_, err = s.Add(entry("tt0133093", "The Matrix", 1999))
	require.NoError(t, err)

	// clobber the stored value with garbage
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(storageKey), []byte("{not json"))
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(dir, logger)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, 0, reopened.Len())
	assert.Empty(t, reopened.All())
}

func TestAllReturnsACopy(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Add(entry("tt0133093", "The Matrix", 1999))
	require.NoError(t, err)

	entries := s.All()
	entries[0].Title = "mutated"

	assert.Equal(t, "The Matrix", s.All()[0].Title)
}

func TestAddStampsAddedAt(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Add(entry("tt0133093", "The Matrix", 1999))
	require.NoError(t, err)

	assert.False(t, s.All()[0].AddedAt.IsZero())
}
