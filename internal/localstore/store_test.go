package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/giftly/giftcart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndLoad(t *testing.T) {
	s, err := New(t.TempDir(), "guest")
	require.NoError(t, err)

	items := []domain.CartItem{
		{ExperienceID: "exp-1", Quantity: 2},
		{ExperienceID: "exp-2", Quantity: 1},
	}
	require.NoError(t, s.Save(items))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, items, loaded)
}

func TestStore_Load_MissingBlobIsEmptyCart(t *testing.T) {
	s, err := New(t.TempDir(), "guest")
	require.NoError(t, err)

	items, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestStore_Load_CorruptBlob(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "guest")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "guest.json"), []byte("{not json"), 0o644))

	_, err = s.Load()
	assert.Error(t, err)
}

func TestStore_Save_NilItemsWritesEmptyArray(t *testing.T) {
	s, err := New(t.TempDir(), "guest")
	require.NoError(t, err)

	require.NoError(t, s.Save(nil))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStore_Clear(t *testing.T) {
	s, err := New(t.TempDir(), "guest")
	require.NoError(t, err)

	require.NoError(t, s.Save([]domain.CartItem{{ExperienceID: "exp-1", Quantity: 1}}))
	require.NoError(t, s.Clear())

	items, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, items)

	// Clearing an already-empty store is not an error.
	require.NoError(t, s.Clear())
}

func TestStore_PurgeStale(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "guest")
	require.NoError(t, err)
	require.NoError(t, s.Save([]domain.CartItem{{ExperienceID: "exp-1", Quantity: 1}}))

	stale, err := New(dir, "abandoned")
	require.NoError(t, err)
	require.NoError(t, stale.Save([]domain.CartItem{{ExperienceID: "exp-2", Quantity: 1}}))

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "abandoned.json"), old, old))

	purged, err := s.PurgeStale(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	_, err = os.Stat(filepath.Join(dir, "abandoned.json"))
	assert.True(t, os.IsNotExist(err))

	items, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestStore_PurgeStale_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "guest")
	require.NoError(t, err)

	old := time.Now().Add(-48 * time.Hour)
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("keep me"), 0o644))
	require.NoError(t, os.Chtimes(other, old, old))

	purged, err := s.PurgeStale(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, purged)

	_, err = os.Stat(other)
	assert.NoError(t, err)
}
