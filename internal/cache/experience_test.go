package cache

import (
	"context"
	"testing"

	"github.com/giftly/giftcart/internal/domain"
	portmocks "github.com/giftly/giftcart/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestExperienceCache_Ensure_FetchesAndCaches(t *testing.T) {
	catalog := portmocks.NewMockCatalog(t)
	c := New(catalog, newTestLogger(t))
	ctx := context.Background()

	catalog.EXPECT().GetExperienceByID(mock.Anything, "exp-1").
		Return(&domain.Experience{ID: "exp-1", Title: "Wine Tasting", Price: 10000}, nil).Once()

	require.Empty(t, c.Ensure(ctx, []string{"exp-1"}))

	exp, ok := c.Get("exp-1")
	require.True(t, ok)
	assert.Equal(t, "Wine Tasting", exp.Title)

	price, ok := c.Price("exp-1")
	require.True(t, ok)
	assert.Equal(t, int64(10000), price)

	// Second Ensure hits the cache; Once above would fail on a refetch.
	require.Empty(t, c.Ensure(ctx, []string{"exp-1"}))
}

func TestExperienceCache_Ensure_DedupesIDs(t *testing.T) {
	catalog := portmocks.NewMockCatalog(t)
	c := New(catalog, newTestLogger(t))

	catalog.EXPECT().GetExperienceByID(mock.Anything, "exp-1").
		Return(&domain.Experience{ID: "exp-1", Price: 100}, nil).Once()

	require.Empty(t, c.Ensure(context.Background(), []string{"exp-1", "exp-1", "exp-1"}))
}

func TestExperienceCache_Ensure_ReportsMissing(t *testing.T) {
	catalog := portmocks.NewMockCatalog(t)
	c := New(catalog, newTestLogger(t))

	catalog.EXPECT().GetExperienceByID(mock.Anything, "exp-b").
		Return(&domain.Experience{ID: "exp-b", Price: 100}, nil).Once()
	catalog.EXPECT().GetExperienceByID(mock.Anything, "exp-a").
		Return(nil, domain.ErrExperienceNotFound).Once()
	catalog.EXPECT().GetExperienceByID(mock.Anything, "exp-c").
		Return(nil, assert.AnError).Once()

	degraded := c.Ensure(context.Background(), []string{"exp-c", "exp-b", "exp-a"})

	assert.Equal(t, []string{"exp-a", "exp-c"}, degraded)

	_, ok := c.Get("exp-b")
	assert.True(t, ok)
}

func TestExperienceCache_Ensure_NeverOverwrites(t *testing.T) {
	catalog := portmocks.NewMockCatalog(t)
	c := New(catalog, newTestLogger(t))
	ctx := context.Background()

	catalog.EXPECT().GetExperienceByID(mock.Anything, "exp-1").
		Return(&domain.Experience{ID: "exp-1", Price: 100}, nil).Once()
	require.Empty(t, c.Ensure(ctx, []string{"exp-1"}))

	// A later fetch for a different id must not touch the existing entry.
	catalog.EXPECT().GetExperienceByID(mock.Anything, "exp-2").
		Return(&domain.Experience{ID: "exp-2", Price: 200}, nil).Once()
	require.Empty(t, c.Ensure(ctx, []string{"exp-1", "exp-2"}))

	price, ok := c.Price("exp-1")
	require.True(t, ok)
	assert.Equal(t, int64(100), price)
}

func TestExperienceCache_Snapshot_IsACopy(t *testing.T) {
	catalog := portmocks.NewMockCatalog(t)
	c := New(catalog, newTestLogger(t))

	catalog.EXPECT().GetExperienceByID(mock.Anything, "exp-1").
		Return(&domain.Experience{ID: "exp-1", Price: 100}, nil).Once()
	require.Empty(t, c.Ensure(context.Background(), []string{"exp-1"}))

	snap := c.Snapshot()
	require.Len(t, snap, 1)
	delete(snap, "exp-1")

	_, ok := c.Get("exp-1")
	assert.True(t, ok)
}
