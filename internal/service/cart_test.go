package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/giftly/giftcart/internal/cache"
	"github.com/giftly/giftcart/internal/domain"
	"github.com/giftly/giftcart/internal/identity"
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

type cartFixture struct {
	engine   *CartEngine
	identity *identity.Provider
	remote   *portmocks.MockRemoteCart
	local    *portmocks.MockLocalCart
	catalog  *portmocks.MockCatalog
	cache    *cache.ExperienceCache
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	remote := portmocks.NewMockRemoteCart(t)
	local := portmocks.NewMockLocalCart(t)
	catalog := portmocks.NewMockCatalog(t)
	log := newTestLogger(t)

	c := cache.New(catalog, log)
	provider := identity.NewProvider()
	engine := NewCartEngine(provider, remote, local, c, log, time.Second)

	// Cache fills run on background goroutines; lookups may or may not land
	// before the test finishes.
	catalog.EXPECT().GetExperienceByID(mock.Anything, mock.Anything).
		Return(nil, domain.ErrExperienceNotFound).Maybe()

	return &cartFixture{
		engine:   engine,
		identity: provider,
		remote:   remote,
		local:    local,
		catalog:  catalog,
		cache:    c,
	}
}

func TestCartEngine_GuestAdd_IncrementsExistingLine(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	f.local.EXPECT().Save(mock.Anything).Return(nil)

	require.NoError(t, f.engine.AddToCart(ctx, "exp-1"))
	require.NoError(t, f.engine.AddToCart(ctx, "exp-1"))

	items := f.engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "exp-1", items[0].ExperienceID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, f.engine.Summary().ItemCount)
}

func TestCartEngine_GuestAdd_PreservesInsertionOrder(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	f.local.EXPECT().Save(mock.Anything).Return(nil)

	require.NoError(t, f.engine.AddToCart(ctx, "exp-1"))
	require.NoError(t, f.engine.AddToCart(ctx, "exp-2"))
	require.NoError(t, f.engine.AddToCart(ctx, "exp-1"))

	items := f.engine.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "exp-1", items[0].ExperienceID)
	assert.Equal(t, "exp-2", items[1].ExperienceID)
}

func TestCartEngine_Summary_TotalsPricedLines(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	f.catalog.EXPECT().GetExperienceByID(mock.Anything, "exp-1").
		Return(&domain.Experience{ID: "exp-1", Title: "Wine Tasting", Price: 10000}, nil).Once()
	f.catalog.EXPECT().GetExperienceByID(mock.Anything, "exp-2").
		Return(&domain.Experience{ID: "exp-2", Title: "Pottery Class", Price: 5000}, nil).Once()
	require.Empty(t, f.cache.Ensure(ctx, []string{"exp-1", "exp-2"}))

	f.local.EXPECT().Save(mock.Anything).Return(nil)

	require.NoError(t, f.engine.AddToCart(ctx, "exp-1"))
	require.NoError(t, f.engine.AddToCart(ctx, "exp-1"))
	require.NoError(t, f.engine.AddToCart(ctx, "exp-2"))

	summary := f.engine.Summary()
	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, int64(25000), summary.TotalAmount)
	assert.Empty(t, summary.Unpriced)
}

func TestCartEngine_Summary_ReportsUnpricedLines(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	f.local.EXPECT().Save(mock.Anything).Return(nil)

	require.NoError(t, f.engine.AddToCart(ctx, "exp-gone"))

	summary := f.engine.Summary()
	assert.Equal(t, 1, summary.ItemCount)
	assert.Equal(t, int64(0), summary.TotalAmount)
	assert.Equal(t, []string{"exp-gone"}, summary.Unpriced)
}

func TestCartEngine_UpdateQuantity_SetsLine(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	f.local.EXPECT().Save(mock.Anything).Return(nil)

	require.NoError(t, f.engine.AddToCart(ctx, "exp-1"))
	require.NoError(t, f.engine.UpdateQuantity(ctx, "exp-1", 5))

	items := f.engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartEngine_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	f.local.EXPECT().Save(mock.Anything).Return(nil)

	require.NoError(t, f.engine.AddToCart(ctx, "exp-1"))
	require.NoError(t, f.engine.UpdateQuantity(ctx, "exp-1", 0))

	assert.Empty(t, f.engine.Items())
}

func TestCartEngine_ClearCart_Guest(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	f.local.EXPECT().Save(mock.Anything).Return(nil)
	f.local.EXPECT().Clear().Return(nil).Once()

	require.NoError(t, f.engine.AddToCart(ctx, "exp-1"))
	require.NoError(t, f.engine.ClearCart(ctx))

	assert.Empty(t, f.engine.Items())
}

func TestCartEngine_AuthAdd_TrustsStoreQuantity(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().Load(mock.Anything, "user-1").
		Return([]domain.CartItem{{ExperienceID: "exp-1", Quantity: 3}}, nil).Once()
	f.identity.Login("user-1")

	// The store increment is the source of truth, not memory + 1.
	f.remote.EXPECT().AddItem(mock.Anything, "user-1", "exp-1").Return(4, nil).Once()

	require.NoError(t, f.engine.AddToCart(ctx, "exp-1"))

	items := f.engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestCartEngine_AuthAddFailure_LeavesMemoryUntouched(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	f.remote.EXPECT().Load(mock.Anything, "user-1").
		Return([]domain.CartItem{{ExperienceID: "exp-1", Quantity: 2}}, nil).Once()
	f.identity.Login("user-1")

	f.remote.EXPECT().AddItem(mock.Anything, "user-1", "exp-2").
		Return(0, assert.AnError).Once()

	err := f.engine.AddToCart(ctx, "exp-2")
	require.Error(t, err)

	items := f.engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "exp-1", items[0].ExperienceID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartEngine_Login_ReplacesGuestCart(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	f.local.EXPECT().Save(mock.Anything).Return(nil)
	require.NoError(t, f.engine.AddToCart(ctx, "exp-guest"))

	f.remote.EXPECT().Load(mock.Anything, "user-1").
		Return([]domain.CartItem{{ExperienceID: "exp-remote", Quantity: 1}}, nil).Once()
	f.identity.Login("user-1")

	// The guest cart is discarded, never merged.
	items := f.engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "exp-remote", items[0].ExperienceID)
}

func TestCartEngine_Logout_LoadsLocalBlob(t *testing.T) {
	f := newCartFixture(t)

	f.remote.EXPECT().Load(mock.Anything, "user-1").Return(nil, nil).Once()
	f.identity.Login("user-1")

	f.local.EXPECT().Load().
		Return([]domain.CartItem{{ExperienceID: "exp-local", Quantity: 2}}, nil).Once()
	f.identity.Logout()

	items := f.engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "exp-local", items[0].ExperienceID)
}

func TestCartEngine_Rehydrate_LoadFailureStartsEmpty(t *testing.T) {
	f := newCartFixture(t)

	f.local.EXPECT().Load().Return(nil, assert.AnError).Once()

	f.engine.Rehydrate(context.Background())

	assert.Empty(t, f.engine.Items())
}

func TestCartEngine_ConcurrentGuestAdds_NoLostUpdates(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	f.local.EXPECT().Save(mock.Anything).Return(nil)

	const adds = 25
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.engine.AddToCart(ctx, "exp-1"))
		}()
	}
	wg.Wait()

	items := f.engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, adds, items[0].Quantity)
}
