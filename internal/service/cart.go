package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/giftly/giftcart/internal/cache"
	"github.com/giftly/giftcart/internal/domain"
	"github.com/giftly/giftcart/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultBackendTimeout = 5 * time.Second

// CartEngine is the canonical in-memory cart, kept consistent with the
// backing store selected by identity state: the remote per-user store when
// authenticated, the local serialized blob when anonymous.
//
// Mutations to a single experience id are serialized through a per-key
// mutex, and the remote add is an atomic store-side increment, so two
// concurrent adds never lose an update. In authenticated mode memory is
// updated only after the store call succeeds; in anonymous mode memory is
// updated optimistically and the whole cart is serialized afterward.
type CartEngine struct {
	identity ports.Identity
	remote   ports.RemoteCart
	local    ports.LocalCart
	cache    *cache.ExperienceCache
	log      logger.Logger
	timeout  time.Duration

	mu    sync.RWMutex
	items []domain.CartItem

	keys keyedMutex
}

func NewCartEngine(
	identity ports.Identity,
	remote ports.RemoteCart,
	local ports.LocalCart,
	cache *cache.ExperienceCache,
	log logger.Logger,
	backendTimeout time.Duration,
) *CartEngine {
	if backendTimeout <= 0 {
		backendTimeout = defaultBackendTimeout
	}
	e := &CartEngine{
		identity: identity,
		remote:   remote,
		local:    local,
		cache:    cache,
		log:      log,
		timeout:  backendTimeout,
	}
	// Re-hydrate wholesale on login/logout. The previous cart is discarded,
	// never merged: a guest cart does not follow the user across login.
	identity.OnChange(func(domain.Identity) {
		e.Rehydrate(context.Background())
	})
	return e
}

// Rehydrate replaces the in-memory cart with the contents of the backing
// store for the current identity. A load failure yields an empty cart and a
// logged warning rather than an error: the storefront stays usable.
func (e *CartEngine) Rehydrate(ctx context.Context) {
	ident := e.identity.Current()

	var (
		items []domain.CartItem
		err   error
	)
	if ident.Authenticated() {
		opCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()
		items, err = e.remote.Load(opCtx, ident.UserID)
	} else {
		items, err = e.local.Load()
	}
	if err != nil {
		e.log.Warn("cart load failed, starting empty",
			logger.String("user_id", ident.UserID),
			logger.String("error", err.Error()),
		)
		items = nil
	}

	e.mu.Lock()
	e.items = items
	e.mu.Unlock()

	e.fillCacheAsync(ctx, e.experienceIDs())
}

// AddToCart adds one unit of the experience, creating the line at quantity 1
// or incrementing an existing line. It never creates a duplicate line.
func (e *CartEngine) AddToCart(ctx context.Context, experienceID string) error {
	unlock := e.keys.lock(experienceID)
	defer unlock()

	ident := e.identity.Current()
	if ident.Authenticated() {
		opCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()
		qty, err := e.remote.AddItem(opCtx, ident.UserID, experienceID)
		if err != nil {
			return fmt.Errorf("add cart item: %w", err)
		}
		e.apply(experienceID, qty)
	} else {
		e.apply(experienceID, e.quantity(experienceID)+1)
		e.saveLocal()
	}

	e.fillCacheAsync(ctx, []string{experienceID})
	return nil
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less is
// equivalent to removing the line.
func (e *CartEngine) UpdateQuantity(ctx context.Context, experienceID string, quantity int) error {
	if quantity <= 0 {
		return e.RemoveFromCart(ctx, experienceID)
	}

	unlock := e.keys.lock(experienceID)
	defer unlock()

	ident := e.identity.Current()
	if ident.Authenticated() {
		opCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()
		if err := e.remote.SetQuantity(opCtx, ident.UserID, experienceID, quantity); err != nil {
			return fmt.Errorf("set cart quantity: %w", err)
		}
		e.apply(experienceID, quantity)
	} else {
		e.apply(experienceID, quantity)
		e.saveLocal()
	}

	e.fillCacheAsync(ctx, []string{experienceID})
	return nil
}

func (e *CartEngine) RemoveFromCart(ctx context.Context, experienceID string) error {
	unlock := e.keys.lock(experienceID)
	defer unlock()

	ident := e.identity.Current()
	if ident.Authenticated() {
		opCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()
		if err := e.remote.RemoveItem(opCtx, ident.UserID, experienceID); err != nil {
			return fmt.Errorf("remove cart item: %w", err)
		}
		e.apply(experienceID, 0)
	} else {
		e.apply(experienceID, 0)
		e.saveLocal()
	}
	return nil
}

func (e *CartEngine) ClearCart(ctx context.Context) error {
	ident := e.identity.Current()
	if ident.Authenticated() {
		opCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()
		if err := e.remote.Clear(opCtx, ident.UserID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
	} else if err := e.local.Clear(); err != nil {
		e.log.Warn("clear local cart blob", logger.String("error", err.Error()))
	}

	e.mu.Lock()
	e.items = nil
	e.mu.Unlock()
	return nil
}

// Items returns a copy of the current cart lines.
func (e *CartEngine) Items() []domain.CartItem {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]domain.CartItem, len(e.items))
	copy(out, e.items)
	return out
}

// Summary derives item count and total price from the cart and the
// experience cache.
func (e *CartEngine) Summary() domain.CartSummary {
	return Summarize(e.Items(), e.cache.Snapshot())
}

// CachedExperiences exposes the metadata cache for display purposes.
func (e *CartEngine) CachedExperiences() map[string]domain.Experience {
	return e.cache.Snapshot()
}

// apply sets the in-memory quantity for a line, removing it when qty <= 0.
// Line order is insertion order, matching what the shopper saw.
func (e *CartEngine) apply(experienceID string, qty int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].ExperienceID != experienceID {
			continue
		}
		if qty <= 0 {
			e.items = append(e.items[:i], e.items[i+1:]...)
		} else {
			e.items[i].Quantity = qty
		}
		return
	}
	if qty > 0 {
		e.items = append(e.items, domain.CartItem{ExperienceID: experienceID, Quantity: qty})
	}
}

func (e *CartEngine) quantity(experienceID string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, item := range e.items {
		if item.ExperienceID == experienceID {
			return item.Quantity
		}
	}
	return 0
}

func (e *CartEngine) experienceIDs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ids := make([]string, 0, len(e.items))
	for _, item := range e.items {
		ids = append(ids, item.ExperienceID)
	}
	return ids
}

// saveLocal serializes the full cart to the local blob. Local writes are
// synchronous and best-effort: a failure is logged, memory stays applied.
func (e *CartEngine) saveLocal() {
	if err := e.local.Save(e.Items()); err != nil {
		e.log.Warn("persist local cart", logger.String("error", err.Error()))
	}
}

// fillCacheAsync populates the experience cache for ids not yet cached.
// Runs detached from the request context; a re-hydration that happens
// meanwhile is harmless because the cache only grows and never overwrites.
func (e *CartEngine) fillCacheAsync(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}
	go func() {
		fillCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
		defer cancel()
		if degraded := e.cache.Ensure(fillCtx, ids); len(degraded) > 0 {
			e.log.Warn("cart lines without catalog data",
				logger.Any("experience_ids", degraded),
			)
		}
	}()
}

// keyedMutex hands out one mutex per experience id.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
