package identity

import (
	"sync"

	"github.com/giftly/giftcart/internal/domain"
)

// Provider holds the session identity and fans out change notifications.
// Subscribers are invoked synchronously, in registration order, so a cart
// re-hydration completes before the login call returns.
type Provider struct {
	mu      sync.RWMutex
	current domain.Identity
	subs    []func(domain.Identity)
}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Current() domain.Identity {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

func (p *Provider) OnChange(fn func(domain.Identity)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, fn)
}

func (p *Provider) Login(userID string) {
	p.set(domain.Identity{UserID: userID})
}

func (p *Provider) Logout() {
	p.set(domain.Identity{})
}

func (p *Provider) set(id domain.Identity) {
	p.mu.Lock()
	if p.current == id {
		p.mu.Unlock()
		return
	}
	p.current = id
	subs := make([]func(domain.Identity), len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	for _, fn := range subs {
		fn(id)
	}
}
