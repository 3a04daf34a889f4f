package ports

import "github.com/giftly/giftcart/internal/domain"

// Identity reports the current user and notifies on login/logout
// transitions. Callbacks run synchronously on the goroutine that changed
// the identity.
type Identity interface {
	Current() domain.Identity
	OnChange(fn func(domain.Identity))
}
