package identity

import (
	"testing"

	"github.com/giftly/giftcart/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProvider_StartsAnonymous(t *testing.T) {
	p := NewProvider()

	ident := p.Current()
	assert.False(t, ident.Authenticated())
	assert.Empty(t, ident.UserID)
}

func TestProvider_LoginAndLogout(t *testing.T) {
	p := NewProvider()

	p.Login("user-1")
	ident := p.Current()
	assert.True(t, ident.Authenticated())
	assert.Equal(t, "user-1", ident.UserID)

	p.Logout()
	assert.False(t, p.Current().Authenticated())
}

func TestProvider_NotifiesSubscribersInOrder(t *testing.T) {
	p := NewProvider()

	var seen []string
	p.OnChange(func(id domain.Identity) {
		seen = append(seen, "first:"+id.UserID)
	})
	p.OnChange(func(id domain.Identity) {
		seen = append(seen, "second:"+id.UserID)
	})

	p.Login("user-1")
	p.Logout()

	assert.Equal(t, []string{"first:user-1", "second:user-1", "first:", "second:"}, seen)
}

func TestProvider_SkipsNoOpChanges(t *testing.T) {
	p := NewProvider()

	calls := 0
	p.OnChange(func(domain.Identity) { calls++ })

	p.Login("user-1")
	p.Login("user-1") // same identity, no notification
	p.Logout()
	p.Logout() // already anonymous

	assert.Equal(t, 2, calls)
}
