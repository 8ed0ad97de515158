package identity

import (
	"context"
	"sync"

	"github.com/bookeasy-app/booking-api/internal/domain/booking"
)

// Gateway owns the current session for one embedded client (a single app
// instance). Session changes are pushed to subscribers; consumers read the
// identity, they never poll or mutate it.
type Gateway struct {
	provider Provider

	mu      sync.Mutex
	current *booking.Identity
	subs    map[int]func(*booking.Identity)
	nextSub int
}

func NewGateway(provider Provider) *Gateway {
	return &Gateway{
		provider: provider,
		subs:     make(map[int]func(*booking.Identity)),
	}
}

func (g *Gateway) Login(
	ctx context.Context,
	email string,
	password string,
) (*booking.Identity, error) {

	ident, err := g.provider.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	g.setCurrent(ident)
	return ident, nil
}

func (g *Gateway) Register(
	ctx context.Context,
	p Profile,
) (*booking.Identity, error) {

	ident, err := g.provider.Register(ctx, p)
	if err != nil {
		return nil, err
	}

	g.setCurrent(ident)
	return ident, nil
}

func (g *Gateway) Logout(ctx context.Context) {
	g.setCurrent(nil)
}

func (g *Gateway) ResetPassword(ctx context.Context, email string) error {
	return g.provider.ResetPassword(ctx, email)
}

// Current satisfies the wizard's session source: identity is read at
// finalize time only.
func (g *Gateway) Current(ctx context.Context) (*booking.Identity, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current, nil
}

// OnSessionChange registers a subscriber. The callback fires immediately
// with the current session, then on every change. The returned function
// unsubscribes.
func (g *Gateway) OnSessionChange(fn func(*booking.Identity)) func() {
	g.mu.Lock()
	id := g.nextSub
	g.nextSub++
	g.subs[id] = fn
	current := g.current
	g.mu.Unlock()

	fn(current)

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.subs, id)
	}
}

func (g *Gateway) setCurrent(ident *booking.Identity) {
	g.mu.Lock()
	g.current = ident
	subs := make([]func(*booking.Identity), 0, len(g.subs))
	for _, fn := range g.subs {
		subs = append(subs, fn)
	}
	g.mu.Unlock()

	for _, fn := range subs {
		fn(ident)
	}
}
