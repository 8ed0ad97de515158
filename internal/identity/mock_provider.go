package identity

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/httperr"
)

// MockProvider is the in-memory identity provider used for demos and tests.
// Credentials live in plain text here on purpose: this is a stand-in, never
// a production store.
type MockProvider struct {
	mu     sync.Mutex
	nextID int
	users  []mockUser
}

type mockUser struct {
	id       string
	email    string
	password string
	identity booking.Identity
}

// NewMockProvider seeds the demo accounts the mobile app ships with.
func NewMockProvider() *MockProvider {
	p := &MockProvider{nextID: 1}

	p.seed("demo@bookeasy.com", "password123", "Demo", "User", "+1 (555) 123-4567")
	p.seed("test@example.com", "test123", "Test", "Account", "+1 (555) 987-6543")

	return p
}

func (p *MockProvider) seed(email, password, first, last, phone string) {
	id := fmt.Sprintf("%d", p.nextID)
	p.nextID++

	p.users = append(p.users, mockUser{
		id:       id,
		email:    email,
		password: password,
		identity: booking.Identity{
			ID:        id,
			Email:     email,
			FirstName: first,
			LastName:  last,
			Phone:     phone,
		},
	})
}

func (p *MockProvider) Login(
	ctx context.Context,
	email string,
	password string,
) (*booking.Identity, error) {

	p.mu.Lock()
	defer p.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))

	for _, u := range p.users {
		if u.email == email && u.password == password {
			ident := u.identity
			return &ident, nil
		}
	}

	return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
}

func (p *MockProvider) Register(
	ctx context.Context,
	in Profile,
) (*booking.Identity, error) {

	p.mu.Lock()
	defer p.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(in.Email))

	for _, u := range p.users {
		if u.email == email {
			return nil, httperr.ErrBusiness(httperr.CodeAccountExists)
		}
	}

	id := fmt.Sprintf("%d", p.nextID)
	p.nextID++

	u := mockUser{
		id:       id,
		email:    email,
		password: in.Password,
		identity: booking.Identity{
			ID:        id,
			Email:     email,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Phone:     in.Phone,
		},
	}
	p.users = append(p.users, u)

	ident := u.identity
	return &ident, nil
}

func (p *MockProvider) ResetPassword(ctx context.Context, email string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))

	for _, u := range p.users {
		if u.email == email {
			return nil
		}
	}

	return httperr.ErrBusiness(httperr.CodeInvalidCredentials)
}

func (p *MockProvider) Lookup(
	ctx context.Context,
	id string,
) (*booking.Identity, error) {

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, u := range p.users {
		if u.id == id {
			ident := u.identity
			return &ident, nil
		}
	}

	return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
}

// Compile-time check
var _ Provider = (*MockProvider)(nil)
