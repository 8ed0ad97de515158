package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy-app/booking-api/internal/httperr"
)

func TestMockProviderSeededAccounts(t *testing.T) {
	p := NewMockProvider()
	ctx := context.Background()

	t.Run("demo account", func(t *testing.T) {
		ident, err := p.Login(ctx, "demo@bookeasy.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "Demo", ident.FirstName)
		assert.Equal(t, "User", ident.LastName)
		assert.Equal(t, "+1 (555) 123-4567", ident.Phone)
	})

	t.Run("test account", func(t *testing.T) {
		ident, err := p.Login(ctx, "test@example.com", "test123")
		require.NoError(t, err)
		assert.Equal(t, "Test", ident.FirstName)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := p.Login(ctx, "demo@bookeasy.com", "nope")
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCredentials))
	})

	t.Run("email is case and whitespace insensitive", func(t *testing.T) {
		_, err := p.Login(ctx, "  DEMO@bookeasy.com ", "password123")
		require.NoError(t, err)
	})
}

func TestMockProviderRegister(t *testing.T) {
	p := NewMockProvider()
	ctx := context.Background()

	ident, err := p.Register(ctx, Profile{
		FirstName: "New",
		LastName:  "User",
		Email:     "new@example.com",
		Password:  "secret1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, ident.ID)

	// registered account can log in
	again, err := p.Login(ctx, "new@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, ident.ID, again.ID)

	// and can be looked up by id
	byID, err := p.Lookup(ctx, ident.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", byID.Email)

	// registering the same email twice is refused
	_, err = p.Register(ctx, Profile{Email: "new@example.com", Password: "x"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAccountExists))
}

func TestMockProviderResetPassword(t *testing.T) {
	p := NewMockProvider()
	ctx := context.Background()

	assert.NoError(t, p.ResetPassword(ctx, "demo@bookeasy.com"))

	err := p.ResetPassword(ctx, "unknown@example.com")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCredentials))
}

func TestMockProviderLookupUnknown(t *testing.T) {
	p := NewMockProvider()

	_, err := p.Lookup(context.Background(), "404")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCredentials))
}
