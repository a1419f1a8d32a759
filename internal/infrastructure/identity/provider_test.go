package identity

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusxp/experience-api/internal/core/domain"
)

type memAccounts struct {
	mu   sync.Mutex
	byID map[string]*domain.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byID: make(map[string]*domain.Account)}
}

func (m *memAccounts) Create(_ context.Context, a *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == a.Email {
			return domain.ErrAccountExists
		}
	}
	clone := *a
	m.byID[a.ID] = &clone
	return nil
}

func (m *memAccounts) FindByID(_ context.Context, id string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (m *memAccounts) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.byID {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *memAccounts) UpdateDisplayName(_ context.Context, id, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.DisplayName = name
	return nil
}

func (m *memAccounts) SetClaims(_ context.Context, id string, claims map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.Claims = claims
	return nil
}

type memTokens struct {
	mu   sync.Mutex
	uids map[string]string
	ttls map[string]time.Duration
}

func newMemTokens() *memTokens {
	return &memTokens{uids: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (m *memTokens) Remember(_ context.Context, id, uid string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uids[id] = uid
	m.ttls[id] = ttl
	return nil
}

func (m *memTokens) Consume(_ context.Context, id string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	uid, ok := m.uids[id]
	delete(m.uids, id)
	return uid, ok, nil
}

func newTestProvider() (*Provider, *memAccounts, *memTokens) {
	accounts := newMemAccounts()
	tokens := newMemTokens()
	return NewProvider(accounts, tokens, "test-secret", 30*time.Minute), accounts, tokens
}

func TestProvider_CreateAccount(t *testing.T) {
	p, accounts, _ := newTestProvider()
	ctx := context.Background()

	uid, err := p.CreateAccount(ctx, "alice@a.edu", "password1", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	a, err := accounts.FindByID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "alice@a.edu", a.Email)
	assert.Equal(t, "Alice", a.DisplayName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("password1")))

	_, err = p.CreateAccount(ctx, "alice@a.edu", "password2", "Alice Again")
	assert.ErrorIs(t, err, domain.ErrAccountExists)
}

func TestProvider_CreateAccount_RequiresCredentials(t *testing.T) {
	p, _, _ := newTestProvider()

	_, err := p.CreateAccount(context.Background(), "", "password1", "Nobody")
	assert.Error(t, err)
	_, err = p.CreateAccount(context.Background(), "a@a.edu", "", "Nobody")
	assert.Error(t, err)
}

func TestProvider_LoginTokenRoundTrip(t *testing.T) {
	p, _, tokens := newTestProvider()
	ctx := context.Background()

	uid, err := p.CreateAccount(ctx, "alice@a.edu", "password1", "Alice")
	require.NoError(t, err)
	require.NoError(t, p.SetCustomClaims(ctx, uid, map[string]string{"univId": "univA"}))

	token, err := p.CreateLoginToken(ctx, uid)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	for _, ttl := range tokens.ttls {
		assert.Equal(t, 30*time.Minute, ttl)
	}

	sess, err := p.ExchangeLoginToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uid, sess.UID)
	assert.Equal(t, "univA", sess.UnivID)

	// Second exchange of the same token is a replay.
	_, err = p.ExchangeLoginToken(ctx, token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestProvider_ExchangeLoginToken_Expired(t *testing.T) {
	p, _, _ := newTestProvider()
	ctx := context.Background()

	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return issued }

	uid, err := p.CreateAccount(ctx, "alice@a.edu", "password1", "Alice")
	require.NoError(t, err)
	token, err := p.CreateLoginToken(ctx, uid)
	require.NoError(t, err)

	p.now = func() time.Time { return issued.Add(time.Hour) }
	_, err = p.ExchangeLoginToken(ctx, token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestProvider_ExchangeLoginToken_Forged(t *testing.T) {
	p, _, tokens := newTestProvider()
	ctx := context.Background()

	claims := loginClaims{RegisteredClaims: jwt.RegisteredClaims{
		ID:        "forged",
		Issuer:    issuer,
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	require.NoError(t, tokens.Remember(ctx, "forged", "u1", time.Hour))

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = p.ExchangeLoginToken(ctx, forged)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = p.ExchangeLoginToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestProvider_CreateLoginToken_UnknownAccount(t *testing.T) {
	p, _, _ := newTestProvider()

	_, err := p.CreateLoginToken(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestProvider_UpdateDisplayName(t *testing.T) {
	p, _, _ := newTestProvider()
	ctx := context.Background()

	uid, err := p.CreateAccount(ctx, "alice@a.edu", "password1", "Alice")
	require.NoError(t, err)
	require.NoError(t, p.UpdateDisplayName(ctx, uid, "Alicia"))

	a, err := p.LookupByEmail(ctx, "alice@a.edu")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", a.DisplayName)
	assert.Equal(t, uid, a.ID)

	assert.ErrorIs(t, p.UpdateDisplayName(ctx, "ghost", "Nobody"), domain.ErrAccountNotFound)
}
