// Package identity is the service's identity provider: it owns authentication
// accounts, their custom claims, and short-lived login tokens.
//
// Login tokens are HS256 JWTs. Each carries a unique id that is registered in a
// TokenStore when issued and consumed on exchange, so a token works once.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusxp/experience-api/internal/core/domain"
	"github.com/campusxp/experience-api/internal/core/ports"
)

const (
	issuer     = "campusxp-identity"
	defaultTTL = time.Hour
)

// TokenStore remembers issued login token ids until they are consumed or expire.
type TokenStore interface {
	Remember(ctx context.Context, tokenID, uid string, ttl time.Duration) error
	Consume(ctx context.Context, tokenID string) (uid string, ok bool, err error)
}

type loginClaims struct {
	Claims map[string]string `json:"claims,omitempty"`
	jwt.RegisteredClaims
}

// Provider implements ports.IdentityProvider.
type Provider struct {
	accounts ports.AccountRepository
	tokens   TokenStore
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewProvider(accounts ports.AccountRepository, tokens TokenStore, secret string, tokenTTL time.Duration) *Provider {
	if tokenTTL <= 0 {
		tokenTTL = defaultTTL
	}
	return &Provider{
		accounts: accounts,
		tokens:   tokens,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

// CreateAccount hashes the password and stores a new account under a fresh
// ULID. An email that already has an account is rejected.
func (p *Provider) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New("email and password are required")
	}

	if _, err := p.accounts.FindByEmail(ctx, email); err == nil {
		return "", domain.ErrAccountExists
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := p.now().UTC()
	account := &domain.Account{
		ID:           ulid.Make().String(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.accounts.Create(ctx, account); err != nil {
		return "", err
	}
	return account.ID, nil
}

func (p *Provider) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	return p.accounts.UpdateDisplayName(ctx, uid, displayName)
}

func (p *Provider) SetCustomClaims(ctx context.Context, uid string, claims map[string]string) error {
	return p.accounts.SetClaims(ctx, uid, claims)
}

func (p *Provider) LookupByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return p.accounts.FindByEmail(ctx, email)
}

// CreateLoginToken signs a token for uid embedding the account's custom claims
// and registers its id for a single exchange.
func (p *Provider) CreateLoginToken(ctx context.Context, uid string) (string, error) {
	account, err := p.accounts.FindByID(ctx, uid)
	if err != nil {
		return "", err
	}

	now := p.now()
	claims := loginClaims{
		Claims: account.Claims,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        ulid.Make().String(),
			Issuer:    issuer,
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign login token: %w", err)
	}

	if err := p.tokens.Remember(ctx, claims.ID, uid, p.tokenTTL); err != nil {
		return "", err
	}
	return signed, nil
}

// ExchangeLoginToken verifies a token and consumes its id. Bad signatures,
// expired tokens and replays all report domain.ErrTokenInvalid.
func (p *Provider) ExchangeLoginToken(ctx context.Context, token string) (*domain.Session, error) {
	var claims loginClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, domain.ErrTokenInvalid
	}

	uid, ok, err := p.tokens.Consume(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !ok || uid != claims.Subject {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.Session{UID: uid, UnivID: claims.Claims["univId"]}, nil
}
