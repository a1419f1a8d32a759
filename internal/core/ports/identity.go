package ports

import (
	"context"

	"github.com/campusxp/experience-api/internal/core/domain"
)

// IdentityProvider manages authentication accounts, custom claims and
// one-time login tokens.
type IdentityProvider interface {
	// CreateAccount returns the new account's uid.
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
	UpdateDisplayName(ctx context.Context, uid, displayName string) error
	SetCustomClaims(ctx context.Context, uid string, claims map[string]string) error
	// CreateLoginToken issues a short-lived token that can be exchanged once.
	CreateLoginToken(ctx context.Context, uid string) (string, error)
	LookupByEmail(ctx context.Context, email string) (*domain.Account, error)
	// ExchangeLoginToken verifies and consumes a token issued by CreateLoginToken.
	ExchangeLoginToken(ctx context.Context, token string) (*domain.Session, error)
}

// AccountRepository is the identity provider's own storage.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	UpdateDisplayName(ctx context.Context, id, displayName string) error
	SetClaims(ctx context.Context, id string, claims map[string]string) error
}
