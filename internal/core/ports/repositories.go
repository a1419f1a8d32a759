package ports

import (
	"context"

	"github.com/campusxp/experience-api/internal/core/domain"
)

// UserRepository persists user profile documents.
type UserRepository interface {
	// FindByID returns domain.ErrNotFound when no document exists.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail returns domain.ErrNotFound when no document has the email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create writes the document at user.ID, replacing any existing one.
	Create(ctx context.Context, user *domain.User) error
	// UpdateName does not check existence up front; a missing document is
	// reported as a plain store error.
	UpdateName(ctx context.Context, id, name string) error
}

// ExperienceFilter narrows List. UnivID is always applied.
type ExperienceFilter struct {
	UnivID  string
	Company string // optional equality filter
}

// ExperienceRepository persists experience documents.
type ExperienceRepository interface {
	// Create stores exp and returns the store-assigned id.
	Create(ctx context.Context, exp *domain.Experience) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Experience, error)
	List(ctx context.Context, filter ExperienceFilter) ([]*domain.Experience, error)
	// Update merge-writes the mutable fields and UpdatedAt. CreatedAt, UID and
	// UnivID are never touched.
	Update(ctx context.Context, exp *domain.Experience) error
	Delete(ctx context.Context, id string) error
}

// UniversityRepository reads university documents.
type UniversityRepository interface {
	FindByID(ctx context.Context, id string) (*domain.University, error)
	List(ctx context.Context) ([]*domain.University, error)
	Upsert(ctx context.Context, univ *domain.University) error
}

// CredentialRepository exposes the api key to secret mapping.
type CredentialRepository interface {
	// Secrets reads the current mapping. Callers must not cache it.
	Secrets(ctx context.Context) (map[string]string, error)
	PutSecret(ctx context.Context, apiKey, secret string) error
}
