package ports

import (
	"context"
	"time"

	"github.com/campusxp/experience-api/internal/core/domain"
)

// RegisterInput carries a validated registration payload.
type RegisterInput struct {
	Email    string
	Password string
	UnivID   string
	Name     string
}

// UserProfile is the public view of a user. Email and university are withheld.
type UserProfile struct {
	ID   string
	Name string
}

// UserService implements the user resource.
type UserService interface {
	// Register returns a one-time session token for the new account.
	Register(ctx context.Context, in RegisterInput) (string, error)
	// UpdateName requires callerUID == id.
	UpdateName(ctx context.Context, callerUID, id, name string) error
	Get(ctx context.Context, id string) (*UserProfile, error)
	ExchangeSession(ctx context.Context, token string) (*domain.Session, error)
}

// ExperienceInput is the mutable part of an experience.
type ExperienceInput struct {
	Company  string
	Role     string
	Location string
	Summary  string
	Status   string
}

// ExperienceView is an experience as returned to clients.
type ExperienceView struct {
	ID        string
	Company   string
	Role      string
	Location  string
	Summary   string
	Status    string
	UID       string
	UnivID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExperienceService implements the experience resource. uid and univID come
// from the request's identity headers.
type ExperienceService interface {
	Create(ctx context.Context, uid, univID string, in ExperienceInput) (string, error)
	Get(ctx context.Context, id string) (*ExperienceView, error)
	List(ctx context.Context, univID, company string) ([]*ExperienceView, error)
	Update(ctx context.Context, uid, id string, in ExperienceInput) error
	Delete(ctx context.Context, uid, id string) error
}

// UniversityService implements the read-only university resource.
type UniversityService interface {
	List(ctx context.Context) ([]*domain.University, error)
	Get(ctx context.Context, id string) (*domain.University, error)
}
