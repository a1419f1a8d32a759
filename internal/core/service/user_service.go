package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusxp/experience-api/internal/core/domain"
	"github.com/campusxp/experience-api/internal/core/ports"
	"github.com/campusxp/experience-api/internal/metrics"
)

// UserService implements registration and profile operations.
type UserService struct {
	users    ports.UserRepository
	univs    ports.UniversityRepository
	identity ports.IdentityProvider
	log      zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	univs ports.UniversityRepository,
	identity ports.IdentityProvider,
	log zerolog.Logger,
) *UserService {
	return &UserService{users: users, univs: univs, identity: identity, log: log}
}

// Register creates the identity account and the matching user document, then
// returns a one-time login token. Steps after account creation are not rolled
// back when a later one fails.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	// 1. Email must not belong to an existing user.
	_, err := s.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		metrics.RegistrationsTotal.WithLabelValues("email_taken").Inc()
		return "", domain.ErrEmailRegistered
	case !errors.Is(err, domain.ErrNotFound):
		return "", fmt.Errorf("register: lookup email: %w", err)
	}

	// An account without a user document is left behind by a registration
	// that failed after CreateAccount. The email is still taken.
	_, err = s.identity.LookupByEmail(ctx, in.Email)
	switch {
	case err == nil:
		metrics.RegistrationsTotal.WithLabelValues("email_taken").Inc()
		s.log.Warn().Str("email", in.Email).Msg("identity account exists without user document")
		return "", domain.ErrEmailRegistered
	case !errors.Is(err, domain.ErrAccountNotFound):
		return "", s.providerFailure("lookup account", err)
	}

	// 2. University must exist and accept the email domain.
	univ, err := s.univs.FindByID(ctx, in.UnivID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.RegistrationsTotal.WithLabelValues("unknown_university").Inc()
			return "", domain.ErrUnknownUniv
		}
		return "", fmt.Errorf("register: lookup university: %w", err)
	}
	if !univ.AcceptsEmail(in.Email) {
		metrics.RegistrationsTotal.WithLabelValues("email_domain").Inc()
		return "", domain.ErrEmailDomain
	}

	// 3. Identity account, profile document, claims, token.
	uid, err := s.identity.CreateAccount(ctx, in.Email, in.Password, in.Name)
	if err != nil {
		return "", s.providerFailure("create account", err)
	}

	user := &domain.User{ID: uid, Name: in.Name, Email: in.Email, UnivID: in.UnivID}
	if err := s.users.Create(ctx, user); err != nil {
		return "", s.providerFailure("create user document", err)
	}

	if err := s.identity.SetCustomClaims(ctx, uid, map[string]string{"univId": in.UnivID}); err != nil {
		return "", s.providerFailure("set custom claims", err)
	}

	token, err := s.identity.CreateLoginToken(ctx, uid)
	if err != nil {
		return "", s.providerFailure("create login token", err)
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("uid", uid).Str("univ_id", in.UnivID).Msg("user registered")
	return token, nil
}

// UpdateName renames the caller. A caller may only rename itself; any other id
// is rejected without revealing whether it exists.
func (s *UserService) UpdateName(ctx context.Context, callerUID, id, name string) error {
	if callerUID != id {
		return domain.ErrIdentityMismatch
	}

	if err := s.identity.UpdateDisplayName(ctx, id, name); err != nil {
		return s.providerFailure("update display name", err)
	}

	if err := s.users.UpdateName(ctx, id, name); err != nil {
		return fmt.Errorf("update user %s: %w", id, err)
	}

	s.log.Info().Str("uid", id).Msg("user renamed")
	return nil
}

func (s *UserService) Get(ctx context.Context, id string) (*ports.UserProfile, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.UserProfile{ID: u.ID, Name: u.Name}, nil
}

// ExchangeSession redeems a login token issued at registration.
func (s *UserService) ExchangeSession(ctx context.Context, token string) (*domain.Session, error) {
	sess, err := s.identity.ExchangeLoginToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) {
			return nil, domain.ErrInvalidSession
		}
		return nil, fmt.Errorf("exchange session: %w", err)
	}
	return sess, nil
}

func (s *UserService) providerFailure(op string, err error) error {
	s.log.Warn().Err(err).Str("op", op).Msg("identity step failed")
	metrics.IdentityFailuresTotal.WithLabelValues(op).Inc()
	return &domain.ProviderError{Op: op, Err: err}
}
