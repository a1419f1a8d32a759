package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusxp/experience-api/internal/core/domain"
	"github.com/campusxp/experience-api/internal/core/ports"
	"github.com/campusxp/experience-api/internal/metrics"
)

type ExperienceService struct {
	repo   ports.ExperienceRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewExperienceService(repo ports.ExperienceRepository, logger zerolog.Logger) *ExperienceService {
	return &ExperienceService{repo: repo, logger: logger, now: storeNow}
}

// storeNow is the current UTC time at the store's millisecond resolution, so
// a value read back equals the value written.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Create stores a new experience owned by uid in tenant univID. The identity
// headers are trusted as-is; the gatekeeper has already required them.
func (s *ExperienceService) Create(ctx context.Context, uid, univID string, in ports.ExperienceInput) (string, error) {
	now := s.now()
	exp := &domain.Experience{
		Company:   in.Company,
		Role:      in.Role,
		Location:  in.Location,
		Summary:   in.Summary,
		Status:    in.Status,
		UID:       uid,
		UnivID:    univID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Create(ctx, exp)
	if err != nil {
		return "", fmt.Errorf("create experience: %w", err)
	}

	metrics.ExperienceMutationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("experience_id", id).Str("uid", uid).Str("univ_id", univID).Msg("experience created")
	return id, nil
}

func (s *ExperienceService) Get(ctx context.Context, id string) (*ports.ExperienceView, error) {
	exp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toView(exp), nil
}

// List returns the tenant's experiences, optionally narrowed to one company.
func (s *ExperienceService) List(ctx context.Context, univID, company string) ([]*ports.ExperienceView, error) {
	exps, err := s.repo.List(ctx, ports.ExperienceFilter{UnivID: univID, Company: company})
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}

	views := make([]*ports.ExperienceView, 0, len(exps))
	for _, e := range exps {
		views = append(views, toView(e))
	}
	return views, nil
}

// Update overwrites the mutable fields of an experience owned by uid.
func (s *ExperienceService) Update(ctx context.Context, uid, id string, in ports.ExperienceInput) error {
	exp, err := s.owned(ctx, uid, id)
	if err != nil {
		return err
	}

	exp.Company = in.Company
	exp.Role = in.Role
	exp.Location = in.Location
	exp.Summary = in.Summary
	exp.Status = in.Status
	exp.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, exp); err != nil {
		return fmt.Errorf("update experience %s: %w", id, err)
	}

	metrics.ExperienceMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Str("experience_id", id).Str("uid", uid).Msg("experience updated")
	return nil
}

// Delete removes an experience owned by uid.
func (s *ExperienceService) Delete(ctx context.Context, uid, id string) error {
	if _, err := s.owned(ctx, uid, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete experience %s: %w", id, err)
	}

	metrics.ExperienceMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("experience_id", id).Str("uid", uid).Msg("experience deleted")
	return nil
}

// owned loads an experience and checks that uid owns it.
func (s *ExperienceService) owned(ctx context.Context, uid, id string) (*domain.Experience, error) {
	exp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exp.OwnedBy(uid) {
		metrics.OwnershipDenialsTotal.Inc()
		s.logger.Warn().Str("experience_id", id).Str("uid", uid).Msg("ownership check failed")
		return nil, domain.ErrNotOwner
	}
	return exp, nil
}

func toView(e *domain.Experience) *ports.ExperienceView {
	return &ports.ExperienceView{
		ID:        e.ID,
		Company:   e.Company,
		Role:      e.Role,
		Location:  e.Location,
		Summary:   e.Summary,
		Status:    e.Status,
		UID:       e.UID,
		UnivID:    e.UnivID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
