package service

import (
	"context"
	"fmt"

	"github.com/campusxp/experience-api/internal/core/domain"
	"github.com/campusxp/experience-api/internal/core/ports"
)

// UniversityService serves the read-only university directory.
type UniversityService struct {
	repo ports.UniversityRepository
}

func NewUniversityService(repo ports.UniversityRepository) *UniversityService {
	return &UniversityService{repo: repo}
}

func (s *UniversityService) List(ctx context.Context) ([]*domain.University, error) {
	univs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list universities: %w", err)
	}
	return univs, nil
}

func (s *UniversityService) Get(ctx context.Context, id string) (*domain.University, error) {
	return s.repo.FindByID(ctx, id)
}
