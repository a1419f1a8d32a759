package handler

import (
	"github.com/campusxp/experience-api/internal/core/domain"
	"github.com/campusxp/experience-api/internal/core/ports"
)

// --- Request → Service input ---

func toExperienceInput(r *experienceRequest) ports.ExperienceInput {
	return ports.ExperienceInput{
		Company:  r.Company,
		Role:     r.Role,
		Location: r.Location,
		Summary:  r.Summary,
		Status:   r.Status,
	}
}

func toRegisterInput(r *createUserRequest) ports.RegisterInput {
	return ports.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		UnivID:   r.UnivID,
		Name:     r.Name,
	}
}

// --- Service result → HTTP response ---

func toExperienceResponse(v *ports.ExperienceView) experienceResponse {
	return experienceResponse{
		ID:        v.ID,
		Company:   v.Company,
		Role:      v.Role,
		Location:  v.Location,
		Summary:   v.Summary,
		Status:    v.Status,
		UID:       v.UID,
		UnivID:    v.UnivID,
		CreatedAt: v.CreatedAt.UTC(),
		UpdatedAt: v.UpdatedAt.UTC(),
	}
}

func toUniversityResponse(u *domain.University) universityResponse {
	domains := u.EmailDomains
	if domains == nil {
		domains = []string{}
	}
	return universityResponse{
		ID:           u.ID,
		Name:         u.Name,
		Logo:         u.Logo,
		EmailDomains: domains,
	}
}
