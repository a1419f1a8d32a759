package handler

import "time"

// errorResponse is the envelope returned on every 4xx/5xx response.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// --- Request types (field order is rule order) ---

type createUserRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=50"`
	UnivID   string `json:"univId"   validate:"required"`
	Name     string `json:"name"     validate:"required,min=4,max=50"`
}

type updateUserRequest struct {
	Name string `json:"name" validate:"required,min=4,max=50"`
}

type sessionRequest struct {
	SessionToken string `json:"sessionToken" validate:"required"`
}

type experienceRequest struct {
	Company  string `json:"company"  validate:"required,min=3,max=50"`
	Role     string `json:"role"     validate:"required,min=3,max=50"`
	Summary  string `json:"summary"  validate:"required,summarymax"`
	Location string `json:"location" validate:"required,min=3,max=50"`
	Status   string `json:"status"   validate:"required"`
}

// --- Response types ---

type registerResponse struct {
	SessionToken string `json:"sessionToken"`
}

type sessionResponse struct {
	UID    string `json:"uid"`
	UnivID string `json:"univId"`
}

type userResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type experienceResponse struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	Location  string    `json:"location"`
	Summary   string    `json:"summary"`
	Status    string    `json:"status"`
	UID       string    `json:"uid"`
	UnivID    string    `json:"univId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type universityResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Logo         string   `json:"logo"`
	EmailDomains []string `json:"emailDomains"`
}
