package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campusxp/experience-api/internal/core/domain"
)

type stubUniversityService struct {
	univs map[string]*domain.University
}

func (s *stubUniversityService) List(context.Context) ([]*domain.University, error) {
	out := make([]*domain.University, 0, len(s.univs))
	for _, u := range s.univs {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUniversityService) Get(_ context.Context, id string) (*domain.University, error) {
	u, ok := s.univs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func TestUniversityHandler(t *testing.T) {
	e := echo.New()
	h := NewUniversityHandler(&stubUniversityService{univs: map[string]*domain.University{
		"univA": {ID: "univA", Name: "University A", Logo: "a.png"},
	}})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/university", nil), rec)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	want := `[{"id":"univA","name":"University A","logo":"a.png","emailDomains":[]}]`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/university/univZ", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("univZ")
	if err := h.Get(c); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
