package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campusxp/experience-api/internal/core/domain"
	"github.com/campusxp/experience-api/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (string, error)
	updateFn   func(ctx context.Context, callerUID, id, name string) error
	getFn      func(ctx context.Context, id string) (*ports.UserProfile, error)
	exchangeFn func(ctx context.Context, token string) (*domain.Session, error)
}

func (s *stubUserService) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	return s.registerFn(ctx, in)
}

func (s *stubUserService) UpdateName(ctx context.Context, callerUID, id, name string) error {
	return s.updateFn(ctx, callerUID, id, name)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*ports.UserProfile, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) ExchangeSession(ctx context.Context, token string) (*domain.Session, error) {
	return s.exchangeFn(ctx, token)
}

func TestUserHandler_Register_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator(10000)
	stub := &stubUserService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (string, error) {
			if in.Email != "alice@a.edu" || in.UnivID != "univA" || in.Name != "Alice" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return "session-token", nil
		},
	}
	h := NewUserHandler(stub)

	body := strings.NewReader(`{"email":"alice@a.edu","password":"password1","univId":"univA","name":"Alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/user/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := ValidateCreateUser()(h.Register)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["sessionToken"] != "session-token" {
		t.Fatalf("unexpected sessionToken %q", resp["sessionToken"])
	}
}

func TestUserHandler_Register_ServiceError(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator(10000)
	stub := &stubUserService{
		registerFn: func(context.Context, ports.RegisterInput) (string, error) {
			return "", domain.ErrEmailRegistered
		},
	}
	h := NewUserHandler(stub)

	body := strings.NewReader(`{"email":"alice@a.edu","password":"password1","univId":"univA","name":"Alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/user/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	if err := ValidateCreateUser()(h.Register)(c); err != domain.ErrEmailRegistered {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}
}

func TestUserHandler_Update_UsesCallerHeader(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator(10000)
	stub := &stubUserService{
		updateFn: func(_ context.Context, callerUID, id, name string) error {
			if callerUID != "u1" || id != "u2" || name != "Mallory" {
				t.Fatalf("unexpected args: %s %s %s", callerUID, id, name)
			}
			return domain.ErrIdentityMismatch
		},
	}
	h := NewUserHandler(stub)

	c, _ := newIdentityContext(e, http.MethodPatch, "/user/u2", `{"name":"Mallory"}`)
	c.SetParamNames("id")
	c.SetParamValues("u2")

	if err := ValidateUpdateUser()(h.Update)(c); err != domain.ErrIdentityMismatch {
		t.Fatalf("expected ErrIdentityMismatch, got %v", err)
	}
}

func TestUserHandler_Get(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		getFn: func(_ context.Context, id string) (*ports.UserProfile, error) {
			return &ports.UserProfile{ID: id, Name: "Alice"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newIdentityContext(e, http.MethodGet, "/user/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp["id"] != "u1" || resp["name"] != "Alice" {
		t.Fatalf("expected only id and name, got %v", resp)
	}
}

func TestUserHandler_Session(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator(10000)
	stub := &stubUserService{
		exchangeFn: func(_ context.Context, token string) (*domain.Session, error) {
			if token != "tok" {
				return nil, domain.ErrInvalidSession
			}
			return &domain.Session{UID: "u1", UnivID: "univA"}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/user/session", strings.NewReader(`{"sessionToken":"tok"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := ValidateSession()(h.Session)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["uid"] != "u1" || resp["univId"] != "univA" {
		t.Fatalf("unexpected session response %v", resp)
	}
}
