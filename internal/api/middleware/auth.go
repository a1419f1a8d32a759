package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campusxp/experience-api/internal/core/domain"
	"github.com/campusxp/experience-api/internal/metrics"
)

// Caller identity headers. Gated routes require both.
const (
	HeaderUID    = "X-Uid"
	HeaderUnivID = "X-Univ-Id"
)

// SecretSource yields the current api key → secret table.
type SecretSource interface {
	Secrets(ctx context.Context) (map[string]string, error)
}

// Exemption lets a request through without the caller identity headers.
// The path is matched as a suffix of the request path.
type Exemption struct {
	Method string
	Path   string
}

// DefaultExemptions covers registration and the session exchange.
// GET requests for the university resource directly under Prefix are always
// exempt as well.
var DefaultExemptions = []Exemption{
	{Method: http.MethodPost, Path: "/user/register"},
	{Method: http.MethodPost, Path: "/user/session"},
}

type AuthConfig struct {
	Credentials SecretSource
	Logger      zerolog.Logger
	Exemptions  []Exemption
	// Prefix is the path the gated group is mounted on, e.g. "/api/record".
	Prefix string
}

// Auth checks "Authorization: <key> <secret>" against the credential set,
// then requires the identity headers unless the request is exempt.
func Auth(cfg AuthConfig) echo.MiddlewareFunc {
	if cfg.Exemptions == nil {
		cfg.Exemptions = DefaultExemptions
	}
	university := strings.TrimRight(cfg.Prefix, "/") + "/university"

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			header := req.Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return reject(cfg.Logger, c, "missing_authorization")
			}

			key, secret, ok := strings.Cut(header, " ")
			if !ok || key == "" || secret == "" {
				return reject(cfg.Logger, c, "malformed_authorization")
			}

			secrets, err := cfg.Credentials.Secrets(req.Context())
			if err != nil {
				return err
			}
			want, found := secrets[key]
			if !found || subtle.ConstantTimeCompare([]byte(want), []byte(secret)) != 1 {
				return reject(cfg.Logger, c, "bad_credentials")
			}

			if exempt(cfg.Exemptions, university, req.Method, req.URL.Path) {
				return next(c)
			}

			if req.Header.Get(HeaderUID) == "" || req.Header.Get(HeaderUnivID) == "" {
				return reject(cfg.Logger, c, "missing_headers")
			}

			return next(c)
		}
	}
}

func exempt(list []Exemption, university, method, path string) bool {
	trimmed := strings.TrimRight(path, "/")
	for _, e := range list {
		if e.Method == method && strings.HasSuffix(trimmed, e.Path) {
			return true
		}
	}
	if method != http.MethodGet {
		return false
	}
	return trimmed == university || strings.HasPrefix(trimmed, university+"/")
}

func reject(log zerolog.Logger, c echo.Context, reason string) error {
	metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
	log.Warn().
		Str("reason", reason).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Msg("request rejected")

	cause := domain.ErrUnauthenticated
	if reason == "missing_headers" {
		cause = domain.ErrMissingHeaders
	}
	return echo.NewHTTPError(http.StatusUnauthorized).WithInternal(cause)
}
