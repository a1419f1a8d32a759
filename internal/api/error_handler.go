package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campusxp/experience-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - renders gatekeeper rejections as 401 with the domain code,
//   - renders domain and identity provider errors as 400,
//   - turns unmatched routes under prefix into 400 invalid-url,
//   - logs anything else and answers 500 without details.
func NewHTTPErrorHandler(log zerolog.Logger, prefix string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c, prefix)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, prefix string) (int, errorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		var de *domain.Error
		if he.Internal != nil && errors.As(he.Internal, &de) {
			return he.Code, fromDomain(de)
		}
		if he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed {
			if underPrefix(c.Request().URL.Path, prefix) {
				return http.StatusBadRequest, fromDomain(domain.ErrUnknownRoute)
			}
			return he.Code, errorResponse{Code: string(domain.CodeInvalidURL), Message: http.StatusText(he.Code)}
		}
		if he.Code < http.StatusInternalServerError {
			return he.Code, errorResponse{Code: string(domain.CodeInvalidRequest), Message: httpErrorMessage(he)}
		}
	}

	// Identity provider failures carry their own detail.
	var pe *domain.ProviderError
	if errors.As(err, &pe) {
		return http.StatusBadRequest, errorResponse{Code: string(domain.CodeInvalidRequest), Message: pe.Err.Error()}
	}

	var de *domain.Error
	if errors.As(err, &de) {
		return http.StatusBadRequest, fromDomain(de)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Code: "internal", Message: "internal server error"}
}

func fromDomain(de *domain.Error) errorResponse {
	return errorResponse{Code: string(de.Code), Message: de.Message}
}

func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func httpErrorMessage(he *echo.HTTPError) string {
	if msg, ok := he.Message.(string); ok && msg != "" {
		return msg
	}
	return http.StatusText(he.Code)
}
