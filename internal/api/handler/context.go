package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/campusxp/experience-api/internal/api/middleware"
)

// identity reads the caller's headers. The gatekeeper has already rejected
// gated requests that lack them, so no check is repeated here.
func identity(c echo.Context) (uid, univID string) {
	h := c.Request().Header
	return h.Get(middleware.HeaderUID), h.Get(middleware.HeaderUnivID)
}
