package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusxp/experience-api/internal/core/ports"
)

type UniversityHandler struct {
	service ports.UniversityService
}

func NewUniversityHandler(service ports.UniversityService) *UniversityHandler {
	return &UniversityHandler{service: service}
}

// List returns every university.
//
// @Summary      List universities
// @Tags         university
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}   universityResponse
// @Failure      401  {object}  errorResponse
// @Router       /university [get]
func (h *UniversityHandler) List(c echo.Context) error {
	univs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]universityResponse, len(univs))
	for i, u := range univs {
		out[i] = toUniversityResponse(u)
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one university.
//
// @Summary      Get a university by id
// @Tags         university
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "University id"
// @Success      200  {object}  universityResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /university/{id} [get]
func (h *UniversityHandler) Get(c echo.Context) error {
	univ, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUniversityResponse(univ))
}
