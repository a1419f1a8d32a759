package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusxp/experience-api/internal/core/ports"
)

// ExperienceHandler handles HTTP requests for experience records.
type ExperienceHandler struct {
	service ports.ExperienceService
}

func NewExperienceHandler(service ports.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{service: service}
}

// Create stores an experience owned by the caller.
//
// @Summary      Create an experience
// @Tags         experience
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        x-uid      header  string             true  "Caller uid"
// @Param        x-univ-id  header  string             true  "Caller university"
// @Param        body       body    experienceRequest  true  "Experience"
// @Success      200  {object}  createdResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /experience [post]
func (h *ExperienceHandler) Create(c echo.Context) error {
	req, err := payloadFrom[experienceRequest](c)
	if err != nil {
		return err
	}

	uid, univID := identity(c)
	id, err := h.service.Create(c.Request().Context(), uid, univID, toExperienceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createdResponse{ID: id})
}

// Get handles GET /experience/:id.
//
// @Summary      Get an experience by id
// @Tags         experience
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id         path    string  true  "Experience id"
// @Param        x-uid      header  string  true  "Caller uid"
// @Param        x-univ-id  header  string  true  "Caller university"
// @Success      200  {object}  experienceResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /experience/{id} [get]
func (h *ExperienceHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toExperienceResponse(view))
}

// List handles GET /experience, limited to the caller's university.
//
// @Summary      List experiences in the caller's university
// @Tags         experience
// @Produce      json
// @Security     ApiKeyAuth
// @Param        company    query   string  false  "Exact company name"
// @Param        x-uid      header  string  true   "Caller uid"
// @Param        x-univ-id  header  string  true   "Caller university"
// @Success      200  {array}   experienceResponse
// @Failure      401  {object}  errorResponse
// @Router       /experience [get]
func (h *ExperienceHandler) List(c echo.Context) error {
	_, univID := identity(c)
	views, err := h.service.List(c.Request().Context(), univID, c.QueryParam("company"))
	if err != nil {
		return err
	}

	out := make([]experienceResponse, len(views))
	for i, v := range views {
		out[i] = toExperienceResponse(v)
	}
	return c.JSON(http.StatusOK, out)
}

// Update handles PUT /experience/:id. Only the owner may update.
//
// @Summary      Update an experience
// @Tags         experience
// @Accept       json
// @Security     ApiKeyAuth
// @Param        id         path    string             true  "Experience id"
// @Param        x-uid      header  string             true  "Caller uid"
// @Param        x-univ-id  header  string             true  "Caller university"
// @Param        body       body    experienceRequest  true  "Experience"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /experience/{id} [put]
func (h *ExperienceHandler) Update(c echo.Context) error {
	req, err := payloadFrom[experienceRequest](c)
	if err != nil {
		return err
	}

	uid, _ := identity(c)
	if err := h.service.Update(c.Request().Context(), uid, c.Param("id"), toExperienceInput(req)); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /experience/:id. Only the owner may delete.
//
// @Summary      Delete an experience
// @Tags         experience
// @Security     ApiKeyAuth
// @Param        id         path    string  true  "Experience id"
// @Param        x-uid      header  string  true  "Caller uid"
// @Param        x-univ-id  header  string  true  "Caller university"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /experience/{id} [delete]
func (h *ExperienceHandler) Delete(c echo.Context) error {
	uid, _ := identity(c)
	if err := h.service.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
