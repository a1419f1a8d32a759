package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusxp/experience-api/internal/core/ports"
)

type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register creates an account under a university and returns a one-time session token.
//
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      createUserRequest  true  "Registration details"
// @Success      200   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /user/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	req, err := payloadFrom[createUserRequest](c)
	if err != nil {
		return err
	}

	token, err := h.users.Register(c.Request().Context(), toRegisterInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, registerResponse{SessionToken: token})
}

// Session exchanges a registration session token for the account identity.
//
// @Summary      Exchange a session token
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      sessionRequest  true  "Session token"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /user/session [post]
func (h *UserHandler) Session(c echo.Context) error {
	req, err := payloadFrom[sessionRequest](c)
	if err != nil {
		return err
	}

	sess, err := h.users.ExchangeSession(c.Request().Context(), req.SessionToken)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{UID: sess.UID, UnivID: sess.UnivID})
}

// Update renames the calling user.
//
// @Summary      Update the caller's name
// @Tags         user
// @Accept       json
// @Security     ApiKeyAuth
// @Param        id         path    string             true  "User id"
// @Param        x-uid      header  string             true  "Caller uid"
// @Param        x-univ-id  header  string             true  "Caller university"
// @Param        body       body    updateUserRequest  true  "New name"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /user/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	req, err := payloadFrom[updateUserRequest](c)
	if err != nil {
		return err
	}

	uid, _ := identity(c)
	if err := h.users.UpdateName(c.Request().Context(), uid, c.Param("id"), req.Name); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Get returns a user's public profile.
//
// @Summary      Get a user by id
// @Tags         user
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id         path    string  true  "User id"
// @Param        x-uid      header  string  true  "Caller uid"
// @Param        x-univ-id  header  string  true  "Caller university"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	profile, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{ID: profile.ID, Name: profile.Name})
}
