package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guitarworld/guitar-store/internal/core/domain"
	"github.com/guitarworld/guitar-store/internal/core/ports"
)

// UserHandler handles account and collection endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  resultsResponse
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}

	user, err := h.service.Register(c.Request().Context(), req.Username, req.Password, req.Email)
	if err != nil {
		// This endpoint reports missing credentials as 401, not 400.
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
		case errors.Is(err, domain.ErrUserExists):
			return echo.NewHTTPError(http.StatusConflict, "username already taken")
		}
		return err
	}

	return c.JSON(http.StatusCreated, results(user))
}

// Login authenticates a user and returns the profile with a session token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      202   {object}  resultsResponse
// @Failure      401   {object}  map[string]string
// @Router       /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}

	res, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
		}
		return err
	}

	return c.JSON(http.StatusAccepted, results(loggedUser{
		ID:        res.User.ID,
		Username:  res.User.Username,
		Email:     res.User.Email,
		Role:      res.User.Role,
		MyGuitars: res.User.MyGuitars,
		Token:     res.Token,
	}))
}

// Profile returns the authenticated user's own profile. The SelfOnly
// middleware has already matched the path id against the token id.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        idUser  path      string  true  "User id"
// @Success      202     {object}  resultsResponse
// @Failure      401     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /users/{idUser} [get]
func (h *UserHandler) Profile(c echo.Context) error {
	id := c.Param("idUser")
	if id == "" {
		return echo.NewHTTPError(http.StatusNotFound, "user id missing from path")
	}

	user, err := h.service.Profile(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, results(user))
}

// AddGuitar appends a catalog item to the authenticated user's collection.
//
// @Summary      Add a guitar to the collection
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        idGuitar  path      string  true  "Guitar id"
// @Success      202       {object}  resultsResponse
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      405       {object}  map[string]string
// @Router       /users/add/cart/{idGuitar} [patch]
func (h *UserHandler) AddGuitar(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	guitarID := c.Param("idGuitar")
	if guitarID == "" {
		return echo.NewHTTPError(http.StatusNotFound, "guitar id missing from path")
	}

	user, err := h.service.AddGuitar(c.Request().Context(), userID, guitarID)
	if err != nil {
		return cartError(err)
	}

	return c.JSON(http.StatusAccepted, results(user))
}

// RemoveGuitar drops a catalog item from the collection. Removing an item
// that is not owned still answers 202 with the unchanged profile.
//
// @Summary      Remove a guitar from the collection
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        idGuitar  path      string  true  "Guitar id"
// @Success      202       {object}  resultsResponse
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /users/remove/cart/{idGuitar} [patch]
func (h *UserHandler) RemoveGuitar(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	guitarID := c.Param("idGuitar")
	if guitarID == "" {
		return echo.NewHTTPError(http.StatusNotFound, "guitar id missing from path")
	}

	user, err := h.service.RemoveGuitar(c.Request().Context(), userID, guitarID)
	if err != nil {
		return cartError(err)
	}

	return c.JSON(http.StatusAccepted, results(user))
}

// cartError maps collection-mutation failures to this route family's codes:
// an unresolvable guitar id is a 400 here, unlike the catalog routes.
func cartError(err error) error {
	switch {
	case errors.Is(err, domain.ErrGuitarNotFound):
		return echo.NewHTTPError(http.StatusBadRequest, "guitar id does not exist")
	case errors.Is(err, domain.ErrAlreadyOwned):
		return echo.NewHTTPError(http.StatusMethodNotAllowed, "guitar already in collection")
	}
	return err
}
