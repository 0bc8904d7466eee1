package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/guitarworld/guitar-store/internal/core/domain"
	"github.com/guitarworld/guitar-store/internal/core/ports"
)

// GuitarHandler handles catalog endpoints.
type GuitarHandler struct {
	service ports.GuitarService
}

func NewGuitarHandler(service ports.GuitarService) *GuitarHandler {
	return &GuitarHandler{service: service}
}

// Products returns one page of the catalog, optionally filtered by style.
//
// @Summary      List catalog guitars
// @Tags         guitars
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int     false  "1-based page number"       default(1)
// @Param        style  query     string  false  "Electric, Acoustic or All"  default(All)
// @Success      201    {object}  resultsResponse
// @Failure      400    {object}  map[string]string
// @Router       /guitars/products [get]
func (h *GuitarHandler) Products(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "page must be a number")
		}
		page = n
	}

	style := domain.StyleAll
	if raw := c.QueryParam("style"); raw != "" {
		style = domain.GuitarStyle(raw)
	}

	guitars, err := h.service.List(c.Request().Context(), ports.ListGuitarsInput{
		Page:  page,
		Style: style,
	})
	if err != nil {
		return err
	}

	items := make([]any, len(guitars))
	for i, g := range guitars {
		items[i] = g
	}
	return c.JSON(http.StatusCreated, results(items...))
}

// Details returns a single catalog item.
//
// @Summary      Get a guitar by id
// @Tags         guitars
// @Produce      json
// @Security     BearerAuth
// @Param        idGuitar  path      string  true  "Guitar id"
// @Success      201       {object}  resultsResponse
// @Failure      404       {object}  map[string]string
// @Router       /guitars/details/{idGuitar} [get]
func (h *GuitarHandler) Details(c echo.Context) error {
	id := c.Param("idGuitar")
	if id == "" {
		return echo.NewHTTPError(http.StatusNotFound, "guitar id missing from path")
	}

	guitar, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, results(guitar))
}

// Create adds a new catalog item. Admin only.
//
// @Summary      Create a guitar
// @Tags         guitars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      guitarRequest  true  "Guitar details"
// @Success      201   {object}  resultsResponse
// @Failure      400   {object}  map[string]string
// @Router       /guitars/create [post]
func (h *GuitarHandler) Create(c echo.Context) error {
	var req guitarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, results(created))
}

// Edit updates an existing catalog item. Fields absent from the payload
// keep their stored values. Admin only.
//
// @Summary      Edit a guitar
// @Tags         guitars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        idGuitar  path      string             true  "Guitar id"
// @Param        body      body      editGuitarRequest  true  "Fields to change"
// @Success      201       {object}  resultsResponse
// @Failure      404       {object}  map[string]string
// @Router       /guitars/edit/{idGuitar} [patch]
func (h *GuitarHandler) Edit(c echo.Context) error {
	id := c.Param("idGuitar")
	if id == "" {
		return echo.NewHTTPError(http.StatusNotFound, "guitar id missing from path")
	}

	var req editGuitarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	current, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	applyEdit(current, req)

	updated, err := h.service.Edit(c.Request().Context(), current)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, results(updated))
}

// Delete removes a catalog item. Admin only.
//
// @Summary      Delete a guitar
// @Tags         guitars
// @Produce      json
// @Security     BearerAuth
// @Param        idGuitar  path      string  true  "Guitar id"
// @Success      201       {object}  resultsResponse
// @Failure      404       {object}  map[string]string
// @Router       /guitars/delete/{idGuitar} [delete]
func (h *GuitarHandler) Delete(c echo.Context) error {
	id := c.Param("idGuitar")
	if id == "" {
		return echo.NewHTTPError(http.StatusNotFound, "guitar id missing from path")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, results())
}

// applyEdit overlays the provided fields onto the stored record ahead of
// the repository's replace-by-id update.
func applyEdit(g *domain.Guitar, req editGuitarRequest) {
	if req.Brand != "" {
		g.Brand = req.Brand
	}
	if req.Model != "" {
		g.Model = req.Model
	}
	if req.Picture != "" {
		g.Picture = req.Picture
	}
	if req.Style != "" {
		g.Style = domain.GuitarStyle(req.Style)
	}
	if req.Material != "" {
		g.Material = req.Material
	}
	if req.Price > 0 {
		g.Price = req.Price
	}
	if req.Description != "" {
		g.Description = req.Description
	}
}
