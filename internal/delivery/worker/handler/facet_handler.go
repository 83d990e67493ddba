package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"market/internal/delivery/http/response"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FacetHandler serves the indexer's facet read path.
type FacetHandler struct {
	uc     usecase.FacetUsecase
	logger *slog.Logger
}

// NewFacetHandler is the constructor for FacetHandler, injected by Fx.
func NewFacetHandler(uc usecase.FacetUsecase, logger *slog.Logger) *FacetHandler {
	return &FacetHandler{
		uc:     uc,
		logger: logger,
	}
}

// FindValues returns the observed values of one property within the cluster
// containing the category.
func (h *FacetHandler) FindValues(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	property := c.QueryParam("property")
	if property == "" {
		return response.BadRequest(c, "INVALID_INPUT", "property query parameter is required")
	}

	values, err := h.uc.FindValues(c.Request().Context(), categoryID, property)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"category_id": categoryID,
		"property":    property,
		"values":      values,
	}, "")
}

// ListFacets returns one page of the cluster's property counters.
func (h *FacetHandler) ListFacets(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	page := 1
	pageSize := 20
	if pageStr := c.QueryParam("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil {
			page = parsed
		}
	}
	if sizeStr := c.QueryParam("page_size"); sizeStr != "" {
		if parsed, err := strconv.Atoi(sizeStr); err == nil {
			pageSize = parsed
		}
	}

	result, err := h.uc.ListFacets(c.Request().Context(), categoryID, page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}
