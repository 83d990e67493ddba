// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// pageParams reads the page and page_size query parameters, falling back to
// defaults. Bound checks happen in the usecase layer.
func pageParams(c echo.Context) (int, int) {
	page := defaultPage
	pageSize := defaultPageSize

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

	return page, pageSize
}

// pathUUID parses a uuid path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(200, map[string]string{"status": "ok"})
}
