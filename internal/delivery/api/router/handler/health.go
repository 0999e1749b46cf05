// Package handler contains the HTTP handlers for the JSON API.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ubishop/internal/delivery/api/response"
)

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
