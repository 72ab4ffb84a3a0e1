// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities used across all endpoints. Every
// failure is written in the apierror.Response shape, and service errors are
// translated to HTTP statuses in exactly one place (respondError):
//
//   - services.ErrInvalidArgument → 400, service message verbatim
//   - services.ErrBadRequest      → 400, service message verbatim
//   - services.ErrNotFound        → 404, service message verbatim
//   - anything else               → 500, "An unexpected error occurred"
//
// The underlying error of a 500 is logged with the request-scoped logger and
// never sent to the client.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-crud-backend/internal/http/apierror"
	"github.com/tbourn/go-crud-backend/internal/http/middleware"
	"github.com/tbourn/go-crud-backend/internal/services"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
// It is declared here so the OpenAPI annotations can reference it.
type ErrorResponse = apierror.Response

// CountResponse is returned by GET /{resource}/count.
type CountResponse struct {
	Count int64 `json:"count" example:"42"`
}

// ExistsResponse is returned by GET /{resource}/{id}/exists.
type ExistsResponse struct {
	Exists bool `json:"exists" example:"true"`
}

// fail aborts the request with a structured error.
func fail(c *gin.Context, status int, msg string, fields ...apierror.FieldError) {
	apierror.Abort(c, status, msg, fields...)
}

// Fail is the exported variant of fail(), used by the router fallbacks.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// respondError maps a service error to its HTTP response. Errors outside
// the service taxonomy are logged with their cause and answered with a
// generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, services.Message(err))
	case errors.Is(err, services.ErrInvalidArgument), errors.Is(err, services.ErrBadRequest):
		fail(c, http.StatusBadRequest, services.Message(err))
	default:
		middleware.LoggerFrom(c).Error().Err(err).Str("route", c.FullPath()).Msg("unexpected error")
		fail(c, http.StatusInternalServerError, MsgUnexpected)
	}
}

func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
