// Package apierror defines the single JSON error body returned by every
// endpoint, middleware and router fallback:
//
//	{
//	  "timestamp": "2025-01-02T15:04:05.123Z",
//	  "status": 404,
//	  "error": "Not Found",
//	  "message": "Category not found with id: 999",
//	  "path": "/api/categories/999"
//	}
//
// "errors" is present only for request validation failures and lists one
// entry per offending field.
package apierror

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field" example:"authorId"`
	Message string `json:"message" example:"authorId is a required field"`
}

// Response is the uniform error envelope.
type Response struct {
	Timestamp time.Time    `json:"timestamp" example:"2025-01-02T15:04:05Z"`
	Status    int          `json:"status" example:"404"`
	Error     string       `json:"error" example:"Not Found"`
	Message   string       `json:"message" example:"Category not found with id: 999"`
	Path      string       `json:"path" example:"/api/categories/999"`
	Errors    []FieldError `json:"errors,omitempty"`
}

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

// New builds the envelope for the current request.
func New(c *gin.Context, status int, msg string, fields ...FieldError) Response {
	path := ""
	if c.Request != nil && c.Request.URL != nil {
		path = c.Request.URL.Path
	}
	var errs []FieldError
	if len(fields) > 0 {
		errs = fields
	}
	return Response{
		Timestamp: now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   msg,
		Path:      path,
		Errors:    errs,
	}
}

// Abort writes the envelope with the given status and stops the handler chain.
func Abort(c *gin.Context, status int, msg string, fields ...FieldError) {
	c.AbortWithStatusJSON(status, New(c, status, msg, fields...))
}
