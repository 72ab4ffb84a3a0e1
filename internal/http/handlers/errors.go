// Package handlers defines the client-facing error messages used across all
// API endpoints.
//
// Messages are part of the public contract: clients and tests match on them,
// so they are centralized here and passed to fail() together with the HTTP
// status. Not-found, invalid-argument and bad-request messages produced by the
// service layer are forwarded verbatim and are not listed here.
//
// Example response:
//
//	{
//	  "timestamp": "2025-01-02T15:04:05Z",
//	  "status": 400,
//	  "error": "Bad Request",
//	  "message": "Validation failed",
//	  "path": "/api/posts",
//	  "errors": [{"field": "authorId", "message": "authorId is a required field"}]
//	}
package handlers

import "github.com/tbourn/go-crud-backend/internal/http/middleware"

const (
	MsgValidationFailed = "Validation failed"
	MsgMalformedJSON    = "Malformed JSON request"
	MsgUnexpected       = middleware.MsgUnexpected

	MsgInvalidID          = "id must be a positive integer"
	MsgInvalidKey         = "key must not be blank"
	MsgNotFound           = "No handler found for %s %s"
	MsgMethodNotAllowed   = "Request method '%s' is not supported"
	MsgInvalidDate        = "%s must be a date in the format YYYY-MM-DD"
	MsgInvalidInteger     = "%s must be an integer"
	MsgInvalidBoolean     = "%s must be true or false"
	MsgMissingQueryParam  = "Required parameter '%s' is not present"
	MsgInvalidPageRequest = "page must be >= 0 and size must be between 1 and %d"
	MsgInvalidSort        = "Invalid sort parameter: %s"
)
