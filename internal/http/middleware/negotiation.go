package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/tbourn/go-crud-backend/internal/http/apierror"
)

// ContentNegotiation returns a middleware that enforces JSON on both sides:
//
//   - 406 Not Acceptable when the Accept header admits neither
//     application/json nor a matching wildcard. A missing Accept is fine.
//   - 415 Unsupported Media Type when a POST, PUT or PATCH carries a body
//     whose Content-Type is not application/json (or a +json suffix).
//
// Both failures use the standard error shape.
func ContentNegotiation() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.NegotiateFormat(binding.MIMEJSON) == "" {
			apierror.Abort(c, http.StatusNotAcceptable,
				"Acceptable representations: ["+binding.MIMEJSON+"]")
			return
		}

		if hasBody(c.Request) {
			ct := c.ContentType()
			if ct != binding.MIMEJSON && !strings.HasSuffix(ct, "+json") {
				apierror.Abort(c, http.StatusUnsupportedMediaType,
					fmt.Sprintf("Content-Type '%s' is not supported", ct))
				return
			}
		}

		c.Next()
	}
}

// hasBody reports whether r is a write request that carries a payload.
func hasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return false
	}
	return r.ContentLength > 0 || (r.ContentLength < 0 && r.Body != nil && r.Body != http.NoBody)
}
