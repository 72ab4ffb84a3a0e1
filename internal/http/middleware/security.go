package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// SecurityOptions configures SecurityHeaders.
type SecurityOptions struct {
	// HSTS sends Strict-Transport-Security on HTTPS requests (direct TLS or
	// X-Forwarded-Proto: https). Plain HTTP never gets it.
	HSTS bool
	// HSTSMaxAge defaults to 180 days.
	HSTSMaxAge time.Duration
	// BrowserPolicy adds Permissions-Policy and
	// X-Permitted-Cross-Domain-Policies.
	BrowserPolicy bool
	// PrivateCache keeps responses out of shared caches. Reads are cacheable
	// by the client but must be revalidated, which pairs with the list ETag.
	// Writes are never stored.
	PrivateCache bool
	// ExposeHeaders are added to Access-Control-Expose-Headers, together with
	// X-Request-ID when the response carries one.
	ExposeHeaders []string
}

const defaultHSTSMaxAge = 180 * 24 * time.Hour

// SecurityHeaders sets conservative response headers for a JSON API. No
// Content-Security-Policy is sent since nothing here renders HTML.
func SecurityHeaders(opt SecurityOptions) gin.HandlerFunc {
	if opt.HSTSMaxAge <= 0 {
		opt.HSTSMaxAge = defaultHSTSMaxAge
	}
	hsts := "max-age=" + strconv.FormatInt(int64(opt.HSTSMaxAge/time.Second), 10) + "; includeSubDomains; preload"

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")

		if opt.BrowserPolicy {
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")
			h.Set("X-Permitted-Cross-Domain-Policies", "none")
		}
		if opt.PrivateCache {
			if isRead(c.Request.Method) {
				h.Set("Cache-Control", "private, no-cache")
			} else {
				h.Set("Cache-Control", "no-store")
			}
		}
		if opt.HSTS && isHTTPS(c.Request) {
			h.Set("Strict-Transport-Security", hsts)
		}

		if h.Get(HeaderRequestID) != "" {
			exposeHeader(h, HeaderRequestID)
		}
		for _, name := range opt.ExposeHeaders {
			exposeHeader(h, name)
		}
		c.Next()
	}
}

// exposeHeader appends name to Access-Control-Expose-Headers unless it is
// already listed (case-insensitively).
func exposeHeader(h http.Header, name string) {
	const key = "Access-Control-Expose-Headers"
	cur := h.Get(key)
	if cur == "" {
		h.Set(key, name)
		return
	}
	for _, v := range strings.Split(cur, ",") {
		if strings.EqualFold(strings.TrimSpace(v), name) {
			return
		}
	}
	h.Set(key, cur+", "+name)
}

func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
