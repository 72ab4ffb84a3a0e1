package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func secured(opt SecurityOptions, pre ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(pre...)
	r.Use(SecurityHeaders(opt))
	r.GET("/api/categories", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.PUT("/api/categories/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func securedDo(r http.Handler, method string, mutate ...func(*http.Request)) http.Header {
	target := "/api/categories"
	if method != http.MethodGet {
		target += "/1"
	}
	req := httptest.NewRequest(method, target, nil)
	for _, m := range mutate {
		m(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Header()
}

func viaTLS(r *http.Request) { r.TLS = &tls.ConnectionState{} }

func viaProxy(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "HTTPS") }

func TestSecurityHeaders_Baseline(t *testing.T) {
	h := securedDo(secured(SecurityOptions{}), http.MethodGet, viaTLS)

	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", h.Get("Referrer-Policy"))
	for _, absent := range []string{"Permissions-Policy", "X-Permitted-Cross-Domain-Policies", "Cache-Control", "Strict-Transport-Security", "Access-Control-Expose-Headers"} {
		assert.Empty(t, h.Get(absent), absent)
	}
}

func TestSecurityHeaders_BrowserPolicy(t *testing.T) {
	h := securedDo(secured(SecurityOptions{BrowserPolicy: true}), http.MethodGet)
	assert.Contains(t, h.Get("Permissions-Policy"), "geolocation=()")
	assert.Equal(t, "none", h.Get("X-Permitted-Cross-Domain-Policies"))
}

func TestSecurityHeaders_PrivateCache(t *testing.T) {
	r := secured(SecurityOptions{PrivateCache: true})
	assert.Equal(t, "private, no-cache", securedDo(r, http.MethodGet).Get("Cache-Control"))
	assert.Equal(t, "no-store", securedDo(r, http.MethodPut).Get("Cache-Control"))
}

func TestSecurityHeaders_HSTS(t *testing.T) {
	cases := []struct {
		name   string
		opt    SecurityOptions
		mutate []func(*http.Request)
		want   string
	}{
		{"disabled", SecurityOptions{HSTSMaxAge: time.Hour}, []func(*http.Request){viaTLS}, ""},
		{"plain http", SecurityOptions{HSTS: true}, nil, ""},
		{"tls", SecurityOptions{HSTS: true, HSTSMaxAge: 24 * time.Hour}, []func(*http.Request){viaTLS}, "max-age=86400; includeSubDomains; preload"},
		{"forwarded proto", SecurityOptions{HSTS: true, HSTSMaxAge: time.Hour}, []func(*http.Request){viaProxy}, "max-age=3600; includeSubDomains; preload"},
		{"default max age", SecurityOptions{HSTS: true}, []func(*http.Request){viaTLS}, "max-age=15552000; includeSubDomains; preload"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := securedDo(secured(tc.opt), http.MethodGet, tc.mutate...)
			assert.Equal(t, tc.want, h.Get("Strict-Transport-Security"))
		})
	}
}

func TestSecurityHeaders_ExposeHeaders(t *testing.T) {
	withRID := func(c *gin.Context) {
		c.Header(HeaderRequestID, "rid-1")
		c.Next()
	}

	t.Run("request id first then configured, no duplicates", func(t *testing.T) {
		r := secured(SecurityOptions{ExposeHeaders: []string{"Location", "ETag", "X-Total-Count", "etag"}}, withRID)
		h := securedDo(r, http.MethodGet)
		assert.Equal(t, "X-Request-ID, Location, ETag, X-Total-Count", h.Get("Access-Control-Expose-Headers"))
	})

	t.Run("appends to an existing list", func(t *testing.T) {
		r := secured(SecurityOptions{ExposeHeaders: []string{"Location"}}, withRID, func(c *gin.Context) {
			c.Header("Access-Control-Expose-Headers", "Content-Length, x-request-id")
			c.Next()
		})
		h := securedDo(r, http.MethodGet)
		assert.Equal(t, "Content-Length, x-request-id, Location", h.Get("Access-Control-Expose-Headers"))
	})
}

func TestIsHTTPS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, isHTTPS(req))
	viaProxy(req)
	assert.True(t, isHTTPS(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	viaTLS(req)
	assert.True(t, isHTTPS(req))
}
