package middleware

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RedactOptions selects which request values RedactingLogger never writes.
//
// Everything not listed is still passed through the email, phone and UUID
// scrubbers, so a stray address in a search term is caught as well.
type RedactOptions struct {
	// MaskHeaders extends the always-masked Authorization, Cookie and
	// Set-Cookie. Case-insensitive.
	MaskHeaders []string
	// MaskParams names route parameters masked wherever they appear,
	// e.g. "email" for /users/email/:email.
	MaskParams []string
	// MaskRoutes lists route patterns whose parameters are all masked,
	// e.g. "/api/persons/:id" where the id is a national identity number.
	MaskRoutes []string
	// MaskQuery names query keys whose values are masked, e.g. "lastName".
	MaskQuery []string
}

const redacted = "[REDACTED]"

var (
	// UUIDs go first so the phone pattern cannot eat their digit groups.
	uuidRE  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}\b`)
	emailRE = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	phoneRE = regexp.MustCompile(`\+?\d[\d .()-]{7,}\d`)
)

// minPhoneDigits keeps dates such as 1815-12-10 out of the phone pattern.
const minPhoneDigits = 9

func scrub(s string) string {
	if s == "" {
		return s
	}
	s = uuidRE.ReplaceAllString(s, "[REDACTED:id]")
	s = emailRE.ReplaceAllString(s, "[REDACTED:email]")
	return phoneRE.ReplaceAllStringFunc(s, func(m string) string {
		digits := 0
		for _, r := range m {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits < minPhoneDigits {
			return m
		}
		return "[REDACTED:phone]"
	})
}

func lowerSet(items ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range items {
		for _, s := range list {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				set[s] = struct{}{}
			}
		}
	}
	return set
}

// RedactingLogger is the access log used in release mode. It logs the route
// pattern, the request path with sensitive segments replaced, the query as a
// key/value map and the request headers, but never bodies. Level follows
// the status: info, warn for 4xx and error for 5xx.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	headers := lowerSet([]string{"authorization", "cookie", "set-cookie"}, opts.MaskHeaders)
	params := lowerSet(opts.MaskParams)
	query := lowerSet(opts.MaskQuery)
	routes := make(map[string]struct{}, len(opts.MaskRoutes))
	for _, r := range opts.MaskRoutes {
		routes[r] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		_, maskAll := routes[route]

		var path string
		if route == "" {
			path = scrub(c.Request.URL.Path)
		} else {
			path = safePath(c, route, func(name string) bool {
				_, ok := params[strings.ToLower(name)]
				return maskAll || ok
			})
		}

		safeQuery := make(map[string]string)
		for k, vv := range c.Request.URL.Query() {
			if _, ok := query[strings.ToLower(k)]; ok {
				safeQuery[k] = redacted
				continue
			}
			safeQuery[k] = scrub(strings.Join(vv, ","))
		}

		safeHeaders := make(map[string]string, len(c.Request.Header))
		for k, vv := range c.Request.Header {
			if _, ok := headers[strings.ToLower(k)]; ok {
				safeHeaders[k] = redacted
				continue
			}
			safeHeaders[k] = scrub(strings.Join(vv, ", "))
		}

		reqID := c.Writer.Header().Get(HeaderRequestID)
		if reqID == "" {
			reqID = c.GetHeader(HeaderRequestID)
		}

		status := c.Writer.Status()
		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		}
		ev.Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("route", route).
			Str("path", path).
			Interface("query", safeQuery).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Interface("headers", safeHeaders).
			Msg("http_request")
	}
}

// safePath rebuilds the request path from the route pattern, substituting
// each parameter with its value or with a [REDACTED:name] marker.
func safePath(c *gin.Context, route string, mask func(name string) bool) string {
	segs := strings.Split(route, "/")
	for i, seg := range segs {
		if len(seg) < 2 || (seg[0] != ':' && seg[0] != '*') {
			continue
		}
		name := seg[1:]
		if mask(name) {
			segs[i] = "[REDACTED:" + name + "]"
			continue
		}
		segs[i] = strings.TrimPrefix(scrub(c.Param(name)), "/")
	}
	return strings.Join(segs, "/")
}
