package middleware

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-crud-backend/internal/http/apierror"
)

// HeaderIdempotencyKey lets clients retry a create without inserting twice.
const HeaderIdempotencyKey = "Idempotency-Key"

// MsgInvalidIdempotencyKey is the 400 message for a malformed key.
const MsgInvalidIdempotencyKey = "Invalid Idempotency-Key header"

const (
	ctxKeyIdemKey    = "idem.key"
	ctxKeyIdemReplay = "idem.replay"
	ctxKeyRateBypass = "rate.bypass"

	defaultIdemMaxLen = 200
)

var defaultKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._~:-]+$`)

// IdempotencyOptions bounds accepted keys. Zero values mean 200 characters
// from the URL-safe set A-Z a-z 0-9 . _ ~ : -.
type IdempotencyOptions struct {
	MaxLen  int
	Pattern *regexp.Regexp
}

// IdempotencyLookup reports whether an unexpired create is recorded for key
// on the route scope (e.g. "/api/users"). Implementations own the TTL.
type IdempotencyLookup func(ctx context.Context, scope, key string, now time.Time) (bool, error)

// IdempotencyValidator checks the Idempotency-Key header and, for POSTs,
// asks lookup whether the key was already used on the same route. A hit
// marks the request as a replay, which also exempts it from rate limiting.
// The handler stays responsible for answering the replay.
//
// Requests without the header pass through untouched. A malformed key is
// rejected with 400. A failing lookup is logged and treated as a miss.
func IdempotencyValidator(opts IdempotencyOptions, lookup IdempotencyLookup) gin.HandlerFunc {
	if opts.MaxLen <= 0 {
		opts.MaxLen = defaultIdemMaxLen
	}
	if opts.Pattern == nil {
		opts.Pattern = defaultKeyPattern
	}

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > opts.MaxLen || !opts.Pattern.MatchString(key) {
			apierror.Abort(c, http.StatusBadRequest, MsgInvalidIdempotencyKey)
			return
		}
		c.Set(ctxKeyIdemKey, key)

		scope := c.FullPath()
		if lookup == nil || c.Request.Method != http.MethodPost || scope == "" {
			c.Next()
			return
		}
		switch seen, err := lookup(c.Request.Context(), scope, key, time.Now().UTC()); {
		case err != nil:
			LoggerFrom(c).Warn().Err(err).Str("scope", scope).Msg("idempotency lookup failed")
		case seen:
			c.Set(ctxKeyIdemReplay, true)
			c.Set(ctxKeyRateBypass, true)
		}
		c.Next()
	}
}

// GetIdempotencyKey returns the key accepted by IdempotencyValidator.
func GetIdempotencyKey(c *gin.Context) (string, bool) {
	key := c.GetString(ctxKeyIdemKey)
	return key, key != ""
}

// IsReplay reports whether the key was already used for a create on this
// route.
func IsReplay(c *gin.Context) bool {
	return ctxBool(c, ctxKeyIdemReplay)
}

func ctxBool(c *gin.Context, key string) bool {
	v, ok := c.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}
