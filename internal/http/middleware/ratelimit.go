package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/tbourn/go-crud-backend/internal/http/apierror"
)

// MsgRateLimited is the 429 message.
const MsgRateLimited = "Rate limit exceeded"

// KeyFunc maps a request to the identity whose budget it spends.
type KeyFunc func(*gin.Context) string

// KeyByClientIP buckets requests by client address.
func KeyByClientIP() KeyFunc {
	return func(c *gin.Context) string { return c.ClientIP() }
}

// RateLimitOptions configures NewRateLimiter. Reads (GET, HEAD, OPTIONS)
// and writes (POST, PUT, DELETE and anything else) draw from separate token
// buckets per client, so a burst of creates cannot starve listing.
type RateLimitOptions struct {
	ReadRPS    float64
	ReadBurst  int
	WriteRPS   float64
	WriteBurst int
	Key        KeyFunc
	// IdleTTL evicts buckets not used for this long. Zero means 10 minutes.
	IdleTTL time.Duration
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a process-local per-client token bucket limiter. It is
// safe for concurrent use.
type RateLimiter struct {
	read, write limit
	key         KeyFunc
	ttl         time.Duration
	now         func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type limit struct {
	rps   rate.Limit
	burst int
}

func newLimit(rps float64, burst int) limit {
	if burst < 1 {
		burst = 1
	}
	return limit{rps: rate.Limit(rps), burst: burst}
}

// NewRateLimiter builds a limiter; install it with Handler.
func NewRateLimiter(opts RateLimitOptions) *RateLimiter {
	if opts.Key == nil {
		opts.Key = KeyByClientIP()
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 10 * time.Minute
	}
	return &RateLimiter{
		read:      newLimit(opts.ReadRPS, opts.ReadBurst),
		write:     newLimit(opts.WriteRPS, opts.WriteBurst),
		key:       opts.Key,
		ttl:       opts.IdleTTL,
		now:       time.Now,
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

func isRead(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}

// limiter returns the bucket for key, creating it from l when absent. Idle
// buckets are swept at most once per TTL, before the lookup, so a stale
// bucket is replaced rather than refreshed.
func (rl *RateLimiter) limiter(key string, l limit) *rate.Limiter {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) >= rl.ttl {
		for k, b := range rl.buckets {
			if now.Sub(b.lastSeen) >= rl.ttl {
				delete(rl.buckets, k)
			}
		}
		rl.lastSweep = now
	}

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.rps, l.burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now
	return b.lim
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}

// IsRateBypass reports whether IdempotencyValidator marked the request as a
// replay. Replays are served without spending tokens.
func IsRateBypass(c *gin.Context) bool {
	return ctxBool(c, ctxKeyRateBypass)
}

// Handler enforces the limits. A rejected request gets 429 with Retry-After
// set to the whole seconds until its bucket refills one token.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsRateBypass(c) {
			c.Next()
			return
		}

		l, class := rl.write, "write:"
		if isRead(c.Request.Method) {
			l, class = rl.read, "read:"
		}
		lim := rl.limiter(class+rl.key(c), l)

		now := rl.now()
		if lim.AllowN(now, 1) {
			c.Next()
			return
		}

		retry := 1
		if r := lim.ReserveN(now, 1); r.OK() {
			if d := r.DelayFrom(now); d > 0 {
				retry = int(math.Ceil(d.Seconds()))
			}
			r.CancelAt(now)
		}
		c.Header("Retry-After", strconv.Itoa(retry))
		apierror.Abort(c, http.StatusTooManyRequests, MsgRateLimited)
	}
}
