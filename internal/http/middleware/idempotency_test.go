package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbourn/go-crud-backend/internal/http/apierror"
)

type lookupCall struct {
	scope, key string
	now        time.Time
}

// idemState is what the handler observed for one request.
type idemState struct {
	Key    string
	HasKey bool
	Replay bool
	Bypass bool
}

func idemRouter(opts IdempotencyOptions, lookup IdempotencyLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IdempotencyValidator(opts, lookup))
	h := func(c *gin.Context) {
		key, has := GetIdempotencyKey(c)
		c.JSON(http.StatusOK, idemState{Key: key, HasKey: has, Replay: IsReplay(c), Bypass: IsRateBypass(c)})
	}
	r.POST("/api/users", h)
	r.GET("/api/users", h)
	return r
}

func sendIdem(t *testing.T, r http.Handler, method, target, key string) (*httptest.ResponseRecorder, idemState) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var st idemState
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	}
	return w, st
}

func TestIdempotencyValidator_KeyValidation(t *testing.T) {
	cases := []struct {
		name string
		opts IdempotencyOptions
		key  string
		ok   bool
	}{
		{"uuid", IdempotencyOptions{}, "3f2b8a4e-7c1d-4e5f-9a0b-1c2d3e4f5a6b", true},
		{"url safe punctuation", IdempotencyOptions{}, "order:42.retry_1~a", true},
		{"default max length", IdempotencyOptions{}, strings.Repeat("k", defaultIdemMaxLen), true},
		{"over default max length", IdempotencyOptions{}, strings.Repeat("k", defaultIdemMaxLen+1), false},
		{"space", IdempotencyOptions{}, "no spaces", false},
		{"slash", IdempotencyOptions{}, "a/b", false},
		{"custom max length", IdempotencyOptions{MaxLen: 5}, "abcdef", false},
		{"custom pattern", IdempotencyOptions{Pattern: regexp.MustCompile(`^[0-9]+$`)}, "abc123", false},
		{"custom pattern match", IdempotencyOptions{Pattern: regexp.MustCompile(`^[0-9]+$`)}, "123", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, st := sendIdem(t, idemRouter(tc.opts, nil), http.MethodPost, "/api/users", tc.key)
			if !tc.ok {
				require.Equal(t, http.StatusBadRequest, w.Code)
				var body apierror.Response
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, MsgInvalidIdempotencyKey, body.Message)
				assert.Equal(t, "/api/users", body.Path)
				return
			}
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, idemState{Key: tc.key, HasKey: true}, st)
		})
	}
}

func TestIdempotencyValidator_Lookup(t *testing.T) {
	var calls []lookupCall
	result := func(seen bool, err error) IdempotencyLookup {
		return func(_ context.Context, scope, key string, now time.Time) (bool, error) {
			calls = append(calls, lookupCall{scope, key, now})
			return seen, err
		}
	}

	t.Run("no header skips lookup", func(t *testing.T) {
		calls = nil
		_, st := sendIdem(t, idemRouter(IdempotencyOptions{}, result(true, nil)), http.MethodPost, "/api/users", "")
		assert.Equal(t, idemState{}, st)
		assert.Empty(t, calls)
	})

	t.Run("miss", func(t *testing.T) {
		calls = nil
		_, st := sendIdem(t, idemRouter(IdempotencyOptions{}, result(false, nil)), http.MethodPost, "/api/users?x=1", "k-1")
		assert.Equal(t, idemState{Key: "k-1", HasKey: true}, st)
		require.Len(t, calls, 1)
		assert.Equal(t, "/api/users", calls[0].scope, "scope is the route, not the raw URL")
		assert.Equal(t, "k-1", calls[0].key)
		assert.Equal(t, time.UTC, calls[0].now.Location())
	})

	t.Run("hit marks replay and bypass", func(t *testing.T) {
		calls = nil
		_, st := sendIdem(t, idemRouter(IdempotencyOptions{}, result(true, nil)), http.MethodPost, "/api/users", "k-2")
		assert.Equal(t, idemState{Key: "k-2", HasKey: true, Replay: true, Bypass: true}, st)
	})

	t.Run("error is a miss", func(t *testing.T) {
		buf := captureLogger(t)
		calls = nil
		_, st := sendIdem(t, idemRouter(IdempotencyOptions{}, result(true, context.DeadlineExceeded)), http.MethodPost, "/api/users", "k-3")
		assert.Equal(t, idemState{Key: "k-3", HasKey: true}, st)
		assert.Contains(t, buf.String(), "idempotency lookup failed")
	})

	t.Run("only POST looks up", func(t *testing.T) {
		calls = nil
		_, st := sendIdem(t, idemRouter(IdempotencyOptions{}, result(true, nil)), http.MethodGet, "/api/users", "k-4")
		assert.Equal(t, idemState{Key: "k-4", HasKey: true}, st)
		assert.Empty(t, calls)
	})

	t.Run("unmatched route skips lookup", func(t *testing.T) {
		calls = nil
		w, _ := sendIdem(t, idemRouter(IdempotencyOptions{}, result(true, nil)), http.MethodPost, "/api/nope", "k-5")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, calls)
	})
}

func TestIdempotencyContextHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetIdempotencyKey(c)
	assert.False(t, ok)
	assert.False(t, IsReplay(c))

	c.Set(ctxKeyIdemKey, 123)
	_, ok = GetIdempotencyKey(c)
	assert.False(t, ok, "non-string keys read as absent")

	c.Set(ctxKeyIdemReplay, "yes")
	assert.False(t, IsReplay(c))
	c.Set(ctxKeyIdemReplay, true)
	assert.True(t, IsReplay(c))
}
